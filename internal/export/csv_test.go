package export

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/skillcircuit/internal/domain"
	"github.com/spec-kit/skillcircuit/internal/store"
)

func testSnapshot() store.Snapshot {
	return store.Snapshot{
		Courses: []domain.Course{
			{ID: "n1", Title: "Digital Fluency 101", Tier: domain.TierNano, Duration: "4 Hours"},
		},
		Faculty: []domain.FacultyMember{
			{ID: "f1", Name: "Dr. Aris Thorne", Email: "aris@sc.io", Specialty: "Behavioral Science", JoinedDate: "2024-01-10"},
		},
		Leads: []domain.Lead{
			{ID: "l1", Name: "James Wilson", Email: "james@example.com", Message: `Interested in "Launchpad"`, Date: "2024-10-25", Status: domain.LeadStatusNew},
		},
		Students: []domain.User{
			{ID: "u-1", Name: "Alex Rivera", Email: "alex@student.com", Role: domain.RoleStudent, EnrolledProgram: domain.TierSprint, Progress: 45},
			{ID: "u-2", Name: "Sam Doe", Email: "sam@student.com", Role: domain.RoleStudent},
		},
	}
}

func TestBuildCSVLeadsWithByteOrderMark(t *testing.T) {
	doc := string(BuildCSV(testSnapshot()))
	assert.True(t, strings.HasPrefix(doc, "\uFEFF"), "document must lead with a UTF-8 BOM")
}

func TestBuildCSVHeaderAndRowCount(t *testing.T) {
	doc := strings.TrimPrefix(string(BuildCSV(testSnapshot())), "\uFEFF")
	lines := strings.Split(doc, "\n")

	require.Len(t, lines, 6) // header + 1 course + 1 faculty + 1 lead + 2 students
	assert.Equal(t, `"Category","Name/Title","Email/ID","Details/Tier","Joined Date/Progress"`, lines[0])
}

func TestBuildCSVQuotesEveryField(t *testing.T) {
	doc := strings.TrimPrefix(string(BuildCSV(testSnapshot())), "\uFEFF")
	lines := strings.Split(doc, "\n")

	assert.Equal(t, `"Course","Digital Fluency 101","n1","Nano","4 Hours"`, lines[1])
	assert.Equal(t, `"Faculty Member","Dr. Aris Thorne","aris@sc.io","Behavioral Science","2024-01-10"`, lines[2])
}

func TestBuildCSVDoublesEmbeddedQuotes(t *testing.T) {
	doc := strings.TrimPrefix(string(BuildCSV(testSnapshot())), "\uFEFF")
	lines := strings.Split(doc, "\n")

	// The lead message is quoted in its cell, then the whole field is
	// re-quoted, doubling every embedded quote again.
	assert.Equal(t, `"Lead Submission","James Wilson","james@example.com","""Interested in """"Launchpad""""""","2024-10-25"`, lines[3])
}

func TestBuildCSVStudentRows(t *testing.T) {
	doc := strings.TrimPrefix(string(BuildCSV(testSnapshot())), "\uFEFF")
	lines := strings.Split(doc, "\n")

	assert.Equal(t, `"Student User","Alex Rivera","alex@student.com","Sprint","45%"`, lines[4])
	assert.Equal(t, `"Student User","Sam Doe","sam@student.com","None","0%"`, lines[5])
}

func TestFilename(t *testing.T) {
	ts := time.Date(2026, 9, 1, 10, 30, 0, 0, time.UTC)
	assert.Equal(t, "SkillCircuit_Platform_Export_2026-09-01.csv", Filename(ts))
}
