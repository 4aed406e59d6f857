// Package export renders the admin data export: every platform collection
// flattened into one spreadsheet-compatible CSV document.
package export

import (
	"fmt"
	"strings"
	"time"

	"github.com/spec-kit/skillcircuit/internal/store"
)

// ContentType is the MIME type served with the export.
const ContentType = "text/csv; charset=utf-8"

var header = []string{"Category", "Name/Title", "Email/ID", "Details/Tier", "Joined Date/Progress"}

// Filename returns the download name for an export taken at ts.
func Filename(ts time.Time) string {
	return fmt.Sprintf("SkillCircuit_Platform_Export_%s.csv", ts.UTC().Format("2006-01-02"))
}

// BuildCSV flattens the snapshot into a CSV document. The output leads with
// a UTF-8 byte-order marker and wraps every field in double quotes (embedded
// quotes doubled) so spreadsheet imports behave regardless of field content.
// Lead messages arrive pre-quoted in their cell, matching the historical
// export shape consumed by the admissions spreadsheet.
func BuildCSV(snap store.Snapshot) []byte {
	rows := [][]string{header}

	for _, c := range snap.Courses {
		rows = append(rows, []string{"Course", c.Title, c.ID, string(c.Tier), c.Duration})
	}
	for _, f := range snap.Faculty {
		rows = append(rows, []string{"Faculty Member", f.Name, f.Email, f.Specialty, f.JoinedDate})
	}
	for _, l := range snap.Leads {
		message := `"` + strings.ReplaceAll(l.Message, `"`, `""`) + `"`
		rows = append(rows, []string{"Lead Submission", l.Name, l.Email, message, l.Date})
	}
	for _, s := range snap.Students {
		program := "None"
		if s.EnrolledProgram != "" {
			program = string(s.EnrolledProgram)
		}
		rows = append(rows, []string{"Student User", s.Name, s.Email, program, fmt.Sprintf("%d%%", s.Progress)})
	}

	var b strings.Builder
	b.WriteString("\uFEFF")
	for i, row := range rows {
		if i > 0 {
			b.WriteString("\n")
		}
		for j, field := range row {
			if j > 0 {
				b.WriteString(",")
			}
			b.WriteString(`"`)
			b.WriteString(strings.ReplaceAll(field, `"`, `""`))
			b.WriteString(`"`)
		}
	}
	return []byte(b.String())
}
