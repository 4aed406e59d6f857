package store

import (
	"context"

	"github.com/spec-kit/skillcircuit/internal/domain"
	"github.com/spec-kit/skillcircuit/internal/persistence"
)

// AddLead records a contact-form submission. The id and submission date are
// synthesized here; status starts as new and the lead is prepended so the
// list stays newest-first.
func (s *Store) AddLead(ctx context.Context, name, email, message string) domain.Lead {
	lead := domain.Lead{
		ID:      newID("l"),
		Name:    name,
		Email:   email,
		Message: message,
		Date:    s.today(),
		Status:  domain.LeadStatusNew,
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.leads = append([]domain.Lead{lead}, s.leads...)
	s.persist(ctx, persistence.KeyLeads, s.leads)

	return lead
}

// AddCourse appends a fully-formed course to the catalog. The caller assigns
// the id; no de-duplication happens here. Courses are never updated or
// deleted afterwards.
func (s *Store) AddCourse(ctx context.Context, course domain.Course) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.courses = append(s.courses, course)
	s.persist(ctx, persistence.KeyCourses, s.courses)
}

// AddFaculty appends a member to the roster.
func (s *Store) AddFaculty(ctx context.Context, member domain.FacultyMember) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.faculty = append(s.faculty, member)
	s.persist(ctx, persistence.KeyFaculty, s.faculty)
}

// UpdateFaculty replaces the member with the same id in place, preserving
// roster order. An unknown id is a no-op: no new entry is created.
func (s *Store) UpdateFaculty(ctx context.Context, member domain.FacultyMember) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.faculty {
		if s.faculty[i].ID == member.ID {
			s.faculty[i] = member
			s.persist(ctx, persistence.KeyFaculty, s.faculty)
			return
		}
	}
}

// DeleteFaculty removes the member with the given id, leaving all others and
// their order unchanged. An unknown id is a no-op.
func (s *Store) DeleteFaculty(ctx context.Context, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	filtered := s.faculty[:0:0]
	for _, member := range s.faculty {
		if member.ID != id {
			filtered = append(filtered, member)
		}
	}
	if len(filtered) == len(s.faculty) {
		return
	}
	s.faculty = filtered
	s.persist(ctx, persistence.KeyFaculty, s.faculty)
}
