package store

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/spec-kit/skillcircuit/internal/domain"
	"github.com/spec-kit/skillcircuit/internal/persistence"
)

// Login fabricates a user for the given email and role and makes it the
// current session. There is no credential verification: this is a mock
// boundary and any email succeeds. First-time student logins are appended to
// the student roster as an enrollment side effect.
func (s *Store) Login(ctx context.Context, email string, role domain.UserRole) domain.User {
	if role == "" {
		role = domain.RoleStudent
	}

	progress, hours := 0, 0
	if role == domain.RoleStudent {
		progress, hours = 45, 12
	}

	user := domain.User{
		ID:           newID("u"),
		Name:         strings.ToUpper(localPart(email)),
		Email:        email,
		Role:         role,
		Progress:     progress,
		HoursLearned: hours,
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.session = domain.Session{User: &user, IsAuthenticated: true}

	if role == domain.RoleStudent && !s.hasStudentLocked(email) {
		s.students = append(s.students, user)
		s.persist(ctx, persistence.KeyStudents, s.students)
	}
	s.persist(ctx, persistence.KeySession, s.session)

	return user
}

// Signup creates a fresh student with zero progress, makes it the current
// session, and unconditionally appends it to the student roster.
func (s *Store) Signup(ctx context.Context, name, email string) domain.User {
	user := domain.User{
		ID:    newID("u"),
		Name:  name,
		Email: email,
		Role:  domain.RoleStudent,
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.session = domain.Session{User: &user, IsAuthenticated: true}
	s.students = append(s.students, user)

	s.persist(ctx, persistence.KeyStudents, s.students)
	s.persist(ctx, persistence.KeySession, s.session)

	return user
}

// Logout clears the session and removes the persisted session entry. The
// other collections stay persisted.
func (s *Store) Logout(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.session = domain.Session{}
	if err := s.kv.Delete(ctx, persistence.KeySession); err != nil {
		s.logger.Error("storage delete failed", zap.String("key", persistence.KeySession), zap.Error(err))
	}
}

// Enroll sets the session user's program tier and mirrors the change into
// the matching student record (matched by email). Without an active session
// it is a silent no-op.
func (s *Store) Enroll(ctx context.Context, tier domain.ProgramTier) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session.User == nil {
		return
	}

	user := *s.session.User
	user.EnrolledProgram = tier
	s.session.User = &user

	for i := range s.students {
		if s.students[i].Email == user.Email {
			s.students[i] = user
		}
	}

	s.persist(ctx, persistence.KeySession, s.session)
	s.persist(ctx, persistence.KeyStudents, s.students)
}

// IsAdmin reports whether the session user holds the admin role.
func (s *Store) IsAdmin() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.session.User != nil && s.session.User.Role == domain.RoleAdmin
}

// IsFaculty reports whether the session user holds the faculty role.
func (s *Store) IsFaculty() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.session.User != nil && s.session.User.Role == domain.RoleFaculty
}

// CanAccessLMS derives the learning-dashboard gate from the current session.
// Admin and faculty always pass; students need an enrollment beyond Nano.
// The flag is recomputed on every call and never stored.
func (s *Store) CanAccessLMS() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.session.IsAuthenticated || s.session.User == nil {
		return false
	}
	user := s.session.User
	if user.Role == domain.RoleAdmin || user.Role == domain.RoleFaculty {
		return true
	}
	return user.EnrolledProgram != "" && user.EnrolledProgram != domain.TierNano
}

func (s *Store) hasStudentLocked(email string) bool {
	for i := range s.students {
		if s.students[i].Email == email {
			return true
		}
	}
	return false
}

func localPart(email string) string {
	if at := strings.Index(email, "@"); at >= 0 {
		return email[:at]
	}
	return email
}
