package store

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spec-kit/skillcircuit/internal/domain"
	"github.com/spec-kit/skillcircuit/internal/persistence"
)

// Store owns the current session and the platform collections. It is the
// single source of truth for the service: mutations happen in memory under a
// mutex and are written through to the key-value backend after every change.
// Construct one per process with New; tests may hold several isolated
// instances.
type Store struct {
	mu     sync.RWMutex
	kv     persistence.KV
	logger *zap.Logger
	clock  func() time.Time

	session  domain.Session
	courses  []domain.Course
	faculty  []domain.FacultyMember
	leads    []domain.Lead
	students []domain.User
}

// New builds a Store initialized from the key-value backend. Each collection
// falls back to its seed value when the key is absent or the stored blob does
// not parse; initialization never fails on bad data.
func New(ctx context.Context, kv persistence.KV, logger *zap.Logger) *Store {
	s := &Store{
		kv:     kv,
		logger: logger,
		clock:  time.Now,
	}

	loadJSON(ctx, s, persistence.KeySession, &s.session, domain.Session{})
	loadJSON(ctx, s, persistence.KeyCourses, &s.courses, seedCourses())
	loadJSON(ctx, s, persistence.KeyFaculty, &s.faculty, seedFaculty())
	loadJSON(ctx, s, persistence.KeyLeads, &s.leads, seedLeads())
	loadJSON(ctx, s, persistence.KeyStudents, &s.students, seedStudents())

	return s
}

func loadJSON[T any](ctx context.Context, s *Store, key string, dst *T, fallback T) {
	data, err := s.kv.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, persistence.ErrKeyNotFound) {
			s.logger.Warn("storage read failed, using seed data", zap.String("key", key), zap.Error(err))
		}
		*dst = fallback
		return
	}
	if err := json.Unmarshal(data, dst); err != nil {
		s.logger.Warn("stored blob unreadable, using seed data", zap.String("key", key), zap.Error(err))
		*dst = fallback
	}
}

// persist serializes one collection to its key. Failures are logged and
// swallowed: the in-memory state stays authoritative.
func (s *Store) persist(ctx context.Context, key string, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		s.logger.Error("marshal collection", zap.String("key", key), zap.Error(err))
		return
	}
	if err := s.kv.Set(ctx, key, data); err != nil {
		s.logger.Error("storage write failed", zap.String("key", key), zap.Error(err))
	}
}

// Session returns a copy of the current session.
func (s *Store) Session() domain.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copySession(s.session)
}

// Courses returns a copy of the course catalog.
func (s *Store) Courses() []domain.Course {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Course(nil), s.courses...)
}

// Faculty returns a copy of the faculty roster.
func (s *Store) Faculty() []domain.FacultyMember {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.FacultyMember(nil), s.faculty...)
}

// Leads returns a copy of the lead list, newest first.
func (s *Store) Leads() []domain.Lead {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Lead(nil), s.leads...)
}

// Students returns a copy of the student roster.
func (s *Store) Students() []domain.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.User(nil), s.students...)
}

// Snapshot bundles all four collections for export and reporting.
type Snapshot struct {
	Courses  []domain.Course
	Faculty  []domain.FacultyMember
	Leads    []domain.Lead
	Students []domain.User
}

// Snapshot returns a consistent copy of every collection.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Snapshot{
		Courses:  append([]domain.Course(nil), s.courses...),
		Faculty:  append([]domain.FacultyMember(nil), s.faculty...),
		Leads:    append([]domain.Lead(nil), s.leads...),
		Students: append([]domain.User(nil), s.students...),
	}
}

func copySession(sess domain.Session) domain.Session {
	out := domain.Session{IsAuthenticated: sess.IsAuthenticated}
	if sess.User != nil {
		user := *sess.User
		out.User = &user
	}
	return out
}

// today formats the current clock reading at calendar-day granularity.
func (s *Store) today() string {
	return s.clock().UTC().Format("2006-01-02")
}

func newID(prefix string) string {
	return prefix + "-" + strings.ReplaceAll(uuid.NewString(), "-", "")[:9]
}
