package persistence

import (
	"context"
	"errors"
)

// ErrKeyNotFound signals an absent key. Callers treat it as "use seed data".
var ErrKeyNotFound = errors.New("key not found")

// Storage key names, one per persisted collection.
const (
	KeySession  = "sc_auth"
	KeyCourses  = "sc_courses"
	KeyFaculty  = "sc_faculty"
	KeyLeads    = "sc_leads"
	KeyStudents = "sc_students"
)

// KV abstracts the durable key-value mechanism backing the platform store.
// Values are opaque JSON blobs; one key per collection.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Ping(ctx context.Context) error
	Close()
}
