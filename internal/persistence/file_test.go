package persistence

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/skillcircuit/internal/config"
)

func newFileKV(t *testing.T) *FileKV {
	t.Helper()
	kv, err := NewFileKV(config.StorageConfig{DataDir: t.TempDir()}, zap.NewNop())
	require.NoError(t, err)
	return kv
}

func TestFileKVGetMissingKey(t *testing.T) {
	kv := newFileKV(t)

	_, err := kv.Get(context.Background(), "absent")
	assert.ErrorIs(t, err, ErrKeyNotFound)
}

func TestFileKVSetGetRoundTrip(t *testing.T) {
	kv := newFileKV(t)
	ctx := context.Background()

	require.NoError(t, kv.Set(ctx, KeyCourses, []byte(`[{"id":"n1"}]`)))

	data, err := kv.Get(ctx, KeyCourses)
	require.NoError(t, err)
	assert.Equal(t, []byte(`[{"id":"n1"}]`), data)
}

func TestFileKVSetOverwrites(t *testing.T) {
	kv := newFileKV(t)
	ctx := context.Background()

	require.NoError(t, kv.Set(ctx, KeySession, []byte(`{"v":1}`)))
	require.NoError(t, kv.Set(ctx, KeySession, []byte(`{"v":2}`)))

	data, err := kv.Get(ctx, KeySession)
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"v":2}`), data)
}

func TestFileKVDelete(t *testing.T) {
	kv := newFileKV(t)
	ctx := context.Background()

	require.NoError(t, kv.Set(ctx, KeySession, []byte(`{}`)))
	require.NoError(t, kv.Delete(ctx, KeySession))

	_, err := kv.Get(ctx, KeySession)
	assert.ErrorIs(t, err, ErrKeyNotFound)

	// Deleting an absent key is not an error.
	assert.NoError(t, kv.Delete(ctx, KeySession))
}

func TestFileKVPing(t *testing.T) {
	kv := newFileKV(t)
	assert.NoError(t, kv.Ping(context.Background()))
}
