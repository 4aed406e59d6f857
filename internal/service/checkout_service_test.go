package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/skillcircuit/internal/config"
	"github.com/spec-kit/skillcircuit/internal/domain"
	"github.com/spec-kit/skillcircuit/internal/events"
	"github.com/spec-kit/skillcircuit/internal/persistence"
	"github.com/spec-kit/skillcircuit/internal/store"
	apperrors "github.com/spec-kit/skillcircuit/pkg/util"
)

func newCheckoutFixture(t *testing.T) (*CheckoutService, *store.Store, events.Dispatcher) {
	t.Helper()

	kv, err := persistence.NewFileKV(config.StorageConfig{DataDir: t.TempDir()}, zap.NewNop())
	require.NoError(t, err)

	st := store.New(context.Background(), kv, zap.NewNop())
	dispatcher := events.NewInMemoryDispatcher()
	svc := NewCheckoutService(st, dispatcher, zap.NewNop(), config.CheckoutConfig{ProcessingDelayMillis: 0})
	return svc, st, dispatcher
}

func TestPurchaseRequiresSession(t *testing.T) {
	svc, _, _ := newCheckoutFixture(t)

	_, err := svc.Purchase(context.Background(), "s1")
	require.Error(t, err)

	var domainErr *apperrors.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "UNAUTHORIZED", domainErr.Code)
}

func TestPurchaseUnknownCourse(t *testing.T) {
	svc, st, _ := newCheckoutFixture(t)
	st.Login(context.Background(), "buyer@example.com", domain.RoleStudent)

	_, err := svc.Purchase(context.Background(), "missing")
	require.Error(t, err)

	var domainErr *apperrors.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "NOT_FOUND", domainErr.Code)
}

func TestPurchaseEnrollsAndPublishes(t *testing.T) {
	svc, st, dispatcher := newCheckoutFixture(t)
	ctx := context.Background()

	var published []events.Event
	dispatcher.Subscribe(events.EventStudentEnrolled, func(_ context.Context, e events.Event) error {
		published = append(published, e)
		return nil
	})

	st.Login(ctx, "buyer@example.com", domain.RoleStudent)

	result, err := svc.Purchase(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, domain.TierSprint, result.Tier)
	assert.Equal(t, 199, result.Price)

	session := st.Session()
	require.NotNil(t, session.User)
	assert.Equal(t, domain.TierSprint, session.User.EnrolledProgram)
	assert.True(t, st.CanAccessLMS())

	require.Len(t, published, 1)
	payload, ok := published[0].Payload.(events.StudentEnrolledPayload)
	require.True(t, ok)
	assert.Equal(t, "s1", payload.CourseID)
	assert.Equal(t, domain.TierSprint, payload.Tier)
}

func TestPurchaseCancelledContext(t *testing.T) {
	kv, err := persistence.NewFileKV(config.StorageConfig{DataDir: t.TempDir()}, zap.NewNop())
	require.NoError(t, err)

	st := store.New(context.Background(), kv, zap.NewNop())
	svc := NewCheckoutService(st, events.NewInMemoryDispatcher(), zap.NewNop(), config.CheckoutConfig{ProcessingDelayMillis: 5000})

	st.Login(context.Background(), "buyer@example.com", domain.RoleStudent)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = svc.Purchase(ctx, "s1")
	require.Error(t, err)

	// Enrollment never happened.
	assert.Empty(t, st.Session().User.EnrolledProgram)
}
