package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spec-kit/skillcircuit/internal/config"
	"github.com/spec-kit/skillcircuit/internal/domain"
	"github.com/spec-kit/skillcircuit/internal/events"
	"github.com/spec-kit/skillcircuit/internal/store"
	apperrors "github.com/spec-kit/skillcircuit/pkg/util"
)

// CheckoutService runs the simulated enrollment purchase. The payment step
// is an explicit stub: it waits a fixed processing delay and always
// succeeds. A real tokenization/charge integration replaces processPayment
// without touching the enrollment flow around it.
type CheckoutService struct {
	store      *store.Store
	dispatcher events.Dispatcher
	logger     *zap.Logger
	delay      time.Duration
}

// NewCheckoutService builds the service.
func NewCheckoutService(st *store.Store, dispatcher events.Dispatcher, logger *zap.Logger, cfg config.CheckoutConfig) *CheckoutService {
	return &CheckoutService{
		store:      st,
		dispatcher: dispatcher,
		logger:     logger,
		delay:      cfg.ProcessingDelay(),
	}
}

// CheckoutResult summarizes a completed enrollment purchase.
type CheckoutResult struct {
	CourseID string             `json:"course_id"`
	Title    string             `json:"title"`
	Tier     domain.ProgramTier `json:"tier"`
	Price    int                `json:"price"`
}

// Purchase enrolls the current session in the course's tier after the
// simulated payment clears. It requires an active session and a known
// course id.
func (s *CheckoutService) Purchase(ctx context.Context, courseID string) (*CheckoutResult, error) {
	session := s.store.Session()
	if !session.IsAuthenticated || session.User == nil {
		return nil, apperrors.NewUnauthorized("login required for checkout")
	}

	var course *domain.Course
	for _, c := range s.store.Courses() {
		if c.ID == courseID {
			course = &c
			break
		}
	}
	if course == nil {
		return nil, apperrors.NewNotFound("course", map[string]any{"course_id": courseID})
	}

	if err := s.processPayment(ctx); err != nil {
		return nil, err
	}

	s.store.Enroll(ctx, course.Tier)

	if s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, events.Event{
			ID:        uuid.NewString(),
			Type:      events.EventStudentEnrolled,
			Actor:     events.Actor{Email: session.User.Email, Role: session.User.Role},
			Timestamp: time.Now(),
			Payload: events.StudentEnrolledPayload{
				UserID:   session.User.ID,
				CourseID: course.ID,
				Tier:     course.Tier,
			},
		})
	}

	s.logger.Info("checkout completed",
		zap.String("course_id", course.ID),
		zap.String("tier", string(course.Tier)))

	return &CheckoutResult{
		CourseID: course.ID,
		Title:    course.Title,
		Tier:     course.Tier,
		Price:    course.Price,
	}, nil
}

// processPayment stands in for a payment gateway call. It cannot decline;
// only request cancellation interrupts it.
func (s *CheckoutService) processPayment(ctx context.Context) error {
	if s.delay <= 0 {
		return nil
	}
	timer := time.NewTimer(s.delay)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return apperrors.MapError(ctx.Err())
	}
}
