package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/spec-kit/skillcircuit/internal/config"
	"github.com/spec-kit/skillcircuit/internal/events"
)

// NotificationService handles emitting notifications for domain events.
// Email and webhook delivery are stubs; a real admissions integration plugs
// in behind the same handlers.
type NotificationService struct {
	dispatcher events.Dispatcher
	logger     *zap.Logger
	cfg        config.NotificationConfig
}

// NewNotificationService creates the service.
func NewNotificationService(dispatcher events.Dispatcher, logger *zap.Logger, cfg config.NotificationConfig) *NotificationService {
	return &NotificationService{
		dispatcher: dispatcher,
		logger:     logger,
		cfg:        cfg,
	}
}

// RegisterHandlers subscribes to events.
func (n *NotificationService) RegisterHandlers() {
	if n.dispatcher == nil {
		return
	}
	n.dispatcher.Subscribe(events.EventLeadCreated, n.handleLeadCreated)
	n.dispatcher.Subscribe(events.EventStudentSignedUp, n.handleStudentSignedUp)
	n.dispatcher.Subscribe(events.EventStudentEnrolled, n.handleStudentEnrolled)
	n.dispatcher.Subscribe(events.EventCourseAdded, n.handleCourseAdded)
}

func (n *NotificationService) handleLeadCreated(ctx context.Context, event events.Event) error {
	n.logger.Info("LeadCreated", zap.Any("payload", event.Payload))
	n.sendEmailNotificationStub(ctx, event)
	n.sendWebhookNotificationStub(ctx, event)
	return nil
}

func (n *NotificationService) handleStudentSignedUp(ctx context.Context, event events.Event) error {
	n.logger.Info("StudentSignedUp", zap.Any("payload", event.Payload))
	n.sendEmailNotificationStub(ctx, event)
	return nil
}

func (n *NotificationService) handleStudentEnrolled(ctx context.Context, event events.Event) error {
	n.logger.Info("StudentEnrolled", zap.Any("payload", event.Payload))
	n.sendEmailNotificationStub(ctx, event)
	n.sendWebhookNotificationStub(ctx, event)
	return nil
}

func (n *NotificationService) handleCourseAdded(ctx context.Context, event events.Event) error {
	n.logger.Info("CourseAdded", zap.Any("payload", event.Payload))
	n.sendWebhookNotificationStub(ctx, event)
	return nil
}

func (n *NotificationService) sendEmailNotificationStub(_ context.Context, event events.Event) {
	if strings.TrimSpace(n.cfg.EmailFrom) == "" {
		return
	}
	n.logger.Debug("sendEmailNotificationStub",
		zap.String("from", n.cfg.EmailFrom),
		zap.String("event_type", string(event.Type)))
}

func (n *NotificationService) sendWebhookNotificationStub(_ context.Context, event events.Event) {
	if strings.TrimSpace(n.cfg.WebhookURL) == "" {
		return
	}
	n.logger.Debug("sendWebhookNotificationStub",
		zap.String("url", n.cfg.WebhookURL),
		zap.String("event_type", string(event.Type)))
}
