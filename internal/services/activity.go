package services

import (
	"context"

	"github.com/google/uuid"

	redisclient "github.com/studymood/studymood-backend/internal/clients/redis"
	"github.com/studymood/studymood-backend/internal/pkg/logger"
	"github.com/studymood/studymood-backend/internal/realtime"
)

// ActivityService routes group activity events to connected stream clients.
// With a redis bus configured, events travel through the bus so every
// instance's hub sees them; without one, broadcast stays in-process.
type ActivityService interface {
	Start(ctx context.Context)
	PublishSessionLogged(ctx context.Context, groupIDs []uuid.UUID, data realtime.SessionLoggedData)
	PublishMemberEvent(ctx context.Context, groupID uuid.UUID, event realtime.Event, data any)
}

type activityService struct {
	log *logger.Logger
	hub *realtime.Hub
	bus redisclient.ActivityBus
}

func NewActivityService(log *logger.Logger, hub *realtime.Hub, bus redisclient.ActivityBus) ActivityService {
	serviceLog := log.With("service", "ActivityService")
	return &activityService{log: serviceLog, hub: hub, bus: bus}
}

func (s *activityService) Start(ctx context.Context) {
	if s.bus == nil {
		return
	}
	if err := s.bus.StartForwarder(ctx, func(m realtime.Message) {
		s.hub.Broadcast(m)
	}); err != nil {
		s.log.Warn("activity bus forwarder failed to start; falling back to local broadcast", "error", err)
		s.bus = nil
	}
}

func (s *activityService) PublishSessionLogged(ctx context.Context, groupIDs []uuid.UUID, data realtime.SessionLoggedData) {
	for _, groupID := range groupIDs {
		s.publish(ctx, realtime.Message{
			Channel: realtime.GroupChannel(groupID),
			Event:   realtime.EventSessionLogged,
			Data:    data,
		})
	}
}

func (s *activityService) PublishMemberEvent(ctx context.Context, groupID uuid.UUID, event realtime.Event, data any) {
	s.publish(ctx, realtime.Message{
		Channel: realtime.GroupChannel(groupID),
		Event:   event,
		Data:    data,
	})
}

func (s *activityService) publish(ctx context.Context, msg realtime.Message) {
	if s.bus != nil {
		err := s.bus.Publish(ctx, msg)
		if err == nil {
			return
		}
		s.log.Warn("activity bus publish failed; broadcasting locally", "error", err)
	}
	s.hub.Broadcast(msg)
}
