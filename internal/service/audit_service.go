package service

import (
	"context"
	"encoding/json"

	"hireai-be/internal/pkg/logger"
	"hireai-be/pkg/events"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

// IAuditService consumes turn-completed events in the background and writes
// the audit trail (who talked to which chat from which address).
type IAuditService interface {
	Consume(ctx context.Context) error
}

type auditService struct {
	pubSub    *gochannel.GoChannel
	topicName string
	auditLog  logger.ILogger
}

func NewAuditService(pubSub *gochannel.GoChannel, topicName string, auditLog logger.ILogger) IAuditService {
	return &auditService{
		pubSub:    pubSub,
		topicName: topicName,
		auditLog:  auditLog,
	}
}

func (as *auditService) Consume(ctx context.Context) error {
	messages, err := as.pubSub.Subscribe(ctx, as.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			as.processMessage(msg)
		}
	}()

	return nil
}

func (as *auditService) processMessage(msg *message.Message) {
	var event events.BaseEvent
	if err := json.Unmarshal(msg.Payload, &event); err != nil {
		as.auditLog.Error("audit", "Failed to unmarshal turn event", map[string]interface{}{"error": err.Error()})
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	as.auditLog.Info("audit", "Chat turn completed", map[string]interface{}{
		"event_type":  event.Type,
		"payload":     event.Data,
		"occurred_at": event.OccurredAt,
	})
	msg.Ack()
}
