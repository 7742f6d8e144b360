package service_test

import (
	"context"
	"testing"
	"time"

	"hireai-be/internal/dto"
	"hireai-be/internal/service"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chanLogger hands each Info entry to the test goroutine.
type chanLogger struct {
	nopLogger
	infos chan map[string]interface{}
}

func (l chanLogger) Info(module, message string, details map[string]interface{}) {
	l.infos <- details
}

func TestAuditServiceConsumesTurnEvents(t *testing.T) {
	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NewStdLogger(false, false))
	defer pubSub.Close()

	infos := make(chan map[string]interface{}, 1)
	audit := service.NewAuditService(pubSub, "CHAT_TURN_COMPLETED", chanLogger{infos: infos})
	require.NoError(t, audit.Consume(context.Background()))

	publisher := service.NewPublisherService("CHAT_TURN_COMPLETED", pubSub)
	turn := &dto.PublishTurnCompletedMessage{
		ChatId:      "c1",
		UserId:      "guest-abc",
		IpAddress:   "203.0.113.7",
		NewChat:     true,
		CompletedAt: time.Now(),
	}
	require.NoError(t, publisher.Publish(context.Background(), turn.Event()))

	select {
	case details := <-infos:
		assert.Equal(t, dto.EventTypeTurnCompleted, details["event_type"])
		payload, ok := details["payload"].(map[string]interface{})
		require.True(t, ok)
		assert.Equal(t, "c1", payload["chat_id"])
		assert.Equal(t, "guest-abc", payload["user_id"])
		assert.Equal(t, "203.0.113.7", payload["ip_address"])
		assert.Equal(t, true, payload["new_chat"])
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for audit entry")
	}
}
