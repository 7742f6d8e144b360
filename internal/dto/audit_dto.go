package dto

import (
	"time"

	"hireai-be/pkg/events"
)

// EventTypeTurnCompleted tags the event emitted after each completed chat turn.
const EventTypeTurnCompleted = "CHAT_TURN_COMPLETED"

// PublishTurnCompletedMessage carries the audit facts for one completed turn.
type PublishTurnCompletedMessage struct {
	ChatId      string
	UserId      string
	IpAddress   string
	NewChat     bool
	PromptChars int
	ReplyChars  int
	CompletedAt time.Time
}

// Event shapes the message as the contract the bus carries.
func (m *PublishTurnCompletedMessage) Event() events.BaseEvent {
	return events.BaseEvent{
		Type: EventTypeTurnCompleted,
		Data: map[string]interface{}{
			"chat_id":      m.ChatId,
			"user_id":      m.UserId,
			"ip_address":   m.IpAddress,
			"new_chat":     m.NewChat,
			"prompt_chars": m.PromptChars,
			"reply_chars":  m.ReplyChars,
		},
		OccurredAt: m.CompletedAt,
	}
}
