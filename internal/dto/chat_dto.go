package dto

import "time"

// ChatTurnDTO is one prior turn as supplied by the browser client.
type ChatTurnDTO struct {
	Sender string `json:"sender"`
	Text   string `json:"text"`
}

type SendChatRequest struct {
	Prompt  string        `json:"prompt" validate:"required"`
	ChatId  string        `json:"chatId,omitempty"` // Absent means "start a new chat"
	History []ChatTurnDTO `json:"history,omitempty"`
}

type SendChatResponse struct {
	Reply string `json:"reply"`
	// NewChatId is only present when this request created the chat; the
	// caller has no other way to learn the server-generated identifier.
	NewChatId string `json:"newChatId,omitempty"`
}

type ChatSummaryResponse struct {
	ChatId    string    `json:"chatId"`
	UserId    string    `json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
}

type MessageResponse struct {
	ChatId    string    `json:"chatId"`
	Sender    string    `json:"sender"`
	Content   string    `json:"content"`
	IpAddress string    `json:"ipAddress,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// SessionResponse is the restored-session shape. Messages stays a JSON array
// even when the latest chat holds no turns yet.
type SessionResponse struct {
	UserId   string            `json:"userId"`
	ChatId   string            `json:"chatId"`
	Messages []MessageResponse `json:"messages"`
	// Message is set instead of ChatId/Messages when the identity has no
	// chats; the controller renders that case as a SessionStatusResponse.
	Message string `json:"-"`
}

// SessionStatusResponse covers the no-identity and no-chats session shapes.
type SessionStatusResponse struct {
	UserId  string `json:"userId,omitempty"`
	Message string `json:"message"`
}
