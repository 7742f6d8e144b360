package entity

import (
	"time"

	"github.com/google/uuid"
)

type Message struct {
	Id        uuid.UUID
	ChatId    string
	Sender    string
	Content   string
	IpAddress *string
	CreatedAt time.Time
}
