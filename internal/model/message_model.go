package model

import (
	"time"

	"github.com/google/uuid"
)

type Message struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ChatId    string    `gorm:"type:varchar(64);not null;index"`
	Sender    string    `gorm:"type:varchar(10);not null"`
	Content   string    `gorm:"type:text;not null"`
	IpAddress *string   `gorm:"type:varchar(45)"` // Only recorded for user-sent turns
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (Message) TableName() string {
	return "messages"
}
