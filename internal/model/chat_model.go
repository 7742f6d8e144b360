package model

import "time"

type Chat struct {
	ChatId    string    `gorm:"type:varchar(64);primaryKey"`
	UserId    string    `gorm:"type:varchar(128);not null;index"` // User ownership for history partitioning
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (Chat) TableName() string {
	return "chats"
}
