package entity

import "time"

type Chat struct {
	ChatId    string
	UserId    string
	CreatedAt time.Time
}
