package mapper

import (
	"hireai-be/internal/entity"
	"hireai-be/internal/model"
)

type ChatMapper struct{}

func NewChatMapper() *ChatMapper {
	return &ChatMapper{}
}

// Chat Mappers

func (m *ChatMapper) ChatToEntity(c *model.Chat) *entity.Chat {
	if c == nil {
		return nil
	}

	return &entity.Chat{
		ChatId:    c.ChatId,
		UserId:    c.UserId,
		CreatedAt: c.CreatedAt,
	}
}

func (m *ChatMapper) ChatToModel(c *entity.Chat) *model.Chat {
	if c == nil {
		return nil
	}

	return &model.Chat{
		ChatId:    c.ChatId,
		UserId:    c.UserId,
		CreatedAt: c.CreatedAt,
	}
}

// Message Mappers

func (m *ChatMapper) MessageToEntity(msg *model.Message) *entity.Message {
	if msg == nil {
		return nil
	}

	return &entity.Message{
		Id:        msg.Id,
		ChatId:    msg.ChatId,
		Sender:    msg.Sender,
		Content:   msg.Content,
		IpAddress: msg.IpAddress,
		CreatedAt: msg.CreatedAt,
	}
}

func (m *ChatMapper) MessageToModel(msg *entity.Message) *model.Message {
	if msg == nil {
		return nil
	}

	return &model.Message{
		Id:        msg.Id,
		ChatId:    msg.ChatId,
		Sender:    msg.Sender,
		Content:   msg.Content,
		IpAddress: msg.IpAddress,
		CreatedAt: msg.CreatedAt,
	}
}
