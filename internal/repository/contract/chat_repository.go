package contract

import (
	"context"

	"hireai-be/internal/entity"
	"hireai-be/internal/repository/specification"
)

// ChatRepository is create-only: a chat is never updated or deleted once minted.
type ChatRepository interface {
	Create(ctx context.Context, chat *entity.Chat) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Chat, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Chat, error)
}
