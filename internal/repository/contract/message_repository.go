package contract

import (
	"context"

	"hireai-be/internal/entity"
	"hireai-be/internal/repository/specification"
)

// MessageRepository is append-only: messages are immutable once written.
type MessageRepository interface {
	Create(ctx context.Context, message *entity.Message) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Message, error)
}
