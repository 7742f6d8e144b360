package unitofwork

import (
	"hireai-be/internal/repository/contract"
)

// UnitOfWork scopes repositories to one request. There is no transactional
// surface: a collaborator failure after the user turn is written must leave
// that turn in place.
type UnitOfWork interface {
	ChatRepository() contract.ChatRepository
	MessageRepository() contract.MessageRepository
}
