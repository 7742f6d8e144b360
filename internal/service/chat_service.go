package service

import (
	"context"
	"errors"
	"time"

	"hireai-be/internal/constant"
	"hireai-be/internal/dto"
	"hireai-be/internal/entity"
	"hireai-be/internal/pkg/logger"
	"hireai-be/internal/pkg/serverutils"
	"hireai-be/internal/repository/contract"
	"hireai-be/internal/repository/specification"
	"hireai-be/internal/repository/unitofwork"
	"hireai-be/pkg/reply"

	"github.com/google/uuid"
)

// Fixed user-facing failure messages. Diagnostics go to the log only.
const (
	msgChatFailed    = "Failed to process chat request."
	msgHistoryFailed = "Failed to fetch chat history."
	msgFetchFailed   = "Failed to fetch messages."
	msgSessionFailed = "Failed to restore session."
)

type IChatService interface {
	SendChat(ctx context.Context, userId, ipAddress string, request *dto.SendChatRequest) (*dto.SendChatResponse, error)
	GetHistory(ctx context.Context, userId string) ([]*dto.ChatSummaryResponse, error)
	GetChatMessages(ctx context.Context, chatId string) ([]*dto.MessageResponse, error)
	RestoreSession(ctx context.Context, userId string) (*dto.SessionResponse, error)
}

type chatService struct {
	uowFactory unitofwork.RepositoryFactory
	generator  reply.Generator
	publisher  IPublisherService
	log        logger.ILogger
}

func NewChatService(
	uowFactory unitofwork.RepositoryFactory,
	generator reply.Generator,
	publisher IPublisherService,
	log logger.ILogger,
) IChatService {
	return &chatService{
		uowFactory: uowFactory,
		generator:  generator,
		publisher:  publisher,
		log:        log,
	}
}

// SendChat runs the one read-modify-call-write sequence per user turn. A
// collaborator failure after step 3 leaves the user message in place; an
// orphaned user turn with no reply is an accepted, observable failure mode.
func (cs *chatService) SendChat(ctx context.Context, userId, ipAddress string, request *dto.SendChatRequest) (*dto.SendChatResponse, error) {
	if request.Prompt == "" {
		return nil, serverutils.NewValidationError("Prompt is required.")
	}

	uow := cs.uowFactory.NewUnitOfWork(ctx)
	now := time.Now()

	chatId := request.ChatId
	isNewChat := chatId == ""
	if isNewChat {
		chatId = uuid.NewString()
		chat := entity.Chat{
			ChatId:    chatId,
			UserId:    userId,
			CreatedAt: now,
		}
		if err := uow.ChatRepository().Create(ctx, &chat); err != nil {
			return nil, serverutils.NewStorageError(msgChatFailed, err)
		}
	}

	userMessage := entity.Message{
		Id:        uuid.New(),
		ChatId:    chatId,
		Sender:    constant.MessageSenderUser,
		Content:   request.Prompt,
		IpAddress: &ipAddress,
		CreatedAt: now,
	}
	if err := uow.MessageRepository().Create(ctx, &userMessage); err != nil {
		if errors.Is(err, contract.ErrInvalidMessage) {
			return nil, serverutils.NewValidationError("Prompt is required.")
		}
		return nil, serverutils.NewStorageError(msgChatFailed, err)
	}

	history := make([]reply.Turn, len(request.History))
	for i, turn := range request.History {
		history[i] = reply.Turn{Sender: turn.Sender, Text: turn.Text}
	}

	replyText, err := cs.generator.GenerateReply(ctx, &reply.Request{
		Prompt:    request.Prompt,
		ChatId:    chatId,
		UserId:    userId,
		History:   history,
		IpAddress: ipAddress,
	})
	if err != nil {
		return nil, serverutils.NewCollaboratorError(msgChatFailed, err)
	}

	botMessage := entity.Message{
		Id:        uuid.New(),
		ChatId:    chatId,
		Sender:    constant.MessageSenderBot,
		Content:   replyText,
		CreatedAt: time.Now(),
	}
	if err := uow.MessageRepository().Create(ctx, &botMessage); err != nil {
		return nil, serverutils.NewStorageError(msgChatFailed, err)
	}

	cs.publishTurnCompleted(ctx, &dto.PublishTurnCompletedMessage{
		ChatId:      chatId,
		UserId:      userId,
		IpAddress:   ipAddress,
		NewChat:     isNewChat,
		PromptChars: len(request.Prompt),
		ReplyChars:  len(replyText),
		CompletedAt: time.Now(),
	})

	res := &dto.SendChatResponse{Reply: replyText}
	if isNewChat {
		res.NewChatId = chatId
	}
	return res, nil
}

// publishTurnCompleted feeds the audit trail. The audit trail must never fail
// a user turn, so publish errors are logged and swallowed.
func (cs *chatService) publishTurnCompleted(ctx context.Context, payload *dto.PublishTurnCompletedMessage) {
	if cs.publisher == nil {
		return
	}
	if err := cs.publisher.Publish(ctx, payload.Event()); err != nil {
		cs.log.Warn("chat", "Failed to publish turn event", map[string]interface{}{"error": err.Error()})
	}
}

func (cs *chatService) GetHistory(ctx context.Context, userId string) ([]*dto.ChatSummaryResponse, error) {
	uow := cs.uowFactory.NewUnitOfWork(ctx)

	chats, err := uow.ChatRepository().FindAll(ctx,
		specification.ByUserID{UserID: userId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, serverutils.NewStorageError(msgHistoryFailed, err)
	}

	res := make([]*dto.ChatSummaryResponse, len(chats))
	for i, chat := range chats {
		res[i] = &dto.ChatSummaryResponse{
			ChatId:    chat.ChatId,
			UserId:    chat.UserId,
			CreatedAt: chat.CreatedAt,
		}
	}
	return res, nil
}

func (cs *chatService) GetChatMessages(ctx context.Context, chatId string) ([]*dto.MessageResponse, error) {
	uow := cs.uowFactory.NewUnitOfWork(ctx)

	messages, err := cs.findMessagesAscending(ctx, uow, chatId)
	if err != nil {
		return nil, serverutils.NewStorageError(msgFetchFailed, err)
	}
	return messages, nil
}

func (cs *chatService) RestoreSession(ctx context.Context, userId string) (*dto.SessionResponse, error) {
	uow := cs.uowFactory.NewUnitOfWork(ctx)

	latestChat, err := uow.ChatRepository().FindOne(ctx,
		specification.ByUserID{UserID: userId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, serverutils.NewStorageError(msgSessionFailed, err)
	}
	if latestChat == nil {
		return &dto.SessionResponse{
			UserId:  userId,
			Message: "User exists but has no chats.",
		}, nil
	}

	messages, err := cs.findMessagesAscending(ctx, uow, latestChat.ChatId)
	if err != nil {
		return nil, serverutils.NewStorageError(msgSessionFailed, err)
	}

	// Messages must stay a JSON array even when the latest chat has no turns.
	res := &dto.SessionResponse{
		UserId:   userId,
		ChatId:   latestChat.ChatId,
		Messages: make([]dto.MessageResponse, 0, len(messages)),
	}
	for _, msg := range messages {
		res.Messages = append(res.Messages, *msg)
	}
	return res, nil
}

func (cs *chatService) findMessagesAscending(ctx context.Context, uow unitofwork.UnitOfWork, chatId string) ([]*dto.MessageResponse, error) {
	messages, err := uow.MessageRepository().FindAll(ctx,
		specification.ByChatID{ChatID: chatId},
		specification.OrderBy{Field: "created_at", Desc: false},
	)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.MessageResponse, len(messages))
	for i, msg := range messages {
		ipAddress := ""
		if msg.IpAddress != nil {
			ipAddress = *msg.IpAddress
		}
		res[i] = &dto.MessageResponse{
			ChatId:    msg.ChatId,
			Sender:    msg.Sender,
			Content:   msg.Content,
			IpAddress: ipAddress,
			CreatedAt: msg.CreatedAt,
		}
	}
	return res, nil
}
