package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"hireai-be/internal/constant"
	"hireai-be/internal/dto"
	"hireai-be/internal/entity"
	"hireai-be/internal/pkg/serverutils"
	"hireai-be/internal/repository/contract"
	"hireai-be/internal/repository/specification"
	"hireai-be/internal/repository/unitofwork"
	"hireai-be/internal/service"
	"hireai-be/pkg/events"
	"hireai-be/pkg/reply"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- Fakes ---

type fakeChatRepo struct {
	created    []*entity.Chat
	createErr  error
	findOneRes *entity.Chat
	findAllRes []*entity.Chat
	findErr    error
}

func (r *fakeChatRepo) Create(ctx context.Context, chat *entity.Chat) error {
	if r.createErr != nil {
		return r.createErr
	}
	c := *chat
	r.created = append(r.created, &c)
	return nil
}

func (r *fakeChatRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Chat, error) {
	return r.findOneRes, r.findErr
}

func (r *fakeChatRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Chat, error) {
	return r.findAllRes, r.findErr
}

type fakeMessageRepo struct {
	created    []*entity.Message
	createErr  error
	findAllRes []*entity.Message
	findErr    error
}

func (r *fakeMessageRepo) Create(ctx context.Context, message *entity.Message) error {
	if message.Content == "" ||
		(message.Sender != constant.MessageSenderUser && message.Sender != constant.MessageSenderBot) {
		return contract.ErrInvalidMessage
	}
	if r.createErr != nil {
		return r.createErr
	}
	m := *message
	r.created = append(r.created, &m)
	return nil
}

func (r *fakeMessageRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Message, error) {
	return r.findAllRes, r.findErr
}

type fakeUow struct {
	chats    *fakeChatRepo
	messages *fakeMessageRepo
}

func (u *fakeUow) ChatRepository() contract.ChatRepository {
	return u.chats
}

func (u *fakeUow) MessageRepository() contract.MessageRepository {
	return u.messages
}

type fakeFactory struct {
	uow *fakeUow
}

func (f *fakeFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return f.uow
}

type fakeGenerator struct {
	reply    string
	err      error
	captured *reply.Request
}

func (g *fakeGenerator) GenerateReply(ctx context.Context, req *reply.Request) (string, error) {
	g.captured = req
	if g.err != nil {
		return "", g.err
	}
	return g.reply, nil
}

type fakePublisher struct {
	events []events.Event
	err    error
}

func (p *fakePublisher) Publish(ctx context.Context, event events.Event) error {
	if p.err != nil {
		return p.err
	}
	p.events = append(p.events, event)
	return nil
}

type nopLogger struct{}

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopLogger) Info(module, message string, details map[string]interface{})  {}
func (nopLogger) Warn(module, message string, details map[string]interface{})  {}
func (nopLogger) Error(module, message string, details map[string]interface{}) {}

func (nopLogger) Sync() error { return nil }

func newFixture(gen *fakeGenerator) (*fakeUow, service.IChatService) {
	uow := &fakeUow{chats: &fakeChatRepo{}, messages: &fakeMessageRepo{}}
	svc := service.NewChatService(&fakeFactory{uow: uow}, gen, nil, nopLogger{})
	return uow, svc
}

// --- Tests ---

func TestSendChatNewChat(t *testing.T) {
	gen := &fakeGenerator{reply: "We have three backend openings."}
	uow, svc := newFixture(gen)

	res, err := svc.SendChat(context.Background(), "guest-abc", "203.0.113.7", &dto.SendChatRequest{
		Prompt: "Need a backend intern",
		History: []dto.ChatTurnDTO{
			{Sender: "user", Text: "hi"},
			{Sender: "bot", Text: "hello"},
		},
	})
	require.NoError(t, err)

	// A chat was minted for this identity and reported back.
	require.Len(t, uow.chats.created, 1)
	chat := uow.chats.created[0]
	assert.Equal(t, "guest-abc", chat.UserId)
	assert.NotEmpty(t, chat.ChatId)
	assert.Equal(t, chat.ChatId, res.NewChatId)
	assert.Equal(t, "We have three backend openings.", res.Reply)

	// Both turns persisted: user first with IP, bot second without.
	require.Len(t, uow.messages.created, 2)
	userMsg, botMsg := uow.messages.created[0], uow.messages.created[1]
	assert.Equal(t, constant.MessageSenderUser, userMsg.Sender)
	assert.Equal(t, "Need a backend intern", userMsg.Content)
	require.NotNil(t, userMsg.IpAddress)
	assert.Equal(t, "203.0.113.7", *userMsg.IpAddress)
	assert.Equal(t, constant.MessageSenderBot, botMsg.Sender)
	assert.Equal(t, "We have three backend openings.", botMsg.Content)
	assert.Nil(t, botMsg.IpAddress)
	assert.Equal(t, chat.ChatId, userMsg.ChatId)
	assert.Equal(t, chat.ChatId, botMsg.ChatId)

	// The collaborator saw the prompt, the history and the caller address.
	require.NotNil(t, gen.captured)
	assert.Equal(t, "Need a backend intern", gen.captured.Prompt)
	assert.Equal(t, chat.ChatId, gen.captured.ChatId)
	assert.Equal(t, "guest-abc", gen.captured.UserId)
	assert.Equal(t, "203.0.113.7", gen.captured.IpAddress)
	require.Len(t, gen.captured.History, 2)
	assert.Equal(t, reply.Turn{Sender: "user", Text: "hi"}, gen.captured.History[0])
	assert.Equal(t, reply.Turn{Sender: "bot", Text: "hello"}, gen.captured.History[1])
}

func TestSendChatExistingChat(t *testing.T) {
	gen := &fakeGenerator{reply: "Sure."}
	uow, svc := newFixture(gen)

	res, err := svc.SendChat(context.Background(), "guest-abc", "203.0.113.7", &dto.SendChatRequest{
		Prompt: "What about frontend roles?",
		ChatId: "existing-chat",
	})
	require.NoError(t, err)

	// Continuing a thread never creates a second chat row.
	assert.Empty(t, uow.chats.created)
	assert.Empty(t, res.NewChatId)
	assert.Equal(t, "Sure.", res.Reply)

	require.Len(t, uow.messages.created, 2)
	assert.Equal(t, "existing-chat", uow.messages.created[0].ChatId)
}

func TestSendChatEmptyPromptRejectedBeforeWrites(t *testing.T) {
	gen := &fakeGenerator{reply: "unused"}
	uow, svc := newFixture(gen)

	_, err := svc.SendChat(context.Background(), "guest-abc", "203.0.113.7", &dto.SendChatRequest{})
	require.Error(t, err)

	var appErr *serverutils.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, fiber.StatusBadRequest, appErr.Code)

	assert.Empty(t, uow.chats.created, "no orphaned chat row")
	assert.Empty(t, uow.messages.created, "no orphaned message row")
	assert.Nil(t, gen.captured, "collaborator never called")
}

func TestSendChatCollaboratorFailureKeepsUserTurn(t *testing.T) {
	gen := &fakeGenerator{err: errors.New("webhook failed with status 500")}
	uow, svc := newFixture(gen)

	_, err := svc.SendChat(context.Background(), "guest-abc", "203.0.113.7", &dto.SendChatRequest{
		Prompt: "Need a backend intern",
	})
	require.Error(t, err)

	var appErr *serverutils.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, fiber.StatusBadGateway, appErr.Code)
	assert.Equal(t, "Failed to process chat request.", appErr.Message)

	// The user turn stays persisted; no bot turn exists for it.
	require.Len(t, uow.messages.created, 1)
	assert.Equal(t, constant.MessageSenderUser, uow.messages.created[0].Sender)
}

func TestSendChatPublishesTurnEvent(t *testing.T) {
	gen := &fakeGenerator{reply: "Sure."}
	uow := &fakeUow{chats: &fakeChatRepo{}, messages: &fakeMessageRepo{}}
	pub := &fakePublisher{}
	svc := service.NewChatService(&fakeFactory{uow: uow}, gen, pub, nopLogger{})

	res, err := svc.SendChat(context.Background(), "guest-abc", "203.0.113.7", &dto.SendChatRequest{
		Prompt: "Need a backend intern",
	})
	require.NoError(t, err)

	require.Len(t, pub.events, 1)
	event := pub.events[0]
	assert.Equal(t, dto.EventTypeTurnCompleted, event.EventType())
	assert.False(t, event.Timestamp().IsZero())

	payload := event.Payload()
	assert.Equal(t, res.NewChatId, payload["chat_id"])
	assert.Equal(t, "guest-abc", payload["user_id"])
	assert.Equal(t, "203.0.113.7", payload["ip_address"])
	assert.Equal(t, true, payload["new_chat"])
	assert.Equal(t, len("Need a backend intern"), payload["prompt_chars"])
	assert.Equal(t, len("Sure."), payload["reply_chars"])
}

func TestSendChatPublishFailureDoesNotFailTurn(t *testing.T) {
	gen := &fakeGenerator{reply: "Sure."}
	uow := &fakeUow{chats: &fakeChatRepo{}, messages: &fakeMessageRepo{}}
	pub := &fakePublisher{err: errors.New("bus closed")}
	svc := service.NewChatService(&fakeFactory{uow: uow}, gen, pub, nopLogger{})

	res, err := svc.SendChat(context.Background(), "guest-abc", "203.0.113.7", &dto.SendChatRequest{
		Prompt: "Need a backend intern",
	})
	require.NoError(t, err)
	assert.Equal(t, "Sure.", res.Reply)
	assert.Len(t, uow.messages.created, 2, "the turn persists even when the audit publish fails")
}

func TestSendChatStorageFailure(t *testing.T) {
	gen := &fakeGenerator{reply: "unused"}
	uow, svc := newFixture(gen)
	uow.chats.createErr = errors.New("connection refused")

	_, err := svc.SendChat(context.Background(), "guest-abc", "203.0.113.7", &dto.SendChatRequest{
		Prompt: "Need a backend intern",
	})
	require.Error(t, err)

	var appErr *serverutils.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, fiber.StatusServiceUnavailable, appErr.Code)
	assert.Nil(t, gen.captured)
}

func TestGetHistoryMapsChats(t *testing.T) {
	gen := &fakeGenerator{}
	uow, svc := newFixture(gen)
	now := time.Now()
	uow.chats.findAllRes = []*entity.Chat{
		{ChatId: "c2", UserId: "guest-abc", CreatedAt: now},
		{ChatId: "c1", UserId: "guest-abc", CreatedAt: now.Add(-time.Hour)},
	}

	res, err := svc.GetHistory(context.Background(), "guest-abc")
	require.NoError(t, err)
	require.Len(t, res, 2)
	assert.Equal(t, "c2", res[0].ChatId)
	assert.Equal(t, "guest-abc", res[0].UserId)
}

func TestRestoreSessionNoChats(t *testing.T) {
	gen := &fakeGenerator{}
	_, svc := newFixture(gen)

	res, err := svc.RestoreSession(context.Background(), "guest-abc")
	require.NoError(t, err)
	assert.Equal(t, "guest-abc", res.UserId)
	assert.Empty(t, res.ChatId)
	assert.Equal(t, "User exists but has no chats.", res.Message)
}

func TestRestoreSessionChatWithoutMessages(t *testing.T) {
	gen := &fakeGenerator{}
	uow, svc := newFixture(gen)
	uow.chats.findOneRes = &entity.Chat{ChatId: "c9", UserId: "guest-abc", CreatedAt: time.Now()}

	res, err := svc.RestoreSession(context.Background(), "guest-abc")
	require.NoError(t, err)
	assert.Equal(t, "c9", res.ChatId)
	require.NotNil(t, res.Messages, "messages must stay an array for an empty chat")
	assert.Empty(t, res.Messages)
}

func TestRestoreSessionReturnsLatestChat(t *testing.T) {
	gen := &fakeGenerator{}
	uow, svc := newFixture(gen)
	ip := "203.0.113.7"
	uow.chats.findOneRes = &entity.Chat{ChatId: "c9", UserId: "guest-abc", CreatedAt: time.Now()}
	uow.messages.findAllRes = []*entity.Message{
		{ChatId: "c9", Sender: "user", Content: "hi", IpAddress: &ip},
		{ChatId: "c9", Sender: "bot", Content: "hello"},
	}

	res, err := svc.RestoreSession(context.Background(), "guest-abc")
	require.NoError(t, err)
	assert.Equal(t, "c9", res.ChatId)
	require.Len(t, res.Messages, 2)
	assert.Equal(t, "user", res.Messages[0].Sender)
	assert.Equal(t, "hi", res.Messages[0].Content)
	assert.Equal(t, ip, res.Messages[0].IpAddress)
	assert.Equal(t, "bot", res.Messages[1].Sender)
	assert.Empty(t, res.Messages[1].IpAddress)
}
