package controller

import (
	"hireai-be/internal/dto"
	"hireai-be/internal/pkg/identity"
	"hireai-be/internal/pkg/serverutils"
	"hireai-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IChatController interface {
	RegisterRoutes(r fiber.Router)
	SendChat(ctx *fiber.Ctx) error
	GetHistory(ctx *fiber.Ctx) error
	GetChatMessages(ctx *fiber.Ctx) error
	GetSession(ctx *fiber.Ctx) error
}

type chatController struct {
	chatService service.IChatService
	resolver    *identity.Resolver
}

func NewChatController(chatService service.IChatService, resolver *identity.Resolver) IChatController {
	return &chatController{
		chatService: chatService,
		resolver:    resolver,
	}
}

func (c *chatController) RegisterRoutes(r fiber.Router) {
	r.Post("/chat", c.SendChat)
	r.Get("/history", c.GetHistory)
	r.Get("/chat/:chatId", c.GetChatMessages)
	r.Get("/session", c.GetSession)
}

func (c *chatController) SendChat(ctx *fiber.Ctx) error {
	var req dto.SendChatRequest
	if err := ctx.BodyParser(&req); err != nil {
		appErr := serverutils.NewValidationError("Invalid request payload.")
		appErr.Err = err
		return appErr
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	// A minted identity rides back on this same response as a Set-Cookie.
	userId, _ := c.resolver.Resolve(ctx)
	ipAddress := serverutils.ClientIP(ctx)

	res, err := c.chatService.SendChat(ctx.Context(), userId, ipAddress, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}

func (c *chatController) GetHistory(ctx *fiber.Ctx) error {
	userId := ctx.Cookies(identity.CookieName)
	if userId == "" {
		return serverutils.NewAuthenticationError("User not authenticated.")
	}

	res, err := c.chatService.GetHistory(ctx.Context(), userId)
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}

func (c *chatController) GetChatMessages(ctx *fiber.Ctx) error {
	chatId := ctx.Params("chatId")

	res, err := c.chatService.GetChatMessages(ctx.Context(), chatId)
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}

func (c *chatController) GetSession(ctx *fiber.Ctx) error {
	userId := ctx.Cookies(identity.CookieName)
	if userId == "" {
		return ctx.JSON(dto.SessionStatusResponse{Message: "No active session found."})
	}

	res, err := c.chatService.RestoreSession(ctx.Context(), userId)
	if err != nil {
		return err
	}
	if res.Message != "" {
		return ctx.JSON(dto.SessionStatusResponse{UserId: res.UserId, Message: res.Message})
	}

	return ctx.JSON(res)
}
