package bootstrap

import (
	"log"

	"hireai-be/internal/config"
	"hireai-be/internal/controller"
	"hireai-be/internal/pkg/identity"
	"hireai-be/internal/pkg/logger"
	"hireai-be/internal/repository/unitofwork"
	"hireai-be/internal/service"
	"hireai-be/pkg/reply/factory"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	ChatController controller.IChatController

	// Background Services (Exposed for main.go to run)
	AuditService service.IAuditService

	Logger logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 3. Reply Generator (selected once here, never branched on per request)
	generator, err := factory.NewGenerator(
		cfg.Ai.ReplyProvider,
		cfg.Ai.WebhookURL,
		cfg.Ai.GeminiApiKey,
		cfg.Ai.GeminiModel,
	)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize reply provider: %v", err)
	}
	log.Printf("[INFO] Using reply provider: %s", cfg.Ai.ReplyProvider)

	// 4. Services
	publisherService := service.NewPublisherService(cfg.App.TurnTopicName, pubSub)

	auditLogger := logger.NewIsolatedLogger(cfg.App.AuditLogFilePath)
	auditService := service.NewAuditService(pubSub, cfg.App.TurnTopicName, auditLogger)

	chatService := service.NewChatService(uowFactory, generator, publisherService, sysLogger)

	// 5. Controllers
	resolver := identity.NewResolver()
	chatController := controller.NewChatController(chatService, resolver)

	return &Container{
		ChatController: chatController,
		AuditService:   auditService,
		Logger:         sysLogger,
	}
}
