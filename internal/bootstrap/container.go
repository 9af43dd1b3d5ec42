// FILE: internal/bootstrap/container.go
package bootstrap

import (
	"context"
	"log"
	"time"

	"radiant-system-be/internal/config"
	"radiant-system-be/internal/controller"
	"radiant-system-be/internal/handler"
	"radiant-system-be/internal/pkg/logger"
	"radiant-system-be/internal/pkg/mailer"
	"radiant-system-be/internal/repository/implementation"
	"radiant-system-be/internal/repository/memory"
	"radiant-system-be/internal/service"
	"radiant-system-be/internal/websocket"
	"radiant-system-be/pkg/database"
	"radiant-system-be/pkg/events"
	"radiant-system-be/pkg/genai"
	"radiant-system-be/pkg/recordstore"

	pktNats "radiant-system-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
)

// notificationTopic is the in-process watermill topic domain events are
// mirrored onto for websocket delivery.
const notificationTopic = "RADIANT_NOTIFICATIONS"

// sessionTTL matches the JWT expiry issued by the auth service.
const sessionTTL = 24 * time.Hour

type Container struct {
	// Controllers
	AuthController      controller.IAuthController
	UserController      controller.IUserController
	GeneratorController controller.IGeneratorController
	VaultController     controller.IVaultController
	TicketController    controller.ITicketController
	BillingController   controller.IBillingController
	ModeratorController controller.IModeratorController

	// Background Services (Exposed for main.go to run)
	NotificationService *service.NotificationService

	// WebSockets & Notification
	NotificationHandler *handler.NotificationHandler
	WebSocketHub        *websocket.Hub
}

func NewContainer(cfg *config.Config) *Container {
	// 1. Core Facades
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	emailService := mailer.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Email,
		cfg.SMTP.Password,
		cfg.SMTP.SenderName,
	)

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)
	channelPub := events.NewChannelPublisher(pubSub, notificationTopic)

	// NATS mirrors the same events outward, optional
	eventSinks := events.Fanout{channelPub}
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	} else {
		eventSinks = append(eventSinks, natsPub)
	}

	// Redis
	opt, err := redis.ParseURL(cfg.App.RedisURL)
	if err != nil {
		log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
		opt = &redis.Options{
			Addr: cfg.App.RedisURL,
		}
	}
	rdb := redis.NewClient(opt)
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Printf("[WARN] Failed to connect to Redis: %v", err)
	}

	// 3. Record Store (backend selected via STORAGE_BACKEND)
	var store recordstore.Store
	switch cfg.Store.Backend {
	case "redis":
		store = recordstore.NewRedisStore(rdb)
		log.Printf("[INFO] Using record store backend: REDIS")
	case "postgres":
		gormDB, err := database.NewGormDBFromDSN(cfg.Store.Connection)
		if err != nil {
			log.Fatalf("[FATAL] Unable to connect to GORM DB: %v", err)
		}
		store, err = recordstore.NewPostgresStore(gormDB)
		if err != nil {
			log.Fatalf("[FATAL] Unable to prepare record table: %v", err)
		}
		log.Printf("[INFO] Using record store backend: POSTGRES")
	default:
		store = recordstore.NewMemoryStore()
		log.Printf("[INFO] Using record store backend: MEMORY")
	}

	// 4. Repositories
	userRepo := implementation.NewUserRepository(store, sysLogger)
	ticketRepo := implementation.NewTicketRepository(store, sysLogger)
	txnRepo := implementation.NewTransactionRepository(store, sysLogger)
	vaultRepo := implementation.NewVaultRepository(store, sysLogger)
	sessionRepo := memory.NewSessionRepository(sessionTTL)

	// WebSocket Hub
	wsLogger := logger.NewIsolatedLogger("logs/notification.log")
	wsHub := websocket.NewHub(rdb, wsLogger)
	go wsHub.Run()

	// 5. AI boundary
	aiClient := genai.NewClient(cfg.Keys.GoogleGemini)

	// 6. Services
	authService := service.NewAuthService(userRepo, sessionRepo, emailService, eventSinks)
	quotaService := service.NewQuotaService(userRepo, sessionRepo)
	generatorService := service.NewGeneratorService(aiClient, quotaService, vaultRepo, eventSinks, sysLogger)
	vaultService := service.NewVaultService(vaultRepo)
	ticketService := service.NewTicketService(ticketRepo, userRepo, emailService, eventSinks)
	billingService := service.NewBillingService(txnRepo, userRepo, sessionRepo, emailService, eventSinks, sysLogger)
	moderatorService := service.NewModeratorService(userRepo, ticketRepo, txnRepo, sessionRepo, sysLogger)

	// 7. Notification System (drains the internal topic into the hub)
	notifService := service.NewNotificationService(
		pubSub,
		notificationTopic,
		ticketRepo,
		txnRepo,
		wsHub, // Hub implements NotificationDelivery
		wsLogger,
	)

	// Handler
	notifHandler := handler.NewNotificationHandler(wsHub, wsLogger)

	// 8. Bootstrap moderator account (env-seeded, no-op when unset)
	if err := authService.EnsureBootstrapModerator(context.Background()); err != nil {
		log.Printf("[WARN] Failed to seed bootstrap moderator: %v", err)
	}

	return &Container{
		NotificationHandler: notifHandler,
		WebSocketHub:        wsHub,
		NotificationService: notifService,

		AuthController:      controller.NewAuthController(authService),
		UserController:      controller.NewUserController(authService, quotaService),
		GeneratorController: controller.NewGeneratorController(generatorService),
		VaultController:     controller.NewVaultController(vaultService),
		TicketController:    controller.NewTicketController(ticketService, authService),
		BillingController:   controller.NewBillingController(billingService, authService),
		ModeratorController: controller.NewModeratorController(moderatorService, ticketService, billingService),
	}
}
