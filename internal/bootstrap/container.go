package bootstrap

import (
	"context"
	"log"

	"brand-chatbot-be/internal/config"
	"brand-chatbot-be/internal/controller"
	"brand-chatbot-be/internal/pkg/logger"
	"brand-chatbot-be/internal/pkg/mailer"
	"brand-chatbot-be/internal/repository/memory"
	"brand-chatbot-be/internal/repository/unitofwork"
	"brand-chatbot-be/internal/service"
	"brand-chatbot-be/internal/websocket"

	pkgNats "brand-chatbot-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	ChatController  controller.IChatController
	BrandController controller.IBrandController
	AdminController controller.IAdminController
	FeedController  controller.IFeedController

	// Background services (run by main.go)
	ReaperService   service.IReaperService
	ConsumerService service.IConsumerService
	FeedService     service.IFeedService

	// WebSockets
	WebSocketHub *websocket.Hub

	Logger logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	emailService := mailer.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Email,
		cfg.SMTP.Password,
		cfg.SMTP.Email,
		cfg.SMTP.SenderName,
	)

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 2.5 Infrastructure
	natsPub, err := pkgNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}
	natsSub, err := pkgNats.NewSubscriber(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Subscriber: %v", err)
	}

	var rdb *redis.Client
	opt, err := redis.ParseURL(cfg.App.RedisURL)
	if err != nil {
		log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
		opt = &redis.Options{
			Addr: cfg.App.RedisURL,
		}
	}
	rdb = redis.NewClient(opt)
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Printf("[WARN] Failed to connect to Redis: %v (reaper lease and feed relay degrade gracefully)", err)
		rdb = nil
	}

	// WebSocket Hub
	wsHub := websocket.NewHub(rdb, sysLogger)
	go wsHub.Run()

	// 3. Services
	publisherService := service.NewPublisherService(pubSub, natsPub, sysLogger)

	brandCache := memory.NewBrandCache()
	brandService := service.NewBrandService(uowFactory, brandCache)
	userService := service.NewUserService(uowFactory)
	sessionService := service.NewSessionService(uowFactory, brandService, userService, publisherService)

	authService := service.NewAuthService(cfg.Admin)
	dashboardService := service.NewDashboardService(uowFactory, sysLogger, cfg.Reaper)

	reaperService := service.NewReaperService(uowFactory, rdb, publisherService, sysLogger, cfg.Reaper)
	consumerService := service.NewConsumerService(pubSub, uowFactory, brandService, emailService, sysLogger)
	feedService := service.NewFeedService(pubSub, wsHub, sysLogger)

	analyticsConsumer := service.NewAnalyticsConsumerService(natsSub, uowFactory, sysLogger)
	if natsSub != nil {
		go analyticsConsumer.Start()
	}

	// 4. Controllers
	return &Container{
		ChatController:  controller.NewChatController(sessionService),
		BrandController: controller.NewBrandController(brandService),
		AdminController: controller.NewAdminController(authService, dashboardService, userService, sessionService),
		FeedController:  controller.NewFeedController(wsHub),

		ReaperService:   reaperService,
		ConsumerService: consumerService,
		FeedService:     feedService,

		WebSocketHub: wsHub,
		Logger:       sysLogger,
	}
}
