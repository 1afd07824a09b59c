package bootstrap

import (
	"log"

	"interview-eval-be/internal/config"
	"interview-eval-be/internal/controller"
	"interview-eval-be/internal/pkg/logger"
	"interview-eval-be/internal/repository/memory"
	"interview-eval-be/internal/repository/unitofwork"
	"interview-eval-be/internal/service"
	"interview-eval-be/pkg/evaluator"
	pkgNats "interview-eval-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	InterviewProcessingController controller.IInterviewProcessingController
	InterviewSessionController    controller.IInterviewSessionController

	// Background Services (Exposed for main.go to run)
	PipelineWorker service.IPipelineWorker

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

	// NATS is auxiliary: a dead broker degrades to no domain events.
	natsPub, err := pkgNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
		natsPub = nil
	}

	// 3. Infrastructure clients
	evaluatorClient := evaluator.NewClient(evaluator.Config{
		BaseURL:        cfg.Evaluator.BaseURL,
		APIKey:         cfg.Evaluator.APIKey,
		ConnectTimeout: cfg.Evaluator.ConnectTimeout,
		RequestTimeout: cfg.Evaluator.RequestTimeout,
		ReadTimeout:    cfg.Evaluator.ReadTimeout,
		HealthTimeout:  cfg.Evaluator.HealthTimeout,
		MaxAttempts:    cfg.Evaluator.MaxAttempts,
		RetryInterval:  cfg.Evaluator.RetryInterval,
	})

	jobRepository := memory.NewJobRepository(cfg.Jobs.TTL)

	// 4. Services
	publisherService := service.NewPublisherService(pubSub, cfg.App.PipelineTopic)
	criteriaService := service.NewCriteriaService(uowFactory)
	sessionService := service.NewInterviewSessionService(uowFactory, sysLogger)
	processingService := service.NewInterviewProcessingService(
		uowFactory,
		criteriaService,
		evaluatorClient,
		jobRepository,
		publisherService,
		natsPub,
		sysLogger,
	)

	pipelineWorker := service.NewPipelineWorker(
		pubSub,
		cfg.App.PipelineTopic,
		cfg.App.PipelineWorkers,
		processingService,
		sysLogger,
	)

	// 5. Controllers
	return &Container{
		InterviewProcessingController: controller.NewInterviewProcessingController(processingService),
		InterviewSessionController:    controller.NewInterviewSessionController(sessionService),
		PipelineWorker:                pipelineWorker,
		Logger:                        sysLogger,
	}
}
