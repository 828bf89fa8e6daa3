package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/khoahotran/portfolio/adapters/event"
	httpAdapter "github.com/khoahotran/portfolio/adapters/http"
	"github.com/khoahotran/portfolio/adapters/mail"
	"github.com/khoahotran/portfolio/adapters/persistence"
	"github.com/khoahotran/portfolio/internal/application/service"
	contactUC "github.com/khoahotran/portfolio/internal/application/usecase/contact"
	educationUC "github.com/khoahotran/portfolio/internal/application/usecase/education"
	experienceUC "github.com/khoahotran/portfolio/internal/application/usecase/experience"
	skillUC "github.com/khoahotran/portfolio/internal/application/usecase/skill"
	"github.com/khoahotran/portfolio/internal/config"
	"github.com/khoahotran/portfolio/pkg/logger"
	"github.com/khoahotran/portfolio/pkg/tracing"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("FATAL: cannot load config: %v", err)
	}

	appLogger := logger.NewZapLogger(cfg.App.Env)
	defer appLogger.Sync()
	appLogger.Info("Start Portfolio API Server...")

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	shutdownTracing, err := tracing.Setup(ctx, cfg, appLogger, "portfolio-api")
	if err != nil {
		appLogger.Fatal("cannot init tracing", err)
	}
	defer shutdownTracing(context.Background())

	// Mail transport
	mailer, err := mail.NewMailer(ctx, cfg, appLogger)
	if err != nil {
		appLogger.Fatal("cannot init mailer", err)
	}

	// View events are optional
	var viewPublisher service.ViewEventPublisher
	if len(cfg.Kafka.Brokers) > 0 {
		kafkaClient, err := event.NewKafkaProducerClient(cfg, appLogger)
		if err != nil {
			appLogger.Fatal("cannot init Kafka", err)
		}
		defer kafkaClient.Close()
		viewPublisher = kafkaClient
	} else {
		appLogger.Warn("Kafka brokers not configured, experience view events disabled")
	}

	// Repositories
	experienceRepo := persistence.NewStaticExperienceRepo()
	educationRepo := persistence.NewStaticEducationRepo()
	skillRepo := persistence.NewStaticSkillRepo()

	// Use Cases
	listExperiencesUseCase := experienceUC.NewListExperiencesUseCase(experienceRepo, appLogger)
	getExperienceUseCase := experienceUC.NewGetExperienceUseCase(experienceRepo, viewPublisher, appLogger)
	educationUseCase := educationUC.NewEducationUseCase(educationRepo)
	listSkillsUseCase := skillUC.NewListSkillsUseCase(skillRepo)
	sendContactUseCase := contactUC.NewSendContactUseCase(mailer, contactUC.MailSettings{
		Sender:   cfg.Mail.User,
		Receiver: cfg.Mail.Receiver,
		Timeout:  cfg.Mail.Timeout,
	}, appLogger)

	// HTTP Handlers
	router := httpAdapter.NewRouter(httpAdapter.Handlers{
		Experience: httpAdapter.NewExperienceHandler(listExperiencesUseCase, getExperienceUseCase, appLogger),
		Education:  httpAdapter.NewEducationHandler(educationUseCase, appLogger),
		Contact:    httpAdapter.NewContactHandler(sendContactUseCase, appLogger),
		Site:       httpAdapter.NewSiteHandler(listSkillsUseCase, persistence.Manifest()),
	}, appLogger)

	srv := &http.Server{
		Addr:              ":" + cfg.App.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		appLogger.Info("Server running", zap.String("port", cfg.App.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Fatal("Cannot run server", err)
		}
	}()

	<-ctx.Done()
	appLogger.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Mail.Timeout+5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("Server forced to shutdown", err)
	}
}
