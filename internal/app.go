package internal

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"sync"
	"syscall"
	"time"

	token_adapter "listings-service/internal/adapters/jwt"
	logger_adapter "listings-service/internal/adapters/logger"
	postgres_adapter "listings-service/internal/adapters/postgres"
	rabbitmq_adapter "listings-service/internal/adapters/rabbitmq"
	"listings-service/internal/adapters/rest"
	"listings-service/internal/configs"
	"listings-service/internal/constants"
	"listings-service/internal/core/port"
	"listings-service/internal/core/usecase"
	"listings-service/pkg/fluentlogger"
	"listings-service/pkg/postgres"
	"listings-service/pkg/rabbitmq/rabbitmq_common"
	"listings-service/pkg/rabbitmq/rabbitmq_producer"

	"github.com/fluent/fluent-logger-golang/fluent"
	"github.com/jackc/pgx/v5/pgxpool"
)

// App wires every adapter to the core and owns their lifecycles.
type App struct {
	config       *configs.AppConfig
	dbPool       *pgxpool.Pool
	apiServer    *rest.Server
	fluentClient *fluent.Fluent
	logger       port.LoggerPort

	eventProducer *rabbitmq_producer.Publisher
}

// NewApp is the composition root: every dependency is created and bound
// here and nowhere else.
func NewApp() (*App, error) {
	appConfig, err := configs.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("error loading application configuration: %w", err)
	}

	// Loggers first so everything below can report its own failures.
	var activeLoggers []port.LoggerPort

	slogCfg := logger_adapter.SlogConfig{
		Level:    parseLogLevel(appConfig.StdoutLogger.Level),
		IsJSON:   false,
		UseColor: true,
	}
	stdoutLogger := logger_adapter.NewSlogAdapter(slogCfg)
	activeLoggers = append(activeLoggers, stdoutLogger)

	var fluentClient *fluent.Fluent
	if appConfig.FluentBit.Enabled {
		fluentClient, err = fluentlogger.NewClient(fluentlogger.Config{
			Host:      appConfig.FluentBit.Host,
			Port:      appConfig.FluentBit.Port,
			TagPrefix: appConfig.AppName,
		})
		if err != nil {
			stdoutLogger.Error("Failed to create fluentbit client", err, nil)
			return nil, fmt.Errorf("failed to create fluentbit client: %w", err)
		}

		fluentAdapter, err := logger_adapter.NewFluentLoggerAdapter(fluentClient, parseLogLevel(appConfig.FluentBit.Level))
		if err != nil {
			stdoutLogger.Error("Failed to create fluentbit adapter", err, nil)
			fluentClient.Close()
			return nil, err
		}
		activeLoggers = append(activeLoggers, fluentAdapter)
	}

	multiLogger, err := logger_adapter.NewMultiloggerAdapter(activeLoggers...)
	if err != nil {
		return nil, fmt.Errorf("failed to create multi-logger: %w", err)
	}

	baseLogger := multiLogger.WithFields(port.Fields{
		"service_name": appConfig.AppName,
	})

	appLogger := baseLogger.WithFields(port.Fields{"component": "app"})
	appLogger.Info("Logger system initialized", port.Fields{
		"active_loggers": len(activeLoggers), "fluent_enabled": appConfig.FluentBit.Enabled,
	})

	// Storage.
	dbPool, err := postgres.NewClient(context.Background(), postgres.Config{DatabaseURL: appConfig.Database.URL})
	if err != nil {
		appLogger.Error("Failed to connect to PostgreSQL", err, nil)
		return nil, fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}
	appLogger.Info("Successfully connected to PostgreSQL pool!", nil)

	propertyRepository, err := postgres_adapter.NewPropertyRepository(dbPool)
	if err != nil {
		appLogger.Error("Failed to create property repository", err, nil)
		dbPool.Close()
		return nil, fmt.Errorf("failed to create property repository: %w", err)
	}
	referenceRepository, err := postgres_adapter.NewReferenceRepository(dbPool)
	if err != nil {
		appLogger.Error("Failed to create reference repository", err, nil)
		dbPool.Close()
		return nil, fmt.Errorf("failed to create reference repository: %w", err)
	}
	userRepository, err := postgres_adapter.NewUserRepository(dbPool)
	if err != nil {
		appLogger.Error("Failed to create user repository", err, nil)
		dbPool.Close()
		return nil, fmt.Errorf("failed to create user repository: %w", err)
	}
	settingsRepository, err := postgres_adapter.NewSettingsRepository(dbPool)
	if err != nil {
		appLogger.Error("Failed to create settings repository", err, nil)
		dbPool.Close()
		return nil, fmt.Errorf("failed to create settings repository: %w", err)
	}
	appLogger.Info("Postgres repositories initialized.", nil)

	// Token service.
	tokenService, err := token_adapter.NewTokenService(appConfig.Auth.JWTSigningKey)
	if err != nil {
		appLogger.Error("Failed to create token service", err, nil)
		dbPool.Close()
		return nil, fmt.Errorf("failed to create token service: %w", err)
	}

	// Outgoing events. Without a broker the noop adapter drops them.
	var domainEvents port.DomainEventsPort = rabbitmq_adapter.NewNoopDomainEvents()
	var eventProducer *rabbitmq_producer.Publisher
	if appConfig.RabbitMQ.Enabled {
		connManagerLogger := baseLogger.WithFields(port.Fields{"component": "rabbitmq_conn_manager"})
		connManager, err := rabbitmq_common.GetManager(appConfig.RabbitMQ.URL, rabbitmq_adapter.NewPkgLoggerBridge(connManagerLogger))
		if err != nil {
			appLogger.Error("Failed to create connection manager", err, nil)
			dbPool.Close()
			return nil, fmt.Errorf("failed to create connection manager: %w", err)
		}
		appLogger.Info("RabbitMQ Connection Manager initialized.", nil)

		producerLogger := baseLogger.WithFields(port.Fields{"component": "rabbitmq_producer"})
		producerCfg := rabbitmq_producer.PublisherConfig{
			Config:                   rabbitmq_common.Config{URL: appConfig.RabbitMQ.URL},
			ExchangeName:             constants.ExchangeName,
			ExchangeType:             constants.ExchangeType,
			DurableExchange:          true,
			DeclareExchangeIfMissing: true,

			Logger: rabbitmq_adapter.NewPkgLoggerBridge(producerLogger),
		}
		eventProducer, err = rabbitmq_producer.NewPublisher(producerCfg, connManager)
		if err != nil {
			appLogger.Error("Failed to create event producer", err, nil)
			dbPool.Close()
			return nil, fmt.Errorf("failed to create event producer: %w", err)
		}
		appLogger.Info("RabbitMQ Event Producer initialized.", nil)

		domainEvents, err = rabbitmq_adapter.NewDomainEventsAdapter(eventProducer)
		if err != nil {
			appLogger.Error("Failed to create domain events adapter", err, nil)
			dbPool.Close()
			return nil, fmt.Errorf("failed to create domain events adapter: %w", err)
		}
	}

	// Use cases.
	accessTokenTTL := time.Duration(appConfig.Auth.AccessTokenTTL) * time.Minute

	searchPropertiesUC := usecase.NewSearchPropertiesUseCase(propertyRepository, referenceRepository)
	getFilterOptionsUC := usecase.NewGetFilterOptionsUseCase(propertyRepository, referenceRepository)
	getDictionariesUC := usecase.NewGetDictionariesUseCase(referenceRepository)
	getPropertyDetailsUC := usecase.NewGetPropertyDetailsUseCase(propertyRepository)
	savePropertyUC := usecase.NewSavePropertyUseCase(propertyRepository, userRepository, referenceRepository, domainEvents)
	deletePropertyUC := usecase.NewDeletePropertyUseCase(propertyRepository)

	adminListPropertiesUC := usecase.NewAdminListPropertiesUseCase(propertyRepository, referenceRepository)
	updatePropertyStatusUC := usecase.NewUpdatePropertyStatusUseCase(propertyRepository, domainEvents)
	featurePropertyUC := usecase.NewFeaturePropertyUseCase(propertyRepository)

	registerUserUC := usecase.NewRegisterUserUseCase(userRepository, tokenService, accessTokenTTL, appConfig.Auth.TrialDays)
	loginUserUC := usecase.NewLoginUserUseCase(userRepository, tokenService, accessTokenTTL)

	adminListUsersUC := usecase.NewAdminListUsersUseCase(userRepository)
	suspendUserUC := usecase.NewSuspendUserUseCase(userRepository, domainEvents)
	unsuspendUserUC := usecase.NewUnsuspendUserUseCase(userRepository)
	extendTrialUC := usecase.NewExtendTrialUseCase(userRepository)
	changeUserRoleUC := usecase.NewChangeUserRoleUseCase(userRepository)

	getSettingsUC := usecase.NewGetSiteSettingsUseCase(settingsRepository)
	updateSettingsUC := usecase.NewUpdateSiteSettingsUseCase(settingsRepository)

	appLogger.Info("All use cases initialized.", nil)

	// REST API server.
	propertyHandler := rest.NewPropertyHandler(searchPropertiesUC, getPropertyDetailsUC, savePropertyUC, deletePropertyUC, adminListPropertiesUC)
	filterHandler := rest.NewFilterHandler(getFilterOptionsUC, getDictionariesUC)
	authHandlers := rest.NewAuthHandlers(registerUserUC, loginUserUC)
	adminHandler := rest.NewAdminHandler(
		adminListPropertiesUC, updatePropertyStatusUC, featurePropertyUC,
		adminListUsersUC, suspendUserUC, unsuspendUserUC, extendTrialUC, changeUserRoleUC,
	)
	settingsHandler := rest.NewSettingsHandler(getSettingsUC, updateSettingsUC)

	apiServer := rest.NewServer(
		appConfig.Rest.Port,
		appConfig.Rest.AllowedOrigins,
		tokenService,
		propertyHandler,
		filterHandler,
		authHandlers,
		adminHandler,
		settingsHandler,
		baseLogger,
	)
	appLogger.Info("REST API server configured.", nil)

	return &App{
		config:        appConfig,
		dbPool:        dbPool,
		apiServer:     apiServer,
		fluentClient:  fluentClient,
		logger:        appLogger,
		eventProducer: eventProducer,
	}, nil
}

// Run starts the server and blocks until a signal or a fatal error.
func (a *App) Run() error {
	appCtx, cancelApp := context.WithCancel(context.Background())

	var wg sync.WaitGroup

	defer func() {
		a.logger.Info("Shutdown sequence initiated...", nil)

		wg.Wait()

		if a.apiServer != nil {
			if err := a.apiServer.Stop(context.Background()); err != nil {
				a.logger.Error("Error during API server shutdown", err, nil)
			}
		}

		if a.eventProducer != nil {
			if err := a.eventProducer.Close(); err != nil {
				a.logger.Error("Error closing event producer", err, nil)
			}
		}

		if a.dbPool != nil {
			a.dbPool.Close()
			a.logger.Info("PostgreSQL pool closed.", nil)
		}

		a.logger.Info("Application shut down gracefully.", nil)

		if a.fluentClient != nil {
			if err := a.fluentClient.Close(); err != nil {
				// stdout directly; fluent may already be unreachable.
				fmt.Printf("ERROR: Error closing fluent client: %v\n", err)
			}
		}
	}()

	a.logger.Info("Application is starting...", nil)

	errorsCh := make(chan error, 1)

	go func() {
		a.logger.Info("Starting HTTP server...", port.Fields{"port": a.config.Rest.Port})
		if err := a.apiServer.Start(); err != nil && err != http.ErrServerClosed {
			errorsCh <- fmt.Errorf("failed to start HTTP server: %w", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	a.logger.Info("Application running. Waiting for signals or server error...", nil)
	select {
	case receivedSignal := <-quit:
		a.logger.Warn("Received OS signal, shutting down...", port.Fields{"signal": receivedSignal.String()})
	case err := <-errorsCh:
		a.logger.Error("A critical component failed, shutting down", err, nil)
	case <-appCtx.Done():
		a.logger.Warn("Context was cancelled unexpectedly, shutting down...", nil)
	}

	cancelApp()

	return nil
}

func parseLogLevel(levelStr string) slog.Level {
	switch strings.ToLower(levelStr) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		log.Printf("Warning: Unknown log level '%s'. Defaulting to 'info'.", levelStr)
		return slog.LevelInfo
	}
}
