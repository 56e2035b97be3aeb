package main

import (
	"context"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/sponsoring-app/sponsoring-backend/internal/cache"
	"github.com/sponsoring-app/sponsoring-backend/internal/config"
	"github.com/sponsoring-app/sponsoring-backend/internal/db"
	httpHandlers "github.com/sponsoring-app/sponsoring-backend/internal/http/handlers"
	httpRouter "github.com/sponsoring-app/sponsoring-backend/internal/http/router"
	"github.com/sponsoring-app/sponsoring-backend/internal/infrastructure/persistence"
	newHandler "github.com/sponsoring-app/sponsoring-backend/internal/interface/http/handler"
	"github.com/sponsoring-app/sponsoring-backend/internal/logger"
	"github.com/sponsoring-app/sponsoring-backend/internal/repository"
	"github.com/sponsoring-app/sponsoring-backend/internal/service"
	"github.com/sponsoring-app/sponsoring-backend/internal/storage"
	"github.com/sponsoring-app/sponsoring-backend/internal/usecase/collaboration"
	"github.com/sponsoring-app/sponsoring-backend/internal/usecase/conversation"
	"github.com/sponsoring-app/sponsoring-backend/internal/ws"
)

func main() {
	// Kontekst dla graceful shutdown.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("main: błąd ładowania konfiguracji: %v", err)
	}

	logLevel := "info"
	if cfg.Env == "development" {
		logLevel = "debug"
		logger.Init(logLevel)
		logger.SetTextFormatter()
	} else {
		logger.Init(logLevel)
	}

	// Połączenie z bazą i migracje.
	dbConn, err := db.NewPostgres(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("main: błąd połączenia z bazą: %v", err)
	}
	defer safeClose(dbConn)

	if err := db.RunMigrations(ctx, dbConn, cfg.MigrationsPath); err != nil {
		log.Fatalf("main: błąd migracji: %v", err)
	}

	tokenManager := service.NewTokenManager(cfg.JWTSecret, cfg.RefreshSecret, cfg.AccessTokenTTL, cfg.RefreshTokenTTL)

	photoStorage, err := storage.NewPhotoStorage(cfg.MediaStoragePath, cfg.MaxUploadSizeMB)
	if err != nil {
		log.Fatalf("main: nie udało się przygotować magazynu plików: %v", err)
	}

	// Repozytoria.
	userRepo := repository.NewUserRepository(dbConn)
	mediaRepo := repository.NewMediaRepository(dbConn)
	notificationRepo := repository.NewNotificationRepository(dbConn)

	eventRepo := persistence.NewEventRepositoryAdapter(dbConn)
	optionRepo := persistence.NewSponsorshipOptionRepositoryAdapter(dbConn)
	collabRepo := persistence.NewCollaborationRepositoryAdapter(dbConn)
	convRepo := persistence.NewConversationRepositoryAdapter(dbConn)
	msgRepo := persistence.NewMessageRepositoryAdapter(dbConn)

	// Serwisy.
	authService := service.NewAuthService(userRepo, tokenManager)
	notificationService := service.NewNotificationService(notificationRepo)

	// Pamięć podręczna ostatnich wiadomości.
	messageCache := cache.NewMessageCache(cfg.ChatCacheSize)

	// WebSockety.
	hub := ws.NewHub(ctx)
	hub.SetNotificationSaver(ws.NewNotificationServiceAdapter(notificationService))
	go hub.Run()

	// Przypadki użycia współprac.
	createCollabUC := collaboration.NewCreateCollaborationUseCase(collabRepo, eventRepo, optionRepo)
	changeStatusUC := collaboration.NewChangeStatusUseCase(collabRepo)
	updateTermsUC := collaboration.NewUpdateTermsUseCase(collabRepo)
	getCollabUC := collaboration.NewGetCollaborationUseCase(collabRepo)
	listMyCollabsUC := collaboration.NewListMyCollaborationsUseCase(collabRepo)

	// Przypadki użycia konwersacji.
	getOrCreateConvUC := conversation.NewGetOrCreateConversationUseCase(convRepo, userRepo)
	listMyConvsUC := conversation.NewListMyConversationsUseCase(convRepo)
	sendMessageUC := conversation.NewSendMessageUseCase(convRepo, msgRepo, messageCache)
	listMessagesUC := conversation.NewListMessagesUseCase(convRepo, msgRepo)
	listRecentUC := conversation.NewListRecentMessagesUseCase(convRepo, msgRepo, messageCache)
	updateMessageUC := conversation.NewUpdateMessageUseCase(msgRepo, messageCache)
	deleteMessageUC := conversation.NewDeleteMessageUseCase(msgRepo, messageCache)

	// Handlery HTTP.
	authHandler := httpHandlers.NewAuthHandler(authService)
	profileHandler := httpHandlers.NewProfileHandler(userRepo)
	eventHandler := httpHandlers.NewEventHandler(eventRepo, optionRepo)
	mediaHandler := httpHandlers.NewMediaHandler(mediaRepo, photoStorage)
	notificationHandler := httpHandlers.NewNotificationHandler(notificationService)
	wsHandler := httpHandlers.NewWSHandler(hub, tokenManager)
	healthHandler := httpHandlers.NewHealthHandler(dbConn)

	collaborationHandler := newHandler.NewCollaborationHandler(createCollabUC, changeStatusUC, updateTermsUC, getCollabUC, listMyCollabsUC, hub)
	conversationHandler := newHandler.NewConversationHandler(getOrCreateConvUC, listMyConvsUC, sendMessageUC, listMessagesUC, listRecentUC, updateMessageUC, deleteMessageUC, hub)

	engine := httpRouter.SetupRouter(
		cfg,
		authHandler,
		profileHandler,
		eventHandler,
		mediaHandler,
		notificationHandler,
		wsHandler,
		healthHandler,
		tokenManager,
		collaborationHandler,
		conversationHandler,
	)

	server := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: engine,
	}

	// Zamykamy serwer po otrzymaniu sygnału.
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Printf("main: błąd zatrzymywania serwera http: %v", err)
		}
	}()

	log.Printf("main: serwer HTTP nasłuchuje na porcie %s", cfg.HTTPPort)

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("main: serwer zakończył się błędem: %v", err)
	}
}

// safeClose zamyka połączenie z bazą.
func safeClose(conn *sqlx.DB) {
	if err := conn.Close(); err != nil {
		log.Printf("main: błąd zamykania połączenia z bazą: %v", err)
	}
}
