package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"

	"twototango/config"
	authadapter "twototango/internal/adapters/auth"
	emailadapter "twototango/internal/adapters/email"
	delivery "twototango/internal/delivery/http"
	"twototango/internal/delivery/http/controllers"
	"twototango/internal/delivery/http/middleware"
	"twototango/internal/repository/postgres"
	"twototango/internal/services"
)

const (
	bcryptCost     = 10
	serviceTimeout = 10 * time.Second
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		os.Stderr.WriteString("config: " + err.Error() + "\n")
		os.Exit(1)
	}
	logger := config.NewLogger()

	db, err := sql.Open("postgres", cfg.DBUrl)
	if err != nil {
		logger.Error("open database", "err", err)
		os.Exit(1)
	}
	defer db.Close()
	if err := db.Ping(); err != nil {
		logger.Error("ping database", "err", err)
		os.Exit(1)
	}

	// Repositories
	userRepo := postgres.NewUserRepository(db)
	eventRepo := postgres.NewEventRepository(db)
	tagRepo := postgres.NewTagRepository(db)
	interestRepo := postgres.NewInterestRepository(db)
	rsvpRepo := postgres.NewRSVPRepository(db)

	// Adapters
	hasher := authadapter.NewBcryptHasher(bcryptCost)
	tokenIssuer := authadapter.NewJWTIssuer(cfg.JWTSecret)
	tokenVerifier := authadapter.NewJWTVerifier(cfg.JWTSecret)
	mailer, err := emailadapter.NewMailer(emailadapter.MailerConfig{
		Provider:    cfg.EmailProvider,
		FromAddress: cfg.EmailFromAddress,
		FromName:    cfg.EmailFromName,
		SES: emailadapter.SESConfig{
			Region:          cfg.SESRegion,
			AccessKeyID:     cfg.SESAccessKeyID,
			SecretAccessKey: cfg.SESSecretKey,
		},
	})
	if err != nil {
		logger.Error("create mailer", "err", err)
		os.Exit(1)
	}

	// Services
	emailService := services.NewEmailService(mailer, emailadapter.NewTemplateRenderer())
	userService := services.NewUserService(userRepo, interestRepo, hasher)
	authService := services.NewAuthService(userService, hasher, tokenIssuer, cfg.JWTExpiry)
	interestService := services.NewInterestService(interestRepo)
	eventService := services.NewEventService(eventRepo, tagRepo, rsvpRepo, userRepo, interestRepo, emailService, serviceTimeout)

	// Controllers and router
	eventController := controllers.NewEventController(logger, eventService)
	interestController := controllers.NewInterestController(logger, interestService)
	userController := controllers.NewUserController(logger, userService)
	authController := controllers.NewAuthController(logger, authService)

	mux := delivery.NewRouter(eventController, interestController, userController, authController, tokenVerifier)
	handler := middleware.CORS(cfg.CORSAllowedOrigins, middleware.LoggingMiddleware(logger, mux))

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info("server listening", "port", cfg.Port, "env", cfg.Environment)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", "err", err)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("shutdown", "err", err)
	}
	logger.Info("server stopped")
}
