package app

import (
	"database/sql"
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	_ "github.com/lib/pq"

	"github.com/revertpixels/CardReminder/internal/config"
	"github.com/revertpixels/CardReminder/internal/handlers"
	"github.com/revertpixels/CardReminder/internal/middleware"
	"github.com/revertpixels/CardReminder/internal/pdf"
	"github.com/revertpixels/CardReminder/internal/repositories"
	"github.com/revertpixels/CardReminder/internal/routes"
	"github.com/revertpixels/CardReminder/internal/scheduler"
	"github.com/revertpixels/CardReminder/internal/services"
	"github.com/revertpixels/CardReminder/internal/storage"
)

func Run() {
	cfg := config.LoadConfig()
	middleware.SetJWTKey(cfg.Auth.JWTSecret)

	// === DB ===
	db, err := sql.Open("postgres", cfg.Database.DSN)
	if err != nil {
		log.Fatal("Failed to connect to DB: ", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("Failed to close DB: %v", err)
		}
	}()

	if err := storage.RunMigrations(db); err != nil {
		log.Fatal("Failed to run migrations: ", err)
	}

	// === Repos ===
	userRepo := repositories.NewUserRepository(db)
	cardRepo := repositories.NewCardRepository(db)
	resetRepo := repositories.NewPasswordResetRepository(db)

	// === Services ===
	authService := services.NewAuthService()
	emailService := services.NewEmailService(
		cfg.Email.SMTPHost,
		cfg.Email.SMTPPort,
		cfg.Email.SMTPUser,
		cfg.Email.SMTPPassword,
		cfg.Email.FromEmail,
	)

	// Telegram is optional: without a bot token reminders go out by
	// email only
	telegramService, err := services.NewTelegramService(cfg.Telegram)
	if err != nil {
		log.Printf("Telegram disabled: %v", err)
		telegramService = nil
	}

	userService := services.NewUserService(userRepo, emailService, authService)
	cardService := services.NewCardService(cardRepo)
	resetService := services.NewPasswordResetService(userRepo, resetRepo, emailService, authService)
	reminderService := services.NewReminderService(cardRepo, emailService, telegramService)

	statementGen := pdf.NewStatementGenerator()

	// === Handlers ===
	authHandler := handlers.NewAuthHandler(userService, authService)
	resetHandler := handlers.NewResetHandler(resetService)
	cardHandler := handlers.NewCardHandler(cardService, statementGen)
	dashboardHandler := handlers.NewDashboardHandler(cardService)

	// === Scheduler ===
	sched, err := scheduler.New(reminderService)
	if err != nil {
		log.Fatal("Failed to build scheduler: ", err)
	}
	sched.Start()
	defer func() {
		if err := sched.Stop(); err != nil {
			log.Printf("Failed to stop scheduler: %v", err)
		}
	}()

	// === Gin ===
	router := gin.Default()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(corsMiddleware())

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	routes.SetupRoutes(
		router,
		authHandler,
		resetHandler,
		cardHandler,
		dashboardHandler,
	)

	// === Run ===
	listenAddr := fmt.Sprintf(":%d", cfg.Server.Port)
	log.Printf("Server running on %s", listenAddr)
	if err := router.Run(listenAddr); err != nil {
		log.Fatal("Failed to start server: ", err)
	}
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	}
}
