package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"

	"github.com/horlamiedea/ura-health-backend/internal/assessment"
	"github.com/horlamiedea/ura-health-backend/internal/auth"
	"github.com/horlamiedea/ura-health-backend/internal/config"
	"github.com/horlamiedea/ura-health-backend/internal/database"
	"github.com/horlamiedea/ura-health-backend/internal/llm"
	"github.com/horlamiedea/ura-health-backend/internal/mealplan"
	"github.com/horlamiedea/ura-health-backend/internal/metrics"
	"github.com/horlamiedea/ura-health-backend/internal/payment"
	"github.com/horlamiedea/ura-health-backend/internal/profile"
	"github.com/horlamiedea/ura-health-backend/internal/server"
	"github.com/horlamiedea/ura-health-backend/internal/telegram"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg, err := config.NewFromEnv()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	ctx := context.Background()

	db, err := database.NewDB(cfg.DatabasePath)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	bundleRepo := mealplan.NewRepository(db.SQL)
	profileRepo := profile.NewRepository(db.SQL)
	paymentRepo := payment.NewRepository(db.SQL)
	metricsStore := metrics.NewStore(db.SQL)

	geminiClient, err := llm.NewGeminiClient(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to create Gemini client: %v", err)
	}
	if closer, ok := geminiClient.(llm.Closer); ok {
		defer closer.Close()
	}

	assessor := assessment.NewAssessor(geminiClient).
		WithRecorder(metrics.NewRecorder(metricsStore, cfg.GeminiModel))

	paystackClient := payment.NewPaystackClient(cfg.PaystackSecretKey)
	tokens := auth.NewManager(cfg.JWTSecret)

	var notifier server.PaymentNotifier
	if cfg.TelegramBotToken != "" {
		bot, err := telegram.NewBot(cfg.TelegramBotToken, cfg.TelegramAdminChatID, bundleRepo, metricsStore)
		if err != nil {
			log.Fatalf("Failed to initialize Telegram bot: %v", err)
		}
		notifier = bot
		go bot.Run(ctx)
	}

	srv := server.New(bundleRepo, profileRepo, paymentRepo, paystackClient,
		assessor, tokens, notifier, cfg.PaystackSecretKey)

	if err := srv.Start(cfg.HTTPAddr); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
