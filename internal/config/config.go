package config

import (
	"fmt"
	"os"
)

// Config holds the configuration for the application.
type Config struct {
	HTTPAddr     string
	DatabasePath string

	GeminiAPIKey string
	GeminiModel  string

	PaystackSecretKey string
	JWTSecret         string

	// Telegram admin bot (optional; the bot is disabled when the token is empty)
	TelegramBotToken    string
	TelegramAdminChatID int64
}

// NewFromEnv creates a new Config object from environment variables.
func NewFromEnv() (*Config, error) {
	geminiAPIKey := os.Getenv("GEMINI_API_KEY")
	if geminiAPIKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY environment variable not set")
	}

	paystackKey := os.Getenv("PAYSTACK_SECRET_KEY")
	if paystackKey == "" {
		return nil, fmt.Errorf("PAYSTACK_SECRET_KEY environment variable not set")
	}

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET environment variable not set")
	}

	httpAddr := os.Getenv("HTTP_ADDR")
	if httpAddr == "" {
		httpAddr = ":8080"
	}

	databasePath := os.Getenv("DATABASE_PATH")
	if databasePath == "" {
		databasePath = "data/ura-health.db"
	}

	geminiModel := os.Getenv("GEMINI_MODEL")
	if geminiModel == "" {
		geminiModel = "gemini-2.0-flash"
	}

	telegramBotToken := os.Getenv("TELEGRAM_BOT_TOKEN")
	telegramAdminChatIDStr := os.Getenv("TELEGRAM_ADMIN_CHAT_ID")
	var telegramAdminChatID int64
	if telegramAdminChatIDStr != "" {
		fmt.Sscanf(telegramAdminChatIDStr, "%d", &telegramAdminChatID)
	}

	return &Config{
		HTTPAddr:            httpAddr,
		DatabasePath:        databasePath,
		GeminiAPIKey:        geminiAPIKey,
		GeminiModel:         geminiModel,
		PaystackSecretKey:   paystackKey,
		JWTSecret:           jwtSecret,
		TelegramBotToken:    telegramBotToken,
		TelegramAdminChatID: telegramAdminChatID,
	}, nil
}
