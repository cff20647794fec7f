package telegram

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/horlamiedea/ura-health-backend/internal/mealplan"
	"github.com/horlamiedea/ura-health-backend/internal/metrics"
	"github.com/horlamiedea/ura-health-backend/internal/survey"
)

// PlanFinder looks up plan bundles for admin queries.
type PlanFinder interface {
	GetLatestByEmailCategory(ctx context.Context, email, category string) (*mealplan.Bundle, error)
}

// Bot is the operations bot: it alerts the admin chat on confirmed payments
// and answers plan lookups.
type Bot struct {
	api          *tgbotapi.BotAPI
	plans        PlanFinder
	metricsStore *metrics.Store
	adminChatID  int64
}

// NewBot initializes the Telegram bot.
func NewBot(token string, adminChatID int64, plans PlanFinder, metricsStore *metrics.Store) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to init telegram api: %w", err)
	}
	log.Printf("Authorized on account %s", api.Self.UserName)
	return &Bot{api: api, plans: plans, metricsStore: metricsStore, adminChatID: adminChatID}, nil
}

// Run polls for updates until ctx is cancelled. Only the admin chat is
// served.
func (b *Bot) Run(ctx context.Context) {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 30
	updates := b.api.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			return
		case update := <-updates:
			if update.Message == nil {
				continue
			}
			if update.Message.Chat.ID != b.adminChatID {
				log.Printf("Ignoring message from chat %d", update.Message.Chat.ID)
				continue
			}
			b.processMessage(ctx, update.Message)
		}
	}
}

func (b *Bot) processMessage(ctx context.Context, msg *tgbotapi.Message) {
	text := strings.TrimSpace(msg.Text)
	switch {
	case strings.HasPrefix(text, "/plan"):
		b.handlePlanLookup(ctx, msg.Chat.ID, strings.TrimSpace(strings.TrimPrefix(text, "/plan")))
	case strings.HasPrefix(text, "/metrics"):
		b.handleMetrics(ctx, msg.Chat.ID)
	default:
		b.send(msg.Chat.ID, "Commands:\n/plan <email> <category> - look up a plan\n/metrics - advisory call stats (7 days)")
	}
}

// handlePlanLookup answers "/plan email category".
func (b *Bot) handlePlanLookup(ctx context.Context, chatID int64, args string) {
	fields := strings.Fields(args)
	if len(fields) != 2 {
		b.send(chatID, "Usage: /plan <email> <category>")
		return
	}
	email := fields[0]
	category := survey.Canonical(fields[1])
	if category == "" {
		b.send(chatID, "Unknown category. Use diabetes, hbp, weight or detox.")
		return
	}

	bundle, err := b.plans.GetLatestByEmailCategory(ctx, email, category)
	if err != nil {
		b.send(chatID, fmt.Sprintf("No plan found for %s / %s.", email, category))
		return
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Plan %s\n", bundle.ID)
	fmt.Fprintf(&sb, "Email: %s\nCategory: %s\n", bundle.Email, bundle.Category)
	fmt.Fprintf(&sb, "Level: %d (%s)\n", bundle.Assessment.Level, bundle.Assessment.Label)
	fmt.Fprintf(&sb, "Preview: %v  Paid: %v\n", bundle.Preview != nil, bundle.Paid)
	fmt.Fprintf(&sb, "Created: %s", bundle.CreatedAt.Format(time.RFC3339))
	b.send(chatID, sb.String())
}

func (b *Bot) handleMetrics(ctx context.Context, chatID int64) {
	if b.metricsStore == nil {
		b.send(chatID, "Metrics are not enabled.")
		return
	}
	counts, err := b.metricsStore.CountByOutcome(ctx, 7)
	if err != nil {
		log.Printf("metrics lookup failed: %v", err)
		b.send(chatID, "Error fetching metrics.")
		return
	}
	if len(counts) == 0 {
		b.send(chatID, "No advisory calls in the last 7 days.")
		return
	}
	var sb strings.Builder
	sb.WriteString("Advisory calls (7 days):\n")
	for _, c := range counts {
		fmt.Fprintf(&sb, "%s: %d\n", c.Outcome, c.Count)
	}
	b.send(chatID, sb.String())
}

// NotifyPayment alerts the admin chat about a confirmed payment.
func (b *Bot) NotifyPayment(email, category, reference string, amountKobo int64) {
	text := fmt.Sprintf("Payment confirmed\nEmail: %s\nCategory: %s\nReference: %s\nAmount: NGN %.2f",
		email, category, reference, float64(amountKobo)/100)
	b.send(b.adminChatID, text)
}

func (b *Bot) send(chatID int64, text string) {
	if _, err := b.api.Send(tgbotapi.NewMessage(chatID, text)); err != nil {
		log.Printf("failed to send telegram message: %v", err)
	}
}
