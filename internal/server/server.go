package server

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/horlamiedea/ura-health-backend/internal/assessment"
	"github.com/horlamiedea/ura-health-backend/internal/auth"
	"github.com/horlamiedea/ura-health-backend/internal/mealplan"
	"github.com/horlamiedea/ura-health-backend/internal/payment"
	"github.com/horlamiedea/ura-health-backend/internal/profile"
	"github.com/horlamiedea/ura-health-backend/internal/survey"
)

// BundleStore persists plan bundles.
type BundleStore interface {
	Create(ctx context.Context, b *mealplan.Bundle) error
	GetByID(ctx context.Context, id string) (*mealplan.Bundle, error)
	GetLatestByEmailCategory(ctx context.Context, email, category string) (*mealplan.Bundle, error)
	SaveSelection(ctx context.Context, id string, selectedIDs []int) error
	SavePreviewPlan(ctx context.Context, id string, plan *mealplan.Plan) (bool, error)
	SaveFullPlan(ctx context.Context, id string, plan *mealplan.Plan) (bool, error)
	MarkPaid(ctx context.Context, id, paymentRef string) error
	HasFreePlanForEmail(ctx context.Context, email, excludeBundleID string) (bool, error)
}

// ProfileStore persists guest profiles.
type ProfileStore interface {
	Upsert(ctx context.Context, bio survey.Biodata) (*profile.Profile, error)
	GetByEmail(ctx context.Context, email string) (*profile.Profile, error)
}

// PaymentStore persists payment records.
type PaymentStore interface {
	Create(ctx context.Context, p *payment.Payment) error
	GetByReference(ctx context.Context, reference string) (*payment.Payment, error)
	MarkStatus(ctx context.Context, reference, status, channel string) error
}

// Gateway is the payment provider.
type Gateway interface {
	Initialize(ctx context.Context, req payment.InitializeRequest) (*payment.InitializeResponse, error)
	Verify(ctx context.Context, reference string) (*payment.VerifyResponse, error)
}

// Assessor resolves severity assessments.
type Assessor interface {
	AssessLevel(ctx context.Context, category string, answers survey.AnswerSet) assessment.Result
}

// PaymentNotifier is told about confirmed payments. May be nil.
type PaymentNotifier interface {
	NotifyPayment(email, category, reference string, amountKobo int64)
}

// Server wires the HTTP API together.
type Server struct {
	bundles           BundleStore
	profiles          ProfileStore
	payments          PaymentStore
	gateway           Gateway
	assessor          Assessor
	tokens            *auth.Manager
	notifier          PaymentNotifier
	paystackSecretKey string
}

// New creates a Server. notifier may be nil.
func New(bundles BundleStore, profiles ProfileStore, payments PaymentStore,
	gateway Gateway, assessor Assessor, tokens *auth.Manager,
	notifier PaymentNotifier, paystackSecretKey string) *Server {
	return &Server{
		bundles:           bundles,
		profiles:          profiles,
		payments:          payments,
		gateway:           gateway,
		assessor:          assessor,
		tokens:            tokens,
		notifier:          notifier,
		paystackSecretKey: paystackSecretKey,
	}
}

// Routes builds the request mux.
func (s *Server) Routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/guest/start", s.handleGuestStart)
	mux.HandleFunc("GET /api/questions", s.handleQuestions)
	mux.HandleFunc("POST /api/auth/token", s.handleIssueToken)
	mux.HandleFunc("POST /api/submit_answers", s.handleSubmitAnswers)
	mux.HandleFunc("POST /api/select_meals", s.handleSelectMeals)
	mux.HandleFunc("POST /api/upgrade_to_month", s.handleUpgradeToMonth)
	mux.HandleFunc("GET /api/meal_plan", s.handleRetrievePlan)
	mux.HandleFunc("POST /api/paystack/init", s.handlePaystackInit)
	mux.HandleFunc("POST /api/paystack/verify", s.handlePaystackVerify)
	mux.HandleFunc("POST /api/paystack/webhook", s.handlePaystackWebhook)
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	return mux
}

// Start blocks serving the API until the listener fails.
func (s *Server) Start(addr string) error {
	srv := &http.Server{
		Addr:         addr,
		Handler:      s.Routes(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
	}
	log.Printf("HTTP API listening on %s", addr)
	return srv.ListenAndServe()
}
