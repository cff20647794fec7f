package acceptance_tests

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/horlamiedea/ura-health-backend/internal/assessment"
	"github.com/horlamiedea/ura-health-backend/internal/auth"
	"github.com/horlamiedea/ura-health-backend/internal/database"
	"github.com/horlamiedea/ura-health-backend/internal/mealplan"
	"github.com/horlamiedea/ura-health-backend/internal/payment"
	"github.com/horlamiedea/ura-health-backend/internal/profile"
	"github.com/horlamiedea/ura-health-backend/internal/server"
	"github.com/horlamiedea/ura-health-backend/internal/survey"
)

const paystackSecret = "sk_test_acceptance"

// --- Mock LLM Client ---
type mockLLMClient struct {
	generateContentCalls int
}

func (m *mockLLMClient) GenerateContent(ctx context.Context, prompt string) (string, error) {
	m.generateContentCalls++
	return `{"condition":"diabetes","level":2,"label":"moderate","metrics":{},"reasoning":"acceptance stub"}`, nil
}

// --- Mock Payment Gateway ---
type mockGateway struct {
	initializeCalls int
	verifyCalls     int
}

func (m *mockGateway) Initialize(ctx context.Context, req payment.InitializeRequest) (*payment.InitializeResponse, error) {
	m.initializeCalls++
	return &payment.InitializeResponse{
		AuthorizationURL: "https://checkout.paystack.test/" + req.Reference,
		AccessCode:       "access_" + req.Reference,
		Reference:        req.Reference,
	}, nil
}

func (m *mockGateway) Verify(ctx context.Context, reference string) (*payment.VerifyResponse, error) {
	m.verifyCalls++
	return &payment.VerifyResponse{Status: "success", Reference: reference, AmountKobo: 500000, Currency: "NGN"}, nil
}

type envelope struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func postJSON(t *testing.T, ts *httptest.Server, path string, body any) (*http.Response, envelope) {
	t.Helper()
	encoded, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("Failed to encode request: %v", err)
	}
	resp, err := http.Post(ts.URL+path, "application/json", bytes.NewReader(encoded))
	if err != nil {
		t.Fatalf("Request to %s failed: %v", path, err)
	}
	defer resp.Body.Close()
	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		t.Fatalf("Failed to decode response from %s: %v", path, err)
	}
	return resp, env
}

// fillAnswers builds a complete answer set from the question catalog, leaving
// conditional follow-ups unanswered.
func fillAnswers(category string) survey.AnswerSet {
	answers := survey.AnswerSet{}
	for _, q := range survey.Questions(category) {
		if q.RequiredWhen != nil {
			continue
		}
		switch q.Type {
		case survey.TypeChoice:
			answers[q.Label] = q.Options[len(q.Options)-1]
		case survey.TypeMultiSelect:
			answers[q.Label] = []string{q.Options[0]}
		case survey.TypeNumber:
			answers[q.Label] = "50"
		default:
			answers[q.Label] = "test value"
		}
	}
	return answers
}

type planDoc struct {
	ID         string `json:"id"`
	Email      string `json:"email"`
	Assessment struct {
		Level int    `json:"level"`
		Label string `json:"label"`
	} `json:"assessment"`
	HundredMeals []struct {
		ID int `json:"id"`
	} `json:"hundred_meals"`
	FreePlan *struct {
		Days []struct {
			Day       int      `json:"day"`
			Breakfast string   `json:"breakfast"`
			Snacks    []string `json:"snacks"`
		} `json:"days"`
	} `json:"free_plan"`
	PaidPlan *struct {
		Days []struct {
			Day int `json:"day"`
		} `json:"days"`
	} `json:"paid_plan"`
}

func decodePlan(t *testing.T, env envelope) planDoc {
	t.Helper()
	var data struct {
		MealPlan planDoc `json:"meal_plan"`
	}
	if err := json.Unmarshal(env.Data, &data); err != nil {
		t.Fatalf("Failed to decode meal plan payload: %v", err)
	}
	return data.MealPlan
}

// --- Acceptance Test ---
func TestFullPlanFlow(t *testing.T) {
	// 1. Real SQLite store with migrations, mocked LLM and gateway
	db, err := database.NewDB(filepath.Join(t.TempDir(), "acceptance.db"))
	if err != nil {
		t.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	llmClient := &mockLLMClient{}
	gateway := &mockGateway{}
	srv := server.New(
		mealplan.NewRepository(db.SQL),
		profile.NewRepository(db.SQL),
		payment.NewRepository(db.SQL),
		gateway,
		assessment.NewAssessor(llmClient),
		auth.NewManager("acceptance-jwt-secret"),
		nil,
		paystackSecret,
	)
	ts := httptest.NewServer(srv.Routes())
	defer ts.Close()

	// --- Step 1: Guest profile ---
	t.Log("--- Step 1: Starting Guest Profile ---")
	resp, _ := postJSON(t, ts, "/api/guest/start", map[string]any{
		"email": "ada@example.com", "full_name": "Ada Obi",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Guest start failed with status %d", resp.StatusCode)
	}

	// --- Step 2: Submit answers ---
	t.Log("--- Step 2: Submitting Survey Answers ---")
	resp, env := postJSON(t, ts, "/api/submit_answers", map[string]any{
		"category": "diabetes",
		"email":    "ada@example.com",
		"answers":  fillAnswers("diabetes"),
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("Submit answers failed with status %d: %s", resp.StatusCode, env.Message)
	}
	plan := decodePlan(t, env)
	if llmClient.generateContentCalls != 1 {
		t.Errorf("Expected 1 advisory call, got %d", llmClient.generateContentCalls)
	}
	if plan.Assessment.Level != 2 || plan.Assessment.Label != "moderate" {
		t.Errorf("Expected advisory level 2 'moderate', got %d '%s'", plan.Assessment.Level, plan.Assessment.Label)
	}
	if len(plan.HundredMeals) != 400 {
		t.Fatalf("Expected 400 catalog items, got %d", len(plan.HundredMeals))
	}

	// --- Step 3: Select meals, get the 2-day free plan ---
	t.Log("--- Step 3: Selecting Meals ---")
	selected := make([]int, 0, 40)
	for i := 0; i < 400; i += 10 {
		selected = append(selected, plan.HundredMeals[i].ID)
	}
	resp, env = postJSON(t, ts, "/api/select_meals", map[string]any{
		"meal_plan_id": plan.ID, "selected_meal_ids": selected,
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Select meals failed with status %d: %s", resp.StatusCode, env.Message)
	}
	plan = decodePlan(t, env)
	if plan.FreePlan == nil || len(plan.FreePlan.Days) != 2 {
		t.Fatalf("Expected a 2-day free plan, got %+v", plan.FreePlan)
	}
	if len(plan.FreePlan.Days[0].Snacks) != 3 {
		t.Errorf("Expected 3 herbal tea snacks, got %v", plan.FreePlan.Days[0].Snacks)
	}

	// --- Step 4: Retrieval before payment is refused ---
	t.Log("--- Step 4: Checking Payment Gate ---")
	lockedResp, err := http.Get(ts.URL + "/api/meal_plan?meal_plan_id=" + plan.ID)
	if err != nil {
		t.Fatalf("Retrieve failed: %v", err)
	}
	lockedResp.Body.Close()
	if lockedResp.StatusCode != http.StatusPaymentRequired {
		t.Errorf("Expected 402 before payment, got %d", lockedResp.StatusCode)
	}

	// --- Step 5: Initialize payment ---
	t.Log("--- Step 5: Initializing Payment ---")
	resp, env = postJSON(t, ts, "/api/paystack/init", map[string]any{
		"meal_plan_id": plan.ID, "amount": 5000,
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Paystack init failed with status %d: %s", resp.StatusCode, env.Message)
	}
	var initData struct {
		Reference string `json:"reference"`
	}
	if err := json.Unmarshal(env.Data, &initData); err != nil || initData.Reference == "" {
		t.Fatalf("Expected a payment reference, got %s (err %v)", env.Data, err)
	}
	if gateway.initializeCalls != 1 {
		t.Errorf("Expected 1 gateway initialize call, got %d", gateway.initializeCalls)
	}

	// --- Step 6: Webhook unlocks the 30-day plan ---
	t.Log("--- Step 6: Delivering Webhook ---")
	webhookBody := fmt.Sprintf(`{"event":"charge.success","data":{"reference":"%s","status":"success","amount":500000,"currency":"NGN","channel":"card","metadata":{"meal_plan_id":"%s","category":"diabetes"}}}`,
		initData.Reference, plan.ID)
	mac := hmac.New(sha512.New, []byte(paystackSecret))
	mac.Write([]byte(webhookBody))

	req, _ := http.NewRequest(http.MethodPost, ts.URL+"/api/paystack/webhook", bytes.NewReader([]byte(webhookBody)))
	req.Header.Set("x-paystack-signature", hex.EncodeToString(mac.Sum(nil)))
	hookResp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("Webhook delivery failed: %v", err)
	}
	hookResp.Body.Close()
	if hookResp.StatusCode != http.StatusOK {
		t.Fatalf("Webhook failed with status %d", hookResp.StatusCode)
	}

	// --- Step 7: Retrieve the unlocked plan ---
	t.Log("--- Step 7: Retrieving Monthly Plan ---")
	finalResp, err := http.Get(ts.URL + "/api/meal_plan?meal_plan_id=" + plan.ID)
	if err != nil {
		t.Fatalf("Retrieve failed: %v", err)
	}
	defer finalResp.Body.Close()
	if finalResp.StatusCode != http.StatusOK {
		t.Fatalf("Expected unlocked plan, got status %d", finalResp.StatusCode)
	}
	if err := json.NewDecoder(finalResp.Body).Decode(&env); err != nil {
		t.Fatalf("Failed to decode final response: %v", err)
	}
	plan = decodePlan(t, env)
	if plan.PaidPlan == nil || len(plan.PaidPlan.Days) != 30 {
		t.Fatalf("Expected a 30-day paid plan, got %+v", plan.PaidPlan)
	}
}
