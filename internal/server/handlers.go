package server

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/horlamiedea/ura-health-backend/internal/assessment"
	"github.com/horlamiedea/ura-health-backend/internal/catalog"
	"github.com/horlamiedea/ura-health-backend/internal/mealplan"
	"github.com/horlamiedea/ura-health-backend/internal/payment"
	"github.com/horlamiedea/ura-health-backend/internal/profile"
	"github.com/horlamiedea/ura-health-backend/internal/survey"
)

// mealPlanPayload mirrors the stored bundle in API responses.
type mealPlanPayload struct {
	ID               string                  `json:"id"`
	Email            string                  `json:"email"`
	Category         string                  `json:"category"`
	Assessment       assessment.Result       `json:"assessment"`
	HundredMeals     []catalog.Item          `json:"hundred_meals"`
	SelectedMealIDs  []int                   `json:"selected_meal_ids"`
	FreePlan         *mealplan.Plan          `json:"free_plan"`
	PaidPlan         *mealplan.Plan          `json:"paid_plan"`
	RecommendedMeals []catalog.Item          `json:"recommended_meals,omitempty"`
	StageTemplate    *mealplan.StageTemplate `json:"stage_template,omitempty"`
}

func bundlePayload(b *mealplan.Bundle) mealPlanPayload {
	return mealPlanPayload{
		ID:              b.ID,
		Email:           b.Email,
		Category:        b.Category,
		Assessment:      b.Assessment,
		HundredMeals:    b.Catalog,
		SelectedMealIDs: b.SelectedIDs,
		FreePlan:        b.Preview,
		PaidPlan:        b.Full,
	}
}

type guestStartRequest struct {
	Email         string `json:"email"`
	FullName      string `json:"full_name"`
	Phone         string `json:"phone"`
	Gender        string `json:"gender"`
	MaritalStatus string `json:"marital_status"`
	DateOfBirth   string `json:"date_of_birth"`
	Address       string `json:"address"`
	Occupation    string `json:"occupation"`
}

func (s *Server) handleGuestStart(w http.ResponseWriter, r *http.Request) {
	var req guestStartRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.Email == "" {
		respondValidation(w, "Some required fields are missing.", map[string][]string{"email": {"This field is required."}})
		return
	}

	p, err := s.profiles.Upsert(r.Context(), survey.Biodata{
		FullName:      req.FullName,
		Email:         req.Email,
		Phone:         req.Phone,
		Gender:        req.Gender,
		MaritalStatus: req.MaritalStatus,
		DateOfBirth:   req.DateOfBirth,
		Address:       req.Address,
		Occupation:    req.Occupation,
	})
	if err != nil {
		log.Printf("guest start failed: %v", err)
		respondError(w, http.StatusInternalServerError, "Could not save guest profile.")
		return
	}

	respondSuccess(w, http.StatusOK, "Guest profile saved.", map[string]any{
		"guest": map[string]any{"id": p.ID, "email": p.Email, "full_name": p.FullName},
	})
}

func (s *Server) handleQuestions(w http.ResponseWriter, r *http.Request) {
	category := strings.ToLower(r.URL.Query().Get("category"))
	questions := survey.Questions(category)
	if questions == nil {
		respondError(w, http.StatusBadRequest, "Invalid or unsupported category.")
		return
	}
	respondSuccess(w, http.StatusOK, "Questions retrieved.", map[string]any{
		"category":    survey.Canonical(category),
		"questions":   questions,
		"biodata_map": survey.BiodataMap(category),
	})
}

type issueTokenRequest struct {
	Email string `json:"email"`
}

func (s *Server) handleIssueToken(w http.ResponseWriter, r *http.Request) {
	var req issueTokenRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.Email == "" {
		respondValidation(w, "Some required fields are missing.", map[string][]string{"email": {"This field is required."}})
		return
	}
	if _, err := s.profiles.GetByEmail(r.Context(), req.Email); err != nil {
		if errors.Is(err, profile.ErrNotFound) {
			respondError(w, http.StatusNotFound, "No profile exists for this email. Start a guest profile first.")
			return
		}
		log.Printf("token lookup failed: %v", err)
		respondError(w, http.StatusInternalServerError, "Could not issue token.")
		return
	}

	token, err := s.tokens.Issue(req.Email)
	if err != nil {
		log.Printf("token issue failed: %v", err)
		respondError(w, http.StatusInternalServerError, "Could not issue token.")
		return
	}
	respondSuccess(w, http.StatusOK, "Token issued.", map[string]any{"token": token})
}

// emailFromAuth extracts the email from a bearer token, if one is presented.
func (s *Server) emailFromAuth(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if !strings.HasPrefix(header, "Bearer ") || s.tokens == nil {
		return ""
	}
	email, err := s.tokens.Verify(strings.TrimPrefix(header, "Bearer "))
	if err != nil {
		return ""
	}
	return email
}

type submitAnswersRequest struct {
	Category string           `json:"category"`
	Email    string           `json:"email"`
	Answers  survey.AnswerSet `json:"answers"`
}

func (s *Server) handleSubmitAnswers(w http.ResponseWriter, r *http.Request) {
	var req submitAnswersRequest
	if !decodeBody(w, r, &req) {
		return
	}

	category := survey.Canonical(req.Category)
	if survey.Questions(category) == nil {
		respondError(w, http.StatusBadRequest, "Invalid or unsupported category.")
		return
	}
	if req.Answers == nil {
		req.Answers = survey.AnswerSet{}
	}

	email := s.emailFromAuth(r)
	if email == "" {
		email = req.Email
	}
	if email == "" {
		respondError(w, http.StatusBadRequest, "Email is required for guests.")
		return
	}

	// Upsert the guest profile and merge its biodata into blank answers
	// before validating.
	bio := survey.Biodata{Email: email}
	if name, ok := req.Answers["Full Name:"].(string); ok {
		bio.FullName = name
	}
	p, err := s.profiles.Upsert(r.Context(), bio)
	if err != nil {
		log.Printf("profile upsert failed: %v", err)
		respondError(w, http.StatusInternalServerError, "Could not save profile.")
		return
	}
	survey.MergeBiodata(category, req.Answers, p.Biodata())

	if missing := survey.ValidateAnswers(category, req.Answers); len(missing) > 0 {
		respondValidation(w, "Some required answers are missing.", map[string][]string{"missing": missing})
		return
	}

	items := catalog.Generate(category, req.Answers)
	result := s.assessor.AssessLevel(r.Context(), category, req.Answers)

	bundle := &mealplan.Bundle{
		ID:         uuid.NewString(),
		Email:      email,
		Category:   category,
		Answers:    req.Answers,
		Assessment: result,
		Catalog:    items,
	}
	if err := s.bundles.Create(r.Context(), bundle); err != nil {
		log.Printf("bundle create failed: %v", err)
		respondError(w, http.StatusInternalServerError, "Could not save meal plan.")
		return
	}

	payload := bundlePayload(bundle)
	payload.RecommendedMeals = mealplan.PickRecommendedMeals(category, result.Level, items)
	tmpl := mealplan.GetStageTemplate(category, result.Level, items, req.Answers)
	payload.StageTemplate = &tmpl

	respondSuccess(w, http.StatusCreated, "Answers submitted. Meal options generated.", map[string]any{
		"meal_plan": payload,
	})
}

type selectMealsRequest struct {
	MealPlanID      string `json:"meal_plan_id"`
	SelectedMealIDs []int  `json:"selected_meal_ids"`
}

func (s *Server) handleSelectMeals(w http.ResponseWriter, r *http.Request) {
	var req selectMealsRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.MealPlanID == "" || len(req.SelectedMealIDs) == 0 {
		respondValidation(w, "Some required fields are missing.", map[string][]string{
			"meal_plan_id":      {"This field is required."},
			"selected_meal_ids": {"Select at least one meal."},
		})
		return
	}

	bundle, err := s.bundles.GetByID(r.Context(), req.MealPlanID)
	if err != nil {
		s.respondBundleError(w, err)
		return
	}

	if bundle.Full != nil {
		respondSuccess(w, http.StatusOK, "Monthly plan already unlocked.", map[string]any{"meal_plan": bundlePayload(bundle)})
		return
	}

	// Re-requesting an existing preview returns it unchanged.
	if bundle.Preview != nil {
		respondSuccess(w, http.StatusOK, "2-day free plan retrieved.", map[string]any{"meal_plan": bundlePayload(bundle)})
		return
	}

	allowed, err := mealplan.CanGrantPreview(r.Context(), bundle, s.bundles)
	if err != nil {
		log.Printf("free tier check failed: %v", err)
		respondError(w, http.StatusInternalServerError, "Could not check free plan eligibility.")
		return
	}
	if !allowed {
		respondError(w, http.StatusForbidden, "A free plan for this email already exists. Please upgrade to access the monthly plan.")
		return
	}

	if err := s.bundles.SaveSelection(r.Context(), bundle.ID, req.SelectedMealIDs); err != nil {
		s.respondBundleError(w, err)
		return
	}
	bundle.SelectedIDs = req.SelectedMealIDs

	preview := mealplan.GeneratePreviewPlan(bundle.Category, bundle.SelectedItems(), bundle.Answers, bundle.Assessment)
	wrote, err := s.bundles.SavePreviewPlan(r.Context(), bundle.ID, &preview)
	if err != nil {
		log.Printf("preview save failed: %v", err)
		respondError(w, http.StatusInternalServerError, "Could not save free plan.")
		return
	}
	if !wrote {
		// Lost a race; return the stored preview.
		bundle, err = s.bundles.GetByID(r.Context(), bundle.ID)
		if err != nil {
			s.respondBundleError(w, err)
			return
		}
	} else {
		bundle.Preview = &preview
	}

	respondSuccess(w, http.StatusOK, "2-day free plan generated.", map[string]any{"meal_plan": bundlePayload(bundle)})
}

type upgradeRequest struct {
	MealPlanID string `json:"meal_plan_id"`
	Reference  string `json:"reference"`
}

func (s *Server) handleUpgradeToMonth(w http.ResponseWriter, r *http.Request) {
	var req upgradeRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.MealPlanID == "" || req.Reference == "" {
		respondValidation(w, "Some required fields are missing.", map[string][]string{
			"meal_plan_id": {"This field is required."},
			"reference":    {"This field is required."},
		})
		return
	}

	bundle, err := s.bundles.GetByID(r.Context(), req.MealPlanID)
	if err != nil {
		s.respondBundleError(w, err)
		return
	}

	if bundle.Full != nil {
		respondSuccess(w, http.StatusOK, "Monthly plan already unlocked.", map[string]any{"meal_plan": bundlePayload(bundle)})
		return
	}

	verify, err := s.gateway.Verify(r.Context(), req.Reference)
	if err != nil || !verify.Success() {
		respondError(w, http.StatusPaymentRequired, "Payment not confirmed for this reference.")
		return
	}

	if err := s.payments.MarkStatus(r.Context(), req.Reference, payment.StatusSuccess, verify.Channel); err != nil && !errors.Is(err, payment.ErrNotFound) {
		log.Printf("payment update failed: %v", err)
	}

	bundle, err = s.unlockFullPlan(r, bundle, req.Reference)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Could not unlock monthly plan.")
		return
	}

	respondSuccess(w, http.StatusOK, "Plan unlocked.", map[string]any{"meal_plan": bundlePayload(bundle)})
}

// unlockFullPlan marks the bundle paid and generates the 30-day plan with
// first-write-wins semantics.
func (s *Server) unlockFullPlan(r *http.Request, bundle *mealplan.Bundle, reference string) (*mealplan.Bundle, error) {
	if err := s.bundles.MarkPaid(r.Context(), bundle.ID, reference); err != nil {
		return nil, err
	}
	bundle.Paid = true
	bundle.PaymentRef = reference

	items := bundle.SelectedItems()
	if len(items) == 0 {
		// Paid without ever selecting meals; fall back to the first ten
		// catalog items.
		items = bundle.Catalog
		if len(items) > 10 {
			items = items[:10]
		}
	}

	full := mealplan.GenerateFullPlan(bundle.Category, items, bundle.Answers, bundle.Assessment)
	wrote, err := s.bundles.SaveFullPlan(r.Context(), bundle.ID, &full)
	if err != nil {
		return nil, err
	}
	if !wrote {
		return s.bundles.GetByID(r.Context(), bundle.ID)
	}
	bundle.Full = &full
	return bundle, nil
}

func (s *Server) handleRetrievePlan(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	var bundle *mealplan.Bundle
	var err error

	if id := q.Get("meal_plan_id"); id != "" {
		bundle, err = s.bundles.GetByID(r.Context(), id)
	} else {
		email := q.Get("email")
		category := survey.Canonical(q.Get("category"))
		if email == "" || category == "" {
			respondError(w, http.StatusBadRequest, "Provide meal_plan_id or (email and category).")
			return
		}
		bundle, err = s.bundles.GetLatestByEmailCategory(r.Context(), email, category)
	}
	if err != nil {
		s.respondBundleError(w, err)
		return
	}

	if bundle.Full == nil {
		respondError(w, http.StatusPaymentRequired, "Monthly plan not unlocked. Complete payment to access it.")
		return
	}
	respondSuccess(w, http.StatusOK, "Monthly plan retrieved.", map[string]any{"meal_plan": bundlePayload(bundle)})
}

type paystackInitRequest struct {
	MealPlanID  string  `json:"meal_plan_id"`
	Amount      float64 `json:"amount"`
	Currency    string  `json:"currency"`
	CallbackURL string  `json:"callback_url"`
}

func (s *Server) handlePaystackInit(w http.ResponseWriter, r *http.Request) {
	var req paystackInitRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.MealPlanID == "" || req.Amount <= 0 {
		respondValidation(w, "Some required fields are missing.", map[string][]string{
			"meal_plan_id": {"This field is required."},
			"amount":       {"A positive amount is required."},
		})
		return
	}

	bundle, err := s.bundles.GetByID(r.Context(), req.MealPlanID)
	if err != nil {
		s.respondBundleError(w, err)
		return
	}

	reference := uuid.NewString()
	init, err := s.gateway.Initialize(r.Context(), payment.InitializeRequest{
		Email:       bundle.Email,
		AmountNaira: req.Amount,
		Currency:    req.Currency,
		Reference:   reference,
		CallbackURL: req.CallbackURL,
		Metadata:    map[string]any{"meal_plan_id": bundle.ID, "category": bundle.Category},
	})
	if err != nil {
		log.Printf("paystack init failed: %v", err)
		respondError(w, http.StatusBadGateway, "Paystack init failed.")
		return
	}
	if init.Reference != "" {
		reference = init.Reference
	}

	kobo, err := payment.AmountToKobo(req.Amount)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid amount.")
		return
	}
	record := &payment.Payment{
		ID:         uuid.NewString(),
		BundleID:   bundle.ID,
		Email:      bundle.Email,
		Reference:  reference,
		AmountKobo: kobo,
		Currency:   req.Currency,
	}
	if err := s.payments.Create(r.Context(), record); err != nil {
		log.Printf("payment record failed: %v", err)
		respondError(w, http.StatusInternalServerError, "Could not record payment.")
		return
	}

	respondSuccess(w, http.StatusOK, "Payment initialized.", map[string]any{
		"authorization_url": init.AuthorizationURL,
		"access_code":       init.AccessCode,
		"reference":         reference,
	})
}

type paystackVerifyRequest struct {
	Reference string `json:"reference"`
}

func (s *Server) handlePaystackVerify(w http.ResponseWriter, r *http.Request) {
	var req paystackVerifyRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.Reference == "" {
		respondValidation(w, "Some required fields are missing.", map[string][]string{"reference": {"This field is required."}})
		return
	}

	verify, err := s.gateway.Verify(r.Context(), req.Reference)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Verification failed.")
		return
	}
	if !verify.Success() {
		respondError(w, http.StatusBadRequest, "Verification failed: not successful.")
		return
	}

	if err := s.payments.MarkStatus(r.Context(), req.Reference, payment.StatusSuccess, verify.Channel); err != nil && !errors.Is(err, payment.ErrNotFound) {
		log.Printf("payment update failed: %v", err)
	}

	respondSuccess(w, http.StatusOK, "Payment verified.", map[string]any{"verify": verify})
}

type webhookPayload struct {
	Event string `json:"event"`
	Data  struct {
		Reference string `json:"reference"`
		Status    string `json:"status"`
		Amount    int64  `json:"amount"`
		Currency  string `json:"currency"`
		Channel   string `json:"channel"`
		Metadata  struct {
			MealPlanID string `json:"meal_plan_id"`
			Category   string `json:"category"`
		} `json:"metadata"`
	} `json:"data"`
}

func (s *Server) handlePaystackWebhook(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Could not read body.")
		return
	}
	signature := r.Header.Get("x-paystack-signature")
	if !payment.VerifyWebhookSignature(s.paystackSecretKey, body, signature) {
		respondError(w, http.StatusBadRequest, "Invalid signature.")
		return
	}

	var payload webhookPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid JSON body.")
		return
	}

	reference := payload.Data.Reference
	if reference == "" {
		respondError(w, http.StatusBadRequest, "Missing reference.")
		return
	}

	record, err := s.payments.GetByReference(r.Context(), reference)
	if err != nil && !errors.Is(err, payment.ErrNotFound) {
		log.Printf("webhook payment lookup failed: %v", err)
		respondError(w, http.StatusInternalServerError, "Could not process webhook.")
		return
	}

	// Idempotency: a reference already marked successful is done.
	if record != nil && record.Status == payment.StatusSuccess {
		respondSuccess(w, http.StatusOK, "Already processed.", map[string]any{"reference": reference})
		return
	}

	if strings.ToLower(payload.Event) != "charge.success" || strings.ToLower(payload.Data.Status) != "success" {
		respondSuccess(w, http.StatusOK, "Event ignored.", map[string]any{"reference": reference})
		return
	}

	bundleID := payload.Data.Metadata.MealPlanID
	if record == nil {
		record = &payment.Payment{
			ID:         uuid.NewString(),
			BundleID:   bundleID,
			Reference:  reference,
			AmountKobo: payload.Data.Amount,
			Currency:   payload.Data.Currency,
			Status:     payment.StatusPending,
		}
		if err := s.payments.Create(r.Context(), record); err != nil {
			log.Printf("webhook payment create failed: %v", err)
		}
	}
	if record.BundleID != "" {
		bundleID = record.BundleID
	}

	if err := s.payments.MarkStatus(r.Context(), reference, payment.StatusSuccess, payload.Data.Channel); err != nil {
		log.Printf("webhook payment update failed: %v", err)
	}

	if bundleID != "" {
		bundle, err := s.bundles.GetByID(r.Context(), bundleID)
		if err != nil {
			log.Printf("webhook bundle lookup failed: %v", err)
		} else if bundle.Full == nil {
			if bundle, err = s.unlockFullPlan(r, bundle, reference); err != nil {
				log.Printf("webhook plan unlock failed: %v", err)
			} else if s.notifier != nil {
				s.notifier.NotifyPayment(bundle.Email, bundle.Category, reference, payload.Data.Amount)
			}
		}
	}

	respondSuccess(w, http.StatusOK, "Webhook processed.", map[string]any{"reference": reference})
}

func (s *Server) respondBundleError(w http.ResponseWriter, err error) {
	if errors.Is(err, mealplan.ErrNotFound) {
		respondError(w, http.StatusNotFound, "Meal plan not found.")
		return
	}
	log.Printf("bundle store error: %v", err)
	respondError(w, http.StatusInternalServerError, "Could not load meal plan.")
}
