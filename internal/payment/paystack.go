package payment

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"
	"time"
)

const (
	paystackBaseURL = "https://api.paystack.co"
	requestTimeout  = 20 * time.Second
)

// PaystackClient calls the Paystack transaction API.
type PaystackClient struct {
	secretKey  string
	baseURL    string
	httpClient *http.Client
}

// NewPaystackClient creates a client with the account secret key.
func NewPaystackClient(secretKey string) *PaystackClient {
	return &PaystackClient{
		secretKey:  secretKey,
		baseURL:    paystackBaseURL,
		httpClient: &http.Client{Timeout: requestTimeout},
	}
}

// InitializeRequest is the input for starting a transaction. Amount is in
// naira and converted to kobo on the wire.
type InitializeRequest struct {
	Email       string
	AmountNaira float64
	Currency    string
	Reference   string
	CallbackURL string
	Metadata    map[string]any
}

// InitializeResponse is the authorization handle returned by Paystack.
type InitializeResponse struct {
	AuthorizationURL string `json:"authorization_url"`
	AccessCode       string `json:"access_code"`
	Reference        string `json:"reference"`
}

// VerifyResponse is the transaction state returned by verification.
type VerifyResponse struct {
	Status     string `json:"status"`
	Reference  string `json:"reference"`
	AmountKobo int64  `json:"amount"`
	Currency   string `json:"currency"`
	Channel    string `json:"channel"`
	PaidAt     string `json:"paid_at"`
}

// Success reports whether the transaction completed.
func (v VerifyResponse) Success() bool {
	return v.Status == "success"
}

type paystackEnvelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// AmountToKobo converts a naira amount to kobo, rounding half up.
func AmountToKobo(amountNaira float64) (int64, error) {
	kobo := int64(math.Round(amountNaira * 100))
	if kobo <= 0 {
		return 0, errors.New("amount must be positive")
	}
	return kobo, nil
}

// Initialize starts a Paystack transaction and returns the authorization
// handle.
func (c *PaystackClient) Initialize(ctx context.Context, req InitializeRequest) (*InitializeResponse, error) {
	kobo, err := AmountToKobo(req.AmountNaira)
	if err != nil {
		return nil, err
	}
	currency := req.Currency
	if currency == "" {
		currency = "NGN"
	}

	payload := map[string]any{
		"email":    req.Email,
		"amount":   kobo,
		"currency": currency,
	}
	if req.Reference != "" {
		payload["reference"] = req.Reference
	}
	if req.CallbackURL != "" {
		payload["callback_url"] = req.CallbackURL
	}
	if req.Metadata != nil {
		payload["metadata"] = req.Metadata
	}

	var out InitializeResponse
	if err := c.do(ctx, http.MethodPost, "/transaction/initialize", payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Verify looks up a transaction by reference.
func (c *PaystackClient) Verify(ctx context.Context, reference string) (*VerifyResponse, error) {
	if reference == "" {
		return nil, errors.New("missing reference")
	}

	var out VerifyResponse
	if err := c.do(ctx, http.MethodGet, "/transaction/verify/"+reference, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *PaystackClient) do(ctx context.Context, method, path string, payload, out any) error {
	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("failed to encode paystack payload: %w", err)
		}
		body = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to build paystack request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.secretKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("paystack request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read paystack response: %w", err)
	}

	var envelope paystackEnvelope
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return fmt.Errorf("failed to decode paystack response: %w", err)
	}
	if !envelope.Status {
		msg := envelope.Message
		if msg == "" {
			msg = resp.Status
		}
		return fmt.Errorf("paystack error: %s", msg)
	}

	if err := json.Unmarshal(envelope.Data, out); err != nil {
		return fmt.Errorf("failed to decode paystack data: %w", err)
	}
	return nil
}

// VerifyWebhookSignature checks the x-paystack-signature header: an
// HMAC-SHA512 of the raw body keyed with the secret key.
func VerifyWebhookSignature(secretKey string, body []byte, signature string) bool {
	if signature == "" {
		return false
	}
	mac := hmac.New(sha512.New, []byte(secretKey))
	mac.Write(body)
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}
