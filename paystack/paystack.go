package paystack

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client talks to the Paystack REST API. The base URL is configurable so
// tests can point it at a stub server.
type Client struct {
	secretKey  string
	baseURL    string
	httpClient *http.Client
}

func New(secretKey, baseURL string) *Client {
	return &Client{
		secretKey:  secretKey,
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// InitializeResult is the hosted-flow handle: the shopper is sent to
// AuthorizationURL and the charge is tracked under Reference.
type InitializeResult struct {
	AuthorizationURL string
	AccessCode       string
	Reference        string
}

type initializeResponse struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
	Data    struct {
		AuthorizationURL string `json:"authorization_url"`
		AccessCode       string `json:"access_code"`
		Reference        string `json:"reference"`
	} `json:"data"`
}

// InitializeTransaction opens a hosted payment flow for the given amount in
// kobo (minor units) under a caller-supplied unique reference.
func (c *Client) InitializeTransaction(email string, amountKobo int64, currency, reference string, metadata map[string]interface{}) (InitializeResult, error) {
	payload := map[string]interface{}{
		"email":     email,
		"amount":    amountKobo,
		"currency":  currency,
		"reference": reference,
	}
	if len(metadata) > 0 {
		payload["metadata"] = metadata
	}

	var resp initializeResponse
	if err := c.post("/transaction/initialize", payload, &resp); err != nil {
		return InitializeResult{}, err
	}
	if !resp.Status {
		return InitializeResult{}, fmt.Errorf("paystack error: %s", resp.Message)
	}
	if resp.Data.AuthorizationURL == "" {
		return InitializeResult{}, fmt.Errorf("paystack returned empty authorization URL")
	}

	return InitializeResult{
		AuthorizationURL: resp.Data.AuthorizationURL,
		AccessCode:       resp.Data.AccessCode,
		Reference:        resp.Data.Reference,
	}, nil
}

// VerifyResult reports the provider's view of a charge.
type VerifyResult struct {
	Status     string // "success", "failed", "abandoned"
	Reference  string
	AmountKobo int64
	Currency   string
}

type verifyResponse struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
	Data    struct {
		Status    string `json:"status"`
		Reference string `json:"reference"`
		Amount    int64  `json:"amount"`
		Currency  string `json:"currency"`
	} `json:"data"`
}

// VerifyTransaction confirms a charge server-side. Used as the fallback for
// the client-redirect path; the webhook is the primary success signal.
func (c *Client) VerifyTransaction(reference string) (VerifyResult, error) {
	req, err := http.NewRequest(http.MethodGet, c.baseURL+"/transaction/verify/"+reference, nil)
	if err != nil {
		return VerifyResult{}, err
	}
	req.Header.Set("Authorization", "Bearer "+c.secretKey)
	req.Header.Set("Accept", "application/json")

	httpResp, err := c.httpClient.Do(req)
	if err != nil {
		return VerifyResult{}, fmt.Errorf("failed to reach Paystack: %v", err)
	}
	defer httpResp.Body.Close()

	body, _ := io.ReadAll(httpResp.Body)
	if httpResp.StatusCode != http.StatusOK {
		return VerifyResult{}, fmt.Errorf("paystack API error (%d): %s", httpResp.StatusCode, string(body))
	}

	var resp verifyResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return VerifyResult{}, fmt.Errorf("failed to parse Paystack response: %v", err)
	}
	if !resp.Status {
		return VerifyResult{}, fmt.Errorf("paystack error: %s", resp.Message)
	}

	return VerifyResult{
		Status:     resp.Data.Status,
		Reference:  resp.Data.Reference,
		AmountKobo: resp.Data.Amount,
		Currency:   resp.Data.Currency,
	}, nil
}

func (c *Client) post(path string, payload interface{}, out interface{}) error {
	jsonData, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequest(http.MethodPost, c.baseURL+path, bytes.NewBuffer(jsonData))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.secretKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	httpResp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to reach Paystack: %v", err)
	}
	defer httpResp.Body.Close()

	body, _ := io.ReadAll(httpResp.Body)
	if httpResp.StatusCode != http.StatusOK {
		return fmt.Errorf("paystack API error (%d): %s", httpResp.StatusCode, string(body))
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to parse Paystack response: %v", err)
	}
	return nil
}
