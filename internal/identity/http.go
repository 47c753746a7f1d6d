package identity

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// httpProvider talks to an identity service over JSON/HTTP:
//
//	POST   {base}/v1/accounts          {"email": ..., "password": ...} -> {"uid": ...}
//	DELETE {base}/v1/accounts/{uid}
type httpProvider struct {
	baseURL string
	client  *http.Client
}

func NewHTTPProvider(baseURL string) Provider {
	return &httpProvider{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

func (p *httpProvider) CreateAccount(ctx context.Context, email, password string) (string, error) {
	payload, err := json.Marshal(map[string]string{
		"email":    email,
		"password": password,
	})
	if err != nil {
		return "", fmt.Errorf("failed to encode account request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/v1/accounts", bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("failed to build account request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("identity provider unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("identity provider returned status %d", resp.StatusCode)
	}

	var body struct {
		UID string `json:"uid"`
	}
	err = json.NewDecoder(resp.Body).Decode(&body)
	if err != nil {
		return "", fmt.Errorf("failed to decode account response: %w", err)
	}
	if body.UID == "" {
		return "", fmt.Errorf("identity provider returned empty uid")
	}

	return body.UID, nil
}

func (p *httpProvider) DeleteAccount(ctx context.Context, uid string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, p.baseURL+"/v1/accounts/"+uid, nil)
	if err != nil {
		return fmt.Errorf("failed to build delete request: %w", err)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return fmt.Errorf("identity provider unreachable: %w", err)
	}
	defer resp.Body.Close()

	// 404 is fine: the account is already gone.
	if resp.StatusCode != http.StatusNotFound && (resp.StatusCode < 200 || resp.StatusCode >= 300) {
		return fmt.Errorf("identity provider returned status %d", resp.StatusCode)
	}

	return nil
}

func (p *httpProvider) Name() string {
	return "http"
}
