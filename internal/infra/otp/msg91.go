// Package otp implements one-time code delivery and verification.
package otp

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"

	"marketplace/internal/domain/service"

	"github.com/pkg/errors"
)

const (
	defaultMSG91BaseURL = "https://control.msg91.com/api/v5"
	// Mobiles are validated as 10-digit Indian numbers; MSG91 expects the country code prefixed.
	countryCode = "91"
)

// msg91Response is the common body of MSG91 v5 OTP endpoints.
type msg91Response struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

type msg91Provider struct {
	baseURL    string
	authKey    string
	templateID string
	httpClient *http.Client
}

// NewMSG91Provider delivers and verifies codes through the MSG91 v5 OTP API.
func NewMSG91Provider(baseURL, authKey, templateID string, httpClient *http.Client) (service.OTPProvider, error) {
	if authKey == "" || templateID == "" {
		return nil, errors.New("msg91 authKey and templateId are required")
	}
	if baseURL == "" {
		baseURL = defaultMSG91BaseURL
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &msg91Provider{
		baseURL:    strings.TrimRight(baseURL, "/"),
		authKey:    authKey,
		templateID: templateID,
		httpClient: httpClient,
	}, nil
}

func (p *msg91Provider) Send(ctx context.Context, mobile string) error {
	body, err := json.Marshal(map[string]string{
		"mobile":      countryCode + mobile,
		"template_id": p.templateID,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/otp", bytes.NewReader(body))
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.do(req)
	if err != nil {
		return err
	}
	if resp.Type != "success" {
		return errors.Errorf("msg91 send otp: %s", resp.Message)
	}

	return nil
}

func (p *msg91Provider) Verify(ctx context.Context, mobile, code string) (bool, error) {
	query := url.Values{}
	query.Set("mobile", countryCode+mobile)
	query.Set("otp", code)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.baseURL+"/otp/verify?"+query.Encode(), nil)
	if err != nil {
		return false, errors.WithStack(err)
	}

	resp, err := p.do(req)
	if err != nil {
		return false, err
	}

	// MSG91 answers a wrong or expired code with type "error" and a 200 status.
	return resp.Type == "success", nil
}

func (p *msg91Provider) do(req *http.Request) (*msg91Response, error) {
	req.Header.Set("Accept", "application/json")
	req.Header.Set("authkey", p.authKey)

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "msg91 request")
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if err != nil {
		return nil, errors.Wrap(err, "msg91 read response")
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, errors.Errorf("msg91 returned status %d", resp.StatusCode)
	}

	var out msg91Response
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, errors.Wrap(err, "msg91 decode response")
	}

	return &out, nil
}
