package otp

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"marketplace/config"
	"marketplace/internal/infra/auth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaticProvider(t *testing.T) {
	provider := NewStaticProvider("", slog.New(slog.DiscardHandler))
	ctx := context.Background()

	require.NoError(t, provider.Send(ctx, "9876543210"))

	ok, err := provider.Verify(ctx, "9876543210", "123456")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = provider.Verify(ctx, "9876543210", "654321")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMSG91Provider(t *testing.T) {
	var sendBody map[string]string
	mux := http.NewServeMux()
	mux.HandleFunc("POST /otp", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "auth-key", r.Header.Get("authkey"))
		_ = json.NewDecoder(r.Body).Decode(&sendBody)
		_, _ = w.Write([]byte(`{"type":"success","request_id":"abc"}`))
	})
	mux.HandleFunc("GET /otp/verify", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "919876543210", r.URL.Query().Get("mobile"))
		if r.URL.Query().Get("otp") == "424242" {
			_, _ = w.Write([]byte(`{"type":"success","message":"OTP verified success"}`))

			return
		}
		_, _ = w.Write([]byte(`{"type":"error","message":"OTP not match"}`))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	provider, err := NewMSG91Provider(srv.URL+"/", "auth-key", "template-1", srv.Client())
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, provider.Send(ctx, "9876543210"))
	assert.Equal(t, "919876543210", sendBody["mobile"])
	assert.Equal(t, "template-1", sendBody["template_id"])

	ok, err := provider.Verify(ctx, "9876543210", "424242")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = provider.Verify(ctx, "9876543210", "000000")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMSG91Provider_Failures(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			_, _ = w.Write([]byte(`{"type":"error","message":"Invalid template"}`))

			return
		}
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	provider, err := NewMSG91Provider(srv.URL, "k", "t", srv.Client())
	require.NoError(t, err)

	err = provider.Send(context.Background(), "9876543210")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid template")

	_, err = provider.Verify(context.Background(), "9876543210", "123456")
	require.Error(t, err)

	_, err = NewMSG91Provider("", "", "t", nil)
	require.Error(t, err)
}

func TestNew(t *testing.T) {
	logger := slog.New(slog.DiscardHandler)
	hasher := auth.NewBcryptHasher()

	t.Run("static with timeout", func(t *testing.T) {
		cfg := &config.Config{OTP: &config.OTPConfig{Provider: "static", Timeout: time.Second}}
		provider, err := New(Params{Config: cfg, Hasher: hasher, Logger: logger})
		require.NoError(t, err)
		assert.IsType(t, &timeoutProvider{}, provider)

		ok, err := provider.Verify(context.Background(), "9876543210", DefaultStaticCode)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("redis without client", func(t *testing.T) {
		cfg := &config.Config{OTP: &config.OTPConfig{Provider: "redis"}}
		_, err := New(Params{Config: cfg, Hasher: hasher, Logger: logger})
		require.Error(t, err)
	})

	t.Run("unknown", func(t *testing.T) {
		cfg := &config.Config{OTP: &config.OTPConfig{Provider: "carrier-pigeon"}}
		_, err := New(Params{Config: cfg, Hasher: hasher, Logger: logger})
		require.Error(t, err)
	})
}
