package draft

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zalando/go-keyring"

	"noticegen/internal/config"
	"noticegen/internal/secrets"
)

func TestClient_Draft(t *testing.T) {
	t.Run("Should send the chat request and split the reply into lines", func(t *testing.T) {
		var got completionRequest
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))
			require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"첫째 줄\n\n둘째 줄  \n"}}]}`))
		}))
		defer srv.Close()

		c := &Client{Endpoint: srv.URL, Model: "test-model", APIKey: "sk-test"}
		lines, err := c.Draft(context.Background(), "  엘리베이터 점검 안내  ")
		require.NoError(t, err)
		assert.Equal(t, []string{"첫째 줄", "", "둘째 줄"}, lines)

		assert.Equal(t, "test-model", got.Model)
		require.Len(t, got.Messages, 2)
		assert.Equal(t, "system", got.Messages[0].Role)
		assert.Equal(t, "엘리베이터 점검 안내", got.Messages[1].Content)
		assert.Equal(t, maxTokens, got.MaxTokens)
	})

	t.Run("Should surface upstream failures", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "quota exceeded", http.StatusTooManyRequests)
		}))
		defer srv.Close()

		c := &Client{Endpoint: srv.URL, Model: "m", APIKey: "k"}
		_, err := c.Draft(context.Background(), "p")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "upstream status 429: quota exceeded")
	})

	t.Run("Should fail on an empty reply", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"choices":[]}`))
		}))
		defer srv.Close()

		c := &Client{Endpoint: srv.URL, Model: "m", APIKey: "k"}
		_, err := c.Draft(context.Background(), "p")
		assert.ErrorIs(t, err, ErrNoContent)
	})

	t.Run("Should reject missing inputs before calling out", func(t *testing.T) {
		c := &Client{Endpoint: "http://127.0.0.1:1", Model: "m"}
		_, err := c.Draft(context.Background(), "p")
		assert.ErrorIs(t, err, ErrNoAPIKey)

		c.APIKey = "k"
		_, err = c.Draft(context.Background(), "   ")
		assert.ErrorIs(t, err, ErrEmptyPrompt)
	})

	t.Run("Should stop waiting for the limiter when the context ends", func(t *testing.T) {
		lim := NewHostLimiter(1, 1)
		require.NoError(t, lim.WaitURL(context.Background(), "http://example.test/v1"))

		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()
		c := &Client{Endpoint: "http://example.test/v1", Model: "m", APIKey: "k", Limiter: lim}
		_, err := c.Draft(ctx, "p")
		require.Error(t, err)
	})
}

func TestNewClient(t *testing.T) {
	keyring.MockInit()

	t.Run("Should report a missing key", func(t *testing.T) {
		t.Setenv(secrets.EnvAPIKey, "")
		_, err := NewClient(config.Default())
		assert.ErrorIs(t, err, ErrNoAPIKey)
	})

	t.Run("Should take settings from the config", func(t *testing.T) {
		t.Setenv(secrets.EnvAPIKey, "sk-env")
		cfg := config.Default()
		c, err := NewClient(cfg)
		require.NoError(t, err)
		assert.Equal(t, "sk-env", c.APIKey)
		assert.Equal(t, cfg.Draft.Model, c.Model)
		assert.Equal(t, cfg.Draft.Endpoint, c.Endpoint)
		assert.Equal(t, time.Minute, c.HTTP.Timeout)
	})
}

func TestHostLimiter(t *testing.T) {
	t.Run("Should not limit when the rate is zero", func(t *testing.T) {
		lim := NewHostLimiter(0, 0)
		for i := 0; i < 5; i++ {
			require.NoError(t, lim.WaitURL(context.Background(), "https://api.example.test"))
		}
	})

	t.Run("Should share one limiter per host", func(t *testing.T) {
		lim := NewHostLimiter(60, 1)
		assert.Same(t, lim.limiterFor("a"), lim.limiterFor("a"))
		assert.NotSame(t, lim.limiterFor("a"), lim.limiterFor("b"))
	})
}
