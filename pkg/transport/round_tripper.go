package transport

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gofrs/uuid/v5"

	"github.com/ucampus/reservas-cli/pkg/logger"
)

// TokenSource yields the current bearer token, empty when there is no
// session. The session store implements it.
type TokenSource interface {
	Token() string
}

// AuthRoundTripper attaches the bearer token and an X-Request-Id to
// every outbound request and logs the request/response pair.
type AuthRoundTripper struct {
	Transport http.RoundTripper
	Tokens    TokenSource
}

func NewAuthRoundTripper(transport http.RoundTripper, tokens TokenSource) *AuthRoundTripper {
	if transport == nil {
		transport = http.DefaultTransport
	}

	return &AuthRoundTripper{Transport: transport, Tokens: tokens}
}

func (a *AuthRoundTripper) RoundTrip(r *http.Request) (*http.Response, error) {
	ctx := r.Context()

	reqID := logger.RequestIDFromCtx(ctx)
	if reqID == "" {
		if id, err := uuid.NewV4(); err == nil {
			reqID = id.String()
		}
	}

	if reqID != "" {
		r.Header.Set("X-Request-Id", reqID)
	}

	if a.Tokens != nil {
		if token := a.Tokens.Token(); token != "" {
			r.Header.Set("Authorization", "Bearer "+token)
		}
	}

	slog.InfoContext(ctx, "outgoing request",
		"request", fmt.Sprintf("%s %s", r.Method, r.URL.Redacted()), "request_id", reqID)

	resp, err := a.Transport.RoundTrip(r)
	if err != nil {
		return nil, fmt.Errorf("round trip: %w", err)
	}

	slog.InfoContext(ctx, "incoming response",
		"response", fmt.Sprintf("%s %s", r.Method, r.URL.Redacted()),
		"status", resp.StatusCode, "request_id", reqID)

	return resp, nil
}
