// Package backend is the single outbound boundary to the reservation
// REST API. It attaches the session token, classifies failures into
// the entity error taxonomy and hands wire records to the normalizer.
package backend

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/ucampus/reservas-cli/internal/entity"
	"github.com/ucampus/reservas-cli/internal/normalize"
	"github.com/ucampus/reservas-cli/pkg/config"
	"github.com/ucampus/reservas-cli/pkg/transport"
)

const defaultRetryWaitMax = time.Second * 5

type Client struct {
	client  *http.Client
	baseURL string

	// onUnauthorized runs once per 401 so the stored session can be
	// cleared before the error reaches the caller.
	onUnauthorized func()
}

func NewClient(cfg config.Config, tokens transport.TokenSource) *Client {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = cfg.APIRetryAttempts
	retryClient.RetryWaitMin = 1 * time.Second
	retryClient.RetryWaitMax = defaultRetryWaitMax
	retryClient.HTTPClient.Timeout = cfg.APITimeout

	retryClient.Logger = nil

	// Any HTTP response, whatever the status, is an answer; only
	// transport errors are eligible for a retry, and by default the
	// attempt budget is zero anyway.
	retryClient.CheckRetry = func(ctx context.Context, resp *http.Response, err error) (bool, error) {
		if err != nil {
			return retryablehttp.DefaultRetryPolicy(ctx, resp, err)
		}

		return false, nil
	}

	base := http.RoundTripper(&http.Transport{
		TLSClientConfig: &tls.Config{MinVersion: tls.VersionTLS12},
	})

	if cfg.TLSInsecureSkipVerify {
		base = &http.Transport{
			TLSClientConfig: &tls.Config{
				MinVersion:         tls.VersionTLS12,
				InsecureSkipVerify: true, //nolint:gosec // dev backends use self-signed certs
			},
		}
	}

	retryClient.HTTPClient.Transport = transport.NewAuthRoundTripper(base, tokens)

	return &Client{
		client:  retryClient.StandardClient(),
		baseURL: strings.TrimRight(cfg.APIBaseURL, "/"),
	}
}

// OnUnauthorized registers the callback invoked whenever the backend
// answers 401.
func (c *Client) OnUnauthorized(fn func()) {
	c.onUnauthorized = fn
}

func (c *Client) do(ctx context.Context, method, path string, payload any) ([]byte, error) {
	var reqBody io.Reader

	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("marshal request in JSON: %w", err)
		}

		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")

	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.client.Do(req)
	if err != nil {
		if isNetworkErr(err) {
			return nil, fmt.Errorf("%w: %s", entity.ErrNetwork, err)
		}

		return nil, fmt.Errorf("send request: %w", err)
	}

	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		return nil, c.classify(resp.StatusCode, body)
	}

	return body, nil
}

func (c *Client) classify(status int, body []byte) error {
	msg := extractMessage(body)

	switch {
	case status == http.StatusUnauthorized:
		if c.onUnauthorized != nil {
			c.onUnauthorized()
		}

		return &entity.APIError{Class: entity.ErrUnauthorized, Status: status, Message: msg}

	case status == http.StatusNotFound:
		return &entity.APIError{Class: entity.ErrNotFound, Status: status, Message: msg}

	case status == http.StatusConflict:
		return conflictError(body, msg)

	case status >= http.StatusInternalServerError:
		return &entity.APIError{Class: entity.ErrServer, Status: status, Message: msg}

	default:
		return &entity.APIError{Class: entity.ErrRequestRejected, Status: status, Message: msg}
	}
}

// conflictError decodes the 409 payload, which for availability checks
// carries the conflicting reservations.
func conflictError(body []byte, msg string) error {
	var payload struct {
		Mensaje           string                     `json:"mensaje"`
		ReservasConflicto []normalize.ConflictRecord `json:"reservasConflicto"`
	}

	if err := json.Unmarshal(body, &payload); err != nil {
		return &entity.ConflictError{Message: msg}
	}

	conflicts := make([]entity.ReservationConflict, 0, len(payload.ReservasConflicto))
	for _, rec := range payload.ReservasConflicto {
		conflicts = append(conflicts, normalize.Conflict(rec))
	}

	if payload.Mensaje != "" {
		msg = payload.Mensaje
	}

	return &entity.ConflictError{Message: msg, Conflicts: conflicts}
}

// extractMessage pulls a human-readable explanation out of whatever
// error shape the backend produced: a plain string, {message},
// {Mensaje}, {title} or the ASP.NET {errors: {field: [...]}} form.
func extractMessage(body []byte) string {
	text := strings.TrimSpace(string(body))
	if text == "" {
		return ""
	}

	var plain string
	if err := json.Unmarshal(body, &plain); err == nil {
		return plain
	}

	var shaped struct {
		Mensaje string              `json:"Mensaje"`
		Message string              `json:"message"`
		Title   string              `json:"title"`
		Errors  map[string][]string `json:"errors"`
	}

	if err := json.Unmarshal(body, &shaped); err != nil {
		return text
	}

	if msg := firstNonEmpty(shaped.Mensaje, shaped.Message, shaped.Title); msg != "" {
		if len(shaped.Errors) == 0 {
			return msg
		}

		return msg + ": " + joinFieldErrors(shaped.Errors)
	}

	if len(shaped.Errors) > 0 {
		return joinFieldErrors(shaped.Errors)
	}

	return text
}

func joinFieldErrors(fieldErrors map[string][]string) string {
	fields := make([]string, 0, len(fieldErrors))
	for field := range fieldErrors {
		fields = append(fields, field)
	}

	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, field+": "+strings.Join(fieldErrors[field], "; "))
	}

	return strings.Join(parts, "; ")
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}

	return ""
}

func isNetworkErr(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}

	msg := err.Error()

	return strings.Contains(msg, "timeout") ||
		strings.Contains(msg, "connection refused") ||
		strings.Contains(msg, "no such host")
}

func logIssues(ctx context.Context, kind string, issues []string) {
	for _, issue := range issues {
		slog.WarnContext(ctx, "data quality issue", "entity", kind, "issue", issue)
	}
}
