package komodor

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/komodorio/kubectl-komodor/internal/domain"
	"github.com/komodorio/kubectl-komodor/internal/ports"
	"github.com/sirupsen/logrus"
)

const (
	DefaultBaseURL        = "https://api.komodor.com"
	DefaultRequestTimeout = 30 * time.Second

	sessionsPath      = "/api/v2/klaudia/rca/sessions"
	apiKeyHeader      = "X-API-KEY"
	maxResponseBytes  = 1 << 20
	maxErrorBodyBytes = 512

	opCreateSession = "create rca session"
	opGetSession    = "get rca session"
)

type Client struct {
	BaseURL        string
	HTTPClient     *http.Client
	RequestTimeout time.Duration
	UserAgent      string
	Logger         logrus.FieldLogger
}

var _ ports.SessionClient = (*Client)(nil)

type createSessionRequest struct {
	Kind        string `json:"kind"`
	Name        string `json:"name"`
	Namespace   string `json:"namespace"`
	ClusterName string `json:"clusterName"`
}

type createSessionResponse struct {
	SessionID string `json:"sessionId"`
}

type sessionPayload struct {
	SessionID          string            `json:"sessionId"`
	Operations         []string          `json:"operations"`
	IsComplete         bool              `json:"isComplete"`
	IsFailed           bool              `json:"isFailed"`
	IsStuck            bool              `json:"isStuck"`
	ProblemShort       string            `json:"problemShort"`
	WhatHappened       []string          `json:"whatHappened"`
	EvidenceCollection []evidencePayload `json:"evidenceCollection"`
	Recommendation     string            `json:"recommendation"`
}

type evidencePayload struct {
	Query   string `json:"query"`
	Snippet string `json:"snippet"`
}

func (c *Client) CreateSession(ctx context.Context, target domain.AnalysisTarget, apiKey string) (domain.SessionHandle, error) {
	endpoint, err := buildAPIURL(c.baseURL(), sessionsPath)
	if err != nil {
		return domain.SessionHandle{}, err
	}

	body, err := json.Marshal(createSessionRequest{
		Kind:        target.Kind,
		Name:        target.Name,
		Namespace:   target.Namespace,
		ClusterName: target.ClusterName,
	})
	if err != nil {
		return domain.SessionHandle{}, fmt.Errorf("encode session request: %w", err)
	}

	var payload createSessionResponse
	if err := c.do(ctx, opCreateSession, http.MethodPost, endpoint, apiKey, body, &payload); err != nil {
		return domain.SessionHandle{}, err
	}
	if strings.TrimSpace(payload.SessionID) == "" {
		return domain.SessionHandle{}, &domain.RemoteError{
			Op:         opCreateSession,
			StatusCode: http.StatusOK,
			Body:       "response missing sessionId",
		}
	}

	c.logger().WithField("session_id", payload.SessionID).Debug("rca session created")
	return domain.SessionHandle{SessionID: payload.SessionID}, nil
}

func (c *Client) GetSessionStatus(ctx context.Context, handle domain.SessionHandle, apiKey string) (domain.SessionSnapshot, error) {
	if handle.SessionID == "" {
		return domain.SessionSnapshot{}, errors.New("session id is required")
	}

	endpoint, err := buildAPIURL(c.baseURL(), sessionsPath+"/"+url.PathEscape(handle.SessionID))
	if err != nil {
		return domain.SessionSnapshot{}, err
	}

	var payload sessionPayload
	if err := c.do(ctx, opGetSession, http.MethodGet, endpoint, apiKey, nil, &payload); err != nil {
		return domain.SessionSnapshot{}, err
	}

	return c.toSnapshot(handle, payload), nil
}

func (c *Client) toSnapshot(handle domain.SessionHandle, payload sessionPayload) domain.SessionSnapshot {
	status, conflict := domain.ClassifySessionFlags(payload.IsComplete, payload.IsFailed, payload.IsStuck)
	if conflict {
		c.logger().WithFields(logrus.Fields{
			"session_id":  handle.SessionID,
			"is_complete": payload.IsComplete,
			"is_failed":   payload.IsFailed,
			"is_stuck":    payload.IsStuck,
			"resolved_as": status.String(),
		}).Warn("rca session reported conflicting terminal flags")
	}

	sessionID := payload.SessionID
	if sessionID == "" {
		sessionID = handle.SessionID
	}

	evidence := make([]domain.Evidence, 0, len(payload.EvidenceCollection))
	for _, item := range payload.EvidenceCollection {
		evidence = append(evidence, domain.Evidence{Query: item.Query, Snippet: item.Snippet})
	}

	return domain.SessionSnapshot{
		SessionID:          sessionID,
		Status:             status,
		Operations:         payload.Operations,
		ProblemShort:       payload.ProblemShort,
		WhatHappened:       payload.WhatHappened,
		EvidenceCollection: evidence,
		Recommendation:     payload.Recommendation,
	}
}

func (c *Client) do(ctx context.Context, op, method, endpoint, apiKey string, body []byte, out any) error {
	if strings.TrimSpace(apiKey) == "" {
		return &domain.AuthError{Op: op}
	}

	requestCtx, cancel := c.requestContext(ctx)
	defer cancel()

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(requestCtx, method, endpoint, reader)
	if err != nil {
		return fmt.Errorf("%s: create request: %w", op, err)
	}
	req.Header.Set(apiKeyHeader, apiKey)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.UserAgent != "" {
		req.Header.Set("User-Agent", c.UserAgent)
	}

	started := time.Now()
	resp, err := c.httpClient().Do(req)
	if err != nil {
		return &domain.TransportError{Op: op, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	c.logger().WithFields(logrus.Fields{
		"method":   method,
		"url":      endpoint,
		"status":   resp.StatusCode,
		"duration": time.Since(started).Round(time.Millisecond),
	}).Debug("komodor api request")

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return &domain.AuthError{Op: op, StatusCode: resp.StatusCode}
	}
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return &domain.RemoteError{
			Op:         op,
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			Body:       readErrorBody(resp.Body),
		}
	}

	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(out); err != nil {
		if requestCtx.Err() != nil {
			return &domain.TransportError{Op: op, Err: err}
		}
		return &domain.RemoteError{
			Op:         op,
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			Body:       fmt.Sprintf("decode response: %v", err),
		}
	}

	return nil
}

func (c *Client) baseURL() string {
	if c.BaseURL != "" {
		return c.BaseURL
	}
	return DefaultBaseURL
}

func (c *Client) httpClient() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}
	return http.DefaultClient
}

func (c *Client) logger() logrus.FieldLogger {
	if c.Logger != nil {
		return c.Logger
	}
	return logrus.StandardLogger()
}

func (c *Client) requestContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, hasDeadline := ctx.Deadline(); hasDeadline {
		return ctx, func() {}
	}

	requestTimeout := c.RequestTimeout
	if requestTimeout <= 0 {
		requestTimeout = DefaultRequestTimeout
	}

	return context.WithTimeout(ctx, requestTimeout)
}

func readErrorBody(body io.Reader) string {
	data, err := io.ReadAll(io.LimitReader(body, maxErrorBodyBytes))
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}

func buildAPIURL(baseURL string, path string) (string, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return "", fmt.Errorf("parse api base url: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return "", errors.New("api base url must use http or https")
	}
	if parsed.Host == "" {
		return "", errors.New("api base url host is required")
	}

	return strings.TrimRight(parsed.String(), "/") + path, nil
}
