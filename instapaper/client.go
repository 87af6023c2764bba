// SPDX-License-Identifier: GPL-3.0-or-later
package instapaper

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/CrawX/go-instapaper-sorter/domain"
	"github.com/CrawX/go-instapaper-sorter/log"

	"github.com/dghubble/oauth1"
	"github.com/sethvargo/go-retry"
	"github.com/sirupsen/logrus"
)

const (
	DefaultApiBase      = "https://www.instapaper.com/api/1"
	DefaultTimeout      = 30 * time.Second
	DefaultMaxAttempts  = 6
	DefaultInitialDelay = 600 * time.Millisecond
)

// Client calls the Instapaper API. Every call is a form encoded POST that
// is retried with exponential backoff on transient failures.
type Client struct {
	httpClient *http.Client
	apiBase    string

	configuration *configuration

	l *logrus.Logger
}

func NewClient(apiBase string, httpClient *http.Client, configFunc ...ConfigFunc) (*Client, error) {
	config := defaultConfiguration()
	for _, f := range configFunc {
		err := f(config)
		if err != nil {
			return nil, fmt.Errorf("error applying configuration: %w", err)
		}
	}

	httpClient.Timeout = config.Timeout
	return &Client{
		httpClient:    httpClient,
		apiBase:       strings.TrimRight(apiBase, "/"),
		configuration: config,
		l:             log.Logger(log.LOG_INSTAPAPER),
	}, nil
}

// NewOAuthClient creates a client whose requests are signed with the
// consumer key and the user's access token.
func NewOAuthClient(apiBase, consumerKey, consumerSecret string, credentials *domain.Credentials, configFunc ...ConfigFunc) (*Client, error) {
	config := oauth1.NewConfig(consumerKey, consumerSecret)
	httpClient := config.Client(context.Background(), oauth1.NewToken(credentials.Token, credentials.TokenSecret))

	return NewClient(apiBase, httpClient, configFunc...)
}

// Call posts params to endpoint and returns the response body. An empty body
// yields an empty result. Once all attempts failed transiently the returned
// error is of kind domain.Exhausted.
func (c *Client) Call(ctx context.Context, endpoint string, params url.Values) (json.RawMessage, error) {
	var result json.RawMessage
	attempt := 0

	err := retry.Do(ctx, c.backoff(), func(ctx context.Context) error {
		attempt++
		start := time.Now()
		body, err := c.callOnce(ctx, endpoint, params)
		if err == nil {
			c.l.WithFields(logrus.Fields{"endpoint": endpoint, "attempt": attempt, "duration": time.Since(start)}).Debug("Called api")
			result = body
			return nil
		}

		if domain.IsTransient(err) {
			c.l.WithFields(logrus.Fields{"endpoint": endpoint, "attempt": attempt, "maxattempts": c.configuration.MaxAttempts, "error": err}).Warn("Api call failed")
			return retry.RetryableError(err)
		}
		return err
	})

	if err == nil {
		return result, nil
	}
	if domain.IsTransient(err) {
		return nil, &domain.ApiError{
			Kind:     domain.Exhausted,
			Endpoint: endpoint,
			Message:  fmt.Sprintf("failed after %d attempts", attempt),
			Err:      err,
		}
	}
	return nil, err
}

// backoff waits InitialDelay * 2^n after the n-th failed attempt and stops
// after MaxAttempts attempts.
func (c *Client) backoff() retry.Backoff {
	b := retry.NewExponential(c.configuration.InitialDelay)
	return retry.WithMaxRetries(uint64(c.configuration.MaxAttempts-1), b)
}

func (c *Client) callOnce(ctx context.Context, endpoint string, params url.Values) (json.RawMessage, error) {
	if params == nil {
		params = url.Values{}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiBase+endpoint, strings.NewReader(params.Encode()))
	if err != nil {
		return nil, &domain.ApiError{Kind: domain.Remote, Endpoint: endpoint, Err: fmt.Errorf("could not create request: %w", err)}
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, &domain.ApiError{Kind: domain.Transient, Endpoint: endpoint, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &domain.ApiError{Kind: domain.Transient, Endpoint: endpoint, Status: resp.StatusCode, Err: fmt.Errorf("could not read response: %w", err)}
	}

	if isTransientStatus(resp.StatusCode) {
		return nil, &domain.ApiError{Kind: domain.Transient, Endpoint: endpoint, Status: resp.StatusCode, Message: errorMessage(body)}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &domain.ApiError{Kind: domain.Remote, Endpoint: endpoint, Status: resp.StatusCode, Message: errorMessage(body)}
	}

	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		return nil, nil
	}
	if !json.Valid(body) {
		return nil, &domain.ApiError{Kind: domain.Malformed, Endpoint: endpoint, Status: resp.StatusCode, Message: "response is not json"}
	}
	if msg := errorMessage(body); len(msg) > 0 {
		return nil, &domain.ApiError{Kind: domain.Remote, Endpoint: endpoint, Status: resp.StatusCode, Message: msg}
	}

	return json.RawMessage(body), nil
}

func isTransientStatus(status int) bool {
	return status == http.StatusTooManyRequests || status >= 500
}

type errorResponse struct {
	Type      string `json:"type"`
	ErrorCode int    `json:"error_code"`
	Message   string `json:"message"`
}

// errorMessage extracts the message of an error entity like
// [{"type":"error","error_code":1241,"message":"Invalid bookmark"}].
func errorMessage(body []byte) string {
	entities := []errorResponse{}
	err := json.Unmarshal(body, &entities)
	if err != nil {
		return ""
	}

	for _, e := range entities {
		if e.Type == "error" {
			return fmt.Sprintf("%s (code %d)", e.Message, e.ErrorCode)
		}
	}
	return ""
}
