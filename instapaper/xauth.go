// SPDX-License-Identifier: GPL-3.0-or-later
package instapaper

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/CrawX/go-instapaper-sorter/domain"

	"github.com/dghubble/oauth1"
)

const endpointAccessToken = "/oauth/access_token"

// AccessToken exchanges username and password for a durable token (xAuth).
// The request is signed by the consumer only and not retried.
func AccessToken(ctx context.Context, apiBase, consumerKey, consumerSecret, username, password string, timeout time.Duration) (*domain.Credentials, error) {
	config := oauth1.NewConfig(consumerKey, consumerSecret)
	httpClient := config.Client(ctx, oauth1.NewToken("", ""))
	httpClient.Timeout = timeout

	form := url.Values{
		"x_auth_username": {username},
		"x_auth_password": {password},
		"x_auth_mode":     {"client_auth"},
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, strings.TrimRight(apiBase, "/")+endpointAccessToken, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("could not create access token request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("could not request access token: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("could not read access token response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &domain.ApiError{Kind: domain.Remote, Endpoint: endpointAccessToken, Status: resp.StatusCode, Message: errorMessage(body)}
	}

	values, err := url.ParseQuery(strings.TrimSpace(string(body)))
	if err != nil {
		return nil, malformed(endpointAccessToken, fmt.Errorf("could not parse access token response: %w", err))
	}

	credentials := &domain.Credentials{
		Token:       values.Get("oauth_token"),
		TokenSecret: values.Get("oauth_token_secret"),
	}
	if len(credentials.Token) == 0 || len(credentials.TokenSecret) == 0 {
		return nil, malformed(endpointAccessToken, fmt.Errorf("access token response lacks oauth_token or oauth_token_secret"))
	}

	return credentials, nil
}
