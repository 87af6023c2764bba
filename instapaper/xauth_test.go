// SPDX-License-Identifier: GPL-3.0-or-later
package instapaper

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/CrawX/go-instapaper-sorter/domain"
	"github.com/stretchr/testify/assert"
)

func TestAccessToken(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		expected *domain.Credentials
		err      string
	}{
		{"ok", 200, "oauth_token=tok&oauth_token_secret=sec", &domain.Credentials{Token: "tok", TokenSecret: "sec"}, ""},
		{"incomplete", 200, "oauth_token=tok", nil, "access token response lacks oauth_token or oauth_token_secret"},
		{"denied", 401, `[{"type":"error","error_code":401,"message":"Invalid xAuth credentials."}]`, nil, "remote error calling /oauth/access_token: status 401: Invalid xAuth credentials. (code 401)"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/oauth/access_token", r.URL.Path)
				assert.True(t, strings.HasPrefix(r.Header.Get("Authorization"), "OAuth "))
				assert.Contains(t, r.Header.Get("Authorization"), `oauth_consumer_key="key"`)
				assert.NoError(t, r.ParseForm())
				assert.Equal(t, "user@example.com", r.PostForm.Get("x_auth_username"))
				assert.Equal(t, "hunter2", r.PostForm.Get("x_auth_password"))
				assert.Equal(t, "client_auth", r.PostForm.Get("x_auth_mode"))

				w.WriteHeader(tc.status)
				fmt.Fprint(w, tc.body)
			}))
			defer server.Close()

			credentials, err := AccessToken(context.Background(), server.URL, "key", "secret", "user@example.com", "hunter2", time.Second)
			if len(tc.err) == 0 {
				assert.NoError(t, err)
				assert.Equal(t, tc.expected, credentials)
			} else {
				assert.Nil(t, credentials)
				assert.ErrorContains(t, err, tc.err)
			}
		})
	}
}
