// SPDX-License-Identifier: GPL-3.0-or-later
package link

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDomainOf(t *testing.T) {
	tests := []struct {
		name     string
		url      string
		expected string
	}{
		{"simple", "https://blog.example.com/post/1", "blog.example.com"},
		{"uppercase", "HTTPS://News.Example.COM/a?b=c", "news.example.com"},
		{"port", "http://localhost:8080/x", "localhost:8080"},
		{"userinfo", "https://user:pw@example.org/", "example.org"},
		{"whitespace", "  https://example.net/  ", "example.net"},
		{"nohost", "not a url", ""},
		{"empty", "", ""},
		{"malformed", "http://[::1", ""},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, DomainOf(tc.url))
		})
	}
}

func TestDisplayTitle(t *testing.T) {
	assert.Equal(t, "Hello", DisplayTitle("  Hello "))
	assert.Equal(t, NoTitle, DisplayTitle(""))
	assert.Equal(t, NoTitle, DisplayTitle(" \t"))
}

func TestShortTitle(t *testing.T) {
	assert.Equal(t, "short", ShortTitle("short"))
	assert.Equal(t, "abcdefghijklmnopqrstuvwxyz0123...", ShortTitle("abcdefghijklmnopqrstuvwxyz0123456789"))
	assert.Equal(t, strings.Repeat("ä", 30)+"...", ShortTitle(strings.Repeat("ä", 33)))
}
