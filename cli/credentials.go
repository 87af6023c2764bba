// SPDX-License-Identifier: GPL-3.0-or-later
package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/CrawX/go-instapaper-sorter/config"
	"github.com/CrawX/go-instapaper-sorter/domain"
	"github.com/CrawX/go-instapaper-sorter/filestore"
	"github.com/CrawX/go-instapaper-sorter/instapaper"
	"github.com/CrawX/go-instapaper-sorter/persistence"

	"github.com/sirupsen/logrus"
)

var ErrNoLogin = errors.New("no cached token, set " + config.ENV_USERNAME + " and " + config.ENV_PASSWORD + " for the first run")

// credentials returns the cached access token and falls back to an xAuth
// exchange if none is cached.
func (a *app) credentials(ctx context.Context) (*domain.Credentials, error) {
	credentials := &domain.Credentials{}
	found, err := filestore.Load(a.conf.CredentialsFile, credentials)
	if err != nil {
		return nil, fmt.Errorf("could not read credentials: %w", err)
	}
	if found && len(credentials.Token) > 0 && len(credentials.TokenSecret) > 0 {
		a.l.WithField("file", a.conf.CredentialsFile).Debug("Using cached access token")
		return credentials, nil
	}

	return a.login(ctx)
}

// login exchanges username and password for an access token and caches it.
func (a *app) login(ctx context.Context) (*domain.Credentials, error) {
	if !a.conf.HasLogin() {
		return nil, ErrNoLogin
	}

	a.l.WithField("user", a.conf.Username).Info("Requesting access token")
	credentials, err := instapaper.AccessToken(ctx, a.conf.ApiBase, a.conf.ConsumerKey, a.conf.ConsumerSecret, a.conf.Username, *a.conf.Password, a.conf.Timeout)
	if err != nil {
		return nil, fmt.Errorf("could not obtain access token: %w", err)
	}

	err = filestore.Save(a.conf.CredentialsFile, credentials)
	if err != nil {
		return nil, fmt.Errorf("could not cache access token: %w", err)
	}
	a.l.WithField("file", a.conf.CredentialsFile).Info("Cached access token")

	return credentials, nil
}

func (a *app) client(ctx context.Context) (*instapaper.Client, error) {
	credentials, err := a.credentials(ctx)
	if err != nil {
		return nil, err
	}

	client, err := instapaper.NewOAuthClient(a.conf.ApiBase, a.conf.ConsumerKey, a.conf.ConsumerSecret, credentials,
		instapaper.MaxAttempts(a.conf.MaxAttempts),
		instapaper.InitialDelay(a.conf.InitialDelay),
		instapaper.Timeout(a.conf.Timeout),
	)
	if err != nil {
		return nil, fmt.Errorf("could not start instapaper client: %w", err)
	}
	return client, nil
}

func (a *app) history() (*persistence.Persistence, error) {
	err := os.MkdirAll(filepath.Dir(a.conf.Database), 0700)
	if err != nil {
		return nil, fmt.Errorf("could not create database directory: %w", err)
	}

	p, err := persistence.NewPersistence(a.conf.Database)
	if err != nil {
		return nil, fmt.Errorf("could not connect to database: %w", err)
	}
	a.l.WithFields(logrus.Fields{"file": a.conf.Database}).Debug("Opened history")
	return p, nil
}
