// SPDX-License-Identifier: GPL-3.0-or-later
package cli

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/CrawX/go-instapaper-sorter/config"
	"github.com/CrawX/go-instapaper-sorter/domain"
	"github.com/CrawX/go-instapaper-sorter/filestore"
	"github.com/CrawX/go-instapaper-sorter/log"
	"github.com/CrawX/go-instapaper-sorter/persistence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const folderList = `[
	{"type":"folder","folder_id":1,"title":"Tech"},
	{"type":"folder","folder_id":2,"title":"News"},
	{"type":"folder","folder_id":3,"title":"Archive"}
]`

type testEnv struct {
	dir        string
	configFile string
	server     *httptest.Server
}

// setupEnv starts a fake api and writes a config file pointing at it. All
// files live in a temporary directory.
func setupEnv(t *testing.T) *testEnv {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("HOME", dir)
	for _, k := range []string{config.ENV_CONSUMER_KEY, config.ENV_CONSUMER_SECRET, config.ENV_USERNAME, config.ENV_PASSWORD} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/oauth/access_token":
			fmt.Fprint(w, "oauth_token=tok&oauth_token_secret=sec")
		case "/folders/list":
			fmt.Fprint(w, folderList)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	t.Cleanup(server.Close)

	configFile := filepath.Join(dir, "config.toml")
	content := fmt.Sprintf("ConsumerKey = \"key\"\nConsumerSecret = \"secret\"\nApiBase = %q\nConfigDir = %q\nInitialDelay = \"1ms\"\n", server.URL, dir)
	require.NoError(t, os.WriteFile(configFile, []byte(content), 0600))

	return &testEnv{dir: dir, configFile: configFile, server: server}
}

func (e *testEnv) cacheToken(t *testing.T) {
	require.NoError(t, filestore.Save(filepath.Join(e.dir, "credentials.json"), &domain.Credentials{Token: "tok", TokenSecret: "sec"}))
}

func (e *testEnv) execute(args ...string) (string, error) {
	log.InitLogging("error")
	cmd := newRootCommand(&app{})
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(out)
	cmd.SetIn(strings.NewReader(""))
	cmd.SetArgs(append([]string{"--config", e.configFile, "--loglevel", "error"}, args...))

	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestLogin(t *testing.T) {
	env := setupEnv(t)
	t.Setenv(config.ENV_USERNAME, "me@example.com")
	t.Setenv(config.ENV_PASSWORD, "")

	out, err := env.execute("login")
	require.NoError(t, err)

	credentialsFile := filepath.Join(env.dir, "credentials.json")
	assert.Equal(t, "Access token cached in "+credentialsFile+"\n", out)

	credentials := &domain.Credentials{}
	found, err := filestore.Load(credentialsFile, credentials)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, &domain.Credentials{Token: "tok", TokenSecret: "sec"}, credentials)
}

func TestLogin_MissingUser(t *testing.T) {
	env := setupEnv(t)

	_, err := env.execute("login")
	assert.Equal(t, ErrNoLogin, err)
}

func TestNoCachedToken(t *testing.T) {
	env := setupEnv(t)

	_, err := env.execute("folders")
	assert.Equal(t, ErrNoLogin, err)
}

func TestMissingConfigFile(t *testing.T) {
	env := setupEnv(t)
	env.configFile = filepath.Join(env.dir, "missing.toml")

	_, err := env.execute("rules", "list")
	assert.ErrorContains(t, err, "could not load config: could not read config file: ")
}

func TestFolders(t *testing.T) {
	env := setupEnv(t)
	env.cacheToken(t)

	out, err := env.execute("folders")

	require.NoError(t, err)
	assert.Equal(t, "1: Tech (id=1)\n2: News (id=2)\n3: Archive (id=3)\n", out)
}

func TestFolders_LoginOnFirstUse(t *testing.T) {
	env := setupEnv(t)
	t.Setenv(config.ENV_USERNAME, "me@example.com")
	t.Setenv(config.ENV_PASSWORD, "secret")

	_, err := env.execute("folders")
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(env.dir, "credentials.json"))
	assert.NoError(t, err, "the token is cached after the first exchange")
}

func TestRules(t *testing.T) {
	env := setupEnv(t)
	env.cacheToken(t)

	out, err := env.execute("rules", "list")
	require.NoError(t, err)
	assert.Equal(t, "No rules.\n", out)

	out, err = env.execute("rules", "add", ".Example.com", "3")
	require.NoError(t, err)
	assert.Equal(t, "saved: .example.com -> Archive\n", out)

	out, err = env.execute("rules", "add", "news.org", "2")
	require.NoError(t, err)
	assert.Equal(t, "saved: news.org -> News\n", out)

	_, err = env.execute("rules", "add", "other.org", "99")
	assert.EqualError(t, err, "no folder with id 99, see the folders command")

	_, err = env.execute("rules", "add", "other.org", "tech")
	assert.EqualError(t, err, `invalid folder id "tech"`)

	_, err = env.execute("rules", "add", "a b", "1")
	assert.Error(t, err)

	out, err = env.execute("rules", "list")
	require.NoError(t, err)
	assert.Equal(t, fmt.Sprintf("%-40s 3\n%-40s 2\n", ".example.com", "news.org"), out)

	out, err = env.execute("rules", "rm", ".example.com")
	require.NoError(t, err)
	assert.Equal(t, "removed: .example.com\n", out)

	_, err = env.execute("rules", "rm", ".example.com")
	assert.EqualError(t, err, "no rule for .example.com")

	out, err = env.execute("rules", "list")
	require.NoError(t, err)
	assert.Equal(t, fmt.Sprintf("%-40s 2\n", "news.org"), out)
}

func TestHistory(t *testing.T) {
	env := setupEnv(t)

	out, err := env.execute("history")
	require.NoError(t, err)
	assert.Equal(t, "No moves yet.\n", out)

	log.InitLogging("error")
	p, err := persistence.NewPersistence(filepath.Join(env.dir, "history.db"))
	require.NoError(t, err)
	require.NoError(t, p.SaveMove(domain.MoveRecord{RunId: "run-1", BookmarkId: 100, Title: "Post", Domain: "blog.example.com", FolderId: 3, FolderTitle: "Archive", Source: domain.MovedByRule}))
	require.NoError(t, p.SaveMove(domain.MoveRecord{RunId: "run-1", BookmarkId: 101, Title: "", Domain: "news.org", FolderId: 2, FolderTitle: "News", Source: domain.MovedManually}))
	require.NoError(t, p.Close())

	out, err = env.execute("history", "--limit", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "manual  news.org -> News  (no title)\n")
	assert.NotContains(t, out, "blog.example.com")
	assert.Contains(t, out, "Moves per folder:\n")
	assert.Contains(t, out, "      1  Archive (id=3)\n")
	assert.Contains(t, out, "      1  News (id=2)\n")

	_, err = env.execute("history", "--limit", "0")
	assert.EqualError(t, err, "limit must be at least 1")
}

func TestSort_EmptyInbox(t *testing.T) {
	env := setupEnv(t)
	env.cacheToken(t)
	env.server.Config.Handler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/folders/list":
			fmt.Fprint(w, folderList)
		case "/bookmarks/list":
			fmt.Fprint(w, `{"bookmarks":[]}`)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})

	out, err := env.execute("sort", "--dry-run")

	require.NoError(t, err)
	assert.Contains(t, out, "Folders (1..3):\n")
	assert.Contains(t, out, "No unread bookmarks.\n")

	_, err = os.Stat(filepath.Join(env.dir, "rules.json"))
	assert.NoError(t, err, "rules are persisted on exit")
}

func TestRun_ReportsFailure(t *testing.T) {
	env := setupEnv(t)
	stderr := &bytes.Buffer{}

	err := run(context.Background(), []string{"--config", filepath.Join(env.dir, "missing.toml"), "rules", "list"}, stderr)

	assert.Error(t, err)
	assert.Contains(t, stderr.String(), "MA:\t")
	assert.Contains(t, stderr.String(), "Command failed")
	assert.Contains(t, stderr.String(), "could not load config")
}

func TestRun_Interrupted(t *testing.T) {
	env := setupEnv(t)
	env.cacheToken(t)
	stderr := &bytes.Buffer{}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := run(ctx, []string{"--config", env.configFile, "sort"}, stderr)

	assert.True(t, errors.Is(err, context.Canceled))
	assert.Contains(t, stderr.String(), "Interrupted")
	assert.NotContains(t, stderr.String(), "Command failed")
}

func TestRun_LogFile(t *testing.T) {
	env := setupEnv(t)
	logFile := filepath.Join(env.dir, "logs", "sorter.log")
	f, err := os.OpenFile(env.configFile, os.O_APPEND|os.O_WRONLY, 0600)
	require.NoError(t, err)
	_, err = fmt.Fprintf(f, "LogFile = %q\n", logFile)
	require.NoError(t, err)
	require.NoError(t, f.Close())

	stderr := &bytes.Buffer{}
	err = run(context.Background(), []string{"--config", env.configFile, "--loglevel", "debug", "rules", "rm", "missing.org"}, stderr)
	assert.EqualError(t, err, "no rule for missing.org")

	content, err := os.ReadFile(logFile)
	require.NoError(t, err)
	assert.Contains(t, string(content), "Loaded config")
	assert.NotContains(t, stderr.String(), "Loaded config")
	assert.Contains(t, stderr.String(), "Command failed", "failures still reach stderr")
}
