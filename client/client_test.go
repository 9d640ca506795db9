package client

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zielmicha/satori-cli/internal/session"
)

// fakeSatori mimics the platform's cookie-session behavior: a login POST
// answers with a redirect plus a satori_token cookie, and any page
// request carrying an unknown token is redirected to the login page.
type fakeSatori struct {
	mu           sync.Mutex
	nextToken    string
	validToken   string
	loginCalls   int
	pageHits     int
	alwaysExpire bool
}

func (f *fakeSatori) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/login", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		f.loginCalls++
		_ = r.ParseForm()
		if r.PostFormValue("login") != "alice" || r.PostFormValue("password") != "secret" {
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte("<html>login failed</html>"))
			return
		}
		f.validToken = f.nextToken
		http.SetCookie(w, &http.Cookie{Name: "satori_token", Value: f.validToken})
		w.Header().Set("Location", "/news")
		w.WriteHeader(http.StatusFound)
	})
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		f.pageHits++
		cookie, err := r.Cookie("satori_token")
		if f.alwaysExpire || err != nil || cookie.Value != f.validToken {
			w.Header().Set("Location", "/login?redirect="+r.URL.Path)
			w.WriteHeader(http.StatusFound)
			return
		}
		_, _ = w.Write([]byte("<html>ok</html>"))
	})
	return mux
}

func newTestClient(t *testing.T, srv *httptest.Server) (*Client, *session.Session, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "satori.json")
	sess, err := session.Load(path)
	require.NoError(t, err)
	sess.SetCredentials("alice", "secret")
	return New(srv.URL, sess), sess, path
}

func TestRequestWithoutUsernameFails(t *testing.T) {
	fake := &fakeSatori{nextToken: "tok1"}
	srv := httptest.NewServer(fake.handler())
	defer srv.Close()

	sess, err := session.Load(filepath.Join(t.TempDir(), "satori.json"))
	require.NoError(t, err)
	c := New(srv.URL, sess)

	_, err = c.Do(http.MethodGet, "/contest/select", "", nil)
	assert.ErrorIs(t, err, ErrNotLoggedIn)
	assert.Zero(t, fake.loginCalls)
}

func TestInvalidCredentials(t *testing.T) {
	fake := &fakeSatori{nextToken: "tok1"}
	srv := httptest.NewServer(fake.handler())
	defer srv.Close()

	path := filepath.Join(t.TempDir(), "satori.json")
	sess, err := session.Load(path)
	require.NoError(t, err)
	sess.SetCredentials("bob", "wrong")
	c := New(srv.URL, sess)

	_, err = c.Do(http.MethodGet, "/contest/select", "", nil)
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginRunsBeforeFirstRequest(t *testing.T) {
	fake := &fakeSatori{nextToken: "tok1"}
	srv := httptest.NewServer(fake.handler())
	defer srv.Close()

	c, sess, _ := newTestClient(t, srv)
	require.False(t, sess.HasToken())

	resp, err := c.Do(http.MethodGet, "/contest/select", "", nil)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 1, fake.loginCalls)
	assert.Equal(t, "tok1", sess.Token)
}

// The end-to-end renewal scenario: a stale token gets a login-redirect,
// the engine re-authenticates exactly once, retries exactly once, and
// the refreshed token ends up persisted.
func TestSessionRenewalRetry(t *testing.T) {
	fake := &fakeSatori{nextToken: "tok123", validToken: "previous"}
	srv := httptest.NewServer(fake.handler())
	defer srv.Close()

	c, sess, path := newTestClient(t, srv)
	sess.SetToken("stale")

	resp, err := c.Do(http.MethodGet, "/contest/select", "", nil)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 1, fake.loginCalls, "exactly one re-authentication")
	assert.Equal(t, 2, fake.pageHits, "exactly one retry")

	// the persisted record carries the fresh token
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var record map[string]string
	require.NoError(t, json.Unmarshal(data, &record))
	assert.Equal(t, "alice", record["username"])
	assert.Equal(t, "tok123", record["satori_token"])
}

func TestSecondExpirySignalIsAnError(t *testing.T) {
	fake := &fakeSatori{nextToken: "tok1", alwaysExpire: true}
	srv := httptest.NewServer(fake.handler())
	defer srv.Close()

	c, sess, _ := newTestClient(t, srv)
	sess.SetToken("stale")

	_, err := c.Do(http.MethodGet, "/contest/select", "", nil)
	require.Error(t, err)
	assert.Equal(t, 1, fake.loginCalls, "no retry loop")
	assert.Equal(t, 2, fake.pageHits, "one original request, one retry, nothing more")
}

func TestNonLoginRedirectIsReturnedToCaller(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/contest/101/submit", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Location", "/contest/101/results")
		w.WriteHeader(http.StatusFound)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	c, sess, _ := newTestClient(t, srv)
	sess.SetToken("tok1")

	resp, err := c.Do(http.MethodPost, "/contest/101/submit", "", nil)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/contest/101/results", resp.Header.Get("Location"))
}
