// Package client talks to the Satori judging platform. The platform has
// no structured API: everything is a server-rendered HTML page over HTTP,
// authenticated by a satori_token session cookie.
package client

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/zielmicha/satori-cli/internal/session"
)

// Client issues authenticated requests. It has two states: no trusted
// token, and token assumed valid. A token stays trusted until the server
// redirects a request to the login page; there is no client-side expiry
// timer.
type Client struct {
	base    string
	sess    *session.Session
	httpc   *http.Client
	verbose bool
}

func New(baseURL string, sess *session.Session) *Client {
	return &Client{
		base: strings.TrimRight(baseURL, "/"),
		sess: sess,
		httpc: &http.Client{
			// the engine inspects raw redirects itself
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
	}
}

func (c *Client) SetVerbose(v bool) {
	c.verbose = v
}

func (c *Client) logf(format string, args ...any) {
	if c.verbose {
		log.Printf("satori: "+format, args...)
	}
}

// Do issues method path carrying the session token cookie. If the server
// signals an expired session (a redirect to the login page), it
// re-authenticates, persists the fresh token, and retries exactly once;
// a second expiry signal propagates as an error. body may be nil; it is
// retained as bytes so the retry can replay it.
func (c *Client) Do(method, path, contentType string, body []byte) (*http.Response, error) {
	if !c.sess.HasToken() {
		if err := c.login(); err != nil {
			return nil, err
		}
	}

	c.logf("%s %s", method, path)
	resp, err := c.send(method, path, contentType, body)
	if err != nil {
		return nil, err
	}

	if c.expired(resp) {
		c.logf("%s %s -> session expired, logging in again", method, path)
		_ = resp.Body.Close()
		if err := c.login(); err != nil {
			return nil, err
		}
		resp, err = c.send(method, path, contentType, body)
		if err != nil {
			return nil, err
		}
		if c.expired(resp) {
			_ = resp.Body.Close()
			return nil, fmt.Errorf("session expired again right after login")
		}
	}

	c.logf("%s %s -> %s", method, path, resp.Status)
	return resp, nil
}

func (c *Client) send(method, path, contentType string, body []byte) (*http.Response, error) {
	var r io.Reader
	if body != nil {
		r = bytes.NewReader(body)
	}
	req, err := http.NewRequest(method, c.base+path, r)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	// the token is read from the session record on every attempt, so a
	// mid-command re-login is picked up by the retry
	req.Header.Set("Cookie", "satori_token="+c.sess.Token)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s failed: %w", method, path, err)
	}
	return resp, nil
}

// expired reports whether resp is a redirect to the platform's login
// page, the only signal that the token is stale.
func (c *Client) expired(resp *http.Response) bool {
	if resp.StatusCode < 300 || resp.StatusCode > 399 {
		return false
	}
	loc, err := url.Parse(resp.Header.Get("Location"))
	if err != nil {
		return false
	}
	return strings.HasPrefix(loc.Path, "/login")
}

// login runs the authentication transition: POST the stored credentials
// and capture the fresh satori_token cookie. A redirect is the success
// signal; anything else means the credentials were not accepted. The
// refreshed record is persisted before the caller proceeds.
func (c *Client) login() error {
	password, err := c.sess.PlainPassword()
	if err != nil {
		return err
	}

	form := url.Values{
		"login":    {c.sess.Username},
		"password": {password},
	}
	c.logf("POST /login (as %s)", c.sess.Username)
	resp, err := c.httpc.Post(c.base+"/login", "application/x-www-form-urlencoded",
		strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("login request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 300 || resp.StatusCode > 399 {
		return ErrInvalidCredentials
	}

	var token string
	for _, ck := range resp.Cookies() {
		if ck.Name == "satori_token" {
			token = ck.Value
		}
	}
	if token == "" {
		return fmt.Errorf("login succeeded but no satori_token cookie was set")
	}

	c.sess.SetToken(token)
	if err := c.sess.Save(); err != nil {
		return fmt.Errorf("failed to save refreshed token: %w", err)
	}
	c.logf("POST /login -> ok")
	return nil
}

// Login authenticates eagerly with the stored credentials; the login
// command uses it to validate them right away.
func (c *Client) Login() error {
	return c.login()
}

// GetDocument fetches path and parses the HTML body.
func (c *Client) GetDocument(path string) (*goquery.Document, error) {
	resp, err := c.Do(http.MethodGet, path, "", nil)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return doc, nil
}

// GetBytes fetches path and returns the raw body (statement PDFs).
func (c *Client) GetBytes(path string) ([]byte, error) {
	resp, err := c.Do(http.MethodGet, path, "", nil)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("GET %s: HTTP %d", path, resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}
