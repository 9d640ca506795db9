// Package session persists the user's credentials and the current
// satori session token.
package session

import (
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/zielmicha/satori-cli/internal/store"
)

// ErrNotLoggedIn is returned when an authenticated action is attempted
// with no stored username.
var ErrNotLoggedIn = errors.New("not logged in. Run 'satori login' first")

// Session is the single on-disk record at ~/.config/satori/satori.json.
// Password is hex-encoded, not hashed: the platform has no token
// exchange, so the raw password must be replayable on every login. The
// file is written 0600 for the same reason.
//
// The token is trusted until a request using it gets redirected to the
// login page; there is no client-side expiry timer.
type Session struct {
	path string

	Username string `json:"username,omitempty"`
	Password string `json:"password,omitempty"`
	Token    string `json:"satori_token,omitempty"`
}

// Load reads the session record at path. A missing file yields an empty
// record.
func Load(path string) (*Session, error) {
	s := &Session{path: path}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, fmt.Errorf("failed to read session file: %w", err)
	}
	if err := json.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("failed to parse session file: %w", err)
	}
	return s, nil
}

// Save rewrites the whole record atomically.
func (s *Session) Save() error {
	data, err := json.Marshal(s)
	if err != nil {
		return err
	}
	return store.WriteFileAtomic(s.path, data, 0o600)
}

func (s *Session) SetCredentials(username, password string) {
	s.Username = username
	s.Password = hex.EncodeToString([]byte(password))
}

// PlainPassword decodes the stored password for replay during login.
func (s *Session) PlainPassword() (string, error) {
	if s.Username == "" {
		return "", ErrNotLoggedIn
	}
	raw, err := hex.DecodeString(s.Password)
	if err != nil {
		return "", fmt.Errorf("stored password is corrupted: %w", err)
	}
	return string(raw), nil
}

func (s *Session) HasToken() bool {
	return s.Token != ""
}

func (s *Session) SetToken(token string) {
	s.Token = token
}

func (s *Session) ClearToken() {
	s.Token = ""
}
