// Package auth obtains an authorized HTTP client for the YouTube Data API
// using the OAuth 2.0 installed-application flow.
package auth

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"sync"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/youtube/v3"
)

// Sentinel errors for the consent flow.
var (
	ErrStateMismatch = errors.New("auth: oauth state mismatch")
	ErrNoCode        = errors.New("auth: authorization code missing from callback")
)

// Options configures an Authenticator.
type Options struct {
	// TokenFile is read for a cached token. Empty disables the cache.
	TokenFile string
	// SaveToken writes new and refreshed tokens back to TokenFile.
	SaveToken bool
	// Timeout bounds the wait for the browser callback. Zero means 5 minutes.
	Timeout time.Duration
}

// Authenticator produces an authorized *http.Client, running the interactive
// consent flow when no usable cached token exists.
type Authenticator struct {
	config    *oauth2.Config
	tokenFile string
	saveToken bool
	timeout   time.Duration

	// Out receives the consent instructions. Nil means os.Stderr.
	Out io.Writer
	// OpenURL, if set, is called with the consent URL, e.g. to launch a browser.
	OpenURL func(url string) error
}

// New reads the OAuth client secret bundle at credentialsFile and returns an
// Authenticator requesting the YouTube scope.
func New(credentialsFile string, opts Options) (*Authenticator, error) {
	data, err := os.ReadFile(credentialsFile)
	if err != nil {
		return nil, fmt.Errorf("auth: read client secret: %w", err)
	}
	cfg, err := google.ConfigFromJSON(data, youtube.YoutubeScope)
	if err != nil {
		return nil, fmt.Errorf("auth: parse client secret %s: %w", credentialsFile, err)
	}
	return NewWithConfig(cfg, opts), nil
}

// NewWithConfig returns an Authenticator for an already built OAuth config.
func NewWithConfig(cfg *oauth2.Config, opts Options) *Authenticator {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Minute
	}
	return &Authenticator{
		config:    cfg,
		tokenFile: opts.TokenFile,
		saveToken: opts.SaveToken && opts.TokenFile != "",
		timeout:   timeout,
	}
}

// Client returns an HTTP client that authorizes every request and refreshes
// the access token when it expires. The returned client stays bound to ctx.
func (a *Authenticator) Client(ctx context.Context) (*http.Client, error) {
	tok := a.cachedToken()
	if tok == nil {
		var err error
		tok, err = a.consent(ctx)
		if err != nil {
			return nil, err
		}
		a.persist(tok)
	}

	ts := a.config.TokenSource(ctx, tok)
	if a.saveToken {
		ts = &persistingSource{src: ts, auth: a, last: tok.AccessToken}
	}
	return oauth2.NewClient(ctx, ts), nil
}

// cachedToken returns the cached token if it is valid or can be refreshed.
func (a *Authenticator) cachedToken() *oauth2.Token {
	if a.tokenFile == "" {
		return nil
	}
	tok, err := LoadToken(a.tokenFile)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			log.Printf("auth: ignoring cached token: %v", err)
		}
		return nil
	}
	if !tok.Valid() && tok.RefreshToken == "" {
		log.Printf("auth: cached token in %s expired and cannot be refreshed", a.tokenFile)
		return nil
	}
	return tok
}

// persist saves tok when token saving is enabled. Failures are logged only;
// the token is still usable for this run.
func (a *Authenticator) persist(tok *oauth2.Token) {
	if !a.saveToken {
		return
	}
	if err := SaveToken(a.tokenFile, tok); err != nil {
		log.Printf("auth: save token: %v", err)
	}
}

func (a *Authenticator) out() io.Writer {
	if a.Out != nil {
		return a.Out
	}
	return os.Stderr
}

// persistingSource saves the token whenever the wrapped source hands out a
// new access token.
type persistingSource struct {
	src  oauth2.TokenSource
	auth *Authenticator

	mu   sync.Mutex
	last string
}

func (s *persistingSource) Token() (*oauth2.Token, error) {
	tok, err := s.src.Token()
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if tok.AccessToken != s.last {
		s.last = tok.AccessToken
		s.auth.persist(tok)
	}
	return tok, nil
}
