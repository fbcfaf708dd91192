package auth

import (
	"context"
	"fmt"
	"log"
	"net"
	"net/http"
	"time"

	"github.com/google/uuid"
	"golang.org/x/oauth2"
)

type callbackResult struct {
	code string
	err  error
}

// consent runs the interactive authorization: it serves a loopback redirect
// target, asks the user to open the consent URL and exchanges the returned
// code (with PKCE) for a token.
func (a *Authenticator) consent(ctx context.Context) (*oauth2.Token, error) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		return nil, fmt.Errorf("auth: listen for callback: %w", err)
	}

	cfg := *a.config
	cfg.RedirectURL = "http://" + ln.Addr().String() + "/"
	state := uuid.NewString()
	verifier := oauth2.GenerateVerifier()
	authURL := cfg.AuthCodeURL(state, oauth2.AccessTypeOffline, oauth2.S256ChallengeOption(verifier))

	results := make(chan callbackResult, 1)
	srv := &http.Server{
		Handler:           callbackHandler(state, results),
		ReadHeaderTimeout: 10 * time.Second,
	}
	go srv.Serve(ln)
	defer srv.Close()

	fmt.Fprintf(a.out(), "Open the following URL in your browser to authorize access to your YouTube account:\n\n  %s\n\n", authURL)
	if a.OpenURL != nil {
		if err := a.OpenURL(authURL); err != nil {
			log.Printf("auth: open browser: %v", err)
		}
	}

	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	var res callbackResult
	select {
	case res = <-results:
	case <-ctx.Done():
		return nil, fmt.Errorf("auth: waiting for consent: %w", ctx.Err())
	}
	if res.err != nil {
		return nil, res.err
	}

	tok, err := cfg.Exchange(ctx, res.code, oauth2.VerifierOption(verifier))
	if err != nil {
		return nil, fmt.Errorf("auth: exchange code: %w", err)
	}
	return tok, nil
}

// callbackHandler handles the OAuth redirect. Only the first callback is
// delivered on results; requests for other paths are ignored.
func callbackHandler(state string, results chan<- callbackResult) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}

		q := r.URL.Query()
		var res callbackResult
		switch {
		case q.Get("error") != "":
			res.err = fmt.Errorf("auth: consent denied: %s", q.Get("error"))
		case q.Get("state") != state:
			res.err = ErrStateMismatch
		case q.Get("code") == "":
			res.err = ErrNoCode
		default:
			res.code = q.Get("code")
		}

		if res.err != nil {
			http.Error(w, res.err.Error(), http.StatusBadRequest)
		} else {
			fmt.Fprintln(w, "Authorization complete. You can close this window.")
		}

		select {
		case results <- res:
		default:
		}
	})
}
