package auth

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"golang.org/x/oauth2"

	"ytexport/internal/storage"
)

// LoadToken reads a token saved by SaveToken.
func LoadToken(path string) (*oauth2.Token, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	tok := &oauth2.Token{}
	if err := json.NewDecoder(f).Decode(tok); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return tok, nil
}

// SaveToken atomically writes tok to path, readable only by the owner.
func SaveToken(path string, tok *oauth2.Token) error {
	return storage.WriteFile(path, 0600, func(w io.Writer) error {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(tok)
	})
}
