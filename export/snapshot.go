package export

import (
	"encoding/gob"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/andybalholm/brotli"
	"github.com/google/uuid"

	"ytexport/youtube"
)

const snapshotVersion = 1

// ErrSnapshotVersion is returned when a snapshot was written by an
// incompatible version of the exporter.
var ErrSnapshotVersion = errors.New("export: unsupported snapshot version")

// Snapshot is the binary form of an export run, kept so later runs can
// re-render tables without spending API quota.
type Snapshot struct {
	Version   int
	RunID     string
	CreatedAt time.Time
	Playlists []youtube.Playlist
}

// NewSnapshot stamps playlists with a fresh run id.
func NewSnapshot(playlists []youtube.Playlist) *Snapshot {
	return &Snapshot{
		Version:   snapshotVersion,
		RunID:     uuid.NewString(),
		CreatedAt: time.Now().UTC(),
		Playlists: playlists,
	}
}

// DetailsOnly returns a copy of the snapshot without playlist items.
func (s *Snapshot) DetailsOnly() *Snapshot {
	out := *s
	out.Playlists = make([]youtube.Playlist, len(s.Playlists))
	for i, pl := range s.Playlists {
		out.Playlists[i] = youtube.Playlist{ID: pl.ID, Details: pl.Details}
	}
	return &out
}

// WriteSnapshot encodes s as a brotli-compressed gob stream.
func WriteSnapshot(w io.Writer, s *Snapshot) error {
	bw := brotli.NewWriterLevel(w, brotli.DefaultCompression)
	if err := gob.NewEncoder(bw).Encode(s); err != nil {
		bw.Close()
		return fmt.Errorf("encode snapshot: %w", err)
	}
	if err := bw.Close(); err != nil {
		return fmt.Errorf("compress snapshot: %w", err)
	}
	return nil
}

// ReadSnapshot decodes a snapshot written by WriteSnapshot.
func ReadSnapshot(r io.Reader) (*Snapshot, error) {
	var s Snapshot
	if err := gob.NewDecoder(brotli.NewReader(r)).Decode(&s); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}
	if s.Version != snapshotVersion {
		return nil, fmt.Errorf("%w: %d", ErrSnapshotVersion, s.Version)
	}
	return &s, nil
}

// ReadSnapshotFile reads the snapshot stored at path.
func ReadSnapshotFile(path string) (*Snapshot, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadSnapshot(f)
}
