package ytexport

import (
	"ytexport/auth"
	"ytexport/export"
	"ytexport/internal/storage"
	"ytexport/youtube"
)

// Error types exported for library users.
//
//	var listerErr *ytexport.ListerError
//	if errors.As(err, &listerErr) {
//		fmt.Printf("%s failed: %v\n", listerErr.Op, listerErr.Err)
//	}
type (
	// ListerError wraps the fatal account lookup failure.
	ListerError = youtube.ListerError
	// StorageError wraps failed file writes.
	StorageError = storage.StorageError
)

// Sentinel errors exported from sub-packages.
var (
	// ErrChannelNotFound indicates the authenticated account has no channel.
	ErrChannelNotFound = youtube.ErrChannelNotFound
	// ErrStateMismatch indicates a forged or stale OAuth callback.
	ErrStateMismatch = auth.ErrStateMismatch
	// ErrNoCode indicates the OAuth callback carried no authorization code.
	ErrNoCode = auth.ErrNoCode
	// ErrSnapshotVersion indicates a snapshot from an incompatible version.
	ErrSnapshotVersion = export.ErrSnapshotVersion
)
