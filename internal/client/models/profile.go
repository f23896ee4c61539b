// Package models defines client-side data models used by the zkkeeper CLI.
package models

import (
	"time"

	"github.com/dmitrijs2005/zkkeeper/internal/cryptox"
)

// Profile is what the CLI remembers about an account between runs. It holds
// no secrets: the salt and mode are public PreLogin values.
type Profile struct {
	// Name is the local handle chosen by the user.
	Name string

	AccountID string

	// KDFSalt and KDFMode are the last values the server answered with.
	KDFSalt       []byte
	KDFMode       cryptox.KDFMode
	SchemaVersion int

	UpdatedAt time.Time
}
