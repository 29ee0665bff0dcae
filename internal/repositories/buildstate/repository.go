// Package buildstate defines the interface for persisting champion builds
package buildstate

//go:generate mockgen -destination=mock/mock_repository.go -package=buildstatemock github.com/KirkDiggler/tft-notebook/internal/repositories/buildstate Repository

import (
	"context"
	"time"

	"github.com/KirkDiggler/tft-notebook/internal/entities/tft"
)

// DefaultProfile names the build state used when the caller does not pick one
const DefaultProfile = "default"

// Repository defines the interface for build state persistence.
// A save replaces the whole previous state of the profile.
type Repository interface {
	// Load retrieves the latest saved state of a profile
	// Returns errors.InvalidArgument for an empty profile
	// Returns errors.NotFound if nothing was saved yet
	// Returns errors.Internal for unreadable or corrupt storage
	Load(ctx context.Context, input LoadInput) (*LoadOutput, error)

	// Save writes the state of a profile wholesale
	// Returns errors.InvalidArgument for validation failures
	// Returns errors.Persistence when the write fails
	Save(ctx context.Context, input SaveInput) (*SaveOutput, error)

	// ListProfiles reports every saved profile, flagging the ones whose
	// state no longer decodes
	ListProfiles(ctx context.Context) (*ListProfilesOutput, error)
}

// Snapshot is one saved build state
type Snapshot struct {
	ID        string              `json:"id,omitempty"`
	SavedAt   time.Time           `json:"saved_at"`
	SetName   string              `json:"set_name,omitempty"`
	Champions []tft.ChampionState `json:"champions"`
}

// LoadInput defines the input for loading a build state
type LoadInput struct {
	Profile string
}

// LoadOutput defines the output for loading a build state
type LoadOutput struct {
	Snapshot *Snapshot
}

// SaveInput defines the input for saving a build state
type SaveInput struct {
	Profile  string
	Snapshot *Snapshot
}

// SaveOutput defines the output for saving a build state
type SaveOutput struct {
	// Location describes where the state was written, for display
	Location string
}

// ProfileInfo summarizes one saved profile
type ProfileInfo struct {
	Profile   string
	SavedAt   time.Time
	Champions int
	Corrupt   bool
}

// ListProfilesOutput defines the output for listing profiles
type ListProfilesOutput struct {
	Profiles []ProfileInfo
}

func summarize(profile string, data []byte) ProfileInfo {
	info := ProfileInfo{Profile: profile}
	snapshot, err := decodeSnapshot(data)
	if err != nil {
		info.Corrupt = true
		return info
	}
	info.SavedAt = snapshot.SavedAt
	info.Champions = len(snapshot.Champions)
	return info
}
