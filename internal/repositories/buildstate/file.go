package buildstate

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"sort"
	"strings"

	json "github.com/goccy/go-json"

	"github.com/KirkDiggler/tft-notebook/internal/entities/tft"
	"github.com/KirkDiggler/tft-notebook/internal/errors"
)

// StateFileName is the file the default profile is saved to
const StateFileName = "champ_info.json"

// FileConfig contains configuration for the file-backed repository
type FileConfig struct {
	Dir string
}

// Validate validates the FileConfig
func (cfg *FileConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Dir == "" {
		return errors.InvalidArgument("dir cannot be empty")
	}
	return nil
}

type fileRepository struct {
	dir string
}

// NewFile creates a repository that keeps one JSON file per profile in Dir
func NewFile(cfg *FileConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &fileRepository{dir: cfg.Dir}, nil
}

// FilePath returns the file a profile is stored in
func FilePath(dir, profile string) string {
	if profile == DefaultProfile {
		return filepath.Join(dir, StateFileName)
	}
	return filepath.Join(dir, "champ_info."+profile+".json")
}

func (r *fileRepository) Load(_ context.Context, input LoadInput) (*LoadOutput, error) {
	if err := validateLoad(input); err != nil {
		return nil, err
	}

	path := FilePath(r.dir, input.Profile)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NotFoundf("no saved state for profile %s", input.Profile).
				WithMeta("path", path)
		}
		return nil, errors.Wrapf(err, "failed to read %s", path)
	}

	snapshot, err := decodeSnapshot(data)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to decode %s", path)
	}
	return &LoadOutput{Snapshot: snapshot}, nil
}

func (r *fileRepository) Save(_ context.Context, input SaveInput) (*SaveOutput, error) {
	if err := validateSave(input); err != nil {
		return nil, err
	}

	data, err := json.Marshal(input.Snapshot)
	if err != nil {
		return nil, errors.Persistence(err, "failed to encode build state")
	}

	if err := os.MkdirAll(r.dir, 0o755); err != nil {
		return nil, errors.Persistencef(err, "failed to create %s", r.dir)
	}

	path := FilePath(r.dir, input.Profile)
	tmp, err := os.CreateTemp(r.dir, ".champ_info-*.json")
	if err != nil {
		return nil, errors.Persistencef(err, "failed to write %s", path)
	}
	defer func() {
		_ = os.Remove(tmp.Name()) // nolint:errcheck // gone after a successful rename
	}()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return nil, errors.Persistencef(err, "failed to write %s", path)
	}
	if err := tmp.Close(); err != nil {
		return nil, errors.Persistencef(err, "failed to write %s", path)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return nil, errors.Persistencef(err, "failed to replace %s", path)
	}

	return &SaveOutput{Location: path}, nil
}

func (r *fileRepository) ListProfiles(_ context.Context) (*ListProfilesOutput, error) {
	matches, err := filepath.Glob(filepath.Join(r.dir, "champ_info*.json"))
	if err != nil {
		return nil, errors.Wrap(err, "failed to list state files")
	}
	sort.Strings(matches)

	out := &ListProfilesOutput{Profiles: []ProfileInfo{}}
	for _, path := range matches {
		profile, ok := profileFromFile(filepath.Base(path))
		if !ok {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to read %s", path)
		}
		out.Profiles = append(out.Profiles, summarize(profile, data))
	}
	return out, nil
}

func profileFromFile(name string) (string, bool) {
	if name == StateFileName {
		return DefaultProfile, true
	}
	profile := strings.TrimSuffix(strings.TrimPrefix(name, "champ_info."), ".json")
	if profile == "" || profile == name || strings.HasPrefix(name, "champ_info-") {
		return "", false
	}
	return profile, true
}

// legacyChampion is one entry of the bare champion array older saves used.
// Those files key the champion as "champ".
type legacyChampion struct {
	Champ    tft.Champion `json:"champ"`
	Champion tft.Champion `json:"champion"`
	Items    []tft.Item   `json:"items"`
}

func (l legacyChampion) state() tft.ChampionState {
	champion := l.Champion
	if l.Champ.Name != "" || l.Champ.APIName != "" {
		champion = l.Champ
	}
	return tft.ChampionState{Champion: champion, Items: l.Items}
}

// decodeSnapshot accepts both the snapshot object and the bare champion
// array older saves used
func decodeSnapshot(data []byte) (*Snapshot, error) {
	trimmed := bytes.TrimSpace(data)
	if bytes.HasPrefix(trimmed, []byte("[")) {
		var legacy []legacyChampion
		if err := json.Unmarshal(trimmed, &legacy); err != nil {
			return nil, err
		}
		champions := make([]tft.ChampionState, 0, len(legacy))
		for _, entry := range legacy {
			champions = append(champions, entry.state())
		}
		return &Snapshot{Champions: champions}, nil
	}

	var snapshot Snapshot
	if err := json.Unmarshal(trimmed, &snapshot); err != nil {
		return nil, err
	}
	return &snapshot, nil
}
