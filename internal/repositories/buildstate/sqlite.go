package buildstate

import (
	"context"
	"database/sql"
	"time"

	json "github.com/goccy/go-json"
	_ "modernc.org/sqlite"

	"github.com/KirkDiggler/tft-notebook/internal/errors"
)

// SQLiteConfig contains configuration for the SQLite build state repository
type SQLiteConfig struct {
	Path string
}

// Validate validates the SQLiteConfig
func (cfg *SQLiteConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Path == "" {
		return errors.InvalidArgument("path cannot be empty")
	}
	return nil
}

// SQLiteRepository appends one row per save; Load returns the newest
type SQLiteRepository struct {
	db *sql.DB
}

// NewSQLite opens (and migrates) the database at Path
func NewSQLite(cfg *SQLiteConfig) (*SQLiteRepository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", cfg.Path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open database %s", cfg.Path)
	}

	repo := &SQLiteRepository{db: db}
	if err := repo.migrate(); err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "failed to run migrations")
	}
	return repo, nil
}

// Close closes the database connection
func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

func (r *SQLiteRepository) migrate() error {
	_, err := r.db.Exec(`CREATE TABLE IF NOT EXISTS snapshots (
		seq INTEGER PRIMARY KEY AUTOINCREMENT,
		id TEXT NOT NULL,
		profile TEXT NOT NULL,
		set_name TEXT,
		saved_at INTEGER NOT NULL,
		data TEXT NOT NULL
	)`)
	if err != nil {
		return err
	}
	_, err = r.db.Exec(`CREATE INDEX IF NOT EXISTS idx_snapshots_profile ON snapshots(profile, seq)`)
	return err
}

// Load returns the newest snapshot of the profile
func (r *SQLiteRepository) Load(ctx context.Context, input LoadInput) (*LoadOutput, error) {
	if err := validateLoad(input); err != nil {
		return nil, err
	}

	var data string
	err := r.db.QueryRowContext(ctx,
		`SELECT data FROM snapshots WHERE profile = ? ORDER BY seq DESC LIMIT 1`,
		input.Profile,
	).Scan(&data)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, errors.NotFoundf("no saved state for profile %s", input.Profile)
		}
		return nil, errors.Wrapf(err, "failed to query build state for profile %s", input.Profile)
	}

	snapshot, err := decodeSnapshot([]byte(data))
	if err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal build state")
	}
	return &LoadOutput{Snapshot: snapshot}, nil
}

// Save appends the snapshot as the profile's newest row
func (r *SQLiteRepository) Save(ctx context.Context, input SaveInput) (*SaveOutput, error) {
	if err := validateSave(input); err != nil {
		return nil, err
	}

	data, err := json.Marshal(input.Snapshot)
	if err != nil {
		return nil, errors.Persistence(err, "failed to marshal build state")
	}

	savedAt := input.Snapshot.SavedAt
	if savedAt.IsZero() {
		savedAt = time.Now()
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO snapshots (id, profile, set_name, saved_at, data) VALUES (?, ?, ?, ?, ?)`,
		input.Snapshot.ID, input.Profile, input.Snapshot.SetName, savedAt.Unix(), string(data),
	)
	if err != nil {
		return nil, errors.Persistencef(err, "failed to save build state for profile %s", input.Profile)
	}

	return &SaveOutput{Location: "sqlite snapshot " + input.Snapshot.ID}, nil
}

// ListProfiles summarizes the newest snapshot of every profile
func (r *SQLiteRepository) ListProfiles(ctx context.Context) (*ListProfilesOutput, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT s.profile, s.data FROM snapshots s
		JOIN (SELECT profile, MAX(seq) AS seq FROM snapshots GROUP BY profile) latest
		ON s.profile = latest.profile AND s.seq = latest.seq
		ORDER BY s.profile`)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list profiles")
	}
	defer rows.Close()

	out := &ListProfilesOutput{Profiles: []ProfileInfo{}}
	for rows.Next() {
		var profile, data string
		if err := rows.Scan(&profile, &data); err != nil {
			return nil, errors.Wrap(err, "failed to scan profile")
		}
		out.Profiles = append(out.Profiles, summarize(profile, []byte(data)))
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to list profiles")
	}
	return out, nil
}

// History lists the IDs and save times of a profile's snapshots, newest first
func (r *SQLiteRepository) History(ctx context.Context, profile string, limit int) ([]Snapshot, error) {
	if profile == "" {
		return nil, errors.InvalidArgument(errProfileEmpty)
	}
	if limit <= 0 {
		limit = 10
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT id, set_name, saved_at FROM snapshots WHERE profile = ? ORDER BY seq DESC LIMIT ?`,
		profile, limit,
	)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list snapshots for profile %s", profile)
	}
	defer rows.Close()

	var out []Snapshot
	for rows.Next() {
		var (
			snap    Snapshot
			setName sql.NullString
			savedAt int64
		)
		if err := rows.Scan(&snap.ID, &setName, &savedAt); err != nil {
			return nil, errors.Wrap(err, "failed to scan snapshot")
		}
		snap.SetName = setName.String
		snap.SavedAt = time.Unix(savedAt, 0)
		out = append(out, snap)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to list snapshots")
	}
	return out, nil
}
