package buildstate

import (
	"context"
	"sort"
	"strings"

	json "github.com/goccy/go-json"
	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/tft-notebook/internal/errors"
	redisclient "github.com/KirkDiggler/tft-notebook/internal/redis"
)

const buildStateKeyPrefix = "buildstate:"

// RedisConfig contains configuration for the Redis build state repository
type RedisConfig struct {
	Client redisclient.Client
}

// Validate validates the RedisConfig
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	return nil
}

type redisRepository struct {
	client redisclient.Client
}

// NewRedis creates a new Redis-backed build state repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &redisRepository{client: cfg.Client}, nil
}

// GetKey returns the Redis key of a profile
// Exposed for testing purposes
func GetKey(profile string) string {
	return buildStateKeyPrefix + profile
}

func (r *redisRepository) Load(ctx context.Context, input LoadInput) (*LoadOutput, error) {
	if err := validateLoad(input); err != nil {
		return nil, err
	}

	result, err := r.client.Get(ctx, GetKey(input.Profile)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("no saved state for profile %s", input.Profile)
		}
		return nil, errors.Wrapf(err, "failed to get build state for profile %s", input.Profile)
	}

	snapshot, err := decodeSnapshot([]byte(result))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal build state")
	}
	return &LoadOutput{Snapshot: snapshot}, nil
}

func (r *redisRepository) Save(ctx context.Context, input SaveInput) (*SaveOutput, error) {
	if err := validateSave(input); err != nil {
		return nil, err
	}

	data, err := json.Marshal(input.Snapshot)
	if err != nil {
		return nil, errors.Persistence(err, "failed to marshal build state")
	}

	key := GetKey(input.Profile)
	if err := r.client.Set(ctx, key, data, 0).Err(); err != nil {
		return nil, errors.Persistencef(err, "failed to save build state for profile %s", input.Profile)
	}

	return &SaveOutput{Location: "redis " + key}, nil
}

// ListProfiles scans for every build state key
func (r *redisRepository) ListProfiles(ctx context.Context) (*ListProfilesOutput, error) {
	var keys []string
	iter := r.client.Scan(ctx, 0, buildStateKeyPrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to scan build state keys")
	}
	sort.Strings(keys)

	out := &ListProfilesOutput{Profiles: []ProfileInfo{}}
	for _, key := range keys {
		data, err := r.client.Get(ctx, key).Result()
		if err != nil {
			if err == redis.Nil {
				continue
			}
			return nil, errors.Wrapf(err, "failed to read %s", key)
		}
		out.Profiles = append(out.Profiles, summarize(strings.TrimPrefix(key, buildStateKeyPrefix), []byte(data)))
	}
	return out, nil
}
