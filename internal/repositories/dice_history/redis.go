package dicehistory

import (
	"context"
	"encoding/json"
	"time"

	"github.com/KirkDiggler/rpg-character-forge/internal/entities"
	"github.com/KirkDiggler/rpg-character-forge/internal/errors"
	redisclient "github.com/KirkDiggler/rpg-character-forge/internal/redis"
)

const (
	// Key pattern: dice_history:{session_id}
	historyKeyPrefix = "dice_history:"

	// DefaultTTL is used when AppendInput.TTL is zero
	DefaultTTL = 24 * time.Hour

	errSessionIDEmpty = "session ID cannot be empty"
)

// Config holds the configuration for the Redis repository
type Config struct {
	Client redisclient.Client
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c.Client == nil {
		return errors.InvalidArgument("redis client is required")
	}
	return nil
}

type redisRepository struct {
	client redisclient.Client
}

// NewRedisRepository creates a new Redis repository for dice history
func NewRedisRepository(cfg *Config) (Repository, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &redisRepository{client: cfg.Client}, nil
}

var _ Repository = (*redisRepository)(nil)

func (r *redisRepository) Append(ctx context.Context, input AppendInput) (*AppendOutput, error) {
	if input.SessionID == "" {
		return nil, errors.InvalidArgument(errSessionIDEmpty)
	}

	ttl := input.TTL
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	data, err := json.Marshal(input.Roll)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal roll")
	}

	key := historyKeyPrefix + input.SessionID

	pipe := r.client.TxPipeline()
	pipe.LPush(ctx, key, data)
	pipe.LTrim(ctx, key, 0, HistoryLimit-1)
	pipe.Expire(ctx, key, ttl)
	rangeCmd := pipe.LRange(ctx, key, 0, -1)

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to append roll")
	}

	rolls, err := decode(rangeCmd.Val())
	if err != nil {
		return nil, err
	}

	return &AppendOutput{Rolls: rolls}, nil
}

func (r *redisRepository) List(ctx context.Context, input ListInput) (*ListOutput, error) {
	if input.SessionID == "" {
		return nil, errors.InvalidArgument(errSessionIDEmpty)
	}

	raw, err := r.client.LRange(ctx, historyKeyPrefix+input.SessionID, 0, HistoryLimit-1).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list rolls")
	}

	rolls, err := decode(raw)
	if err != nil {
		return nil, err
	}

	return &ListOutput{Rolls: rolls}, nil
}

func (r *redisRepository) Clear(ctx context.Context, input ClearInput) (*ClearOutput, error) {
	if input.SessionID == "" {
		return nil, errors.InvalidArgument(errSessionIDEmpty)
	}

	key := historyKeyPrefix + input.SessionID

	pipe := r.client.TxPipeline()
	lenCmd := pipe.LLen(ctx, key)
	pipe.Del(ctx, key)

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to clear rolls")
	}

	return &ClearOutput{RollsDeleted: int(lenCmd.Val())}, nil
}

func decode(raw []string) ([]entities.DiceRoll, error) {
	rolls := make([]entities.DiceRoll, 0, len(raw))
	for _, item := range raw {
		var roll entities.DiceRoll
		if err := json.Unmarshal([]byte(item), &roll); err != nil {
			return nil, errors.Wrapf(err, "failed to unmarshal roll")
		}
		rolls = append(rolls, roll)
	}
	return rolls, nil
}
