package identity

import (
	"context"
	"errors"
	"fmt"
	"passwordless-service/internal/app/contracts"
	"passwordless-service/internal/app/models"
	"passwordless-service/internal/app/services/core/challenges"
	"passwordless-service/internal/pkg/constvars"

	"github.com/redis/go-redis/v9"
)

const (
	redisFieldID            = "id"
	redisFieldEmail         = constvars.AttributeEmail
	redisFieldEmailVerified = constvars.AttributeEmailVerified
	redisFieldAuthChallenge = constvars.AttributeAuthChallenge
	redisGroupsKeySuffix    = ":groups"
)

// identityRedisRepository keeps each identity in a hash whose
// custom:authChallenge field holds the delimited challenge list, the same
// shape the identity provider stores. The raw field value doubles as the
// revision for conditional writes.
type identityRedisRepository struct {
	client    *redis.Client
	keyPrefix string
}

func NewIdentityRedisRepository(client *redis.Client, keyPrefix string) contracts.IdentityRepository {
	return &identityRedisRepository{
		client:    client,
		keyPrefix: keyPrefix,
	}
}

func (r *identityRedisRepository) key(email string) string {
	return r.keyPrefix + email
}

func (r *identityRedisRepository) groupsKey(email string) string {
	return r.keyPrefix + email + redisGroupsKeySuffix
}

func (r *identityRedisRepository) FindByEmail(ctx context.Context, email string) (*models.Identity, error) {
	fields, err := r.client.HGetAll(ctx, r.key(email)).Result()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", constvars.ErrDevRedisGetData, err)
	}
	if len(fields) == 0 {
		return nil, contracts.ErrIdentityNotFound
	}

	groups, err := r.client.SMembers(ctx, r.groupsKey(email)).Result()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", constvars.ErrDevRedisGetData, err)
	}

	raw := fields[redisFieldAuthChallenge]
	set := challenges.Parse(raw)
	set.Revision = raw

	return &models.Identity{
		ID:            fields[redisFieldID],
		Email:         email,
		EmailVerified: fields[redisFieldEmailVerified] == "true",
		Groups:        groups,
		Challenges:    set,
	}, nil
}

func (r *identityRedisRepository) SaveChallenges(ctx context.Context, email string, set models.ChallengeSet, conditional bool) error {
	key := r.key(email)
	serialized := challenges.Serialize(set)

	if !conditional {
		if err := r.ensureExists(ctx, r.client, key); err != nil {
			return err
		}
		if err := r.client.HSet(ctx, key, redisFieldAuthChallenge, serialized).Err(); err != nil {
			return fmt.Errorf("%s: %w", constvars.ErrDevRedisSetData, err)
		}
		return nil
	}

	err := r.client.Watch(ctx, func(tx *redis.Tx) error {
		if err := r.ensureExists(ctx, tx, key); err != nil {
			return err
		}

		current, err := tx.HGet(ctx, key, redisFieldAuthChallenge).Result()
		if err != nil && !errors.Is(err, redis.Nil) {
			return fmt.Errorf("%s: %w", constvars.ErrDevRedisGetData, err)
		}
		if current != set.Revision {
			return contracts.ErrChallengeConflict
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.HSet(ctx, key, redisFieldAuthChallenge, serialized)
			return nil
		})
		return err
	}, key)

	if errors.Is(err, redis.TxFailedErr) {
		return contracts.ErrChallengeConflict
	}
	return err
}

func (r *identityRedisRepository) MarkEmailVerified(ctx context.Context, email string) error {
	key := r.key(email)
	if err := r.ensureExists(ctx, r.client, key); err != nil {
		return err
	}
	if err := r.client.HSet(ctx, key, redisFieldEmailVerified, "true").Err(); err != nil {
		return fmt.Errorf("%s: %w", constvars.ErrDevRedisSetData, err)
	}
	return nil
}

func (r *identityRedisRepository) AddToGroup(ctx context.Context, email, group string) error {
	if err := r.ensureExists(ctx, r.client, r.key(email)); err != nil {
		return err
	}
	if err := r.client.SAdd(ctx, r.groupsKey(email), group).Err(); err != nil {
		return fmt.Errorf("%s: %w", constvars.ErrDevRedisSetData, err)
	}
	return nil
}

func (r *identityRedisRepository) ensureExists(ctx context.Context, client existsChecker, key string) error {
	exists, err := client.Exists(ctx, key).Result()
	if err != nil {
		return fmt.Errorf("%s: %w", constvars.ErrDevRedisGetData, err)
	}
	if exists == 0 {
		return contracts.ErrIdentityNotFound
	}
	return nil
}

type existsChecker interface {
	Exists(ctx context.Context, keys ...string) *redis.IntCmd
}
