package identity

import (
	"passwordless-service/internal/app/config"
	"passwordless-service/internal/pkg/constvars"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewIdentityRepository(t *testing.T) {
	t.Run("Redis Store", func(t *testing.T) {
		mr := miniredis.RunT(t)
		client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
		defer client.Close()

		repository, err := NewIdentityRepository(&config.Bootstrap{
			Redis: client,
			InternalConfig: &config.InternalConfig{
				App:   config.App{IdentityStore: constvars.IdentityStoreRedis},
				Redis: config.AppRedis{IdentityKeyPrefix: "identity:"},
			},
			DriverConfig: &config.DriverConfig{},
		})

		require.NoError(t, err)
		assert.IsType(t, &identityRedisRepository{}, repository)
	})

	t.Run("Mongo Store Without Client", func(t *testing.T) {
		_, err := NewIdentityRepository(&config.Bootstrap{
			InternalConfig: &config.InternalConfig{
				App: config.App{IdentityStore: constvars.IdentityStoreMongoDB},
			},
			DriverConfig: &config.DriverConfig{},
		})

		assert.Error(t, err)
	})

	t.Run("Unknown Store", func(t *testing.T) {
		_, err := NewIdentityRepository(&config.Bootstrap{
			InternalConfig: &config.InternalConfig{App: config.App{IdentityStore: "dynamo"}},
			DriverConfig:   &config.DriverConfig{},
		})

		assert.Error(t, err)
	})
}
