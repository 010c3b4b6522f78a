package identity

import (
	"fmt"
	"passwordless-service/internal/app/config"
	"passwordless-service/internal/app/contracts"
	"passwordless-service/internal/pkg/constvars"
)

// NewIdentityRepository picks the backing store named by APP_IDENTITY_STORE.
// The matching client must already be connected on the bootstrap.
func NewIdentityRepository(bootstrap *config.Bootstrap) (contracts.IdentityRepository, error) {
	switch bootstrap.InternalConfig.App.IdentityStore {
	case constvars.IdentityStoreMongoDB:
		if bootstrap.MongoDB == nil {
			return nil, fmt.Errorf("identity store %q selected without a mongo client", constvars.IdentityStoreMongoDB)
		}
		return NewIdentityMongoRepository(
			bootstrap.MongoDB,
			bootstrap.DriverConfig.MongoDB.DbName,
			bootstrap.InternalConfig.MongoDB.IdentityCollection,
		), nil
	case constvars.IdentityStoreRedis:
		if bootstrap.Redis == nil {
			return nil, fmt.Errorf("identity store %q selected without a redis client", constvars.IdentityStoreRedis)
		}
		return NewIdentityRedisRepository(bootstrap.Redis, bootstrap.InternalConfig.Redis.IdentityKeyPrefix), nil
	default:
		return nil, fmt.Errorf("unknown identity store %q", bootstrap.InternalConfig.App.IdentityStore)
	}
}
