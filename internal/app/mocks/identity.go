// Package mocks holds testify mocks of the contracts interfaces.
package mocks

import (
	"context"
	"passwordless-service/internal/app/models"
	"time"

	"github.com/stretchr/testify/mock"
)

type MockIdentityRepository struct {
	mock.Mock
}

func (m *MockIdentityRepository) FindByEmail(ctx context.Context, email string) (*models.Identity, error) {
	args := m.Called(ctx, email)
	identity, _ := args.Get(0).(*models.Identity)
	return identity, args.Error(1)
}

func (m *MockIdentityRepository) SaveChallenges(ctx context.Context, email string, set models.ChallengeSet, conditional bool) error {
	args := m.Called(ctx, email, set, conditional)
	return args.Error(0)
}

func (m *MockIdentityRepository) MarkEmailVerified(ctx context.Context, email string) error {
	args := m.Called(ctx, email)
	return args.Error(0)
}

func (m *MockIdentityRepository) AddToGroup(ctx context.Context, email, group string) error {
	args := m.Called(ctx, email, group)
	return args.Error(0)
}

type MockChallengeStore struct {
	mock.Mock
}

func (m *MockChallengeStore) Load(ctx context.Context, email string) (*models.Identity, error) {
	args := m.Called(ctx, email)
	identity, _ := args.Get(0).(*models.Identity)
	return identity, args.Error(1)
}

func (m *MockChallengeStore) Prune(set models.ChallengeSet, now time.Time) models.ChallengeSet {
	args := m.Called(set, now)
	return args.Get(0).(models.ChallengeSet)
}

func (m *MockChallengeStore) Append(set models.ChallengeSet, challenge models.Challenge) models.ChallengeSet {
	args := m.Called(set, challenge)
	return args.Get(0).(models.ChallengeSet)
}

func (m *MockChallengeStore) Save(ctx context.Context, email string, set models.ChallengeSet) error {
	args := m.Called(ctx, email, set)
	return args.Error(0)
}

type MockPasscodeGenerator struct {
	mock.Mock
}

func (m *MockPasscodeGenerator) Generate() (string, error) {
	args := m.Called()
	return args.String(0), args.Error(1)
}
