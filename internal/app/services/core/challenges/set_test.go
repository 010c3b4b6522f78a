package challenges

import (
	"passwordless-service/internal/app/models"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

const testTTL = 1800000 * time.Millisecond

func TestPrune(t *testing.T) {
	now := time.UnixMilli(1700000000000)
	set := models.ChallengeSet{
		Challenges: []models.Challenge{
			{Code: "111111", IssuedAtMillis: now.UnixMilli() - 5000000},
			{Code: "222222", IssuedAtMillis: now.UnixMilli() - 1000},
			{Code: "333333", IssuedAtMillis: now.UnixMilli() - testTTL.Milliseconds()},
			{Code: "444444", IssuedAtMillis: now.UnixMilli() - testTTL.Milliseconds() + 1},
		},
		Revision: "7",
	}

	pruned := Prune(set, now, testTTL)

	assert.Equal(t, []models.Challenge{
		{Code: "222222", IssuedAtMillis: now.UnixMilli() - 1000},
		{Code: "444444", IssuedAtMillis: now.UnixMilli() - testTTL.Milliseconds() + 1},
	}, pruned.Challenges)
	assert.Equal(t, "7", pruned.Revision, "revision must survive pruning for the conditional write")
	assert.Len(t, set.Challenges, 4, "input must not be modified")
}

func TestPruneIdempotent(t *testing.T) {
	now := time.UnixMilli(1700000000000)
	sets := []models.ChallengeSet{
		{},
		{Challenges: []models.Challenge{{Code: "1", IssuedAtMillis: 0}}},
		{Challenges: []models.Challenge{
			{Code: "1", IssuedAtMillis: now.UnixMilli()},
			{Code: "2", IssuedAtMillis: now.UnixMilli() - 2*testTTL.Milliseconds()},
			{Code: "3", IssuedAtMillis: now.UnixMilli() - testTTL.Milliseconds()/2},
		}},
	}

	for _, set := range sets {
		once := Prune(set, now, testTTL)
		twice := Prune(once, now, testTTL)
		assert.Equal(t, once, twice)
	}
}

func TestAppend(t *testing.T) {
	set := models.ChallengeSet{Challenges: []models.Challenge{{Code: "111111", IssuedAtMillis: 1}}, Revision: "r"}

	appended := Append(set, models.Challenge{Code: "222222", IssuedAtMillis: 2})

	assert.Equal(t, []models.Challenge{{Code: "111111", IssuedAtMillis: 1}, {Code: "222222", IssuedAtMillis: 2}}, appended.Challenges)
	assert.Equal(t, "r", appended.Revision)
	assert.Len(t, set.Challenges, 1)
}

func TestRemove(t *testing.T) {
	set := models.ChallengeSet{Challenges: []models.Challenge{
		{Code: "1", IssuedAtMillis: 1},
		{Code: "2", IssuedAtMillis: 2},
		{Code: "3", IssuedAtMillis: 3},
	}}

	assert.Equal(t, []models.Challenge{{Code: "1", IssuedAtMillis: 1}, {Code: "3", IssuedAtMillis: 3}}, Remove(set, 1).Challenges)
	assert.Equal(t, set, Remove(set, 5))
	assert.Len(t, set.Challenges, 3)
}

func TestNewChallenge(t *testing.T) {
	now := time.UnixMilli(1700000000123)
	assert.Equal(t, models.Challenge{Code: "012345", IssuedAtMillis: 1700000000123}, NewChallenge("012345", now))
}
