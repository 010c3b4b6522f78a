package challenges

import (
	"passwordless-service/internal/app/models"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected []models.Challenge
	}{
		{
			name:     "Empty Attribute",
			raw:      "",
			expected: []models.Challenge{},
		},
		{
			name:     "Single Challenge",
			raw:      "123456,1700000000000",
			expected: []models.Challenge{{Code: "123456", IssuedAtMillis: 1700000000000}},
		},
		{
			name: "Insertion Order Kept",
			raw:  "123456,1700000000000;000042,1700000001000",
			expected: []models.Challenge{
				{Code: "123456", IssuedAtMillis: 1700000000000},
				{Code: "000042", IssuedAtMillis: 1700000001000},
			},
		},
		{
			name: "Malformed Entries Dropped",
			raw:  "123456,1700000000000;,1700000000000;654321,;999999;111111,abc;222222,1,2;333333,1700000002000",
			expected: []models.Challenge{
				{Code: "123456", IssuedAtMillis: 1700000000000},
				{Code: "333333", IssuedAtMillis: 1700000002000},
			},
		},
		{
			name:     "Only Delimiters",
			raw:      ";;",
			expected: []models.Challenge{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			set := Parse(tt.raw)
			assert.Equal(t, tt.expected, set.Challenges)
		})
	}
}

func TestSerialize(t *testing.T) {
	assert.Equal(t, "", Serialize(models.ChallengeSet{}))
	assert.Equal(t, "123456,1700000000000;000042,5", Serialize(models.ChallengeSet{
		Challenges: []models.Challenge{
			{Code: "123456", IssuedAtMillis: 1700000000000},
			{Code: "000042", IssuedAtMillis: 5},
		},
	}))
}

func TestRoundTrip(t *testing.T) {
	sets := []models.ChallengeSet{
		{Challenges: []models.Challenge{}},
		{Challenges: []models.Challenge{{Code: "000000", IssuedAtMillis: 0}}},
		{Challenges: []models.Challenge{
			{Code: "123456", IssuedAtMillis: 1700000000000},
			{Code: "123456", IssuedAtMillis: 1700000000001},
			{Code: "987654", IssuedAtMillis: 1700000000002},
		}},
	}

	for _, set := range sets {
		assert.Equal(t, set, Parse(Serialize(set)))
	}

	t.Run("Malformed Entries Interleaved", func(t *testing.T) {
		raw := "bad;123456,1700000000000;,;987654,1700000000002;x,y"
		parsed := Parse(raw)

		assert.Equal(t, "123456,1700000000000;987654,1700000000002", Serialize(parsed))
		assert.Equal(t, parsed, Parse(Serialize(parsed)))
	})
}
