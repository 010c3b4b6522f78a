package identity

import (
	"context"
	"errors"
	"fmt"
	"passwordless-service/internal/app/contracts"
	"passwordless-service/internal/app/models"
	"passwordless-service/internal/pkg/constvars"
	"strconv"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type identityDocument struct {
	ID               string             `bson:"_id"`
	Email            string             `bson:"email"`
	EmailVerified    bool               `bson:"email_verified"`
	Groups           []string           `bson:"groups"`
	Challenges       []models.Challenge `bson:"auth_challenges"`
	ChallengeVersion int64              `bson:"challenge_version"`
}

type IdentityMongoRepository struct {
	Collection *mongo.Collection
}

func NewIdentityMongoRepository(db *mongo.Client, dbName, collection string) contracts.IdentityRepository {
	return &IdentityMongoRepository{
		Collection: db.Database(dbName).Collection(collection),
	}
}

func (r *IdentityMongoRepository) FindByEmail(ctx context.Context, email string) (*models.Identity, error) {
	var document identityDocument
	err := r.Collection.FindOne(ctx, bson.M{"email": email}).Decode(&document)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, contracts.ErrIdentityNotFound
		}
		return nil, fmt.Errorf("%s: %w", constvars.ErrDevDBFailedToFindDocument, err)
	}

	challengeList := document.Challenges
	if challengeList == nil {
		challengeList = []models.Challenge{}
	}

	return &models.Identity{
		ID:            document.ID,
		Email:         document.Email,
		EmailVerified: document.EmailVerified,
		Groups:        document.Groups,
		Challenges: models.ChallengeSet{
			Challenges: challengeList,
			Revision:   strconv.FormatInt(document.ChallengeVersion, 10),
		},
	}, nil
}

// SaveChallenges replaces the challenge list and bumps challenge_version.
// A conditional save only matches the document when its version still
// equals the revision the set was loaded with.
func (r *IdentityMongoRepository) SaveChallenges(ctx context.Context, email string, set models.ChallengeSet, conditional bool) error {
	filter := bson.M{"email": email}
	if conditional {
		version, err := parseRevision(set.Revision)
		if err != nil {
			return contracts.ErrChallengeConflict
		}
		if version == 0 {
			filter["challenge_version"] = bson.M{"$in": bson.A{int64(0), nil}}
		} else {
			filter["challenge_version"] = version
		}
	}

	challengeList := set.Challenges
	if challengeList == nil {
		challengeList = []models.Challenge{}
	}
	update := bson.M{
		"$set": bson.M{"auth_challenges": challengeList},
		"$inc": bson.M{"challenge_version": int64(1)},
	}

	result, err := r.Collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("%s: %w", constvars.ErrDevDBFailedToUpdateDocument, err)
	}
	if result.MatchedCount > 0 {
		return nil
	}
	if !conditional {
		return contracts.ErrIdentityNotFound
	}

	count, err := r.Collection.CountDocuments(ctx, bson.M{"email": email})
	if err != nil {
		return fmt.Errorf("%s: %w", constvars.ErrDevDBFailedToFindDocument, err)
	}
	if count == 0 {
		return contracts.ErrIdentityNotFound
	}
	return contracts.ErrChallengeConflict
}

func (r *IdentityMongoRepository) MarkEmailVerified(ctx context.Context, email string) error {
	return r.updateByEmail(ctx, email, bson.M{"$set": bson.M{"email_verified": true}})
}

func (r *IdentityMongoRepository) AddToGroup(ctx context.Context, email, group string) error {
	return r.updateByEmail(ctx, email, bson.M{"$addToSet": bson.M{"groups": group}})
}

func (r *IdentityMongoRepository) updateByEmail(ctx context.Context, email string, update bson.M) error {
	result, err := r.Collection.UpdateOne(ctx, bson.M{"email": email}, update)
	if err != nil {
		return fmt.Errorf("%s: %w", constvars.ErrDevDBFailedToUpdateDocument, err)
	}
	if result.MatchedCount == 0 {
		return contracts.ErrIdentityNotFound
	}
	return nil
}

func parseRevision(revision string) (int64, error) {
	if revision == "" {
		return 0, nil
	}
	return strconv.ParseInt(revision, 10, 64)
}
