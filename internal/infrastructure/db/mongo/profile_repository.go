package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/carepath/learning-platform/internal/core/domain"
)

const profilesCollection = "profiles"

// ProfileRepository implements ports.ProfileRepository using MongoDB.
type ProfileRepository struct {
	coll *mongo.Collection
}

func NewProfileRepository(db *mongo.Database) *ProfileRepository {
	return &ProfileRepository{coll: db.Collection(profilesCollection)}
}

type mongoProfile struct {
	ID           string `bson:"_id"`
	Role         string `bson:"role"`
	FirstName    string `bson:"first_name"`
	LastName     string `bson:"last_name"`
	Email        string `bson:"email"`
	PasswordHash string `bson:"password_hash"`
	CreatedAt    int64  `bson:"created_at"`
	UpdatedAt    int64  `bson:"updated_at"`
}

func toMongoProfile(p *domain.Profile) mongoProfile {
	return mongoProfile{
		ID:           p.ID,
		Role:         string(p.Role),
		FirstName:    p.FirstName,
		LastName:     p.LastName,
		Email:        p.Email,
		PasswordHash: p.PasswordHash,
		CreatedAt:    p.CreatedAt.Unix(),
		UpdatedAt:    p.UpdatedAt.Unix(),
	}
}

func (mp mongoProfile) toDomain() *domain.Profile {
	return &domain.Profile{
		ID:           mp.ID,
		Role:         domain.Role(mp.Role),
		FirstName:    mp.FirstName,
		LastName:     mp.LastName,
		Email:        mp.Email,
		PasswordHash: mp.PasswordHash,
		CreatedAt:    unixToTime(mp.CreatedAt),
		UpdatedAt:    unixToTime(mp.UpdatedAt),
	}
}

func (r *ProfileRepository) Create(ctx context.Context, p *domain.Profile) (*domain.Profile, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if p.ID == "" {
		p.ID = uuid.NewString()
	}

	if _, err := r.coll.InsertOne(ctx, toMongoProfile(p)); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrProfileExists
		}
		return nil, fmt.Errorf("insert profile: %w", err)
	}
	return p, nil
}

func (r *ProfileRepository) FindByID(ctx context.Context, id string) (*domain.Profile, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *ProfileRepository) FindByEmail(ctx context.Context, email string) (*domain.Profile, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *ProfileRepository) findOne(ctx context.Context, filter bson.M) (*domain.Profile, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var mp mongoProfile
	if err := r.coll.FindOne(ctx, filter).Decode(&mp); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, fmt.Errorf("find profile: %w", err)
	}
	return mp.toDomain(), nil
}

// EnsureIndexes creates the unique email index.
func (r *ProfileRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: uniqueIndex(),
	})
	return err
}

func unixToTime(ts int64) time.Time {
	if ts == 0 {
		return time.Time{}
	}
	return time.Unix(ts, 0).UTC()
}
