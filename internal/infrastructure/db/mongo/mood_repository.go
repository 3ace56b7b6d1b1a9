package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/carepath/learning-platform/internal/core/domain"
)

const moodsCollection = "mood_entries"

// MoodRepository implements ports.MoodRepository using MongoDB.
type MoodRepository struct {
	coll *mongo.Collection
}

func NewMoodRepository(db *mongo.Database) *MoodRepository {
	return &MoodRepository{coll: db.Collection(moodsCollection)}
}

func (r *MoodRepository) Insert(ctx context.Context, e *domain.MoodEntry) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.coll.InsertOne(ctx, e)
	return err
}

// ListByPatient returns the patient's entries ordered by entry_timestamp
// descending, at most limit rows.
func (r *MoodRepository) ListByPatient(ctx context.Context, patientID string, limit int) ([]*domain.MoodEntry, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().
		SetSort(bson.D{{Key: "entry_timestamp", Value: -1}}).
		SetLimit(int64(limit))

	cur, err := r.coll.Find(ctx, bson.M{"patient_id": patientID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []*domain.MoodEntry
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// EnsureIndexes creates the patient/timestamp index used by ListByPatient.
func (r *MoodRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "patient_id", Value: 1}, {Key: "entry_timestamp", Value: -1}},
	})
	return err
}
