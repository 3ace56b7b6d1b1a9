package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/carepath/learning-platform/internal/core/domain"
)

const enrollmentsCollection = "enrollments"

// EnrollmentRepository implements ports.EnrollmentRepository using MongoDB.
type EnrollmentRepository struct {
	coll *mongo.Collection
}

func NewEnrollmentRepository(db *mongo.Database) *EnrollmentRepository {
	return &EnrollmentRepository{coll: db.Collection(enrollmentsCollection)}
}

func (r *EnrollmentRepository) Create(ctx context.Context, e *domain.Enrollment) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, e); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrAlreadyEnrolled
		}
		return err
	}
	return nil
}

func (r *EnrollmentRepository) ListByPatient(ctx context.Context, patientID string) ([]*domain.Enrollment, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, bson.M{"patient_id": patientID}, findSortedBy("enrolled_at", -1))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []*domain.Enrollment
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *EnrollmentRepository) ListSince(ctx context.Context, from time.Time) ([]*domain.Enrollment, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{"enrolled_at": bson.M{"$gte": from.UTC()}}
	cur, err := r.coll.Find(ctx, filter, findSortedBy("enrolled_at", 1))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []*domain.Enrollment
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// EnsureIndexes creates the unique (patient_id, program_id) index that backs
// the one-enrollment-per-program rule, plus the stats window index.
func (r *EnrollmentRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "patient_id", Value: 1}, {Key: "program_id", Value: 1}},
			Options: uniqueIndex(),
		},
		{Keys: bson.D{{Key: "enrolled_at", Value: -1}}},
	}
	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}
