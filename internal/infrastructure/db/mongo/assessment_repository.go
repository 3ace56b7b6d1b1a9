package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/carepath/learning-platform/internal/core/domain"
)

const (
	assessmentsCollection = "assessments"
	questionsCollection   = "questions"
)

// AssessmentRepository implements ports.AssessmentRepository using MongoDB.
type AssessmentRepository struct {
	coll *mongo.Collection
}

func NewAssessmentRepository(db *mongo.Database) *AssessmentRepository {
	return &AssessmentRepository{coll: db.Collection(assessmentsCollection)}
}

func (r *AssessmentRepository) Create(ctx context.Context, a *domain.Assessment) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.coll.InsertOne(ctx, a)
	return err
}

func (r *AssessmentRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return domain.ErrAssessmentNotFound
	}
	return nil
}

func (r *AssessmentRepository) FindByID(ctx context.Context, id string) (*domain.Assessment, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var a domain.Assessment
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&a); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrAssessmentNotFound
		}
		return nil, err
	}
	return &a, nil
}

func (r *AssessmentRepository) ListByModule(ctx context.Context, moduleID string) ([]*domain.Assessment, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, bson.M{"module_id": moduleID}, findSortedBy("created_at", 1))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []*domain.Assessment
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// EnsureIndexes creates the module_id index on the assessments collection.
func (r *AssessmentRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "module_id", Value: 1}},
	})
	return err
}

// QuestionRepository implements ports.QuestionRepository using MongoDB.
type QuestionRepository struct {
	coll *mongo.Collection
}

func NewQuestionRepository(db *mongo.Database) *QuestionRepository {
	return &QuestionRepository{coll: db.Collection(questionsCollection)}
}

func (r *QuestionRepository) Create(ctx context.Context, q *domain.Question) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.coll.InsertOne(ctx, q)
	return err
}

func (r *QuestionRepository) Update(ctx context.Context, q *domain.Question) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": q.ID}, q)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return domain.ErrQuestionNotFound
	}
	return nil
}

func (r *QuestionRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return domain.ErrQuestionNotFound
	}
	return nil
}

func (r *QuestionRepository) FindByID(ctx context.Context, id string) (*domain.Question, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var q domain.Question
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&q); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrQuestionNotFound
		}
		return nil, err
	}
	return &q, nil
}

func (r *QuestionRepository) ListByAssessment(ctx context.Context, assessmentID string) ([]*domain.Question, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, bson.M{"assessment_id": assessmentID}, findSortedBy("position", 1))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []*domain.Question
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// EnsureIndexes creates the assessment_id index on the questions collection.
func (r *QuestionRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "assessment_id", Value: 1}, {Key: "position", Value: 1}},
	})
	return err
}
