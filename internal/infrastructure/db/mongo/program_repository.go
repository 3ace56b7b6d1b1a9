package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/carepath/learning-platform/internal/core/domain"
	"github.com/carepath/learning-platform/internal/core/ports"
)

const (
	programsCollection   = "programs"
	categoriesCollection = "categories"
)

// ProgramRepository implements ports.ProgramRepository using MongoDB.
type ProgramRepository struct {
	coll *mongo.Collection
}

func NewProgramRepository(db *mongo.Database) *ProgramRepository {
	return &ProgramRepository{coll: db.Collection(programsCollection)}
}

func (r *ProgramRepository) Create(ctx context.Context, p *domain.Program) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.coll.InsertOne(ctx, p)
	return err
}

func (r *ProgramRepository) Update(ctx context.Context, p *domain.Program) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": p.ID}, p)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return domain.ErrProgramNotFound
	}
	return nil
}

func (r *ProgramRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return domain.ErrProgramNotFound
	}
	return nil
}

func (r *ProgramRepository) FindByID(ctx context.Context, id string) (*domain.Program, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var p domain.Program
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&p); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrProgramNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *ProgramRepository) List(ctx context.Context, filter ports.ListProgramsFilter) ([]*domain.Program, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := bson.M{}
	if filter.PublishedOnly {
		query["published"] = true
	}
	if filter.CategoryID != "" {
		query["category_ids"] = filter.CategoryID
	}

	cur, err := r.coll.Find(ctx, query, findSortedBy("created_at", -1))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []*domain.Program
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *ProgramRepository) SetCategories(ctx context.Context, programID string, categoryIDs []string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"category_ids": categoryIDs,
		"updated_at":   time.Now().UTC(),
	}}
	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": programID}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return domain.ErrProgramNotFound
	}
	return nil
}

// EnsureIndexes creates the query indexes on the programs collection.
func (r *ProgramRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "published", Value: 1}}},
		{Keys: bson.D{{Key: "category_ids", Value: 1}}},
	}
	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}

// CategoryRepository implements ports.CategoryRepository using MongoDB.
type CategoryRepository struct {
	coll *mongo.Collection
}

func NewCategoryRepository(db *mongo.Database) *CategoryRepository {
	return &CategoryRepository{coll: db.Collection(categoriesCollection)}
}

func (r *CategoryRepository) Create(ctx context.Context, c *domain.Category) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.coll.InsertOne(ctx, c)
	return err
}

func (r *CategoryRepository) List(ctx context.Context) ([]*domain.Category, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, bson.M{}, findSortedBy("name", 1))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []*domain.Category
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *CategoryRepository) FindByIDs(ctx context.Context, ids []string) ([]*domain.Category, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []*domain.Category
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}
