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
	modulesCollection  = "modules"
	contentsCollection = "contents"
)

// ModuleRepository implements ports.ModuleRepository using MongoDB.
type ModuleRepository struct {
	coll *mongo.Collection
}

func NewModuleRepository(db *mongo.Database) *ModuleRepository {
	return &ModuleRepository{coll: db.Collection(modulesCollection)}
}

func (r *ModuleRepository) Create(ctx context.Context, m *domain.Module) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.coll.InsertOne(ctx, m)
	return err
}

func (r *ModuleRepository) Update(ctx context.Context, m *domain.Module) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": m.ID}, m)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return domain.ErrModuleNotFound
	}
	return nil
}

func (r *ModuleRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return domain.ErrModuleNotFound
	}
	return nil
}

func (r *ModuleRepository) FindByID(ctx context.Context, id string) (*domain.Module, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var m domain.Module
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&m); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrModuleNotFound
		}
		return nil, err
	}
	return &m, nil
}

func (r *ModuleRepository) ListByProgram(ctx context.Context, programID string) ([]*domain.Module, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, bson.M{"program_id": programID}, findSortedBy("position", 1))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []*domain.Module
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// EnsureIndexes creates the program_id index on the modules collection.
func (r *ModuleRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "program_id", Value: 1}, {Key: "position", Value: 1}},
	})
	return err
}

// ContentRepository implements ports.ContentRepository using MongoDB.
type ContentRepository struct {
	coll *mongo.Collection
}

func NewContentRepository(db *mongo.Database) *ContentRepository {
	return &ContentRepository{coll: db.Collection(contentsCollection)}
}

func (r *ContentRepository) Create(ctx context.Context, c *domain.ContentItem) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.coll.InsertOne(ctx, c)
	return err
}

func (r *ContentRepository) Update(ctx context.Context, c *domain.ContentItem) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": c.ID}, c)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return domain.ErrContentNotFound
	}
	return nil
}

func (r *ContentRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return domain.ErrContentNotFound
	}
	return nil
}

func (r *ContentRepository) FindByID(ctx context.Context, id string) (*domain.ContentItem, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var c domain.ContentItem
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&c); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrContentNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (r *ContentRepository) ListByModule(ctx context.Context, moduleID string) ([]*domain.ContentItem, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, bson.M{"module_id": moduleID}, findSortedBy("position", 1))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []*domain.ContentItem
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// EnsureIndexes creates the module_id index on the contents collection.
func (r *ContentRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "module_id", Value: 1}, {Key: "position", Value: 1}},
	})
	return err
}
