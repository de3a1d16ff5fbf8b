package mongo

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/hrmsystem/hrm-api/internal/core/domain"
)

// uniqueField is a single-field unique index and the error its violation maps to.
type uniqueField struct {
	field    string
	conflict error
}

// collection stores one resource type. Documents use the record id as _id.
type collection[T any, P domain.Entity[T]] struct {
	col      *mongo.Collection
	name     string
	notFound error
	uniques  []uniqueField
}

func newCollection[T any, P domain.Entity[T]](db *mongo.Database, name string, notFound error, uniques ...uniqueField) *collection[T, P] {
	return &collection[T, P]{col: db.Collection(name), name: name, notFound: notFound, uniques: uniques}
}

func (r *collection[T, P]) Create(ctx context.Context, v *T) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.col.InsertOne(ctx, v); err != nil {
		return r.writeError(err, "insert")
	}
	return nil
}

func (r *collection[T, P]) List(ctx context.Context) ([]*T, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})
	cursor, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("%s find: %w", r.name, err)
	}
	defer cursor.Close(ctx)

	items := make([]*T, 0)
	if err := cursor.All(ctx, &items); err != nil {
		return nil, fmt.Errorf("%s decode: %w", r.name, err)
	}
	return items, nil
}

func (r *collection[T, P]) FindByID(ctx context.Context, id string) (*T, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *collection[T, P]) Update(ctx context.Context, v *T) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": P(v).Base().ID}, v)
	if err != nil {
		return r.writeError(err, "replace")
	}
	if res.MatchedCount == 0 {
		return r.notFound
	}
	return nil
}

func (r *collection[T, P]) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("%s delete: %w", r.name, err)
	}
	if res.DeletedCount == 0 {
		return r.notFound
	}
	return nil
}

func (r *collection[T, P]) findOne(ctx context.Context, filter bson.M) (*T, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	v := new(T)
	if err := r.col.FindOne(ctx, filter).Decode(v); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, r.notFound
		}
		return nil, fmt.Errorf("%s find one: %w", r.name, err)
	}
	return v, nil
}

// EnsureIndexes creates the unique indexes of the collection.
func (r *collection[T, P]) EnsureIndexes(ctx context.Context) error {
	if len(r.uniques) == 0 {
		return nil
	}
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := make([]mongo.IndexModel, 0, len(r.uniques))
	for _, u := range r.uniques {
		indexes = append(indexes, mongo.IndexModel{
			Keys:    bson.D{{Key: u.field, Value: 1}},
			Options: options.Index().SetUnique(true),
		})
	}
	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}

// writeError maps duplicate key violations to the conflict of the index
// that was hit.
func (r *collection[T, P]) writeError(err error, op string) error {
	if mongo.IsDuplicateKeyError(err) {
		for _, u := range r.uniques {
			if strings.Contains(err.Error(), u.field+"_1") {
				return u.conflict
			}
		}
		return domain.Conflict("Record already exists")
	}
	return fmt.Errorf("%s %s: %w", r.name, op, err)
}
