package stats

import (
	"context"
	"sort"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Repository interface {
	List(ctx context.Context) ([]Stat, error)
	UpsertAll(ctx context.Context, stats []Stat) error
	Delete(ctx context.Context, id string) (bool, error)
}

type MongoRepository struct {
	col *mongo.Collection
}

func NewRepository(col *mongo.Collection) *MongoRepository {
	return &MongoRepository{col: col}
}

func (r *MongoRepository) List(ctx context.Context) ([]Stat, error) {
	opts := options.Find().SetSort(bson.D{{Key: "order", Value: 1}})

	cursor, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	list := make([]Stat, 0)
	for cursor.Next(ctx) {
		var stat Stat
		if err := cursor.Decode(&stat); err != nil {
			return nil, err
		}
		list = append(list, stat)
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}
	return list, nil
}

func (r *MongoRepository) UpsertAll(ctx context.Context, stats []Stat) error {
	if len(stats) == 0 {
		return nil
	}
	models := make([]mongo.WriteModel, 0, len(stats))
	for _, stat := range stats {
		models = append(models, mongo.NewReplaceOneModel().
			SetFilter(bson.M{"_id": stat.ID}).
			SetReplacement(stat).
			SetUpsert(true))
	}
	_, err := r.col.BulkWrite(ctx, models, options.BulkWrite().SetOrdered(true))
	return err
}

func (r *MongoRepository) Delete(ctx context.Context, id string) (bool, error) {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}

func sortStats(list []Stat) {
	sort.SliceStable(list, func(i, j int) bool { return list[i].Order < list[j].Order })
}

func renumber(list []Stat) []Stat {
	out := make([]Stat, len(list))
	for i, stat := range list {
		out[i] = stat.withOrder(i + 1)
	}
	return out
}
