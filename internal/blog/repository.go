package blog

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Repository interface {
	Create(ctx context.Context, post Post) error
	Update(ctx context.Context, id string, set bson.M) (Post, error)
	Delete(ctx context.Context, id string) (bool, error)
	ListPublished(ctx context.Context) ([]Post, error)
	ListSlugs(ctx context.Context) ([]SlugEntry, error)
	GetPublishedBySlug(ctx context.Context, slug string) (Post, error)
	ListAdmin(ctx context.Context, filter AdminListFilter, limit, offset int64) ([]Post, error)
	CountAdmin(ctx context.Context, filter AdminListFilter) (int64, error)
}

type MongoRepository struct {
	col *mongo.Collection
}

func NewRepository(col *mongo.Collection) *MongoRepository {
	return &MongoRepository{col: col}
}

func (r *MongoRepository) Create(ctx context.Context, post Post) error {
	_, err := r.col.InsertOne(ctx, post)
	return err
}

func (r *MongoRepository) Update(ctx context.Context, id string, set bson.M) (Post, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	update := bson.M{"$set": set}

	var updated Post
	if err := r.col.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&updated); err != nil {
		return Post{}, err
	}
	return updated, nil
}

func (r *MongoRepository) Delete(ctx context.Context, id string) (bool, error) {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}

func (r *MongoRepository) ListPublished(ctx context.Context) ([]Post, error) {
	opts := options.Find().SetSort(bson.D{
		{Key: "featured", Value: -1},
		{Key: "date", Value: -1},
	})
	return r.list(ctx, bson.M{"status": StatusPublished}, opts)
}

func (r *MongoRepository) ListSlugs(ctx context.Context) ([]SlugEntry, error) {
	opts := options.Find().
		SetProjection(bson.M{"slug": 1, "date": 1}).
		SetSort(bson.D{{Key: "date", Value: -1}})

	cursor, err := r.col.Find(ctx, bson.M{"status": StatusPublished}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	entries := make([]SlugEntry, 0)
	for cursor.Next(ctx) {
		var entry SlugEntry
		if err := cursor.Decode(&entry); err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *MongoRepository) GetPublishedBySlug(ctx context.Context, slug string) (Post, error) {
	var post Post
	if err := r.col.FindOne(ctx, bson.M{"slug": slug, "status": StatusPublished}).Decode(&post); err != nil {
		return Post{}, err
	}
	return post, nil
}

func (r *MongoRepository) ListAdmin(ctx context.Context, filter AdminListFilter, limit, offset int64) ([]Post, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "date", Value: -1}}).
		SetLimit(limit).
		SetSkip(offset)
	return r.list(ctx, adminQuery(filter), opts)
}

func (r *MongoRepository) CountAdmin(ctx context.Context, filter AdminListFilter) (int64, error) {
	return r.col.CountDocuments(ctx, adminQuery(filter))
}

func adminQuery(filter AdminListFilter) bson.M {
	query := bson.M{}
	if filter.Status != "" {
		query["status"] = filter.Status
	}
	if filter.Tag != "" {
		query["tag"] = filter.Tag
	}
	return query
}

func (r *MongoRepository) list(ctx context.Context, query bson.M, opts *options.FindOptions) ([]Post, error) {
	cursor, err := r.col.Find(ctx, query, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	posts := make([]Post, 0)
	for cursor.Next(ctx) {
		var post Post
		if err := cursor.Decode(&post); err != nil {
			return nil, err
		}
		posts = append(posts, post)
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}
	return posts, nil
}
