package users

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Repository interface {
	Create(ctx context.Context, user User) error
	Update(ctx context.Context, id string, set bson.M) (User, error)
	Delete(ctx context.Context, id string) (bool, error)
	ListAll(ctx context.Context) ([]User, error)
	GetByID(ctx context.Context, id string) (User, error)
}

type MongoRepository struct {
	col *mongo.Collection
}

func NewRepository(col *mongo.Collection) *MongoRepository {
	return &MongoRepository{col: col}
}

func (r *MongoRepository) Create(ctx context.Context, user User) error {
	_, err := r.col.InsertOne(ctx, user)
	return err
}

func (r *MongoRepository) Update(ctx context.Context, id string, set bson.M) (User, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	update := bson.M{"$set": set}

	var updated User
	if err := r.col.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&updated); err != nil {
		return User{}, err
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

func (r *MongoRepository) ListAll(ctx context.Context) ([]User, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	list := make([]User, 0)
	for cursor.Next(ctx) {
		var user User
		if err := cursor.Decode(&user); err != nil {
			return nil, err
		}
		list = append(list, user)
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}
	return list, nil
}

func (r *MongoRepository) GetByID(ctx context.Context, id string) (User, error) {
	var user User
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&user); err != nil {
		return User{}, err
	}
	return user, nil
}
