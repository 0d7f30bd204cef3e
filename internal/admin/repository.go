package admin

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type Repository interface {
	Create(ctx context.Context, account Account) error
	GetByUsername(ctx context.Context, username string) (Account, error)
}

type MongoRepository struct {
	col *mongo.Collection
}

func NewRepository(col *mongo.Collection) *MongoRepository {
	return &MongoRepository{col: col}
}

func (r *MongoRepository) Create(ctx context.Context, account Account) error {
	_, err := r.col.InsertOne(ctx, account)
	return err
}

func (r *MongoRepository) GetByUsername(ctx context.Context, username string) (Account, error) {
	var account Account
	if err := r.col.FindOne(ctx, bson.M{"username": username}).Decode(&account); err != nil {
		return Account{}, err
	}
	return account, nil
}
