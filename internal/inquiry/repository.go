package inquiry

import (
	"context"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Repository interface {
	Create(ctx context.Context, inq Inquiry) error
	List(ctx context.Context, filter ListFilter, limit, offset int64) ([]Inquiry, int64, error)
	GetByID(ctx context.Context, id string) (Inquiry, error)
	SetStatus(ctx context.Context, id, status string) (Inquiry, error)
	Delete(ctx context.Context, id string) (bool, error)
}

type MongoRepository struct {
	col *mongo.Collection
}

func NewRepository(col *mongo.Collection) *MongoRepository {
	return &MongoRepository{col: col}
}

func (r *MongoRepository) Create(ctx context.Context, inq Inquiry) error {
	_, err := r.col.InsertOne(ctx, inq)
	return err
}

func (r *MongoRepository) List(ctx context.Context, filter ListFilter, limit, offset int64) ([]Inquiry, int64, error) {
	query := bson.M{}
	if filter.Name != "" {
		query["name"] = bson.M{"$regex": primitive.Regex{Pattern: regexp.QuoteMeta(filter.Name), Options: "i"}}
	}
	if filter.Type != "" {
		query["inquiryType"] = filter.Type
	}
	if filter.Status != "" {
		query["status"] = filter.Status
	}

	total, err := r.col.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, err
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "timestamp", Value: -1}}).
		SetLimit(limit).
		SetSkip(offset)

	cursor, err := r.col.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	list := make([]Inquiry, 0)
	for cursor.Next(ctx) {
		var inq Inquiry
		if err := cursor.Decode(&inq); err != nil {
			return nil, 0, err
		}
		list = append(list, inq)
	}
	if err := cursor.Err(); err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

func (r *MongoRepository) GetByID(ctx context.Context, id string) (Inquiry, error) {
	var inq Inquiry
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&inq); err != nil {
		return Inquiry{}, err
	}
	return inq, nil
}

func (r *MongoRepository) SetStatus(ctx context.Context, id, status string) (Inquiry, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	update := bson.M{"$set": bson.M{"status": status}}

	var updated Inquiry
	if err := r.col.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&updated); err != nil {
		return Inquiry{}, err
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
