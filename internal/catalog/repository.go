package catalog

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Repository interface {
	Create(ctx context.Context, svc Service) error
	Update(ctx context.Context, id string, set bson.M) (Service, error)
	Delete(ctx context.Context, id string) (bool, error)
	List(ctx context.Context, status string) ([]Service, error)
	GetByID(ctx context.Context, id string) (Service, error)
	ListWorks(ctx context.Context, serviceID string) ([]Work, error)
	ApplyWorksDiff(ctx context.Context, serviceID string, diff WorksDiff, now time.Time) error
}

type MongoRepository struct {
	client *mongo.Client
	col    *mongo.Collection
	works  *mongo.Collection
}

func NewRepository(client *mongo.Client, col, works *mongo.Collection) *MongoRepository {
	return &MongoRepository{
		client: client,
		col:    col,
		works:  works,
	}
}

func (r *MongoRepository) Create(ctx context.Context, svc Service) error {
	_, err := r.col.InsertOne(ctx, svc)
	return err
}

func (r *MongoRepository) Update(ctx context.Context, id string, set bson.M) (Service, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	update := bson.M{"$set": set}

	var updated Service
	if err := r.col.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&updated); err != nil {
		return Service{}, err
	}
	return updated, nil
}

func (r *MongoRepository) Delete(ctx context.Context, id string) (bool, error) {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, err
	}
	if res.DeletedCount == 0 {
		return false, nil
	}
	// Works belong to exactly one service; orphans would never be readable.
	_, err = r.works.DeleteMany(ctx, bson.M{"serviceId": id})
	return true, err
}

func (r *MongoRepository) List(ctx context.Context, status string) ([]Service, error) {
	query := bson.M{}
	if status != "" {
		query["status"] = status
	}

	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})

	cursor, err := r.col.Find(ctx, query, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	services := make([]Service, 0)
	for cursor.Next(ctx) {
		var svc Service
		if err := cursor.Decode(&svc); err != nil {
			return nil, err
		}
		services = append(services, svc)
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}
	return services, nil
}

func (r *MongoRepository) GetByID(ctx context.Context, id string) (Service, error) {
	var svc Service
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&svc); err != nil {
		return Service{}, err
	}
	return svc, nil
}

func (r *MongoRepository) ListWorks(ctx context.Context, serviceID string) ([]Work, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}})
	cursor, err := r.works.Find(ctx, bson.M{"serviceId": serviceID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	works := make([]Work, 0)
	for cursor.Next(ctx) {
		var w Work
		if err := cursor.Decode(&w); err != nil {
			return nil, err
		}
		works = append(works, w)
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}
	return works, nil
}

// ApplyWorksDiff applies the reconciliation plan inside a single transaction,
// so a failure partway through cannot leave the works set half-synchronized.
func (r *MongoRepository) ApplyWorksDiff(ctx context.Context, serviceID string, diff WorksDiff, now time.Time) error {
	session, err := r.client.StartSession()
	if err != nil {
		return err
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		if len(diff.DeleteIDs) > 0 {
			if _, err := r.works.DeleteMany(sc, bson.M{
				"serviceId": serviceID,
				"_id":       bson.M{"$in": diff.DeleteIDs},
			}); err != nil {
				return nil, err
			}
		}

		for _, w := range diff.Updates {
			opts := options.Update().SetUpsert(true)
			if _, err := r.works.UpdateOne(sc, bson.M{"_id": w.ID, "serviceId": serviceID}, workUpdate(w, now), opts); err != nil {
				return nil, err
			}
		}

		if len(diff.Inserts) > 0 {
			docs := make([]interface{}, 0, len(diff.Inserts))
			for _, w := range diff.Inserts {
				docs = append(docs, Work{
					ID:        primitive.NewObjectID().Hex(),
					ServiceID: serviceID,
					MediaType: w.MediaType,
					MediaPath: w.MediaPath,
					Title:     w.Title,
					Link:      w.Link,
					CreatedAt: now,
					UpdatedAt: now,
				})
			}
			if _, err := r.works.InsertMany(sc, docs); err != nil {
				return nil, err
			}
		}

		return nil, nil
	})
	return err
}

// workUpdate builds the upsert for a kept gallery row. createdAt is the
// gallery sort key, so it is only stamped when the row does not exist yet.
func workUpdate(w WorkInput, now time.Time) bson.M {
	return bson.M{
		"$set": bson.M{
			"mediaType": w.MediaType,
			"mediaPath": w.MediaPath,
			"title":     w.Title,
			"link":      w.Link,
			"updatedAt": now,
		},
		"$setOnInsert": bson.M{"createdAt": now},
	}
}
