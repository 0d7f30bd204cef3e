package pricing

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const calculatorDocID = "calculator"

type Repository interface {
	ListPlans(ctx context.Context) ([]Plan, error)
	GetPlanBySlug(ctx context.Context, slug string) (Plan, error)
	UpsertPlans(ctx context.Context, plans []Plan) error
	DeletePlan(ctx context.Context, id string) (bool, error)

	ListFeatures(ctx context.Context) ([]Feature, error)
	UpsertFeatures(ctx context.Context, features []Feature) error
	DeleteFeature(ctx context.Context, id string) (bool, error)

	GetCalculator(ctx context.Context) (Calculator, error)
	SaveCalculator(ctx context.Context, calc Calculator) error
}

type MongoRepository struct {
	plans      *mongo.Collection
	features   *mongo.Collection
	calculator *mongo.Collection
}

func NewRepository(plans, features, calculator *mongo.Collection) *MongoRepository {
	return &MongoRepository{
		plans:      plans,
		features:   features,
		calculator: calculator,
	}
}

func (r *MongoRepository) ListPlans(ctx context.Context) ([]Plan, error) {
	opts := options.Find().SetSort(bson.D{{Key: "order", Value: 1}})

	cursor, err := r.plans.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	list := make([]Plan, 0)
	for cursor.Next(ctx) {
		var plan Plan
		if err := cursor.Decode(&plan); err != nil {
			return nil, err
		}
		list = append(list, plan)
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}
	return list, nil
}

func (r *MongoRepository) GetPlanBySlug(ctx context.Context, slug string) (Plan, error) {
	var plan Plan
	if err := r.plans.FindOne(ctx, bson.M{"slug": slug}).Decode(&plan); err != nil {
		return Plan{}, err
	}
	return plan, nil
}

// UpsertPlans persists a full batch in one round trip. The admin page saves
// the whole renumbered list at once, so every document carries its final
// order value.
func (r *MongoRepository) UpsertPlans(ctx context.Context, plans []Plan) error {
	if len(plans) == 0 {
		return nil
	}
	models := make([]mongo.WriteModel, 0, len(plans))
	for _, plan := range plans {
		models = append(models, mongo.NewReplaceOneModel().
			SetFilter(bson.M{"_id": plan.ID}).
			SetReplacement(plan).
			SetUpsert(true))
	}
	_, err := r.plans.BulkWrite(ctx, models, options.BulkWrite().SetOrdered(true))
	return err
}

func (r *MongoRepository) DeletePlan(ctx context.Context, id string) (bool, error) {
	res, err := r.plans.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}

func (r *MongoRepository) ListFeatures(ctx context.Context) ([]Feature, error) {
	opts := options.Find().SetSort(bson.D{{Key: "order", Value: 1}})

	cursor, err := r.features.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	list := make([]Feature, 0)
	for cursor.Next(ctx) {
		var feature Feature
		if err := cursor.Decode(&feature); err != nil {
			return nil, err
		}
		list = append(list, feature)
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}
	return list, nil
}

func (r *MongoRepository) UpsertFeatures(ctx context.Context, features []Feature) error {
	if len(features) == 0 {
		return nil
	}
	models := make([]mongo.WriteModel, 0, len(features))
	for _, feature := range features {
		models = append(models, mongo.NewReplaceOneModel().
			SetFilter(bson.M{"_id": feature.ID}).
			SetReplacement(feature).
			SetUpsert(true))
	}
	_, err := r.features.BulkWrite(ctx, models, options.BulkWrite().SetOrdered(true))
	return err
}

func (r *MongoRepository) DeleteFeature(ctx context.Context, id string) (bool, error) {
	res, err := r.features.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}

func (r *MongoRepository) GetCalculator(ctx context.Context) (Calculator, error) {
	var calc Calculator
	if err := r.calculator.FindOne(ctx, bson.M{"_id": calculatorDocID}).Decode(&calc); err != nil {
		return Calculator{}, err
	}
	return calc, nil
}

func (r *MongoRepository) SaveCalculator(ctx context.Context, calc Calculator) error {
	calc.ID = calculatorDocID
	opts := options.Replace().SetUpsert(true)
	_, err := r.calculator.ReplaceOne(ctx, bson.M{"_id": calculatorDocID}, calc, opts)
	return err
}
