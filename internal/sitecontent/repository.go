package sitecontent

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const heroDocID = "hero"

type Repository interface {
	ListLogos(ctx context.Context) ([]PartnerLogo, error)
	CreateLogo(ctx context.Context, logo PartnerLogo) error
	DeleteLogo(ctx context.Context, id string) (bool, error)

	GetHero(ctx context.Context) (HeroBackground, error)
	SaveHero(ctx context.Context, hero HeroBackground) error
}

type MongoRepository struct {
	logos *mongo.Collection
	hero  *mongo.Collection
}

func NewRepository(logos, hero *mongo.Collection) *MongoRepository {
	return &MongoRepository{
		logos: logos,
		hero:  hero,
	}
}

func (r *MongoRepository) ListLogos(ctx context.Context) ([]PartnerLogo, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}})

	cursor, err := r.logos.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	list := make([]PartnerLogo, 0)
	for cursor.Next(ctx) {
		var logo PartnerLogo
		if err := cursor.Decode(&logo); err != nil {
			return nil, err
		}
		list = append(list, logo)
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}
	return list, nil
}

func (r *MongoRepository) CreateLogo(ctx context.Context, logo PartnerLogo) error {
	_, err := r.logos.InsertOne(ctx, logo)
	return err
}

func (r *MongoRepository) DeleteLogo(ctx context.Context, id string) (bool, error) {
	res, err := r.logos.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}

func (r *MongoRepository) GetHero(ctx context.Context) (HeroBackground, error) {
	var hero HeroBackground
	if err := r.hero.FindOne(ctx, bson.M{"_id": heroDocID}).Decode(&hero); err != nil {
		return HeroBackground{}, err
	}
	return hero, nil
}

func (r *MongoRepository) SaveHero(ctx context.Context, hero HeroBackground) error {
	hero.ID = heroDocID
	opts := options.Replace().SetUpsert(true)
	_, err := r.hero.ReplaceOne(ctx, bson.M{"_id": heroDocID}, hero, opts)
	return err
}
