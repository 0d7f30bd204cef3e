package db

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Collections struct {
	Blogs             *mongo.Collection
	Portfolios        *mongo.Collection
	Services          *mongo.Collection
	ServiceWorks      *mongo.Collection
	TeamMembers       *mongo.Collection
	Users             *mongo.Collection
	AdminUsers        *mongo.Collection
	PricingPlans      *mongo.Collection
	FeatureComparison *mongo.Collection
	PricingCalculator *mongo.Collection
	Stats             *mongo.Collection
	Inquiries         *mongo.Collection
	PartnerLogos      *mongo.Collection
	HeroBackground    *mongo.Collection
}

func Connect(ctx context.Context, uri, dbName string) (*mongo.Client, *Collections, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, nil, err
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, nil, err
	}

	db := client.Database(dbName)

	cols := &Collections{
		Blogs:             db.Collection("blogs"),
		Portfolios:        db.Collection("portfolios"),
		Services:          db.Collection("services"),
		ServiceWorks:      db.Collection("service_works"),
		TeamMembers:       db.Collection("teamMembers"),
		Users:             db.Collection("users"),
		AdminUsers:        db.Collection("admin_users"),
		PricingPlans:      db.Collection("pricingPlans"),
		FeatureComparison: db.Collection("featureComparison"),
		PricingCalculator: db.Collection("pricingCalculator"),
		Stats:             db.Collection("stats"),
		Inquiries:         db.Collection("inquiries"),
		PartnerLogos:      db.Collection("partnerLogos"),
		HeroBackground:    db.Collection("heroBackground"),
	}

	return client, cols, nil
}

func EnsureIndexes(ctx context.Context, cols *Collections) error {
	indexTimeout, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	_, err := cols.Blogs.Indexes().CreateMany(indexTimeout, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "slug", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "status", Value: 1}, {Key: "date", Value: -1}},
		},
	})
	if err != nil {
		return err
	}

	_, err = cols.PricingPlans.Indexes().CreateMany(indexTimeout, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "slug", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "order", Value: 1}},
		},
	})
	if err != nil {
		return err
	}

	_, err = cols.ServiceWorks.Indexes().CreateMany(indexTimeout, []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "serviceId", Value: 1}},
		},
	})
	if err != nil {
		return err
	}

	_, err = cols.AdminUsers.Indexes().CreateMany(indexTimeout, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "username", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	})
	if err != nil {
		return err
	}

	_, err = cols.Inquiries.Indexes().CreateMany(indexTimeout, []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "timestamp", Value: -1}},
		},
		{
			Keys: bson.D{{Key: "status", Value: 1}},
		},
	})
	if err != nil {
		return err
	}

	return nil
}
