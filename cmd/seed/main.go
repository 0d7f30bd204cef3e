package main

import (
	"context"
	"log"
	"os"
	"time"

	"zenith-backend/internal/admin"
	"zenith-backend/internal/auth"
	"zenith-backend/internal/config"
	"zenith-backend/internal/db"
	"zenith-backend/internal/pricing"
	"zenith-backend/internal/stats"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, cols, err := db.Connect(ctx, cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		log.Fatal(err)
	}
	defer client.Disconnect(context.Background())

	if err := db.EnsureIndexes(ctx, cols); err != nil {
		log.Fatal(err)
	}

	for _, plan := range pricing.DefaultPlans() {
		if err := upsertIfMissing(ctx, cols.PricingPlans, plan.ID, plan); err != nil {
			log.Fatalf("seed error for plan %s: %v", plan.Slug, err)
		}
	}

	for _, feature := range pricing.DefaultFeatures() {
		if err := upsertIfMissing(ctx, cols.FeatureComparison, feature.ID, feature); err != nil {
			log.Fatalf("seed error for feature %s: %v", feature.Name, err)
		}
	}

	for _, stat := range stats.DefaultStats() {
		if err := upsertIfMissing(ctx, cols.Stats, stat.ID, stat); err != nil {
			log.Fatalf("seed error for stat %s: %v", stat.Label, err)
		}
	}

	hero := bson.M{
		"type":      "default",
		"value":     "",
		"updatedAt": time.Now().In(cfg.Timezone),
	}
	if err := upsertIfMissing(ctx, cols.HeroBackground, "hero", hero); err != nil {
		log.Fatalf("seed error for hero background: %v", err)
	}

	username := envOrDefault("ADMIN_USER", "admin")
	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		log.Printf("seed admin: ADMIN_PASSWORD missing, skipping (%s)", username)
	} else if err := seedAdminAccount(ctx, cols, username, os.Getenv("ADMIN_EMAIL"), password, cfg.Timezone); err != nil {
		log.Fatalf("seed admin error for %s: %v", username, err)
	}

	log.Println("seed completed")
}

// upsertIfMissing inserts doc under the given id but never touches an
// existing document, so reruns cannot clobber edits made in the admin.
func upsertIfMissing(ctx context.Context, col *mongo.Collection, id string, doc interface{}) error {
	update := bson.M{"$setOnInsert": doc}
	_, err := col.UpdateOne(ctx, bson.M{"_id": id}, update, options.Update().SetUpsert(true))
	return err
}

func seedAdminAccount(ctx context.Context, cols *db.Collections, username, email, password string, loc *time.Location) error {
	hash, err := auth.HashPassword(password)
	if err != nil {
		return err
	}
	now := time.Now().In(loc)
	set := bson.M{
		"passwordHash": hash,
		"role":         admin.RoleAdmin,
		"updatedAt":    now,
	}
	if email != "" {
		set["email"] = email
	}
	update := bson.M{
		"$set": set,
		"$setOnInsert": bson.M{
			"_id":       primitive.NewObjectID().Hex(),
			"username":  username,
			"createdAt": now,
		},
	}
	_, err = cols.AdminUsers.UpdateOne(ctx, bson.M{"username": username}, update, options.Update().SetUpsert(true))
	return err
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
