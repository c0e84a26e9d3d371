package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// Collection names shared by the Mongo repositories.
const (
	leadsCollection   = "leads"
	reviewsCollection = "reviews"
)

// EnsureMongoIndexes creates the indexes the list and lookup queries rely on.
func EnsureMongoIndexes(ctx context.Context, db *mongo.Database) error {
	leadIndexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "email", Value: 1}}},
		{Keys: bson.D{{Key: "status", Value: 1}}},
		{Keys: bson.D{{Key: "createdAt", Value: -1}}},
	}
	if _, err := db.Collection(leadsCollection).Indexes().CreateMany(ctx, leadIndexes); err != nil {
		return fmt.Errorf("create lead indexes: %w", err)
	}

	reviewIndexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "status", Value: 1}, {Key: "createdAt", Value: 1}}},
		{Keys: bson.D{{Key: "rating", Value: -1}}},
		{Keys: bson.D{{Key: "createdAt", Value: -1}}},
	}
	if _, err := db.Collection(reviewsCollection).Indexes().CreateMany(ctx, reviewIndexes); err != nil {
		return fmt.Errorf("create review indexes: %w", err)
	}
	return nil
}

func sortByCreatedAt(direction int) *options.FindOptionsBuilder {
	return options.Find().SetSort(bson.D{{Key: "createdAt", Value: direction}, {Key: "_id", Value: direction}})
}
