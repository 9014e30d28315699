package visitRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the necessary indexes on the visits collection.
// The unique (customerId, date) index is the backstop for the generator's
// read-then-write de-duplication: a racing second run gets a rejected insert,
// not a duplicate stop.
func (repo *mongoVisitRepo) EnsureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_id"),
		},
		{
			Keys:    bson.D{{Key: "customerId", Value: 1}, {Key: "date", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_customer_date"),
		},
		// Primary query pattern for reminder dispatch and route sheets.
		{
			Keys:    bson.D{{Key: "date", Value: 1}, {Key: "status", Value: 1}},
			Options: options.Index().SetName("date_status_idx"),
		},
	}

	_, err := repo.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create visit indexes: %w", err)
	}
	return nil
}
