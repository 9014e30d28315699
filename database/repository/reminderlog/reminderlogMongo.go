package reminderlogRepo

import (
	"context"
	"fmt"
	"time"

	"scooply/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Exists reports whether a reminder was already dispatched for the customer
// on the given date.
func (repo *mongoReminderLogRepo) Exists(ctx context.Context, customerID, date string) (bool, error) {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	count, err := repo.coll.CountDocuments(ctxWithTimeout, bson.M{"customerId": customerID, "date": date})
	if err != nil {
		return false, fmt.Errorf("error checking reminder log for customer %s on %s: %w", customerID, date, err)
	}
	return count > 0, nil
}

// Record inserts one dispatch attempt.
func (repo *mongoReminderLogRepo) Record(ctx context.Context, entry *models.ReminderLogEntry) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	entry.CreatedAt = time.Now()
	if _, err := repo.coll.InsertOne(ctxWithTimeout, entry); err != nil {
		return fmt.Errorf("error recording reminder for customer %s on %s: %w", entry.CustomerID, entry.Date, err)
	}
	return nil
}

// EnsureIndexes creates the necessary indexes on the reminder log collection.
func (repo *mongoReminderLogRepo) EnsureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "customerId", Value: 1}, {Key: "date", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_customer_date"),
		},
	}

	_, err := repo.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create reminder log indexes: %w", err)
	}
	return nil
}
