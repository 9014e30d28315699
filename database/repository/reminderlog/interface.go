package reminderlogRepo

import (
	"context"

	"scooply/database"
	"scooply/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ReminderLogRepository records reminder dispatch attempts keyed by
// (customerId, date). The dispatcher consults it before enqueueing so a
// re-run for the same date sends nothing twice.
type ReminderLogRepository interface {
	Exists(ctx context.Context, customerID, date string) (bool, error)
	Record(ctx context.Context, entry *models.ReminderLogEntry) error
	EnsureIndexes() error
}

type mongoReminderLogRepo struct {
	coll *mongo.Collection
}

// NewMongoReminderLogRepo constructs a new MongoDB ReminderLogRepository.
func NewMongoReminderLogRepo() ReminderLogRepository {
	db := database.MongoClient.Database("scooply")
	return &mongoReminderLogRepo{
		coll: db.Collection("reminder_log"),
	}
}
