package visitRepo

import (
	"context"
	"errors"

	"scooply/database"
	"scooply/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ErrDuplicateVisit is returned when an insert collides with the unique
// (customerId, date) index. Overlapping generator runs hit this instead of
// silently double-booking a stop.
var ErrDuplicateVisit = errors.New("visit already exists for customer and date")

// VisitRepository manages scheduled visits. Visits are never deleted by this
// worker; field status updates come from the office-facing app.
type VisitRepository interface {
	Create(ctx context.Context, visit *models.ScheduledVisit) error
	ExistsForCustomerOnDate(ctx context.Context, customerID, date string) (bool, error)
	GetForCustomerInRange(ctx context.Context, customerID, startDate, endDate string) ([]models.ScheduledVisit, error)
	GetOnDate(ctx context.Context, date string) ([]models.ScheduledVisit, error)
	EnsureIndexes() error
}

type mongoVisitRepo struct {
	coll *mongo.Collection
}

// NewMongoVisitRepo constructs a new MongoDB VisitRepository.
func NewMongoVisitRepo() VisitRepository {
	db := database.MongoClient.Database("scooply")
	return &mongoVisitRepo{
		coll: db.Collection("visits"),
	}
}
