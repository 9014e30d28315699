package visitRepo

import (
	"context"
	"fmt"
	"time"

	"scooply/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Create inserts a new visit. A duplicate (customerId, date) insert is mapped
// to ErrDuplicateVisit so callers can treat it as "already generated".
func (repo *mongoVisitRepo) Create(ctx context.Context, visit *models.ScheduledVisit) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	visit.CreatedAt = time.Now()
	if _, err := repo.coll.InsertOne(ctxWithTimeout, visit); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicateVisit
		}
		return fmt.Errorf("error creating visit for customer %s on %s: %w", visit.CustomerID, visit.Date, err)
	}
	return nil
}

// ExistsForCustomerOnDate reports whether a visit already exists for the
// customer on the given date.
func (repo *mongoVisitRepo) ExistsForCustomerOnDate(ctx context.Context, customerID, date string) (bool, error) {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	count, err := repo.coll.CountDocuments(ctxWithTimeout, bson.M{"customerId": customerID, "date": date})
	if err != nil {
		return false, fmt.Errorf("error checking visit existence for customer %s on %s: %w", customerID, date, err)
	}
	return count > 0, nil
}

// GetForCustomerInRange retrieves a customer's visits with dates in the
// inclusive [startDate, endDate] range.
func (repo *mongoVisitRepo) GetForCustomerInRange(ctx context.Context, customerID, startDate, endDate string) ([]models.ScheduledVisit, error) {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"customerId": customerID,
		"date":       bson.M{"$gte": startDate, "$lte": endDate},
	}
	cursor, err := repo.coll.Find(ctxWithTimeout, filter)
	if err != nil {
		return nil, fmt.Errorf("error fetching visits for customer %s: %w", customerID, err)
	}
	defer cursor.Close(ctxWithTimeout)

	var visits []models.ScheduledVisit
	if err := cursor.All(ctxWithTimeout, &visits); err != nil {
		return nil, fmt.Errorf("error decoding visits for customer %s: %w", customerID, err)
	}
	return visits, nil
}

// GetOnDate retrieves all visits scheduled for a date.
func (repo *mongoVisitRepo) GetOnDate(ctx context.Context, date string) ([]models.ScheduledVisit, error) {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := repo.coll.Find(ctxWithTimeout, bson.M{"date": date})
	if err != nil {
		return nil, fmt.Errorf("error fetching visits on %s: %w", date, err)
	}
	defer cursor.Close(ctxWithTimeout)

	var visits []models.ScheduledVisit
	if err := cursor.All(ctxWithTimeout, &visits); err != nil {
		return nil, fmt.Errorf("error decoding visits on %s: %w", date, err)
	}
	return visits, nil
}
