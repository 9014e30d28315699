package customerRepo

import (
	"context"
	"fmt"
	"time"

	"scooply/models"

	"go.mongodb.org/mongo-driver/bson"
)

// GetActiveCustomers retrieves every customer still receiving service.
func (repo *mongoCustomerRepo) GetActiveCustomers(ctx context.Context) ([]models.Customer, error) {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := repo.coll.Find(ctxWithTimeout, bson.M{"active": true})
	if err != nil {
		return nil, fmt.Errorf("error fetching active customers: %w", err)
	}
	defer cursor.Close(ctxWithTimeout)

	var customers []models.Customer
	if err := cursor.All(ctxWithTimeout, &customers); err != nil {
		return nil, fmt.Errorf("error decoding active customers: %w", err)
	}
	return customers, nil
}

// GetByID retrieves a single customer by its ID.
func (repo *mongoCustomerRepo) GetByID(ctx context.Context, customerID string) (*models.Customer, error) {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var customer models.Customer
	err := repo.coll.FindOne(ctxWithTimeout, bson.M{"id": customerID}).Decode(&customer)
	if err != nil {
		return nil, fmt.Errorf("customer %s not found: %w", customerID, err)
	}
	return &customer, nil
}
