package customerRepo

import (
	"context"

	"scooply/database"
	"scooply/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// CustomerRepository exposes the read surface this worker needs: customer
// CRUD itself lives in the office-facing app.
type CustomerRepository interface {
	GetActiveCustomers(ctx context.Context) ([]models.Customer, error)
	GetByID(ctx context.Context, customerID string) (*models.Customer, error)
}

type mongoCustomerRepo struct {
	coll *mongo.Collection
}

// NewMongoCustomerRepo constructs a new MongoDB CustomerRepository.
func NewMongoCustomerRepo() CustomerRepository {
	db := database.MongoClient.Database("scooply")
	return &mongoCustomerRepo{
		coll: db.Collection("customers"),
	}
}
