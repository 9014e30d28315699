package catalogRepo

import (
	"context"

	"scooply/database"
	"scooply/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// CatalogRepository is the read-only price book lookup. Service types are
// owned by the office-facing app.
type CatalogRepository interface {
	GetServiceType(ctx context.Context, serviceTypeID string) (*models.ServiceType, error)
}

type mongoCatalogRepo struct {
	coll *mongo.Collection
}

// NewMongoCatalogRepo constructs a new MongoDB CatalogRepository.
func NewMongoCatalogRepo() CatalogRepository {
	db := database.MongoClient.Database("scooply")
	return &mongoCatalogRepo{
		coll: db.Collection("service_types"),
	}
}
