package catalogRepo

import (
	"context"
	"fmt"
	"time"

	"scooply/models"

	"go.mongodb.org/mongo-driver/bson"
)

// GetServiceType retrieves a priced service definition by ID.
func (repo *mongoCatalogRepo) GetServiceType(ctx context.Context, serviceTypeID string) (*models.ServiceType, error) {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var st models.ServiceType
	err := repo.coll.FindOne(ctxWithTimeout, bson.M{"id": serviceTypeID}).Decode(&st)
	if err != nil {
		return nil, fmt.Errorf("service type %s not found: %w", serviceTypeID, err)
	}
	return &st, nil
}
