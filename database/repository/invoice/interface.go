package invoiceRepo

import (
	"context"

	"scooply/database"
	"scooply/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// InvoiceRepository manages invoices. Marking paid is the only mutation the
// billing worker performs after creation.
type InvoiceRepository interface {
	Create(ctx context.Context, invoice *models.Invoice) error
	MarkPaid(ctx context.Context, invoiceID, paymentRef string) error
	EnsureIndexes() error
}

type mongoInvoiceRepo struct {
	coll *mongo.Collection
}

// NewMongoInvoiceRepo constructs a new MongoDB InvoiceRepository.
func NewMongoInvoiceRepo() InvoiceRepository {
	db := database.MongoClient.Database("scooply")
	return &mongoInvoiceRepo{
		coll: db.Collection("invoices"),
	}
}
