package invoiceRepo

import (
	"context"
	"fmt"
	"time"

	"scooply/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Create inserts a new invoice document.
func (repo *mongoInvoiceRepo) Create(ctx context.Context, invoice *models.Invoice) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	invoice.CreatedAt = time.Now()
	if _, err := repo.coll.InsertOne(ctxWithTimeout, invoice); err != nil {
		return fmt.Errorf("error creating invoice %s for customer %s: %w", invoice.InvoiceNumber, invoice.CustomerID, err)
	}
	return nil
}

// MarkPaid sets an invoice's status to paid and records the external charge
// reference.
func (repo *mongoInvoiceRepo) MarkPaid(ctx context.Context, invoiceID, paymentRef string) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	now := time.Now()
	update := bson.M{"$set": bson.M{
		"status":     models.InvoiceStatusPaid,
		"paidAt":     now,
		"paymentRef": paymentRef,
	}}
	res, err := repo.coll.UpdateOne(ctxWithTimeout, bson.M{"id": invoiceID}, update)
	if err != nil {
		return fmt.Errorf("error marking invoice %s paid: %w", invoiceID, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("invoice %s not found", invoiceID)
	}
	return nil
}

// EnsureIndexes creates the necessary indexes on the invoices collection.
func (repo *mongoInvoiceRepo) EnsureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_id"),
		},
		{
			Keys:    bson.D{{Key: "invoiceNumber", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_invoice_number"),
		},
		{
			Keys:    bson.D{{Key: "customerId", Value: 1}, {Key: "status", Value: 1}},
			Options: options.Index().SetName("customer_status_idx"),
		},
	}

	_, err := repo.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create invoice indexes: %w", err)
	}
	return nil
}
