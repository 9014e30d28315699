package models

import "time"

// Invoice statuses.
const (
	InvoiceStatusUnpaid  = "unpaid"
	InvoiceStatusPaid    = "paid"
	InvoiceStatusOverdue = "overdue"
)

// Invoice is one customer's bill for a calendar month of completed visits.
// A failed autopay charge leaves the invoice unpaid; the invoice itself is the
// record of what is owed.
type Invoice struct {
	ID            string     `bson:"id" json:"id"`
	CustomerID    string     `bson:"customerId" json:"customerId"`
	InvoiceNumber string     `bson:"invoiceNumber" json:"invoiceNumber"`
	Amount        Money      `bson:"amount" json:"amount"`
	Status        string     `bson:"status" json:"status"`
	DueDate       string     `bson:"dueDate" json:"dueDate"` // YYYY-MM-DD
	Description   string     `bson:"description,omitempty" json:"description,omitempty"`
	PaidAt        *time.Time `bson:"paidAt,omitempty" json:"paidAt,omitempty"`
	PaymentRef    string     `bson:"paymentRef,omitempty" json:"paymentRef,omitempty"` // external charge reference
	CreatedAt     time.Time  `bson:"createdAt" json:"createdAt"`
}
