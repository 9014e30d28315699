package models

import "time"

// Customer is a serviced household. CRUD for customers lives outside this
// worker; it only reads them when generating routes, reminders and invoices.
type Customer struct {
	ID               string    `bson:"id" json:"id"`
	Name             string    `bson:"name" json:"name"`
	Phone            string    `bson:"phone" json:"phone"`
	Address          string    `bson:"address" json:"address"`
	DogCount         int       `bson:"dogCount" json:"dogCount"`
	ServiceTypeID    string    `bson:"serviceTypeId,omitempty" json:"serviceTypeId,omitempty"`
	Active           bool      `bson:"active" json:"active"`
	Autopay          bool      `bson:"autopay" json:"autopay"`
	StripeCustomerID string    `bson:"stripeCustomerId,omitempty" json:"stripeCustomerId,omitempty"`
	PaymentMethodID  string    `bson:"paymentMethodId,omitempty" json:"paymentMethodId,omitempty"`
	RemindersOptIn   bool      `bson:"remindersOptIn" json:"remindersOptIn"`
	CreatedAt        time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt        time.Time `bson:"updatedAt" json:"updatedAt"`
}
