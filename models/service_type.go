package models

// ServiceType is a priced service definition from the price book. Read-only
// to this worker; pricing bills basePrice for the first dog plus
// pricePerExtraUnit for each additional one.
type ServiceType struct {
	ID                string `bson:"id" json:"id"`
	Name              string `bson:"name" json:"name"`
	BasePrice         Money  `bson:"basePrice" json:"basePrice"`
	PricePerExtraUnit Money  `bson:"pricePerExtraUnit" json:"pricePerExtraUnit"`
	TimesPerWeek      int    `bson:"timesPerWeek,omitempty" json:"timesPerWeek,omitempty"` // informational only
}
