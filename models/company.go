package models

import "time"

// Company is the shared party lookup entity. It is upserted automatically
// whenever a document is saved with inline party details, deduplicated by
// name + GSTIN, and never deleted by document operations.
type Company struct {
	ID            string    `json:"id" bson:"_id,omitempty"`
	Name          string    `json:"name" bson:"name"`
	GSTIN         string    `json:"gstin,omitempty" bson:"gstin,omitempty"`
	ContactNumber string    `json:"contactNumber,omitempty" bson:"contactNumber,omitempty"`
	Email         string    `json:"email,omitempty" bson:"email,omitempty"`
	Address       string    `json:"address,omitempty" bson:"address,omitempty"`
	City          string    `json:"city,omitempty" bson:"city,omitempty"`
	State         string    `json:"state,omitempty" bson:"state,omitempty"`
	Country       string    `json:"country,omitempty" bson:"country,omitempty"`
	PinCode       string    `json:"pinCode,omitempty" bson:"pinCode,omitempty"`
	CreatedAt     time.Time `json:"createdAt" bson:"createdAt"`
}
