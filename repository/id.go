package repository

import "go.mongodb.org/mongo-driver/bson/primitive"

// NewID generates a record id. ObjectID hex works as the Mongo _id and as the
// Postgres text primary key, so ids look the same on either backend.
func NewID() string {
	return primitive.NewObjectID().Hex()
}
