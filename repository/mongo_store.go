package repository

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

const mongoDatabase = "tarapurtransport"

// mongoStore is embedded by every Mongo repository.
type mongoStore struct {
	client *mongo.Client
}

func (s mongoStore) collection(name string) *mongo.Collection {
	return s.client.Database(mongoDatabase).Collection(name)
}

// containsRegex builds a case-insensitive substring match.
func containsRegex(value string) bson.M {
	return bson.M{"$regex": value, "$options": "i"}
}
