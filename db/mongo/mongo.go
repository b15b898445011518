package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoDB struct {
	Client *mongo.Client
	Ctx    context.Context
	Cancel context.CancelFunc
	URL    string
}

func NewMongoDB(url string) *MongoDB {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	return &MongoDB{
		Ctx:    ctx,
		Cancel: cancel,
		URL:    url,
	}
}

func (m *MongoDB) Connect() error {
	client, err := mongo.Connect(m.Ctx, options.Client().ApplyURI(m.URL))
	if err != nil {
		return err
	}
	m.Client = client
	if err := m.Client.Ping(m.Ctx, nil); err != nil {
		return err
	}
	return m.ensureIndexes()
}

// ensureIndexes creates the per-user unique document-number indexes that the
// Postgres schema declares as constraints.
func (m *MongoDB) ensureIndexes() error {
	db := m.Client.Database("tarapurtransport")
	unique := options.Index().SetUnique(true)

	for col, field := range map[string]string{
		"lorry_receipt": "lorryReceiptNumber",
		"quotation":     "quotationNumber",
		"loading_slip":  "slipNumber",
		"delivery_slip": "slipNumber",
	} {
		_, err := db.Collection(col).Indexes().CreateOne(m.Ctx, mongo.IndexModel{
			Keys:    bson.D{{Key: "createdBy", Value: 1}, {Key: field, Value: 1}},
			Options: unique,
		})
		if err != nil {
			return err
		}
	}

	_, err := db.Collection("app_user").Indexes().CreateOne(m.Ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: unique,
	})
	if err != nil {
		return err
	}

	_, err = db.Collection("company").Indexes().CreateOne(m.Ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "name", Value: 1}, {Key: "gstin", Value: 1}},
		Options: unique,
	})
	return err
}

func (m *MongoDB) Disconnect() error {
	m.Cancel()
	return m.Client.Disconnect(m.Ctx)
}

func (m *MongoDB) GetContext() context.Context {
	return m.Ctx
}
