package repository

import (
	"context"
	"time"

	"tarapurtransport/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const companyCollection = "company"

type MongoCompanyRepo struct {
	mongoStore
}

func NewMongoCompanyRepo(client *mongo.Client) *MongoCompanyRepo {
	return &MongoCompanyRepo{mongoStore{client: client}}
}

// Upsert inserts the company if no record with the same name and GSTIN
// exists. Party details are snapshots taken from document saves, so an
// existing record is left untouched.
func (r *MongoCompanyRepo) Upsert(ctx context.Context, c *models.Company) error {
	if c.Name == "" {
		return nil
	}
	if c.ID == "" {
		c.ID = NewID()
	}
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now().UTC()
	}
	_, err := r.collection(companyCollection).UpdateOne(ctx,
		bson.M{"name": c.Name, "gstin": c.GSTIN},
		bson.M{"$setOnInsert": c},
		options.Update().SetUpsert(true),
	)
	return err
}

func (r *MongoCompanyRepo) List(ctx context.Context, nameFilter string, p Page) ([]*models.Company, int64, error) {
	filter := bson.M{}
	if nameFilter != "" {
		filter["name"] = containsRegex(nameFilter)
	}

	col := r.collection(companyCollection)
	total, err := col.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "name", Value: 1}}).
		SetSkip(int64(p.Offset())).
		SetLimit(int64(p.Limit))
	cur, err := col.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cur.Close(ctx)

	var out []*models.Company
	for cur.Next(ctx) {
		var c models.Company
		if err := cur.Decode(&c); err != nil {
			return nil, 0, err
		}
		out = append(out, &c)
	}
	return out, total, cur.Err()
}
