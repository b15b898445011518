package repository

import (
	"context"
	"errors"
	"time"

	"tarapurtransport/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const quotationCollection = "quotation"

type MongoQuotationRepo struct {
	mongoStore
}

func NewMongoQuotationRepo(client *mongo.Client) *MongoQuotationRepo {
	return &MongoQuotationRepo{mongoStore{client: client}}
}

func (r *MongoQuotationRepo) Create(ctx context.Context, q *models.Quotation) error {
	if q.ID == "" {
		q.ID = NewID()
	}
	if q.CreatedAt.IsZero() {
		q.CreatedAt = time.Now().UTC()
	}
	_, err := r.collection(quotationCollection).InsertOne(ctx, q)
	if mongo.IsDuplicateKeyError(err) {
		return &DuplicateKeyError{Field: "quotationNumber"}
	}
	return err
}

func (r *MongoQuotationRepo) List(ctx context.Context, userID string, f QuotationFilter, p Page) ([]*models.Quotation, int64, error) {
	filter := bson.M{"createdBy": userID}
	if f.Number != "" {
		filter["quotationNumber"] = containsRegex(f.Number)
	}
	if f.CompanyName != "" {
		filter["quoteToCompany.companyName"] = containsRegex(f.CompanyName)
	}

	col := r.collection(quotationCollection)
	total, err := col.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip(int64(p.Offset())).
		SetLimit(int64(p.Limit))
	cur, err := col.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cur.Close(ctx)

	var out []*models.Quotation
	for cur.Next(ctx) {
		var q models.Quotation
		if err := cur.Decode(&q); err != nil {
			return nil, 0, err
		}
		out = append(out, &q)
	}
	return out, total, cur.Err()
}

func (r *MongoQuotationRepo) GetByID(ctx context.Context, userID, id string) (*models.Quotation, error) {
	var q models.Quotation
	err := r.collection(quotationCollection).
		FindOne(ctx, bson.M{"_id": id, "createdBy": userID}).Decode(&q)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &q, nil
}

func (r *MongoQuotationRepo) Update(ctx context.Context, userID string, q *models.Quotation) error {
	now := time.Now().UTC()
	q.UpdatedAt = &now
	res, err := r.collection(quotationCollection).
		ReplaceOne(ctx, bson.M{"_id": q.ID, "createdBy": userID}, q)
	if mongo.IsDuplicateKeyError(err) {
		return &DuplicateKeyError{Field: "quotationNumber"}
	}
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoQuotationRepo) Delete(ctx context.Context, userID, id string) error {
	res, err := r.collection(quotationCollection).
		DeleteOne(ctx, bson.M{"_id": id, "createdBy": userID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
