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

const lorryReceiptCollection = "lorry_receipt"

type MongoLorryReceiptRepo struct {
	mongoStore
}

func NewMongoLorryReceiptRepo(client *mongo.Client) *MongoLorryReceiptRepo {
	return &MongoLorryReceiptRepo{mongoStore{client: client}}
}

func (r *MongoLorryReceiptRepo) Create(ctx context.Context, lr *models.LorryReceipt) error {
	if lr.ID == "" {
		lr.ID = NewID()
	}
	if lr.CreatedAt.IsZero() {
		lr.CreatedAt = time.Now().UTC()
	}
	_, err := r.collection(lorryReceiptCollection).InsertOne(ctx, lr)
	if mongo.IsDuplicateKeyError(err) {
		return &DuplicateKeyError{Field: "lorryReceiptNumber"}
	}
	return err
}

func (r *MongoLorryReceiptRepo) List(ctx context.Context, userID string, f LorryReceiptFilter, p Page) ([]*models.LorryReceipt, int64, error) {
	filter := bson.M{"createdBy": userID}
	if f.Number != "" {
		filter["lorryReceiptNumber"] = containsRegex(f.Number)
	}
	if f.ConsignorName != "" {
		filter["consignor.consignorName"] = containsRegex(f.ConsignorName)
	}
	if f.ConsigneeName != "" {
		filter["consignee.consigneeName"] = containsRegex(f.ConsigneeName)
	}
	if f.TruckNumber != "" {
		filter["truckDetails.truckNumber"] = containsRegex(f.TruckNumber)
	}
	if f.Status != "" {
		filter["status"] = f.Status
	}

	col := r.collection(lorryReceiptCollection)
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

	var out []*models.LorryReceipt
	for cur.Next(ctx) {
		var lr models.LorryReceipt
		if err := cur.Decode(&lr); err != nil {
			return nil, 0, err
		}
		out = append(out, &lr)
	}
	return out, total, cur.Err()
}

func (r *MongoLorryReceiptRepo) GetByID(ctx context.Context, userID, id string) (*models.LorryReceipt, error) {
	var lr models.LorryReceipt
	err := r.collection(lorryReceiptCollection).
		FindOne(ctx, bson.M{"_id": id, "createdBy": userID}).Decode(&lr)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &lr, nil
}

func (r *MongoLorryReceiptRepo) Update(ctx context.Context, userID string, lr *models.LorryReceipt) error {
	now := time.Now().UTC()
	lr.UpdatedAt = &now
	res, err := r.collection(lorryReceiptCollection).
		ReplaceOne(ctx, bson.M{"_id": lr.ID, "createdBy": userID}, lr)
	if mongo.IsDuplicateKeyError(err) {
		return &DuplicateKeyError{Field: "lorryReceiptNumber"}
	}
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoLorryReceiptRepo) Delete(ctx context.Context, userID, id string) error {
	res, err := r.collection(lorryReceiptCollection).
		DeleteOne(ctx, bson.M{"_id": id, "createdBy": userID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
