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

const deliverySlipCollection = "delivery_slip"

type MongoDeliverySlipRepo struct {
	mongoStore
}

func NewMongoDeliverySlipRepo(client *mongo.Client) *MongoDeliverySlipRepo {
	return &MongoDeliverySlipRepo{mongoStore{client: client}}
}

func (r *MongoDeliverySlipRepo) Create(ctx context.Context, ds *models.DeliverySlip) error {
	if ds.ID == "" {
		ds.ID = NewID()
	}
	if ds.CreatedAt.IsZero() {
		ds.CreatedAt = time.Now().UTC()
	}
	_, err := r.collection(deliverySlipCollection).InsertOne(ctx, ds)
	if mongo.IsDuplicateKeyError(err) {
		return &DuplicateKeyError{Field: "slipNumber"}
	}
	return err
}

func (r *MongoDeliverySlipRepo) List(ctx context.Context, userID string, f DeliverySlipFilter, p Page) ([]*models.DeliverySlip, int64, error) {
	filter := bson.M{"createdBy": userID}
	if f.SlipNumber != "" {
		filter["slipNumber"] = containsRegex(f.SlipNumber)
	}
	if f.LorryReceiptNumber != "" {
		filter["parcelDetails.lorryReceiptNumber"] = containsRegex(f.LorryReceiptNumber)
	}
	if f.Status != "" {
		filter["status"] = f.Status
	}

	col := r.collection(deliverySlipCollection)
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

	var out []*models.DeliverySlip
	for cur.Next(ctx) {
		var ds models.DeliverySlip
		if err := cur.Decode(&ds); err != nil {
			return nil, 0, err
		}
		out = append(out, &ds)
	}
	return out, total, cur.Err()
}

func (r *MongoDeliverySlipRepo) GetByID(ctx context.Context, userID, id string) (*models.DeliverySlip, error) {
	var ds models.DeliverySlip
	err := r.collection(deliverySlipCollection).
		FindOne(ctx, bson.M{"_id": id, "createdBy": userID}).Decode(&ds)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &ds, nil
}

func (r *MongoDeliverySlipRepo) Update(ctx context.Context, userID string, ds *models.DeliverySlip) error {
	now := time.Now().UTC()
	ds.UpdatedAt = &now
	res, err := r.collection(deliverySlipCollection).
		ReplaceOne(ctx, bson.M{"_id": ds.ID, "createdBy": userID}, ds)
	if mongo.IsDuplicateKeyError(err) {
		return &DuplicateKeyError{Field: "slipNumber"}
	}
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoDeliverySlipRepo) Delete(ctx context.Context, userID, id string) error {
	res, err := r.collection(deliverySlipCollection).
		DeleteOne(ctx, bson.M{"_id": id, "createdBy": userID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
