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

const loadingSlipCollection = "loading_slip"

type MongoLoadingSlipRepo struct {
	mongoStore
}

func NewMongoLoadingSlipRepo(client *mongo.Client) *MongoLoadingSlipRepo {
	return &MongoLoadingSlipRepo{mongoStore{client: client}}
}

func (r *MongoLoadingSlipRepo) Create(ctx context.Context, ls *models.LoadingSlip) error {
	if ls.ID == "" {
		ls.ID = NewID()
	}
	if ls.CreatedAt.IsZero() {
		ls.CreatedAt = time.Now().UTC()
	}
	_, err := r.collection(loadingSlipCollection).InsertOne(ctx, ls)
	if mongo.IsDuplicateKeyError(err) {
		return &DuplicateKeyError{Field: "slipNumber"}
	}
	return err
}

func (r *MongoLoadingSlipRepo) List(ctx context.Context, userID string, f LoadingSlipFilter, p Page) ([]*models.LoadingSlip, int64, error) {
	filter := bson.M{"createdBy": userID}
	if f.SlipNumber != "" {
		filter["slipNumber"] = containsRegex(f.SlipNumber)
	}
	if f.TruckNumber != "" {
		filter["truckDetails.truckNumber"] = containsRegex(f.TruckNumber)
	}
	if f.CompanyName != "" {
		filter["companyDetails.companyName"] = containsRegex(f.CompanyName)
	}

	col := r.collection(loadingSlipCollection)
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

	var out []*models.LoadingSlip
	for cur.Next(ctx) {
		var ls models.LoadingSlip
		if err := cur.Decode(&ls); err != nil {
			return nil, 0, err
		}
		out = append(out, &ls)
	}
	return out, total, cur.Err()
}

func (r *MongoLoadingSlipRepo) GetByID(ctx context.Context, userID, id string) (*models.LoadingSlip, error) {
	var ls models.LoadingSlip
	err := r.collection(loadingSlipCollection).
		FindOne(ctx, bson.M{"_id": id, "createdBy": userID}).Decode(&ls)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &ls, nil
}

func (r *MongoLoadingSlipRepo) Update(ctx context.Context, userID string, ls *models.LoadingSlip) error {
	now := time.Now().UTC()
	ls.UpdatedAt = &now
	res, err := r.collection(loadingSlipCollection).
		ReplaceOne(ctx, bson.M{"_id": ls.ID, "createdBy": userID}, ls)
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

func (r *MongoLoadingSlipRepo) Delete(ctx context.Context, userID, id string) error {
	res, err := r.collection(loadingSlipCollection).
		DeleteOne(ctx, bson.M{"_id": id, "createdBy": userID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
