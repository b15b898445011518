package repository

import (
	"context"
	"errors"
	"time"

	"tarapurtransport/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

const userCollection = "app_user"

type MongoUserRepo struct {
	mongoStore
}

func NewMongoUserRepo(client *mongo.Client) *MongoUserRepo {
	return &MongoUserRepo{mongoStore{client: client}}
}

func (r *MongoUserRepo) CreateUser(ctx context.Context, user *models.AppUser) error {
	if user.ID == "" {
		user.ID = NewID()
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now().UTC()
	}
	_, err := r.collection(userCollection).InsertOne(ctx, user)
	if mongo.IsDuplicateKeyError(err) {
		return &DuplicateKeyError{Field: "email"}
	}
	return err
}

func (r *MongoUserRepo) GetUserByEmail(ctx context.Context, email string) (*models.AppUser, error) {
	user := &models.AppUser{}
	err := r.collection(userCollection).FindOne(ctx, bson.M{"email": email}).Decode(user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}
