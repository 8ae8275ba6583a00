package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/labax/labax-server/models"
	"github.com/labax/labax-server/utils"
)

// ErrNotFound is returned when no record matches the given identifier.
var ErrNotFound = errors.New("demo request not found")

// DemoRequestStore is the persistence surface for demo requests. Records
// are insert-only apart from status updates.
type DemoRequestStore interface {
	Insert(ctx context.Context, req *models.DemoRequest) (primitive.ObjectID, error)
	FindByID(ctx context.Context, id string) (*models.DemoRequest, error)
	List(ctx context.Context, page, limit int) ([]models.DemoRequest, int64, error)
	UpdateStatus(ctx context.Context, id string, status models.RequestStatus) (*models.DemoRequest, error)
}

type mongoDemoRequestStore struct{}

// NewDemoRequestStore returns the MongoDB-backed store.
func NewDemoRequestStore() DemoRequestStore {
	return &mongoDemoRequestStore{}
}

func (s *mongoDemoRequestStore) Insert(ctx context.Context, req *models.DemoRequest) (primitive.ObjectID, error) {
	result, err := Collection(DemoRequestsCollection).InsertOne(ctx, req)
	if err != nil {
		return primitive.NilObjectID, err
	}

	id := result.InsertedID.(primitive.ObjectID)
	utils.LogDbOperation("insert", DemoRequestsCollection, nil, id.Hex())
	return id, nil
}

func (s *mongoDemoRequestStore) FindByID(ctx context.Context, id string) (*models.DemoRequest, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}

	var req models.DemoRequest
	err = Collection(DemoRequestsCollection).FindOne(ctx, bson.M{"_id": objID}).Decode(&req)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return &req, nil
}

func (s *mongoDemoRequestStore) List(ctx context.Context, page, limit int) ([]models.DemoRequest, int64, error) {
	coll := Collection(DemoRequestsCollection)
	skip := int64((page - 1) * limit)

	opts := options.Find().
		SetSort(bson.M{"submittedAt": -1}).
		SetSkip(skip).
		SetLimit(int64(limit))

	cursor, err := coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	requests := []models.DemoRequest{}
	if err := cursor.All(ctx, &requests); err != nil {
		return nil, 0, err
	}

	total, err := coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, 0, err
	}

	return requests, total, nil
}

func (s *mongoDemoRequestStore) UpdateStatus(ctx context.Context, id string, status models.RequestStatus) (*models.DemoRequest, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	update := bson.M{"$set": bson.M{"status": status, "updatedAt": time.Now()}}

	var req models.DemoRequest
	err = Collection(DemoRequestsCollection).
		FindOneAndUpdate(ctx, bson.M{"_id": objID}, update, opts).
		Decode(&req)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	utils.LogDbOperation("updateStatus", DemoRequestsCollection, id, string(status))
	return &req, nil
}
