package store

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/crewdeck-dev/crewdeck/internal/models"
)

type MongoProjectStore struct {
	collection *mongo.Collection
}

func NewMongoProjectStore(collection *mongo.Collection) *MongoProjectStore {
	return &MongoProjectStore{collection: collection}
}

func (s *MongoProjectStore) List(ctx context.Context) ([]models.Project, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := s.collection.Find(ctx, bson.M{}, opts)

	if err != nil {
		return nil, err
	}

	defer cursor.Close(ctx)

	// Non-nil so an empty collection serializes as [] rather than null.
	projects := []models.Project{}

	if err := cursor.All(ctx, &projects); err != nil {
		return nil, err
	}

	return projects, nil
}

func (s *MongoProjectStore) FindByID(ctx context.Context, id primitive.ObjectID) (models.Project, error) {
	var project models.Project

	err := s.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&project)

	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Project{}, ErrNotFound
	}

	if err != nil {
		return models.Project{}, err
	}

	return project, nil
}

func (s *MongoProjectStore) Insert(ctx context.Context, project models.Project) (models.Project, error) {
	result, err := s.collection.InsertOne(ctx, project)

	if err != nil {
		return models.Project{}, err
	}

	project.ID = result.InsertedID.(primitive.ObjectID)

	return project, nil
}

func (s *MongoProjectStore) Update(ctx context.Context, project models.Project) error {
	result, err := s.collection.ReplaceOne(ctx, bson.M{"_id": project.ID}, project)

	if err != nil {
		return err
	}

	if result.MatchedCount == 0 {
		return ErrNotFound
	}

	return nil
}

func (s *MongoProjectStore) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := s.collection.DeleteOne(ctx, bson.M{"_id": id})

	if err != nil {
		return err
	}

	if result.DeletedCount == 0 {
		return ErrNotFound
	}

	return nil
}
