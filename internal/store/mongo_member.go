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

type MongoMemberStore struct {
	collection *mongo.Collection
}

func NewMongoMemberStore(collection *mongo.Collection) *MongoMemberStore {
	return &MongoMemberStore{collection: collection}
}

func (s *MongoMemberStore) List(ctx context.Context) ([]models.Member, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := s.collection.Find(ctx, bson.M{}, opts)

	if err != nil {
		return nil, err
	}

	defer cursor.Close(ctx)

	// Non-nil so an empty collection serializes as [] rather than null.
	members := []models.Member{}

	if err := cursor.All(ctx, &members); err != nil {
		return nil, err
	}

	return members, nil
}

func (s *MongoMemberStore) FindByID(ctx context.Context, id primitive.ObjectID) (models.Member, error) {
	var member models.Member

	err := s.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&member)

	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Member{}, ErrNotFound
	}

	if err != nil {
		return models.Member{}, err
	}

	return member, nil
}

func (s *MongoMemberStore) FindByEmail(ctx context.Context, email string) (models.Member, error) {
	var member models.Member

	err := s.collection.FindOne(ctx, bson.M{"email": email}).Decode(&member)

	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Member{}, ErrNotFound
	}

	if err != nil {
		return models.Member{}, err
	}

	return member, nil
}

func (s *MongoMemberStore) FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Member, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	cursor, err := s.collection.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})

	if err != nil {
		return nil, err
	}

	defer cursor.Close(ctx)

	var members []models.Member

	if err := cursor.All(ctx, &members); err != nil {
		return nil, err
	}

	return members, nil
}

func (s *MongoMemberStore) Insert(ctx context.Context, member models.Member) (models.Member, error) {
	result, err := s.collection.InsertOne(ctx, member)

	if err != nil {
		return models.Member{}, err
	}

	member.ID = result.InsertedID.(primitive.ObjectID)

	return member, nil
}

func (s *MongoMemberStore) Update(ctx context.Context, member models.Member) error {
	result, err := s.collection.ReplaceOne(ctx, bson.M{"_id": member.ID}, member)

	if err != nil {
		return err
	}

	if result.MatchedCount == 0 {
		return ErrNotFound
	}

	return nil
}

func (s *MongoMemberStore) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := s.collection.DeleteOne(ctx, bson.M{"_id": id})

	if err != nil {
		return err
	}

	if result.DeletedCount == 0 {
		return ErrNotFound
	}

	return nil
}
