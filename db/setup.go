package db

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

var (
	Client   *mongo.Client
	Database *mongo.Database
)

func ConnectDatabase(ctx context.Context, uri, name string) error {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))

	if err != nil {
		return err
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return err
	}

	Client = client
	Database = client.Database(name)

	return nil
}

func DisconnectDatabase(ctx context.Context) error {
	if Client == nil {
		return nil
	}

	return Client.Disconnect(ctx)
}

func Members() *mongo.Collection {
	return Database.Collection("members")
}

func Projects() *mongo.Collection {
	return Database.Collection("projects")
}
