package config

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var Client *mongo.Client

// ConnectDB establishes the shared Mongo client. Fatal on failure; the API
// cannot serve anything without its stores.
func ConnectDB() *mongo.Client {
	log.Println("Connecting to MongoDB...")

	clientOptions := options.Client().ApplyURI(Env.MongoURI)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		log.Fatalf("MongoDB is not reachable: %v", err)
	}

	Client = client
	return client
}

func OpenCollection(collectionName string) *mongo.Collection {
	if Client == nil {
		log.Fatal("MongoDB client is not initialized.")
	}
	return Client.Database(Env.DatabaseName).Collection(collectionName)
}
