package database

import (
	"context"
	"log"
	"os"
	"sync"
	"time"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const DBName = "CampusHubDB"

var (
	client     *mongo.Client
	once       sync.Once // ConnectMongoDB must only run once
	connectErr error

	UserCollection         *mongo.Collection
	ProjectCollection      *mongo.Collection
	EvaluationCollection   *mongo.Collection
	ReservationCollection  *mongo.Collection
	GroupPostCollection    *mongo.Collection
	ApplicationCollection  *mongo.Collection
	LocationCollection     *mongo.Collection
	MessageCollection      *mongo.Collection
	ConsultationCollection *mongo.Collection
)

// ConnectMongoDB connects to MongoDB exactly once and wires up the
// shared collection handles.
func ConnectMongoDB() error {

	err := godotenv.Load()
	if err != nil {
		log.Println("⚠️ Warning: No .env file found")
	}

	mongoURI := os.Getenv("MONGO_URI")
	if mongoURI == "" {
		log.Fatal("❌ MONGO_URI environment variable not set. Please create a .env file and set it.")
	}

	once.Do(func() {
		clientOptions := options.Client().ApplyURI(mongoURI)

		client, connectErr = mongo.Connect(context.TODO(), clientOptions)
		if connectErr != nil {
			log.Fatal("❌ Failed to connect to MongoDB:", connectErr)
			return
		}

		connectErr = client.Ping(context.TODO(), readpref.Primary())
		if connectErr != nil {
			log.Fatal("❌ MongoDB ping failed:", connectErr)
			return
		}

		UserCollection = GetCollection(DBName, "users")
		ProjectCollection = GetCollection(DBName, "projects")
		EvaluationCollection = GetCollection(DBName, "evaluations")
		ReservationCollection = GetCollection(DBName, "reservations")
		GroupPostCollection = GetCollection(DBName, "groupPosts")
		ApplicationCollection = GetCollection(DBName, "applications")
		LocationCollection = GetCollection(DBName, "locations")
		MessageCollection = GetCollection(DBName, "messages")
		ConsultationCollection = GetCollection(DBName, "consultations")

		log.Println("✅ MongoDB connected successfully")

		if err := EnsureIndexes(); err != nil {
			log.Fatal("❌ Failed to create indexes:", err)
		}
	})

	return connectErr
}

// EnsureIndexes creates the unique indexes the business rules rely on.
// Uniqueness has to live in the database, not in application-level checks,
// otherwise two concurrent creates can both pass the check and insert.
func EnsureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// one evaluation per (project, assessor)
	_, err := EvaluationCollection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "projectId", Value: 1}, {Key: "assessorId", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return err
	}

	// one application per (group post, applicant)
	_, err = ApplicationCollection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "groupPostId", Value: 1}, {Key: "applicantId", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return err
	}

	// QR code refs map 1:1 to locations
	_, err = LocationCollection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "qrCodeRef", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return err
	}

	// account emails are unique
	_, err = UserCollection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return err
	}

	// availability lookups for reservations
	_, err = ReservationCollection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "resourceName", Value: 1},
			{Key: "date", Value: 1},
			{Key: "startTime", Value: 1},
			{Key: "endTime", Value: 1},
		},
	})
	if err != nil {
		return err
	}

	log.Println("✅ MongoDB indexes ensured")
	return nil
}

// GetCollection returns a collection handle from the shared client.
func GetCollection(dbName, collectionName string) *mongo.Collection {
	if client == nil {
		log.Fatal("❌ MongoDB client is nil")
	}
	return client.Database(dbName).Collection(collectionName)
}
