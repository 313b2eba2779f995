package bookingRepo

import (
	"context"
	"fmt"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/black-sheep-marketing/blacksheep-calendar/database"
	"github.com/black-sheep-marketing/blacksheep-calendar/models"
)

// MongoBookingRepo implements BookingRepository using MongoDB. The unique
// index on the slot key (see indexes.go) is what makes Insert an atomic
// compare-and-insert.
type MongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo constructs the repository and ensures its indexes.
// Without the unique slot-key index the admission guarantee does not hold,
// so failing to create it is fatal.
func NewMongoBookingRepo() BookingRepository {
	db := database.MongoClient.Database("blacksheep")
	repo := &MongoBookingRepo{coll: db.Collection("bookings")}
	if err := repo.EnsureIndexes(); err != nil {
		log.Fatalf("failed to ensure booking indexes: %v", err)
	}
	return repo
}

func (repo *MongoBookingRepo) FindByKey(key models.TimeSlotKey) (*models.Booking, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	filter := bson.M{
		"key.date":   key.Date,
		"key.hour":   key.Hour,
		"key.minute": key.Minute,
	}
	var booking models.Booking
	if err := repo.coll.FindOne(ctx, filter).Decode(&booking); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("error fetching booking for key %s: %w", key, err)
	}
	return &booking, nil
}

func (repo *MongoBookingRepo) FindByID(id string) (*models.Booking, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var booking models.Booking
	if err := repo.coll.FindOne(ctx, bson.M{"id": id}).Decode(&booking); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("error fetching booking %s: %w", id, err)
	}
	return &booking, nil
}

func (repo *MongoBookingRepo) Insert(booking *models.Booking) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := repo.coll.InsertOne(ctx, booking); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrSlotTaken
		}
		return fmt.Errorf("error inserting booking: %w", err)
	}
	return nil
}

func (repo *MongoBookingRepo) SetExternalRefs(id, calendarEventID, meetLink string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"calendar_event_id": calendarEventID,
		"meet_link":         meetLink,
	}}
	result, err := repo.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("error updating external refs for booking %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("booking %s not found", id)
	}
	return nil
}

func (repo *MongoBookingRepo) All() ([]models.Booking, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := repo.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("error listing bookings: %w", err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	for cursor.Next(ctx) {
		var b models.Booking
		if err := cursor.Decode(&b); err != nil {
			return nil, fmt.Errorf("error decoding booking: %w", err)
		}
		bookings = append(bookings, b)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}
	return bookings, nil
}
