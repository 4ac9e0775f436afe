package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"meetup_backend/internal/validation"
	"meetup_backend/model"
)

// ErrEventNotFound covers both an unknown id and a malformed one: a string
// that cannot be an ObjectID can never reference a stored event.
var ErrEventNotFound = errors.New("event not found")

type EventRepository struct {
	coll *mongo.Collection
}

func NewEventRepository(db *mongo.Database) *EventRepository {
	return &EventRepository{coll: db.Collection("events")}
}

// List returns events matching the type/search filter, oldest date first.
func (r *EventRepository) List(ctx context.Context, eventType, search string) ([]model.Event, error) {
	filter := BuildEventFilter(eventType, search)

	cursor, err := r.coll.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "date", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	events := []model.Event{}
	if err := cursor.All(ctx, &events); err != nil {
		return nil, err
	}
	return events, nil
}

func (r *EventRepository) Get(ctx context.Context, id string) (*model.Event, error) {
	oid, err := bson.ObjectIDFromHex(strings.TrimSpace(id))
	if err != nil {
		return nil, ErrEventNotFound
	}

	var ev model.Event
	err = r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&ev)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrEventNotFound
	}
	if err != nil {
		return nil, err
	}
	return &ev, nil
}

// Create validates and inserts a new event. The id and createdAt are
// assigned here, never taken from the caller.
func (r *EventRepository) Create(ctx context.Context, ev model.Event) (*model.Event, error) {
	normalize(&ev)
	ev.ID = bson.NewObjectID()
	ev.CreatedAt = time.Now().UTC()

	if err := validation.ValidateEvent(&ev); err != nil {
		return nil, err
	}

	if _, err := r.coll.InsertOne(ctx, ev); err != nil {
		return nil, err
	}
	return &ev, nil
}

// Update merges the patch onto the stored event, re-validates the merged
// document under the same rules as Create and replaces it.
func (r *EventRepository) Update(ctx context.Context, id string, patch model.EventPatch) (*model.Event, error) {
	current, err := r.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	merged := *current
	patch.Apply(&merged)
	normalize(&merged)

	if err := validation.ValidateEvent(&merged); err != nil {
		return nil, err
	}

	var updated model.Event
	err = r.coll.FindOneAndReplace(
		ctx,
		bson.M{"_id": current.ID},
		merged,
		options.FindOneAndReplace().SetReturnDocument(options.After),
	).Decode(&updated)
	if errors.Is(err, mongo.ErrNoDocuments) {
		// Deleted between the read and the write.
		return nil, ErrEventNotFound
	}
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (r *EventRepository) Delete(ctx context.Context, id string) error {
	oid, err := bson.ObjectIDFromHex(strings.TrimSpace(id))
	if err != nil {
		return ErrEventNotFound
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrEventNotFound
	}
	return nil
}

// ReplaceAll wipes the collection and inserts the given dataset. The whole
// dataset is validated up front so a bad fixture cannot leave the
// collection half seeded for a reason of our own making; an insert failure
// after the wipe still surfaces to the caller as a storage fault.
func (r *EventRepository) ReplaceAll(ctx context.Context, events []model.Event) ([]model.Event, error) {
	now := time.Now().UTC()
	docs := make([]interface{}, 0, len(events))
	for i := range events {
		normalize(&events[i])
		events[i].ID = bson.NewObjectID()
		events[i].CreatedAt = now
		if err := validation.ValidateEvent(&events[i]); err != nil {
			return nil, err
		}
		docs = append(docs, events[i])
	}

	if _, err := r.coll.DeleteMany(ctx, bson.M{}); err != nil {
		return nil, err
	}
	if _, err := r.coll.InsertMany(ctx, docs); err != nil {
		return nil, err
	}
	return events, nil
}

// normalize trims the title and fills the documented defaults.
func normalize(ev *model.Event) {
	ev.Title = strings.TrimSpace(ev.Title)
	if ev.DressCode == "" {
		ev.DressCode = model.DefaultDressCode
	}
	if ev.AgeRestriction == "" {
		ev.AgeRestriction = model.DefaultAgeRestriction
	}
	if ev.Speakers == nil {
		ev.Speakers = []model.Speaker{}
	}
}
