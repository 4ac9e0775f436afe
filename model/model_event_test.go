package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/v2/bson"
)

func TestEventPatchApply(t *testing.T) {
	created := time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC)
	ev := Event{
		ID:          bson.NewObjectID(),
		Title:       "Design Workshop",
		Type:        EventTypeOffline,
		Venue:       "Art Studio",
		Address:     "456 Creative Lane",
		TicketPrice: 75,
		CreatedAt:   created,
	}
	id := ev.ID

	title := "Design Workshop 2024"
	price := 80.0
	EventPatch{Title: &title, TicketPrice: &price}.Apply(&ev)

	assert.Equal(t, "Design Workshop 2024", ev.Title)
	assert.Equal(t, 80.0, ev.TicketPrice)

	// Untouched fields keep their values; id and createdAt are immutable.
	assert.Equal(t, "Art Studio", ev.Venue)
	assert.Equal(t, EventTypeOffline, ev.Type)
	assert.Equal(t, id, ev.ID)
	assert.Equal(t, created, ev.CreatedAt)
}

func TestEventPatchApplyCanClearOptionalFields(t *testing.T) {
	ev := Event{Type: EventTypeOffline, Venue: "Somewhere", Address: "Some St"}

	online := EventTypeOnline
	empty := ""
	EventPatch{Type: &online, Venue: &empty, Address: &empty}.Apply(&ev)

	assert.Equal(t, EventTypeOnline, ev.Type)
	assert.Empty(t, ev.Venue)
	assert.Empty(t, ev.Address)
}
