package validation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"meetup_backend/model"
)

func validEvent(eventType string) model.Event {
	ev := model.Event{
		Title:          "Tech Conference 2023",
		Type:           eventType,
		Date:           time.Date(2023, time.July, 13, 0, 0, 0, 0, time.UTC),
		Time:           "09:00 AM - 05:00 PM",
		Image:          "https://picsum.photos/seed/techconf/400/300.jpg",
		HostedBy:       "Tech Innovators Inc.",
		TicketPrice:    150,
		Speakers:       []model.Speaker{{Name: "Alice Future", Title: "CEO of Tomorrow"}},
		Description:    "A full-day conference on the latest in technology.",
		Tags:           []string{"Technology"},
		DressCode:      "Business Formal",
		AgeRestriction: "18+",
	}
	if eventType == model.EventTypeOffline {
		ev.Venue = "Convention Center"
		ev.Address = "123 Main St, Tech City"
	}
	return ev
}

func violations(t *testing.T, err error) []string {
	t.Helper()
	require.Error(t, err)
	var vErr *Error
	require.ErrorAs(t, err, &vErr)
	return vErr.Violations
}

func TestValidEvents(t *testing.T) {
	online := validEvent(model.EventTypeOnline)
	assert.NoError(t, ValidateEvent(&online))

	offline := validEvent(model.EventTypeOffline)
	assert.NoError(t, ValidateEvent(&offline))
}

func TestZeroEventFails(t *testing.T) {
	got := violations(t, ValidateEvent(&model.Event{}))
	assert.NotEmpty(t, got)
}

func TestOnlineEventMayOmitVenueAndAddress(t *testing.T) {
	ev := validEvent(model.EventTypeOnline)
	ev.Venue = ""
	ev.Address = ""
	assert.NoError(t, ValidateEvent(&ev))
}

func TestOfflineEventRequiresVenueAndAddress(t *testing.T) {
	ev := validEvent(model.EventTypeOffline)
	ev.Venue = ""
	ev.Address = ""

	got := violations(t, ValidateEvent(&ev))
	assert.Contains(t, got, "Please add a venue for offline events")
	assert.Contains(t, got, "Please add an address for offline events")
}

func TestOfflineEventBlankVenueIsMissing(t *testing.T) {
	ev := validEvent(model.EventTypeOffline)
	ev.Venue = "   "

	got := violations(t, ValidateEvent(&ev))
	assert.Contains(t, got, "Please add a venue for offline events")
}

func TestTicketPrice(t *testing.T) {
	ev := validEvent(model.EventTypeOnline)
	ev.TicketPrice = -1
	got := violations(t, ValidateEvent(&ev))
	assert.Contains(t, got, "Ticket price cannot be negative")

	ev.TicketPrice = 0
	assert.NoError(t, ValidateEvent(&ev), "free events are allowed")
}

func TestInvalidType(t *testing.T) {
	ev := validEvent(model.EventTypeOnline)
	ev.Type = "Hybrid"
	got := violations(t, ValidateEvent(&ev))
	assert.Contains(t, got, "`Hybrid` is not a valid event type")

	ev.Type = ""
	got = violations(t, ValidateEvent(&ev))
	assert.Contains(t, got, "Please specify the event type")
}

func TestMissingRequiredFields(t *testing.T) {
	ev := validEvent(model.EventTypeOnline)
	ev.Title = ""
	ev.Date = time.Time{}
	ev.Description = ""

	got := violations(t, ValidateEvent(&ev))
	assert.Contains(t, got, "Please add an event title")
	assert.Contains(t, got, "Please add an event date")
	assert.Contains(t, got, "Please add a description for the event")
}

func TestTagsRequireAtLeastOneElement(t *testing.T) {
	ev := validEvent(model.EventTypeOnline)
	ev.Tags = []string{}
	got := violations(t, ValidateEvent(&ev))
	assert.Contains(t, got, "Please add at least one tag")

	ev.Tags = nil
	got = violations(t, ValidateEvent(&ev))
	assert.Contains(t, got, "Please add at least one tag")
}

func TestSpeakersNeedNameAndTitle(t *testing.T) {
	ev := validEvent(model.EventTypeOnline)
	ev.Speakers = []model.Speaker{{Name: "Alice Future"}, {Title: "CTO"}}

	got := violations(t, ValidateEvent(&ev))
	assert.Contains(t, got, "Please add a title for every speaker")
	assert.Contains(t, got, "Please add a name for every speaker")
}

func TestEmptySpeakerListIsFine(t *testing.T) {
	ev := validEvent(model.EventTypeOnline)
	ev.Speakers = []model.Speaker{}
	assert.NoError(t, ValidateEvent(&ev))
}
