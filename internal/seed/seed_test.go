package seed

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"meetup_backend/internal/validation"
	"meetup_backend/model"
)

func TestFixtureSatisfiesSchema(t *testing.T) {
	events := Events()
	require.NotEmpty(t, events)

	for i := range events {
		assert.NoError(t, validation.ValidateEvent(&events[i]), "event %q", events[i].Title)
	}
}

func TestFixtureShape(t *testing.T) {
	events := Events()

	assert.GreaterOrEqual(t, len(events), 4)
	assert.LessOrEqual(t, len(events), 7)

	var online, offline, free, noSpeakers int
	for _, ev := range events {
		switch ev.Type {
		case model.EventTypeOnline:
			online++
		case model.EventTypeOffline:
			offline++
		}
		if ev.TicketPrice == 0 {
			free++
		}
		if len(ev.Speakers) == 0 {
			noSpeakers++
		}
	}

	assert.NotZero(t, online, "fixture should include online events")
	assert.NotZero(t, offline, "fixture should include offline events")
	assert.NotZero(t, free, "fixture should include a free event")
	assert.NotZero(t, noSpeakers, "fixture should include an event with no speakers")
}

func TestFixtureIsAFreshCopy(t *testing.T) {
	a := Events()
	a[0].Title = "mutated"
	b := Events()
	assert.Equal(t, "Tech Conference 2023", b[0].Title)
}

func TestOfflineFixtureEventsHaveVenueAndAddress(t *testing.T) {
	for _, ev := range Events() {
		if ev.Type == model.EventTypeOffline {
			assert.NotEmpty(t, ev.Venue, "event %q", ev.Title)
			assert.NotEmpty(t, ev.Address, "event %q", ev.Title)
		}
	}
}
