package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateEventDTODateFormats(t *testing.T) {
	price := 10.0

	d := CreateEventDTO{Date: "2023-07-13", TicketPrice: &price}
	ev, err := d.ToModel()
	require.NoError(t, err)
	assert.Equal(t, 13, ev.Date.Day())

	d.Date = "2023-07-13T09:00:00Z"
	ev, err = d.ToModel()
	require.NoError(t, err)
	assert.Equal(t, 9, ev.Date.Hour())

	d.Date = "13/07/2023"
	_, err = d.ToModel()
	assert.Error(t, err)
}

func TestCreateEventDTOZeroDatePassesThrough(t *testing.T) {
	price := 10.0
	ev, err := CreateEventDTO{TicketPrice: &price}.ToModel()
	require.NoError(t, err)
	assert.True(t, ev.Date.IsZero(), "validator reports the missing date")
}

func TestUpdateEventDTOToPatch(t *testing.T) {
	title := "renamed"
	date := "2024-01-02"

	patch, err := UpdateEventDTO{Title: &title, Date: &date}.ToPatch()
	require.NoError(t, err)

	require.NotNil(t, patch.Title)
	assert.Equal(t, "renamed", *patch.Title)
	require.NotNil(t, patch.Date)
	assert.Equal(t, 2024, patch.Date.Year())
	assert.Nil(t, patch.Venue)

	bad := "soon"
	_, err = UpdateEventDTO{Date: &bad}.ToPatch()
	assert.Error(t, err)
}
