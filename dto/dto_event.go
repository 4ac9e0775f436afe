package dto

import (
	"fmt"
	"time"

	"meetup_backend/model"
)

// Dates arrive from the frontend either as a plain day or a full RFC 3339
// timestamp.
var dateLayouts = []string{time.RFC3339, "2006-01-02"}

func parseDate(s string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("`%s` is not a valid event date", s)
}

// ===== Requests =====

type CreateEventDTO struct {
	Title          string          `json:"title"          example:"Tech Conference 2023"`
	Type           string          `json:"type"           example:"Offline"`
	Date           string          `json:"date"           example:"2023-07-13"`
	Time           string          `json:"time"           example:"09:00 AM - 05:00 PM"`
	Image          string          `json:"image"          example:"https://picsum.photos/seed/techconf/400/300.jpg"`
	HostedBy       string          `json:"hostedBy"       example:"Tech Innovators Inc."`
	Venue          string          `json:"venue,omitempty"   example:"Convention Center"`
	Address        string          `json:"address,omitempty" example:"123 Main St, Tech City"`
	TicketPrice    *float64        `json:"ticketPrice"    example:"150"`
	Speakers       []model.Speaker `json:"speakers"`
	Description    string          `json:"description"    example:"A full-day conference on the latest in technology."`
	Tags           []string        `json:"tags"           example:"Technology,Networking"`
	DressCode      string          `json:"dressCode"      example:"Business Formal"`
	AgeRestriction string          `json:"ageRestriction" example:"18+"`
}

// ToModel converts the request body into a storable event. A zero date is
// passed through as-is so the validator reports it alongside the other
// missing fields.
func (d CreateEventDTO) ToModel() (model.Event, error) {
	ev := model.Event{
		Title:          d.Title,
		Type:           d.Type,
		Time:           d.Time,
		Image:          d.Image,
		HostedBy:       d.HostedBy,
		Venue:          d.Venue,
		Address:        d.Address,
		Speakers:       d.Speakers,
		Description:    d.Description,
		Tags:           d.Tags,
		DressCode:      d.DressCode,
		AgeRestriction: d.AgeRestriction,
	}
	if d.TicketPrice != nil {
		ev.TicketPrice = *d.TicketPrice
	}
	if d.Date != "" {
		t, err := parseDate(d.Date)
		if err != nil {
			return model.Event{}, err
		}
		ev.Date = t
	}
	return ev, nil
}

// UpdateEventDTO is a partial update; absent fields keep their stored value.
type UpdateEventDTO struct {
	Title          *string          `json:"title"`
	Type           *string          `json:"type"`
	Date           *string          `json:"date"`
	Time           *string          `json:"time"`
	Image          *string          `json:"image"`
	HostedBy       *string          `json:"hostedBy"`
	Venue          *string          `json:"venue"`
	Address        *string          `json:"address"`
	TicketPrice    *float64         `json:"ticketPrice"`
	Speakers       *[]model.Speaker `json:"speakers"`
	Description    *string          `json:"description"`
	Tags           *[]string        `json:"tags"`
	DressCode      *string          `json:"dressCode"`
	AgeRestriction *string          `json:"ageRestriction"`
}

func (d UpdateEventDTO) ToPatch() (model.EventPatch, error) {
	patch := model.EventPatch{
		Title:          d.Title,
		Type:           d.Type,
		Time:           d.Time,
		Image:          d.Image,
		HostedBy:       d.HostedBy,
		Venue:          d.Venue,
		Address:        d.Address,
		TicketPrice:    d.TicketPrice,
		Speakers:       d.Speakers,
		Description:    d.Description,
		Tags:           d.Tags,
		DressCode:      d.DressCode,
		AgeRestriction: d.AgeRestriction,
	}
	if d.Date != nil {
		t, err := parseDate(*d.Date)
		if err != nil {
			return model.EventPatch{}, err
		}
		patch.Date = &t
	}
	return patch, nil
}
