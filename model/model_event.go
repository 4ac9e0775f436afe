package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Event types accepted by the catalog.
const (
	EventTypeOnline  = "Online"
	EventTypeOffline = "Offline"

	// EventTypeBoth is only a query sentinel, never a stored value.
	EventTypeBoth = "Both"
)

// Defaults applied on create when the field is left empty.
const (
	DefaultDressCode      = "Casual"
	DefaultAgeRestriction = "None"
)

type Speaker struct {
	Name  string `json:"name"  bson:"name"  validate:"required"`
	Title string `json:"title" bson:"title" validate:"required"`
}

// Event is the stored document. BSON field names stay camelCase so the
// collection remains readable by the existing frontend.
type Event struct {
	ID             bson.ObjectID `json:"id"             bson:"_id,omitempty"`
	Title          string        `json:"title"          bson:"title"          validate:"required"`
	Type           string        `json:"type"           bson:"type"           validate:"required,oneof=Online Offline"`
	Date           time.Time     `json:"date"           bson:"date"           validate:"required"`
	Time           string        `json:"time"           bson:"time"           validate:"required"`
	Image          string        `json:"image"          bson:"image"          validate:"required"`
	HostedBy       string        `json:"hostedBy"       bson:"hostedBy"       validate:"required"`
	Venue          string        `json:"venue,omitempty"   bson:"venue,omitempty"`
	Address        string        `json:"address,omitempty" bson:"address,omitempty"`
	TicketPrice    float64       `json:"ticketPrice"    bson:"ticketPrice"    validate:"gte=0"`
	Speakers       []Speaker     `json:"speakers"       bson:"speakers"       validate:"dive"`
	Description    string        `json:"description"    bson:"description"    validate:"required"`
	Tags           []string      `json:"tags"           bson:"tags"           validate:"required,min=1,dive,required"`
	DressCode      string        `json:"dressCode"      bson:"dressCode"`
	AgeRestriction string        `json:"ageRestriction" bson:"ageRestriction"`
	CreatedAt      time.Time     `json:"createdAt"      bson:"createdAt"`
}

// EventPatch is a partial update: nil means "keep the stored value".
// The merged document is re-validated before it is written back.
type EventPatch struct {
	Title          *string    `json:"title"`
	Type           *string    `json:"type"`
	Date           *time.Time `json:"date"`
	Time           *string    `json:"time"`
	Image          *string    `json:"image"`
	HostedBy       *string    `json:"hostedBy"`
	Venue          *string    `json:"venue"`
	Address        *string    `json:"address"`
	TicketPrice    *float64   `json:"ticketPrice"`
	Speakers       *[]Speaker `json:"speakers"`
	Description    *string    `json:"description"`
	Tags           *[]string  `json:"tags"`
	DressCode      *string    `json:"dressCode"`
	AgeRestriction *string    `json:"ageRestriction"`
}

// Apply merges the patch onto ev field by field. ID and CreatedAt are
// immutable and never touched.
func (p EventPatch) Apply(ev *Event) {
	if p.Title != nil {
		ev.Title = *p.Title
	}
	if p.Type != nil {
		ev.Type = *p.Type
	}
	if p.Date != nil {
		ev.Date = *p.Date
	}
	if p.Time != nil {
		ev.Time = *p.Time
	}
	if p.Image != nil {
		ev.Image = *p.Image
	}
	if p.HostedBy != nil {
		ev.HostedBy = *p.HostedBy
	}
	if p.Venue != nil {
		ev.Venue = *p.Venue
	}
	if p.Address != nil {
		ev.Address = *p.Address
	}
	if p.TicketPrice != nil {
		ev.TicketPrice = *p.TicketPrice
	}
	if p.Speakers != nil {
		ev.Speakers = *p.Speakers
	}
	if p.Description != nil {
		ev.Description = *p.Description
	}
	if p.Tags != nil {
		ev.Tags = *p.Tags
	}
	if p.DressCode != nil {
		ev.DressCode = *p.DressCode
	}
	if p.AgeRestriction != nil {
		ev.AgeRestriction = *p.AgeRestriction
	}
}
