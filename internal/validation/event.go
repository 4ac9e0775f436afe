package validation

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"meetup_backend/model"
)

var validate = validator.New()

// Error lists every constraint an event payload violated.
type Error struct {
	Violations []string
}

func (e *Error) Error() string {
	return strings.Join(e.Violations, ", ")
}

// ValidateEvent runs the structural field checks and then the cross-field
// rule (venue/address are required for Offline events). All violations are
// collected into a single *Error so the client sees the full list at once.
func ValidateEvent(ev *model.Event) error {
	var violations []string

	if err := validate.Struct(ev); err != nil {
		fieldErrs, ok := err.(validator.ValidationErrors)
		if !ok {
			return err
		}
		for _, fe := range fieldErrs {
			violations = append(violations, message(fe, ev))
		}
	}

	// Conditional requirement: offline events happen somewhere.
	if ev.Type == model.EventTypeOffline {
		if strings.TrimSpace(ev.Venue) == "" {
			violations = append(violations, "Please add a venue for offline events")
		}
		if strings.TrimSpace(ev.Address) == "" {
			violations = append(violations, "Please add an address for offline events")
		}
	}

	if len(violations) > 0 {
		return &Error{Violations: violations}
	}
	return nil
}

func message(fe validator.FieldError, ev *model.Event) string {
	ns := fe.StructNamespace() // e.g. Event.Speakers[0].Title
	if strings.Contains(ns, "Speakers[") {
		if strings.HasSuffix(ns, ".Name") {
			return "Please add a name for every speaker"
		}
		return "Please add a title for every speaker"
	}
	if strings.HasPrefix(fe.StructField(), "Tags") {
		return "Please add at least one tag"
	}

	switch fe.StructField() {
	case "Title":
		return "Please add an event title"
	case "Type":
		if fe.Tag() == "oneof" {
			return fmt.Sprintf("`%s` is not a valid event type", ev.Type)
		}
		return "Please specify the event type"
	case "Date":
		return "Please add an event date"
	case "Time":
		return "Please add an event time"
	case "Image":
		return "Please add an image URL for the event"
	case "HostedBy":
		return "Please add who is hosting the event"
	case "TicketPrice":
		return "Ticket price cannot be negative"
	case "Description":
		return "Please add a description for the event"
	}
	return fmt.Sprintf("%s is invalid", fe.Field())
}
