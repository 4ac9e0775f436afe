package handlers

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"

	"meetup_backend/dto"
	"meetup_backend/internal/repository"
	"meetup_backend/internal/seed"
	"meetup_backend/internal/validation"
	"meetup_backend/model"
)

// EventStore is what the handlers need from the repository. Satisfied by
// *repository.EventRepository; faked in tests.
type EventStore interface {
	List(ctx context.Context, eventType, search string) ([]model.Event, error)
	Get(ctx context.Context, id string) (*model.Event, error)
	Create(ctx context.Context, ev model.Event) (*model.Event, error)
	Update(ctx context.Context, id string, patch model.EventPatch) (*model.Event, error)
	Delete(ctx context.Context, id string) error
	ReplaceAll(ctx context.Context, events []model.Event) ([]model.Event, error)
}

// ListEvents godoc
// @Summary      List events
// @Description  List all events, optionally filtered by type and a case-insensitive search over title, host and tags
// @Tags         events
// @Produce      json
// @Param        type    query     string  false  "Online, Offline or Both"
// @Param        search  query     string  false  "Substring to search for"
// @Success      200     {object}  dto.ListEventsResponse
// @Failure      500     {object}  dto.ErrorResponse
// @Router       /api/events [get]
func ListEvents(store EventStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		events, err := store.List(c.Context(), c.Query("type"), c.Query("search"))
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).
				JSON(dto.ErrorResponse{Message: err.Error()})
		}
		return c.JSON(dto.ListEventsResponse{
			Success: true,
			Count:   len(events),
			Data:    events,
		})
	}
}

// GetEvent godoc
// @Summary      Get one event
// @Tags         events
// @Produce      json
// @Param        id   path      string  true  "Event id"
// @Success      200  {object}  dto.EventResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/events/{id} [get]
func GetEvent(store EventStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ev, err := store.Get(c.Context(), c.Params("id"))
		switch {
		case errors.Is(err, repository.ErrEventNotFound):
			return c.Status(fiber.StatusNotFound).
				JSON(dto.ErrorResponse{Message: "Event not found"})
		case err != nil:
			return c.Status(fiber.StatusInternalServerError).
				JSON(dto.ErrorResponse{Message: err.Error()})
		}
		return c.JSON(dto.EventResponse{Success: true, Data: ev})
	}
}

// CreateEvent godoc
// @Summary      Create an event
// @Tags         events
// @Accept       json
// @Produce      json
// @Param        data  body      dto.CreateEventDTO  true  "Event payload"
// @Success      201   {object}  dto.EventResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/events [post]
func CreateEvent(store EventStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body dto.CreateEventDTO
		if err := c.BodyParser(&body); err != nil {
			return c.Status(fiber.StatusBadRequest).
				JSON(dto.ErrorResponse{Message: "invalid body"})
		}
		if body.TicketPrice == nil {
			return c.Status(fiber.StatusBadRequest).
				JSON(dto.ErrorResponse{Message: "Please add a ticket price"})
		}

		ev, err := body.ToModel()
		if err != nil {
			return c.Status(fiber.StatusBadRequest).
				JSON(dto.ErrorResponse{Message: err.Error()})
		}

		created, err := store.Create(c.Context(), ev)
		var vErr *validation.Error
		switch {
		case errors.As(err, &vErr):
			return c.Status(fiber.StatusBadRequest).
				JSON(dto.ErrorResponse{Message: vErr.Error()})
		case err != nil:
			return c.Status(fiber.StatusInternalServerError).
				JSON(dto.ErrorResponse{Message: err.Error()})
		}
		return c.Status(fiber.StatusCreated).
			JSON(dto.EventResponse{Success: true, Data: created})
	}
}

// UpdateEvent godoc
// @Summary      Update an event
// @Description  Partial update; the merged document is re-validated under the same rules as create
// @Tags         events
// @Accept       json
// @Produce      json
// @Param        id    path      string              true  "Event id"
// @Param        data  body      dto.UpdateEventDTO  true  "Fields to change"
// @Success      200   {object}  dto.EventResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/events/{id} [put]
func UpdateEvent(store EventStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body dto.UpdateEventDTO
		if err := c.BodyParser(&body); err != nil {
			return c.Status(fiber.StatusBadRequest).
				JSON(dto.ErrorResponse{Message: "invalid body"})
		}

		patch, err := body.ToPatch()
		if err != nil {
			return c.Status(fiber.StatusBadRequest).
				JSON(dto.ErrorResponse{Message: err.Error()})
		}

		updated, err := store.Update(c.Context(), c.Params("id"), patch)
		var vErr *validation.Error
		switch {
		case errors.Is(err, repository.ErrEventNotFound):
			return c.Status(fiber.StatusNotFound).
				JSON(dto.ErrorResponse{Message: "Event not found"})
		case errors.As(err, &vErr):
			return c.Status(fiber.StatusBadRequest).
				JSON(dto.ErrorResponse{Message: vErr.Error()})
		case err != nil:
			return c.Status(fiber.StatusInternalServerError).
				JSON(dto.ErrorResponse{Message: err.Error()})
		}
		return c.JSON(dto.EventResponse{Success: true, Data: updated})
	}
}

// DeleteEvent godoc
// @Summary      Delete an event
// @Tags         events
// @Produce      json
// @Param        id   path      string  true  "Event id"
// @Success      200  {object}  dto.DeleteResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/events/{id} [delete]
func DeleteEvent(store EventStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		err := store.Delete(c.Context(), c.Params("id"))
		switch {
		case errors.Is(err, repository.ErrEventNotFound):
			return c.Status(fiber.StatusNotFound).
				JSON(dto.ErrorResponse{Message: "Event not found"})
		case err != nil:
			return c.Status(fiber.StatusInternalServerError).
				JSON(dto.ErrorResponse{Message: err.Error()})
		}
		return c.JSON(dto.DeleteResponse{Success: true})
	}
}

// SeedEvents godoc
// @Summary      Reset the catalog to the demonstration dataset
// @Description  Deletes every stored event and inserts the fixed sample set
// @Tags         events
// @Produce      json
// @Success      201  {object}  dto.ListEventsResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/events/seed [post]
func SeedEvents(store EventStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		inserted, err := store.ReplaceAll(c.Context(), seed.Events())
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).
				JSON(dto.ErrorResponse{Message: err.Error()})
		}
		return c.Status(fiber.StatusCreated).JSON(dto.ListEventsResponse{
			Success: true,
			Count:   len(inserted),
			Data:    inserted,
		})
	}
}
