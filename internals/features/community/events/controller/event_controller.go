package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"weonamission_backend/internals/features/community/events/dto"
	"weonamission_backend/internals/features/community/events/model"
	helper "weonamission_backend/internals/helpers"
	helperAuth "weonamission_backend/internals/helpers/auth"
)

type EventController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewEventController(db *gorm.DB) *EventController {
	return &EventController{DB: db, Validate: validator.New()}
}

func (ec *EventController) findScopedEvent(c *fiber.Ctx, id uuid.UUID) (*model.EventModel, error) {
	churchID, err := helperAuth.GetActiveChurchID(c)
	if err != nil {
		return nil, helper.JsonError(c, fiber.StatusBadRequest, "Church context missing")
	}
	var ev model.EventModel
	if err := ec.DB.
		Where("event_id = ? AND event_church_id = ?", id, churchID).
		First(&ev).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.JsonError(c, fiber.StatusNotFound, "Event not found")
		}
		return nil, helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}
	return &ev, nil
}

// GET /api/u/events?category= — non-admins only see calendar-visible events.
func (ec *EventController) ListEvents(c *fiber.Ctx) error {
	churchID, err := helperAuth.GetActiveChurchID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Church context missing")
	}

	p := helper.ParsePage(c, "starts_at", "asc")
	order, err := p.SafeOrderClause(map[string]string{
		"starts_at": "event_starts_at",
		"name":      "event_name",
		"category":  "event_category",
	}, "starts_at")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	q := ec.DB.Model(&model.EventModel{}).Where("event_church_id = ?", churchID)
	if !helper.IsAdmin(c) {
		q = q.Where("event_show_on_calendar = TRUE")
	}
	if cat := c.Query("category"); cat != "" {
		q = q.Where("event_category = ?", cat)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}
	var rows []model.EventModel
	if err := q.Order(order).Limit(p.Limit()).Offset(p.Offset()).Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}
	return helper.JsonSuccess(c, "OK", fiber.Map{
		"events":     dto.ToEventResponses(rows),
		"pagination": helper.BuildPageMeta(total, p),
	})
}

// GET /api/u/events/:id
func (ec *EventController) GetEvent(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid event id")
	}
	ev, ferr := ec.findScopedEvent(c, id)
	if ferr != nil {
		return ferr
	}
	if !ev.EventShowOnCalendar && !helper.IsAdmin(c) {
		return helper.JsonError(c, fiber.StatusNotFound, "Event not found")
	}
	return helper.JsonSuccess(c, "OK", dto.ToEventResponse(*ev))
}

// POST /api/a/events
func (ec *EventController) CreateEvent(c *fiber.Ctx) error {
	var req dto.CreateEventRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ec.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}
	churchID, err := helperAuth.GetActiveChurchID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Church context missing")
	}

	show := true
	if req.ShowOnCalendar != nil {
		show = *req.ShowOnCalendar
	}
	ev := model.EventModel{
		EventChurchID:       churchID,
		EventName:           req.Name,
		EventDescription:    req.Description,
		EventStartsAt:       req.StartsAt,
		EventLocation:       req.Location,
		EventCategory:       req.Category,
		EventShowOnCalendar: show,
	}
	if err := ec.DB.Create(&ev).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create event")
	}
	return helper.JsonSuccessWithCode(c, fiber.StatusCreated, "Event created", dto.ToEventResponse(ev))
}

// PUT /api/a/events/:id
func (ec *EventController) UpdateEvent(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid event id")
	}
	ev, ferr := ec.findScopedEvent(c, id)
	if ferr != nil {
		return ferr
	}

	var req dto.UpdateEventRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ec.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	if req.Name != nil {
		ev.EventName = *req.Name
	}
	if req.Description != nil {
		ev.EventDescription = *req.Description
	}
	if req.StartsAt != nil {
		ev.EventStartsAt = *req.StartsAt
	}
	if req.Location != nil {
		ev.EventLocation = *req.Location
	}
	if req.Category != nil {
		ev.EventCategory = *req.Category
	}
	if req.ShowOnCalendar != nil {
		ev.EventShowOnCalendar = *req.ShowOnCalendar
	}
	if err := ec.DB.Save(ev).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update event")
	}
	return helper.JsonSuccess(c, "Event updated", dto.ToEventResponse(*ev))
}

// DELETE /api/a/events/:id
func (ec *EventController) DeleteEvent(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid event id")
	}
	ev, ferr := ec.findScopedEvent(c, id)
	if ferr != nil {
		return ferr
	}
	if err := ec.DB.Delete(ev).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete event")
	}
	return helper.JsonSuccess(c, "Event removed", nil)
}
