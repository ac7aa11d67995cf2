package api

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/sambrend/nomer/internal/models"
	"github.com/sambrend/nomer/internal/services"
	"github.com/sambrend/nomer/internal/store"
)

type checkInInput struct {
	Lat   float64 `json:"lat" form:"lat"`
	Lng   float64 `json:"lng" form:"lng"`
	Photo string  `json:"photo" form:"photo"`
}

// CreateCheckIn opens the user's working day. The photo blob and the
// coordinates come from the client as-is; acquiring them is the
// client's problem.
func (handler *Handler) CreateCheckIn(c *fiber.Ctx) error {
	user, _ := currentUser(c)

	input := checkInInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	if strings.TrimSpace(input.Photo) == "" {
		return apiError(c, fiber.StatusBadRequest, "photo is required")
	}

	entry := models.CheckIn{
		UserID:    user.ID,
		Timestamp: handler.now(),
		Location:  models.GeoPoint{Lat: input.Lat, Lng: input.Lng},
		Photo:     input.Photo,
	}
	if err := handler.store.AddCheckIn(entry); err != nil {
		if errors.Is(err, store.ErrCheckInExists) {
			return apiError(c, fiber.StatusConflict, "already checked in today")
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to record check-in")
	}

	return c.Status(fiber.StatusCreated).JSON(handler.todayCheckInPayload(user))
}

// AmendTodayCheckIn replaces location and/or photo on today's check-in.
// Amendment is allowed only while the day is still open: a filed report
// closes it.
func (handler *Handler) AmendTodayCheckIn(c *fiber.Ctx) error {
	user, _ := currentUser(c)
	today := services.DayKey(handler.now(), handler.location)

	if _, found := handler.store.CheckInForDay(user.ID, today); !found {
		return apiError(c, fiber.StatusNotFound, "no check-in today")
	}
	if _, reported := handler.store.ReportForDay(user.ID, today); reported {
		return apiError(c, fiber.StatusConflict, "day already closed")
	}

	input := checkInInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	patch := store.CheckInPatch{}
	if input.Lat != 0 || input.Lng != 0 {
		patch.Location = &models.GeoPoint{Lat: input.Lat, Lng: input.Lng}
	}
	if strings.TrimSpace(input.Photo) != "" {
		photo := input.Photo
		patch.Photo = &photo
	}
	if patch.Location == nil && patch.Photo == nil {
		return apiError(c, fiber.StatusBadRequest, "nothing to amend")
	}

	if err := handler.store.AmendCheckIn(user.ID, today, patch); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to amend check-in")
	}
	return c.JSON(handler.todayCheckInPayload(user))
}

// TodayCheckIn returns today's attendance state: the check-in if any,
// its lateness against the user's working hours, and whether the day is
// already closed by a report.
func (handler *Handler) TodayCheckIn(c *fiber.Ctx) error {
	user, _ := currentUser(c)
	return c.JSON(handler.todayCheckInPayload(user))
}

func (handler *Handler) todayCheckInPayload(user models.User) fiber.Map {
	today := services.DayKey(handler.now(), handler.location)

	payload := fiber.Map{
		"date":      today,
		"checkedIn": false,
		"dayClosed": false,
	}
	checkIn, found := handler.store.CheckInForDay(user.ID, today)
	if found {
		payload["checkedIn"] = true
		payload["checkIn"] = checkIn
		payload["lateness"] = services.EvaluateLateness(checkIn.Timestamp, user.WorkingHours, handler.location)
	}
	if report, reported := handler.store.ReportForDay(user.ID, today); reported {
		payload["dayClosed"] = true
		payload["reportedAt"] = report.Timestamp
	}
	return payload
}
