package api

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/sambrend/nomer/internal/models"
	"github.com/sambrend/nomer/internal/store"
)

// ListUsers returns every account, pending ones included, with
// credential hashes stripped.
func (handler *Handler) ListUsers(c *fiber.Ctx) error {
	snapshot := handler.store.Snapshot()

	users := make([]models.User, 0, len(snapshot.Users))
	pending := 0
	for _, user := range snapshot.Users {
		if !user.IsApproved {
			pending++
		}
		users = append(users, publicUser(user))
	}
	return c.JSON(fiber.Map{"users": users, "pendingCount": pending})
}

// ApproveUser lets a pending account in. Approving twice is harmless.
func (handler *Handler) ApproveUser(c *fiber.Ctx) error {
	userID := strings.TrimSpace(c.Params("id"))
	if _, found := handler.store.UserByID(userID); !found {
		return apiError(c, fiber.StatusNotFound, "user not found")
	}
	if err := handler.store.ApproveUser(userID); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to approve user")
	}
	return apiOK(c)
}

type workingHoursInput struct {
	WorkingHours string `json:"workingHours" form:"workingHours"`
}

// UpdateWorkingHours sets the schedule lateness is measured against.
// An empty value clears the schedule; lateness then stops applying.
func (handler *Handler) UpdateWorkingHours(c *fiber.Ctx) error {
	userID := strings.TrimSpace(c.Params("id"))
	if _, found := handler.store.UserByID(userID); !found {
		return apiError(c, fiber.StatusNotFound, "user not found")
	}

	input := workingHoursInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	workingHours := strings.TrimSpace(input.WorkingHours)
	if workingHours != "" && !strings.Contains(workingHours, "-") {
		return apiError(c, fiber.StatusBadRequest, "working hours must look like 09:00-18:00")
	}

	patch := store.UserPatch{WorkingHours: &workingHours}
	if err := handler.store.UpsertUserFields(userID, patch); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to update working hours")
	}
	return apiOK(c)
}
