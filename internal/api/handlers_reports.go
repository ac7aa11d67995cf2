package api

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/sambrend/nomer/internal/models"
	"github.com/sambrend/nomer/internal/services"
)

type reportInput struct {
	Summary string   `json:"summary" form:"summary"`
	Photos  []string `json:"photos" form:"photos"`
}

// CreateReport closes the user's working day. One report per day: the
// store would happily keep a second one, so the duplicate check lives
// here at the edge.
func (handler *Handler) CreateReport(c *fiber.Ctx) error {
	user, _ := currentUser(c)
	today := services.DayKey(handler.now(), handler.location)

	if _, reported := handler.store.ReportForDay(user.ID, today); reported {
		return apiError(c, fiber.StatusConflict, "report already submitted today")
	}

	input := reportInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	if strings.TrimSpace(input.Summary) == "" {
		return apiError(c, fiber.StatusBadRequest, "summary is required")
	}

	report := models.DailyReport{
		UserID:    user.ID,
		Date:      today,
		Summary:   strings.TrimSpace(input.Summary),
		Timestamp: handler.now(),
		Photos:    input.Photos,
	}
	if err := handler.store.AddReport(report); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to submit report")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"ok": true, "date": today})
}

func (handler *Handler) TodayReport(c *fiber.Ctx) error {
	user, _ := currentUser(c)
	today := services.DayKey(handler.now(), handler.location)

	report, found := handler.store.ReportForDay(user.ID, today)
	if !found {
		return c.JSON(fiber.Map{"date": today, "reported": false})
	}
	return c.JSON(fiber.Map{"date": today, "reported": true, "report": report})
}

// ListReports is the manager's reports feed, optionally narrowed to one
// day. Most recent first, as stored.
func (handler *Handler) ListReports(c *fiber.Ctx) error {
	dateFilter := strings.TrimSpace(c.Query("date"))

	snapshot := handler.store.Snapshot()
	reports := make([]models.DailyReport, 0, len(snapshot.Reports))
	for _, report := range snapshot.Reports {
		if dateFilter != "" && report.Date != dateFilter {
			continue
		}
		reports = append(reports, report)
	}
	return c.JSON(fiber.Map{"reports": reports})
}
