package api

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sambrend/nomer/internal/models"
	"github.com/sambrend/nomer/internal/services"
)

type saleInput struct {
	Company string `json:"company" form:"company"`
	Tariff  string `json:"tariff" form:"tariff"`
	Count   int    `json:"count" form:"count"`
	Bonus   int    `json:"bonus" form:"bonus"`
}

// CreateSale records units sold today. A sale for an existing
// (user, date, company, tariff) tuple merges into the prior record
// instead of adding a row.
func (handler *Handler) CreateSale(c *fiber.Ctx) error {
	user, _ := currentUser(c)

	input := saleInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	if !models.KnownCompany(strings.TrimSpace(input.Company)) {
		return apiError(c, fiber.StatusBadRequest, "unknown company")
	}
	if strings.TrimSpace(input.Tariff) == "" {
		return apiError(c, fiber.StatusBadRequest, "tariff is required")
	}
	if input.Count < 1 {
		return apiError(c, fiber.StatusBadRequest, "count must be at least 1")
	}
	if input.Bonus < 0 {
		return apiError(c, fiber.StatusBadRequest, "bonus must not be negative")
	}

	now := handler.now()
	sale := models.SimSale{
		ID:        uuid.NewString(),
		UserID:    user.ID,
		Date:      services.DayKey(now, handler.location),
		Company:   strings.TrimSpace(input.Company),
		Tariff:    strings.TrimSpace(input.Tariff),
		Count:     input.Count,
		Bonus:     input.Bonus,
		Timestamp: now,
	}
	if err := handler.store.AddSale(sale); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to record sale")
	}

	return c.Status(fiber.StatusCreated).JSON(handler.todaySalesPayload(user))
}

func (handler *Handler) DeleteSale(c *fiber.Ctx) error {
	user, _ := currentUser(c)
	saleID := strings.TrimSpace(c.Params("id"))
	if saleID == "" {
		return apiError(c, fiber.StatusBadRequest, "sale id is required")
	}

	// Operators may only remove their own rows; managers may remove any.
	if !user.IsManager() {
		owned := false
		for _, sale := range handler.store.Snapshot().Sales {
			if sale.ID == saleID && sale.UserID == user.ID {
				owned = true
				break
			}
		}
		if !owned {
			return apiError(c, fiber.StatusNotFound, "sale not found")
		}
	}

	if err := handler.store.RemoveSale(saleID); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to remove sale")
	}
	return apiOK(c)
}

// ListCompanies serves the SIM brand catalog the sale form offers.
func (handler *Handler) ListCompanies(c *fiber.Ctx) error {
	catalog := models.DefaultCompanies()
	companies := make([]fiber.Map, 0, len(catalog))
	for _, company := range catalog {
		companies = append(companies, fiber.Map{
			"name":  company.Name,
			"color": company.Color,
		})
	}
	return c.JSON(fiber.Map{"companies": companies})
}

func (handler *Handler) TodaySales(c *fiber.Ctx) error {
	user, _ := currentUser(c)
	return c.JSON(handler.todaySalesPayload(user))
}

func (handler *Handler) todaySalesPayload(user models.User) fiber.Map {
	today := services.DayKey(handler.now(), handler.location)
	sales := handler.store.SalesForUserDate(user.ID, today)

	total := 0
	for _, sale := range sales {
		total += sale.Total()
	}
	return fiber.Map{
		"date":  today,
		"sales": sales,
		"total": total,
	}
}
