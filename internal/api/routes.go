package api

import "github.com/gofiber/fiber/v2"

// RegisterRoutes mounts the full JSON API on app.
func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/register", handler.Register)
	auth.Post("/login", handler.Login)
	auth.Post("/logout", handler.Logout)
	auth.Get("/session", handler.AuthRequired, handler.Session)

	// Everything below needs a session; most of it an approved account.
	approved := api.Group("", handler.AuthRequired, handler.ApprovedOnly)

	checkins := approved.Group("/checkins")
	checkins.Post("/", handler.CreateCheckIn)
	checkins.Patch("/today", handler.AmendTodayCheckIn)
	checkins.Get("/today", handler.TodayCheckIn)

	approved.Get("/companies", handler.ListCompanies)

	sales := approved.Group("/sales")
	sales.Post("/", handler.CreateSale)
	sales.Delete("/:id", handler.DeleteSale)
	sales.Get("/today", handler.TodaySales)

	reports := approved.Group("/reports")
	reports.Post("/", handler.CreateReport)
	reports.Get("/today", handler.TodayReport)

	views := approved.Group("/views")
	views.Get("/leaderboard", handler.Leaderboard)
	views.Get("/monitoring", handler.Monitoring)
	views.Get("/sales-chart", handler.SalesChart)

	manager := approved.Group("", handler.ManagerOnly)
	manager.Get("/users", handler.ListUsers)
	manager.Post("/users/:id/approve", handler.ApproveUser)
	manager.Patch("/users/:id/working-hours", handler.UpdateWorkingHours)
	manager.Get("/reports", handler.ListReports)
	manager.Get("/views/staff-status", handler.StaffStatuses)
	manager.Get("/views/overview", handler.Overview)
}
