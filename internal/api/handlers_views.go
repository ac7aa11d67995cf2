package api

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/sambrend/nomer/internal/services"
)

// Leaderboard ranks non-manager staff by their trailing 30-day totals.
func (handler *Handler) Leaderboard(c *fiber.Ctx) error {
	snapshot := handler.store.Snapshot()
	board := services.BuildLeaderboard(snapshot.Users, snapshot.Sales, handler.now(), handler.location)

	for index := range board.TopThree {
		board.TopThree[index].User = publicUser(board.TopThree[index].User)
	}
	for index := range board.Others {
		board.Others[index].User = publicUser(board.Others[index].User)
	}
	return c.JSON(board)
}

// Monitoring is the operator's own discipline panel: 30-day stats,
// per-timeframe sales totals and the trailing-week series.
func (handler *Handler) Monitoring(c *fiber.Ctx) error {
	user, _ := currentUser(c)
	snapshot := handler.store.Snapshot()
	now := handler.now()

	stats := services.BuildMonitoringStats(snapshot.Sales, snapshot.CheckIns, user, now, handler.location)
	series := services.TrailingWeekSeries(snapshot.Sales, user.ID, now, handler.location)
	totals := fiber.Map{
		"today": services.UserSalesTotal(snapshot.Sales, user.ID, services.TotalsToday, now, handler.location),
		"week":  services.UserSalesTotal(snapshot.Sales, user.ID, services.TotalsWeek, now, handler.location),
		"month": services.UserSalesTotal(snapshot.Sales, user.ID, services.TotalsMonth, now, handler.location),
		"all":   services.UserSalesTotal(snapshot.Sales, user.ID, services.TotalsAll, now, handler.location),
	}

	return c.JSON(fiber.Map{
		"stats":  stats,
		"series": series,
		"totals": totals,
	})
}

// StaffStatuses is the manager's live map feed: presence state, last
// known location and lateness per approved operator.
func (handler *Handler) StaffStatuses(c *fiber.Ctx) error {
	snapshot := handler.store.Snapshot()
	today := services.DayKey(handler.now(), handler.location)

	statuses := services.BuildStaffStatuses(snapshot.Users, snapshot.CheckIns, snapshot.Reports, today, handler.location)
	for index := range statuses {
		statuses[index].User = publicUser(statuses[index].User)
	}
	return c.JSON(fiber.Map{"date": today, "staff": statuses})
}

// Overview is the manager dashboard header: today's units, the all-time
// total, and headcounts.
func (handler *Handler) Overview(c *fiber.Ctx) error {
	snapshot := handler.store.Snapshot()
	today := services.DayKey(handler.now(), handler.location)

	todayTotal := 0
	allTimeTotal := 0
	for _, sale := range snapshot.Sales {
		allTimeTotal += sale.Total()
		if sale.Date == today {
			todayTotal += sale.Total()
		}
	}

	operators := 0
	pending := 0
	for _, user := range snapshot.Users {
		if !user.IsApproved {
			pending++
			continue
		}
		if !user.IsManager() {
			operators++
		}
	}

	return c.JSON(fiber.Map{
		"date":          today,
		"todayTotal":    todayTotal,
		"allTimeTotal":  allTimeTotal,
		"operatorCount": operators,
		"pendingCount":  pending,
	})
}

// SalesChart serves the per-user week/month/year chart. Managers may
// chart anyone; other roles only themselves.
func (handler *Handler) SalesChart(c *fiber.Ctx) error {
	user, _ := currentUser(c)

	targetUserID := strings.TrimSpace(c.Query("userId"))
	if targetUserID == "" {
		targetUserID = user.ID
	}
	if targetUserID != user.ID && !user.IsManager() {
		return apiError(c, fiber.StatusForbidden, "manager only")
	}

	timeframe := strings.TrimSpace(c.Query("timeframe", services.TimeframeWeek))
	if !services.ValidTimeframe(timeframe) {
		return apiError(c, fiber.StatusBadRequest, "unknown timeframe")
	}

	now := handler.now()
	options := services.ChartOptions{
		Year:        queryInt(c, "year", now.Year()),
		WeekOffset:  queryInt(c, "weekOffset", 0),
		MonthOffset: queryInt(c, "monthOffset", 0),
	}

	snapshot := handler.store.Snapshot()
	buckets := services.SalesChart(snapshot.Sales, targetUserID, timeframe, options, now, handler.location)
	return c.JSON(fiber.Map{
		"userId":    targetUserID,
		"timeframe": timeframe,
		"buckets":   buckets,
	})
}

func queryInt(c *fiber.Ctx, name string, fallback int) int {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return value
}
