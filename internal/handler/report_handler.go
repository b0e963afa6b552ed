package handler

import (
	"go-sari-pos/internal/export"
	"go-sari-pos/internal/model"
	"go-sari-pos/internal/report"
	"go-sari-pos/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ReportHandler struct {
	service service.ReportService
}

func NewReportHandler(s service.ReportService) *ReportHandler {
	return &ReportHandler{service: s}
}

func parsePeriod(c *fiber.Ctx) (report.Period, bool) {
	p := report.Period(c.Query("period", string(report.PeriodToday)))
	return p, report.ValidPeriod(p)
}

// GetProfitStatement returns the unified kita report:
// per-service fee totals, gross profit, expenses and net profit.
func (h *ReportHandler) GetProfitStatement(c *fiber.Ctx) error {
	period, ok := parsePeriod(c)
	if !ok {
		return c.Status(400).JSON(fiber.Map{"error": "period must be one of: today, week, month, year"})
	}

	statement, err := h.service.ProfitStatement(period)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to build profit statement"})
	}
	return c.JSON(statement)
}

func (h *ReportHandler) ExportProfitStatement(c *fiber.Ctx) error {
	period, ok := parsePeriod(c)
	if !ok {
		return c.Status(400).JSON(fiber.Map{"error": "period must be one of: today, week, month, year"})
	}

	statement, err := h.service.ProfitStatement(period)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to build profit statement"})
	}
	return writeCSV(c, "profit_"+string(period)+".csv", export.Statement(*statement))
}

// GetServiceSummary returns {gross, fees, count} for one service line.
func (h *ReportHandler) GetServiceSummary(c *fiber.Ctx) error {
	period, ok := parsePeriod(c)
	if !ok {
		return c.Status(400).JSON(fiber.Map{"error": "period must be one of: today, week, month, year"})
	}

	svc := model.ServiceType(c.Params("service"))
	switch svc {
	case model.ServiceLoad, model.ServiceEwallet, model.ServiceBills:
	default:
		return c.Status(400).JSON(fiber.Map{"error": "service must be one of: load, ewallet, bills"})
	}

	summary, err := h.service.ServiceSummary(svc, period)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to summarize"})
	}
	return c.JSON(summary)
}

func (h *ReportHandler) GetSalesSummary(c *fiber.Ctx) error {
	period, ok := parsePeriod(c)
	if !ok {
		return c.Status(400).JSON(fiber.Map{"error": "period must be one of: today, week, month, year"})
	}

	summary, err := h.service.SalesSummary(period)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to summarize"})
	}
	return c.JSON(summary)
}
