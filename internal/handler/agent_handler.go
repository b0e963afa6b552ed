package handler

import (
	"go-sari-pos/internal/export"
	"go-sari-pos/internal/model"
	"go-sari-pos/internal/service"

	"github.com/gofiber/fiber/v2"
)

// AgentHandler covers the sub-agent lines: load, e-wallet and bills.
type AgentHandler struct {
	service service.AgentService
}

func NewAgentHandler(s service.AgentService) *AgentHandler {
	return &AgentHandler{service: s}
}

type recordTransactionRequest struct {
	Service model.ServiceType `json:"service"`
	Subtype string            `json:"subtype"`
	Amount  float64           `json:"amount"`
}

func (h *AgentHandler) RecordTransaction(c *fiber.Ctx) error {
	var req recordTransactionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	record, err := h.service.RecordTransaction(req.Service, req.Subtype, req.Amount, getUserEmail(c))
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.Status(201).JSON(fiber.Map{"message": "Transaction recorded", "data": record})
}

func (h *AgentHandler) GetTransactions(c *fiber.Ctx) error {
	if svc := c.Query("service"); svc != "" {
		records, err := h.service.GetTransactionsByService(model.ServiceType(svc))
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
		}
		return c.JSON(records)
	}

	records, err := h.service.GetAllTransactions()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(records)
}

func (h *AgentHandler) ExportTransactions(c *fiber.Ctx) error {
	records, err := h.service.GetAllTransactions()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return writeCSV(c, "service_transactions.csv", export.ServiceTransactions(records))
}
