package handler

import (
	"go-sari-pos/internal/model"
	"go-sari-pos/internal/service"

	"github.com/gofiber/fiber/v2"
)

type CreditHandler struct {
	service service.CreditService
}

func NewCreditHandler(s service.CreditService) *CreditHandler {
	return &CreditHandler{service: s}
}

type grantCreditRequest struct {
	CustomerName string             `json:"customer_name"`
	Items        []model.CreditItem `json:"items"`
}

func (h *CreditHandler) GrantCredit(c *fiber.Ctx) error {
	var req grantCreditRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	credit, err := h.service.Grant(req.CustomerName, req.Items, getUserEmail(c))
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.Status(201).JSON(fiber.Map{"message": "Utang recorded", "data": credit})
}

func (h *CreditHandler) GetCredits(c *fiber.Ctx) error {
	credits, err := h.service.GetAllCredits()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(credits)
}

func (h *CreditHandler) MarkAsPaid(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid credit ID"})
	}

	credit, err := h.service.MarkAsPaid(id, getUserEmail(c))
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{"message": "Utang marked as paid", "data": credit})
}

func (h *CreditHandler) Unmark(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid credit ID"})
	}

	credit, err := h.service.Unmark(id, getUserEmail(c))
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{"message": "Utang reverted to unpaid", "data": credit})
}

func (h *CreditHandler) GetCustomers(c *fiber.Ctx) error {
	summaries, err := h.service.GetCustomerSummaries()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(summaries)
}

func (h *CreditHandler) GetTotalUnpaid(c *fiber.Ctx) error {
	total, err := h.service.GetTotalUnpaid()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(fiber.Map{"total_unpaid": total})
}
