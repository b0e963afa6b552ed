package handler

import (
	"time"

	"go-sari-pos/internal/model"
	"go-sari-pos/internal/service"

	"github.com/gofiber/fiber/v2"
)

type LiabilityHandler struct {
	service service.LiabilityService
}

func NewLiabilityHandler(s service.LiabilityService) *LiabilityHandler {
	return &LiabilityHandler{service: s}
}

type addLiabilityRequest struct {
	Type           string  `json:"type"`
	PersonInvolved string  `json:"person_involved"`
	Amount         float64 `json:"amount"`
	Description    string  `json:"description"`
	DueDate        string  `json:"due_date"`
}

func (h *LiabilityHandler) AddLiability(c *fiber.Ctx) error {
	var req addLiabilityRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	var dueDate *time.Time
	if req.DueDate != "" {
		parsed, err := time.ParseInLocation("2006-01-02", req.DueDate, time.Local)
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid due_date, expected YYYY-MM-DD"})
		}
		dueDate = &parsed
	}

	liability, err := h.service.AddLiability(req.Type, req.PersonInvolved, req.Amount, req.Description, dueDate, getUserEmail(c))
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.Status(201).JSON(fiber.Map{"message": "Liability recorded", "data": liability})
}

func (h *LiabilityHandler) GetLiabilities(c *fiber.Ctx) error {
	liabilities, err := h.service.GetAllLiabilities()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(liabilities)
}

type updateLiabilityStatusRequest struct {
	Status string `json:"status"`
}

func (h *LiabilityHandler) UpdateStatus(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid liability ID"})
	}

	var req updateLiabilityStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	liability, err := h.service.SetStatus(id, model.LiabilityStatus(req.Status), getUserEmail(c))
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{"message": "Liability status updated", "data": liability})
}

func (h *LiabilityHandler) GetTotalUnpaid(c *fiber.Ctx) error {
	total, err := h.service.GetTotalUnpaid()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(fiber.Map{"total_unpaid": total})
}
