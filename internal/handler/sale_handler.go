package handler

import (
	"go-sari-pos/internal/export"
	"go-sari-pos/internal/model"
	"go-sari-pos/internal/service"

	"github.com/gofiber/fiber/v2"
)

type SaleHandler struct {
	service service.POSService
}

func NewSaleHandler(s service.POSService) *SaleHandler {
	return &SaleHandler{service: s}
}

type checkoutRequest struct {
	Lines         []service.CartLine  `json:"lines"`
	PaymentMethod model.PaymentMethod `json:"payment_method"`
}

func (h *SaleHandler) Checkout(c *fiber.Ctx) error {
	var req checkoutRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	sales, err := h.service.Checkout(req.Lines, req.PaymentMethod, getUserEmail(c))
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.Status(201).JSON(fiber.Map{"message": "Sale recorded", "data": sales})
}

func (h *SaleHandler) GetSales(c *fiber.Ctx) error {
	sales, err := h.service.GetAllSales()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(sales)
}

func (h *SaleHandler) ExportSales(c *fiber.Ctx) error {
	sales, err := h.service.GetAllSales()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return writeCSV(c, "sales.csv", export.Sales(sales))
}
