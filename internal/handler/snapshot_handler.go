package handler

import (
	"go-sari-pos/internal/service"

	"github.com/gofiber/fiber/v2"
)

type SnapshotHandler struct {
	service service.InventoryService
}

func NewSnapshotHandler(s service.InventoryService) *SnapshotHandler {
	return &SnapshotHandler{service: s}
}

func (h *SnapshotHandler) CreateSnapshot(c *fiber.Ctx) error {
	snapshot, err := h.service.CreateSnapshot(getUserEmail(c))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create snapshot"})
	}
	return c.Status(201).JSON(fiber.Map{"message": "Inventory snapshot created", "data": snapshot})
}

func (h *SnapshotHandler) GetSnapshots(c *fiber.Ctx) error {
	snapshots, err := h.service.GetAllSnapshots()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(snapshots)
}

func (h *SnapshotHandler) GetSnapshot(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid snapshot ID"})
	}

	snapshot, err := h.service.GetSnapshotByID(id)
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Snapshot not found"})
	}
	return c.JSON(snapshot)
}
