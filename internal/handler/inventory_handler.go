package handler

import (
	"errors"

	"go-storemap-api/internal/service"

	"github.com/gofiber/fiber/v2"
)

type InventoryHandler struct {
	service service.CatalogService
}

func NewInventoryHandler(s service.CatalogService) *InventoryHandler {
	return &InventoryHandler{service: s}
}

// AddInventoryRequest creates a stock record for a (location, product)
// pair; the record id is derived, never supplied by the client.
type AddInventoryRequest struct {
	LocationID string `json:"location_id"`
	ProductID  string `json:"product_id"`
	Stock      int    `json:"stock"`
}

// UpdateStockRequest adjusts the count of an existing record.
type UpdateStockRequest struct {
	Stock int `json:"stock"`
}

func (h *InventoryHandler) GetInventory(c *fiber.Ctx) error {
	records, err := h.service.GetAllInventory()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(records)
}

func (h *InventoryHandler) AddInventory(c *fiber.Ctx) error {
	var req AddInventoryRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	if req.LocationID == "" || req.ProductID == "" {
		return c.Status(400).JSON(fiber.Map{"error": "location_id and product_id are required"})
	}

	record, err := h.service.AddInventory(req.LocationID, req.ProductID, req.Stock)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInventoryExists):
			return c.Status(409).JSON(fiber.Map{"error": err.Error()})
		case errors.Is(err, service.ErrLocationNotFound), errors.Is(err, service.ErrProductNotFound):
			return c.Status(404).JSON(fiber.Map{"error": err.Error()})
		default:
			return c.Status(400).JSON(fiber.Map{"error": err.Error()})
		}
	}

	return c.Status(201).JSON(fiber.Map{"message": "Inventory added", "data": record})
}

func (h *InventoryHandler) UpdateStock(c *fiber.Ctx) error {
	var req UpdateStockRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	if err := h.service.UpdateStock(c.Params("id"), req.Stock); err != nil {
		if errors.Is(err, service.ErrInventoryNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"message": "Stock updated"})
}

func (h *InventoryHandler) DeleteInventory(c *fiber.Ctx) error {
	if err := h.service.DeleteInventory(c.Params("id")); err != nil {
		if errors.Is(err, service.ErrInventoryNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"message": "Inventory deleted"})
}
