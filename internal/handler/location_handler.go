package handler

import (
	"errors"

	"go-storemap-api/internal/model"
	"go-storemap-api/internal/service"

	"github.com/gofiber/fiber/v2"
)

type LocationHandler struct {
	service service.CatalogService
}

func NewLocationHandler(s service.CatalogService) *LocationHandler {
	return &LocationHandler{service: s}
}

func (h *LocationHandler) GetLocations(c *fiber.Ctx) error {
	locations, err := h.service.GetAllLocations()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(locations)
}

func (h *LocationHandler) CreateLocation(c *fiber.Ctx) error {
	var location model.Location
	if err := c.BodyParser(&location); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	if err := h.service.CreateLocation(&location); err != nil {
		if errors.Is(err, service.ErrLocationExists) {
			return c.Status(409).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(201).JSON(fiber.Map{"message": "Location created", "data": location})
}

func (h *LocationHandler) UpdateLocation(c *fiber.Ctx) error {
	var location model.Location
	if err := c.BodyParser(&location); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	updated, err := h.service.UpdateLocation(c.Params("id"), &location)
	if err != nil {
		if errors.Is(err, service.ErrLocationNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"message": "Location updated", "data": updated})
}

// DeleteLocation cascades: the location's inventory records go with it.
func (h *LocationHandler) DeleteLocation(c *fiber.Ctx) error {
	if err := h.service.DeleteLocation(c.Params("id")); err != nil {
		if errors.Is(err, service.ErrLocationNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"message": "Location deleted"})
}
