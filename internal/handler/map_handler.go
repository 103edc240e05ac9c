package handler

import (
	"errors"

	"go-storemap-api/internal/catalog"
	"go-storemap-api/internal/model"
	"go-storemap-api/internal/service"

	"github.com/gofiber/fiber/v2"
)

// MapHandler serves the public, read-only map endpoints.
type MapHandler struct {
	service service.MapService
}

func NewMapHandler(s service.MapService) *MapHandler {
	return &MapHandler{service: s}
}

// selectionFromQuery builds the filter selection from query parameters.
// Absent parameters leave the default (show everything) in place; an
// unrecognized type value is passed through and simply matches nothing.
func selectionFromQuery(c *fiber.Ctx) catalog.Selection {
	sel := catalog.Selection{}
	if category := c.Query("category"); category != "" {
		sel = sel.WithCategory(category)
	}
	if locType := c.Query("type"); locType != "" {
		sel = sel.WithLocationType(model.LocationType(locType))
	}
	if c.QueryBool("in_stock") {
		sel = sel.WithInStockOnly(true)
	}
	return sel
}

// GetLocations returns the locations matching the visitor's filters.
// GET /api/v1/locations?category=&type=&in_stock=
func (h *MapHandler) GetLocations(c *fiber.Ctx) error {
	sel := selectionFromQuery(c)

	locations, err := h.service.FilteredLocations(sel)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}

	// An empty list is a normal outcome ("no stores match"), not an error.
	return c.JSON(fiber.Map{
		"locations": locations,
		"count":     len(locations),
	})
}

// GetLocationProducts returns the products stocked at one location with
// their stock counts and display status.
// GET /api/v1/locations/:id/products
func (h *MapHandler) GetLocationProducts(c *fiber.Ctx) error {
	detail, err := h.service.LocationDetail(c.Params("id"))
	if err != nil {
		if errors.Is(err, service.ErrLocationNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "Location not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(detail)
}

// GetCategories returns the distinct product categories for the filter
// panel. GET /api/v1/categories
func (h *MapHandler) GetCategories(c *fiber.Ctx) error {
	categories, err := h.service.Categories()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(fiber.Map{"categories": categories})
}
