package service

import (
	"errors"
	"fmt"
	"log"
	"time"

	"go-storemap-api/internal/model"
	"go-storemap-api/internal/repository"
	"go-storemap-api/pkg/validator"

	"gorm.io/gorm"
)

var (
	ErrProductExists     = errors.New("product id already exists")
	ErrProductNotFound   = errors.New("product not found")
	ErrLocationExists    = errors.New("location id already exists")
	ErrInventoryExists   = errors.New("inventory for this location and product already exists")
	ErrInventoryNotFound = errors.New("inventory record not found")
)

// SnapshotRefresher is notified after every successful write so the map
// views are re-derived from a fresh snapshot.
type SnapshotRefresher interface {
	Refresh() error
}

// CatalogService covers the admin console writes: product and location
// CRUD with cascade deletion of dependent inventory, and per-location
// stock management keyed by the composite inventory id.
type CatalogService interface {
	GetAllProducts() ([]model.Product, error)
	CreateProduct(req *model.Product) error
	UpdateProduct(id string, req *model.Product) (*model.Product, error)
	DeleteProduct(id string) error

	GetAllLocations() ([]model.Location, error)
	CreateLocation(req *model.Location) error
	UpdateLocation(id string, req *model.Location) (*model.Location, error)
	DeleteLocation(id string) error

	GetAllInventory() ([]model.InventoryRecord, error)
	AddInventory(locationID, productID string, stock int) (*model.InventoryRecord, error)
	UpdateStock(id string, stock int) error
	DeleteInventory(id string) error
}

type catalogService struct {
	productRepo   repository.ProductRepository
	locationRepo  repository.LocationRepository
	inventoryRepo repository.InventoryRepository
	db            *gorm.DB
	refresher     SnapshotRefresher
}

func NewCatalogService(pRepo repository.ProductRepository, lRepo repository.LocationRepository, iRepo repository.InventoryRepository, db *gorm.DB, refresher SnapshotRefresher) CatalogService {
	return &catalogService{
		productRepo:   pRepo,
		locationRepo:  lRepo,
		inventoryRepo: iRepo,
		db:            db,
		refresher:     refresher,
	}
}

// refresh rebuilds the map snapshot after a write. A refresh failure does
// not fail the write; the next read reloads anyway.
func (s *catalogService) refresh() {
	if err := s.refresher.Refresh(); err != nil {
		log.Printf("Warning: snapshot refresh failed: %v", err)
	}
}

func validateStruct(data interface{}) error {
	if errs := validator.ValidateStruct(data); len(errs) > 0 {
		first := errs[0]
		return fmt.Errorf("validation failed: field '%s' failed on tag '%s'", first.FailedField, first.Tag)
	}
	return nil
}

// ---- Products ----

func (s *catalogService) GetAllProducts() ([]model.Product, error) {
	return s.productRepo.FindAll()
}

func (s *catalogService) CreateProduct(req *model.Product) error {
	if err := validateStruct(req); err != nil {
		return err
	}

	existing, err := s.productRepo.FindByID(req.ID)
	if err == nil && existing != nil {
		return ErrProductExists
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	if err := s.productRepo.Create(req); err != nil {
		return err
	}

	s.refresh()
	return nil
}

func (s *catalogService) UpdateProduct(id string, req *model.Product) (*model.Product, error) {
	existing, err := s.productRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}

	// ID is immutable; everything else is editable
	existing.Name = req.Name
	existing.Price = req.Price
	existing.Category = req.Category
	existing.Description = req.Description
	existing.ImageURL = req.ImageURL

	if err := validateStruct(existing); err != nil {
		return nil, err
	}
	if err := s.productRepo.Update(existing); err != nil {
		return nil, err
	}

	s.refresh()
	return existing, nil
}

// DeleteProduct removes the product and cascades to its inventory records
// in a single transaction.
func (s *catalogService) DeleteProduct(id string) error {
	if _, err := s.productRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrProductNotFound
		}
		return err
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.inventoryRepo.DeleteByProduct(tx, id); err != nil {
			return err
		}
		return s.productRepo.Delete(tx, id)
	})
	if err != nil {
		return err
	}

	s.refresh()
	return nil
}

// ---- Locations ----

func (s *catalogService) GetAllLocations() ([]model.Location, error) {
	return s.locationRepo.FindAll()
}

func (s *catalogService) CreateLocation(req *model.Location) error {
	if err := validateStruct(req); err != nil {
		return err
	}

	existing, err := s.locationRepo.FindByID(req.ID)
	if err == nil && existing != nil {
		return ErrLocationExists
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	if err := s.locationRepo.Create(req); err != nil {
		return err
	}

	s.refresh()
	return nil
}

func (s *catalogService) UpdateLocation(id string, req *model.Location) (*model.Location, error) {
	existing, err := s.locationRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLocationNotFound
		}
		return nil, err
	}

	existing.Name = req.Name
	existing.Address = req.Address
	existing.Latitude = req.Latitude
	existing.Longitude = req.Longitude
	existing.Hours = req.Hours
	existing.ClosedDays = req.ClosedDays
	existing.Phone = req.Phone
	existing.Website = req.Website
	existing.Type = req.Type

	if err := validateStruct(existing); err != nil {
		return nil, err
	}
	if err := s.locationRepo.Update(existing); err != nil {
		return nil, err
	}

	s.refresh()
	return existing, nil
}

// DeleteLocation removes the location and cascades to its inventory
// records in a single transaction.
func (s *catalogService) DeleteLocation(id string) error {
	if _, err := s.locationRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrLocationNotFound
		}
		return err
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.inventoryRepo.DeleteByLocation(tx, id); err != nil {
			return err
		}
		return s.locationRepo.Delete(tx, id)
	})
	if err != nil {
		return err
	}

	s.refresh()
	return nil
}

// ---- Inventory ----

func (s *catalogService) GetAllInventory() ([]model.InventoryRecord, error) {
	return s.inventoryRepo.FindAll()
}

// AddInventory creates the stock record for a (location, product) pair.
// The record id is the fixed concatenation locationID + "_" + productID;
// a second record for the same pair is rejected by recomputing that key
// and checking for collision.
func (s *catalogService) AddInventory(locationID, productID string, stock int) (*model.InventoryRecord, error) {
	if _, err := s.locationRepo.FindByID(locationID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLocationNotFound
		}
		return nil, err
	}
	if _, err := s.productRepo.FindByID(productID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}

	key := model.InventoryKey(locationID, productID)
	existing, err := s.inventoryRepo.FindByID(key)
	if err == nil && existing != nil {
		return nil, ErrInventoryExists
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	record := &model.InventoryRecord{
		ID:          key,
		LocationID:  locationID,
		ProductID:   productID,
		Stock:       stock,
		LastUpdated: time.Now(),
	}
	if err := validateStruct(record); err != nil {
		return nil, err
	}
	if err := s.inventoryRepo.Create(record); err != nil {
		return nil, err
	}

	s.refresh()
	return record, nil
}

func (s *catalogService) UpdateStock(id string, stock int) error {
	if stock < 0 {
		return errors.New("stock must not be negative")
	}
	if _, err := s.inventoryRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrInventoryNotFound
		}
		return err
	}
	if err := s.inventoryRepo.UpdateStock(id, stock); err != nil {
		return err
	}

	s.refresh()
	return nil
}

func (s *catalogService) DeleteInventory(id string) error {
	if _, err := s.inventoryRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrInventoryNotFound
		}
		return err
	}
	if err := s.inventoryRepo.Delete(id); err != nil {
		return err
	}

	s.refresh()
	return nil
}
