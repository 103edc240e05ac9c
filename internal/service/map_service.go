package service

import (
	"errors"
	"sync"

	"go-storemap-api/internal/catalog"
	"go-storemap-api/internal/model"
	"go-storemap-api/internal/repository"
)

var ErrLocationNotFound = errors.New("location not found")

// MapService serves the public map views. It loads the catalog wholesale
// into a catalog.Snapshot and answers every query from that snapshot;
// admin writes trigger a full reload through Refresh.
type MapService interface {
	Refresh() error
	FilteredLocations(sel catalog.Selection) ([]model.Location, error)
	LocationDetail(locationID string) (*LocationDetail, error)
	Categories() ([]string, error)
	Stats() (*DashboardStats, error)
}

// StockedProduct is a joined product decorated with its display status.
type StockedProduct struct {
	catalog.ProductWithStock
	Status catalog.StockStatus `json:"status"`
}

// LocationDetail is the per-location view consumed by the map popup and
// the location list.
type LocationDetail struct {
	Location   model.Location   `json:"location"`
	Products   []StockedProduct `json:"products"`
	TotalStock int              `json:"total_stock"`
}

// DashboardStats backs the admin console overview cards.
type DashboardStats struct {
	TotalProducts   int64 `json:"total_products"`
	TotalLocations  int64 `json:"total_locations"`
	TotalInventory  int64 `json:"total_inventory"`
	TotalStock      int   `json:"total_stock"`
	OutOfStockCount int   `json:"out_of_stock_count"`
}

type mapService struct {
	productRepo   repository.ProductRepository
	locationRepo  repository.LocationRepository
	inventoryRepo repository.InventoryRepository

	mu       sync.RWMutex
	snapshot *catalog.Snapshot
}

func NewMapService(pRepo repository.ProductRepository, lRepo repository.LocationRepository, iRepo repository.InventoryRepository) MapService {
	return &mapService{
		productRepo:   pRepo,
		locationRepo:  lRepo,
		inventoryRepo: iRepo,
	}
}

// Refresh loads all three collections and swaps the snapshot wholesale.
// A failed load leaves the previous snapshot in place.
func (s *mapService) Refresh() error {
	locations, err := s.locationRepo.FindAll()
	if err != nil {
		return err
	}
	products, err := s.productRepo.FindAll()
	if err != nil {
		return err
	}
	inventory, err := s.inventoryRepo.FindAll()
	if err != nil {
		return err
	}

	snap := catalog.NewSnapshot(locations, products, inventory)

	s.mu.Lock()
	s.snapshot = snap
	s.mu.Unlock()
	return nil
}

// current returns the active snapshot, loading it on first use.
func (s *mapService) current() (*catalog.Snapshot, error) {
	s.mu.RLock()
	snap := s.snapshot
	s.mu.RUnlock()
	if snap != nil {
		return snap, nil
	}
	if err := s.Refresh(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot, nil
}

func (s *mapService) FilteredLocations(sel catalog.Selection) ([]model.Location, error) {
	snap, err := s.current()
	if err != nil {
		return nil, err
	}
	return snap.VisibleLocations(sel), nil
}

func (s *mapService) LocationDetail(locationID string) (*LocationDetail, error) {
	snap, err := s.current()
	if err != nil {
		return nil, err
	}

	location, ok := snap.Location(locationID)
	if !ok {
		return nil, ErrLocationNotFound
	}

	joined := snap.ProductsAtLocation(locationID)
	products := make([]StockedProduct, 0, len(joined))
	for _, p := range joined {
		products = append(products, StockedProduct{
			ProductWithStock: p,
			Status:           catalog.StatusForStock(p.Stock),
		})
	}

	return &LocationDetail{
		Location:   location,
		Products:   products,
		TotalStock: snap.TotalStock(locationID),
	}, nil
}

func (s *mapService) Categories() ([]string, error) {
	snap, err := s.current()
	if err != nil {
		return nil, err
	}
	return snap.Categories(), nil
}

func (s *mapService) Stats() (*DashboardStats, error) {
	snap, err := s.current()
	if err != nil {
		return nil, err
	}

	stats := &DashboardStats{}
	if stats.TotalProducts, err = s.productRepo.Count(); err != nil {
		return nil, err
	}
	if stats.TotalLocations, err = s.locationRepo.Count(); err != nil {
		return nil, err
	}
	if stats.TotalInventory, err = s.inventoryRepo.Count(); err != nil {
		return nil, err
	}

	for _, loc := range snap.Locations() {
		for _, p := range snap.ProductsAtLocation(loc.ID) {
			stats.TotalStock += p.Stock
			if p.Stock == 0 {
				stats.OutOfStockCount++
			}
		}
	}
	return stats, nil
}
