package repository

import (
	"time"

	"go-storemap-api/internal/model"

	"gorm.io/gorm"
)

type InventoryRepository interface {
	Create(record *model.InventoryRecord) error
	FindAll() ([]model.InventoryRecord, error)
	FindByID(id string) (*model.InventoryRecord, error)
	FindByLocation(locationID string) ([]model.InventoryRecord, error)
	UpdateStock(id string, stock int) error
	Delete(id string) error
	DeleteByLocation(tx *gorm.DB, locationID string) error
	DeleteByProduct(tx *gorm.DB, productID string) error
	Count() (int64, error)
}

type inventoryRepo struct {
	db *gorm.DB
}

func NewInventoryRepo(db *gorm.DB) InventoryRepository {
	return &inventoryRepo{db}
}

func (r *inventoryRepo) Create(record *model.InventoryRecord) error {
	return r.db.Create(record).Error
}

func (r *inventoryRepo) FindAll() ([]model.InventoryRecord, error) {
	var records []model.InventoryRecord
	err := r.db.Order("id ASC").Find(&records).Error
	return records, err
}

func (r *inventoryRepo) FindByID(id string) (*model.InventoryRecord, error) {
	var record model.InventoryRecord
	err := r.db.First(&record, "id = ?", id).Error
	return &record, err
}

func (r *inventoryRepo) FindByLocation(locationID string) ([]model.InventoryRecord, error) {
	var records []model.InventoryRecord
	err := r.db.Order("id ASC").Find(&records, "location_id = ?", locationID).Error
	return records, err
}

func (r *inventoryRepo) UpdateStock(id string, stock int) error {
	return r.db.Model(&model.InventoryRecord{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"stock":        stock,
			"last_updated": time.Now(),
		}).Error
}

func (r *inventoryRepo) Delete(id string) error {
	return r.db.Delete(&model.InventoryRecord{}, "id = ?", id).Error
}

// DeleteByLocation and DeleteByProduct take *gorm.DB (tx) so they can run
// inside the cascade transaction of a location/product delete
func (r *inventoryRepo) DeleteByLocation(tx *gorm.DB, locationID string) error {
	return tx.Delete(&model.InventoryRecord{}, "location_id = ?", locationID).Error
}

func (r *inventoryRepo) DeleteByProduct(tx *gorm.DB, productID string) error {
	return tx.Delete(&model.InventoryRecord{}, "product_id = ?", productID).Error
}

func (r *inventoryRepo) Count() (int64, error) {
	var count int64
	err := r.db.Model(&model.InventoryRecord{}).Count(&count).Error
	return count, err
}
