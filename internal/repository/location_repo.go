package repository

import (
	"go-storemap-api/internal/model"

	"gorm.io/gorm"
)

type LocationRepository interface {
	Create(location *model.Location) error
	FindAll() ([]model.Location, error)
	FindByID(id string) (*model.Location, error)
	Update(location *model.Location) error
	Delete(tx *gorm.DB, id string) error
	Count() (int64, error)
}

type locationRepo struct {
	db *gorm.DB
}

func NewLocationRepo(db *gorm.DB) LocationRepository {
	return &locationRepo{db}
}

func (r *locationRepo) Create(location *model.Location) error {
	return r.db.Create(location).Error
}

func (r *locationRepo) FindAll() ([]model.Location, error) {
	var locations []model.Location
	err := r.db.Order("id ASC").Find(&locations).Error
	return locations, err
}

func (r *locationRepo) FindByID(id string) (*model.Location, error) {
	var location model.Location
	err := r.db.First(&location, "id = ?", id).Error
	return &location, err
}

func (r *locationRepo) Update(location *model.Location) error {
	return r.db.Save(location).Error
}

// Delete takes *gorm.DB (tx) so the cascade to inventory records can run
// in the same transaction
func (r *locationRepo) Delete(tx *gorm.DB, id string) error {
	return tx.Delete(&model.Location{}, "id = ?", id).Error
}

func (r *locationRepo) Count() (int64, error) {
	var count int64
	err := r.db.Model(&model.Location{}).Count(&count).Error
	return count, err
}
