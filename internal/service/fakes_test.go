package service

import (
	"go-storemap-api/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// In-memory repository fakes. They mirror the store contract the
// services rely on: FindByID returns gorm.ErrRecordNotFound for missing
// ids, FindAll returns records in insertion order.

type fakeProductRepo struct {
	products []model.Product
}

func (r *fakeProductRepo) Create(p *model.Product) error {
	r.products = append(r.products, *p)
	return nil
}

func (r *fakeProductRepo) FindAll() ([]model.Product, error) {
	return append([]model.Product(nil), r.products...), nil
}

func (r *fakeProductRepo) FindByID(id string) (*model.Product, error) {
	for i := range r.products {
		if r.products[i].ID == id {
			p := r.products[i]
			return &p, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeProductRepo) Update(p *model.Product) error {
	for i := range r.products {
		if r.products[i].ID == p.ID {
			r.products[i] = *p
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *fakeProductRepo) Delete(tx *gorm.DB, id string) error {
	for i := range r.products {
		if r.products[i].ID == id {
			r.products = append(r.products[:i], r.products[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *fakeProductRepo) Count() (int64, error) {
	return int64(len(r.products)), nil
}

type fakeLocationRepo struct {
	locations []model.Location
}

func (r *fakeLocationRepo) Create(l *model.Location) error {
	r.locations = append(r.locations, *l)
	return nil
}

func (r *fakeLocationRepo) FindAll() ([]model.Location, error) {
	return append([]model.Location(nil), r.locations...), nil
}

func (r *fakeLocationRepo) FindByID(id string) (*model.Location, error) {
	for i := range r.locations {
		if r.locations[i].ID == id {
			l := r.locations[i]
			return &l, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeLocationRepo) Update(l *model.Location) error {
	for i := range r.locations {
		if r.locations[i].ID == l.ID {
			r.locations[i] = *l
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *fakeLocationRepo) Delete(tx *gorm.DB, id string) error {
	for i := range r.locations {
		if r.locations[i].ID == id {
			r.locations = append(r.locations[:i], r.locations[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *fakeLocationRepo) Count() (int64, error) {
	return int64(len(r.locations)), nil
}

type fakeInventoryRepo struct {
	records []model.InventoryRecord
}

func (r *fakeInventoryRepo) Create(rec *model.InventoryRecord) error {
	r.records = append(r.records, *rec)
	return nil
}

func (r *fakeInventoryRepo) FindAll() ([]model.InventoryRecord, error) {
	return append([]model.InventoryRecord(nil), r.records...), nil
}

func (r *fakeInventoryRepo) FindByID(id string) (*model.InventoryRecord, error) {
	for i := range r.records {
		if r.records[i].ID == id {
			rec := r.records[i]
			return &rec, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeInventoryRepo) FindByLocation(locationID string) ([]model.InventoryRecord, error) {
	var out []model.InventoryRecord
	for _, rec := range r.records {
		if rec.LocationID == locationID {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (r *fakeInventoryRepo) UpdateStock(id string, stock int) error {
	for i := range r.records {
		if r.records[i].ID == id {
			r.records[i].Stock = stock
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *fakeInventoryRepo) Delete(id string) error {
	for i := range r.records {
		if r.records[i].ID == id {
			r.records = append(r.records[:i], r.records[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *fakeInventoryRepo) DeleteByLocation(tx *gorm.DB, locationID string) error {
	var kept []model.InventoryRecord
	for _, rec := range r.records {
		if rec.LocationID != locationID {
			kept = append(kept, rec)
		}
	}
	r.records = kept
	return nil
}

func (r *fakeInventoryRepo) DeleteByProduct(tx *gorm.DB, productID string) error {
	var kept []model.InventoryRecord
	for _, rec := range r.records {
		if rec.ProductID != productID {
			kept = append(kept, rec)
		}
	}
	r.records = kept
	return nil
}

func (r *fakeInventoryRepo) Count() (int64, error) {
	return int64(len(r.records)), nil
}

type fakeUserRepo struct {
	users []model.User
}

func (r *fakeUserRepo) FindByEmail(email string) (*model.User, error) {
	for i := range r.users {
		if r.users[i].Email == email {
			u := r.users[i]
			return &u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) FindByID(id uuid.UUID) (*model.User, error) {
	for i := range r.users {
		if r.users[i].ID == id {
			u := r.users[i]
			return &u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) Create(u *model.User) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	r.users = append(r.users, *u)
	return nil
}

func (r *fakeUserRepo) Update(u *model.User) error {
	for i := range r.users {
		if r.users[i].ID == u.ID {
			r.users[i] = *u
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) UpdateTokenVersion(userID uuid.UUID, version string) error {
	for i := range r.users {
		if r.users[i].ID == userID {
			r.users[i].TokenVersion = version
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) UpdateLastSeen(userID uuid.UUID) error {
	return nil
}
