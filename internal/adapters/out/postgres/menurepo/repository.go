// Package menurepo provides the read-only menu catalog lookup the order
// workflow consumes. Catalog management is out of scope; this adapter reads
// price, availability, and the display name.
package menurepo

import (
	"context"
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/menu"
	"marketplace/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MenuItemDTO represents the database structure for menu catalog rows.
type MenuItemDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	VendorID  uuid.UUID `gorm:"type:uuid;index"`
	Name      string
	Price     float64
	IsEnabled bool
}

// TableName specifies the database table name for menu items.
func (MenuItemDTO) TableName() string {
	return "menu_items"
}

// GormMenuItemRepository implements MenuItemRepository using GORM.
type GormMenuItemRepository struct {
	db *gorm.DB
}

// NewGormMenuItemRepository creates a new GORM menu item repository.
func NewGormMenuItemRepository(db *gorm.DB) *GormMenuItemRepository {
	return &GormMenuItemRepository{db: db}
}

// Get retrieves a menu item by id.
func (r *GormMenuItemRepository) Get(ctx context.Context, id kernel.UUID) (*menu.MenuItem, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto MenuItemDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("menu item", id.String())
		}
		return nil, err
	}

	itemID, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	vendorID, err := kernel.UUIDFromBytes(dto.VendorID[:])
	if err != nil {
		return nil, err
	}

	return menu.NewMenuItem(itemID, vendorID, dto.Name, dto.Price, dto.IsEnabled)
}

// Add inserts a catalog row. Used by seeding and tests; catalog writes live
// outside this service.
func (r *GormMenuItemRepository) Add(ctx context.Context, item *menu.MenuItem) error {
	if err := item.Validate(); err != nil {
		return err
	}

	dto := MenuItemDTO{
		ID:        item.ID().Bytes(),
		VendorID:  item.VendorID().Bytes(),
		Name:      item.Name(),
		Price:     item.Price(),
		IsEnabled: item.IsEnabled(),
	}
	return r.db.WithContext(ctx).Create(&dto).Error
}
