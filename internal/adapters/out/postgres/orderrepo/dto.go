// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. It implements the repository pattern for the order
// aggregate, converting between domain entities and database rows.
package orderrepo

import (
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The externally visible order code is the primary key; the implied unique
// index on it is the collision guard for generated codes.
type OrderDTO struct {
	Code         string    `gorm:"primaryKey;size:15"`
	CustomerID   uuid.UUID `gorm:"type:uuid;index"`
	VendorID     uuid.UUID `gorm:"type:uuid;index"`
	CustomerName string
	PhoneNumber  string
	DeliveryType string
	Location     string
	Address      string
	Notes        string
	Items        []ItemDTO `gorm:"foreignKey:OrderCode;references:Code;constraint:OnDelete:CASCADE"`
	TotalAmount  float64
	Status       int
	IsDeleted    bool      `gorm:"index"`
	CreatedAt    time.Time `gorm:"index"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// ItemDTO is one snapshotted order line.
type ItemDTO struct {
	ID         uint      `gorm:"primaryKey"`
	OrderCode  string    `gorm:"size:15;index"`
	MenuItemID uuid.UUID `gorm:"type:uuid"`
	Name       string
	UnitPrice  float64
	Quantity   int
}

// TableName specifies the database table name for order lines.
func (ItemDTO) TableName() string {
	return "order_items"
}

func fromDomain(aggregate *order.Order) OrderDTO {
	items := make([]ItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, ItemDTO{
			OrderCode:  aggregate.Code().String(),
			MenuItemID: item.MenuItemID().Bytes(),
			Name:       item.Name(),
			UnitPrice:  item.UnitPrice(),
			Quantity:   item.Quantity(),
		})
	}

	return OrderDTO{
		Code:         aggregate.Code().String(),
		CustomerID:   aggregate.CustomerID().Bytes(),
		VendorID:     aggregate.VendorID().Bytes(),
		CustomerName: aggregate.Contact().Name,
		PhoneNumber:  aggregate.Contact().Phone,
		DeliveryType: aggregate.Delivery().Type,
		Location:     aggregate.Delivery().Location,
		Address:      aggregate.Delivery().Address,
		Notes:        aggregate.Delivery().Notes,
		Items:        items,
		TotalAmount:  aggregate.TotalAmount(),
		Status:       int(aggregate.Status()),
		IsDeleted:    aggregate.IsDeleted(),
		CreatedAt:    aggregate.CreatedAt(),
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	code, err := kernel.OrderCodeFromString(dto.Code)
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	vendorID, err := kernel.UUIDFromBytes(dto.VendorID[:])
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, row := range dto.Items {
		menuItemID, idErr := kernel.UUIDFromBytes(row.MenuItemID[:])
		if idErr != nil {
			return nil, idErr
		}

		item, itemErr := order.NewItem(menuItemID, row.Name, row.UnitPrice, row.Quantity)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(
		code,
		customerID,
		vendorID,
		order.Contact{Name: dto.CustomerName, Phone: dto.PhoneNumber},
		order.Delivery{
			Type:     dto.DeliveryType,
			Location: dto.Location,
			Address:  dto.Address,
			Notes:    dto.Notes,
		},
		items,
		dto.TotalAmount,
		order.Status(dto.Status),
		dto.IsDeleted,
		dto.CreatedAt,
	)
}
