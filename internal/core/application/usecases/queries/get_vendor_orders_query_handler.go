package queries

import (
	"context"
	"time"

	"marketplace/internal/core/domain/model/order"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

// GetVendorOrdersQueryHandler executes vendor order listings against the
// database, bypassing the domain aggregates on the read side.
type GetVendorOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetVendorOrdersQueryHandler creates a handler for vendor order listings.
func NewGetVendorOrdersQueryHandler(db *gorm.DB) GetVendorOrdersQueryHandler {
	return GetVendorOrdersQueryHandler{db: db}
}

// orderRow is the raw listing projection scanned from the orders table.
type orderRow struct {
	Code         string
	CustomerName string
	PhoneNumber  string
	DeliveryType string
	Address      string
	TotalAmount  float64
	Status       int
	CreatedAt    time.Time
}

// Handle runs the page fetch and the total count concurrently. Both reads
// derive their predicate from the same normalized query values, so the count
// always refers to the same result set the page was cut from.
func (h GetVendorOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetVendorOrdersQuery,
) (OrdersPage, error) {
	if err := query.Validate(); err != nil {
		return OrdersPage{}, err
	}

	var (
		rows  []orderRow
		total int64
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return h.scope(gctx, query).
			Order("created_at DESC").
			Offset((query.Page() - 1) * query.Limit()).
			Limit(query.Limit()).
			Find(&rows).Error
	})
	g.Go(func() error {
		return h.scope(gctx, query).Count(&total).Error
	})
	if err := g.Wait(); err != nil {
		return OrdersPage{}, err
	}

	orders := make([]OrderSummary, 0, len(rows))
	for _, row := range rows {
		orders = append(orders, OrderSummary{
			Code:         row.Code,
			CustomerName: row.CustomerName,
			PhoneNumber:  row.PhoneNumber,
			DeliveryType: row.DeliveryType,
			Address:      row.Address,
			TotalAmount:  row.TotalAmount,
			Status:       order.Status(row.Status).String(),
			CreatedAt:    row.CreatedAt,
		})
	}

	limit := int64(query.Limit())
	return OrdersPage{
		Orders:     orders,
		Total:      total,
		Page:       query.Page(),
		Limit:      query.Limit(),
		TotalPages: int((total + limit - 1) / limit),
	}, nil
}

// scope builds the shared filter predicate: vendor ownership, soft-delete
// exclusion, optional search, optional inclusive date range. Each caller gets
// its own chain since gorm statements are not safe to share across goroutines.
func (h GetVendorOrdersQueryHandler) scope(ctx context.Context, query GetVendorOrdersQuery) *gorm.DB {
	db := h.db.WithContext(ctx).
		Table("orders").
		Where("vendor_id = ?", query.VendorID().Bytes()).
		Where("is_deleted = ?", false)

	if search := query.Search(); search != "" {
		pattern := "%" + search + "%"
		db = db.Where("customer_name ILIKE ? OR phone_number ILIKE ? OR code ILIKE ?",
			pattern, pattern, pattern)
	}

	if from, to, ok := query.DateRange(); ok {
		db = db.Where("created_at BETWEEN ? AND ?", from, to)
	}

	return db
}
