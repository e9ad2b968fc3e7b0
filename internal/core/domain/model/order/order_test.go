package order_test

import (
	"testing"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCode(t *testing.T) kernel.OrderCode {
	t.Helper()
	code, err := kernel.NewOrderCode(nil)
	require.NoError(t, err)
	return code
}

func testItem(t *testing.T, name string, price float64, quantity int) order.Item {
	t.Helper()
	item, err := order.NewItem(kernel.NewUUID(), name, price, quantity)
	require.NoError(t, err)
	return item
}

func testContact() order.Contact {
	return order.Contact{Name: "Ada", Phone: "+2348012345678"}
}

func testDelivery() order.Delivery {
	return order.Delivery{Type: "pickup", Address: "12 Allen Avenue"}
}

func TestNewOrder_ComputesTotalFromItems(t *testing.T) {
	items := []order.Item{
		testItem(t, "Jollof Rice", 500, 2),
		testItem(t, "Suya", 300, 1),
	}

	o, err := order.NewOrder(testCode(t), kernel.NewUUID(), kernel.NewUUID(),
		testContact(), testDelivery(), items)

	require.NoError(t, err)
	assert.InDelta(t, 1300.0, o.TotalAmount(), 1e-9)
	assert.Equal(t, order.Pending, o.Status())
	assert.False(t, o.IsDeleted())
	assert.WithinDuration(t, time.Now().UTC(), o.CreatedAt(), time.Minute)
}

func TestNewOrder_Validation(t *testing.T) {
	code := testCode(t)
	customerID := kernel.NewUUID()
	vendorID := kernel.NewUUID()
	items := []order.Item{testItem(t, "Jollof Rice", 500, 1)}

	testCases := []struct {
		name string
		run  func() (*order.Order, error)
	}{
		{
			name: "zero order code",
			run: func() (*order.Order, error) {
				return order.NewOrder(kernel.OrderCode{}, customerID, vendorID,
					testContact(), testDelivery(), items)
			},
		},
		{
			name: "zero customer id",
			run: func() (*order.Order, error) {
				return order.NewOrder(code, kernel.UUID{}, vendorID,
					testContact(), testDelivery(), items)
			},
		},
		{
			name: "zero vendor id",
			run: func() (*order.Order, error) {
				return order.NewOrder(code, customerID, kernel.UUID{},
					testContact(), testDelivery(), items)
			},
		},
		{
			name: "missing customer name",
			run: func() (*order.Order, error) {
				return order.NewOrder(code, customerID, vendorID,
					order.Contact{Phone: "+234"}, testDelivery(), items)
			},
		},
		{
			name: "missing delivery type",
			run: func() (*order.Order, error) {
				return order.NewOrder(code, customerID, vendorID,
					testContact(), order.Delivery{}, items)
			},
		},
		{
			name: "empty items",
			run: func() (*order.Order, error) {
				return order.NewOrder(code, customerID, vendorID,
					testContact(), testDelivery(), nil)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			o, err := tc.run()

			require.Error(t, err)
			assert.Nil(t, o)
		})
	}
}

func TestNewItem_Validation(t *testing.T) {
	t.Run("negative_price_fails", func(t *testing.T) {
		_, err := order.NewItem(kernel.NewUUID(), "Suya", -1, 1)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("zero_quantity_fails", func(t *testing.T) {
		_, err := order.NewItem(kernel.NewUUID(), "Suya", 300, 0)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("missing_name_fails", func(t *testing.T) {
		_, err := order.NewItem(kernel.NewUUID(), "", 300, 1)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("subtotal_is_price_times_quantity", func(t *testing.T) {
		item := testItem(t, "Suya", 300, 3)

		assert.InDelta(t, 900.0, item.Subtotal(), 1e-9)
	})
}

func TestRestoreOrder_RoundTrip(t *testing.T) {
	code := testCode(t)
	createdAt := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	items := []order.Item{testItem(t, "Jollof Rice", 500, 2)}

	restored, err := order.RestoreOrder(code, kernel.NewUUID(), kernel.NewUUID(),
		testContact(), testDelivery(), items, 1000, order.Accepted, true, createdAt)

	require.NoError(t, err)
	assert.Equal(t, order.Accepted, restored.Status())
	assert.True(t, restored.IsDeleted())
	assert.Equal(t, createdAt, restored.CreatedAt())
	assert.InDelta(t, 1000.0, restored.TotalAmount(), 1e-9)
}

func TestRestoreOrder_InvalidStatusFails(t *testing.T) {
	items := []order.Item{testItem(t, "Jollof Rice", 500, 2)}

	_, err := order.RestoreOrder(testCode(t), kernel.NewUUID(), kernel.NewUUID(),
		testContact(), testDelivery(), items, 1000, order.Status(99), false, time.Now())

	require.Error(t, err)
}

func TestOrder_MarkRemoved_IsIdempotent(t *testing.T) {
	o, err := order.NewOrder(testCode(t), kernel.NewUUID(), kernel.NewUUID(),
		testContact(), testDelivery(), []order.Item{testItem(t, "Suya", 300, 1)})
	require.NoError(t, err)

	o.MarkRemoved()
	o.MarkRemoved()

	assert.True(t, o.IsDeleted())
}

func TestOrder_Validate_ZeroValueIsInvalid(t *testing.T) {
	var o order.Order

	require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
}
