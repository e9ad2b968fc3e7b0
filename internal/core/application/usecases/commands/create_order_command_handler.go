package commands

import (
	"context"
	"fmt"
	"io"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/menu"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/ports"
	"marketplace/internal/pkg/errs"

	"golang.org/x/sync/errgroup"
)

// CreateOrderCommandHandler orchestrates order placement: it resolves the
// customer and vendor, verifies the store is open, validates every requested
// menu item, snapshots names and prices into order lines, generates the
// order code, and persists the result in one transaction.
//
// The validation sequence is a contract: customer, then vendor, then store
// state, then items in submission order. A malformed request surfaces the
// error of the first check that fails.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	customers  ports.CustomerRepository
	vendors    ports.VendorRepository
	menuItems  ports.MenuItemRepository
	entropy    io.Reader
}

// NewCreateOrderCommandHandler creates a handler for order placement.
// The entropy reader feeds order-code generation; production wiring passes
// crypto/rand.Reader, tests pass a deterministic reader.
func NewCreateOrderCommandHandler(
	uowFactory OrderUoWFactory,
	customers ports.CustomerRepository,
	vendors ports.VendorRepository,
	menuItems ports.MenuItemRepository,
	entropy io.Reader,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		customers:  customers,
		vendors:    vendors,
		menuItems:  menuItems,
		entropy:    entropy,
	}
}

// menuItemCheck carries the outcome of one catalog lookup so failures can be
// reported in submission order rather than completion order.
type menuItemCheck struct {
	item *menu.MenuItem
	err  error
}

// Handle processes the order placement command. No partial persistence: the
// order is written exactly once, after every validation passed; a failure at
// any earlier step leaves no trace.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	buyer, err := h.customers.Get(ctx, cmd.CustomerID())
	if err != nil {
		return nil, err
	}

	seller, err := h.vendors.Get(ctx, cmd.VendorID())
	if err != nil {
		return nil, err
	}
	if !seller.IsStoreOpen() {
		return nil, errs.NewStateIsInvalidError("store is closed")
	}

	items, err := h.resolveItems(ctx, cmd.Items())
	if err != nil {
		return nil, err
	}

	code, err := kernel.NewOrderCode(h.entropy)
	if err != nil {
		return nil, err
	}

	newOrder, err := order.NewOrder(
		code,
		cmd.CustomerID(),
		cmd.VendorID(),
		order.Contact{Name: buyer.Name(), Phone: cmd.PhoneNumber()},
		cmd.Delivery(),
		items,
	)
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return newOrder, nil
}

// resolveItems fans catalog lookups out concurrently, then walks the results
// in submission order so the reported failure is always the first offending
// item, never a race artifact. Every lookup runs to completion.
func (h CreateOrderCommandHandler) resolveItems(
	ctx context.Context,
	requests []ItemRequest,
) ([]order.Item, error) {
	checks := make([]menuItemCheck, len(requests))

	g, gctx := errgroup.WithContext(ctx)
	for i, request := range requests {
		g.Go(func() error {
			item, err := h.menuItems.Get(gctx, request.MenuItemID)
			checks[i] = menuItemCheck{item: item, err: err}
			return nil
		})
	}
	_ = g.Wait()

	items := make([]order.Item, 0, len(requests))
	for i, request := range requests {
		check := checks[i]
		if check.err != nil {
			return nil, check.err
		}
		if !check.item.IsEnabled() {
			return nil, errs.NewStateIsInvalidError(
				fmt.Sprintf("menu item %q is unavailable", check.item.Name()))
		}

		item, err := order.NewItem(request.MenuItemID, check.item.Name(), check.item.Price(), request.Quantity)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, nil
}
