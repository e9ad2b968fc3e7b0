package commands

import (
	"context"

	"marketplace/internal/pkg/errs"
)

// RemoveOrderCommandHandler soft-deletes an order within the acting vendor's
// scope. The record stays in storage; listings stop returning it.
type RemoveOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewRemoveOrderCommandHandler creates a handler for order removal.
func NewRemoveOrderCommandHandler(uowFactory OrderUoWFactory) RemoveOrderCommandHandler {
	return RemoveOrderCommandHandler{uowFactory: uowFactory}
}

// Handle loads the order by code, verifies it belongs to the acting vendor,
// and marks it removed. An order owned by another vendor is indistinguishable
// from a missing one.
func (h RemoveOrderCommandHandler) Handle(ctx context.Context, cmd RemoveOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderCode())
	if err != nil {
		return err
	}

	if !aggregate.VendorID().IsEqual(cmd.VendorID()) {
		return errs.NewObjectNotFoundError("orderCode", cmd.OrderCode().String())
	}

	aggregate.MarkRemoved()

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
