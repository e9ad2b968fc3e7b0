package commands_test

import (
	"testing"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/domain/model/vendor"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUpdateWorkingHoursCommandHandler_Handle_AppliesDayEdit(t *testing.T) {
	ctx := t.Context()
	seller := newTestVendor(t)

	repo := new(MockVendorRepository)
	uow := new(MockVendorUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("VendorRepository").Return(repo).Once(),
		repo.On("Get", ctx, seller.ID()).Return(seller, nil).Once(),
		repo.On("Update", ctx, seller).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockVendorUoWFactory)
	factory.On("Create").Return(uow).Once()

	cmd, err := commands.NewUpdateWorkingHoursCommand(seller.ID(), "SUNDAY",
		vendor.DayUpdate{OpeningTime: strPtr("12:00"), IsActive: boolPtr(false)})
	require.NoError(t, err)

	h := commands.NewUpdateWorkingHoursCommandHandler(factory)
	week, err := h.Handle(ctx, cmd)
	require.NoError(t, err)

	days := week.Days()
	require.Len(t, days, 7)
	sunday := days[6]
	require.Equal(t, "Sunday", sunday.Day())
	require.Equal(t, "12:00", sunday.OpeningTime())
	require.Equal(t, "21:00", sunday.ClosingTime()) // untouched field keeps its value
	require.False(t, sunday.IsActive())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestUpdateWorkingHoursCommandHandler_Handle_UnrecognizedDay(t *testing.T) {
	ctx := t.Context()
	seller := newTestVendor(t)

	repo := new(MockVendorRepository)
	uow := new(MockVendorUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("VendorRepository").Return(repo).Once(),
		repo.On("Get", ctx, seller.ID()).Return(seller, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockVendorUoWFactory)
	factory.On("Create").Return(uow).Once()

	cmd, err := commands.NewUpdateWorkingHoursCommand(seller.ID(), "Caturday",
		vendor.DayUpdate{IsActive: boolPtr(false)})
	require.NoError(t, err)

	h := commands.NewUpdateWorkingHoursCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)

	// every existing entry stays untouched
	for _, day := range seller.WorkingHours().Days() {
		require.True(t, day.IsActive())
	}
}

func TestUpdateWorkingHoursCommandHandler_Handle_MalformedTime(t *testing.T) {
	ctx := t.Context()
	seller := newTestVendor(t)

	repo := new(MockVendorRepository)
	uow := new(MockVendorUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("VendorRepository").Return(repo).Once(),
		repo.On("Get", ctx, seller.ID()).Return(seller, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockVendorUoWFactory)
	factory.On("Create").Return(uow).Once()

	cmd, err := commands.NewUpdateWorkingHoursCommand(seller.ID(), "Monday",
		vendor.DayUpdate{ClosingTime: strPtr("25:99")})
	require.NoError(t, err)

	h := commands.NewUpdateWorkingHoursCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}
