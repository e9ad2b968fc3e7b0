package cmd

import (
	"crypto/rand"

	"marketplace/internal/adapters/out/postgres"
	"marketplace/internal/adapters/out/postgres/customerrepo"
	"marketplace/internal/adapters/out/postgres/menurepo"
	"marketplace/internal/adapters/out/postgres/vendorrepo"
	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/application/usecases/queries"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
	}
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(
		f,
		customerrepo.NewGormCustomerRepository(c.gormDB),
		vendorrepo.NewGormVendorRepository(c.gormDB, readOnlyTracker{}),
		menurepo.NewGormMenuItemRepository(c.gormDB),
		rand.Reader,
	)
}

func (c *CompositionRoot) CreateRemoveOrderCommandHandler() commands.RemoveOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRemoveOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateSetStoreOpenCommandHandler() commands.SetStoreOpenCommandHandler {
	return commands.NewSetStoreOpenCommandHandler(c.vendorUoWFactory())
}

func (c *CompositionRoot) CreateUpdatePackSettingsCommandHandler() commands.UpdatePackSettingsCommandHandler {
	return commands.NewUpdatePackSettingsCommandHandler(c.vendorUoWFactory())
}

func (c *CompositionRoot) CreateUpdateWorkingHoursCommandHandler() commands.UpdateWorkingHoursCommandHandler {
	return commands.NewUpdateWorkingHoursCommandHandler(c.vendorUoWFactory())
}

func (c *CompositionRoot) CreateUpdateVendorProfileCommandHandler() commands.UpdateVendorProfileCommandHandler {
	return commands.NewUpdateVendorProfileCommandHandler(c.vendorUoWFactory())
}

func (c *CompositionRoot) CreateSyncStoreHoursCommandHandler() commands.SyncStoreHoursCommandHandler {
	return commands.NewSyncStoreHoursCommandHandler(c.vendorUoWFactory())
}

func (c *CompositionRoot) CreateGetVendorOrdersQueryHandler() queries.GetVendorOrdersQueryHandler {
	return queries.NewGetVendorOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) vendorUoWFactory() commands.VendorUoWFactory {
	return FuncVendorUoWFactory(func() commands.VendorUoW {
		return c.uowFactory.Create()
	})
}

// readOnlyTracker backs repositories wired outside a unit of work, where
// loaded aggregates are never flushed back.
type readOnlyTracker struct{}

func (readOnlyTracker) TrackAggregate(string, any) {}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncVendorUoWFactory func() commands.VendorUoW

func (f FuncVendorUoWFactory) Create() commands.VendorUoW {
	return f()
}
