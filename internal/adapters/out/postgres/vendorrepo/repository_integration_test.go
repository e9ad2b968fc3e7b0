package vendorrepo_test

import (
	"context"
	"testing"
	"time"

	"marketplace/internal/adapters/out/postgres/vendorrepo"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/vendor"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of the aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id string, aggregate any) {
	m.Called(id, aggregate)
}

// VendorRepositoryIntegrationTestSuite verifies vendor persistence behavior,
// including the wholesale replacement of schedule rows on update.
type VendorRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *vendorrepo.GormVendorRepository
	tracker    *MockAggregateTracker
}

func (suite *VendorRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&vendorrepo.VendorDTO{}, &vendorrepo.WorkingDayDTO{}))
}

func (suite *VendorRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *VendorRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE vendors CASCADE").Error)
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE vendor_working_days").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = vendorrepo.NewGormVendorRepository(suite.db, suite.tracker)
}

func (suite *VendorRepositoryIntegrationTestSuite) newVendor() *vendor.Vendor {
	seller, err := vendor.NewVendor(kernel.NewUUID(), "Mama Put Kitchen", "mama-put")
	suite.Require().NoError(err)
	return seller
}

func (suite *VendorRepositoryIntegrationTestSuite) TestAdd_ThenGet_RoundTrips() {
	ctx := context.Background()
	seller := suite.newVendor()
	suite.tracker.On("TrackAggregate", seller.ID().String(), seller).Once()

	suite.Require().NoError(suite.repository.Add(ctx, seller))

	loaded, err := suite.repository.Get(ctx, seller.ID())
	suite.Require().NoError(err)
	suite.True(loaded.IsEqual(seller))
	suite.Equal("Mama Put Kitchen", loaded.Profile().RestaurantName)
	suite.False(loaded.IsStoreOpen())

	days := loaded.WorkingHours().Days()
	suite.Require().Len(days, 7)
	suite.Equal("Monday", days[0].Day())
	suite.Equal("Sunday", days[6].Day())
	for _, day := range days {
		suite.Equal("09:00", day.OpeningTime())
		suite.Equal("21:00", day.ClosingTime())
		suite.True(day.IsActive())
	}
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *VendorRepositoryIntegrationTestSuite) TestUpdate_ReplacesScheduleRows() {
	ctx := context.Background()
	seller := suite.newVendor()
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Twice()

	suite.Require().NoError(suite.repository.Add(ctx, seller))

	opening := "07:30"
	inactive := false
	suite.Require().NoError(seller.UpdateWorkingDay("sunday", vendor.DayUpdate{
		OpeningTime: &opening,
		IsActive:    &inactive,
	}))
	seller.OpenStore()
	suite.Require().NoError(suite.repository.Update(ctx, seller))

	loaded, err := suite.repository.Get(ctx, seller.ID())
	suite.Require().NoError(err)
	suite.True(loaded.IsStoreOpen())

	days := loaded.WorkingHours().Days()
	suite.Require().Len(days, 7)
	sunday := days[6]
	suite.Equal("07:30", sunday.OpeningTime())
	suite.Equal("21:00", sunday.ClosingTime())
	suite.False(sunday.IsActive())

	// still exactly seven rows in storage, not seven plus the replacements
	var count int64
	suite.Require().NoError(suite.db.Model(&vendorrepo.WorkingDayDTO{}).Count(&count).Error)
	suite.Equal(int64(7), count)
}

func (suite *VendorRepositoryIntegrationTestSuite) TestUpdate_PersistsPackSettings() {
	ctx := context.Background()
	seller := suite.newVendor()
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Twice()

	suite.Require().NoError(suite.repository.Add(ctx, seller))

	settings, err := vendor.NewPackSettings(4, 250)
	suite.Require().NoError(err)
	suite.Require().NoError(seller.SetPackSettings(settings))
	suite.Require().NoError(suite.repository.Update(ctx, seller))

	loaded, err := suite.repository.Get(ctx, seller.ID())
	suite.Require().NoError(err)
	suite.Equal(4, loaded.PackSettings().Limit())
	suite.InEpsilon(250.0, loaded.PackSettings().Price(), 1e-9)
}

func (suite *VendorRepositoryIntegrationTestSuite) TestGetAll_ReturnsEveryVendor() {
	ctx := context.Background()
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Times(3)

	for range 3 {
		seller, err := vendor.NewVendor(kernel.NewUUID(), "Kitchen", "kitchen-"+kernel.NewUUID().String())
		suite.Require().NoError(err)
		suite.Require().NoError(suite.repository.Add(ctx, seller))
	}

	vendors, err := suite.repository.GetAll(ctx)
	suite.Require().NoError(err)
	suite.Len(vendors, 3)
}

func (suite *VendorRepositoryIntegrationTestSuite) TestGet_MissingVendor_NotFound() {
	ctx := context.Background()

	_, err := suite.repository.Get(ctx, kernel.NewUUID())
	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func TestVendorRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(VendorRepositoryIntegrationTestSuite))
}
