package productrepo_test

import (
	"context"
	"testing"
	"time"

	"github.com/kurtadodoli/sevenfour-sub008/internal/adapters/out/postgres/productrepo"
	"github.com/kurtadodoli/sevenfour-sub008/internal/core/domain/model/kernel"
	"github.com/kurtadodoli/sevenfour-sub008/internal/core/domain/model/product"
	"github.com/kurtadodoli/sevenfour-sub008/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	m.Called(id, aggregate)
}

// ProductRepositoryIntegrationTestSuite provides integration tests for
// ProductRepository using PostgreSQL containers.
type ProductRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *productrepo.GormProductRepository
	tracker    *MockAggregateTracker
}

func (suite *ProductRepositoryIntegrationTestSuite) SetupSuite() {
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

	suite.Require().NoError(db.AutoMigrate(&productrepo.ProductDTO{}))
}

func (suite *ProductRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE products").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = productrepo.NewGormProductRepository(suite.db, suite.tracker)
}

func (suite *ProductRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *ProductRepositoryIntegrationTestSuite) createTestProduct() *product.Product {
	aggregate, err := product.NewProduct(kernel.NewUUID(), "Seven Four Hoodie", 40, 15)
	suite.Require().NoError(err)
	return aggregate
}

func (suite *ProductRepositoryIntegrationTestSuite) TestAddAndGet_RoundTrip() {
	ctx := context.Background()
	aggregate := suite.createTestProduct()

	suite.tracker.On("TrackAggregate", aggregate.ID(), aggregate).Once()
	suite.Require().NoError(suite.repository.Add(ctx, aggregate))

	restored, err := suite.repository.Get(ctx, aggregate.ID())
	suite.Require().NoError(err)
	suite.Equal(aggregate.Name(), restored.Name())
	suite.Equal(aggregate.TotalStock(), restored.TotalStock())
	suite.Equal(aggregate.AvailableStock(), restored.AvailableStock())
	suite.Equal(aggregate.ReservedStock(), restored.ReservedStock())
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *ProductRepositoryIntegrationTestSuite) TestUpdate_PersistsZeroCounters() {
	ctx := context.Background()
	aggregate := suite.createTestProduct()

	suite.tracker.On("TrackAggregate", aggregate.ID(), aggregate).Twice()
	suite.Require().NoError(suite.repository.Add(ctx, aggregate))

	// Reserve everything so available drops to zero.
	suite.Require().NoError(aggregate.Reserve(aggregate.AvailableStock()))
	suite.Require().NoError(suite.repository.Update(ctx, aggregate))

	restored, err := suite.repository.Get(ctx, aggregate.ID())
	suite.Require().NoError(err)
	suite.Equal(0, restored.AvailableStock())
	suite.Equal(40, restored.ReservedStock())
	suite.Equal(product.OutOfStock, restored.StockStatus())
}

func (suite *ProductRepositoryIntegrationTestSuite) TestGet_NotFound() {
	ctx := context.Background()

	_, err := suite.repository.Get(ctx, kernel.NewUUID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *ProductRepositoryIntegrationTestSuite) TestGetAll_OrderedByName() {
	ctx := context.Background()

	second, err := product.NewProduct(kernel.NewUUID(), "Zip Jacket", 10, 5)
	suite.Require().NoError(err)
	first, err := product.NewProduct(kernel.NewUUID(), "Basic Tee", 10, 5)
	suite.Require().NoError(err)

	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Twice()
	suite.Require().NoError(suite.repository.Add(ctx, second))
	suite.Require().NoError(suite.repository.Add(ctx, first))

	all, err := suite.repository.GetAll(ctx)
	suite.Require().NoError(err)
	suite.Require().Len(all, 2)
	suite.Equal("Basic Tee", all[0].Name())
	suite.Equal("Zip Jacket", all[1].Name())
}

func TestProductRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(ProductRepositoryIntegrationTestSuite))
}
