package cmd_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"fastbite/cmd"
	postgres_adapter "fastbite/internal/adapters/out/postgres"
	"fastbite/internal/adapters/out/postgres/pgtest"
	"fastbite/internal/core/domain/model/user"
	"fastbite/internal/pkg/auth"

	"github.com/stretchr/testify/suite"
)

type SeedIntegrationTestSuite struct {
	suite.Suite
	pg      *pgtest.Database
	factory *postgres_adapter.GormUnitOfWorkFactory
	logger  *slog.Logger
}

func (suite *SeedIntegrationTestSuite) SetupSuite() {
	pg, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.pg = pg
	suite.Require().NoError(postgres_adapter.Migrate(pg.DB))
	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(pg.DB)
	suite.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
}

func (suite *SeedIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.pg.Truncate("comments", "order_items", "orders", "products", "users"))
}

func (suite *SeedIntegrationTestSuite) TearDownSuite() {
	suite.Require().NoError(suite.pg.Terminate(context.Background()))
}

func (suite *SeedIntegrationTestSuite) TestSeedCatalog_OnlyWhenEmpty() {
	ctx := context.Background()

	created, err := cmd.SeedCatalog(ctx, suite.factory.Create(), suite.logger)
	suite.Require().NoError(err)
	suite.Equal(10, created)

	created, err = cmd.SeedCatalog(ctx, suite.factory.Create(), suite.logger)
	suite.Require().NoError(err)
	suite.Zero(created)

	available, err := suite.factory.Create().ProductRepository().ListAvailable(ctx)
	suite.Require().NoError(err)
	suite.Len(available, 10)

	prices := make(map[string]string, len(available))
	for _, p := range available {
		prices[p.Name()] = p.Price().StringFixed(2)
	}
	suite.Equal("8.99", prices["Hamburguesa Clásica"])
	suite.Equal("4.99", prices["Papas Fritas"])
}

func (suite *SeedIntegrationTestSuite) TestSeedDemoUsers_IsIdempotent() {
	ctx := context.Background()
	tokens, err := auth.NewTokenService("seed-secret", time.Hour)
	suite.Require().NoError(err)
	users := suite.factory.Create().UserRepository()

	suite.Require().NoError(cmd.SeedDemoUsers(ctx, users, tokens, suite.logger))
	suite.Require().NoError(cmd.SeedDemoUsers(ctx, users, tokens, suite.logger))

	var count int64
	suite.Require().NoError(suite.pg.DB.Table("users").Count(&count).Error)
	suite.Equal(int64(3), count)

	var roles []string
	suite.Require().NoError(suite.pg.DB.Table("users").Order("role").Pluck("role", &roles).Error)
	suite.Equal([]string{user.Courier.String(), user.Customer.String(), user.Kitchen.String()}, roles)
}

func TestSeedIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(SeedIntegrationTestSuite))
}
