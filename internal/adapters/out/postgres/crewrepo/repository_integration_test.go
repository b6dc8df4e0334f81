package crewrepo_test

import (
	"context"
	"testing"
	"time"

	"bizza/internal/adapters/out/postgres/crewrepo"
	"bizza/internal/core/domain/model/crew"
	"bizza/internal/core/domain/model/kernel"
	"bizza/internal/core/domain/model/order"
	"bizza/internal/pkg/errs"

	"github.com/shopspring/decimal"
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

// CrewRepositoryIntegrationTestSuite provides integration tests for CrewRepository.
type CrewRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *crewrepo.GormCrewRepository
	tracker    *MockAggregateTracker
}

func (suite *CrewRepositoryIntegrationTestSuite) SetupSuite() {
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

	suite.Require().NoError(db.AutoMigrate(&crewrepo.TeamMemberDTO{}))
}

func (suite *CrewRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE team_members").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.tracker.On("TrackAggregate", mock.AnythingOfType("kernel.UUID"), mock.Anything).Maybe()
	suite.repository = crewrepo.NewGormCrewRepository(suite.db, suite.tracker)
}

func (suite *CrewRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *CrewRepositoryIntegrationTestSuite) TestAddAndGet_RoundTripsProfile() {
	ctx := context.Background()

	member := suite.createTestMember(kernel.NewUUID(), "Budi", "plumbing")
	suite.Require().NoError(suite.repository.Add(ctx, member))

	retrieved, err := suite.repository.Get(ctx, member.ID())
	suite.Require().NoError(err)
	suite.Equal(member.ID(), retrieved.ID())
	suite.Equal("Budi", retrieved.Name())
	suite.Equal("plumbing", retrieved.Specialty().Name())
	suite.Equal(crew.Intermediate, retrieved.Skill())
	suite.True(retrieved.Rating().IsZero())
	suite.Equal(1, retrieved.Version())
}

func (suite *CrewRepositoryIntegrationTestSuite) TestGet_NonExistent_ReturnsNotFoundError() {
	_, err := suite.repository.Get(context.Background(), kernel.NewUUID())

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *CrewRepositoryIntegrationTestSuite) TestUpdate_PersistsProfileAndRating() {
	ctx := context.Background()

	member := suite.createTestMember(kernel.NewUUID(), "Budi", "plumbing")
	suite.Require().NoError(suite.repository.Add(ctx, member))

	specialty, err := order.NewServiceCategory("electrical")
	suite.Require().NoError(err)
	suite.Require().NoError(member.UpdateProfile(
		"Budi Santoso", specialty, "+62-811-999-888", crew.Expert, "8 years", "",
	))
	suite.Require().NoError(member.SetRating(decimal.RequireFromString("4.5")))
	suite.Require().NoError(suite.repository.Update(ctx, member))

	retrieved, err := suite.repository.Get(ctx, member.ID())
	suite.Require().NoError(err)
	suite.Equal("Budi Santoso", retrieved.Name())
	suite.Equal("electrical", retrieved.Specialty().Name())
	suite.Equal(crew.Expert, retrieved.Skill())
	suite.True(retrieved.Rating().Equal(decimal.RequireFromString("4.5")))
	suite.Equal(2, retrieved.Version())
}

func (suite *CrewRepositoryIntegrationTestSuite) TestUpdate_StaleVersion_ReturnsConcurrencyConflict() {
	ctx := context.Background()

	member := suite.createTestMember(kernel.NewUUID(), "Budi", "plumbing")
	suite.Require().NoError(suite.repository.Add(ctx, member))

	first, err := suite.repository.Get(ctx, member.ID())
	suite.Require().NoError(err)
	second, err := suite.repository.Get(ctx, member.ID())
	suite.Require().NoError(err)

	suite.Require().NoError(first.SetRating(decimal.NewFromInt(5)))
	suite.Require().NoError(suite.repository.Update(ctx, first))

	suite.Require().NoError(second.SetRating(decimal.NewFromInt(3)))
	err = suite.repository.Update(ctx, second)

	suite.Require().ErrorIs(err, errs.ErrConcurrencyConflict)
}

func (suite *CrewRepositoryIntegrationTestSuite) TestGetByForeman_ReturnsRosterByName() {
	ctx := context.Background()

	foremanID := kernel.NewUUID()
	for _, name := range []string{"Siti", "Andi", "Budi"} {
		suite.Require().NoError(suite.repository.Add(ctx, suite.createTestMember(foremanID, name, "plumbing")))
	}
	// Another foreman's member must not leak into the roster.
	suite.Require().NoError(suite.repository.Add(ctx, suite.createTestMember(kernel.NewUUID(), "Joko", "painting")))

	roster, err := suite.repository.GetByForeman(ctx, foremanID)
	suite.Require().NoError(err)
	suite.Require().Len(roster, 3)
	suite.Equal("Andi", roster[0].Name())
	suite.Equal("Budi", roster[1].Name())
	suite.Equal("Siti", roster[2].Name())
}

func (suite *CrewRepositoryIntegrationTestSuite) createTestMember(
	foremanID kernel.UUID, name, specialty string,
) *crew.TeamMember {
	category, err := order.NewServiceCategory(specialty)
	suite.Require().NoError(err)

	member, err := crew.NewTeamMember(
		kernel.NewUUID(), foremanID, name, category,
		"+62-811-000-111", crew.Intermediate, "", "",
	)
	suite.Require().NoError(err)
	return member
}

func TestCrewRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(CrewRepositoryIntegrationTestSuite))
}
