package repositories

import (
	"context"
	"testing"

	"signly/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type TenantRepoTestSuite struct {
	suite.Suite
	mock pgxmock.PgxPoolIface
	repo TenantRepository
	ctx  context.Context
}

func (suite *TenantRepoTestSuite) SetupTest() {
	mock, err := pgxmock.NewPool()
	assert.NoError(suite.T(), err)
	suite.mock = mock

	suite.repo = NewTenantRepo(mock)
	suite.ctx = context.Background()
}

func (suite *TenantRepoTestSuite) TearDownTest() {
	assert.NoError(suite.T(), suite.mock.ExpectationsWereMet())
	suite.mock.Close()
}

func TestTenantRepoTestSuite(t *testing.T) {
	suite.Run(t, new(TenantRepoTestSuite))
}

func (suite *TenantRepoTestSuite) registration() (*models.Tenant, *models.User) {
	tenant := &models.Tenant{
		ID:           uuid.New(),
		Name:         "Acme Corp",
		Domain:       "acme.com",
		Plan:         "free",
		MaxUsers:     5,
		MaxTemplates: 3,
		MaxStorageMB: 50,
		Status:       "active",
	}
	admin := &models.User{
		ID:           uuid.New(),
		TenantID:     tenant.ID,
		Email:        "dana@acme.com",
		PasswordHash: "$2a$12$hash",
		Role:         models.RoleAdmin,
		Status:       "active",
	}
	return tenant, admin
}

func (suite *TenantRepoTestSuite) TestCreateWithAdmin_Success() {
	tenant, admin := suite.registration()

	suite.mock.ExpectBegin()
	suite.mock.ExpectExec("INSERT INTO tenants").
		WithArgs(tenant.ID, tenant.Name, tenant.Domain, tenant.Plan,
			tenant.MaxUsers, tenant.MaxTemplates, tenant.MaxStorageMB, tenant.Status).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	suite.mock.ExpectExec("INSERT INTO users").
		WithArgs(admin.ID, admin.TenantID, admin.Email, admin.PasswordHash, admin.Role,
			admin.FirstName, admin.LastName, admin.Title, admin.Department, admin.TokenVersion, admin.Status).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	suite.mock.ExpectCommit()
	suite.mock.ExpectRollback()

	assert.NoError(suite.T(), suite.repo.CreateWithAdmin(suite.ctx, tenant, admin))
}

// A duplicate admin email rolls back the tenant insert too; the domain is
// not left claimed by a tenant nobody can log into.
func (suite *TenantRepoTestSuite) TestCreateWithAdmin_DuplicateEmailRollsBackTenant() {
	tenant, admin := suite.registration()

	suite.mock.ExpectBegin()
	suite.mock.ExpectExec("INSERT INTO tenants").
		WithArgs(tenant.ID, tenant.Name, tenant.Domain, tenant.Plan,
			tenant.MaxUsers, tenant.MaxTemplates, tenant.MaxStorageMB, tenant.Status).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	suite.mock.ExpectExec("INSERT INTO users").
		WithArgs(admin.ID, admin.TenantID, admin.Email, admin.PasswordHash, admin.Role,
			admin.FirstName, admin.LastName, admin.Title, admin.Department, admin.TokenVersion, admin.Status).
		WillReturnError(&pgconn.PgError{Code: "23505"})
	suite.mock.ExpectRollback()

	err := suite.repo.CreateWithAdmin(suite.ctx, tenant, admin)
	assert.ErrorIs(suite.T(), err, ErrDuplicate)
}

func (suite *TenantRepoTestSuite) TestCreateWithAdmin_DuplicateDomain() {
	tenant, admin := suite.registration()

	suite.mock.ExpectBegin()
	suite.mock.ExpectExec("INSERT INTO tenants").
		WithArgs(tenant.ID, tenant.Name, tenant.Domain, tenant.Plan,
			tenant.MaxUsers, tenant.MaxTemplates, tenant.MaxStorageMB, tenant.Status).
		WillReturnError(&pgconn.PgError{Code: "23505"})
	suite.mock.ExpectRollback()

	err := suite.repo.CreateWithAdmin(suite.ctx, tenant, admin)
	assert.ErrorIs(suite.T(), err, ErrDuplicate)
}
