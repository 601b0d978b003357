package repositories

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"signly/internal/models"

	"github.com/google/uuid"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type TemplateRepoTestSuite struct {
	suite.Suite
	mock       pgxmock.PgxPoolIface
	repo       TemplateRepository
	tenantID   uuid.UUID
	templateID uuid.UUID
	ctx        context.Context
}

func (suite *TemplateRepoTestSuite) SetupTest() {
	mock, err := pgxmock.NewPool()
	assert.NoError(suite.T(), err)
	suite.mock = mock

	suite.repo = NewTemplateRepo(mock)
	suite.tenantID = uuid.New()
	suite.templateID = uuid.New()
	suite.ctx = context.Background()
}

func (suite *TemplateRepoTestSuite) TearDownTest() {
	assert.NoError(suite.T(), suite.mock.ExpectationsWereMet())
	suite.mock.Close()
}

func TestTemplateRepoTestSuite(t *testing.T) {
	suite.Run(t, new(TemplateRepoTestSuite))
}

func (suite *TemplateRepoTestSuite) sampleTemplate() *models.SignatureTemplate {
	return &models.SignatureTemplate{
		ID:        suite.templateID,
		TenantID:  suite.tenantID,
		CreatedBy: uuid.New(),
		Name:      "Sales default",
		Fields: models.SignatureFields{
			Name:    "Dana Reyes",
			Company: "Acme Corp",
			Email:   "dana@acme.com",
		},
		Preset:      "modern",
		HTMLContent: "<table></table>",
		Status:      models.TemplateStatusActive,
	}
}

func (suite *TemplateRepoTestSuite) TestCreate_Success() {
	template := suite.sampleTemplate()
	fields, err := json.Marshal(template.Fields)
	assert.NoError(suite.T(), err)

	suite.mock.ExpectExec("INSERT INTO signature_templates").
		WithArgs(template.ID, template.TenantID, template.CreatedBy, template.Name,
			fields, template.Preset, template.HTMLContent, template.Status, false, false).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	assert.NoError(suite.T(), suite.repo.Create(suite.ctx, template))
}

func (suite *TemplateRepoTestSuite) TestGetByID_Success() {
	template := suite.sampleTemplate()
	fields, err := json.Marshal(template.Fields)
	assert.NoError(suite.T(), err)
	now := time.Now()

	rows := pgxmock.NewRows([]string{"id", "tenant_id", "created_by", "name", "fields", "preset",
		"html_content", "status", "is_default", "is_shared", "created_at", "updated_at"}).
		AddRow(template.ID, template.TenantID, template.CreatedBy, template.Name, fields,
			template.Preset, template.HTMLContent, template.Status, false, false, now, now)

	suite.mock.ExpectQuery("SELECT (.+) FROM signature_templates WHERE tenant_id").
		WithArgs(suite.tenantID, suite.templateID).
		WillReturnRows(rows)

	got, err := suite.repo.GetByID(suite.ctx, suite.tenantID, suite.templateID)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), template.Name, got.Name)
	assert.Equal(suite.T(), "Dana Reyes", got.Fields.Name)
	assert.Equal(suite.T(), "dana@acme.com", got.Fields.Email)
}

func (suite *TemplateRepoTestSuite) TestGetByID_NotFound() {
	suite.mock.ExpectQuery("SELECT (.+) FROM signature_templates WHERE tenant_id").
		WithArgs(suite.tenantID, suite.templateID).
		WillReturnRows(pgxmock.NewRows([]string{"id"}))

	_, err := suite.repo.GetByID(suite.ctx, suite.tenantID, suite.templateID)
	assert.ErrorIs(suite.T(), err, ErrNotFound)
}

// The default flag moves in one transaction: clear the old holder, set the
// new one, commit.
func (suite *TemplateRepoTestSuite) TestSetDefault_Success() {
	suite.mock.ExpectBegin()
	suite.mock.ExpectExec("UPDATE signature_templates SET is_default = FALSE").
		WithArgs(suite.tenantID, suite.templateID).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	suite.mock.ExpectExec("UPDATE signature_templates SET is_default = TRUE").
		WithArgs(suite.tenantID, suite.templateID).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	suite.mock.ExpectCommit()
	suite.mock.ExpectRollback()

	assert.NoError(suite.T(), suite.repo.SetDefault(suite.ctx, suite.tenantID, suite.templateID))
}

func (suite *TemplateRepoTestSuite) TestSetDefault_UnknownTemplateRollsBack() {
	suite.mock.ExpectBegin()
	suite.mock.ExpectExec("UPDATE signature_templates SET is_default = FALSE").
		WithArgs(suite.tenantID, suite.templateID).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	suite.mock.ExpectExec("UPDATE signature_templates SET is_default = TRUE").
		WithArgs(suite.tenantID, suite.templateID).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))
	suite.mock.ExpectRollback()

	err := suite.repo.SetDefault(suite.ctx, suite.tenantID, suite.templateID)
	assert.ErrorIs(suite.T(), err, ErrNotFound)
}

func (suite *TemplateRepoTestSuite) TestUpdateStatus_NotFound() {
	suite.mock.ExpectExec("UPDATE signature_templates SET status").
		WithArgs(models.TemplateStatusArchived, suite.tenantID, suite.templateID).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	err := suite.repo.UpdateStatus(suite.ctx, suite.tenantID, suite.templateID, models.TemplateStatusArchived)
	assert.ErrorIs(suite.T(), err, ErrNotFound)
}

func (suite *TemplateRepoTestSuite) TestDelete_Success() {
	suite.mock.ExpectExec("DELETE FROM signature_templates WHERE tenant_id").
		WithArgs(suite.tenantID, suite.templateID).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	assert.NoError(suite.T(), suite.repo.Delete(suite.ctx, suite.tenantID, suite.templateID))
}

func (suite *TemplateRepoTestSuite) TestCountByTenant() {
	suite.mock.ExpectQuery("SELECT COUNT(.+) FROM signature_templates WHERE tenant_id").
		WithArgs(suite.tenantID).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(7))

	count, err := suite.repo.CountByTenant(suite.ctx, suite.tenantID)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 7, count)
}
