package postgres_test

import (
	"testing"

	postgresadapter "opsboard/internal/adapters/out/postgres"
	"opsboard/internal/core/domain/model/kernel"
	"opsboard/internal/core/ports"
	"opsboard/internal/pkg/errs"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newMockedDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgresdriver.New(postgresdriver.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{})
	require.NoError(t, err)

	return db, mock
}

func TestGormQuotaChecker_CheckUsage_OrderLimitReached(t *testing.T) {
	db, mock := newMockedDB(t)
	orgID := kernel.NewUUID()

	mock.ExpectQuery("SELECT plan FROM organizations").
		WillReturnRows(sqlmock.NewRows([]string{"plan"}).AddRow("free"))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "orders"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(50))

	checker := postgresadapter.NewGormQuotaChecker(db)
	decision, err := checker.CheckUsage(t.Context(), orgID, ports.QuotaActionCreateOrder)

	require.NoError(t, err)
	assert.False(t, decision.Allowed)
	assert.Equal(t, "order limit reached (50)", decision.Reason)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGormQuotaChecker_CheckUsage_UnderLimitAllowed(t *testing.T) {
	db, mock := newMockedDB(t)
	orgID := kernel.NewUUID()

	mock.ExpectQuery("SELECT plan FROM organizations").
		WillReturnRows(sqlmock.NewRows([]string{"plan"}).AddRow("pro"))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "pickups"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(499))

	checker := postgresadapter.NewGormQuotaChecker(db)
	decision, err := checker.CheckUsage(t.Context(), orgID, ports.QuotaActionCreatePickup)

	require.NoError(t, err)
	assert.True(t, decision.Allowed)
	assert.Empty(t, decision.Reason)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGormQuotaChecker_CheckUsage_EnterpriseIsUnlimited(t *testing.T) {
	db, mock := newMockedDB(t)
	orgID := kernel.NewUUID()

	mock.ExpectQuery("SELECT plan FROM organizations").
		WillReturnRows(sqlmock.NewRows([]string{"plan"}).AddRow("enterprise"))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "orders"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(250000))

	checker := postgresadapter.NewGormQuotaChecker(db)
	decision, err := checker.CheckUsage(t.Context(), orgID, ports.QuotaActionCreateOrder)

	require.NoError(t, err)
	assert.True(t, decision.Allowed)
}

func TestGormQuotaChecker_CheckUsage_UnknownOrganization(t *testing.T) {
	db, mock := newMockedDB(t)
	orgID := kernel.NewUUID()

	mock.ExpectQuery("SELECT plan FROM organizations").
		WillReturnRows(sqlmock.NewRows([]string{"plan"}))

	checker := postgresadapter.NewGormQuotaChecker(db)
	_, err := checker.CheckUsage(t.Context(), orgID, ports.QuotaActionCreateOrder)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestGormQuotaChecker_CheckUsage_MissingOrganizationID(t *testing.T) {
	db, _ := newMockedDB(t)

	checker := postgresadapter.NewGormQuotaChecker(db)
	_, err := checker.CheckUsage(t.Context(), kernel.UUID{}, ports.QuotaActionCreateOrder)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}
