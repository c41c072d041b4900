package services

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestAdminStats(t *testing.T) {
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer conn.Close()

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: conn}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	countRow := func(n int64) *sqlmock.Rows {
		return sqlmock.NewRows([]string{"count"}).AddRow(n)
	}

	// Expectations follow the fixed tally order: pharmacists, pending
	// verifications, verified pharmacists, owners, shifts, open shifts.
	mock.ExpectQuery(`SELECT count\(\*\) FROM "users" WHERE role = \$1`).
		WithArgs("pharmacist").
		WillReturnRows(countRow(12))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "users" WHERE role = \$1 AND verification_status = \$2`).
		WithArgs("pharmacist", "pending").
		WillReturnRows(countRow(3))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "users" WHERE role = \$1 AND verification_status = \$2`).
		WithArgs("pharmacist", "verified").
		WillReturnRows(countRow(9))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "users" WHERE role = \$1`).
		WithArgs("owner").
		WillReturnRows(countRow(5))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "shifts"`).
		WillReturnRows(countRow(20))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "shifts" WHERE status = \$1`).
		WithArgs("open").
		WillReturnRows(countRow(7))

	stats, err := NewStatsService(db).AdminStats()
	require.NoError(t, err)

	assert.Equal(t, int64(12), stats.TotalPharmacists)
	assert.Equal(t, int64(3), stats.PendingVerifications)
	assert.Equal(t, int64(9), stats.VerifiedPharmacists)
	assert.Equal(t, int64(5), stats.TotalOwners)
	assert.Equal(t, int64(20), stats.TotalShifts)
	assert.Equal(t, int64(7), stats.OpenShifts)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAdminStatsPropagatesQueryError(t *testing.T) {
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer conn.Close()

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: conn}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "users"`).
		WillReturnError(assert.AnError)

	_, err = NewStatsService(db).AdminStats()
	assert.Error(t, err)
}
