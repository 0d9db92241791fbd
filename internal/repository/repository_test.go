package repository

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stpnv0/HostelBooker/internal/calendar"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

var (
	noRetry = retry.Strategy{Attempts: 1}
	d0      = calendar.New(2024, time.September, 2)
	created = time.Date(2024, time.August, 1, 10, 0, 0, 0, time.UTC)
)

func setupMockDB(t *testing.T) (*dbpg.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, mock.ExpectationsWereMet())
		sqlDB.Close()
	})

	return &dbpg.DB{Master: sqlDB}, mock
}
