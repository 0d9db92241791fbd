package repository

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stpnv0/HostelBooker/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPropertyRepo(t *testing.T) (*PropertyRepository, sqlmock.Sqlmock) {
	db, mock := setupMockDB(t)
	repo := NewPropertyRepo(db)
	repo.strategy = noRetry
	return repo, mock
}

func TestPropertyRepository_GetByID(t *testing.T) {
	repo, mock := newPropertyRepo(t)

	rows := sqlmock.NewRows([]string{"id", "name", "created_by", "telegram_chat_id", "created_at"}).
		AddRow("p1", "Sea Hostel", "u1", int64(-100123), created)
	mock.ExpectQuery(`FROM properties WHERE id = \$1`).
		WithArgs("p1").
		WillReturnRows(rows)

	p, err := repo.GetByID(context.Background(), "p1")

	require.NoError(t, err)
	assert.Equal(t, "Sea Hostel", p.Name)
	require.NotNil(t, p.TelegramChatID)
	assert.Equal(t, int64(-100123), *p.TelegramChatID)
}

func TestPropertyRepository_GetByID_NoChat(t *testing.T) {
	repo, mock := newPropertyRepo(t)

	rows := sqlmock.NewRows([]string{"id", "name", "created_by", "telegram_chat_id", "created_at"}).
		AddRow("p1", "Sea Hostel", "u1", nil, created)
	mock.ExpectQuery(`FROM properties`).WithArgs("p1").WillReturnRows(rows)

	p, err := repo.GetByID(context.Background(), "p1")

	require.NoError(t, err)
	assert.Nil(t, p.TelegramChatID)
}

func TestPropertyRepository_GetByID_NotFound(t *testing.T) {
	repo, mock := newPropertyRepo(t)

	mock.ExpectQuery(`FROM properties`).WithArgs("missing").WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByID(context.Background(), "missing")

	assert.ErrorIs(t, err, domain.ErrPropertyNotFound)
}

func TestPropertyRepository_ListIDs(t *testing.T) {
	repo, mock := newPropertyRepo(t)

	mock.ExpectQuery(`SELECT id FROM properties`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("p1").AddRow("p2"))

	ids, err := repo.ListIDs(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []string{"p1", "p2"}, ids)
}
