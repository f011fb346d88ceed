package mysql

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutboxRepository_List(t *testing.T) {
	gdb, mock := setupMockDB(t)
	repo := &OutboxRepository{DB: gdb}

	mock.ExpectQuery("SELECT (.+) FROM `community_outbox`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "event_type", "community_id", "actor_id", "payload", "status"}).
			AddRow(1, "community_created", 10, 3, `{"community_id":10}`, 0).
			AddRow(2, "member_joined", 10, 4, `{"community_id":10}`, 0))

	list, err := repo.List(context.Background(), 100)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "community_created", list[0].EventType)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOutboxRepository_SuccessUpdate(t *testing.T) {
	gdb, mock := setupMockDB(t)
	repo := &OutboxRepository{DB: gdb}

	mock.ExpectExec("UPDATE `community_outbox`").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.SuccessUpdate(context.Background(), 1))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOutboxRepository_RetryUpdate(t *testing.T) {
	gdb, mock := setupMockDB(t)
	repo := &OutboxRepository{DB: gdb}

	mock.ExpectExec("UPDATE `community_outbox`").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.RetryUpdate(context.Background(), 1))
	assert.NoError(t, mock.ExpectationsWereMet())
}
