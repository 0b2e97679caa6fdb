package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"

	"twototango/internal/domain"
)

func newMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db, mock
}

func eventColumns() []string {
	return []string{"id", "title", "description", "location", "date", "creator_id", "created_at", "updated_at"}
}

func TestEventRepository_GetByID(t *testing.T) {
	ctx := context.Background()
	now := time.Now()

	t.Run("found", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewEventRepository(db)

		mock.ExpectQuery(`SELECT id, title, description, location, date, creator_id, created_at, updated_at\s+FROM events\s+WHERE id = \$1`).
			WithArgs("ev-1").
			WillReturnRows(sqlmock.NewRows(eventColumns()).
				AddRow("ev-1", "Salsa Night", "Dancing all night", "Havana Club", now, "user-1", now, now))

		event, err := repo.GetByID(ctx, "ev-1")
		require.NoError(t, err)
		require.Equal(t, "ev-1", event.ID)
		require.Equal(t, "Salsa Night", event.Title)
		require.Equal(t, "user-1", event.CreatorID)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewEventRepository(db)

		mock.ExpectQuery(`SELECT id, title, description, location, date, creator_id, created_at, updated_at\s+FROM events\s+WHERE id = \$1`).
			WithArgs("missing").
			WillReturnError(sql.ErrNoRows)

		_, err := repo.GetByID(ctx, "missing")
		require.ErrorIs(t, err, domain.ErrNotFound)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestEventRepository_List(t *testing.T) {
	ctx := context.Background()
	now := time.Now()
	db, mock := newMockDB(t)
	repo := NewEventRepository(db)

	mock.ExpectQuery(`SELECT id, title, description, location, date, creator_id, created_at, updated_at\s+FROM events\s+ORDER BY date ASC`).
		WillReturnRows(sqlmock.NewRows(eventColumns()).
			AddRow("ev-1", "Early", "d", "l", now, "u1", now, now).
			AddRow("ev-2", "Late", "d", "l", now.Add(time.Hour), "u2", now, now))

	events, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, events, 2)
	require.Equal(t, "Early", events[0].Title)
	require.Equal(t, "Late", events[1].Title)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestEventRepository_Update(t *testing.T) {
	ctx := context.Background()
	now := time.Now()
	db, mock := newMockDB(t)
	repo := NewEventRepository(db)

	title := "New title"
	mock.ExpectQuery(`UPDATE events SET updated_at = NOW\(\), title = \$1\s+WHERE id = \$2`).
		WithArgs("New title", "ev-1").
		WillReturnRows(sqlmock.NewRows(eventColumns()).
			AddRow("ev-1", "New title", "d", "l", now, "u1", now, now))

	event, err := repo.Update(ctx, "ev-1", &title, nil, nil, nil)
	require.NoError(t, err)
	require.Equal(t, "New title", event.Title)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestEventRepository_DeleteWithTags(t *testing.T) {
	ctx := context.Background()

	t.Run("detach and delete commit together", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewEventRepository(db)

		mock.ExpectBegin()
		mock.ExpectExec(`DELETE FROM event_tags WHERE event_id = \$1`).
			WithArgs("ev-1").
			WillReturnResult(sqlmock.NewResult(0, 2))
		mock.ExpectExec(`DELETE FROM events WHERE id = \$1`).
			WithArgs("ev-1").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		require.NoError(t, repo.DeleteWithTags(ctx, "ev-1"))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("delete failure rolls back the detach", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewEventRepository(db)

		mock.ExpectBegin()
		mock.ExpectExec(`DELETE FROM event_tags WHERE event_id = \$1`).
			WithArgs("ev-1").
			WillReturnResult(sqlmock.NewResult(0, 2))
		mock.ExpectExec(`DELETE FROM events WHERE id = \$1`).
			WithArgs("ev-1").
			WillReturnError(sql.ErrConnDone)
		mock.ExpectRollback()

		err := repo.DeleteWithTags(ctx, "ev-1")
		require.Error(t, err)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing event rolls back and reports not found", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewEventRepository(db)

		mock.ExpectBegin()
		mock.ExpectExec(`DELETE FROM event_tags WHERE event_id = \$1`).
			WithArgs("missing").
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec(`DELETE FROM events WHERE id = \$1`).
			WithArgs("missing").
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectRollback()

		err := repo.DeleteWithTags(ctx, "missing")
		require.ErrorIs(t, err, domain.ErrNotFound)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}
