package repository

import (
	"context"
	"regexp"
	"testing"

	"skillswap/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSwapRequestRepository_GetByUser(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewSwapRequestRepository(db)
	ctx := context.Background()

	reqRows := sqlmock.NewRows([]string{"id", "requester_id", "provider_id", "offered_skill_id", "requested_skill_id", "status"}).
		AddRow(1, 5, 9, 100, 200, "pending")
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "swap_requests" WHERE requester_id = $1 OR provider_id = $2 ORDER BY created_at DESC`)).
		WithArgs(5, 5).
		WillReturnRows(reqRows)

	// Preloads for both skill and both user sides
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "skills" WHERE "skills"."id" = $1`)).
		WithArgs(100).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow(100, "Guitar Lessons"))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "users" WHERE "users"."id" = $1`)).
		WithArgs(9).
		WillReturnRows(sqlmock.NewRows([]string{"id", "username"}).AddRow(9, "provider"))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "skills" WHERE "skills"."id" = $1`)).
		WithArgs(200).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow(200, "Excel Training"))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "users" WHERE "users"."id" = $1`)).
		WithArgs(5).
		WillReturnRows(sqlmock.NewRows([]string{"id", "username"}).AddRow(5, "requester"))

	reqs, err := repo.GetByUser(ctx, 5)
	assert.NoError(t, err)
	require.Len(t, reqs, 1)
	assert.Equal(t, models.SwapRequestPending, reqs[0].Status)
}

func TestSwapRequestRepository_UpdateStatus(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewSwapRequestRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta(`UPDATE "swap_requests" SET "status"=$1,"updated_at"=$2 WHERE id = $3`)).
			WithArgs("accepted", sqlmock.AnyArg(), 1).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		err := repo.UpdateStatus(ctx, 1, models.SwapRequestAccepted)
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Not Found", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta(`UPDATE "swap_requests" SET "status"=$1,"updated_at"=$2 WHERE id = $3`)).
			WithArgs("accepted", sqlmock.AnyArg(), 99).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectCommit()

		err := repo.UpdateStatus(ctx, 99, models.SwapRequestAccepted)
		assert.Error(t, err)

		var appErr *models.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "NOT_FOUND", appErr.Code)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestSwapRequestRepository_Delete(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewSwapRequestRepository(db)
	ctx := context.Background()

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "swap_requests" WHERE "swap_requests"."id" = $1`)).
		WithArgs(1).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.Delete(ctx, 1)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
