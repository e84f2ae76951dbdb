package library

import (
	"context"
	"database/sql"
	"errors"
	"math"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/playhub-library/internal/server/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testUserID = "11111111-1111-1111-1111-111111111111"
	testGameID = "99999999-9999-9999-9999-999999999999"
)

var (
	upsertRe        = regexp.QuoteMeta("INSERT INTO library.library_entries (user_id, game_id, game_status)") + ".*" + regexp.QuoteMeta("ON CONFLICT (user_id, game_id)") + ".*" + regexp.QuoteMeta("RETURNING user_id, game_id, game_status, created_at, updated_at")
	listRe          = regexp.QuoteMeta("WHERE user_id = $1 ORDER BY updated_at DESC, game_id LIMIT $2 OFFSET $3")
	listByStatusRe  = regexp.QuoteMeta("WHERE user_id = $1 AND game_status = $2::library.game_status ORDER BY updated_at DESC, game_id LIMIT $3 OFFSET $4")
	countRe         = regexp.QuoteMeta("SELECT COUNT(*) FROM library.library_entries WHERE user_id = $1")
	entryColumns    = []string{"user_id", "game_id", "game_status", "created_at", "updated_at"}
	testCreatedTime = time.Date(2023, 10, 5, 12, 0, 0, 0, time.UTC)
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

func TestUpsert_ReturnsStoredRow(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	updated := testCreatedTime.Add(time.Hour)
	mock.ExpectQuery(upsertRe).
		WithArgs(testUserID, testGameID, "completed").
		WillReturnRows(sqlmock.NewRows(entryColumns).
			AddRow(testUserID, testGameID, "completed", testCreatedTime, updated))

	got, err := repo.Upsert(context.Background(), testUserID, testGameID, models.GameStatusCompleted)
	require.NoError(t, err)

	assert.Equal(t, uuid.MustParse(testUserID), got.UserID)
	assert.Equal(t, uuid.MustParse(testGameID), got.GameID)
	assert.Equal(t, models.GameStatusCompleted, got.Status)
	assert.Equal(t, testCreatedTime, got.CreatedAt)
	assert.Equal(t, updated, got.UpdatedAt)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpsert_ResetsBothTimestampsOnConflict(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := regexp.QuoteMeta("game_status = EXCLUDED.game_status, created_at = timezone('utc', NOW()), updated_at = timezone('utc', NOW())")
	mock.ExpectQuery(q).
		WithArgs(testUserID, testGameID, "plan").
		WillReturnRows(sqlmock.NewRows(entryColumns).
			AddRow(testUserID, testGameID, "plan", testCreatedTime, testCreatedTime))

	_, err := repo.Upsert(context.Background(), testUserID, testGameID, models.GameStatusPlan)
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpsert_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(upsertRe).
		WithArgs("u", "g", "plan").
		WillReturnError(errors.New("db is down"))

	got, err := repo.Upsert(context.Background(), "u", "g", models.GameStatusPlan)
	assert.Nil(t, got)
	if err == nil || !regexp.MustCompile(`db error: .*db is down`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}

func TestUpsert_NoRowReturned(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(upsertRe).
		WithArgs(testUserID, testGameID, "playing").
		WillReturnRows(sqlmock.NewRows(entryColumns))

	_, err := repo.Upsert(context.Background(), testUserID, testGameID, models.GameStatusPlaying)
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestUpsert_UnknownStoredStatusDegrades(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(upsertRe).
		WithArgs(testUserID, testGameID, "waiting").
		WillReturnRows(sqlmock.NewRows(entryColumns).
			AddRow(testUserID, testGameID, "archived", testCreatedTime, testCreatedTime))

	got, err := repo.Upsert(context.Background(), testUserID, testGameID, models.GameStatusWaiting)
	require.NoError(t, err)
	assert.Equal(t, models.GameStatusUnspecified, got.Status)
}

func TestList_OrderedWindowWithoutFilter(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	g1, g2 := uuid.New().String(), uuid.New().String()
	rows := sqlmock.NewRows(entryColumns).
		AddRow(testUserID, g1, "playing", testCreatedTime, testCreatedTime.Add(2*time.Hour)).
		AddRow(testUserID, g2, "dropped", testCreatedTime, testCreatedTime.Add(time.Hour))

	mock.ExpectQuery(listRe).
		WithArgs(testUserID, int32(10), int32(0)).
		WillReturnRows(rows)

	got, err := repo.List(context.Background(), testUserID, models.GameStatusUnspecified, 10, 0)
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, g1, got[0].GameID.String())
	assert.Equal(t, models.GameStatusPlaying, got[0].Status)
	assert.Equal(t, g2, got[1].GameID.String())
	assert.Equal(t, models.GameStatusDropped, got[1].Status)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestList_FiltersByStatus(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(listByStatusRe).
		WithArgs(testUserID, "completed", int32(5), int32(10)).
		WillReturnRows(sqlmock.NewRows(entryColumns).
			AddRow(testUserID, testGameID, "completed", testCreatedTime, testCreatedTime))

	got, err := repo.List(context.Background(), testUserID, models.GameStatusCompleted, 5, 10)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, models.GameStatusCompleted, got[0].Status)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestList_EmptyIsNotAnError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(listRe).
		WithArgs(testUserID, int32(20), int32(0)).
		WillReturnRows(sqlmock.NewRows(entryColumns))

	got, err := repo.List(context.Background(), testUserID, models.GameStatusUnspecified, 20, 0)
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestList_QueryError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(listRe).
		WithArgs(testUserID, int32(10), int32(0)).
		WillReturnError(errors.New("db err"))

	_, err := repo.List(context.Background(), testUserID, models.GameStatusUnspecified, 10, 0)
	if err == nil || !regexp.MustCompile(`failed to select library entries: .*db err`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped select error, got %v", err)
	}
}

func TestList_ScanRowError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(listRe).
		WithArgs(testUserID, int32(10), int32(0)).
		WillReturnRows(sqlmock.NewRows(entryColumns).
			AddRow("not-a-uuid", testGameID, "plan", testCreatedTime, testCreatedTime))

	_, err := repo.List(context.Background(), testUserID, models.GameStatusUnspecified, 10, 0)
	if err == nil || !regexp.MustCompile(`failed to scan library entry`).MatchString(err.Error()) {
		t.Fatalf("expected scan error, got %v", err)
	}
}

func TestList_RowsErr(t *testing.T) {
	rowErr := errors.New("row-err")
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	rows := sqlmock.NewRows(entryColumns).
		AddRow(testUserID, testGameID, "plan", testCreatedTime, testCreatedTime).
		AddRow(testUserID, uuid.New().String(), "plan", testCreatedTime, testCreatedTime).
		RowError(1, rowErr)

	mock.ExpectQuery(listRe).
		WithArgs(testUserID, int32(10), int32(0)).
		WillReturnRows(rows)

	_, err := repo.List(context.Background(), testUserID, models.GameStatusUnspecified, 10, 0)
	if err == nil || err.Error() != "failed to iterate library entries: row-err" {
		t.Fatalf("expected wrapped rows.Err, got %v", err)
	}
	if !errors.Is(err, rowErr) {
		t.Fatalf("expected errors.Is(err, rowErr), got %v", err)
	}
}

func TestCount(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(countRe).
		WithArgs(testUserID).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(42)))

	n, err := repo.Count(context.Background(), testUserID)
	require.NoError(t, err)
	assert.Equal(t, int32(42), n)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCount_SaturatesAtMaxInt32(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(countRe).
		WithArgs(testUserID).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(math.MaxInt32) + 10))

	n, err := repo.Count(context.Background(), testUserID)
	require.NoError(t, err)
	assert.Equal(t, int32(math.MaxInt32), n)
}

func TestCount_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(countRe).
		WithArgs(testUserID).
		WillReturnError(errors.New("connection reset"))

	n, err := repo.Count(context.Background(), testUserID)
	assert.Equal(t, int32(0), n)
	if err == nil || !regexp.MustCompile(`db error: .*connection reset`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}

func TestPostgresRepository_ImplementsRepository(t *testing.T) {
	var _ Repository = (*PostgresRepository)(nil)
}
