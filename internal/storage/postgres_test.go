package storage

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newPostgresTestStore(t *testing.T) (*PostgresStore, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: conn}), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	return &PostgresStore{db: db}, mock
}

func TestPostgresStoreGet(t *testing.T) {
	store, mock := newPostgresTestStore(t)

	rows := sqlmock.NewRows([]string{"key", "value", "updated_at"}).
		AddRow("architect_society_users", []byte(`[{"id":"u1"}]`), time.Now())
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "kv_entries" WHERE key = $1 ORDER BY "kv_entries"."key" LIMIT $2`)).
		WithArgs("architect_society_users", 1).
		WillReturnRows(rows)

	got, err := store.Get(context.Background(), "architect_society_users")
	require.NoError(t, err)
	assert.Equal(t, []byte(`[{"id":"u1"}]`), got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStoreGetMissingKey(t *testing.T) {
	store, mock := newPostgresTestStore(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "kv_entries" WHERE key = $1`)).
		WithArgs("architect_society_posts", 1).
		WillReturnRows(sqlmock.NewRows([]string{"key", "value", "updated_at"}))

	_, err := store.Get(context.Background(), "architect_society_posts")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStoreSetUpserts(t *testing.T) {
	store, mock := newPostgresTestStore(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO "kv_entries" ("key","value","updated_at") VALUES ($1,$2,$3) ON CONFLICT ("key") DO UPDATE SET "value"="excluded"."value","updated_at"="excluded"."updated_at"`)).
		WithArgs("architect_society_games", []byte(`[]`), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, store.Set(context.Background(), "architect_society_games", []byte(`[]`)))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStoreSetPropagatesError(t *testing.T) {
	store, mock := newPostgresTestStore(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO "kv_entries"`)).
		WillReturnError(assert.AnError)
	mock.ExpectRollback()

	err := store.Set(context.Background(), "architect_society_users", []byte(`[]`))
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
