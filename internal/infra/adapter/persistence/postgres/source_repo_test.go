package postgres_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/go-cmp/cmp"

	"newswire/internal/domain/entity"
	pg "newswire/internal/infra/adapter/persistence/postgres"
)

func TestSourceRepo_Get(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	now := time.Date(2025, 7, 19, 0, 0, 0, 0, time.UTC)
	want := &entity.Source{
		ID: 1, Name: "The Wire", FeedURL: "https://example.com/rss",
		Active: true, CreatedAt: now,
	}

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, name, feed_url, active, created_at")).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "feed_url", "active", "created_at"}).
			AddRow(want.ID, want.Name, want.FeedURL, want.Active, want.CreatedAt))

	repo := pg.NewSourceRepo(db)
	got, err := repo.Get(context.Background(), 1)
	if err != nil {
		t.Fatalf("Get err=%v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}

func TestSourceRepo_Get_NotFound(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, name, feed_url, active, created_at")).
		WithArgs(int64(404)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "feed_url", "active", "created_at"}))

	repo := pg.NewSourceRepo(db)
	got, err := repo.Get(context.Background(), 404)
	if err != nil || got != nil {
		t.Fatalf("Get = (%+v, %v), want (nil, nil)", got, err)
	}
}

func TestSourceRepo_Exists(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS (SELECT 1 FROM sources WHERE id = $1)")).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	repo := pg.NewSourceRepo(db)
	ok, err := repo.Exists(context.Background(), 1)
	if err != nil || !ok {
		t.Fatalf("Exists err=%v ok=%v", err, ok)
	}
}

func TestSourceRepo_Exists_Missing(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS (SELECT 1 FROM sources WHERE id = $1)")).
		WithArgs(int64(99)).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))

	repo := pg.NewSourceRepo(db)
	ok, err := repo.Exists(context.Background(), 99)
	if err != nil {
		t.Fatalf("Exists err=%v", err)
	}
	if ok {
		t.Fatal("Exists want false, got true")
	}
}

func TestSourceRepo_Create(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	now := time.Now()
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO sources")).
		WithArgs("The Wire", "https://example.com/rss", true).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(int64(3), now))

	repo := pg.NewSourceRepo(db)
	src := &entity.Source{Name: "The Wire", FeedURL: "https://example.com/rss", Active: true}
	if err := repo.Create(context.Background(), src); err != nil {
		t.Fatalf("Create err=%v", err)
	}
	if src.ID != 3 {
		t.Fatalf("ID = %d, want 3", src.ID)
	}
}

func TestSourceRepo_List(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	now := time.Now()
	mock.ExpectQuery("FROM sources").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "feed_url", "active", "created_at"}).
			AddRow(int64(1), "a", "https://a", true, now).
			AddRow(int64(2), "b", "https://b", false, now))

	repo := pg.NewSourceRepo(db)
	got, err := repo.List(context.Background())
	if err != nil || len(got) != 2 {
		t.Fatalf("List err=%v len=%d", err, len(got))
	}
}
