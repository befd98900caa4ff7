package postgres_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/go-cmp/cmp"
	"github.com/jackc/pgx/v5/pgconn"

	"newswire/internal/domain/entity"
	pg "newswire/internal/infra/adapter/persistence/postgres"
)

/* ─────────────────────────── helpers ─────────────────────────── */

func strPtr(s string) *string { return &s }

func sentimentPtr(s entity.Sentiment) *entity.Sentiment { return &s }

func artRow(a *entity.Article) *sqlmock.Rows {
	var description, sentiment any
	if a.Description != nil {
		description = *a.Description
	}
	if a.Sentiment != nil {
		sentiment = string(*a.Sentiment)
	}
	return sqlmock.NewRows([]string{
		"id", "source_id", "title", "description", "link",
		"sentiment", "published_at", "created_at", "updated_at",
	}).AddRow(
		a.ID, a.SourceID, a.Title, description, a.Link,
		sentiment, a.PublishedAt, a.CreatedAt, a.UpdatedAt,
	)
}

func duplicateLinkErr() error {
	return &pgconn.PgError{Code: "23505", ConstraintName: "articles_link_key"}
}

/* ─────────────────────────── 1. Insert ─────────────────────────── */

func TestArticleRepo_Insert(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	now := time.Date(2025, 11, 15, 10, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO articles")).
		WithArgs(int64(2), "title", "desc", "https://x/1", "neutral", now).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).
			AddRow(int64(7), now, now))

	repo := pg.NewArticleRepo(db)
	art := &entity.Article{
		SourceID: 2, Title: "title", Description: strPtr("desc"),
		Link: "https://x/1", Sentiment: sentimentPtr(entity.SentimentNeutral),
		PublishedAt: now,
	}
	if err := repo.Insert(context.Background(), art); err != nil {
		t.Fatalf("Insert err=%v", err)
	}
	if art.ID != 7 || !art.CreatedAt.Equal(now) || !art.UpdatedAt.Equal(now) {
		t.Fatalf("store-assigned fields not written back: %+v", art)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestArticleRepo_Insert_DuplicateLink(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO articles")).
		WillReturnError(duplicateLinkErr())

	repo := pg.NewArticleRepo(db)
	err := repo.Insert(context.Background(), &entity.Article{
		SourceID: 2, Title: "t", Link: "https://x/1", PublishedAt: time.Now(),
	})
	if !errors.Is(err, entity.ErrDuplicateLink) {
		t.Fatalf("err=%v, want ErrDuplicateLink", err)
	}
}

func TestArticleRepo_Insert_OtherConstraintNotTranslated(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO articles")).
		WillReturnError(&pgconn.PgError{Code: "23503", ConstraintName: "articles_source_id_fkey"})

	repo := pg.NewArticleRepo(db)
	err := repo.Insert(context.Background(), &entity.Article{
		SourceID: 99, Title: "t", Link: "https://x/1", PublishedAt: time.Now(),
	})
	if err == nil || errors.Is(err, entity.ErrDuplicateLink) {
		t.Fatalf("err=%v, want untranslated storage error", err)
	}
}

/* ─────────────────────── 2. CreateWithTopics ─────────────────────── */

func TestArticleRepo_CreateWithTopics(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	now := time.Date(2025, 11, 15, 10, 0, 0, 0, time.UTC)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO articles")).
		WithArgs(int64(1), "T", nil, "https://x/1", nil, now).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).
			AddRow(int64(10), now, now))
	mock.ExpectExec(regexp.QuoteMeta(
		"INSERT INTO article_topics (article_id, topic_id) VALUES ($1, $2), ($3, $4)")).
		WithArgs(int64(10), int64(3), int64(10), int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectCommit()

	repo := pg.NewArticleRepo(db)
	art := &entity.Article{SourceID: 1, Title: "T", Link: "https://x/1", PublishedAt: now}
	if err := repo.CreateWithTopics(context.Background(), art, []int64{3, 5}); err != nil {
		t.Fatalf("CreateWithTopics err=%v", err)
	}
	if diff := cmp.Diff([]int64{3, 5}, art.TopicIDs); diff != "" {
		t.Fatalf("topic ids mismatch (-want +got):\n%s", diff)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestArticleRepo_CreateWithTopics_NoTopics(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	now := time.Now()

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO articles")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).
			AddRow(int64(11), now, now))
	mock.ExpectCommit()

	repo := pg.NewArticleRepo(db)
	art := &entity.Article{SourceID: 1, Title: "T", Link: "https://x/2", PublishedAt: now}
	if err := repo.CreateWithTopics(context.Background(), art, nil); err != nil {
		t.Fatalf("CreateWithTopics err=%v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestArticleRepo_CreateWithTopics_DuplicateRollsBack(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO articles")).
		WillReturnError(duplicateLinkErr())
	mock.ExpectRollback()

	repo := pg.NewArticleRepo(db)
	err := repo.CreateWithTopics(context.Background(), &entity.Article{
		SourceID: 1, Title: "T", Link: "https://x/1", PublishedAt: time.Now(),
	}, []int64{3})
	if !errors.Is(err, entity.ErrDuplicateLink) {
		t.Fatalf("err=%v, want ErrDuplicateLink", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestArticleRepo_CreateWithTopics_AssociationFailureRollsBack(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	now := time.Now()

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO articles")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).
			AddRow(int64(12), now, now))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO article_topics")).
		WillReturnError(errors.New("connection reset"))
	mock.ExpectRollback()

	repo := pg.NewArticleRepo(db)
	err := repo.CreateWithTopics(context.Background(), &entity.Article{
		SourceID: 1, Title: "T", Link: "https://x/3", PublishedAt: now,
	}, []int64{3})
	if err == nil || errors.Is(err, entity.ErrDuplicateLink) {
		t.Fatalf("err=%v, want storage error", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

/* ────────────────────── 3. InsertTopicLinks ────────────────────── */

func TestArticleRepo_InsertTopicLinks(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectExec(regexp.QuoteMeta(
		"INSERT INTO article_topics (article_id, topic_id) VALUES ($1, $2), ($3, $4)")).
		WithArgs(int64(7), int64(1), int64(7), int64(2)).
		WillReturnResult(sqlmock.NewResult(0, 2))

	repo := pg.NewArticleRepo(db)
	if err := repo.InsertTopicLinks(context.Background(), 7, []int64{1, 2}); err != nil {
		t.Fatalf("InsertTopicLinks err=%v", err)
	}
}

func TestArticleRepo_InsertTopicLinks_Empty(t *testing.T) {
	db, _, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	repo := pg.NewArticleRepo(db)
	if err := repo.InsertTopicLinks(context.Background(), 7, nil); err != nil {
		t.Fatalf("InsertTopicLinks err=%v", err)
	}
}

/* ─────────────────────────── 4. Delete ─────────────────────────── */

func TestArticleRepo_Delete(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectExec("DELETE FROM articles").
		WithArgs(int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := pg.NewArticleRepo(db)
	if err := repo.Delete(context.Background(), 1); err != nil {
		t.Fatalf("Delete err=%v", err)
	}
}

/* ──────────────────────────── 5. Get ──────────────────────────── */

func TestArticleRepo_Get(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	now := time.Date(2025, 11, 15, 0, 0, 0, 0, time.UTC)
	want := &entity.Article{
		ID: 1, SourceID: 2, Title: "Go 1.25 released",
		Description: strPtr("summary"), Link: "https://example.com",
		Sentiment:   sentimentPtr(entity.SentimentPositive),
		PublishedAt: now, CreatedAt: now, UpdatedAt: now,
	}

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id")).
		WithArgs(int64(1)).
		WillReturnRows(artRow(want))

	repo := pg.NewArticleRepo(db)
	got, err := repo.Get(context.Background(), 1)
	if err != nil {
		t.Fatalf("Get err=%v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}

func TestArticleRepo_Get_NotFound(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id")).
		WithArgs(int64(404)).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "source_id", "title", "description", "link",
			"sentiment", "published_at", "created_at", "updated_at",
		}))

	repo := pg.NewArticleRepo(db)
	got, err := repo.Get(context.Background(), 404)
	if err != nil {
		t.Fatalf("Get err=%v", err)
	}
	if got != nil {
		t.Fatalf("Get = %+v, want nil", got)
	}
}

/* ────────────────────────── 6. TopicIDs ────────────────────────── */

func TestArticleRepo_TopicIDs(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectQuery("FROM article_topics").
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"topic_id"}).
			AddRow(int64(1)).AddRow(int64(4)))

	repo := pg.NewArticleRepo(db)
	got, err := repo.TopicIDs(context.Background(), 7)
	if err != nil {
		t.Fatalf("TopicIDs err=%v", err)
	}
	if diff := cmp.Diff([]int64{1, 4}, got); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}

/* ─────────────────────── 7. ListPaginated ─────────────────────── */

func TestArticleRepo_ListPaginated(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	now := time.Now()
	mock.ExpectQuery("FROM articles").
		WithArgs(20, 0).
		WillReturnRows(artRow(&entity.Article{
			ID: 1, SourceID: 2, Title: "x", Link: "https://y",
			PublishedAt: now, CreatedAt: now, UpdatedAt: now,
		}))

	repo := pg.NewArticleRepo(db)
	got, err := repo.ListPaginated(context.Background(), 0, 20)
	if err != nil || len(got) != 1 {
		t.Fatalf("ListPaginated err=%v len=%d", err, len(got))
	}
}

func TestArticleRepo_Count(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM articles")).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(42)))

	repo := pg.NewArticleRepo(db)
	count, err := repo.Count(context.Background())
	if err != nil || count != 42 {
		t.Fatalf("Count err=%v count=%d", err, count)
	}
}
