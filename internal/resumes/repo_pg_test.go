package resumes

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"resume-builder/internal/resume"
)

func newMockRepo(t *testing.T) (*PGRepo, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return &PGRepo{DB: db}, mock
}

func TestPGRepoCreateStoresEncodedContent(t *testing.T) {
	repo, mock := newMockRepo(t)

	now := time.Now().UTC()
	rec := Record{
		ID:     "resume-1",
		UserID: "user-1",
		Title:  "Resume - 8/29/2026",
		Content: resume.Document{
			FullName: "Jane Doe",
			Contact:  &resume.Contact{Email: "j@x.com"},
		}.Normalized(),
		CreatedAt: now,
		UpdatedAt: now,
	}

	mock.ExpectExec("INSERT INTO resumes").
		WithArgs(
			rec.ID,
			rec.UserID,
			rec.Title,
			sqlmock.AnyArg(), // content JSONB
			rec.CreatedAt,
			rec.UpdatedAt,
		).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := repo.Create(context.Background(), rec); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoGetByIDDecodesContent(t *testing.T) {
	repo, mock := newMockRepo(t)

	now := time.Now().UTC()
	content := []byte(`{"fullName":"Jane Doe","contact":{"email":"j@x.com","phone":""}}`)
	rows := sqlmock.NewRows([]string{"id", "user_id", "title", "content", "created_at", "updated_at"}).
		AddRow("resume-1", "user-1", "My Resume", content, now, now)

	mock.ExpectQuery("SELECT id, user_id, title, content, created_at, updated_at").
		WithArgs("user-1", "resume-1").
		WillReturnRows(rows)

	rec, err := repo.GetByID(context.Background(), "user-1", "resume-1")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if rec.Content.FullName != "Jane Doe" || rec.Content.Contact.Email != "j@x.com" {
		t.Fatalf("unexpected decoded content: %+v", rec.Content)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoGetByIDNotFound(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery("SELECT id, user_id, title, content, created_at, updated_at").
		WithArgs("user-1", "missing").
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "title", "content", "created_at", "updated_at"}))

	if _, err := repo.GetByID(context.Background(), "user-1", "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPGRepoUpdateMissingRowIsNotFound(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec("UPDATE resumes").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), "user-1", "missing").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Update(context.Background(), Record{
		ID:      "missing",
		UserID:  "user-1",
		Title:   "t",
		Content: resume.Document{}.Normalized(),
	})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPGRepoDeleteAllReturnsIDs(t *testing.T) {
	repo, mock := newMockRepo(t)

	rows := sqlmock.NewRows([]string{"id"}).AddRow("resume-1").AddRow("resume-2")
	mock.ExpectQuery("DELETE FROM resumes").
		WithArgs("user-1").
		WillReturnRows(rows)

	ids, err := repo.DeleteAllByUser(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("DeleteAllByUser: %v", err)
	}
	if len(ids) != 2 || ids[0] != "resume-1" || ids[1] != "resume-2" {
		t.Fatalf("unexpected ids: %v", ids)
	}
}
