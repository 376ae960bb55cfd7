package resumes

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"resume-builder/internal/llm"
	"resume-builder/internal/resume"
	"resume-builder/internal/search"
	"resume-builder/internal/shared/metrics"
	"resume-builder/internal/shared/telemetry"
)

// HintsSource supplies profile hints that steer generation. The profiles
// service implements it.
type HintsSource interface {
	HintsFor(ctx context.Context, userID string) (llm.ProfileHints, error)
}

// Edit is one path-addressed mutation of resume content.
type Edit struct {
	Path  []string `json:"path"`
	Value any      `json:"value"`
}

// Service contains business logic for resumes. Search is optional; when set,
// writes keep the index in sync on a best-effort basis.
type Service struct {
	Repo   Repo
	LLM    llm.Client
	Hints  HintsSource
	Search *search.Index
}

// Generate drafts a new resume from a bio and stores it.
func (s *Service) Generate(ctx context.Context, userID, bio string) (Record, error) {
	if strings.TrimSpace(bio) == "" {
		return Record{}, ErrInvalidInput
	}

	hints := llm.ProfileHints{}
	if s.Hints != nil {
		h, err := s.Hints.HintsFor(ctx, userID)
		if err == nil {
			hints = h
		}
	}

	metrics.IncGenerationStarted()
	started := time.Now()
	doc, err := s.LLM.GenerateResume(ctx, llm.GenerateResumeInput{Bio: bio, Profile: hints})
	metrics.ObserveGenerationDurationMs(float64(time.Since(started).Milliseconds()))
	if err != nil {
		metrics.IncGenerationFailed()
		return Record{}, err
	}
	metrics.IncGenerationCompleted()

	now := time.Now().UTC()
	rec := Record{
		ID:        uuid.NewString(),
		UserID:    userID,
		Title:     "Resume - " + now.Format("1/2/2006"),
		Content:   doc,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.Repo.Create(ctx, rec); err != nil {
		return Record{}, err
	}
	s.indexRecord(rec)
	return rec, nil
}

// Get returns one resume owned by the user.
func (s *Service) Get(ctx context.Context, userID, resumeID string) (Record, error) {
	if userID == "" || resumeID == "" {
		return Record{}, ErrInvalidInput
	}
	return s.Repo.GetByID(ctx, userID, resumeID)
}

// List returns the user's resumes, most recently updated first.
func (s *Service) List(ctx context.Context, userID string, limit, offset int) ([]Record, error) {
	if userID == "" {
		return nil, ErrInvalidInput
	}
	return s.Repo.ListByUser(ctx, userID, limit, offset)
}

// Save replaces title and/or content of an existing resume. Nil arguments
// leave the current value in place.
func (s *Service) Save(ctx context.Context, userID, resumeID string, title *string, content *resume.Document) (Record, error) {
	rec, err := s.Get(ctx, userID, resumeID)
	if err != nil {
		return Record{}, err
	}
	if title != nil {
		trimmed := strings.TrimSpace(*title)
		if trimmed == "" {
			return Record{}, ErrInvalidInput
		}
		rec.Title = trimmed
	}
	if content != nil {
		rec.Content = content.Normalized()
	}
	rec.UpdatedAt = time.Now().UTC()
	if err := s.Repo.Update(ctx, rec); err != nil {
		return Record{}, err
	}
	s.indexRecord(rec)
	return rec, nil
}

// ApplyEdits applies path edits to resume content in order. Either every edit
// lands or none does.
func (s *Service) ApplyEdits(ctx context.Context, userID, resumeID string, edits []Edit) (Record, error) {
	if len(edits) == 0 {
		return Record{}, ErrInvalidInput
	}
	rec, err := s.Get(ctx, userID, resumeID)
	if err != nil {
		return Record{}, err
	}

	doc := rec.Content
	for _, edit := range edits {
		doc, err = resume.Apply(doc, edit.Path, edit.Value)
		if err != nil {
			return Record{}, err
		}
	}

	rec.Content = doc
	rec.UpdatedAt = time.Now().UTC()
	if err := s.Repo.Update(ctx, rec); err != nil {
		return Record{}, err
	}
	s.indexRecord(rec)
	return rec, nil
}

// Delete removes a resume and drops it from the search index.
func (s *Service) Delete(ctx context.Context, userID, resumeID string) error {
	if userID == "" || resumeID == "" {
		return ErrInvalidInput
	}
	if err := s.Repo.Delete(ctx, userID, resumeID); err != nil {
		return err
	}
	s.unindex(resumeID)
	return nil
}

// DeleteAllByUser removes every resume owned by the user.
func (s *Service) DeleteAllByUser(ctx context.Context, userID string) error {
	ids, err := s.Repo.DeleteAllByUser(ctx, userID)
	if err != nil {
		return err
	}
	for _, id := range ids {
		s.unindex(id)
	}
	return nil
}

// FindByContent runs a full-text search over the user's resumes and resolves
// hits back to stored records. Ids present in the index but missing from the
// repo are skipped.
func (s *Service) FindByContent(ctx context.Context, userID, query string, limit int) ([]Record, error) {
	if s.Search == nil {
		return []Record{}, nil
	}
	hits, err := s.Search.Search(userID, query, limit)
	if err != nil {
		return nil, err
	}
	out := make([]Record, 0, len(hits))
	for _, hit := range hits {
		rec, err := s.Repo.GetByID(ctx, userID, hit.ID)
		if err != nil {
			continue
		}
		out = append(out, rec)
	}
	return out, nil
}

func (s *Service) indexRecord(rec Record) {
	if s.Search == nil {
		return
	}
	err := s.Search.Index(search.IndexedResume{
		ID:     rec.ID,
		UserID: rec.UserID,
		Title:  rec.Title,
		Body:   flattenContent(rec.Content),
	})
	if err != nil {
		telemetry.Error("search.index_failed", map[string]any{"resume_id": rec.ID, "error": err.Error()})
	}
}

func (s *Service) unindex(resumeID string) {
	if s.Search == nil {
		return
	}
	if err := s.Search.Delete(resumeID); err != nil {
		telemetry.Error("search.delete_failed", map[string]any{"resume_id": resumeID, "error": err.Error()})
	}
}

// flattenContent joins the free-text sections of a resume into one searchable
// body.
func flattenContent(doc resume.Document) string {
	doc = doc.Normalized()
	parts := []string{doc.FullName, doc.Location, doc.Summary}
	parts = append(parts, doc.Skills...)
	for _, exp := range doc.Experience {
		parts = append(parts, exp.Title, exp.Company)
		parts = append(parts, exp.Description...)
	}
	for _, edu := range doc.Education {
		parts = append(parts, edu.Degree, edu.Institution)
	}
	parts = append(parts, doc.Certifications...)
	for _, proj := range doc.Projects {
		parts = append(parts, proj.Name, proj.Description)
		parts = append(parts, proj.Technologies...)
	}

	joined := make([]string, 0, len(parts))
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			joined = append(joined, p)
		}
	}
	return strings.Join(joined, "\n")
}
