package resumes

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"resume-booster/internal/identity"
	"resume-booster/internal/shared/metrics"
	"resume-booster/internal/shared/storage/object"
	"resume-booster/internal/shared/telemetry"
	"resume-booster/internal/suggest"
)

const pdfContentType = "application/pdf"

// Service orchestrates the upload-and-annotate workflow across the object
// store and the suggestion engine. Dependencies are injected at startup and
// read-only afterwards, so one Service serves concurrent requests.
type Service struct {
	Store  object.Store
	Engine suggest.Engine
}

// NewService constructs a Service.
func NewService(store object.Store, engine suggest.Engine) *Service {
	return &Service{Store: store, Engine: engine}
}

// analysisOutcome is the explicit result of the best-effort suggestion
// stage: either suggestion text or the reason the stage degraded.
type analysisOutcome struct {
	suggestions string
	degraded    error
}

// Upload runs the core state machine for one resume upload. The original
// document write is fatal on failure; everything after a stored, reachable
// original is absorbed into a degraded record with a nil suggestions path.
func (s *Service) Upload(ctx context.Context, caller identity.Identity, declaredType string, data []byte) (Resume, error) {
	if !isPDFContentType(declaredType) {
		return Resume{}, fmt.Errorf("%w: only application/pdf uploads are accepted", ErrInvalidInput)
	}

	resumeID := uuid.NewString()
	key := resumeKey(caller.ID, resumeID)

	if err := s.Store.Put(ctx, key, pdfContentType, bytes.NewReader(data)); err != nil {
		return Resume{}, fmt.Errorf("%w: store original: %v", ErrStorage, err)
	}
	metrics.IncUpload()

	fileURL, err := s.Store.ResolveURL(ctx, key)
	if err != nil {
		return Resume{}, fmt.Errorf("%w: resolve url: %v", ErrStorage, err)
	}

	outcome := s.analyze(ctx, data)

	var suggestionsPath *string
	switch {
	case outcome.degraded != nil:
		metrics.IncAnalysisDegraded()
		telemetry.Warn("resumes.analysis.degraded", map[string]any{
			"resume_id": resumeID,
			"user_id":   caller.ID,
			"reason":    outcome.degraded.Error(),
		})
	case outcome.suggestions != "":
		sKey := suggestionKey(caller.ID, resumeID, uuid.NewString())
		if err := s.Store.Put(ctx, sKey, "text/markdown", strings.NewReader(outcome.suggestions)); err != nil {
			// The analysis output is orphaned here; not rolled back.
			metrics.IncAnalysisDegraded()
			telemetry.Warn("resumes.suggestions.store_degraded", map[string]any{
				"resume_id": resumeID,
				"user_id":   caller.ID,
				"reason":    err.Error(),
			})
		} else {
			suggestionsPath = &sKey
			metrics.IncAnalysisCompleted()
		}
	}

	return Resume{
		ID:              resumeID,
		UserID:          caller.ID,
		FileURL:         fileURL,
		SuggestionsPath: suggestionsPath,
		UploadedAt:      time.Now().UTC(),
	}, nil
}

// analyze runs the suggestion engine against the uploaded bytes. It never
// fails the upload; degradation is reported in the outcome.
func (s *Service) analyze(ctx context.Context, data []byte) analysisOutcome {
	if s.Engine == nil {
		return analysisOutcome{degraded: errors.New("suggestion engine not configured")}
	}

	metrics.IncAnalysisStarted()
	start := time.Now()
	suggestions, err := s.Engine.Suggest(ctx, data)
	metrics.ObserveAnalysisDurationMs(float64(time.Since(start)) / float64(time.Millisecond))
	if err != nil {
		return analysisOutcome{degraded: err}
	}
	return analysisOutcome{suggestions: suggestions}
}

// Suggestions returns the latest suggestion text for one of the caller's
// resumes. Object keys embed generated identifiers, so the lexicographically
// greatest key approximates the most recent upload attempt.
func (s *Service) Suggestions(ctx context.Context, caller identity.Identity, resumeID string) (SuggestionResponse, error) {
	if strings.TrimSpace(resumeID) == "" {
		return SuggestionResponse{}, fmt.Errorf("%w: resume id required", ErrInvalidInput)
	}

	infos, err := s.Store.List(ctx, suggestionsPrefix(caller.ID, resumeID))
	if err != nil {
		return SuggestionResponse{}, fmt.Errorf("%w: list suggestions: %v", ErrStorage, err)
	}
	if len(infos) == 0 {
		return SuggestionResponse{}, fmt.Errorf("%w: no suggestions for resume %s", ErrNotFound, resumeID)
	}

	latest := infos[0].Key
	for _, info := range infos[1:] {
		if info.Key > latest {
			latest = info.Key
		}
	}

	rc, err := s.Store.Open(ctx, latest)
	if err != nil {
		if errors.Is(err, object.ErrNotFound) {
			return SuggestionResponse{}, fmt.Errorf("%w: suggestions object missing", ErrNotFound)
		}
		return SuggestionResponse{}, fmt.Errorf("%w: open suggestions: %v", ErrStorage, err)
	}
	defer rc.Close()

	text, err := io.ReadAll(rc)
	if err != nil {
		return SuggestionResponse{}, fmt.Errorf("%w: read suggestions: %v", ErrStorage, err)
	}

	return SuggestionResponse{
		ResumeID:    resumeID,
		Suggestions: string(text),
		CreatedAt:   time.Now().UTC(),
	}, nil
}

// ListByUser reconstructs the caller's resume records from the storage
// listing; there is no independent index. The suggestionsPath on each record
// is the user/resume suggestions prefix, not a verified object key.
func (s *Service) ListByUser(ctx context.Context, caller identity.Identity, userID string) ([]Resume, error) {
	if userID != caller.ID {
		return nil, fmt.Errorf("%w: cannot list another user's resumes", ErrForbidden)
	}

	infos, err := s.Store.List(ctx, resumePrefix(userID))
	if err != nil {
		return nil, fmt.Errorf("%w: list resumes: %v", ErrStorage, err)
	}

	out := make([]Resume, 0, len(infos))
	for _, info := range infos {
		resumeID := resumeIDFromKey(info.Key)
		if resumeID == "" {
			continue
		}

		fileURL, err := s.Store.ResolveURL(ctx, info.Key)
		if err != nil {
			return nil, fmt.Errorf("%w: resolve url for %s: %v", ErrStorage, info.Key, err)
		}

		guess := strings.TrimSuffix(suggestionsPrefix(userID, resumeID), "/")
		out = append(out, Resume{
			ID:              resumeID,
			UserID:          userID,
			FileURL:         fileURL,
			SuggestionsPath: &guess,
			UploadedAt:      info.CreatedAt,
		})
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].UploadedAt.After(out[j].UploadedAt)
	})
	return out, nil
}

func isPDFContentType(declared string) bool {
	clean := strings.ToLower(strings.TrimSpace(strings.Split(declared, ";")[0]))
	return clean == pdfContentType
}
