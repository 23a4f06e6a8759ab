package suggest

import (
	"context"

	"resume-booster/internal/extract"
	"resume-booster/internal/llm"
)

// Engine derives improvement suggestions from a raw uploaded document.
type Engine interface {
	Suggest(ctx context.Context, data []byte) (string, error)
}

// PDFEngine extracts plain text from a PDF and submits it to the configured
// LLM client. Extraction failures surface as extract.ErrInvalidPDF; provider
// failures surface as the client's error. Callers decide whether either is
// fatal.
type PDFEngine struct {
	LLM llm.Client
}

// NewPDFEngine constructs a PDFEngine.
func NewPDFEngine(client llm.Client) *PDFEngine {
	return &PDFEngine{LLM: client}
}

// Suggest runs extraction then inference and returns the advisory text
// verbatim.
func (e *PDFEngine) Suggest(ctx context.Context, data []byte) (string, error) {
	text, err := extract.Text(data)
	if err != nil {
		return "", err
	}
	return e.LLM.SuggestImprovements(ctx, text)
}

var _ Engine = (*PDFEngine)(nil)
