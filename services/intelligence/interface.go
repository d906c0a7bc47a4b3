package intelligence

import (
	"context"

	"github.com/Omarrio321/Aran-Repairs/models"
)

// TextGenerator is the slice of the Gemini client the diagnosis service
// needs. It exists so tests can substitute a canned generator.
type TextGenerator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

// DiagnosisService turns a free-text problem description into a repair
// suggestion. Diagnose never fails: any upstream problem (no credential,
// network, malformed payload) collapses into a low-confidence fallback
// result, so the wizard is never blocked.
//
// The wizard serializes one diagnosis at a time and drops results that
// arrive after a newer request was issued. That rule is formalized as
// request tokens: NextToken issues one per request, and a finished result
// is applied only while Current still reports its token as the latest.
type DiagnosisService interface {
	Diagnose(ctx context.Context, req models.DiagnosisRequest) *models.DiagnosisResult
	NextToken() uint64
	Current(token uint64) bool
}
