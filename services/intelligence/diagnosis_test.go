package intelligence

import (
	"context"
	"errors"
	"testing"

	"github.com/Omarrio321/Aran-Repairs/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// cannedGenerator is the TextGenerator used in tests.
type cannedGenerator struct {
	text string
	err  error
}

func (g *cannedGenerator) GenerateContent(context.Context, string) (string, error) {
	return g.text, g.err
}

func screenRequest() models.DiagnosisRequest {
	return models.DiagnosisRequest{
		Description: "My screen is cracked and has lines",
		DeviceType:  models.DevicePhone,
	}
}

func TestDiagnoseWithoutCredential(t *testing.T) {
	svc := NewDefaultDiagnosisService("")

	result := svc.Diagnose(context.Background(), screenRequest())
	require.NotNil(t, result)
	assert.Equal(t, models.ConfidenceLow, result.Confidence)
	assert.Nil(t, result.RecommendedRepairID)
	assert.NotEmpty(t, result.Diagnosis)
}

func TestDiagnoseGeneratorFailure(t *testing.T) {
	svc := NewDiagnosisServiceWithGenerator(&cannedGenerator{err: errors.New("network down")})

	result := svc.Diagnose(context.Background(), screenRequest())
	assert.Equal(t, models.ConfidenceLow, result.Confidence)
	assert.Nil(t, result.RecommendedRepairID)
}

func TestDiagnoseMalformedPayload(t *testing.T) {
	cases := []struct {
		name string
		text string
	}{
		{name: "not json", text: "the screen is broken"},
		{name: "truncated", text: `{"diagnosis": "cracked`},
		{name: "missing diagnosis", text: `{"confidence": "High"}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := NewDiagnosisServiceWithGenerator(&cannedGenerator{text: tc.text})

			result := svc.Diagnose(context.Background(), screenRequest())
			assert.Equal(t, models.ConfidenceLow, result.Confidence)
			assert.Nil(t, result.RecommendedRepairID)
		})
	}
}

func TestDiagnoseWellFormedResult(t *testing.T) {
	svc := NewDiagnosisServiceWithGenerator(&cannedGenerator{
		text: `{"diagnosis": "The display panel is damaged.", "recommendedRepairId": "screen-org", "confidence": "High"}`,
	})

	result := svc.Diagnose(context.Background(), screenRequest())
	assert.Equal(t, "The display panel is damaged.", result.Diagnosis)
	assert.Equal(t, models.ConfidenceHigh, result.Confidence)
	require.NotNil(t, result.RecommendedRepairID)
	assert.Equal(t, "screen-org", *result.RecommendedRepairID)
}

func TestDiagnoseToleratesCodeFence(t *testing.T) {
	svc := NewDiagnosisServiceWithGenerator(&cannedGenerator{
		text: "```json\n{\"diagnosis\": \"Battery is worn out.\", \"recommendedRepairId\": \"battery\", \"confidence\": \"medium\"}\n```",
	})

	result := svc.Diagnose(context.Background(), screenRequest())
	assert.Equal(t, models.ConfidenceMedium, result.Confidence)
	require.NotNil(t, result.RecommendedRepairID)
	assert.Equal(t, "battery", *result.RecommendedRepairID)
}

func TestDiagnoseDropsOffMenuRecommendation(t *testing.T) {
	svc := NewDiagnosisServiceWithGenerator(&cannedGenerator{
		text: `{"diagnosis": "Needs a flux capacitor.", "recommendedRepairId": "flux-capacitor", "confidence": "High"}`,
	})

	result := svc.Diagnose(context.Background(), screenRequest())
	assert.Equal(t, models.ConfidenceHigh, result.Confidence)
	assert.Nil(t, result.RecommendedRepairID)
}

func TestConfidenceNormalization(t *testing.T) {
	assert.Equal(t, models.ConfidenceHigh, normalizeConfidence("high"))
	assert.Equal(t, models.ConfidenceHigh, normalizeConfidence(" High "))
	assert.Equal(t, models.ConfidenceMedium, normalizeConfidence("MEDIUM"))
	assert.Equal(t, models.ConfidenceLow, normalizeConfidence("low"))
	assert.Equal(t, models.ConfidenceLow, normalizeConfidence("certain"))
	assert.Equal(t, models.ConfidenceLow, normalizeConfidence(""))
}

func TestRequestTokens(t *testing.T) {
	svc := NewDiagnosisServiceWithGenerator(&cannedGenerator{text: "{}"})

	first := svc.NextToken()
	assert.True(t, svc.Current(first))

	second := svc.NextToken()
	assert.False(t, svc.Current(first), "older token must be stale once a newer request is issued")
	assert.True(t, svc.Current(second))
}
