package intelligence

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/Omarrio321/Aran-Repairs/catalog"
	"github.com/Omarrio321/Aran-Repairs/models"
	"github.com/Omarrio321/Aran-Repairs/utils"

	"go.uber.org/zap"
)

const (
	msgUnavailable = "AI diagnosis is currently unavailable."
	msgFallback    = "We couldn't automatically diagnose the issue. Please select a repair manually."
)

// DefaultDiagnosisService implements DiagnosisService over a Gemini-backed
// text generator. A nil generator means no credential was configured; the
// service then always answers with the fallback.
type DefaultDiagnosisService struct {
	generator TextGenerator
	seq       atomic.Uint64
}

// NewDefaultDiagnosisService wires the gateway. An empty API key disables
// it: the service stays usable and degrades to the fallback answer.
func NewDefaultDiagnosisService(apiKey string) *DefaultDiagnosisService {
	svc := &DefaultDiagnosisService{}
	if apiKey == "" {
		utils.GetLogger().Warn("Gemini API key missing, diagnosis gateway disabled")
		return svc
	}
	client, err := NewGeminiClient(apiKey)
	if err != nil {
		utils.GetLogger().Warn("Gemini client init failed, diagnosis gateway disabled", zap.Error(err))
		return svc
	}
	svc.generator = client
	return svc
}

// NewDiagnosisServiceWithGenerator injects a custom generator.
func NewDiagnosisServiceWithGenerator(gen TextGenerator) *DefaultDiagnosisService {
	return &DefaultDiagnosisService{generator: gen}
}

// NextToken issues a request token.
func (s *DefaultDiagnosisService) NextToken() uint64 {
	return s.seq.Add(1)
}

// Current reports whether the token is still the latest issued.
func (s *DefaultDiagnosisService) Current(token uint64) bool {
	return s.seq.Load() == token
}

// Diagnose analyzes the described problem against the device type's repair
// menu. It never returns an error.
func (s *DefaultDiagnosisService) Diagnose(ctx context.Context, req models.DiagnosisRequest) *models.DiagnosisResult {
	logger := utils.GetLogger()

	if s.generator == nil {
		return fallbackResult(msgUnavailable)
	}

	text, err := s.generator.GenerateContent(ctx, buildPrompt(req))
	if err != nil {
		logger.Warn("Diagnosis call failed", zap.Error(err))
		return fallbackResult(msgFallback)
	}

	result, err := parseResult(text, req.DeviceType)
	if err != nil {
		logger.Warn("Diagnosis response unparseable", zap.Error(err), zap.String("raw", text))
		return fallbackResult(msgFallback)
	}
	return result
}

func buildPrompt(req models.DiagnosisRequest) string {
	var repairList []string
	for _, r := range catalog.RepairsForType(req.DeviceType) {
		repairList = append(repairList, fmt.Sprintf("%s: %s", r.ID, r.Name))
	}
	device := string(req.DeviceType)
	if device == "" {
		device = "device"
	}

	return fmt.Sprintf(`You are an expert device repair technician AI.
User Problem: %q
Context: User is looking for repairs for a %s.

Available Repair Services: [%s]

Task:
1. Analyze the problem.
2. Suggest the most likely technical issue.
3. Recommend the BEST matching repair ID from the list provided above if applicable. If no specific repair matches well, return null.
4. Provide a confidence level (Low, Medium, High).

Return strictly valid JSON in this format:
{
  "diagnosis": "Short explanation of the technical fault (max 2 sentences).",
  "recommendedRepairId": "id_from_list_or_null",
  "confidence": "High/Medium/Low"
}`, req.Description, device, strings.Join(repairList, ", "))
}

// parseResult decodes the strict-JSON payload the prompt demands. Anything
// non-conforming is an error so the caller can fall back.
func parseResult(text string, deviceType models.DeviceType) (*models.DiagnosisResult, error) {
	var raw struct {
		Diagnosis           string  `json:"diagnosis"`
		RecommendedRepairID *string `json:"recommendedRepairId"`
		Confidence          string  `json:"confidence"`
	}
	if err := json.Unmarshal([]byte(stripCodeFence(text)), &raw); err != nil {
		return nil, fmt.Errorf("decode diagnosis payload: %w", err)
	}
	if raw.Diagnosis == "" {
		return nil, fmt.Errorf("diagnosis payload has no diagnosis text")
	}

	result := &models.DiagnosisResult{
		Diagnosis:  raw.Diagnosis,
		Confidence: normalizeConfidence(raw.Confidence),
	}

	// Only surface recommendations that are actually on the menu.
	if raw.RecommendedRepairID != nil && *raw.RecommendedRepairID != "null" {
		if _, ok := catalog.RepairByID(deviceType, *raw.RecommendedRepairID); ok {
			result.RecommendedRepairID = raw.RecommendedRepairID
		}
	}
	return result, nil
}

// stripCodeFence tolerates models that wrap JSON in a markdown fence.
func stripCodeFence(text string) string {
	text = strings.TrimSpace(text)
	if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```json")
		text = strings.TrimPrefix(text, "```")
		text = strings.TrimSuffix(text, "```")
	}
	return strings.TrimSpace(text)
}

func normalizeConfidence(c string) string {
	switch strings.ToLower(strings.TrimSpace(c)) {
	case "high":
		return models.ConfidenceHigh
	case "medium":
		return models.ConfidenceMedium
	default:
		return models.ConfidenceLow
	}
}

func fallbackResult(msg string) *models.DiagnosisResult {
	return &models.DiagnosisResult{
		Diagnosis:  msg,
		Confidence: models.ConfidenceLow,
	}
}
