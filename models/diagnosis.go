package models

// Confidence levels reported by the diagnosis gateway.
const (
	ConfidenceLow    = "Low"
	ConfidenceMedium = "Medium"
	ConfidenceHigh   = "High"
)

// DiagnosisRequest is the payload for /api/ai/diagnose.
type DiagnosisRequest struct {
	Description string     `json:"description"`
	DeviceType  DeviceType `json:"deviceType,omitempty"`
}

// DiagnosisResult is what the gateway returns. RecommendedRepairID is nil
// when no repair from the menu matches the described problem.
type DiagnosisResult struct {
	Diagnosis           string  `json:"diagnosis"`
	RecommendedRepairID *string `json:"recommendedRepairId"`
	Confidence          string  `json:"confidence"`
}
