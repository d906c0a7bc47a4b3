package handlers

import (
	"net/http"

	"github.com/Omarrio321/Aran-Repairs/models"
	"github.com/Omarrio321/Aran-Repairs/services/intelligence"
	"github.com/Omarrio321/Aran-Repairs/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type DiagnosisHandler struct {
	Service intelligence.DiagnosisService
	Logger  *zap.Logger
}

func NewDiagnosisHandler(svc intelligence.DiagnosisService, logger *zap.Logger) *DiagnosisHandler {
	return &DiagnosisHandler{Service: svc, Logger: logger}
}

// Diagnose runs the smart-diagnosis gateway. The response is always a
// well-formed result; gateway failures surface as a low-confidence
// fallback, never as an error. A result that finishes after a newer
// request was issued is discarded and reported as superseded.
func (h *DiagnosisHandler) Diagnose(c *gin.Context) {
	var req models.DiagnosisRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", err.Error())
		return
	}
	if req.Description == "" {
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", "description is required")
		return
	}

	token := h.Service.NextToken()
	result := h.Service.Diagnose(c.Request.Context(), req)
	if !h.Service.Current(token) {
		h.Logger.Debug("Discarding stale diagnosis result", zap.Uint64("token", token))
		utils.JSONError(c, http.StatusConflict, "Diagnosis superseded", "a newer diagnosis request was issued")
		return
	}
	c.JSON(http.StatusOK, result)
}
