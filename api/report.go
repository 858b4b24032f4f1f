package api

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/casve-tools/decision-api/domain"
	"github.com/casve-tools/decision-api/store"
)

// SaveReport snapshots the complete worksheet (steps 0-4) for a session.
// POST /api/save-report
func (h *Handler) SaveReport(c echo.Context) error {
	var req domain.SaveReportRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, domain.SaveReportResponse{
			Success: false,
			Message: "invalid request body",
		})
	}
	if err := store.ValidateSessionID(req.SessionID); err != nil {
		return c.JSON(http.StatusBadRequest, domain.SaveReportResponse{
			Success: false,
			Message: err.Error(),
		})
	}

	log := h.log.With("session_id", req.SessionID)
	log.Infow("saving report data")

	err := h.store.SaveReport(req.SessionID, store.ReportSnapshot{
		Step0: req.Step0,
		Step1: req.Step1,
		Step2: req.Step2,
		Step3: req.Step3,
		Step4: req.Step4,
	})
	if err != nil {
		log.Errorw("failed to save report", "error", err)
		return c.JSON(http.StatusInternalServerError, domain.SaveReportResponse{
			Success: false,
			Message: err.Error(),
		})
	}

	log.Infow("report data saved")

	return c.JSON(http.StatusOK, domain.SaveReportResponse{
		Success: true,
		Message: "Report data saved successfully",
	})
}
