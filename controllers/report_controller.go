package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/kendall-kelly/cafe-pos-api/services"
)

// ReportController serves /reports
type ReportController struct {
	reports *services.ReportService
}

// NewReportController creates a report controller
func NewReportController(reports *services.ReportService) *ReportController {
	return &ReportController{reports: reports}
}

// ZReport handles GET /api/v1/reports/z?date=YYYY-MM-DD
func (ctl *ReportController) ZReport(c *gin.Context) {
	report, err := ctl.reports.GetZReport(c.Query("date"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, report)
}
