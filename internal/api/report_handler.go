package api

import (
	"mime"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"trueiron/coach-app/internal/report"
	"trueiron/coach-app/internal/service"
)

// Response headers carrying report details next to the PDF body.
const (
	HeaderReportPages       = "X-Report-Pages"
	HeaderReportDownloadURL = "X-Report-Download-Url"
)

type ReportHandler struct {
	reportService service.ReportService
}

func NewReportHandler(reportService service.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// GenerateReport godoc
// @Summary Render the client's plan as a PDF
// @Description Starting a new report for a client cancels one still rendering for the same client.
// @Tags Report
// @Accept json
// @Produce application/pdf
// @Security BearerAuth
// @Param clientId path string true "Client ID"
// @Param metadata body report.Metadata true "Transformation name and date range"
// @Success 200 {file} file "{ClientName}_Plan_Full.pdf"
// @Failure 400 {object} gin.H "Missing or invalid metadata"
// @Failure 409 {object} gin.H "Superseded by a newer request"
// @Failure 502 {object} gin.H "Poster or watermark could not be loaded"
// @Router /trainer/clients/{clientId}/report [post]
func (h *ReportHandler) GenerateReport(c *gin.Context) {
	var md report.Metadata
	if err := c.ShouldBindJSON(&md); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}
	trainerID, clientID, ok := planTarget(c)
	if !ok {
		return
	}

	out, err := h.reportService.Generate(c.Request.Context(), trainerID, clientID, md)
	if err != nil {
		respondError(c, err)
		return
	}

	disposition := mime.FormatMediaType("attachment", map[string]string{"filename": out.Result.FileName})
	if disposition == "" {
		disposition = "attachment"
	}
	c.Header("Content-Disposition", disposition)
	c.Header(HeaderReportPages, strconv.Itoa(out.Result.Pages))
	if out.DownloadURL != "" {
		c.Header(HeaderReportDownloadURL, out.DownloadURL)
	}
	c.Data(http.StatusOK, "application/pdf", out.Result.Data)
}
