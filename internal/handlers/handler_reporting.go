package handlers

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/SscSPs/book_reports/internal/apperrors"
	"github.com/SscSPs/book_reports/internal/core/domain"
	portssvc "github.com/SscSPs/book_reports/internal/core/ports/services"
	"github.com/SscSPs/book_reports/internal/dto"
	"github.com/SscSPs/book_reports/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// exportSlugs maps the path segment of an export route to its report type.
var exportSlugs = map[string]domain.ReportType{
	"balance-sheet":    domain.ReportTypeBalanceSheet,
	"income-statement": domain.ReportTypeIncomeStatement,
	"report-401":       domain.ReportType401,
}

var registerValidationsOnce sync.Once

// registerReportValidations installs the struct-level query rules on gin's validator.
func registerReportValidations() {
	registerValidationsOnce.Do(func() {
		if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
			v.RegisterStructValidation(dto.ReportQueryStructLevelValidation, dto.ReportQuery{})
		}
	})
}

// reportingHandler handles HTTP requests related to financial reports
type reportingHandler struct {
	reportingService portssvc.ReportingService
	location         *time.Location
}

// newReportingHandler creates a new reportingHandler
func newReportingHandler(rs portssvc.ReportingService, location *time.Location) *reportingHandler {
	if location == nil {
		location = time.UTC
	}
	return &reportingHandler{
		reportingService: rs,
		location:         location,
	}
}

// registerReportingRoutes registers routes related to financial reports
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingService, location *time.Location) {
	registerReportValidations()
	h := newReportingHandler(reportingService, location)

	// Routes for reports are nested under a specific book
	reportingGroup := rg.Group("/books/:book_id/reports")
	{
		reportingGroup.GET("/balance-sheet", h.getBalanceSheet)
		reportingGroup.GET("/income-statement", h.getIncomeStatement)
		reportingGroup.GET("/report-401", h.getReport401)
		reportingGroup.GET("/:report_type/export", h.exportReport)
	}
}

// parseReportRequest reads the book ID and reporting window shared by every report route.
func (h *reportingHandler) parseReportRequest(c *gin.Context) (int64, domain.PeriodWindow, bool) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	bookID, err := strconv.ParseInt(c.Param("book_id"), 10, 64)
	if err != nil || bookID <= 0 {
		logger.Warn("Invalid book ID in path", slog.String("book_id", c.Param("book_id")))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Book ID must be a positive integer"})
		return 0, domain.PeriodWindow{}, false
	}

	var query dto.ReportQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		logger.Warn("Invalid report query", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return 0, domain.PeriodWindow{}, false
	}

	window, err := query.Window(h.location)
	if err != nil {
		logger.Warn("Invalid reporting window", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return 0, domain.PeriodWindow{}, false
	}
	return bookID, window, true
}

// respondError maps service errors to HTTP responses.
func respondError(c *gin.Context, err error, action string) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		logger.Warn("Rejected report request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrNotFound):
		logger.Warn("Book not found", slog.String("error", err.Error()))
		c.JSON(http.StatusNotFound, gin.H{"error": "Book not found"})
	default:
		logger.Error("Failed to "+action, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to " + action})
	}
}

// getBalanceSheet godoc
// @Summary Generate balance sheet
// @Description Generates a comparative balance sheet as of the window end, with ratios
// @Tags reports
// @Produce json
// @Param book_id path int true "Book ID"
// @Param startDate query string false "Start date (YYYY-MM-DD)"
// @Param endDate query string false "End date (YYYY-MM-DD)"
// @Param startSecond query int false "Start (unix seconds)"
// @Param endSecond query int false "End (unix seconds)"
// @Success 200 {object} domain.BalanceSheetReport
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Book not found"
// @Failure 500 {object} map[string]string "Failed to generate report"
// @Router /books/{book_id}/reports/balance-sheet [get]
func (h *reportingHandler) getBalanceSheet(c *gin.Context) {
	bookID, window, ok := h.parseReportRequest(c)
	if !ok {
		return
	}

	report, err := h.reportingService.BalanceSheet(c.Request.Context(), bookID, window)
	if err != nil {
		respondError(c, err, "generate balance sheet")
		return
	}
	c.JSON(http.StatusOK, report)
}

// getIncomeStatement godoc
// @Summary Generate income statement
// @Description Generates a comparative income statement for the window
// @Tags reports
// @Produce json
// @Param book_id path int true "Book ID"
// @Param startDate query string false "Start date (YYYY-MM-DD)"
// @Param endDate query string false "End date (YYYY-MM-DD)"
// @Param startSecond query int false "Start (unix seconds)"
// @Param endSecond query int false "End (unix seconds)"
// @Success 200 {object} domain.IncomeStatementReport
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Book not found"
// @Failure 500 {object} map[string]string "Failed to generate report"
// @Router /books/{book_id}/reports/income-statement [get]
func (h *reportingHandler) getIncomeStatement(c *gin.Context) {
	bookID, window, ok := h.parseReportRequest(c)
	if !ok {
		return
	}

	report, err := h.reportingService.IncomeStatement(c.Request.Context(), bookID, window)
	if err != nil {
		respondError(c, err, "generate income statement")
		return
	}
	c.JSON(http.StatusOK, report)
}

// getReport401 godoc
// @Summary Generate 401 business tax return
// @Description Aggregates the invoices of the window into the 401 sales, purchases and imports tables
// @Tags reports
// @Produce json
// @Param book_id path int true "Book ID"
// @Param startDate query string false "Start date (YYYY-MM-DD)"
// @Param endDate query string false "End date (YYYY-MM-DD)"
// @Param startSecond query int false "Start (unix seconds)"
// @Param endSecond query int false "End (unix seconds)"
// @Success 200 {object} domain.TaxReport401
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Book not found"
// @Failure 500 {object} map[string]string "Failed to generate report"
// @Router /books/{book_id}/reports/report-401 [get]
func (h *reportingHandler) getReport401(c *gin.Context) {
	bookID, window, ok := h.parseReportRequest(c)
	if !ok {
		return
	}

	report, err := h.reportingService.Report401(c.Request.Context(), bookID, window)
	if err != nil {
		respondError(c, err, "generate 401 report")
		return
	}
	c.JSON(http.StatusOK, report)
}

// exportReport godoc
// @Summary Export a report as XLSX
// @Description Renders the balance sheet, income statement or 401 report as a spreadsheet
// @Tags reports
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param book_id path int true "Book ID"
// @Param report_type path string true "Report" Enums(balance-sheet, income-statement, report-401)
// @Param startDate query string false "Start date (YYYY-MM-DD)"
// @Param endDate query string false "End date (YYYY-MM-DD)"
// @Param startSecond query int false "Start (unix seconds)"
// @Param endSecond query int false "End (unix seconds)"
// @Success 200 {file} file
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Book not found"
// @Failure 500 {object} map[string]string "Failed to export report"
// @Router /books/{book_id}/reports/{report_type}/export [get]
func (h *reportingHandler) exportReport(c *gin.Context) {
	reportType, known := exportSlugs[c.Param("report_type")]
	if !known {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown report type " + c.Param("report_type")})
		return
	}
	bookID, window, ok := h.parseReportRequest(c)
	if !ok {
		return
	}

	// Buffer the workbook so a failure can still be reported as JSON
	var buf bytes.Buffer
	if err := h.reportingService.ExportReport(c.Request.Context(), &buf, reportType, bookID, window); err != nil {
		respondError(c, err, "export report")
		return
	}

	filename := fmt.Sprintf("%s_%d_%d_%d.xlsx", reportType, bookID, window.StartSecond, window.EndSecond)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}
