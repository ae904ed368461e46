package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mattilda/school_billing_app/internal/apperrors"
	portssvc "github.com/mattilda/school_billing_app/internal/core/ports/services"
	"github.com/mattilda/school_billing_app/internal/export"
	"github.com/mattilda/school_billing_app/internal/middleware"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// statementHandler handles HTTP requests for account statements.
type statementHandler struct {
	statementService portssvc.StatementSvcFacade
}

// newStatementHandler creates a new statementHandler.
func newStatementHandler(ss portssvc.StatementSvcFacade) *statementHandler {
	return &statementHandler{statementService: ss}
}

// registerStatementRoutes registers routes related to account statements.
func registerStatementRoutes(rg *gin.RouterGroup, statementService portssvc.StatementSvcFacade) {
	h := newStatementHandler(statementService)

	statements := rg.Group("/account-statements")
	{
		statements.GET("/students/:id", h.getStudentStatement)
		statements.GET("/students/:id/pdf", h.getStudentStatementPDF)
		statements.GET("/students/:id/xlsx", h.getStudentStatementXLSX)
		statements.GET("/schools/:id", h.getSchoolStatement)
		statements.GET("/schools/:id/pdf", h.getSchoolStatementPDF)
		statements.GET("/schools/:id/xlsx", h.getSchoolStatementXLSX)
	}
}

// respondStatementError maps statement read failures to HTTP statuses.
// Mixed currencies in the underlying ledger are a data conflict, not bad
// client input, so they get 422 instead of 400.
func respondStatementError(c *gin.Context, err error, entity string) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrMixedCurrency):
		logger.Warn("Statement has mixed currencies", slog.String("error", err.Error()))
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	default:
		logger.Error("Failed to build statement", slog.String("entity", entity), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build " + entity + " statement"})
	}
}

// getStudentStatement godoc
// @Summary Get a student account statement
// @Description Aggregates the student's invoices, payments and outstanding balance
// @Tags statements
// @Produce  json
// @Param   id path string true "Student ID"
// @Success 200 {object} dto.StudentAccountStatement
// @Failure 404 {object} map[string]string "Student not found"
// @Failure 422 {object} map[string]string "Mixed currencies in ledger"
// @Failure 500 {object} map[string]string "Failed to build student statement"
// @Security BearerAuth
// @Router /account-statements/students/{id} [get]
func (h *statementHandler) getStudentStatement(c *gin.Context) {
	statement, err := h.statementService.GetStudentStatement(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondStatementError(c, err, "student")
		return
	}
	c.JSON(http.StatusOK, statement)
}

// getStudentStatementPDF godoc
// @Summary Download a student account statement as PDF
// @Tags statements
// @Produce  application/pdf
// @Param   id path string true "Student ID"
// @Success 200 {file} binary
// @Failure 404 {object} map[string]string "Student not found"
// @Failure 422 {object} map[string]string "Mixed currencies in ledger"
// @Failure 500 {object} map[string]string "Failed to build student statement"
// @Security BearerAuth
// @Router /account-statements/students/{id}/pdf [get]
func (h *statementHandler) getStudentStatementPDF(c *gin.Context) {
	studentID := c.Param("id")
	statement, err := h.statementService.GetStudentStatement(c.Request.Context(), studentID)
	if err != nil {
		respondStatementError(c, err, "student")
		return
	}

	payload, err := export.BuildStudentStatementPDF(statement)
	if err != nil {
		respondStatementError(c, err, "student")
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=statement-student-%s.pdf", studentID))
	c.Data(http.StatusOK, "application/pdf", payload)
}

// getStudentStatementXLSX godoc
// @Summary Download a student account statement as XLSX
// @Tags statements
// @Produce  application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param   id path string true "Student ID"
// @Success 200 {file} binary
// @Failure 404 {object} map[string]string "Student not found"
// @Failure 422 {object} map[string]string "Mixed currencies in ledger"
// @Failure 500 {object} map[string]string "Failed to build student statement"
// @Security BearerAuth
// @Router /account-statements/students/{id}/xlsx [get]
func (h *statementHandler) getStudentStatementXLSX(c *gin.Context) {
	studentID := c.Param("id")
	statement, err := h.statementService.GetStudentStatement(c.Request.Context(), studentID)
	if err != nil {
		respondStatementError(c, err, "student")
		return
	}

	payload, err := export.BuildStudentStatementXLSX(statement)
	if err != nil {
		respondStatementError(c, err, "student")
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=statement-student-%s.xlsx", studentID))
	c.Data(http.StatusOK, xlsxContentType, payload)
}

// getSchoolStatement godoc
// @Summary Get a school account statement
// @Description Aggregates billing activity across every student of the school
// @Tags statements
// @Produce  json
// @Param   id path string true "School ID"
// @Success 200 {object} dto.SchoolAccountStatement
// @Failure 404 {object} map[string]string "School not found"
// @Failure 422 {object} map[string]string "Mixed currencies in ledger"
// @Failure 500 {object} map[string]string "Failed to build school statement"
// @Security BearerAuth
// @Router /account-statements/schools/{id} [get]
func (h *statementHandler) getSchoolStatement(c *gin.Context) {
	statement, err := h.statementService.GetSchoolStatement(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondStatementError(c, err, "school")
		return
	}
	c.JSON(http.StatusOK, statement)
}

// getSchoolStatementPDF godoc
// @Summary Download a school account statement as PDF
// @Tags statements
// @Produce  application/pdf
// @Param   id path string true "School ID"
// @Success 200 {file} binary
// @Failure 404 {object} map[string]string "School not found"
// @Failure 422 {object} map[string]string "Mixed currencies in ledger"
// @Failure 500 {object} map[string]string "Failed to build school statement"
// @Security BearerAuth
// @Router /account-statements/schools/{id}/pdf [get]
func (h *statementHandler) getSchoolStatementPDF(c *gin.Context) {
	schoolID := c.Param("id")
	statement, err := h.statementService.GetSchoolStatement(c.Request.Context(), schoolID)
	if err != nil {
		respondStatementError(c, err, "school")
		return
	}

	payload, err := export.BuildSchoolStatementPDF(statement)
	if err != nil {
		respondStatementError(c, err, "school")
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=statement-school-%s.pdf", schoolID))
	c.Data(http.StatusOK, "application/pdf", payload)
}

// getSchoolStatementXLSX godoc
// @Summary Download a school account statement as XLSX
// @Tags statements
// @Produce  application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param   id path string true "School ID"
// @Success 200 {file} binary
// @Failure 404 {object} map[string]string "School not found"
// @Failure 422 {object} map[string]string "Mixed currencies in ledger"
// @Failure 500 {object} map[string]string "Failed to build school statement"
// @Security BearerAuth
// @Router /account-statements/schools/{id}/xlsx [get]
func (h *statementHandler) getSchoolStatementXLSX(c *gin.Context) {
	schoolID := c.Param("id")
	statement, err := h.statementService.GetSchoolStatement(c.Request.Context(), schoolID)
	if err != nil {
		respondStatementError(c, err, "school")
		return
	}

	payload, err := export.BuildSchoolStatementXLSX(statement)
	if err != nil {
		respondStatementError(c, err, "school")
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=statement-school-%s.xlsx", schoolID))
	c.Data(http.StatusOK, xlsxContentType, payload)
}
