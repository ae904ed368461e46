package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mattilda/school_billing_app/internal/apperrors"
	portssvc "github.com/mattilda/school_billing_app/internal/core/ports/services"
	"github.com/mattilda/school_billing_app/internal/dto"
	"github.com/mattilda/school_billing_app/internal/middleware"
)

// schoolHandler handles HTTP requests related to schools.
type schoolHandler struct {
	schoolService portssvc.SchoolSvcFacade
}

// newSchoolHandler creates a new schoolHandler.
func newSchoolHandler(ss portssvc.SchoolSvcFacade) *schoolHandler {
	return &schoolHandler{schoolService: ss}
}

// registerSchoolRoutes registers routes related to schools.
func registerSchoolRoutes(rg *gin.RouterGroup, schoolService portssvc.SchoolSvcFacade) {
	h := newSchoolHandler(schoolService)

	schools := rg.Group("/schools")
	{
		schools.POST("", h.createSchool)
		schools.GET("", h.listSchools)
		schools.GET("/:id", h.getSchool)
		schools.PUT("/:id", h.updateSchool)
		schools.DELETE("/:id", h.deleteSchool)
	}
}

// createSchool godoc
// @Summary Create a new school
// @Description Creates a new school
// @Tags schools
// @Accept  json
// @Produce  json
// @Param   school body dto.CreateSchoolRequest true "School details"
// @Success 201 {object} dto.SchoolResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 500 {object} map[string]string "Failed to create school"
// @Security BearerAuth
// @Router /schools [post]
func (h *schoolHandler) createSchool(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateSchoolRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateSchool", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	school, err := h.schoolService.CreateSchool(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create school", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create school"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToSchoolResponse(school))
}

// listSchools godoc
// @Summary List schools
// @Description Retrieves a page of schools
// @Tags schools
// @Produce  json
// @Param   limit query int false "Page size" default(100)
// @Param   offset query int false "Page offset" default(0)
// @Success 200 {array} dto.SchoolResponse
// @Failure 500 {object} map[string]string "Failed to list schools"
// @Security BearerAuth
// @Router /schools [get]
func (h *schoolHandler) listSchools(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListSchoolsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	schools, err := h.schoolService.ListSchools(c.Request.Context(), params.Limit, params.Offset)
	if err != nil {
		logger.Error("Failed to list schools", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list schools"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListSchoolResponse(schools))
}

// getSchool godoc
// @Summary Get a school by ID
// @Description Retrieves details for a specific school
// @Tags schools
// @Produce  json
// @Param   id path string true "School ID"
// @Success 200 {object} dto.SchoolResponse
// @Failure 404 {object} map[string]string "School not found"
// @Failure 500 {object} map[string]string "Failed to retrieve school"
// @Security BearerAuth
// @Router /schools/{id} [get]
func (h *schoolHandler) getSchool(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	schoolID := c.Param("id")

	school, err := h.schoolService.GetSchoolByID(c.Request.Context(), schoolID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to get school", slog.String("school_id", schoolID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve school"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToSchoolResponse(school))
}

// updateSchool godoc
// @Summary Update a school
// @Description Updates mutable fields of a school
// @Tags schools
// @Accept  json
// @Produce  json
// @Param   id path string true "School ID"
// @Param   school body dto.UpdateSchoolRequest true "Fields to update"
// @Success 200 {object} dto.SchoolResponse
// @Failure 400 {object} map[string]string "Invalid input format"
// @Failure 404 {object} map[string]string "School not found"
// @Failure 500 {object} map[string]string "Failed to update school"
// @Security BearerAuth
// @Router /schools/{id} [put]
func (h *schoolHandler) updateSchool(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	schoolID := c.Param("id")

	var req dto.UpdateSchoolRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	school, err := h.schoolService.UpdateSchool(c.Request.Context(), schoolID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to update school", slog.String("school_id", schoolID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update school"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToSchoolResponse(school))
}

// deleteSchool godoc
// @Summary Delete a school
// @Description Hard-deletes a school and everything billed under it
// @Tags schools
// @Produce  json
// @Param   id path string true "School ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "School not found"
// @Failure 500 {object} map[string]string "Failed to delete school"
// @Security BearerAuth
// @Router /schools/{id} [delete]
func (h *schoolHandler) deleteSchool(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	schoolID := c.Param("id")

	if err := h.schoolService.DeleteSchool(c.Request.Context(), schoolID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to delete school", slog.String("school_id", schoolID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete school"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}
