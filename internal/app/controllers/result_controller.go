package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/captaintojo/srms/internal/app/models/dto"
	"github.com/captaintojo/srms/internal/app/services"
	"github.com/captaintojo/srms/internal/middleware"
)

// ResultController handles admin-only result entry endpoints
type ResultController struct {
	resultService *services.ResultService
}

// NewResultController creates a new ResultController
func NewResultController(resultService *services.ResultService) *ResultController {
	return &ResultController{
		resultService: resultService,
	}
}

// AddResult records a course score for a student
// @Summary Add a result
// @Description Stores the score together with its derived letter grade
// @Tags results
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Student ID"
// @Param request body dto.AddResultRequest true "Course and score"
// @Success 201 {object} dto.APIResponse{data=models.Result}
// @Failure 400 {object} dto.ErrorResponse "Score is not a number"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /students/{id}/results [post]
func (c *ResultController) AddResult(ctx *gin.Context) {
	id, ok := studentIDParam(ctx)
	if !ok {
		return
	}

	var req dto.AddResultRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	result, err := c.resultService.AddResult(ctx.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      result,
		Timestamp: time.Now(),
	})
}
