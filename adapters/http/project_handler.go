package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	queryUC "github.com/sumitdkd/me-api-playground/internal/application/usecase/query"
	"github.com/sumitdkd/me-api-playground/pkg/apperror"
	"github.com/sumitdkd/me-api-playground/pkg/logger"
)

type ProjectHandler struct {
	listProjectsUseCase *queryUC.ListProjectsUseCase
	logger              logger.Logger
}

func NewProjectHandler(uc *queryUC.ListProjectsUseCase, log logger.Logger) *ProjectHandler {
	return &ProjectHandler{
		listProjectsUseCase: uc,
		logger:              log,
	}
}

func (h *ProjectHandler) ListProjects(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil {
		c.Error(apperror.NewInvalidInput("Page must be a positive integer", err))
		return
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(queryUC.DefaultPageLimit)))
	if err != nil {
		c.Error(apperror.NewInvalidInput("Limit must be between 1 and 100", err))
		return
	}

	input := queryUC.ListProjectsInput{
		Skill: c.Query("skill"),
		Page:  page,
		Limit: limit,
	}
	output, err := h.listProjectsUseCase.Execute(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"data":       output.Projects,
		"pagination": output.Pagination,
	})
}
