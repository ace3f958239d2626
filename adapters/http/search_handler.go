package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	queryUC "github.com/sumitdkd/me-api-playground/internal/application/usecase/query"
	"github.com/sumitdkd/me-api-playground/pkg/logger"
)

type SearchHandler struct {
	searchUseCase *queryUC.SearchUseCase
	logger        logger.Logger
}

func NewSearchHandler(uc *queryUC.SearchUseCase, log logger.Logger) *SearchHandler {
	return &SearchHandler{
		searchUseCase: uc,
		logger:        log,
	}
}

func (h *SearchHandler) Search(c *gin.Context) {
	input := queryUC.SearchInput{Query: c.Query("q")}
	output, err := h.searchUseCase.Execute(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"query":   output.Query,
		"data": gin.H{
			"skills":   output.Skills,
			"projects": output.Projects,
		},
		"totalResults": output.TotalResults,
	})
}
