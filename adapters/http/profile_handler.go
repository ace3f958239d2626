package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	profileUC "github.com/sumitdkd/me-api-playground/internal/application/usecase/profile"
	"github.com/sumitdkd/me-api-playground/pkg/apperror"
	"github.com/sumitdkd/me-api-playground/pkg/logger"
)

type ProfileHandler struct {
	profileUseCase *profileUC.ProfileUseCase
	logger         logger.Logger
}

func NewProfileHandler(uc *profileUC.ProfileUseCase, log logger.Logger) *ProfileHandler {
	return &ProfileHandler{
		profileUseCase: uc,
		logger:         log,
	}
}

func (h *ProfileHandler) GetProfile(c *gin.Context) {
	output, err := h.profileUseCase.ExecuteGetProfile(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": output.Profile})
}

func (h *ProfileHandler) CreateProfile(c *gin.Context) {
	var req CreateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("Invalid JSON body for profile create", err))
		return
	}

	input := profileUC.CreateProfileInput{
		Name:      req.Name,
		Email:     req.Email,
		Education: toDomainEducation(req.Education),
		Skills:    req.Skills,
		Projects:  toDomainProjects(req.Projects),
		Work:      toDomainWork(req.Work),
		Links:     toDomainLinks(req.Links),
	}
	output, err := h.profileUseCase.ExecuteCreateProfile(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "data": output.Profile})
}

func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("Invalid JSON body for profile update", err))
		return
	}

	input := profileUC.UpdateProfileInput{
		Name:  req.Name,
		Email: req.Email,
		Links: toDomainLinks(req.Links),
	}
	if req.Education != nil {
		education := toDomainEducation(*req.Education)
		input.Education = &education
	}
	if req.Skills != nil {
		input.Skills = req.Skills
	}
	if req.Projects != nil {
		projects := toDomainProjects(*req.Projects)
		input.Projects = &projects
	}
	if req.Work != nil {
		work := toDomainWork(*req.Work)
		input.Work = &work
	}

	output, err := h.profileUseCase.ExecuteUpdateProfile(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": output.Profile})
}
