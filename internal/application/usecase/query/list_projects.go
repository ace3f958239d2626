package query

import (
	"context"

	"github.com/sumitdkd/me-api-playground/internal/domain/profile"
	"github.com/sumitdkd/me-api-playground/pkg/apperror"
	"github.com/sumitdkd/me-api-playground/pkg/logger"
)

const (
	DefaultPageLimit = 10
	MaxPageLimit     = 100
)

type ListProjectsUseCase struct {
	profileRepo profile.Repository
	logger      logger.Logger
}

func NewListProjectsUseCase(repo profile.Repository, log logger.Logger) *ListProjectsUseCase {
	return &ListProjectsUseCase{profileRepo: repo, logger: log}
}

type ListProjectsInput struct {
	Skill string
	Page  int
	Limit int
}

type Pagination struct {
	CurrentPage   int  `json:"currentPage"`
	TotalPages    int  `json:"totalPages"`
	TotalProjects int  `json:"totalProjects"`
	HasNextPage   bool `json:"hasNextPage"`
	HasPrevPage   bool `json:"hasPrevPage"`
}

type ListProjectsOutput struct {
	Projects   []profile.Project
	Pagination Pagination
}

// Execute filters the profile's projects by skill, then slices out the
// requested page. The whole computation runs against one store snapshot.
func (uc *ListProjectsUseCase) Execute(ctx context.Context, input ListProjectsInput) (*ListProjectsOutput, error) {
	if input.Page < 1 {
		return nil, apperror.NewInvalidInput("Page must be a positive integer", nil)
	}
	limit := input.Limit
	if limit <= 0 {
		limit = DefaultPageLimit
	}
	if limit > MaxPageLimit {
		limit = MaxPageLimit
	}

	p, err := uc.profileRepo.Get(ctx)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, apperror.NewNotFound("Profile")
	}

	projects := p.Projects
	if input.Skill != "" {
		filtered := make([]profile.Project, 0, len(projects))
		for _, pr := range projects {
			if pr.MatchesSkill(input.Skill) {
				filtered = append(filtered, pr)
			}
		}
		projects = filtered
	}

	total := len(projects)
	startIndex := (input.Page - 1) * limit
	endIndex := startIndex + limit

	page := []profile.Project{}
	if startIndex < total {
		upper := endIndex
		if upper > total {
			upper = total
		}
		page = projects[startIndex:upper]
	}

	return &ListProjectsOutput{
		Projects: page,
		Pagination: Pagination{
			CurrentPage:   input.Page,
			TotalPages:    (total + limit - 1) / limit,
			TotalProjects: total,
			HasNextPage:   endIndex < total,
			HasPrevPage:   startIndex > 0,
		},
	}, nil
}
