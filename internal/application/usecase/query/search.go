package query

import (
	"context"

	"github.com/sumitdkd/me-api-playground/internal/domain/profile"
	"github.com/sumitdkd/me-api-playground/pkg/apperror"
	"github.com/sumitdkd/me-api-playground/pkg/logger"
)

// MaxQueryLength bounds the search term; longer input is rejected, not
// truncated.
const MaxQueryLength = 100

type SearchUseCase struct {
	profileRepo profile.Repository
	logger      logger.Logger
}

func NewSearchUseCase(repo profile.Repository, log logger.Logger) *SearchUseCase {
	return &SearchUseCase{profileRepo: repo, logger: log}
}

type SearchInput struct {
	Query string
}

type SearchOutput struct {
	Query        string
	Skills       []string
	Projects     []profile.Project
	TotalResults int
}

// Execute matches the query as a case-insensitive substring against the
// profile's skills and against each project's title, description and
// skills. Both result lists keep their original order.
func (uc *SearchUseCase) Execute(ctx context.Context, input SearchInput) (*SearchOutput, error) {
	q := input.Query
	if q == "" {
		return nil, apperror.NewInvalidInput("Search query is required", nil)
	}
	if len(q) > MaxQueryLength {
		return nil, apperror.NewInvalidInput("Search query must be between 1 and 100 characters", nil)
	}

	p, err := uc.profileRepo.Get(ctx)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, apperror.NewNotFound("Profile")
	}

	skills := []string{}
	for _, s := range p.Skills {
		if profile.ContainsFold(s, q) {
			skills = append(skills, s)
		}
	}

	projects := []profile.Project{}
	for _, pr := range p.Projects {
		if profile.ContainsFold(pr.Title, q) ||
			profile.ContainsFold(pr.Description, q) ||
			pr.MatchesSkill(q) {
			projects = append(projects, pr)
		}
	}

	return &SearchOutput{
		Query:        q,
		Skills:       skills,
		Projects:     projects,
		TotalResults: len(skills) + len(projects),
	}, nil
}
