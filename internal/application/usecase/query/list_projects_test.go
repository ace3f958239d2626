package query

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sumitdkd/me-api-playground/internal/domain/profile"
	"github.com/sumitdkd/me-api-playground/pkg/apperror"
	"github.com/sumitdkd/me-api-playground/pkg/logger"
)

// stubRepo serves a fixed snapshot, like a store that already holds a
// profile.
type stubRepo struct {
	p   *profile.Profile
	err error
}

func (s *stubRepo) Get(ctx context.Context) (*profile.Profile, error) { return s.p, s.err }
func (s *stubRepo) Insert(ctx context.Context, p *profile.Profile) error {
	return errors.New("not implemented")
}
func (s *stubRepo) Replace(ctx context.Context, p *profile.Profile) error {
	return errors.New("not implemented")
}

func testLogger() logger.Logger {
	return logger.NewZapLogger("development")
}

func profileWithProjects(projects ...profile.Project) *profile.Profile {
	return &profile.Profile{
		Name:     "Sumit Dhaker",
		Email:    "sumit@example.com",
		Skills:   []string{"React", "Node.js"},
		Projects: projects,
	}
}

func numberedProjects(n int) []profile.Project {
	projects := make([]profile.Project, n)
	for i := range projects {
		projects[i] = profile.Project{
			Title:       fmt.Sprintf("Project %02d", i+1),
			Description: "description",
			Skills:      []string{"Go"},
		}
	}
	return projects
}

func TestListProjectsFiltersBySkill(t *testing.T) {
	react := profile.Project{Title: "StudyNotion", Description: "d", Skills: []string{"React"}}
	vue := profile.Project{Title: "Dashboard", Description: "d", Skills: []string{"Vue"}}
	uc := NewListProjectsUseCase(&stubRepo{p: profileWithProjects(react, vue)}, testLogger())

	out, err := uc.Execute(context.Background(), ListProjectsInput{Skill: "react", Page: 1, Limit: 10})
	require.NoError(t, err)

	require.Len(t, out.Projects, 1)
	assert.Equal(t, "StudyNotion", out.Projects[0].Title)
	assert.Equal(t, 1, out.Pagination.TotalProjects)
}

func TestListProjectsNoFilterReturnsAll(t *testing.T) {
	uc := NewListProjectsUseCase(&stubRepo{p: profileWithProjects(numberedProjects(3)...)}, testLogger())

	out, err := uc.Execute(context.Background(), ListProjectsInput{Page: 1, Limit: 10})
	require.NoError(t, err)

	assert.Len(t, out.Projects, 3)
	assert.Equal(t, 3, out.Pagination.TotalProjects)
	assert.Equal(t, 1, out.Pagination.TotalPages)
}

func TestListProjectsSecondPage(t *testing.T) {
	uc := NewListProjectsUseCase(&stubRepo{p: profileWithProjects(numberedProjects(13)...)}, testLogger())

	out, err := uc.Execute(context.Background(), ListProjectsInput{Page: 2, Limit: 10})
	require.NoError(t, err)

	require.Len(t, out.Projects, 3)
	assert.Equal(t, "Project 11", out.Projects[0].Title)
	assert.Equal(t, Pagination{
		CurrentPage:   2,
		TotalPages:    2,
		TotalProjects: 13,
		HasNextPage:   false,
		HasPrevPage:   true,
	}, out.Pagination)
}

func TestListProjectsFirstPageBoundaries(t *testing.T) {
	uc := NewListProjectsUseCase(&stubRepo{p: profileWithProjects(numberedProjects(13)...)}, testLogger())

	out, err := uc.Execute(context.Background(), ListProjectsInput{Page: 1, Limit: 10})
	require.NoError(t, err)

	assert.Len(t, out.Projects, 10)
	assert.True(t, out.Pagination.HasNextPage)
	assert.False(t, out.Pagination.HasPrevPage)
}

func TestListProjectsConcatenatedPagesReconstructList(t *testing.T) {
	projects := numberedProjects(13)
	uc := NewListProjectsUseCase(&stubRepo{p: profileWithProjects(projects...)}, testLogger())

	var collected []profile.Project
	page := 1
	for {
		out, err := uc.Execute(context.Background(), ListProjectsInput{Page: page, Limit: 4})
		require.NoError(t, err)
		collected = append(collected, out.Projects...)
		if !out.Pagination.HasNextPage {
			assert.Equal(t, out.Pagination.TotalPages, page)
			break
		}
		page++
	}

	assert.Equal(t, projects, collected)
}

func TestListProjectsOutOfRangePageIsEmpty(t *testing.T) {
	uc := NewListProjectsUseCase(&stubRepo{p: profileWithProjects(numberedProjects(3)...)}, testLogger())

	out, err := uc.Execute(context.Background(), ListProjectsInput{Page: 5, Limit: 10})
	require.NoError(t, err)

	assert.Empty(t, out.Projects)
	assert.Equal(t, 3, out.Pagination.TotalProjects)
	assert.False(t, out.Pagination.HasNextPage)
	assert.True(t, out.Pagination.HasPrevPage)
}

func TestListProjectsLimitDefaultsAndClamp(t *testing.T) {
	uc := NewListProjectsUseCase(&stubRepo{p: profileWithProjects(numberedProjects(13)...)}, testLogger())

	out, err := uc.Execute(context.Background(), ListProjectsInput{Page: 1})
	require.NoError(t, err)
	assert.Len(t, out.Projects, DefaultPageLimit)

	out, err = uc.Execute(context.Background(), ListProjectsInput{Page: 1, Limit: 500})
	require.NoError(t, err)
	assert.Len(t, out.Projects, 13)
	assert.Equal(t, 1, out.Pagination.TotalPages)
}

func TestListProjectsRejectsPageBelowOne(t *testing.T) {
	uc := NewListProjectsUseCase(&stubRepo{p: profileWithProjects()}, testLogger())

	_, err := uc.Execute(context.Background(), ListProjectsInput{Page: 0, Limit: 10})
	assert.ErrorIs(t, err, apperror.ErrInvalidInput)
}

func TestListProjectsNoProfile(t *testing.T) {
	uc := NewListProjectsUseCase(&stubRepo{}, testLogger())

	_, err := uc.Execute(context.Background(), ListProjectsInput{Page: 1, Limit: 10})
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestListProjectsEmptyFilteredListHasZeroPages(t *testing.T) {
	uc := NewListProjectsUseCase(&stubRepo{p: profileWithProjects(numberedProjects(3)...)}, testLogger())

	out, err := uc.Execute(context.Background(), ListProjectsInput{Skill: "python", Page: 1, Limit: 10})
	require.NoError(t, err)

	assert.Empty(t, out.Projects)
	assert.Equal(t, 0, out.Pagination.TotalProjects)
	assert.Equal(t, 0, out.Pagination.TotalPages)
	assert.False(t, out.Pagination.HasNextPage)
	assert.False(t, out.Pagination.HasPrevPage)
}
