package query

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sumitdkd/me-api-playground/internal/domain/profile"
	"github.com/sumitdkd/me-api-playground/pkg/apperror"
)

func searchableProfile() *profile.Profile {
	return &profile.Profile{
		Name:   "Sumit Dhaker",
		Email:  "sumit@example.com",
		Skills: []string{"React", "Node.js", "MongoDB"},
		Projects: []profile.Project{
			{Title: "StudyNotion", Description: "Ed-tech platform", Skills: []string{"React", "Node.js"}},
			{Title: "Weather Dashboard", Description: "Forecasts with Weather APIs", Skills: []string{"JavaScript"}},
			{Title: "Chat App", Description: "Realtime chat on Node.js", Skills: []string{"Socket.io"}},
		},
	}
}

func TestSearchMatchesSkillOnly(t *testing.T) {
	uc := NewSearchUseCase(&stubRepo{p: searchableProfile()}, testLogger())

	out, err := uc.Execute(context.Background(), SearchInput{Query: "mongo"})
	require.NoError(t, err)

	assert.Equal(t, []string{"MongoDB"}, out.Skills)
	assert.Empty(t, out.Projects)
	assert.Equal(t, 1, out.TotalResults)
}

func TestSearchMatchesAcrossProjectFields(t *testing.T) {
	uc := NewSearchUseCase(&stubRepo{p: searchableProfile()}, testLogger())

	// "node" hits a profile skill, a project skill and a description
	out, err := uc.Execute(context.Background(), SearchInput{Query: "node"})
	require.NoError(t, err)

	assert.Equal(t, []string{"Node.js"}, out.Skills)
	require.Len(t, out.Projects, 2)
	assert.Equal(t, "StudyNotion", out.Projects[0].Title)
	assert.Equal(t, "Chat App", out.Projects[1].Title)
	assert.Equal(t, 3, out.TotalResults)
}

func TestSearchProjectMatchedOnceAcrossFields(t *testing.T) {
	p := &profile.Profile{
		Name:  "Sumit Dhaker",
		Email: "sumit@example.com",
		Projects: []profile.Project{
			{Title: "Weather Dashboard", Description: "Weather forecasts", Skills: []string{"Weather API"}},
		},
	}
	uc := NewSearchUseCase(&stubRepo{p: p}, testLogger())

	out, err := uc.Execute(context.Background(), SearchInput{Query: "weather"})
	require.NoError(t, err)

	assert.Len(t, out.Projects, 1)
	assert.Equal(t, 1, out.TotalResults)
}

func TestSearchIsCaseInsensitive(t *testing.T) {
	uc := NewSearchUseCase(&stubRepo{p: searchableProfile()}, testLogger())

	lower, err := uc.Execute(context.Background(), SearchInput{Query: "studynotion"})
	require.NoError(t, err)
	upper, err := uc.Execute(context.Background(), SearchInput{Query: "STUDYNOTION"})
	require.NoError(t, err)

	assert.Equal(t, lower.Projects, upper.Projects)
	assert.Len(t, lower.Projects, 1)
}

func TestSearchIsIdempotentAndOrdered(t *testing.T) {
	uc := NewSearchUseCase(&stubRepo{p: searchableProfile()}, testLogger())

	first, err := uc.Execute(context.Background(), SearchInput{Query: "a"})
	require.NoError(t, err)
	second, err := uc.Execute(context.Background(), SearchInput{Query: "a"})
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestSearchNoMatches(t *testing.T) {
	uc := NewSearchUseCase(&stubRepo{p: searchableProfile()}, testLogger())

	out, err := uc.Execute(context.Background(), SearchInput{Query: "rust"})
	require.NoError(t, err)

	assert.Empty(t, out.Skills)
	assert.Empty(t, out.Projects)
	assert.Equal(t, 0, out.TotalResults)
}

func TestSearchRejectsEmptyQuery(t *testing.T) {
	uc := NewSearchUseCase(&stubRepo{p: searchableProfile()}, testLogger())

	_, err := uc.Execute(context.Background(), SearchInput{Query: ""})
	assert.ErrorIs(t, err, apperror.ErrInvalidInput)
}

func TestSearchRejectsOverlongQuery(t *testing.T) {
	uc := NewSearchUseCase(&stubRepo{p: searchableProfile()}, testLogger())

	_, err := uc.Execute(context.Background(), SearchInput{Query: strings.Repeat("x", MaxQueryLength+1)})
	assert.ErrorIs(t, err, apperror.ErrInvalidInput)

	_, err = uc.Execute(context.Background(), SearchInput{Query: strings.Repeat("x", MaxQueryLength)})
	assert.NoError(t, err)
}

func TestSearchNoProfile(t *testing.T) {
	uc := NewSearchUseCase(&stubRepo{}, testLogger())

	_, err := uc.Execute(context.Background(), SearchInput{Query: "react"})
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}
