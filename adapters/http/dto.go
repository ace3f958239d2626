package http

import (
	"github.com/sumitdkd/me-api-playground/internal/domain/profile"
)

// Request DTOs carry shape only; constraint checking happens in the domain
// so a bad payload reports every violated field at once.

type EducationRequest struct {
	Degree  string `json:"degree"`
	Branch  string `json:"branch"`
	College string `json:"college"`
	Year    int    `json:"year"`
}

type ProjectLinksRequest struct {
	GitHub string `json:"github"`
	Live   string `json:"live"`
}

type ProjectRequest struct {
	Title       string               `json:"title"`
	Description string               `json:"description"`
	Skills      []string             `json:"skills"`
	Links       *ProjectLinksRequest `json:"links"`
}

type WorkRequest struct {
	Role     string `json:"role"`
	Company  string `json:"company"`
	Duration string `json:"duration"`
}

type LinksRequest struct {
	GitHub    string `json:"github"`
	LinkedIn  string `json:"linkedin"`
	Portfolio string `json:"portfolio"`
}

type CreateProfileRequest struct {
	Name      string             `json:"name"`
	Email     string             `json:"email"`
	Education []EducationRequest `json:"education"`
	Skills    []string           `json:"skills"`
	Projects  []ProjectRequest   `json:"projects"`
	Work      []WorkRequest      `json:"work"`
	Links     *LinksRequest      `json:"links"`
}

// UpdateProfileRequest distinguishes "field omitted" (nil, keep stored
// value) from "field provided" (replace wholesale).
type UpdateProfileRequest struct {
	Name      *string             `json:"name"`
	Email     *string             `json:"email"`
	Education *[]EducationRequest `json:"education"`
	Skills    *[]string           `json:"skills"`
	Projects  *[]ProjectRequest   `json:"projects"`
	Work      *[]WorkRequest      `json:"work"`
	Links     *LinksRequest       `json:"links"`
}

func toDomainEducation(in []EducationRequest) []profile.Education {
	out := make([]profile.Education, len(in))
	for i, e := range in {
		out[i] = profile.Education{
			Degree:  e.Degree,
			Branch:  e.Branch,
			College: e.College,
			Year:    e.Year,
		}
	}
	return out
}

func toDomainProjects(in []ProjectRequest) []profile.Project {
	out := make([]profile.Project, len(in))
	for i, pr := range in {
		p := profile.Project{
			Title:       pr.Title,
			Description: pr.Description,
			Skills:      pr.Skills,
		}
		if pr.Links != nil {
			p.Links = &profile.ProjectLinks{
				GitHub: pr.Links.GitHub,
				Live:   pr.Links.Live,
			}
		}
		out[i] = p
	}
	return out
}

func toDomainWork(in []WorkRequest) []profile.Work {
	out := make([]profile.Work, len(in))
	for i, w := range in {
		out[i] = profile.Work{
			Role:     w.Role,
			Company:  w.Company,
			Duration: w.Duration,
		}
	}
	return out
}

func toDomainLinks(in *LinksRequest) *profile.Links {
	if in == nil {
		return nil
	}
	return &profile.Links{
		GitHub:    in.GitHub,
		LinkedIn:  in.LinkedIn,
		Portfolio: in.Portfolio,
	}
}
