package profile

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

type Education struct {
	Degree  string `json:"degree"`
	Branch  string `json:"branch"`
	College string `json:"college"`
	Year    int    `json:"year"`
}

type ProjectLinks struct {
	GitHub string `json:"github,omitempty"`
	Live   string `json:"live,omitempty"`
}

type Project struct {
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Skills      []string      `json:"skills"`
	Links       *ProjectLinks `json:"links,omitempty"`
}

type Work struct {
	Role     string `json:"role"`
	Company  string `json:"company"`
	Duration string `json:"duration"`
}

type Links struct {
	GitHub    string `json:"github,omitempty"`
	LinkedIn  string `json:"linkedin,omitempty"`
	Portfolio string `json:"portfolio,omitempty"`
}

// Profile is the single record the whole API revolves around. The store
// never holds more than one.
type Profile struct {
	ID        uuid.UUID   `json:"id"`
	Name      string      `json:"name"`
	Email     string      `json:"email"`
	Education []Education `json:"education"`
	Skills    []string    `json:"skills"`
	Projects  []Project   `json:"projects"`
	Work      []Work      `json:"work"`
	Links     *Links      `json:"links,omitempty"`
	CreatedAt time.Time   `json:"createdAt"`
	UpdatedAt time.Time   `json:"updatedAt"`
}

var emailRegex = regexp.MustCompile(`^\w+([.-]?\w+)*@\w+([.-]?\w+)*(\.\w{2,3})+$`)

// Normalize trims whitespace, lower-cases the email and replaces nil lists
// with empty ones so stored records always serialize as arrays.
func (p *Profile) Normalize() {
	p.Name = strings.TrimSpace(p.Name)
	p.Email = strings.ToLower(strings.TrimSpace(p.Email))
	for i := range p.Skills {
		p.Skills[i] = strings.TrimSpace(p.Skills[i])
	}
	for i := range p.Projects {
		p.Projects[i].Title = strings.TrimSpace(p.Projects[i].Title)
		p.Projects[i].Description = strings.TrimSpace(p.Projects[i].Description)
		for j := range p.Projects[i].Skills {
			p.Projects[i].Skills[j] = strings.TrimSpace(p.Projects[i].Skills[j])
		}
		if p.Projects[i].Skills == nil {
			p.Projects[i].Skills = []string{}
		}
	}
	if p.Education == nil {
		p.Education = []Education{}
	}
	if p.Skills == nil {
		p.Skills = []string{}
	}
	if p.Projects == nil {
		p.Projects = []Project{}
	}
	if p.Work == nil {
		p.Work = []Work{}
	}
}

// Violations returns one message per violated constraint. An empty slice
// means the profile is valid.
func (p *Profile) Violations() []string {
	var v []string

	if n := len(p.Name); n < 2 || n > 100 {
		v = append(v, "name must be between 2 and 100 characters")
	}
	if !emailRegex.MatchString(p.Email) {
		v = append(v, "email must be a valid email address")
	}
	for i, e := range p.Education {
		if e.Degree == "" {
			v = append(v, fmt.Sprintf("education[%d].degree is required", i))
		}
		if e.Branch == "" {
			v = append(v, fmt.Sprintf("education[%d].branch is required", i))
		}
		if e.College == "" {
			v = append(v, fmt.Sprintf("education[%d].college is required", i))
		}
		if e.Year <= 0 {
			v = append(v, fmt.Sprintf("education[%d].year must be a positive number", i))
		}
	}
	for i, pr := range p.Projects {
		if pr.Title == "" {
			v = append(v, fmt.Sprintf("projects[%d].title is required", i))
		}
		if pr.Description == "" {
			v = append(v, fmt.Sprintf("projects[%d].description is required", i))
		}
	}
	for i, w := range p.Work {
		if w.Role == "" {
			v = append(v, fmt.Sprintf("work[%d].role is required", i))
		}
		if w.Company == "" {
			v = append(v, fmt.Sprintf("work[%d].company is required", i))
		}
		if w.Duration == "" {
			v = append(v, fmt.Sprintf("work[%d].duration is required", i))
		}
	}
	return v
}

// ContainsFold reports whether haystack contains needle ignoring case. The
// skill filter and the search endpoint both go through it so the two paths
// can never disagree on what matches.
func ContainsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

// MatchesSkill reports whether any of the project's skills contains the
// given fragment, ignoring case.
func (pr *Project) MatchesSkill(skill string) bool {
	for _, s := range pr.Skills {
		if ContainsFold(s, skill) {
			return true
		}
	}
	return false
}

// Clone returns a copy that shares no slices with the receiver, so readers
// holding a snapshot never observe later writes.
func (p *Profile) Clone() *Profile {
	if p == nil {
		return nil
	}
	c := *p
	c.Education = append([]Education(nil), p.Education...)
	c.Skills = append([]string(nil), p.Skills...)
	c.Work = append([]Work(nil), p.Work...)
	c.Projects = make([]Project, len(p.Projects))
	for i, pr := range p.Projects {
		cp := pr
		cp.Skills = append([]string(nil), pr.Skills...)
		if pr.Links != nil {
			links := *pr.Links
			cp.Links = &links
		}
		c.Projects[i] = cp
	}
	if p.Links != nil {
		links := *p.Links
		c.Links = &links
	}
	return &c
}

// Repository is the profile store. Implementations must apply Insert and
// Replace as single atomic record writes.
type Repository interface {
	// Get returns the stored profile, or nil when none exists.
	Get(ctx context.Context) (*Profile, error)
	// Insert persists a new profile and fails with a conflict when one
	// already exists, even under concurrent inserts.
	Insert(ctx context.Context, p *Profile) error
	// Replace writes the full record in one step, creating it when absent.
	Replace(ctx context.Context, p *Profile) error
}
