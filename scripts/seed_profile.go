package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"

	"github.com/sumitdkd/me-api-playground/internal/domain/profile"
)

func main() {
	fmt.Println("seeding sample profile into database...")

	err := godotenv.Load()
	if err != nil {
		log.Println("warning: .env file not found, use system environment variables.")
	}

	dsn := os.Getenv("DB_DSN")

	pool, err := pgxpool.New(context.Background(), dsn)
	if err != nil {
		log.Fatalf("cannot connect DB: %v", err)
	}
	defer pool.Close()

	p := sampleProfile()
	p.Normalize()
	if violations := p.Violations(); len(violations) > 0 {
		log.Fatalf("sample profile is invalid: %v", violations)
	}

	marshal := func(v any) []byte {
		data, err := json.Marshal(v)
		if err != nil {
			log.Fatalf("cannot marshal seed data: %v", err)
		}
		return data
	}

	query := `
		INSERT INTO profiles (id, record_id, name, email, education, skills, projects, work, links, created_at, updated_at)
		VALUES (1, $1, $2, $3, $4, $5, $6, $7, $8, $9, $9)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			email = EXCLUDED.email,
			education = EXCLUDED.education,
			skills = EXCLUDED.skills,
			projects = EXCLUDED.projects,
			work = EXCLUDED.work,
			links = EXCLUDED.links,
			updated_at = EXCLUDED.updated_at
	`
	_, err = pool.Exec(context.Background(), query,
		uuid.New(), p.Name, p.Email,
		marshal(p.Education), marshal(p.Skills), marshal(p.Projects), marshal(p.Work), marshal(p.Links),
		time.Now().UTC(),
	)
	if err != nil {
		log.Fatalf("cannot seed profile: %v", err)
	}

	fmt.Printf("seeded profile '%s' with %d skills, %d projects, %d work entries\n",
		p.Name, len(p.Skills), len(p.Projects), len(p.Work))
}

func sampleProfile() *profile.Profile {
	return &profile.Profile{
		Name:  "Sumit Dhaker",
		Email: "sumit006162@gmail.com",
		Education: []profile.Education{
			{
				Degree:  "B.Tech",
				Branch:  "Electronics and Communication Engineering",
				College: "National Institute of Technology Patna",
				Year:    2026,
			},
		},
		Skills: []string{
			"JavaScript", "React", "Node.js", "Express.js", "MongoDB",
			"Tailwind CSS", "TypeScript", "Git", "Docker", "AWS", "GraphQL",
		},
		Projects: []profile.Project{
			{
				Title:       "StudyNotion",
				Description: "An ed-tech full-stack platform with courses, authentication, payments, and dashboards.",
				Skills:      []string{"React", "Node.js", "MongoDB", "Express.js", "Tailwind CSS"},
				Links: &profile.ProjectLinks{
					GitHub: "https://github.com/Sumitdkd/StudyNotion_Frontend",
					Live:   "https://study-notion-frontend-nine-lyart.vercel.app/",
				},
			},
			{
				Title:       "JNV Mandphia Alumni Portal (JNV MAA)",
				Description: "An alumni portal for Jawahar Navodaya Vidyalaya Mandphia with authentication, member directory, and networking features.",
				Skills:      []string{"React", "Node.js", "MongoDB", "Express.js", "Tailwind CSS"},
				Links: &profile.ProjectLinks{
					GitHub: "https://github.com/Sumitdkd/Alumni-Portal",
					Live:   "https://jnv-maa.vercel.app",
				},
			},
			{
				Title:       "Weather Dashboard",
				Description: "A responsive weather dashboard that displays current conditions and forecasts using Weather APIs.",
				Skills:      []string{"JavaScript", "Weather API", "Tailwind CSS"},
				Links: &profile.ProjectLinks{
					GitHub: "https://github.com/Sumitdkd/WeatherApp",
					Live:   "https://weather-agfyq10me-sumit-dhakers-projects.vercel.app/",
				},
			},
		},
		Work: []profile.Work{
			{Role: "Subject Matter Expert", Company: "Chegg", Duration: "2023 - Present"},
		},
		Links: &profile.Links{
			GitHub:    "https://github.com/sumitdhaker",
			LinkedIn:  "https://linkedin.com/in/sumit-dhaker",
			Portfolio: "https://sumitdhaker.vercel.app",
		},
	}
}
