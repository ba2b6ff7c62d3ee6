package app

import (
	"context"
	"encoding/json"

	"github.com/divi1127/BackendDeepF/internal/repositories"
	"github.com/divi1127/BackendDeepF/internal/utils"
)

// Demo rows for the tables the API only ever reads. Inserts use fixed
// ids with ON CONFLICT DO NOTHING so seeding stays idempotent.

type seedCourse struct {
	id          int64
	title       string
	description string
	duration    string
	level       string
	price       float64
	syllabus    []string
}

var seedCourses = []seedCourse{
	{1, "Full-Stack Web Development", "HTML to deployed full-stack apps with React and Node.", "16 weeks", "Beginner", 499,
		[]string{"HTML & CSS", "JavaScript", "React", "Node.js & Express", "SQL", "Deployment"}},
	{2, "Data Science with Python", "From pandas to production ML models.", "12 weeks", "Intermediate", 599,
		[]string{"Python", "NumPy & pandas", "Visualization", "Statistics", "scikit-learn", "Capstone"}},
	{3, "Cloud & DevOps Engineering", "CI/CD, containers and infrastructure as code.", "10 weeks", "Advanced", 699,
		[]string{"Linux", "Docker", "Kubernetes", "Terraform", "CI/CD pipelines", "Observability"}},
}

// SeedDemoData populates courses, workshops, mentors and testimonials.
func SeedDemoData(ctx context.Context, db repositories.DB) error {
	for _, c := range seedCourses {
		syllabus, err := json.Marshal(c.syllabus)
		if err != nil {
			return err
		}
		_, err = db.Exec(ctx, `
            INSERT INTO courses (id, title, description, duration, level, price, syllabus, created_at)
            VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
            ON CONFLICT (id) DO NOTHING
        `, c.id, c.title, c.description, c.duration, c.level, c.price, string(syllabus))
		if err != nil {
			return err
		}
	}

	workshops := [][]any{
		{int64(1), "Intro to System Design", "A 2-hour primer on scalable architectures.", "Priya Sharma", "2026-09-12", "online"},
		{int64(2), "Ace the Technical Interview", "Live mock interviews with senior engineers.", "Daniel Okafor", "2026-09-26", "online"},
	}
	for _, w := range workshops {
		_, err := db.Exec(ctx, `
            INSERT INTO workshops (id, title, description, speaker, date, mode, created_at)
            VALUES ($1, $2, $3, $4, $5, $6, NOW())
            ON CONFLICT (id) DO NOTHING
        `, w...)
		if err != nil {
			return err
		}
	}

	mentors := [][]any{
		{int64(1), "Priya Sharma", "Staff Engineer", "Finch Labs", "Distributed systems", "10+ years building payment infrastructure.", "/static/mentors/priya.jpg"},
		{int64(2), "Daniel Okafor", "Engineering Manager", "Northwind", "Career growth", "Coaches engineers through interviews and promotions.", "/static/mentors/daniel.jpg"},
		{int64(3), "Mei Lin", "ML Engineer", "Vector AI", "Applied machine learning", "Ships recommendation systems at scale.", "/static/mentors/mei.jpg"},
	}
	for _, m := range mentors {
		_, err := db.Exec(ctx, `
            INSERT INTO mentors (id, name, role, company, expertise, bio, image_url, created_at)
            VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
            ON CONFLICT (id) DO NOTHING
        `, m...)
		if err != nil {
			return err
		}
	}

	testimonials := [][]any{
		{int64(1), "Arjun Patel", "Bootcamp Graduate", "Landed a backend role six weeks after finishing the full-stack track.", true},
		{int64(2), "Sofia Reyes", "Career Switcher", "The mentor sessions were the difference between applying and getting hired.", true},
	}
	for _, t := range testimonials {
		_, err := db.Exec(ctx, `
            INSERT INTO testimonials (id, name, role, review, verified, created_at)
            VALUES ($1, $2, $3, $4, $5, NOW())
            ON CONFLICT (id) DO NOTHING
        `, t...)
		if err != nil {
			return err
		}
	}

	// Inserting with fixed ids does not advance the serial sequence.
	// Testimonials is the one seeded table the API also inserts into, so
	// realign its sequence or the next POST /api/testimonials draws an
	// already-taken id.
	_, err := db.Exec(ctx, `
        SELECT setval('testimonials_id_seq', (SELECT MAX(id) FROM testimonials))
    `)
	if err != nil {
		return err
	}

	utils.Logger.Info("Seeded demo data")
	return nil
}
