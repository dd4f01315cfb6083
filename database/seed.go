package database

import (
	"time"

	"github.com/pranavratheesh/portfolio-backend/models"
	"gorm.io/gorm"
)

// Seed clears the demo entity types and inserts a fixed illustrative
// dataset. Demo/bootstrap use only; runs in a single transaction.
func Seed(db *gorm.DB) error {
	return db.Transaction(func(tx *gorm.DB) error {
		for _, entity := range []interface{}{
			&models.ProjectImage{}, &models.Project{}, &models.Skill{},
			&models.Experience{}, &models.Education{}, &models.Certification{},
		} {
			if err := tx.Where("1 = 1").Delete(entity).Error; err != nil {
				return err
			}
		}

		projects := []models.Project{
			{
				Title:            "Women Safety Scream Alarm",
				ShortDescription: "Women Security App with Scream Alert designed to enhance personal safety",
				Description:      "Women Security App with Scream Alert is designed to enhance personal safety for women by providing an automatic, real-time distress signaling solution. Key features: Real-time Sound producing, GPS Integration, Manual Panic Button for activating the alert",
				Technologies:     "Python, Django, React, GPS API",
				Featured:         true,
			},
			{
				Title:            "MovieCupid",
				ShortDescription: "Personalized movie recommendation platform",
				Description:      "A personalized movie recommendation platform that identifies users' favorite genres, artists, and directors to suggest movies tailored to their interests. It integrates external movie database TMDb to fetch details about movies, reviews, ratings, and OTT availability.",
				Technologies:     "Django, HTML/CSS, TMDb API, PostgreSQL",
				Featured:         true,
			},
		}
		for i := range projects {
			if err := tx.Create(&projects[i]).Error; err != nil {
				return err
			}
		}

		skills := []models.Skill{
			{Name: "Python", Category: "Backend", Proficiency: 85},
			{Name: "Django", Category: "Backend", Proficiency: 80},
			{Name: "Flask", Category: "Backend", Proficiency: 70},
			{Name: "React", Category: "Frontend", Proficiency: 75},
			{Name: "HTML/CSS", Category: "Frontend", Proficiency: 85},
			{Name: "JavaScript", Category: "Frontend", Proficiency: 75},
			{Name: "MySQL", Category: "Database", Proficiency: 80},
			{Name: "PostgreSQL", Category: "Database", Proficiency: 75},
			{Name: "API Integration", Category: "Backend", Proficiency: 80},
		}
		for i := range skills {
			skills[i].Order = i
			if err := tx.Create(&skills[i]).Error; err != nil {
				return err
			}
		}

		janEnd := time.Date(2024, time.January, 31, 0, 0, 0, 0, time.UTC)
		experiences := []models.Experience{
			{
				Title:       "Intern",
				Company:     "Luminar Technolab",
				Description: "Pursuing a full stack course in Python Django and React with hands-on web development experience.",
				StartDate:   time.Date(2023, time.October, 1, 0, 0, 0, 0, time.UTC),
				Current:     true,
			},
			{
				Title:       "Intern",
				Company:     "Tech By Heart",
				Description: "Gained hands-on experience in cybersecurity and learned to combat digital threats.",
				StartDate:   time.Date(2023, time.December, 1, 0, 0, 0, 0, time.UTC),
				EndDate:     &janEnd,
			},
		}
		for i := range experiences {
			if err := tx.Create(&experiences[i]).Error; err != nil {
				return err
			}
		}

		gradEnd := time.Date(2023, time.June, 30, 0, 0, 0, 0, time.UTC)
		schoolEnd := time.Date(2020, time.March, 31, 0, 0, 0, 0, time.UTC)
		education := []models.Education{
			{
				Degree:       "Bachelor of Science in Computer Science",
				Institution:  "University Name",
				FieldOfStudy: "Computer Science",
				Grade:        "CGPA 7.0",
				StartDate:    time.Date(2020, time.June, 1, 0, 0, 0, 0, time.UTC),
				EndDate:      &gradEnd,
			},
			{
				Degree:      "Higher Secondary Education",
				Institution: "School Name",
				Grade:       "Aggregate: 85%",
				StartDate:   time.Date(2018, time.June, 1, 0, 0, 0, 0, time.UTC),
				EndDate:     &schoolEnd,
			},
		}
		for i := range education {
			if err := tx.Create(&education[i]).Error; err != nil {
				return err
			}
		}

		certifications := []models.Certification{
			{Title: "Full Stack Web Development (Python Django & React)", Issuer: "Luminar Technolab", CompletionDate: "2024"},
			{Title: "Cybersecurity Fundamentals", Issuer: "Tech By Heart", CompletionDate: "2024"},
		}
		for i := range certifications {
			if err := tx.Create(&certifications[i]).Error; err != nil {
				return err
			}
		}

		return nil
	})
}
