package api

import (
	"net/http"

	"github.com/pranavratheesh/portfolio-backend/database"
	"github.com/pranavratheesh/portfolio-backend/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// How many projects the index page shows
const (
	indexFeaturedProjects = 3
	indexRecentProjects   = 6
)

type siteHandler struct {
	responder         Responder
	logger            zerolog.Logger
	profileRepo       *database.ProfileRepo
	projectRepo       *database.ProjectRepo
	skillRepo         *database.SkillRepo
	experienceRepo    *database.ExperienceRepo
	educationRepo     *database.EducationRepo
	certificationRepo *database.CertificationRepo
	testimonialRepo   *database.TestimonialRepo
}

func newSiteHandler(
	profileRepo *database.ProfileRepo,
	projectRepo *database.ProjectRepo,
	skillRepo *database.SkillRepo,
	experienceRepo *database.ExperienceRepo,
	educationRepo *database.EducationRepo,
	certificationRepo *database.CertificationRepo,
	testimonialRepo *database.TestimonialRepo,
) siteHandler {
	logger := log.With().Str("handlerName", "siteHandler").Logger()

	return siteHandler{
		responder:         NewResponder(logger),
		logger:            logger,
		profileRepo:       profileRepo,
		projectRepo:       projectRepo,
		skillRepo:         skillRepo,
		experienceRepo:    experienceRepo,
		educationRepo:     educationRepo,
		certificationRepo: certificationRepo,
		testimonialRepo:   testimonialRepo,
	}
}

// IndexSummary aggregates everything the home page renders in one response
type IndexSummary struct {
	Profile          *models.Profile         `json:"profile,omitempty"`
	FeaturedProjects []*models.Project       `json:"featured_projects"`
	Projects         []*models.Project       `json:"projects"`
	Skills           []*models.Skill         `json:"skills"`
	Experiences      []*models.Experience    `json:"experiences"`
	Education        []*models.Education     `json:"education"`
	Certifications   []*models.Certification `json:"certifications"`
	Testimonials     []*models.Testimonial   `json:"testimonials"`
}

// getIndex returns the summary the home page is rendered from: the profile,
// featured and recent projects, skills, experiences (most recent first),
// education, certifications and featured testimonials
func (h siteHandler) getIndex() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		profile, err := h.profileRepo.Find()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "profile", err))
			return
		}

		featured, err := h.projectRepo.FindFeatured(indexFeaturedProjects)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find featured", "projects", err))
			return
		}

		projects, err := h.projectRepo.FindAll(indexRecentProjects)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "projects", err))
			return
		}

		skills, err := h.skillRepo.FindAll()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "skills", err))
			return
		}

		experiences, err := h.experienceRepo.FindAll()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "experiences", err))
			return
		}

		education, err := h.educationRepo.FindAll()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "education", err))
			return
		}

		certifications, err := h.certificationRepo.FindAll()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "certifications", err))
			return
		}

		testimonials, err := h.testimonialRepo.FindFeatured()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find featured", "testimonials", err))
			return
		}

		h.responder.WriteJSON(w, IndexSummary{
			Profile:          profile,
			FeaturedProjects: featured,
			Projects:         projects,
			Skills:           skills,
			Experiences:      experiences,
			Education:        education,
			Certifications:   certifications,
			Testimonials:     testimonials,
		})
	}
}
