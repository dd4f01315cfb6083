package api

import (
	"github.com/pranavratheesh/portfolio-backend/database"
	"github.com/pranavratheesh/portfolio-backend/storage"
)

// routeHandlers contains all the handlers for different route types
type routeHandlers struct {
	siteHandler          siteHandler
	profileHandler       profileHandler
	projectHandler       projectHandler
	blogPostHandler      blogPostHandler
	contactHandler       contactHandler
	skillHandler         skillHandler
	experienceHandler    experienceHandler
	educationHandler     educationHandler
	certificationHandler certificationHandler
	certificateHandler   certificateHandler
	technologyHandler    technologyHandler
	tagHandler           tagHandler
	testimonialHandler   testimonialHandler
	socialLinkHandler    socialLinkHandler
	uploadHandler        uploadHandler
}

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(database database.Database, store storage.Store) *routeHandlers {
	return &routeHandlers{
		siteHandler: newSiteHandler(
			database.ProfileRepo(),
			database.ProjectRepo(),
			database.SkillRepo(),
			database.ExperienceRepo(),
			database.EducationRepo(),
			database.CertificationRepo(),
			database.TestimonialRepo(),
		),
		profileHandler:       newProfileHandler(database.ProfileRepo()),
		projectHandler:       newProjectHandler(database.ProjectRepo(), database.ProjectImageRepo()),
		blogPostHandler:      newBlogPostHandler(database.BlogPostRepo()),
		contactHandler:       newContactHandler(database.ContactMessageRepo()),
		skillHandler:         newSkillHandler(database.SkillRepo()),
		experienceHandler:    newExperienceHandler(database.ExperienceRepo()),
		educationHandler:     newEducationHandler(database.EducationRepo()),
		certificationHandler: newCertificationHandler(database.CertificationRepo()),
		certificateHandler:   newCertificateHandler(database.CertificateRepo()),
		technologyHandler:    newTechnologyHandler(database.TechnologyRepo()),
		tagHandler:           newTagHandler(database.TagRepo()),
		testimonialHandler:   newTestimonialHandler(database.TestimonialRepo()),
		socialLinkHandler:    newSocialLinkHandler(database.SocialLinkRepo()),
		uploadHandler:        newUploadHandler(store),
	}
}
