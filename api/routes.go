package api

import (
	"github.com/go-chi/chi/v5"
)

// setupRoutes wires the public site endpoints and the authenticated
// administrative endpoints
func setupRoutes(r chi.Router, handlers *routeHandlers, authMiddleware authMiddleware) {
	// Public site endpoints
	r.Group(func(r chi.Router) {
		r.Get("/", handlers.siteHandler.getIndex())

		r.Get("/projects", handlers.projectHandler.getAllProjects())
		r.Get("/projects/{projectID}", handlers.projectHandler.getProject())
		r.Get("/projects/{projectID}/images", handlers.projectHandler.getProjectImages())

		r.Get("/blog-posts", handlers.blogPostHandler.getPublishedBlogPosts())
		r.Get("/blog-posts/{slug}", handlers.blogPostHandler.getBlogPostBySlug())

		r.Post("/contact", handlers.contactHandler.submitContactMessage())
	})

	// Administrative endpoints
	r.Route("/admin", func(r chi.Router) {
		r.Use(authMiddleware.authenticate)

		r.Get("/profile", handlers.profileHandler.getProfile())
		r.Post("/profile", handlers.profileHandler.createProfile())
		r.Put("/profile/{profileID}", handlers.profileHandler.updateProfile())

		r.Post("/projects", handlers.projectHandler.createProject())
		r.Put("/projects/{projectID}", handlers.projectHandler.updateProject())
		r.Delete("/projects/{projectID}", handlers.projectHandler.deleteProject())
		r.Post("/projects/{projectID}/images", handlers.projectHandler.addProjectImage())
		r.Delete("/projects/{projectID}/images/{imageID}", handlers.projectHandler.deleteProjectImage())

		r.Get("/blog-posts", handlers.blogPostHandler.getAllBlogPosts())
		r.Post("/blog-posts", handlers.blogPostHandler.createBlogPost())
		r.Put("/blog-posts/{blogPostID}", handlers.blogPostHandler.updateBlogPost())
		r.Delete("/blog-posts/{blogPostID}", handlers.blogPostHandler.deleteBlogPost())

		r.Get("/skills", handlers.skillHandler.getAllSkills())
		r.Post("/skills", handlers.skillHandler.createSkill())
		r.Put("/skills/{skillID}", handlers.skillHandler.updateSkill())
		r.Delete("/skills/{skillID}", handlers.skillHandler.deleteSkill())

		r.Get("/experiences", handlers.experienceHandler.getAllExperiences())
		r.Post("/experiences", handlers.experienceHandler.createExperience())
		r.Put("/experiences/{experienceID}", handlers.experienceHandler.updateExperience())
		r.Delete("/experiences/{experienceID}", handlers.experienceHandler.deleteExperience())

		r.Get("/education", handlers.educationHandler.getAllEducation())
		r.Post("/education", handlers.educationHandler.createEducation())
		r.Put("/education/{educationID}", handlers.educationHandler.updateEducation())
		r.Delete("/education/{educationID}", handlers.educationHandler.deleteEducation())

		r.Get("/certifications", handlers.certificationHandler.getAllCertifications())
		r.Post("/certifications", handlers.certificationHandler.createCertification())
		r.Put("/certifications/{certificationID}", handlers.certificationHandler.updateCertification())
		r.Delete("/certifications/{certificationID}", handlers.certificationHandler.deleteCertification())

		r.Get("/certificates", handlers.certificateHandler.getAllCertificates())
		r.Post("/certificates", handlers.certificateHandler.createCertificate())
		r.Put("/certificates/{certificateID}", handlers.certificateHandler.updateCertificate())
		r.Delete("/certificates/{certificateID}", handlers.certificateHandler.deleteCertificate())

		r.Get("/technologies", handlers.technologyHandler.getAllTechnologies())
		r.Post("/technologies", handlers.technologyHandler.createTechnology())
		r.Put("/technologies/{technologyID}", handlers.technologyHandler.updateTechnology())
		r.Delete("/technologies/{technologyID}", handlers.technologyHandler.deleteTechnology())

		r.Get("/tags", handlers.tagHandler.getAllTags())
		r.Post("/tags", handlers.tagHandler.createTag())
		r.Put("/tags/{tagID}", handlers.tagHandler.updateTag())
		r.Delete("/tags/{tagID}", handlers.tagHandler.deleteTag())

		r.Get("/testimonials", handlers.testimonialHandler.getAllTestimonials())
		r.Post("/testimonials", handlers.testimonialHandler.createTestimonial())
		r.Put("/testimonials/{testimonialID}", handlers.testimonialHandler.updateTestimonial())
		r.Delete("/testimonials/{testimonialID}", handlers.testimonialHandler.deleteTestimonial())

		r.Get("/social-links", handlers.socialLinkHandler.getAllSocialLinks())
		r.Post("/social-links", handlers.socialLinkHandler.createSocialLink())
		r.Put("/social-links/{socialLinkID}", handlers.socialLinkHandler.updateSocialLink())
		r.Delete("/social-links/{socialLinkID}", handlers.socialLinkHandler.deleteSocialLink())

		r.Get("/contact-messages", handlers.contactHandler.getAllContactMessages())
		r.Delete("/contact-messages/{messageID}", handlers.contactHandler.deleteContactMessage())

		r.Post("/uploads", handlers.uploadHandler.uploadFile())
	})
}
