package api

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/pranavratheesh/portfolio-backend/database"
	"github.com/pranavratheesh/portfolio-backend/errs"
	"github.com/pranavratheesh/portfolio-backend/models"
	"github.com/pranavratheesh/portfolio-backend/validation"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const relatedProjectsLimit = 3

type projectHandler struct {
	responder        Responder
	logger           zerolog.Logger
	projectRepo      *database.ProjectRepo
	projectImageRepo *database.ProjectImageRepo
}

func newProjectHandler(projectRepo *database.ProjectRepo, projectImageRepo *database.ProjectImageRepo) projectHandler {
	logger := log.With().Str("handlerName", "projectHandler").Logger()

	return projectHandler{
		responder:        NewResponder(logger),
		logger:           logger,
		projectRepo:      projectRepo,
		projectImageRepo: projectImageRepo,
	}
}

// ProjectDetail is a project with its gallery and related projects
type ProjectDetail struct {
	Project         *models.Project   `json:"project"`
	RelatedProjects []*models.Project `json:"related_projects"`
}

// ProjectCollection represents multiple projects
type ProjectCollection struct {
	Projects []*models.Project `json:"projects"`
	Total    int               `json:"total"`
}

// getAllProjects lists projects newest-created first. Supports optional
// ?featured=true and ?limit=N query parameters.
func (h projectHandler) getAllProjects() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit, err := parseLimit(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		var projects []*models.Project
		if r.URL.Query().Get("featured") == "true" {
			projects, err = h.projectRepo.FindFeatured(limit)
		} else {
			projects, err = h.projectRepo.FindAll(limit)
		}
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "projects", err))
			return
		}

		h.responder.WriteJSON(w, ProjectCollection{
			Projects: projects,
			Total:    len(projects),
		})
	}
}

// getProject retrieves a project by ID with its ordered images and a short
// list of related projects. Absence is a 404, not an empty result.
func (h projectHandler) getProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, err := parseID(r, "projectID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		project, err := h.projectRepo.FindByID(projectID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "project", err))
			return
		}
		if project == nil {
			h.responder.WriteError(w, errs.NewNotFound("project"))
			return
		}

		related, err := h.projectRepo.FindRelated(projectID, relatedProjectsLimit)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find related", "projects", err))
			return
		}

		h.responder.WriteJSON(w, ProjectDetail{
			Project:         project,
			RelatedProjects: related,
		})
	}
}

// getProjectImages lists a project's images in display order
func (h projectHandler) getProjectImages() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, err := parseID(r, "projectID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		project, err := h.projectRepo.FindByID(projectID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "project", err))
			return
		}
		if project == nil {
			h.responder.WriteError(w, errs.NewNotFound("project"))
			return
		}

		images, err := h.projectImageRepo.FindByProject(projectID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "project images", err))
			return
		}

		h.responder.WriteJSON(w, images)
	}
}

// createProject accepts a project plus zero or more inline image
// submissions. Every part is validated before anything is written; the
// commit is all-or-nothing.
func (h projectHandler) createProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var submission ProjectSubmission
		if err := decodeJSON(r, &submission); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.validateSubmission(&submission); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		project := submission.Project
		project.Images = nil
		project.TechnologyItems = nil

		if err := h.projectRepo.AddWithImages(&project, submission.ImageSubmissions, submission.TechnologyIDs); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", "project", err))
			return
		}

		created, err := h.projectRepo.FindByID(project.ID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find created", "project", err))
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, created)
	}
}

// updateProject updates a project; when image submissions are present the
// whole image set is replaced in the same transaction
func (h projectHandler) updateProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, err := parseID(r, "projectID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		existing, err := h.projectRepo.FindByID(projectID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "project", err))
			return
		}
		if existing == nil {
			h.responder.WriteError(w, errs.NewNotFound("project"))
			return
		}

		var submission ProjectSubmission
		if err := decodeJSON(r, &submission); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.validateSubmission(&submission); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		project := submission.Project
		project.ID = projectID
		project.CreatedAt = existing.CreatedAt
		project.Images = nil
		project.TechnologyItems = nil

		if err := h.projectRepo.UpdateWithImages(&project, submission.ImageSubmissions, submission.TechnologyIDs); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update", "project", err))
			return
		}

		updated, err := h.projectRepo.FindByID(projectID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find updated", "project", err))
			return
		}

		h.responder.WriteJSON(w, updated)
	}
}

// deleteProject deletes a project and cascades to its images
func (h projectHandler) deleteProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, err := parseID(r, "projectID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		existing, err := h.projectRepo.FindByID(projectID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "project", err))
			return
		}
		if existing == nil {
			h.responder.WriteError(w, errs.NewNotFound("project"))
			return
		}

		if err := h.projectRepo.Delete(projectID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete", "project", err))
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "project deleted successfully",
		})
	}
}

// addProjectImage attaches one validated image to an existing project
func (h projectHandler) addProjectImage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, err := parseID(r, "projectID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		project, err := h.projectRepo.FindByID(projectID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "project", err))
			return
		}
		if project == nil {
			h.responder.WriteError(w, errs.NewNotFound("project"))
			return
		}

		var image models.ProjectImage
		if err := decodeJSON(r, &image); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := validation.ValidateProjectImage(&image); err != nil {
			h.responder.WriteError(w, asValidationError(err))
			return
		}

		image.ID = uuid.Nil
		image.ProjectID = projectID

		if err := h.projectImageRepo.Add(&image); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", "project image", err))
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, image)
	}
}

// deleteProjectImage removes a single image from a project's gallery
func (h projectHandler) deleteProjectImage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, err := parseID(r, "projectID"); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		imageID, err := parseID(r, "imageID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.projectImageRepo.Delete(imageID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete", "project image", err))
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "project image deleted successfully",
		})
	}
}

// validateSubmission checks the project and each inline image submission
// independently, so the admin UI can surface every broken rule at once
func (h projectHandler) validateSubmission(submission *ProjectSubmission) error {
	var all validation.Violations

	if err := validation.ValidateProject(&submission.Project); err != nil {
		all = append(all, err.(validation.Violations)...)
	}
	for i := range submission.ImageSubmissions {
		if err := validation.ValidateProjectImage(&submission.ImageSubmissions[i]); err != nil {
			all = append(all, err.(validation.Violations)...)
		}
	}

	if len(all) > 0 {
		return errs.NewValidationError(all)
	}
	return nil
}
