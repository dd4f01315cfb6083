// Package storage implements the file storage contract: given raw bytes and
// a logical category, store the content and return a stable, retrievable
// reference. Validation happens before any byte is written.
package storage

import (
	"context"
	"io"
	"path/filepath"
	"strings"

	"github.com/pranavratheesh/portfolio-backend/errs"
)

// Upload categories. Each maps to a prefix under the store root.
const (
	CategoryProjects      = "projects"
	CategoryProjectImages = "project_images"
	CategoryCompanyLogos  = "company_logos"
	CategoryProfile       = "profile"
	CategoryBlog          = "blog"
)

// Store saves content under a category and returns a retrievable reference
type Store interface {
	Save(ctx context.Context, category, filename string, r io.Reader) (ref string, err error)
}

var imageExtensions = []string{".jpg", ".jpeg", ".png", ".svg", ".webp"}

// allowedExtensions returns the extension whitelist for a category, or nil
// when the category accepts any file (e.g. resumes).
func allowedExtensions(category string) []string {
	switch category {
	case CategoryCompanyLogos:
		return imageExtensions
	default:
		return nil
	}
}

// checkExtension rejects a filename whose extension is outside the
// category's whitelist. Runs before any write is attempted.
func checkExtension(category, filename string) error {
	allowed := allowedExtensions(category)
	if allowed == nil {
		return nil
	}
	ext := strings.ToLower(filepath.Ext(filename))
	for _, ok := range allowed {
		if ext == ok {
			return nil
		}
	}
	return errs.NewUnsupportedExtensionError(ext, allowed)
}
