package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pranavratheesh/portfolio-backend/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStoreSave(t *testing.T) {
	root := t.TempDir()
	store := NewLocalStore(root, "/media/")

	ref, err := store.Save(context.Background(), CategoryProjects, "screenshot.png", strings.NewReader("image-bytes"))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(ref, "/media/projects/"))
	assert.True(t, strings.HasSuffix(ref, "screenshot.png"))

	// The reference maps back to a file under the store root
	name := filepath.Base(ref)
	content, err := os.ReadFile(filepath.Join(root, CategoryProjects, name))
	require.NoError(t, err)
	assert.Equal(t, "image-bytes", string(content))
}

func TestLocalStoreSaveNamesNeverCollide(t *testing.T) {
	store := NewLocalStore(t.TempDir(), "/media")

	first, err := store.Save(context.Background(), CategoryBlog, "cover.jpg", strings.NewReader("a"))
	require.NoError(t, err)
	second, err := store.Save(context.Background(), CategoryBlog, "cover.jpg", strings.NewReader("b"))
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestLocalStoreRejectsDisallowedExtension(t *testing.T) {
	root := t.TempDir()
	store := NewLocalStore(root, "/media")

	_, err := store.Save(context.Background(), CategoryCompanyLogos, "logo.exe", strings.NewReader("payload"))
	require.Error(t, err)
	assert.True(t, errs.IsUnsupportedExtension(err))

	// Rejection happens before any write
	entries, err := os.ReadDir(root)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestLocalStoreLogoExtensions(t *testing.T) {
	store := NewLocalStore(t.TempDir(), "/media")

	for _, name := range []string{"a.jpg", "b.jpeg", "c.png", "d.svg", "e.webp", "F.PNG"} {
		_, err := store.Save(context.Background(), CategoryCompanyLogos, name, strings.NewReader("x"))
		assert.NoError(t, err, "filename %s", name)
	}
}

func TestCheckExtensionOnlyGuardsLogos(t *testing.T) {
	// Resumes and other documents are not restricted to image types
	assert.NoError(t, checkExtension(CategoryProfile, "resume.pdf"))
	assert.NoError(t, checkExtension(CategoryProjects, "demo.gif"))
	assert.Error(t, checkExtension(CategoryCompanyLogos, "logo.gif"))
}
