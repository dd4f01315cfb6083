package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/pranavratheesh/portfolio-backend/errs"
)

// LocalStore writes uploads under a root directory on local disk and
// returns URL-path references below baseURL (e.g. /media).
type LocalStore struct {
	root    string
	baseURL string
}

func NewLocalStore(root, baseURL string) *LocalStore {
	return &LocalStore{root: root, baseURL: strings.TrimSuffix(baseURL, "/")}
}

func (s *LocalStore) Save(ctx context.Context, category, filename string, r io.Reader) (string, error) {
	if err := checkExtension(category, filename); err != nil {
		return "", err
	}

	name := objectName(filename)
	dir := filepath.Join(s.root, category)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", errs.NewStorageError("create upload directory", err)
	}

	target := filepath.Join(dir, name)
	f, err := os.Create(target)
	if err != nil {
		return "", errs.NewStorageError("create upload file", err)
	}

	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		os.Remove(target)
		return "", errs.NewStorageError("write upload file", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(target)
		return "", errs.NewStorageError("flush upload file", err)
	}

	return path.Join(s.baseURL, category, name), nil
}

// objectName prefixes the sanitized filename with a fresh uuid so repeated
// uploads of the same file never collide
func objectName(filename string) string {
	base := filepath.Base(filename)
	return fmt.Sprintf("%s-%s", uuid.New(), base)
}
