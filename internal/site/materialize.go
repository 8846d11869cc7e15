package site

import (
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/wpstack/wpsite/internal/errors"
	"github.com/wpstack/wpsite/internal/logger"
)

// RootDirName is the directory created under the base directory. It does not
// depend on the site name, so one base directory holds one site.
const RootDirName = "wordpress-docker"

// RootPath returns the site root under baseDir.
func RootPath(baseDir string) string {
	return filepath.Join(baseDir, RootDirName)
}

// ValidateName checks that name can be used as a hosts entry.
func ValidateName(name string) error {
	if name == "" {
		return errors.Validation("site name cannot be empty")
	}
	if strings.IndexFunc(name, unicode.IsSpace) >= 0 {
		return errors.Validation("site name cannot contain whitespace")
	}
	if strings.HasPrefix(name, "-") || strings.HasSuffix(name, "-") {
		return errors.Validation("site name cannot start or end with hyphen")
	}
	if strings.ContainsAny(name, `/\`) {
		return errors.Validation("site name cannot contain path separators")
	}
	return nil
}

// Materialize writes every artifact under root, creating directories as
// needed. Existing files are overwritten; nothing is rolled back on failure.
// It returns the absolute paths written.
func Materialize(root string) ([]string, error) {
	if err := os.MkdirAll(root, 0755); err != nil {
		return nil, errors.Filesystem("failed to create site root", err)
	}

	written := make([]string, 0, len(Artifacts))
	for _, a := range Artifacts {
		data, err := Content(a.Path)
		if err != nil {
			return written, errors.Wrap(errors.ErrCodeInternal, "missing embedded artifact "+a.Path, err)
		}

		target := filepath.Join(root, filepath.FromSlash(a.Path))
		if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
			return written, errors.Filesystem("failed to create directory for "+a.Path, err)
		}
		if err := os.WriteFile(target, data, a.Mode); err != nil {
			return written, errors.Filesystem("failed to write "+a.Path, err)
		}

		logger.DebugFields("wrote "+a.Path, map[string]interface{}{
			"root":  root,
			"bytes": len(data),
		})
		written = append(written, target)
	}

	return written, nil
}

// LoadDescriptor parses and validates the descriptor under root.
func LoadDescriptor(root string) (*Descriptor, error) {
	data, err := os.ReadFile(filepath.Join(root, DescriptorPath))
	if err != nil {
		return nil, errors.Filesystem("failed to read "+DescriptorPath, err)
	}
	d, err := ParseDescriptor(data)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, "invalid "+DescriptorPath, err)
	}
	if err := d.Validate(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, "invalid "+DescriptorPath, err)
	}
	return d, nil
}
