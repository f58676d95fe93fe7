package deps

import (
	"io/fs"
	"strings"

	"github.com/matzehuels/techstack/pkg/errors"
)

// Exists reports whether name exists in fsys and is a regular file.
func Exists(fsys fs.FS, name string) bool {
	info, err := fs.Stat(fsys, name)
	return err == nil && !info.IsDir()
}

// Detect returns the languages whose manifest is present in fsys,
// preserving the order of langs.
func Detect(fsys fs.FS, langs ...*Language) []*Language {
	var found []*Language
	for _, l := range langs {
		if Exists(fsys, l.ManifestFile) {
			found = append(found, l)
		}
	}
	return found
}

// ReadManifest reads the manifest of lang from fsys. A missing file yields
// an [errors.ErrCodeManifestMissing] error.
func ReadManifest(fsys fs.FS, lang *Language) ([]byte, error) {
	data, err := fs.ReadFile(fsys, lang.ManifestFile)
	if errors.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCodeManifestMissing, err, "%s not found", lang.ManifestFile)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "read %s", lang.ManifestFile)
	}
	return data, nil
}

// RequirementLines splits requirements.txt content into trimmed lines,
// dropping blank lines and # comments.
func RequirementLines(data []byte) []string {
	var lines []string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}
