// Package publish rewrites the placeholder block inside the published HTML
// page. The whole file is read, the container's inner content is replaced in
// memory, and the file is written back; there is no streaming edit that could
// leave the page half-written.
package publish

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"regexp"
)

// Marker identifies the placeholder container in the template.
const Marker = `id="secar-weather-brief"`

var (
	// ErrMarkerMissing means the template has no placeholder container.
	// This is a configuration error, not an upstream-data problem.
	ErrMarkerMissing = errors.New("placeholder container not found in template")
	// ErrMarkerAmbiguous means the template has more than one container.
	ErrMarkerAmbiguous = errors.New("placeholder container appears more than once in template")
	// ErrMarkerUnterminated means the container's closing tag is missing.
	ErrMarkerUnterminated = errors.New("placeholder container is not terminated")
)

var (
	openTagRe = regexp.MustCompile(`<div\b[^>]*\b` + regexp.QuoteMeta(Marker) + `[^>]*>`)
	divTagRe  = regexp.MustCompile(`(?i)<div\b[^>]*>|</div\s*>`)
)

const defaultFileMode fs.FileMode = 0o644

// FilePublisher replaces the placeholder block in a template file on disk.
type FilePublisher struct {
	path   string
	logger *slog.Logger
}

// NewFilePublisher creates a publisher for the given template path.
func NewFilePublisher(path string, logger *slog.Logger) *FilePublisher {
	return &FilePublisher{path: path, logger: logger}
}

// Publish replaces the container's inner content with fragment and rewrites
// the file, preserving its permissions.
func (p *FilePublisher) Publish(fragment string) error {
	raw, err := os.ReadFile(p.path)
	if err != nil {
		return fmt.Errorf("read template %s: %w", p.path, err)
	}

	mode := defaultFileMode
	if info, err := os.Stat(p.path); err == nil {
		mode = info.Mode().Perm()
	}

	updated, err := ReplaceContainer(string(raw), fragment)
	if err != nil {
		return fmt.Errorf("template %s: %w", p.path, err)
	}

	if err := os.WriteFile(p.path, []byte(updated), mode); err != nil {
		return fmt.Errorf("write template %s: %w", p.path, err)
	}

	p.logger.Info("template updated", "path", p.path, "bytes", len(updated))
	return nil
}

// ReplaceContainer returns doc with the placeholder container's inner content
// replaced verbatim by fragment. Exactly one container must exist.
func ReplaceContainer(doc, fragment string) (string, error) {
	openEnd, closeStart, err := containerBounds(doc)
	if err != nil {
		return "", err
	}
	return doc[:openEnd] + fragment + doc[closeStart:], nil
}

// ExtractContainer returns the container's current inner content.
func ExtractContainer(doc string) (string, error) {
	openEnd, closeStart, err := containerBounds(doc)
	if err != nil {
		return "", err
	}
	return doc[openEnd:closeStart], nil
}

// containerBounds locates the container and returns the offsets just after
// its opening tag and just before its matching closing tag. Matching is depth
// aware, so the inner content may itself contain div elements.
func containerBounds(doc string) (openEnd, closeStart int, err error) {
	opens := openTagRe.FindAllStringIndex(doc, -1)
	switch len(opens) {
	case 0:
		return 0, 0, ErrMarkerMissing
	case 1:
	default:
		return 0, 0, ErrMarkerAmbiguous
	}

	openEnd = opens[0][1]
	depth := 1
	for _, tag := range divTagRe.FindAllStringIndex(doc[openEnd:], -1) {
		if doc[openEnd+tag[0]+1] == '/' {
			depth--
		} else {
			depth++
		}
		if depth == 0 {
			return openEnd, openEnd + tag[0], nil
		}
	}
	return 0, 0, ErrMarkerUnterminated
}
