package scaffold

import (
	"path"
	"strings"

	"github.com/stackgen-dev/stackgen/internal/errors"
)

// Kind distinguishes directory entries from file entries.
type Kind int

const (
	// KindDir is a directory entry.
	KindDir Kind = iota

	// KindFile is a file entry with verbatim content.
	KindFile
)

// String returns the kind as a short lowercase word.
func (k Kind) String() string {
	switch k {
	case KindDir:
		return "dir"
	case KindFile:
		return "file"
	default:
		return "unknown"
	}
}

// Entry is one directory-or-file instruction within a manifest.
type Entry struct {
	// Path is the slash-separated path relative to the target root.
	Path string

	// Kind says whether the entry is a directory or a file.
	Kind Kind

	// Content is the verbatim file content. Meaningful only for KindFile.
	Content string
}

// Dir returns a directory entry.
func Dir(p string) Entry {
	return Entry{Path: p, Kind: KindDir}
}

// File returns a file entry with the given content.
func File(p, content string) Entry {
	return Entry{Path: p, Kind: KindFile, Content: content}
}

// Manifest is an ordered list of entries. Order matters only in that earlier
// entries are processed first; file entries never depend on a preceding
// directory entry because ancestors are auto-created.
type Manifest []Entry

// Validate checks that every path is relative, stays inside the root, and is
// declared at most once.
func (m Manifest) Validate() error {
	seen := make(map[string]struct{}, len(m))

	for _, e := range m {
		if e.Path == "" {
			return errors.New("E003")
		}
		if strings.HasPrefix(e.Path, "/") || strings.Contains(e.Path, "\\") {
			return errors.New("E001").WithPath(e.Path).
				WithDetail("Paths must be relative and slash-separated.")
		}

		clean := path.Clean(e.Path)
		if clean == ".." || strings.HasPrefix(clean, "../") || clean == "." {
			return errors.New("E001").WithPath(e.Path).
				WithDetail("Paths must not escape the target root.")
		}

		if _, dup := seen[clean]; dup {
			return errors.New("E002").WithPath(e.Path)
		}
		seen[clean] = struct{}{}
	}

	return nil
}
