package scaffold

import (
	"os"
	"path/filepath"

	"github.com/stackgen-dev/stackgen/internal/errors"
)

// Reporter receives each result as the generator produces it.
type Reporter interface {
	Entry(res Result)
}

// nopReporter discards progress.
type nopReporter struct{}

func (nopReporter) Entry(Result) {}

// Generator materializes manifests. The zero value is usable and silent.
type Generator struct {
	// Reporter receives per-entry progress. Nil means no progress output.
	Reporter Reporter
}

// New returns a Generator that reports progress to r. A nil r is allowed.
func New(r Reporter) *Generator {
	return &Generator{Reporter: r}
}

// Run materializes the manifest under root in a single linear pass.
//
// Per-entry problems (permissions, disk, kind conflicts) are recorded in the
// report and never abort the run. The returned error is non-nil only when
// the run could not start at all: an invalid manifest or an unusable root.
func (g *Generator) Run(root string, m Manifest) (*Report, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}

	if root == "" {
		root = "."
	}
	if info, err := os.Stat(root); err != nil || !info.IsDir() {
		return nil, errors.New("E030").WithPath(root).Wrap(err).
			WithSuggestion("Create the directory first or pass --root pointing at an existing one")
	}

	report := &Report{}
	reporter := g.Reporter
	if reporter == nil {
		reporter = nopReporter{}
	}

	for _, e := range m {
		var (
			st  Status
			err error
		)
		if e.Kind == KindDir {
			st, err = g.applyDir(root, e)
		} else {
			st, err = g.applyFile(root, e)
		}
		reporter.Entry(report.add(e, st, err))
	}

	return report, nil
}

// applyDir creates the directory and any missing ancestors. An existing
// directory coexists silently; an existing file is a conflict.
func (g *Generator) applyDir(root string, e Entry) (Status, error) {
	full := filepath.Join(root, filepath.FromSlash(e.Path))

	info, err := os.Stat(full)
	switch {
	case err == nil && info.IsDir():
		return StatusAlreadyExisted, nil
	case err == nil:
		return StatusFailed, errors.New("E020").WithPath(e.Path).
			WithSuggestion("Remove the file or adjust the manifest")
	case !os.IsNotExist(err):
		return StatusFailed, errors.New("E012").WithPath(e.Path).Wrap(err)
	}

	if err := os.MkdirAll(full, 0o755); err != nil {
		return StatusFailed, errors.New("E010").WithPath(e.Path).Wrap(err)
	}
	return StatusCreated, nil
}

// applyFile writes the content verbatim if the file is absent. An existing
// file is skipped so developer edits are never clobbered; an existing
// directory is a conflict.
func (g *Generator) applyFile(root string, e Entry) (Status, error) {
	full := filepath.Join(root, filepath.FromSlash(e.Path))

	info, err := os.Stat(full)
	switch {
	case err == nil && info.IsDir():
		return StatusFailed, errors.New("E021").WithPath(e.Path).
			WithSuggestion("Remove the directory or adjust the manifest")
	case err == nil:
		return StatusSkipped, nil
	case !os.IsNotExist(err):
		return StatusFailed, errors.New("E012").WithPath(e.Path).Wrap(err)
	}

	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return StatusFailed, errors.New("E010").WithPath(e.Path).Wrap(err)
	}
	if err := os.WriteFile(full, []byte(e.Content), 0o644); err != nil {
		return StatusFailed, errors.New("E011").WithPath(e.Path).Wrap(err)
	}
	return StatusCreated, nil
}
