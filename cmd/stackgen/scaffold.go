package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/stackgen-dev/stackgen/internal/errors"
	"github.com/stackgen-dev/stackgen/internal/scaffold"
	"github.com/stackgen-dev/stackgen/internal/templates"
)

// Progress phases announced while walking the manifest.
const (
	phaseNone = iota
	phaseTopDirs
	phaseSubDirs
	phaseFiles
)

func runScaffold(root string) error {
	printBanner()
	fmt.Println("  Scaffolding a Dash + FastAPI workspace...")

	target, err := filepath.Abs(root)
	if err != nil {
		return err
	}

	gen := scaffold.New(&cliReporter{})
	report, err := gen.Run(target, templates.Project())
	if err != nil {
		return err
	}

	fmt.Println()
	if report.Failed() {
		for _, res := range report.Failures() {
			if se, ok := res.Err.(*errors.StackgenError); ok {
				errorMsg("%s", se.FormatCompact())
			} else {
				errorMsg("%s: %v", res.Entry.Path, res.Err)
			}
		}
		fmt.Println()
		return errors.New("E031").WithDetail(report.Summary())
	}

	success("Workspace ready: %s", report.Summary())
	fmt.Println()
	fmt.Println("  To get started:")
	fmt.Println()
	fmt.Println("    pip install -r requirements.txt")
	fmt.Println("    cp src/backend/.env.example src/backend/.env")
	fmt.Println("    uvicorn src.backend.main:app --reload")
	fmt.Println()

	return nil
}

// cliReporter prints a progress line per entry, with a header whenever the
// manifest moves into a new phase.
type cliReporter struct {
	phase int
}

func (r *cliReporter) Entry(res scaffold.Result) {
	if p := phaseOf(res.Entry); p != r.phase {
		r.phase = p
		fmt.Println()
		info("%s", phaseTitle(p))
	}

	if res.Status == scaffold.StatusFailed {
		errorMsg("%-7s %s", res.Status, res.Entry.Path)
		return
	}
	info("%-7s %s", res.Status, res.Entry.Path)
}

// phaseOf buckets an entry into the announced phases: top-level directories,
// nested directories, then files.
func phaseOf(e scaffold.Entry) int {
	if e.Kind == scaffold.KindFile {
		return phaseFiles
	}
	if strings.Contains(e.Path, "/") {
		return phaseSubDirs
	}
	return phaseTopDirs
}

func phaseTitle(phase int) string {
	switch phase {
	case phaseTopDirs:
		return "Creating project directories..."
	case phaseSubDirs:
		return "Creating sub-directories..."
	case phaseFiles:
		return "Writing template files..."
	default:
		return ""
	}
}
