package scaffold

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stackgen-dev/stackgen/internal/errors"
)

// recordingReporter collects every result it receives.
type recordingReporter struct {
	results []Result
}

func (r *recordingReporter) Entry(res Result) {
	r.results = append(r.results, res)
}

func testManifest() Manifest {
	return Manifest{
		Dir("backend"),
		Dir("frontend/components"),
		File("frontend/app.py", "print(1)"),
	}
}

func TestRun_EmptyRoot(t *testing.T) {
	root := t.TempDir()

	report, err := New(nil).Run(root, testManifest())
	if err != nil {
		t.Fatalf("Run error: %v", err)
	}

	// Filesystem state
	for _, dir := range []string{"backend", "frontend/components"} {
		info, err := os.Stat(filepath.Join(root, filepath.FromSlash(dir)))
		if err != nil || !info.IsDir() {
			t.Errorf("Directory %q not created (err=%v)", dir, err)
		}
	}
	content, err := os.ReadFile(filepath.Join(root, "frontend", "app.py"))
	if err != nil {
		t.Fatalf("frontend/app.py not created: %v", err)
	}
	if string(content) != "print(1)" {
		t.Errorf("Content = %q, want %q", content, "print(1)")
	}

	// Report state: 2 created directories, 1 created file.
	var dirs, files int
	for _, res := range report.Results {
		if res.Status != StatusCreated {
			t.Errorf("%s status = %v, want created", res.Entry.Path, res.Status)
			continue
		}
		if res.Entry.Kind == KindDir {
			dirs++
		} else {
			files++
		}
	}
	if dirs != 2 || files != 1 {
		t.Errorf("Created = %d dirs, %d files; want 2 dirs, 1 file", dirs, files)
	}
	if report.Failed() {
		t.Error("Report should not be failed")
	}
}

func TestRun_Idempotent(t *testing.T) {
	root := t.TempDir()
	gen := New(nil)

	if _, err := gen.Run(root, testManifest()); err != nil {
		t.Fatalf("First run error: %v", err)
	}

	report, err := gen.Run(root, testManifest())
	if err != nil {
		t.Fatalf("Second run error: %v", err)
	}

	if got := report.Count(StatusAlreadyExisted); got != 2 {
		t.Errorf("AlreadyExisted count = %d, want 2", got)
	}
	if got := report.Count(StatusSkipped); got != 1 {
		t.Errorf("Skipped count = %d, want 1", got)
	}
	if got := report.Count(StatusCreated); got != 0 {
		t.Errorf("Created count = %d, want 0", got)
	}

	content, _ := os.ReadFile(filepath.Join(root, "frontend", "app.py"))
	if string(content) != "print(1)" {
		t.Errorf("Content changed on re-run: %q", content)
	}
}

func TestRun_NonDestructive(t *testing.T) {
	root := t.TempDir()

	// Pre-populate the target file with developer edits.
	if err := os.MkdirAll(filepath.Join(root, "frontend"), 0o755); err != nil {
		t.Fatal(err)
	}
	custom := "# my customized app\nprint(2)\n"
	if err := os.WriteFile(filepath.Join(root, "frontend", "app.py"), []byte(custom), 0o644); err != nil {
		t.Fatal(err)
	}

	report, err := New(nil).Run(root, testManifest())
	if err != nil {
		t.Fatalf("Run error: %v", err)
	}

	content, _ := os.ReadFile(filepath.Join(root, "frontend", "app.py"))
	if string(content) != custom {
		t.Errorf("Pre-existing content clobbered: %q", content)
	}

	for _, res := range report.Results {
		if res.Entry.Path == "frontend/app.py" && res.Status != StatusSkipped {
			t.Errorf("Status = %v, want skipped", res.Status)
		}
	}
}

func TestRun_FileBeforeParentDir(t *testing.T) {
	root := t.TempDir()

	// The file entry comes first; its ancestors must be auto-created.
	m := Manifest{
		File("src/backend/main.py", "app = None\n"),
		Dir("src/backend"),
	}

	report, err := New(nil).Run(root, m)
	if err != nil {
		t.Fatalf("Run error: %v", err)
	}

	content, err := os.ReadFile(filepath.Join(root, "src", "backend", "main.py"))
	if err != nil {
		t.Fatalf("File not created: %v", err)
	}
	if string(content) != "app = None\n" {
		t.Errorf("Content = %q", content)
	}

	if report.Results[0].Status != StatusCreated {
		t.Errorf("File status = %v, want created", report.Results[0].Status)
	}
	if report.Results[1].Status != StatusAlreadyExisted {
		t.Errorf("Dir status = %v, want exists", report.Results[1].Status)
	}
}

func TestRun_DirConflict(t *testing.T) {
	root := t.TempDir()

	// A regular file occupies the path declared as a directory.
	if err := os.WriteFile(filepath.Join(root, "backend"), []byte("not a dir"), 0o644); err != nil {
		t.Fatal(err)
	}

	report, err := New(nil).Run(root, testManifest())
	if err != nil {
		t.Fatalf("Run error: %v", err)
	}

	if !report.Failed() {
		t.Fatal("Report should be failed")
	}

	failures := report.Failures()
	if len(failures) != 1 {
		t.Fatalf("Failures = %d, want 1", len(failures))
	}
	if failures[0].Entry.Path != "backend" {
		t.Errorf("Failed path = %q, want %q", failures[0].Entry.Path, "backend")
	}
	se, ok := failures[0].Err.(*errors.StackgenError)
	if !ok || se.Code != "E020" {
		t.Errorf("Err = %v, want E020", failures[0].Err)
	}

	// The rest of the manifest was still processed.
	if got := report.Count(StatusCreated); got != 2 {
		t.Errorf("Created count = %d, want 2", got)
	}
	if _, err := os.Stat(filepath.Join(root, "frontend", "app.py")); err != nil {
		t.Errorf("Later entries not processed: %v", err)
	}
}

func TestRun_FileConflict(t *testing.T) {
	root := t.TempDir()

	// A directory occupies the path declared as a file.
	if err := os.MkdirAll(filepath.Join(root, "frontend", "app.py"), 0o755); err != nil {
		t.Fatal(err)
	}

	report, err := New(nil).Run(root, testManifest())
	if err != nil {
		t.Fatalf("Run error: %v", err)
	}

	failures := report.Failures()
	if len(failures) != 1 {
		t.Fatalf("Failures = %d, want 1", len(failures))
	}
	se, ok := failures[0].Err.(*errors.StackgenError)
	if !ok || se.Code != "E021" {
		t.Errorf("Err = %v, want E021", failures[0].Err)
	}
}

func TestRun_InvalidManifest(t *testing.T) {
	root := t.TempDir()

	m := Manifest{
		Dir("src"),
		Dir("src"),
	}

	_, err := New(nil).Run(root, m)
	se, ok := err.(*errors.StackgenError)
	if !ok || se.Code != "E002" {
		t.Fatalf("Run error = %v, want E002", err)
	}
}

func TestRun_MissingRoot(t *testing.T) {
	root := filepath.Join(t.TempDir(), "does-not-exist")

	_, err := New(nil).Run(root, testManifest())
	se, ok := err.(*errors.StackgenError)
	if !ok || se.Code != "E030" {
		t.Fatalf("Run error = %v, want E030", err)
	}
}

func TestRun_EmptyFileContent(t *testing.T) {
	root := t.TempDir()

	m := Manifest{File("src/__init__.py", "")}
	report, err := New(nil).Run(root, m)
	if err != nil {
		t.Fatalf("Run error: %v", err)
	}
	if report.Count(StatusCreated) != 1 {
		t.Error("Empty file should still be created")
	}

	info, err := os.Stat(filepath.Join(root, "src", "__init__.py"))
	if err != nil {
		t.Fatalf("File not created: %v", err)
	}
	if info.Size() != 0 {
		t.Errorf("Size = %d, want 0", info.Size())
	}
}

func TestRun_Reporter(t *testing.T) {
	root := t.TempDir()
	rec := &recordingReporter{}

	if _, err := New(rec).Run(root, testManifest()); err != nil {
		t.Fatalf("Run error: %v", err)
	}

	if len(rec.results) != 3 {
		t.Fatalf("Reporter received %d results, want 3", len(rec.results))
	}

	// Results arrive in manifest order.
	wantPaths := []string{"backend", "frontend/components", "frontend/app.py"}
	for i, want := range wantPaths {
		if rec.results[i].Entry.Path != want {
			t.Errorf("results[%d].Path = %q, want %q", i, rec.results[i].Entry.Path, want)
		}
	}
}

func TestReport_Summary(t *testing.T) {
	tests := []struct {
		name   string
		report Report
		want   string
	}{
		{
			name: "all created",
			report: Report{Results: []Result{
				{Status: StatusCreated},
				{Status: StatusCreated},
			}},
			want: "2 created",
		},
		{
			name: "mixed",
			report: Report{Results: []Result{
				{Status: StatusCreated},
				{Status: StatusAlreadyExisted},
				{Status: StatusSkipped},
				{Status: StatusFailed},
			}},
			want: "1 created, 1 existed, 1 skipped, 1 failed",
		},
		{
			name:   "empty",
			report: Report{},
			want:   "0 created",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.report.Summary(); got != tt.want {
				t.Errorf("Summary() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestStatus_String(t *testing.T) {
	tests := []struct {
		status Status
		want   string
	}{
		{StatusCreated, "created"},
		{StatusAlreadyExisted, "exists"},
		{StatusSkipped, "skipped"},
		{StatusFailed, "failed"},
		{Status(42), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.status.String(); got != tt.want {
			t.Errorf("Status(%d).String() = %q, want %q", tt.status, got, tt.want)
		}
	}
}
