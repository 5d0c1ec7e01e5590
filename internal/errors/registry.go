package errors

// ErrorTemplate defines a registered error type.
type ErrorTemplate struct {
	Category Category
	Message  string
	Detail   string
	DocURL   string
}

// registry maps error codes to their templates.
var registry = map[string]ErrorTemplate{
	// ============================================
	// Manifest Errors (E001-E009)
	// ============================================

	"E001": {
		Category: CategoryManifest,
		Message:  "Invalid manifest path",
		Detail:   "Manifest entries must use relative, slash-separated paths that stay inside the target root.",
		DocURL:   "https://stackgen.dev/docs/errors/E001",
	},
	"E002": {
		Category: CategoryManifest,
		Message:  "Duplicate manifest entry",
		Detail:   "Two manifest entries resolve to the same path. Every path may be declared at most once.",
		DocURL:   "https://stackgen.dev/docs/errors/E002",
	},
	"E003": {
		Category: CategoryManifest,
		Message:  "Empty manifest path",
		Detail:   "A manifest entry has an empty path. Every entry needs a relative path.",
		DocURL:   "https://stackgen.dev/docs/errors/E003",
	},

	// ============================================
	// Filesystem Errors (E010-E019)
	// ============================================

	"E010": {
		Category: CategoryIO,
		Message:  "Cannot create directory",
		Detail:   "The directory could not be created. This is usually a permission or disk-space problem.",
		DocURL:   "https://stackgen.dev/docs/errors/E010",
	},
	"E011": {
		Category: CategoryIO,
		Message:  "Cannot write file",
		Detail:   "The file could not be written. This is usually a permission or disk-space problem.",
		DocURL:   "https://stackgen.dev/docs/errors/E011",
	},
	"E012": {
		Category: CategoryIO,
		Message:  "Cannot inspect path",
		Detail:   "The path exists but could not be examined. Check permissions on the parent directory.",
		DocURL:   "https://stackgen.dev/docs/errors/E012",
	},

	// ============================================
	// Conflict Errors (E020-E029)
	// ============================================

	"E020": {
		Category: CategoryConflict,
		Message:  "File exists where a directory is expected",
		Detail:   "The manifest declares a directory at this path, but a regular file is already there.",
		DocURL:   "https://stackgen.dev/docs/errors/E020",
	},
	"E021": {
		Category: CategoryConflict,
		Message:  "Directory exists where a file is expected",
		Detail:   "The manifest declares a file at this path, but a directory is already there.",
		DocURL:   "https://stackgen.dev/docs/errors/E021",
	},

	// ============================================
	// CLI Errors (E030-E039)
	// ============================================

	"E030": {
		Category: CategoryCLI,
		Message:  "Target root is not usable",
		Detail:   "The target root directory does not exist or is not writable.",
		DocURL:   "https://stackgen.dev/docs/errors/E030",
	},
	"E031": {
		Category: CategoryCLI,
		Message:  "Scaffold completed with failures",
		Detail:   "One or more manifest entries could not be materialized. See the per-entry output above.",
		DocURL:   "https://stackgen.dev/docs/errors/E031",
	},
	"E032": {
		Category: CategoryCLI,
		Message:  "Unknown output format",
		Detail:   "The requested plan output format is not supported.",
		DocURL:   "https://stackgen.dev/docs/errors/E032",
	},
}

// GetAllCodes returns all registered error codes.
func GetAllCodes() []string {
	codes := make([]string, 0, len(registry))
	for code := range registry {
		codes = append(codes, code)
	}
	return codes
}

// GetTemplate returns the template for an error code.
func GetTemplate(code string) (ErrorTemplate, bool) {
	t, ok := registry[code]
	return t, ok
}

// Register adds a new error template to the registry.
func Register(code string, template ErrorTemplate) {
	registry[code] = template
}
