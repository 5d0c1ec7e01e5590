// Package errors provides structured, actionable error messages for stackgen.
//
// The errors package implements an error system that:
//   - Names the filesystem path an operation failed on
//   - Explains what went wrong in plain language
//   - Suggests how to fix issues
//   - Links to documentation for deeper understanding
//
// # Error Categories
//
// Errors are organized into categories:
//   - manifest: Problems with the compiled-in entry table (bad paths, duplicates)
//   - io: Filesystem errors (permission denied, disk full)
//   - conflict: An existing path has the wrong kind (file vs directory)
//   - cli: Command-line usage errors (bad root, unknown format)
//
// # Error Codes
//
// Each error has a unique code (e.g., "E010") that maps to:
//   - A short message describing the error
//   - A detailed explanation
//   - A documentation URL
//
// # Usage
//
//	err := errors.New("E011").
//	    WithPath("src/backend/main.py").
//	    WithSuggestion("Check that the target directory is writable")
//
//	fmt.Println(err.Format())
//	// Output:
//	// ERROR E011: Cannot write file
//	//
//	//   src/backend/main.py
//	//
//	//   Hint: Check that the target directory is writable
//	//
//	//   Learn more: https://stackgen.dev/docs/errors/E011
package errors
