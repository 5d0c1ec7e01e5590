// Package scaffold materializes a declarative manifest of directories and
// files on disk.
//
// A Manifest is an ordered list of entries, each naming a relative path and a
// kind (directory or file). The Generator walks the manifest in a single pass
// and creates whatever is missing under a target root:
//
//   - Directories are created with all missing ancestors. A directory that
//     already exists is reported as AlreadyExisted, never an error.
//   - Files are written verbatim if absent. A file that already exists is
//     left untouched and reported as Skipped, so developer edits survive
//     re-runs.
//   - A path occupied by the wrong kind (a file where a directory is
//     declared, or vice versa) is reported as Failed for that entry; the run
//     continues with the remaining entries.
//
// Running the generator twice against the same root converges: the second
// run changes nothing and reports every entry as AlreadyExisted or Skipped.
//
// Progress is delivered through the Reporter interface so the CLI can print
// colored per-entry lines while tests record them silently.
package scaffold
