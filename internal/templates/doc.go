// Package templates provides the fixed project skeleton stackgen materializes.
//
// The skeleton is a Dash + dash-mantine-components frontend and a
// FastAPI + SQLModel backend template, expressed as a declarative
// scaffold.Manifest: directories first (top-level roots, then sub-trees),
// then the boilerplate files.
//
// The generator treats every file's content as an opaque text blob; nothing
// in this package is interpreted at scaffold time.
//
// # Usage
//
//	report, err := scaffold.New(reporter).Run(root, templates.Project())
package templates
