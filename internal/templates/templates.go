package templates

import (
	"github.com/stackgen-dev/stackgen/internal/scaffold"
)

// Project returns the manifest for the Dash + FastAPI workspace skeleton.
//
// Entries are ordered in the three phases the CLI announces: top-level
// directories, sub-trees, then files. The generator does not depend on this
// ordering (file ancestors are auto-created); it exists for readable
// progress output.
func Project() scaffold.Manifest {
	return scaffold.Manifest{
		// Top-level directories
		scaffold.Dir("frontend"),
		scaffold.Dir("src"),
		scaffold.Dir("tests"),

		// Sub-trees
		scaffold.Dir("src/frontend"),
		scaffold.Dir("src/frontend/pages"),
		scaffold.Dir("src/frontend/pages/home"),
		scaffold.Dir("src/frontend/pages/dashboard"),
		scaffold.Dir("src/backend"),
		scaffold.Dir("src/backend/api"),
		scaffold.Dir("src/backend/models"),
		scaffold.Dir("src/backend/services"),
		scaffold.Dir("tests/backend"),

		// Project meta files
		scaffold.File("README.md", projectReadme),
		scaffold.File("requirements.txt", requirements),
		scaffold.File(".gitignore", gitignore),

		// Frontend boilerplate
		scaffold.File("frontend/app.py", frontendApp),
		scaffold.File("src/frontend/__init__.py", ""),
		scaffold.File("src/frontend/pages/__init__.py", ""),
		scaffold.File("src/frontend/pages/home/__init__.py", ""),
		scaffold.File("src/frontend/pages/home/layout.py", pageHomeLayout),
		scaffold.File("src/frontend/pages/dashboard/__init__.py", ""),
		scaffold.File("src/frontend/pages/dashboard/layout.py", pageDashboardLayout),

		// Backend boilerplate
		scaffold.File("src/__init__.py", ""),
		scaffold.File("src/backend/__init__.py", ""),
		scaffold.File("src/backend/__version__.py", backendVersion),
		scaffold.File("src/backend/main.py", backendMain),
		scaffold.File("src/backend/config.py", backendConfig),
		scaffold.File("src/backend/database.py", backendDatabase),
		scaffold.File("src/backend/.env.example", backendEnvExample),
		scaffold.File("src/backend/api/__init__.py", ""),
		scaffold.File("src/backend/models/__init__.py", ""),
		scaffold.File("src/backend/services/__init__.py", ""),

		// Test skeleton
		scaffold.File("tests/__init__.py", ""),
		scaffold.File("tests/backend/__init__.py", ""),
		scaffold.File("tests/backend/conftest.py", testsConftest),
	}
}
