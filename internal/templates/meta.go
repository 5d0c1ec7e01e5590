package templates

const projectReadme = `# Dash + FastAPI Workspace

Project skeleton generated by stackgen: a Dash Mantine frontend and a
FastAPI + SQLModel backend template.

## Layout

` + "```" + `
frontend/app.py                  # Standalone Dash Mantine demo entry point
src/frontend/pages/             # Page layouts (home, dashboard)
src/backend/                    # FastAPI application
    main.py                     # App entry point with lifespan setup
    config.py                   # Settings loaded from src/backend/.env
    database.py                 # Async SQLModel engine and session helpers
    api/                        # API routers
    models/                     # SQLModel table models
    services/                   # Business logic
tests/backend/                  # Pytest suite with an httpx test client
` + "```" + `

## Getting started

` + "```" + `bash
python -m venv .venv && source .venv/bin/activate
pip install -r requirements.txt

cp src/backend/.env.example src/backend/.env

# Run the backend
uvicorn src.backend.main:app --reload

# Run the frontend
python frontend/app.py
` + "```" + `

Re-running stackgen in this directory is safe: existing files are never
overwritten.
`

const requirements = `dash
dash-mantine-components
fastapi
uvicorn[standard]
sqlmodel
aiosqlite
pydantic-settings
httpx
pytest
pytest-asyncio
`

const gitignore = `__pycache__/
*.py[cod]
.venv/
*.db
.env
.pytest_cache/
`
