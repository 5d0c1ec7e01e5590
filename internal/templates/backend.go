package templates

const backendVersion = `__version__ = "0.1.0"
`

// backendMain is the FastAPI entry point. Routers live under src/backend/api
// and are wired in as the application grows.
const backendMain = `from collections.abc import AsyncGenerator
from contextlib import asynccontextmanager

from fastapi import FastAPI

from src.backend.__version__ import __version__
from src.backend.database import init_db


@asynccontextmanager
async def lifespan(app: FastAPI) -> AsyncGenerator[None, None]:
    """
    Lifespan manager for the application.
    Creates database tables on startup.
    """
    await init_db()
    yield


app = FastAPI(
    title="Backend API",
    description="API template generated by stackgen.",
    version=__version__,
    lifespan=lifespan,
)


@app.get("/", tags=["Root"])
def read_root() -> dict[str, str]:
    """
    Root endpoint to check if the API is running.
    """
    return {"message": "Welcome to the backend API!"}
`

const backendConfig = `from pathlib import Path

from pydantic_settings import BaseSettings, SettingsConfigDict

# Path to the directory containing this config.py file (src/backend)
CONFIG_DIR = Path(__file__).resolve().parent


class Settings(BaseSettings):
    """
    Application settings are loaded from the .env file in the same directory.
    """

    DATABASE_URL: str

    model_config = SettingsConfigDict(env_file=CONFIG_DIR / ".env")


# Create a single instance of the settings to be used throughout the application
settings = Settings()
`

const backendDatabase = `from collections.abc import AsyncGenerator

from sqlalchemy.ext.asyncio import (
    AsyncEngine,
    AsyncSession,
    async_sessionmaker,
    create_async_engine,
)
from sqlmodel import SQLModel

from src.backend.config import settings

engine: AsyncEngine = create_async_engine(
    settings.DATABASE_URL,
    echo=True,
)

async_session_maker = async_sessionmaker(
    bind=engine,
    class_=AsyncSession,
    expire_on_commit=False,
)


async def init_db(async_engine: AsyncEngine = engine) -> None:
    async with async_engine.begin() as conn:
        await conn.run_sync(SQLModel.metadata.create_all)


async def get_db() -> AsyncGenerator[AsyncSession, None]:
    async with async_session_maker() as session:
        yield session
`

const backendEnvExample = `# Copy to .env and adjust. SQLite needs the aiosqlite driver for async access.
DATABASE_URL=sqlite+aiosqlite:///./app.db
`

const testsConftest = `from typing import AsyncGenerator

import pytest_asyncio
from httpx import ASGITransport, AsyncClient

from src.backend.main import app


@pytest_asyncio.fixture(name="client")
async def client_fixture() -> AsyncGenerator[AsyncClient, None]:
    """
    Create an AsyncClient for the FastAPI app.
    """
    transport = ASGITransport(app=app)
    async with AsyncClient(transport=transport, base_url="http://test") as client:
        yield client
`
