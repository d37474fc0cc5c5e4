package sqlite

import "database/sql"

// migrations contains the SQL statements to set up the database schema.
// These run on startup to ensure tables exist.
// World tables are append-only reference data written by cmd/seed; the *_fts
// virtual tables index their names for full-text prefix search, kept in sync
// by the AFTER INSERT triggers.
const schema = `
CREATE TABLE IF NOT EXISTS users (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    email TEXT NOT NULL UNIQUE,
    is_valid INTEGER NOT NULL DEFAULT 0,
    created_at INTEGER NOT NULL,
    updated_at INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS auth (
    user_id TEXT NOT NULL,
    password TEXT NOT NULL,
    created_at INTEGER NOT NULL,
    PRIMARY KEY (user_id, password),
    FOREIGN KEY (user_id) REFERENCES users(id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS plans (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    config TEXT NOT NULL,
    public_visibility INTEGER NOT NULL DEFAULT 0,
    public_role TEXT NOT NULL DEFAULT 'viewer',
    created_at INTEGER NOT NULL,
    updated_at INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS plan_users (
    plan_id TEXT NOT NULL,
    user_id TEXT NOT NULL,
    role TEXT NOT NULL,
    created_at INTEGER NOT NULL,
    PRIMARY KEY (plan_id, user_id),
    FOREIGN KEY (plan_id) REFERENCES plans(id) ON DELETE CASCADE,
    FOREIGN KEY (user_id) REFERENCES users(id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_plan_users_plan_id ON plan_users(plan_id);
CREATE INDEX IF NOT EXISTS idx_plan_users_user_id ON plan_users(user_id);
CREATE INDEX IF NOT EXISTS idx_auth_user_id ON auth(user_id);

CREATE TABLE IF NOT EXISTS regions (
    id INTEGER PRIMARY KEY,
    name TEXT NOT NULL,
    translations TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS subregions (
    id INTEGER PRIMARY KEY,
    name TEXT NOT NULL,
    region_id INTEGER NOT NULL,
    translations TEXT NOT NULL,
    FOREIGN KEY (region_id) REFERENCES regions(id)
);

CREATE TABLE IF NOT EXISTS countries (
    id INTEGER PRIMARY KEY,
    name TEXT NOT NULL,
    iso3 TEXT,
    iso2 TEXT,
    capital TEXT,
    latitude REAL,
    longitude REAL,
    emoji TEXT,
    region_id INTEGER,
    subregion_id INTEGER,
    translations TEXT NOT NULL,
    FOREIGN KEY (region_id) REFERENCES regions(id),
    FOREIGN KEY (subregion_id) REFERENCES subregions(id)
);

CREATE TABLE IF NOT EXISTS states (
    id INTEGER PRIMARY KEY,
    name TEXT NOT NULL,
    latitude REAL,
    longitude REAL,
    country_id INTEGER NOT NULL,
    FOREIGN KEY (country_id) REFERENCES countries(id)
);

CREATE TABLE IF NOT EXISTS cities (
    id INTEGER PRIMARY KEY,
    name TEXT NOT NULL,
    latitude REAL,
    longitude REAL,
    state_id INTEGER NOT NULL,
    country_id INTEGER NOT NULL,
    FOREIGN KEY (state_id) REFERENCES states(id),
    FOREIGN KEY (country_id) REFERENCES countries(id)
);

CREATE INDEX IF NOT EXISTS idx_subregions_region_id ON subregions(region_id);
CREATE INDEX IF NOT EXISTS idx_countries_region_id ON countries(region_id);
CREATE INDEX IF NOT EXISTS idx_countries_subregion_id ON countries(subregion_id);
CREATE INDEX IF NOT EXISTS idx_states_country_id ON states(country_id);
CREATE INDEX IF NOT EXISTS idx_cities_state_id ON cities(state_id);
CREATE INDEX IF NOT EXISTS idx_cities_country_id ON cities(country_id);

CREATE VIRTUAL TABLE IF NOT EXISTS regions_fts USING fts5(
    name, translations, content='regions', content_rowid='id'
);
CREATE TRIGGER IF NOT EXISTS regions_fts_ai AFTER INSERT ON regions BEGIN
    INSERT INTO regions_fts(rowid, name, translations)
    VALUES (new.id, new.name, new.translations);
END;

CREATE VIRTUAL TABLE IF NOT EXISTS subregions_fts USING fts5(
    name, translations, content='subregions', content_rowid='id'
);
CREATE TRIGGER IF NOT EXISTS subregions_fts_ai AFTER INSERT ON subregions BEGIN
    INSERT INTO subregions_fts(rowid, name, translations)
    VALUES (new.id, new.name, new.translations);
END;

CREATE VIRTUAL TABLE IF NOT EXISTS countries_fts USING fts5(
    name, translations, content='countries', content_rowid='id'
);
CREATE TRIGGER IF NOT EXISTS countries_fts_ai AFTER INSERT ON countries BEGIN
    INSERT INTO countries_fts(rowid, name, translations)
    VALUES (new.id, new.name, new.translations);
END;

CREATE VIRTUAL TABLE IF NOT EXISTS states_fts USING fts5(
    name, content='states', content_rowid='id'
);
CREATE TRIGGER IF NOT EXISTS states_fts_ai AFTER INSERT ON states BEGIN
    INSERT INTO states_fts(rowid, name) VALUES (new.id, new.name);
END;

CREATE VIRTUAL TABLE IF NOT EXISTS cities_fts USING fts5(
    name, content='cities', content_rowid='id'
);
CREATE TRIGGER IF NOT EXISTS cities_fts_ai AFTER INSERT ON cities BEGIN
    INSERT INTO cities_fts(rowid, name) VALUES (new.id, new.name);
END;
`

// runMigrations executes the schema setup.
func runMigrations(db *sql.DB) error {
	_, err := db.Exec(schema)
	return err
}
