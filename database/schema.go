package database

import "database/sql"

// schemaSQL schéma du catalogue.
// Les contraintes CHECK reflètent les invariants des value objects.
const schemaSQL = `
CREATE TABLE IF NOT EXISTS categories (
	id            TEXT PRIMARY KEY,
	name          TEXT NOT NULL,
	description   TEXT NOT NULL DEFAULT '',
	parent_id     TEXT REFERENCES categories(id),
	display_order INT NOT NULL DEFAULT 0 CHECK (display_order >= 0),
	active        BOOLEAN NOT NULL DEFAULT TRUE,
	created_at    TIMESTAMPTZ NOT NULL,
	updated_at    TIMESTAMPTZ NOT NULL
);

CREATE TABLE IF NOT EXISTS products (
	id             TEXT PRIMARY KEY,
	name           TEXT NOT NULL,
	description    TEXT NOT NULL DEFAULT '',
	price          BIGINT NOT NULL CHECK (price >= 0),
	stock_quantity INT NOT NULL CHECK (stock_quantity >= 0),
	category_id    TEXT NOT NULL REFERENCES categories(id),
	status         TEXT NOT NULL,
	created_at     TIMESTAMPTZ NOT NULL,
	updated_at     TIMESTAMPTZ NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_products_category ON products(category_id);
CREATE INDEX IF NOT EXISTS idx_products_status ON products(status);
CREATE INDEX IF NOT EXISTS idx_categories_parent ON categories(parent_id);
`

// CreateSchema crée les tables et index du catalogue
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schemaSQL)
	return err
}
