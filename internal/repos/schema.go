package repos

import (
	"context"

	"github.com/jmoiron/sqlx"
)

var sqliteSchema = []string{
	`PRAGMA foreign_keys = ON`,
	`CREATE TABLE IF NOT EXISTS tb_user(
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  name TEXT NOT NULL,
  email TEXT NOT NULL,
  phone TEXT NOT NULL DEFAULT '',
  password_hash TEXT NOT NULL DEFAULT ''
)`,
	`CREATE TABLE IF NOT EXISTS tb_category(
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  name TEXT NOT NULL
)`,
	`CREATE TABLE IF NOT EXISTS tb_product(
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  name TEXT NOT NULL,
  description TEXT NOT NULL DEFAULT '',
  price NUMERIC NOT NULL CHECK (price >= 0),
  img_url TEXT NOT NULL DEFAULT ''
)`,
	`CREATE TABLE IF NOT EXISTS tb_product_category(
  product_id INTEGER NOT NULL REFERENCES tb_product(id) ON DELETE CASCADE,
  category_id INTEGER NOT NULL REFERENCES tb_category(id) ON DELETE RESTRICT,
  PRIMARY KEY (product_id, category_id)
)`,
	`CREATE INDEX IF NOT EXISTS idx_product_category_category ON tb_product_category(category_id)`,
	`CREATE TABLE IF NOT EXISTS tb_order(
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  moment TEXT NOT NULL,
  order_status INTEGER NOT NULL,
  client_id INTEGER NOT NULL REFERENCES tb_user(id) ON DELETE RESTRICT
)`,
	`CREATE INDEX IF NOT EXISTS idx_order_client ON tb_order(client_id)`,
	`CREATE TABLE IF NOT EXISTS tb_order_item(
  order_id INTEGER NOT NULL REFERENCES tb_order(id) ON DELETE CASCADE,
  product_id INTEGER NOT NULL REFERENCES tb_product(id) ON DELETE RESTRICT,
  quantity INTEGER NOT NULL CHECK (quantity >= 1),
  price NUMERIC NOT NULL,
  PRIMARY KEY (order_id, product_id)
)`,
	`CREATE INDEX IF NOT EXISTS idx_order_item_product ON tb_order_item(product_id)`,
	`CREATE TABLE IF NOT EXISTS tb_payment(
  order_id INTEGER PRIMARY KEY REFERENCES tb_order(id) ON DELETE CASCADE,
  moment TEXT NOT NULL
)`,
}

var postgresSchema = []string{
	`CREATE TABLE IF NOT EXISTS tb_user(
  id BIGSERIAL PRIMARY KEY,
  name TEXT NOT NULL,
  email TEXT NOT NULL,
  phone TEXT NOT NULL DEFAULT '',
  password_hash TEXT NOT NULL DEFAULT ''
)`,
	`CREATE TABLE IF NOT EXISTS tb_category(
  id BIGSERIAL PRIMARY KEY,
  name TEXT NOT NULL
)`,
	`CREATE TABLE IF NOT EXISTS tb_product(
  id BIGSERIAL PRIMARY KEY,
  name TEXT NOT NULL,
  description TEXT NOT NULL DEFAULT '',
  price NUMERIC(14,2) NOT NULL CHECK (price >= 0),
  img_url TEXT NOT NULL DEFAULT ''
)`,
	`CREATE TABLE IF NOT EXISTS tb_product_category(
  product_id BIGINT NOT NULL REFERENCES tb_product(id) ON DELETE CASCADE,
  category_id BIGINT NOT NULL REFERENCES tb_category(id) ON DELETE RESTRICT,
  PRIMARY KEY (product_id, category_id)
)`,
	`CREATE INDEX IF NOT EXISTS idx_product_category_category ON tb_product_category(category_id)`,
	`CREATE TABLE IF NOT EXISTS tb_order(
  id BIGSERIAL PRIMARY KEY,
  moment TEXT NOT NULL,
  order_status INTEGER NOT NULL,
  client_id BIGINT NOT NULL REFERENCES tb_user(id) ON DELETE RESTRICT
)`,
	`CREATE INDEX IF NOT EXISTS idx_order_client ON tb_order(client_id)`,
	`CREATE TABLE IF NOT EXISTS tb_order_item(
  order_id BIGINT NOT NULL REFERENCES tb_order(id) ON DELETE CASCADE,
  product_id BIGINT NOT NULL REFERENCES tb_product(id) ON DELETE RESTRICT,
  quantity INTEGER NOT NULL CHECK (quantity >= 1),
  price NUMERIC(14,2) NOT NULL,
  PRIMARY KEY (order_id, product_id)
)`,
	`CREATE INDEX IF NOT EXISTS idx_order_item_product ON tb_order_item(product_id)`,
	`CREATE TABLE IF NOT EXISTS tb_payment(
  order_id BIGINT PRIMARY KEY REFERENCES tb_order(id) ON DELETE CASCADE,
  moment TEXT NOT NULL
)`,
}

func schemaFor(driver string) []string {
	if driver == DriverPostgres {
		return postgresSchema
	}
	return sqliteSchema
}

// ApplySchema runs the idempotent schema statements for the db's dialect in order.
func ApplySchema(ctx context.Context, db *sqlx.DB) error {
	for _, stmt := range schemaFor(db.DriverName()) {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return wrap(err, "schema", "")
		}
	}
	return nil
}
