package db

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

const Schema = `
CREATE TABLE IF NOT EXISTS courses (
	subject_area_code TEXT NOT NULL,
	catalog_number INTEGER NOT NULL,
	title TEXT NOT NULL,
	description TEXT NOT NULL,
	offered TEXT NOT NULL,
	class_level TEXT NOT NULL,
	complete BOOLEAN NOT NULL,
	PRIMARY KEY (subject_area_code, catalog_number)
);

CREATE TABLE IF NOT EXISTS requisites (
	subject_area_code TEXT NOT NULL,
	catalog_number INTEGER NOT NULL,
	kind TEXT NOT NULL,
	group_index INTEGER NOT NULL,
	member_index INTEGER NOT NULL,
	requisite_subject_area_code TEXT NOT NULL,
	requisite_catalog_number INTEGER NOT NULL,
	PRIMARY KEY (subject_area_code, catalog_number, kind, group_index, member_index),
	FOREIGN KEY (subject_area_code, catalog_number) REFERENCES courses ON DELETE CASCADE
);
`

type Database struct {
	Pool *pgxpool.Pool
}

func Open(ctx context.Context, connectionString string) (Database, error) {
	pool, err := pgxpool.New(ctx, connectionString)
	if err != nil {
		return Database{}, err
	}
	return Database{Pool: pool}, nil
}

func (d *Database) Close() {
	d.Pool.Close()
}

func (d *Database) Migrate(ctx context.Context) error {
	_, err := d.Pool.Exec(ctx, Schema)
	return err
}
