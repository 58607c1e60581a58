//go:build cgo
// +build cgo

package main

import (
	"strings"

	"github.com/carbocation/pfx"
	"github.com/jmoiron/sqlx"

	_ "github.com/mattn/go-sqlite3"
)

const schema = `CREATE TABLE IF NOT EXISTS cosegregation (
	id TEXT NOT NULL,
	loci INTEGER NOT NULL,
	total REAL NOT NULL,
	cosegregation REAL,
	expected REAL,
	d REAL,
	dprime REAL,
	r_squared REAL,
	chisq_p REAL,
	fisher_p REAL
)`

const insert = `INSERT INTO cosegregation (id, loci, total, cosegregation, expected, d, dprime, r_squared, chisq_p, fisher_p)
VALUES (:id, :loci, :total, :cosegregation, :expected, :d, :dprime, :r_squared, :chisq_p, :fisher_p)`

type sqliteSink struct {
	db *sqlx.DB
}

func OpenSink(path string) (Sink, error) {
	// URI filenames have to begin with 'file:'; see
	// https://www.sqlite.org/c3ref/open.html
	if !strings.HasPrefix(path, "file:") {
		path = "file:" + path
	}

	db, err := sqlx.Connect("sqlite3", path)
	if err != nil {
		return nil, pfx.Err(err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, pfx.Err(err)
	}

	return &sqliteSink{db: db}, nil
}

// Insert writes all records in one transaction.
func (s *sqliteSink) Insert(records []Record) error {
	tx, err := s.db.Beginx()
	if err != nil {
		return pfx.Err(err)
	}

	for _, rec := range records {
		if _, err := tx.NamedExec(insert, rec); err != nil {
			tx.Rollback()
			return pfx.Err(err)
		}
	}

	if err := tx.Commit(); err != nil {
		return pfx.Err(err)
	}

	return nil
}

func (s *sqliteSink) Close() error {
	return s.db.Close()
}
