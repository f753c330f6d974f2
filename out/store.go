// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/WenchenLie/MyOpenSees/mdl/uniax"
	"github.com/cpmech/gosl/chk"

	_ "modernc.org/sqlite" // pure go sqlite driver
)

// Run describes one recorded history
type Run struct {
	Name     string    // unique name of run
	Material string    // name of material
	Model    string    // name of model
	Created  time.Time // creation time
	Npts     int       // number of points
	Energy   float64   // dissipated energy
}

// Store records histories in a SQLite database
type Store struct {
	db   *sql.DB
	path string
}

var storeSchema = []string{`
CREATE TABLE IF NOT EXISTS runs (
	name     TEXT PRIMARY KEY,
	material TEXT NOT NULL,
	model    TEXT NOT NULL,
	created  INTEGER NOT NULL,
	npts     INTEGER NOT NULL,
	energy   REAL NOT NULL
)`, `
CREATE TABLE IF NOT EXISTS points (
	run  TEXT NOT NULL REFERENCES runs(name) ON DELETE CASCADE,
	idx  INTEGER NOT NULL,
	eps  REAL NOT NULL,
	sig  REAL NOT NULL,
	tan  REAL NOT NULL,
	PRIMARY KEY (run, idx)
)`}

// OpenStore opens (or creates) a store at path
//  path -- use ":memory:" for a temporary store
func OpenStore(path string) (*Store, error) {
	if path == "" {
		path = "hystdrv.db"
	}
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
			return nil, fmt.Errorf("create dirs: %w", err)
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if path == ":memory:" {
		db.SetMaxOpenConns(1)
	}
	for _, stmt := range storeSchema {
		if _, err := db.Exec(stmt); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("create tables: %w", err)
		}
	}
	return &Store{db: db, path: path}, nil
}

// Path returns the location of the database
func (o *Store) Path() string { return o.path }

// Close closes the database
func (o *Store) Close() error {
	return o.db.Close()
}

// SaveRun saves a history, replacing a previous run with the same name
func (o *Store) SaveRun(ctx context.Context, run *Run, res []*uniax.Record) (retErr error) {
	if run == nil || run.Name == "" {
		return chk.Err("out: run must have a name")
	}
	run.Npts = len(res)
	run.Energy = Energy(res)
	if run.Created.IsZero() {
		run.Created = time.Now()
	}
	tx, err := o.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer func() {
		if retErr != nil {
			_ = tx.Rollback()
		}
	}()
	if _, err = tx.ExecContext(ctx, `DELETE FROM points WHERE run = ?`, run.Name); err != nil {
		return fmt.Errorf("delete points: %w", err)
	}
	if _, err = tx.ExecContext(ctx, `DELETE FROM runs WHERE name = ?`, run.Name); err != nil {
		return fmt.Errorf("delete run: %w", err)
	}
	if _, err = tx.ExecContext(ctx, `INSERT INTO runs (name, material, model, created, npts, energy) VALUES (?, ?, ?, ?, ?, ?)`,
		run.Name, run.Material, run.Model, run.Created.UnixNano(), run.Npts, run.Energy); err != nil {
		return fmt.Errorf("insert run: %w", err)
	}
	stmt, err := tx.PrepareContext(ctx, `INSERT INTO points (run, idx, eps, sig, tan) VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare points: %w", err)
	}
	defer func() { _ = stmt.Close() }()
	for i, r := range res {
		if _, err = stmt.ExecContext(ctx, run.Name, i, r.Eps, r.Sig, r.D); err != nil {
			return fmt.Errorf("insert point %d: %w", i, err)
		}
	}
	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

// LoadRun loads a history
func (o *Store) LoadRun(ctx context.Context, name string) (run *Run, res []*uniax.Record, err error) {
	run = &Run{Name: name}
	var created int64
	err = o.db.QueryRowContext(ctx, `SELECT material, model, created, npts, energy FROM runs WHERE name = ?`, name).
		Scan(&run.Material, &run.Model, &created, &run.Npts, &run.Energy)
	if err == sql.ErrNoRows {
		return nil, nil, chk.Err("out: cannot find run %q", name)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("select run: %w", err)
	}
	run.Created = time.Unix(0, created)
	rows, err := o.db.QueryContext(ctx, `SELECT eps, sig, tan FROM points WHERE run = ? ORDER BY idx`, name)
	if err != nil {
		return nil, nil, fmt.Errorf("select points: %w", err)
	}
	defer func() { _ = rows.Close() }()
	res = make([]*uniax.Record, 0, run.Npts)
	for rows.Next() {
		r := new(uniax.Record)
		if err = rows.Scan(&r.Eps, &r.Sig, &r.D); err != nil {
			return nil, nil, fmt.Errorf("scan: %w", err)
		}
		res = append(res, r)
	}
	if err = rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("rows: %w", err)
	}
	return
}

// ListRuns lists all runs, sorted by name
func (o *Store) ListRuns(ctx context.Context) (runs []*Run, err error) {
	rows, err := o.db.QueryContext(ctx, `SELECT name, material, model, created, npts, energy FROM runs ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("select runs: %w", err)
	}
	defer func() { _ = rows.Close() }()
	for rows.Next() {
		var created int64
		run := new(Run)
		if err = rows.Scan(&run.Name, &run.Material, &run.Model, &created, &run.Npts, &run.Energy); err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		run.Created = time.Unix(0, created)
		runs = append(runs, run)
	}
	return runs, rows.Err()
}
