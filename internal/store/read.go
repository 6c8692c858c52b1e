package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/roach88/spiceraw/internal/raw"
)

// Run is the persisted metadata for one decoded .raw file.
type Run struct {
	ID         string
	SourcePath string
	Mode       string
	Encoding   string
	Flags      string
	SimDate    time.Time
	ImportedAt time.Time
	Stats      raw.SimulationStats
	Variables  []raw.Variable
}

// GetRun returns one run with its variable declarations, or an error if the
// ID is unknown.
func (s *Store) GetRun(ctx context.Context, runID string) (*Run, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, source_path, mode, encoding, flags, sim_date, imported_at,
		       variable_count, point_count, step_count, step_size
		FROM runs
		WHERE id = ?
	`, runID)

	run, err := scanRun(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("run %q not found", runID)
		}
		return nil, fmt.Errorf("get run: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT name, class
		FROM variables
		WHERE run_id = ?
		ORDER BY idx ASC
	`, runID)
	if err != nil {
		return nil, fmt.Errorf("query variables: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var name, class string
		if err := rows.Scan(&name, &class); err != nil {
			return nil, fmt.Errorf("scan variable: %w", err)
		}
		run.Variables = append(run.Variables, raw.Variable{
			Name:  name,
			Class: parseClass(class),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate variables: %w", err)
	}

	return run, nil
}

// ListRuns returns all runs ordered by import time (UUIDv7 IDs sort
// chronologically). Variable declarations are not loaded.
//
// Returns an empty slice, not nil, when the store is empty.
func (s *Store) ListRuns(ctx context.Context) ([]Run, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, source_path, mode, encoding, flags, sim_date, imported_at,
		       variable_count, point_count, step_count, step_size
		FROM runs
		ORDER BY id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	runs := []Run{}
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		runs = append(runs, *run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate runs: %w", err)
	}

	return runs, nil
}

// ReadSeries returns one variable's samples for one step, in decode order.
// The reserved name "x" selects the independent series.
//
// Returns an empty slice when the (run, variable, step) triple has no
// samples.
func (s *Store) ReadSeries(ctx context.Context, runID, variable string, step int) ([]raw.Sample, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT re, im
		FROM samples
		WHERE run_id = ? AND variable = ? AND step = ?
		ORDER BY idx ASC
	`, runID, variable, step)
	if err != nil {
		return nil, fmt.Errorf("query samples: %w", err)
	}
	defer rows.Close()

	samples := []raw.Sample{}
	for rows.Next() {
		var re, im float64
		if err := rows.Scan(&re, &im); err != nil {
			return nil, fmt.Errorf("scan sample: %w", err)
		}
		samples = append(samples, raw.Sample{Real: re, Imaginary: im})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate samples: %w", err)
	}

	return samples, nil
}

// scanner abstracts sql.Row / sql.Rows for scanRun.
type scanner interface {
	Scan(dest ...any) error
}

func scanRun(row scanner) (*Run, error) {
	var run Run
	var simDate, importedAt string
	err := row.Scan(
		&run.ID,
		&run.SourcePath,
		&run.Mode,
		&run.Encoding,
		&run.Flags,
		&simDate,
		&importedAt,
		&run.Stats.Variables,
		&run.Stats.Points,
		&run.Stats.Steps,
		&run.Stats.StepSize,
	)
	if err != nil {
		return nil, err
	}

	if run.SimDate, err = time.Parse(time.RFC3339Nano, simDate); err != nil {
		return nil, fmt.Errorf("parse sim_date: %w", err)
	}
	if run.ImportedAt, err = time.Parse(time.RFC3339Nano, importedAt); err != nil {
		return nil, fmt.Errorf("parse imported_at: %w", err)
	}
	return &run, nil
}

func parseClass(class string) raw.VariableClass {
	switch class {
	case "voltage":
		return raw.Voltage
	case "current":
		return raw.Current
	default:
		return raw.Unknown
	}
}
