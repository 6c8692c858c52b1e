package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/roach88/spiceraw/internal/decoder"
)

// SaveRun persists one decoded simulation as a new run and returns the run
// ID. The run row, variable declarations, and every sample (including the
// independent "x" series) are written in a single transaction: a run is
// either fully stored or absent.
func (s *Store) SaveRun(ctx context.Context, sim *decoder.Simulation) (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("save run: %w", err)
	}
	runID := id.String()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("save run: %w", err)
	}
	defer tx.Rollback()

	stats := sim.Stats()
	_, err = tx.ExecContext(ctx, `
		INSERT INTO runs
		(id, source_path, mode, encoding, flags, sim_date, imported_at,
		 variable_count, point_count, step_count, step_size)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		runID,
		sim.Path(),
		sim.Mode().String(),
		sim.Encoding().String(),
		sim.Flags().String(),
		sim.Date().UTC().Format(time.RFC3339Nano),
		time.Now().UTC().Format(time.RFC3339Nano),
		stats.Variables,
		stats.Points,
		stats.Steps,
		stats.StepSize,
	)
	if err != nil {
		return "", fmt.Errorf("insert run: %w", err)
	}

	for i, v := range sim.Variables() {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO variables (run_id, idx, name, class)
			VALUES (?, ?, ?, ?)
		`, runID, i, v.Name, v.Class.String())
		if err != nil {
			return "", fmt.Errorf("insert variable %q: %w", v.Name, err)
		}
	}

	names := []string{"x"}
	for _, v := range sim.Variables() {
		names = append(names, v.Name)
	}
	for _, name := range names {
		if err := insertSeries(ctx, tx, runID, name, sim); err != nil {
			return "", err
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("save run: %w", err)
	}
	return runID, nil
}

// insertSeries writes every step of one variable's series.
func insertSeries(ctx context.Context, tx *sql.Tx, runID, name string, sim *decoder.Simulation) error {
	const stmt = `
		INSERT INTO samples (run_id, variable, step, idx, re, im)
		VALUES (?, ?, ?, ?, ?, ?)
	`
	for step := 0; ; step++ {
		samples, ok := sim.Get(name, step)
		if !ok {
			return nil
		}
		for i, sample := range samples {
			if _, err := tx.ExecContext(ctx, stmt, runID, name, step, i, sample.Real, sample.Imaginary); err != nil {
				return fmt.Errorf("insert samples for %q step %d: %w", name, step, err)
			}
		}
	}
}
