package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/spiceraw/internal/raw"
	"github.com/roach88/spiceraw/internal/store"
	"github.com/roach88/spiceraw/internal/testutil"
)

func steppedRawFile(t *testing.T) string {
	t.Helper()
	b := &testutil.Builder{
		Flags: "stepped",
		Variables: []testutil.VariableDecl{
			{Name: "V(out)", Type: "voltage"},
			{Name: "I(R1)", Type: "device_current"},
		},
	}
	x := testutil.Reals(0, 1, 2, 0, 1, 2)
	vout := testutil.Reals(10, 20, 30, 40, 50, 60)
	ir1 := testutil.Reals(-1, -2, -3, -4, -5, -6)
	return testutil.WriteRawFile(t, b.Bytes(x, [][]raw.Sample{vout, ir1}, raw.Float64, raw.Float32))
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestInfoCommand_Text(t *testing.T) {
	path := steppedRawFile(t)

	out, err := execute(t, "info", path)
	require.NoError(t, err)

	assert.Contains(t, out, "Mode:      transient")
	assert.Contains(t, out, "Points:    6")
	assert.Contains(t, out, "Steps:     2 (x3 points)")
}

func TestInfoCommand_JSON(t *testing.T) {
	path := steppedRawFile(t)

	out, err := execute(t, "--format", "json", "info", path)
	require.NoError(t, err)

	var result InfoResult
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, "transient", result.Mode)
	assert.Equal(t, 6, result.Points)
	assert.Equal(t, 2, result.Steps)
	assert.Equal(t, 3, result.StepSize)
}

func TestInfoCommand_BadFile(t *testing.T) {
	_, err := execute(t, "info", filepath.Join(t.TempDir(), "absent.raw"))
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestVarsCommand(t *testing.T) {
	path := steppedRawFile(t)

	out, err := execute(t, "vars", path)
	require.NoError(t, err)

	assert.Contains(t, out, "1\tV(out)\tvoltage")
	assert.Contains(t, out, "2\tI(R1)\tcurrent")
}

func TestExportCommand(t *testing.T) {
	path := steppedRawFile(t)
	db := filepath.Join(t.TempDir(), "waves.db")

	out, err := execute(t, "export", "--db", db, path)
	require.NoError(t, err)
	assert.Contains(t, out, "Exported run")

	s, err := store.Open(db)
	require.NoError(t, err)
	defer s.Close()

	runs, err := s.ListRuns(context.Background())
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, 6, runs[0].Stats.Points)
}

func TestCheckCommand(t *testing.T) {
	path := steppedRawFile(t)

	good := filepath.Join(t.TempDir(), "good.cue")
	require.NoError(t, os.WriteFile(good, []byte("points: 6\nsteps: 2\n"), 0o644))

	out, err := execute(t, "check", "--expect", good, path)
	require.NoError(t, err)
	assert.Contains(t, out, "PASS")

	bad := filepath.Join(t.TempDir(), "bad.cue")
	require.NoError(t, os.WriteFile(bad, []byte("points: 7\n"), 0o644))

	out, err = execute(t, "check", "--expect", bad, path)
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, out, "FAIL")
}
