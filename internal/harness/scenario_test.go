package harness

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadScenario(t *testing.T) {
	s, err := LoadScenario(filepath.Join("testdata", "scenarios", "two-step-sweep.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "two-step-sweep", s.Name)
	assert.Equal(t, "stepped", s.Flags)
	require.Len(t, s.Variables, 2)
	assert.Equal(t, "V(out)", s.Variables[0].Name)
	assert.Equal(t, "I(R1)", s.Variables[1].Name)
	require.Len(t, s.X, 2)
	assert.Equal(t, []float64{0, 1, 2}, s.X[0])
	assert.Equal(t, []float64{40, 50, 60}, s.Data["V(out)"][1])
	assert.Equal(t, 2, s.Expect.Steps)
	assert.Equal(t, 3, s.Expect.StepSize)
}

func TestLoadScenario_Missing(t *testing.T) {
	_, err := LoadScenario(filepath.Join("testdata", "nope.yaml"))
	require.Error(t, err)
}

func TestLoadScenario_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("name: [unclosed"), 0o644))

	_, err := LoadScenario(path)
	require.Error(t, err)
}

func TestLoadScenario_NoName(t *testing.T) {
	path := filepath.Join(t.TempDir(), "anon.yaml")
	require.NoError(t, os.WriteFile(path, []byte("description: nameless"), 0o644))

	_, err := LoadScenario(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no name")
}

func TestFlatten(t *testing.T) {
	assert.Equal(t, []float64{0, 1, 2, 0, 1}, flatten([][]float64{{0, 1, 2}, {0, 1}}))
	assert.Nil(t, flatten(nil))
}
