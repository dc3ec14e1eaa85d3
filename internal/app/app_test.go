package app

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/evalgridgo/internal/hclgrid"
)

// writeGrid writes content to a fresh temp grid file and returns its path.
func writeGrid(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "grid.hcl")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

// runGrid builds an app around the given grid and runs it, returning the
// captured output and the run error.
func runGrid(t *testing.T, content string, mutate func(*Config)) (string, error) {
	t.Helper()

	cfg, err := NewConfig(Config{
		GridPath:    writeGrid(t, content),
		LogFormat:   "text",
		LogLevel:    "error",
		WorkerCount: 2,
	})
	require.NoError(t, err)
	if mutate != nil {
		mutate(cfg)
	}

	var out bytes.Buffer
	a := NewApp(&out, cfg, hclgrid.NewLoader())
	runErr := a.Run(context.Background())
	return out.String(), runErr
}

func TestAppRun_Success(t *testing.T) {
	grid := `
		node "value" "left" {
		  arguments { text = "hello" }
		}
		node "value" "right" {
		  arguments { text = "world" }
		}
		node "concat" "joined" {
		  depends_on = ["left", "right"]
		}
	`

	out, err := runGrid(t, grid, nil)

	assert.NoError(t, err)
	assert.NotContains(t, out, "Evaluation failed.")
}

func TestAppRun_EmptyGridIsNotAnError(t *testing.T) {
	out, err := runGrid(t, "\n", nil)

	assert.NoError(t, err)
	assert.NotContains(t, out, "Evaluation failed.")
}

func TestAppRun_FailureReport(t *testing.T) {
	grid := `
		node "fail" "root" {
		  arguments {
		    message   = "disk on fire"
		    transient = true
		  }
		}
		node "concat" "downstream" {
		  depends_on = ["root"]
		}
	`

	out, err := runGrid(t, grid, nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "evaluation failed")
	assert.Contains(t, out, "Evaluation failed.")
	assert.Contains(t, out, "node fail(root)")
	assert.Contains(t, out, "cause: disk on fire (raised by fail(root))")
	assert.Contains(t, out, "node concat(downstream)")
	assert.Contains(t, out, "root causes: fail(root)")
	assert.Contains(t, out, "retryable: true")
}

func TestAppRun_CycleReport(t *testing.T) {
	grid := `
		node "concat" "a" {
		  depends_on = ["b"]
		}
		node "concat" "b" {
		  depends_on = ["a"]
		}
	`

	out, err := runGrid(t, grid, nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "dependency cycle detected")
	assert.Contains(t, out, "cycle:")
}

func TestAppRun_KeepGoingStillFails(t *testing.T) {
	grid := `
		node "fail" "broken" {}
		node "value" "fine" {
		  arguments { text = "ok" }
		}
	`

	out, err := runGrid(t, grid, func(c *Config) { c.KeepGoing = true })

	require.Error(t, err)
	assert.Contains(t, out, "node fail(broken)")
	assert.NotContains(t, out, "value(fine)")
}

func TestAppRun_CatastropheShowsInReport(t *testing.T) {
	grid := `
		node "fail" "broken" {
		  arguments { catastrophic = true }
		}
		node "value" "downstream" {
		  arguments { text = "never" }
		  depends_on = ["broken"]
		}
	`

	out, err := runGrid(t, grid, func(c *Config) { c.WorkerCount = 1 })

	require.Error(t, err)
	assert.Contains(t, out, "node fail(broken)")
	assert.Contains(t, out, "abort-run: true")
}

func TestNewConfig_RequiresGridPath(t *testing.T) {
	_, err := NewConfig(Config{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "GridPath")
}

func TestAppRun_LoadErrorSurfaces(t *testing.T) {
	cfg, err := NewConfig(Config{GridPath: filepath.Join(t.TempDir(), "missing.hcl")})
	require.NoError(t, err)

	var out bytes.Buffer
	a := NewApp(&out, cfg, hclgrid.NewLoader())
	err = a.Run(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load grid")
}
