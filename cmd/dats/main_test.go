package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/outofforest/logger"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"github.com/outofforest/dats/types"
	"github.com/outofforest/dats/workload"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	app := newApp()
	buf := &bytes.Buffer{}
	app.Writer = buf

	ctx := logger.WithLogger(context.Background(), logger.New(logger.DefaultConfig))
	err := app.RunContext(ctx, append([]string{"dats"}, args...))
	return buf.String(), err
}

func TestRunCommand(t *testing.T) {
	requireT := require.New(t)

	out, err := run(t, "run", "--ops", "100", "--workload", workload.BST, "--workload", workload.Dense)
	requireT.NoError(err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	requireT.Len(lines, 2)
	requireT.True(strings.HasPrefix(lines[0], workload.BST))
	requireT.True(strings.HasPrefix(lines[1], workload.Dense))
}

func TestRunCommandUnknownWorkload(t *testing.T) {
	requireT := require.New(t)

	_, err := run(t, "run", "--workload", "unknown")
	requireT.True(errors.Is(err, types.ErrInvalidArgument))
}

func TestConfigCommand(t *testing.T) {
	requireT := require.New(t)

	path := filepath.Join(t.TempDir(), "dats.toml")
	requireT.NoError(os.WriteFile(path, []byte("ops = 5\nworkloads = [\"bitset\"]\n"), 0o600))

	out, err := run(t, "config", "--config", path, "--seed", "9")
	requireT.NoError(err)

	loadedPath := filepath.Join(t.TempDir(), "effective.toml")
	requireT.NoError(os.WriteFile(loadedPath, []byte(out), 0o600))
	config, err := workload.LoadConfig(loadedPath)
	requireT.NoError(err)

	expected := workload.DefaultConfig()
	expected.Seed = 9
	expected.Ops = 5
	expected.Workloads = []string{workload.Bitset}
	requireT.Equal(expected, config)
}
