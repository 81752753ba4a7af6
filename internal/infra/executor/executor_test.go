package executor

import (
	"bytes"
	"context"
	"runtime"
	"strings"
	"testing"

	"github.com/seedtools/ghseed/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Execute(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("Skipping test on Windows")
	}

	client := NewClient()

	t.Run("executes simple echo command", func(t *testing.T) {
		cmd := domain.NewCommand("echo", []string{"hello"}, "")
		output, err := client.Execute(cmd)
		require.NoError(t, err)
		assert.Equal(t, "hello\n", string(output))
	})

	t.Run("executes command in specified directory", func(t *testing.T) {
		dir := t.TempDir()
		cmd := domain.NewCommand("pwd", nil, dir)
		output, err := client.Execute(cmd)
		require.NoError(t, err)
		assert.Contains(t, strings.TrimSpace(string(output)), dir)
	})

	t.Run("returns error for non-existent command", func(t *testing.T) {
		cmd := domain.NewCommand("nonexistent-command-xyz", nil, "")
		_, err := client.Execute(cmd)
		require.Error(t, err)
	})

	t.Run("returns error for failing command", func(t *testing.T) {
		cmd := domain.NewCommand("sh", []string{"-c", "exit 1"}, "")
		_, err := client.Execute(cmd)
		require.Error(t, err)
	})

	t.Run("captures stderr in output", func(t *testing.T) {
		cmd := domain.NewCommand("sh", []string{"-c", "echo error >&2"}, "")
		output, err := client.Execute(cmd)
		require.NoError(t, err)
		assert.Equal(t, "error\n", string(output))
	})
}

func TestClient_ExecuteWithContext(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("Skipping test on Windows")
	}

	client := NewClient()

	t.Run("separates stdout and stderr", func(t *testing.T) {
		var stdout, stderr bytes.Buffer
		cmd := domain.NewCommand("sh", []string{"-c", "echo out; echo err >&2"}, "")
		err := client.ExecuteWithContext(context.Background(), cmd, &stdout, &stderr)
		require.NoError(t, err)
		assert.Equal(t, "out\n", stdout.String())
		assert.Equal(t, "err\n", stderr.String())
	})

	t.Run("returns error on non-zero exit with captured stderr", func(t *testing.T) {
		var stdout, stderr bytes.Buffer
		cmd := domain.NewCommand("sh", []string{"-c", "echo boom >&2; exit 3"}, "")
		err := client.ExecuteWithContext(context.Background(), cmd, &stdout, &stderr)
		require.Error(t, err)
		assert.Equal(t, "boom\n", stderr.String())
	})
}

func TestNewClient(t *testing.T) {
	client := NewClient()
	assert.NotNil(t, client)
}
