package cli_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/specialistvlad/targetconf/internal/cli"
	"github.com/specialistvlad/targetconf/internal/hcl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Chdir(t.TempDir())
	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}
	err := cli.Execute(context.Background(), append([]string{"--color", "never"}, args...), out, errOut, hcl.NewLoader())
	return out.String(), err
}

func writeFile(t *testing.T, src string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "main.hcl")
	require.NoError(t, os.WriteFile(path, []byte(src), 0o600))
	return path
}

func exitCode(t *testing.T, err error) int {
	t.Helper()
	var exitErr *cli.ExitError
	require.True(t, errors.As(err, &exitErr), "expected *cli.ExitError, got %v", err)
	return exitErr.Code
}

func TestCheck_ExitCodes(t *testing.T) {
	ok := writeFile(t, "target {\n  platform = \"zephyr\"\n}\n")
	bad := writeFile(t, "target {\n  net-interface = \"ethernet\"\n}\n")

	out, err := execute(t, "check", ok)
	require.NoError(t, err)
	assert.Contains(t, out, "0 error(s)")

	_, err = execute(t, "check", bad)
	assert.Equal(t, cli.ExitDiagnostics, exitCode(t, err))
	assert.Equal(t, "1 error found", err.Error())
}

func TestUsageErrors(t *testing.T) {
	testCases := []struct {
		name string
		args []string
	}{
		{name: "unknown flag", args: []string{"check", "--bogus", "x.hcl"}},
		{name: "missing path", args: []string{"check"}},
		{name: "too many paths", args: []string{"generate", "a.hcl", "b.hcl"}},
		{name: "invalid log level", args: []string{"--log-level", "loud", "properties"}},
		{name: "invalid severity", args: []string{"--severity", "platform/board-ignored=fatal", "properties"}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := execute(t, tc.args...)
			assert.Equal(t, cli.ExitUsage, exitCode(t, err))
		})
	}
}

func TestGenerate_OutDirFlag(t *testing.T) {
	outDir := filepath.Join(t.TempDir(), "out")
	path := writeFile(t, "target {\n  platform = \"zephyr\"\n}\n")

	out, err := execute(t, "generate", "-o", outDir, path)
	require.NoError(t, err)
	assert.Contains(t, out, filepath.Join(outDir, "prj_lf.conf"))
	assert.FileExists(t, filepath.Join(outDir, "prj_lf.conf"))
}

func TestProperties(t *testing.T) {
	out, err := execute(t, "properties")
	require.NoError(t, err)
	assert.Contains(t, out, "net-interface")
}

func TestHelp(t *testing.T) {
	out, err := execute(t, "--help")
	require.NoError(t, err)
	assert.Contains(t, out, "Usage:")
}
