package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand()
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestBinaryCommands(t *testing.T) {
	a := writeFile(t, "a.yaml", "- a\n- b\n- c\n- c\n")
	b := writeFile(t, "b.yaml", "[c, d]\n")
	testCases := []struct {
		cmd      string
		expected []string
	}{
		{"union", []string{"a", "b", "c", "d"}},
		{"intersect", []string{"c"}},
		{"except", []string{"a", "b"}},
		{"symdiff", []string{"a", "b", "d"}},
	}
	for _, tc := range testCases {
		t.Run(tc.cmd, func(t *testing.T) {
			out, err := run(t, tc.cmd, a, b)
			require.NoError(t, err)
			var got []string
			require.NoError(t, yaml.Unmarshal([]byte(out), &got))
			require.Equal(t, tc.expected, got)
		})
	}
}

func TestLinesFormat(t *testing.T) {
	a := writeFile(t, "a.txt", "x\n\n y \nz\n")
	b := writeFile(t, "b.txt", "z\n")
	out, err := run(t, "--format", "lines", "except", a, b)
	require.NoError(t, err)
	require.Equal(t, "x\ny\n", out)
}

func TestCompareCommand(t *testing.T) {
	a := writeFile(t, "a.yaml", "[a, b]\n")
	b := writeFile(t, "b.yaml", "[a, b, c]\n")
	out, err := run(t, "compare", a, b)
	require.NoError(t, err)
	var c comparison
	require.NoError(t, yaml.Unmarshal([]byte(out), &c))
	require.Equal(t, comparison{
		Subset:       true,
		ProperSubset: true,
		Overlaps:     true,
	}, c)
}

func TestStatsCommand(t *testing.T) {
	a := writeFile(t, "a.yaml", "[a, b, c, d, e, f, g]\n")
	out, err := run(t, "--capacity", "7", "stats", a)
	require.NoError(t, err)
	require.Contains(t, out, "count: 7")
	require.Contains(t, out, "capacity: 7")
}

func TestGenerateCommand(t *testing.T) {
	out, err := run(t, "--format", "lines", "generate", "5")
	require.NoError(t, err)
	require.Len(t, strings.Fields(out), 5)

	_, err = run(t, "generate", "many")
	require.Error(t, err)
}

func TestInvalidInput(t *testing.T) {
	a := writeFile(t, "a.yaml", "[a]\n")
	_, err := run(t, "union", a, filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)

	_, err = run(t, "--format", "json", "union", a, a)
	require.Error(t, err)

	_, err = run(t, "--capacity", "0", "stats", a)
	require.Error(t, err)

	bad := writeFile(t, "bad.yaml", "a: b\n")
	_, err = run(t, "stats", bad)
	require.Error(t, err)
}
