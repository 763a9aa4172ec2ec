package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/idelchi/ftwstat/internal/tally"
)

func tree(t *testing.T) string {
	t.Helper()

	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "sub"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "sub", "b.log"), []byte("12345"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "notes.md"), []byte("n"), 0o644))

	return root
}

func TestExecuteArgumentCount(t *testing.T) {
	for _, args := range [][]string{nil, {"only"}, {"a", "b", "c"}} {
		var stdout, stderr bytes.Buffer

		err := New("test").execute(args, &stdout, &stderr)
		require.ErrorIs(t, err, ErrUsage)
		require.Equal(t, "usage: ftwstat <starting-pathname> <pattern>", err.Error())
		require.Empty(t, stdout.String())
	}
}

func TestExecuteText(t *testing.T) {
	root := tree(t)

	var stdout, stderr bytes.Buffer

	require.NoError(t, New("test").execute([]string{root, "b.log"}, &stdout, &stderr))

	want := "Match found: " + filepath.Join(root, "sub", "b.log") + "\n" +
		"Size in bytes 5\n" +
		"Total number of files: 1\n" +
		"Total number of bytes: 5\n"
	require.Equal(t, want, stdout.String())
	require.Empty(t, stderr.String())
}

func TestExecuteTypes(t *testing.T) {
	root := tree(t)

	var stdout, stderr bytes.Buffer

	require.NoError(t, New("test").execute([]string{"--types", root, ".md"}, &stdout, &stderr))
	require.Contains(t, stdout.String(), "Total number of files: 1\n")
	require.Contains(t, stdout.String(), "directories:")
	require.Contains(t, stdout.String(), "Elapsed:")
}

func TestExecuteJSON(t *testing.T) {
	root := tree(t)

	var stdout, stderr bytes.Buffer

	require.NoError(t, New("test").execute([]string{"-o", "json", root, ""}, &stdout, &stderr))
	require.NotContains(t, stdout.String(), "Match found")

	var stats tally.Stats
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &stats))
	require.EqualValues(t, 2, stats.Counts.Files)
	require.EqualValues(t, 6, stats.Counts.Bytes)
	require.EqualValues(t, 2, stats.Counts.Dirs)
	require.Len(t, stats.Matches, 2)
}

func TestExecuteInvalidOutput(t *testing.T) {
	var stdout, stderr bytes.Buffer

	err := New("test").execute([]string{"-o", "yaml", ".", "x"}, &stdout, &stderr)
	require.ErrorContains(t, err, `invalid output format "yaml"`)
}

func TestExecuteVersion(t *testing.T) {
	var stdout, stderr bytes.Buffer

	require.NoError(t, New("v1.2.3").execute([]string{"--version"}, &stdout, &stderr))
	require.Equal(t, "v1.2.3\n", stdout.String())
}

func TestExecuteForcedProgress(t *testing.T) {
	root := tree(t)

	var stdout, stderr bytes.Buffer

	require.NoError(t, New("test").execute([]string{"--progress", root, "zzz"}, &stdout, &stderr))
	require.Contains(t, stderr.String(), "\033[?25h")
	require.Equal(t, "Total number of files: 0\nTotal number of bytes: 0\n", stdout.String())
}

func TestExecuteProgressClearedBeforeMatch(t *testing.T) {
	root := tree(t)

	var term bytes.Buffer

	require.NoError(t, New("test").execute([]string{"--progress", root, "b.log"}, &term, &term))

	out := term.String()
	require.Equal(t, 1, strings.Count(out, "Match found: "))
	require.Contains(t, out, "\r\033[2KMatch found: "+filepath.Join(root, "sub", "b.log")+"\n")
	require.Contains(t, out, "\r\033[2KSize in bytes 5\n")
}

func TestExecutePatternLooksLikeFlag(t *testing.T) {
	root := tree(t)
	require.NoError(t, os.WriteFile(filepath.Join(root, "file-x"), []byte("abc"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "file-v"), []byte("ab"), 0o644))

	for pattern, size := range map[string]string{"-x": "3", "-v": "2"} {
		var stdout, stderr bytes.Buffer

		require.NoError(t, New("test").execute([]string{root, pattern}, &stdout, &stderr))
		require.Equal(t, "Match found: "+filepath.Join(root, "file"+pattern)+"\n"+
			"Size in bytes "+size+"\n"+
			"Total number of files: 1\n"+
			"Total number of bytes: "+size+"\n", stdout.String())
	}
}

func TestExecuteFlagsAfterStartAreArguments(t *testing.T) {
	root := tree(t)

	var stdout, stderr bytes.Buffer

	err := New("test").execute([]string{root, "-o", "json"}, &stdout, &stderr)
	require.ErrorIs(t, err, ErrUsage)
	require.Empty(t, stdout.String())
}

func TestExecuteUnknownFlagIsUsageError(t *testing.T) {
	var stdout, stderr bytes.Buffer

	err := New("test").execute([]string{"--nope", ".", "x"}, &stdout, &stderr)
	require.ErrorIs(t, err, ErrUsage)
	require.ErrorContains(t, err, "unknown flag: --nope")
	require.ErrorContains(t, err, "usage: ftwstat <starting-pathname> <pattern>")
	require.Empty(t, stdout.String())
}
