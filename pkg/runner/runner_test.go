package runner

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/baletools/bale/pkg/errors"
	"github.com/baletools/bale/pkg/status"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunCapturesOutput(t *testing.T) {
	res, err := Run("sh", []string{"-c", "printf hello"}, WithCapture())
	require.NoError(t, err)
	assert.Equal(t, 0, res.ExitCode)
	assert.Equal(t, "hello", res.Stdout)
}

func TestRunReportsFailureWithDiagnostics(t *testing.T) {
	res, err := Run("sh", []string{"-c", "echo oops >&2; exit 3"}, WithCapture())
	require.Error(t, err)
	assert.True(t, errors.Is(err, status.ErrCommand))
	assert.Equal(t, 3, res.ExitCode)
	assert.Contains(t, err.Error(), "exit status 3")
	assert.Contains(t, err.Error(), "oops")
}

func TestRunNoCheck(t *testing.T) {
	res, err := Run("sh", []string{"-c", "exit 3"}, WithCapture(), WithNoCheck())
	require.NoError(t, err)
	assert.Equal(t, 3, res.ExitCode)
}

func TestRunCommandNotFound(t *testing.T) {
	_, err := Run("definitely-not-a-command-zzz", nil, WithCapture())
	require.Error(t, err)
	assert.True(t, errors.Is(err, status.ErrCommandNotFound))
}

func TestRunWorkingDirectory(t *testing.T) {
	dir := t.TempDir()
	res, err := Run("sh", []string{"-c", "pwd"}, WithCapture(), WithDir(dir))
	require.NoError(t, err)
	resolved, err := filepath.EvalSymlinks(dir)
	require.NoError(t, err)
	assert.Equal(t, resolved, strings.TrimSpace(res.Stdout))
}

func TestRunExtraEnv(t *testing.T) {
	res, err := Run("sh", []string{"-c", `printf "$BALE_TEST_VAR"`},
		WithCapture(), WithEnv("BALE_TEST_VAR=wired"))
	require.NoError(t, err)
	assert.Equal(t, "wired", res.Stdout)
}

func TestPipelineStreams(t *testing.T) {
	res, err := Pipeline([]Stage{
		{Name: "sh", Args: []string{"-c", "printf hello"}},
		{Name: "cat"},
		{Name: "cat"},
	}, WithCapture())
	require.NoError(t, err)
	assert.Equal(t, "hello", res.Stdout)
}

func TestPipelineStdinStdout(t *testing.T) {
	dir := t.TempDir()
	out, err := os.Create(filepath.Join(dir, "out"))
	require.NoError(t, err)

	res, err := Pipeline([]Stage{
		{Name: "cat"},
		{Name: "cat"},
	}, WithStdin(strings.NewReader("payload")), WithStdout(out))
	require.NoError(t, err)
	require.NoError(t, out.Close())
	assert.Equal(t, 0, res.ExitCode)

	data, err := os.ReadFile(filepath.Join(dir, "out"))
	require.NoError(t, err)
	assert.Equal(t, "payload", string(data))
}

func TestPipelineDoesNotBufferWholePayload(t *testing.T) {
	// one megabyte exceeds any OS pipe buffer: this deadlocks unless the
	// parent closes its pipe handles after starting the stages
	res, err := Pipeline([]Stage{
		{Name: "sh", Args: []string{"-c", "head -c 1048576 /dev/zero"}},
		{Name: "cat"},
		{Name: "wc", Args: []string{"-c"}},
	}, WithCapture())
	require.NoError(t, err)
	assert.Equal(t, "1048576", strings.TrimSpace(res.Stdout))
}

func TestPipelineIdentifiesFirstFailingStage(t *testing.T) {
	_, err := Pipeline([]Stage{
		{Name: "sh", Args: []string{"-c", "echo boom >&2; exit 2"}},
		{Name: "cat"},
	}, WithCapture())
	require.Error(t, err)
	assert.True(t, errors.Is(err, status.ErrCommand))
	assert.Contains(t, err.Error(), "sh -c")
	assert.Contains(t, err.Error(), "exit status 2")
	assert.Contains(t, err.Error(), "boom")
}

func TestPipelineNotFound(t *testing.T) {
	_, err := Pipeline([]Stage{
		{Name: "sh", Args: []string{"-c", "printf hi"}},
		{Name: "definitely-not-a-command-zzz"},
	}, WithCapture())
	require.Error(t, err)
	assert.True(t, errors.Is(err, status.ErrCommandNotFound))
}

func TestPipelineEmpty(t *testing.T) {
	_, err := Pipeline(nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, status.ErrCommand))
}

func TestAvailable(t *testing.T) {
	assert.True(t, Available("sh"))
	assert.False(t, Available("definitely-not-a-command-zzz"))
}
