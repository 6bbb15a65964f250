package cli

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func executePlay(t *testing.T, rootOpts *RootOptions, input string, args ...string) (string, error) {
	t.Helper()
	buf := &bytes.Buffer{}
	cmd := NewPlayCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetIn(strings.NewReader(input))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestPlayCommand_Session(t *testing.T) {
	out, err := executePlay(t, &RootOptions{Format: "text"}, "2\n9\n0\n", "--kinds", "I", "--seed", "1")
	require.NoError(t, err)

	assert.Contains(t, out, "=== NEXT PIECE MANAGER ===")
	assert.Contains(t, out, "Filling the queue with 5 pieces...")
	assert.Contains(t, out, "Reserved [I 0] (queue front -> reserve top).")
	assert.Contains(t, out, "Generated [I 5] at the back of the queue.")
	assert.Contains(t, out, "INVALID OPTION!")
	assert.Contains(t, out, "Quitting. Bye!")
}

func TestPlayCommand_CapacityFlags(t *testing.T) {
	out, err := executePlay(t, &RootOptions{Format: "text"}, "0\n",
		"--queue", "7", "--reserve", "2", "--kinds", "S", "--seed", "3")
	require.NoError(t, err)

	assert.Contains(t, out, "Filling the queue with 7 pieces...")
	assert.Contains(t, out, "Queue (7/7): [S 0] -> [S 1]")
	assert.Contains(t, out, "Reserve (top -> bottom) (0/2): [EMPTY]")
	assert.Contains(t, out, "5 | Swap the first 2 queue pieces with the 2 reserve pieces")
}

func TestPlayCommand_Portuguese(t *testing.T) {
	out, err := executePlay(t, &RootOptions{Format: "text", Lang: "pt-BR"}, "0\n", "--seed", "9")
	require.NoError(t, err)

	assert.Contains(t, out, "=== GERENCIADOR DE PEÇAS ===")
	assert.Contains(t, out, "Saindo. Até logo!")
}

func TestPlayCommand_EOFEndsSession(t *testing.T) {
	out, err := executePlay(t, &RootOptions{Format: "text"}, "1\n", "--seed", "5")
	require.NoError(t, err)
	assert.Contains(t, out, "NEW STATE:")
	assert.NotContains(t, out, "Quitting")
}

func TestPlayCommand_InvalidConfig(t *testing.T) {
	_, err := executePlay(t, &RootOptions{Format: "text"}, "", "--kinds", "IIO")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, err.Error(), "invalid config")

	_, err = executePlay(t, &RootOptions{Format: "text"}, "", "--reserve", "0")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestPlayCommand_ConfigFileAndFlags(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nextpiece.cue")
	writeFile(t, path, "queue_capacity: 3\nkinds: \"Z\"\n")

	out, err := executePlay(t, &RootOptions{Format: "text", ConfigPath: path}, "0\n", "--reserve", "1", "--seed", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "Queue (3/3): [Z 0] -> [Z 1] -> [Z 2]")
	assert.Contains(t, out, "Reserve (top -> bottom) (0/1): [EMPTY]")
}

func TestPlayCommand_MissingConfigFile(t *testing.T) {
	_, err := executePlay(t, &RootOptions{Format: "text", ConfigPath: "/nonexistent/nextpiece.cue"}, "")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, err.Error(), "failed to load config")
}

func TestPlayCommand_InvalidConfigJSON(t *testing.T) {
	out, err := executePlay(t, &RootOptions{Format: "json"}, "", "--reserve", "0")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))

	resp := decodeErrorEnvelope(t, out)
	assert.Equal(t, ErrCodeConfig, resp.Error.Code)
	assert.Equal(t, map[string]any{"field": "reserve_capacity"}, resp.Error.Details)
	assert.NotContains(t, out, "NEXT PIECE MANAGER", "no session output before a config error")
}
