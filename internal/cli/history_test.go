package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/nextpiece/internal/journal"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func executeHistory(t *testing.T, format string, args ...string) (string, error) {
	t.Helper()
	buf := &bytes.Buffer{}
	cmd := NewHistoryCommand(&RootOptions{Format: format})
	cmd.SetOut(buf)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

// playJournaled plays a short session recording to a fresh journal.
func playJournaled(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "moves.db")
	_, err := executePlay(t, &RootOptions{Format: "text"}, "2\n9\n0\n",
		"--kinds", "I", "--seed", "11", "--journal", path)
	require.NoError(t, err)
	return path
}

func TestHistoryCommand_MissingJournalFlag(t *testing.T) {
	_, err := executeHistory(t, "text")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "journal")
}

func TestHistoryCommand_JournalNotFound(t *testing.T) {
	_, err := executeHistory(t, "text", "--journal", filepath.Join(t.TempDir(), "none.db"))
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, err.Error(), "journal not found")
}

func TestHistoryCommand_ListSessions(t *testing.T) {
	path := playJournaled(t)

	out, err := executeHistory(t, "text", "--journal", path)
	require.NoError(t, err)
	assert.Contains(t, out, "seed=11 queue=5 reserve=3 kinds=I lang=en moves=2")
}

func TestHistoryCommand_SessionMovesJSON(t *testing.T) {
	path := playJournaled(t)

	out, err := executeHistory(t, "json", "--journal", path)
	require.NoError(t, err)

	var sessions struct {
		Status string                  `json:"status"`
		Data   []journal.SessionRecord `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &sessions))
	assert.Equal(t, "ok", sessions.Status)
	require.Len(t, sessions.Data, 1)
	id := sessions.Data[0].ID

	out, err = executeHistory(t, "json", "--journal", path, "--session", id)
	require.NoError(t, err)

	var moves struct {
		Status string       `json:"status"`
		Data   SessionMoves `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &moves))
	assert.Equal(t, id, moves.Data.Session.ID)
	require.Len(t, moves.Data.Moves, 2)

	first := moves.Data.Moves[0]
	assert.Equal(t, "reserve", first.Action)
	assert.Equal(t, journal.StatusOK, first.Status)
	require.NotNil(t, first.Piece)
	assert.Equal(t, "I0", first.Piece.Label())
	require.Len(t, first.Reserve, 1)

	second := moves.Data.Moves[1]
	assert.Equal(t, "9", second.Input)
	assert.Equal(t, journal.StatusError, second.Status)
	assert.Equal(t, "INVALID_SELECTION", second.ErrorCode)
	assert.Greater(t, second.Seq, first.Seq)
}

func TestHistoryCommand_SessionMovesText(t *testing.T) {
	path := playJournaled(t)

	out, err := executeHistory(t, "json", "--journal", path)
	require.NoError(t, err)
	var sessions struct {
		Data []journal.SessionRecord `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &sessions))
	require.Len(t, sessions.Data, 1)

	out, err = executeHistory(t, "text", "--journal", path, "--session", sessions.Data[0].ID)
	require.NoError(t, err)
	assert.Contains(t, out, "(2 moves)")
	assert.Contains(t, out, "reserve=[I0]")
	assert.Contains(t, out, "INVALID_SELECTION")
}

func TestHistoryCommand_UnknownSession(t *testing.T) {
	path := playJournaled(t)

	_, err := executeHistory(t, "text", "--journal", path, "--session", "nope")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, err.Error(), "session not found: nope")
}

func TestHistoryCommand_UnknownSessionJSON(t *testing.T) {
	path := playJournaled(t)

	out, err := executeHistory(t, "json", "--journal", path, "--session", "nope")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))

	resp := decodeErrorEnvelope(t, out)
	assert.Equal(t, ErrCodeSessionNotFound, resp.Error.Code)
	assert.Equal(t, "session not found: nope", resp.Error.Message)
}

func TestHistoryCommand_JournalNotFoundJSON(t *testing.T) {
	out, err := executeHistory(t, "json", "--journal", filepath.Join(t.TempDir(), "none.db"))
	require.Error(t, err)

	resp := decodeErrorEnvelope(t, out)
	assert.Equal(t, ErrCodeJournal, resp.Error.Code)
	assert.Contains(t, resp.Error.Message, "journal not found")
}
