package e2e_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http/httptest"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/kellypool/internal/api"
	"github.com/mcoot/kellypool/internal/cli"
	"github.com/mcoot/kellypool/internal/factory"
	"github.com/mcoot/kellypool/internal/testutil"
)

// cliRunner runs the kpool command tree in-process against a test server
type cliRunner struct {
	serverURL string
	tableFile string
}

func newCLIRunner(t *testing.T) *cliRunner {
	t.Helper()

	t.Setenv("KPOOL_TABLE", "")

	app, err := factory.New(factory.Config{Logger: testutil.NopLogger()})
	require.NoError(t, err)

	server := httptest.NewServer(api.NewRouter(api.RouterConfig{
		Logger:          testutil.NopLogger(),
		TableController: app.TableController,
	}))
	t.Cleanup(server.Close)

	return &cliRunner{
		serverURL: server.URL,
		tableFile: filepath.Join(t.TempDir(), "table"),
	}
}

func (r *cliRunner) runFormat(format string, args ...string) (string, string, error) {
	fullArgs := append([]string{
		"--server", r.serverURL,
		"--table-file", r.tableFile,
		"--output", format,
	}, args...)

	var stdout, stderr bytes.Buffer
	cmd := cli.NewRootCmd()
	cmd.SetArgs(fullArgs)
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)

	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func (r *cliRunner) run(args ...string) (string, error) {
	stdout, _, err := r.runFormat("json", args...)
	return stdout, err
}

func parseJSON[T any](t *testing.T, output string) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal([]byte(output), &v), "output: %s", output)
	return v
}

func TestHealth(t *testing.T) {
	r := newCLIRunner(t)

	out, err := r.run("health")
	require.NoError(t, err)
	assert.Equal(t, "ok", parseJSON[cli.HealthResult](t, out).Status)
}

func TestFullGameFlow(t *testing.T) {
	r := newCLIRunner(t)

	// Create a table, which becomes the current table
	out, err := r.run("table", "create")
	require.NoError(t, err)
	table := parseJSON[cli.Table](t, out)
	assert.Len(t, table.ID, 6)

	saved, err := os.ReadFile(r.tableFile)
	require.NoError(t, err)
	assert.Equal(t, table.ID, string(saved))

	// Seat players; multi-word names are joined
	out, err = r.run("player", "add", "Alice", "Smith")
	require.NoError(t, err)
	added := parseJSON[cli.CommandResult](t, out)
	assert.Equal(t, "Alice Smith", added.Table.Players[0].Name)

	_, err = r.run("player", "add", "Bob")
	require.NoError(t, err)

	// Duplicate names are rejected with the game's notification
	_, err = r.run("player", "add", "Bob")
	var reqErr *cli.RequestError
	require.ErrorAs(t, err, &reqErr)
	assert.Equal(t, "DUPLICATE_NAME", reqErr.Code)
	require.Len(t, reqErr.Notifications, 1)
	assert.Equal(t, "Player name already exists", reqErr.Notifications[0].Message)

	// Start deals all 15 balls
	out, err = r.run("game", "start")
	require.NoError(t, err)
	started := parseJSON[cli.CommandResult](t, out)
	assert.True(t, started.Table.GameStarted)
	total := 0
	for _, p := range started.Table.Players {
		total += len(p.Balls)
	}
	assert.Equal(t, 15, total)

	// Pocket a ball that is not the 8
	bob := started.Table.Players[1]
	ball := bob.Balls[0]
	if ball == 8 {
		ball = bob.Balls[1]
	}
	out, err = r.run("game", "pocket", strconv.Itoa(ball))
	require.NoError(t, err)
	pocketed := parseJSON[cli.CommandResult](t, out)
	assert.Equal(t, []int{ball}, pocketed.Table.PocketedBalls)
	assert.Empty(t, pocketed.Foul)

	// The same ball again is a foul
	out, err = r.run("game", "pocket", strconv.Itoa(ball))
	require.NoError(t, err)
	assert.Equal(t, "illegal pocket", parseJSON[cli.CommandResult](t, out).Foul)

	// History shows the pocket
	out, err = r.run("table", "history")
	require.NoError(t, err)
	history := parseJSON[cli.History](t, out)
	assert.True(t, slices.ContainsFunc(history.Events, func(e cli.HistoryEvent) bool {
		return e.Action == "pocketed ball" && e.BallNumber != nil && *e.BallNumber == ball
	}))

	// Reset keeps the roster
	out, err = r.run("game", "reset")
	require.NoError(t, err)
	reset := parseJSON[cli.CommandResult](t, out)
	assert.False(t, reset.Table.GameStarted)
	assert.Len(t, reset.Table.Players, 2)

	// Delete forgets the current table
	_, err = r.run("table", "delete")
	require.NoError(t, err)
	_, err = os.Stat(r.tableFile)
	assert.True(t, os.IsNotExist(err))

	_, err = r.run("table", "get", table.ID)
	require.ErrorAs(t, err, &reqErr)
	assert.Equal(t, "TABLE_NOT_FOUND", reqErr.Code)
}

func TestTableList(t *testing.T) {
	r := newCLIRunner(t)

	out, err := r.run("table", "create")
	require.NoError(t, err)
	table := parseJSON[cli.Table](t, out)

	out, err = r.run("table", "list")
	require.NoError(t, err)
	assert.Equal(t, []string{table.ID}, parseJSON[cli.TableList](t, out).Tables)
}

func TestRemovePlayer(t *testing.T) {
	r := newCLIRunner(t)

	_, err := r.run("table", "create")
	require.NoError(t, err)
	out, err := r.run("player", "add", "Alice")
	require.NoError(t, err)
	alice := parseJSON[cli.CommandResult](t, out).Table.Players[0]

	out, err = r.run("player", "remove", alice.ID)
	require.NoError(t, err)
	assert.Empty(t, parseJSON[cli.CommandResult](t, out).Table.Players)
}

func TestTextOutput(t *testing.T) {
	r := newCLIRunner(t)

	_, _, err := r.runFormat("text", "table", "create")
	require.NoError(t, err)
	_, _, err = r.runFormat("text", "player", "add", "Alice")
	require.NoError(t, err)

	stdout, _, err := r.runFormat("text", "player", "add", "Bob")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Bob added to the game")
	assert.Contains(t, stdout, "waiting for players")

	stdout, _, err = r.runFormat("text", "game", "start")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Game started!")
	assert.Contains(t, stdout, "in progress")
	assert.Contains(t, stdout, "Pocketed: none")
}

func TestCommandsNeedATable(t *testing.T) {
	r := newCLIRunner(t)

	_, err := r.run("game", "start")
	assert.True(t, errors.Is(err, cli.ErrNoTable))
}

func TestClientSideValidation(t *testing.T) {
	r := newCLIRunner(t)
	_, err := r.run("table", "create")
	require.NoError(t, err)

	_, err = r.run("player", "add", strings.Repeat("x", 21))
	assert.ErrorContains(t, err, "at most 20 characters")

	_, err = r.run("game", "pocket", "eight")
	assert.ErrorContains(t, err, "ball must be a number")

	_, _, err = r.runFormat("yaml", "health")
	assert.ErrorContains(t, err, "invalid output format")
}

func TestExplicitTableFlagOverridesFile(t *testing.T) {
	r := newCLIRunner(t)

	out, err := r.run("table", "create")
	require.NoError(t, err)
	first := parseJSON[cli.Table](t, out)

	_, err = r.run("table", "create")
	require.NoError(t, err)

	out, err = r.run("--table", first.ID, "table", "get")
	require.NoError(t, err)
	assert.Equal(t, first.ID, parseJSON[cli.Table](t, out).ID)
}
