package commands_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todo/internal/commands"
	"todo/internal/config"
	"todo/internal/output"
	"todo/internal/testutil"
)

// runCommand is a helper to run a command against a FakeStore.
func runCommand(t *testing.T, cmd commands.Command, store *testutil.FakeStore, arg string, quiet bool) (stdout string, status commands.Status) {
	t.Helper()

	var out bytes.Buffer

	cfg := config.New()
	cfg.Quiet = quiet

	s := &commands.Session{
		Config:   cfg,
		Store:    store,
		Registry: commands.NewDefaultRegistry(),
		Out:      &out,
		Render:   output.NewRenderer(&out, false),
		Log:      zerolog.Nop(),
	}

	status = cmd.Run(context.Background(), s, arg)
	return out.String(), status
}

// Tests for add command
func TestAddCommand(t *testing.T) {
	store := testutil.NewFakeStore()

	stdout, status := runCommand(t, &commands.AddCmd{}, store, "Buy milk", false)

	assert.Equal(t, commands.OK, status)
	assert.Equal(t, "Todo item added successfully!\n", stdout)
	assert.Equal(t, []string{"Buy milk"}, store.AddCalls)
	assert.Equal(t, []string{"[ ] 0: Buy milk"}, store.List())
}

func TestAddCommand_Quiet(t *testing.T) {
	store := testutil.NewFakeStore()

	stdout, status := runCommand(t, &commands.AddCmd{}, store, "Buy milk", true)

	assert.Equal(t, commands.OK, status)
	assert.Empty(t, stdout)
	assert.Equal(t, 1, store.Len())
}

func TestAddCommand_EmptyText(t *testing.T) {
	store := testutil.NewFakeStore()

	stdout, status := runCommand(t, &commands.AddCmd{}, store, "", false)

	assert.Equal(t, commands.Failed, status)
	assert.Equal(t, "Todo text cannot be empty.\n", stdout)
	assert.Zero(t, store.MutatingCalls())
}

// Tests for complete command
func TestCompleteCommand(t *testing.T) {
	store := testutil.NewFakeStore("Buy groceries", "Do laundry")

	stdout, status := runCommand(t, &commands.CompleteCmd{}, store, "1", false)

	assert.Equal(t, commands.OK, status)
	assert.Equal(t, "Todo item marked as completed!\n", stdout)
	assert.Equal(t, []string{"[ ] 0: Buy groceries", "[x] 1: Do laundry"}, store.List())
}

func TestCompleteCommand_AlreadyCompleted(t *testing.T) {
	store := testutil.NewFakeStore("Buy groceries")

	runCommand(t, &commands.CompleteCmd{}, store, "0", false)
	stdout, status := runCommand(t, &commands.CompleteCmd{}, store, "0", false)

	assert.Equal(t, commands.OK, status)
	assert.Equal(t, "Todo item marked as completed!\n", stdout)
	assert.Equal(t, []string{"[x] 0: Buy groceries"}, store.List())
}

func TestCompleteCommand_NotFound(t *testing.T) {
	store := testutil.NewFakeStore("Buy groceries")
	before := store.Items()

	stdout, status := runCommand(t, &commands.CompleteCmd{}, store, "99", true)

	assert.Equal(t, commands.Failed, status)
	assert.Equal(t, "Todo item not found.\n", stdout)
	assert.Equal(t, []int{99}, store.CompleteCalls)
	assert.Equal(t, before, store.Items())
}

func TestCompleteCommand_ParseError(t *testing.T) {
	tests := []struct {
		name string
		arg  string
		want string
	}{
		{name: "word", arg: "abc", want: "Invalid todo id: \"abc\". Expected a non-negative number.\n"},
		{name: "negative", arg: "-1", want: "Invalid todo id: \"-1\". Expected a non-negative number.\n"},
		{name: "missing", arg: "", want: "Invalid todo id: \"\". Expected a non-negative number.\n"},
		{name: "float", arg: "1.5", want: "Invalid todo id: \"1.5\". Expected a non-negative number.\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := testutil.NewFakeStore("Buy groceries")

			stdout, status := runCommand(t, &commands.CompleteCmd{}, store, tt.arg, false)

			assert.Equal(t, commands.Failed, status)
			assert.Equal(t, tt.want, stdout)
			assert.Zero(t, store.MutatingCalls(), "store must not be called on parse error")
		})
	}
}

func TestParseID(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr error
	}{
		{in: "0", want: 0},
		{in: "42", want: 42},
		{in: "007", want: 7},
		{in: "", wantErr: commands.ErrIDRequired},
		{in: "abc", wantErr: commands.ErrInvalidID},
		{in: "-3", wantErr: commands.ErrInvalidID},
		{in: "+3", wantErr: commands.ErrInvalidID},
		{in: "1 2", wantErr: commands.ErrInvalidID},
		{in: "0x1f", wantErr: commands.ErrInvalidID},
		{in: "99999999999999999999999999", wantErr: commands.ErrInvalidID},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := commands.ParseID(tt.in)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// Tests for list command
func TestListCommand(t *testing.T) {
	store := testutil.NewFakeStore("Buy groceries")

	stdout, status := runCommand(t, &commands.ListCmd{}, store, "", false)

	assert.Equal(t, commands.OK, status)
	assert.Empty(t, stdout)
	assert.Zero(t, store.MutatingCalls())
}

// Tests for help command
func TestHelpCommand(t *testing.T) {
	stdout, status := runCommand(t, &commands.HelpCmd{}, testutil.NewFakeStore(), "", false)

	assert.Equal(t, commands.OK, status)
	testutil.GoldenString(t, "help", stdout)
}

// Tests for exit command
func TestExitCommand(t *testing.T) {
	stdout, status := runCommand(t, &commands.ExitCmd{}, testutil.NewFakeStore(), "", true)

	assert.Equal(t, commands.Exit, status)
	assert.Equal(t, "Exiting...\n", stdout)
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "ok", commands.OK.String())
	assert.Equal(t, "failed", commands.Failed.String())
	assert.Equal(t, "exit", commands.Exit.String())
	assert.Equal(t, "unknown", commands.Status(42).String())
}
