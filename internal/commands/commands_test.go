package commands_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"ltask/internal/commands"
	"ltask/internal/config"
	"ltask/internal/exitcode"
	"ltask/internal/store"
	"ltask/internal/sync"
	"ltask/internal/task"
	"ltask/internal/testutil"
)

// runCommand is a helper to run a command with a FakeStore.
func runCommand(t *testing.T, cmd commands.Command, st *testutil.FakeStore, args []string, quiet bool) (stdout, stderr string, code int) {
	t.Helper()

	var outBuf, errBuf bytes.Buffer

	cfg := &config.Config{
		Dir:   t.TempDir(),
		Quiet: quiet,
	}

	ctx := context.Background()
	code = cmd.Run(ctx, cfg, st, args, &outBuf, &errBuf)
	return outBuf.String(), errBuf.String(), code
}

// Tests for version command
func TestVersionCommand(t *testing.T) {
	cmd := &commands.VersionCmd{}

	stdout, stderr, code := runCommand(t, cmd, nil, nil, false)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stderr != "" {
		t.Errorf("expected no stderr, got %q", stderr)
	}
	if stdout != "ltask 0.1.0\n" {
		t.Errorf("expected version output, got %q", stdout)
	}
}

// Tests for help command
func TestHelpCommand(t *testing.T) {
	cmd := &commands.HelpCmd{}

	stdout, stderr, code := runCommand(t, cmd, nil, nil, false)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stderr != "" {
		t.Errorf("expected no stderr, got %q", stderr)
	}
	if !strings.Contains(stdout, "Usage:") {
		t.Error("help output should contain 'Usage:'")
	}
	for _, name := range []string{"add", "list", "complete", "remove", "sync"} {
		if !strings.Contains(stdout, "ltask "+name) {
			t.Errorf("help output should mention %q", name)
		}
	}
}

// Tests for add command
func TestAddCommand(t *testing.T) {
	st := testutil.NewFakeStore()

	cmd := &commands.AddCmd{}
	stdout, stderr, code := runCommand(t, cmd, st, []string{"buy", "milk"}, false)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stderr != "" {
		t.Errorf("expected no stderr, got %q", stderr)
	}
	if stdout != "added 1\n" {
		t.Errorf("expected id confirmation, got %q", stdout)
	}

	tasks, err := st.List(context.Background(), store.All)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(tasks) != 1 || tasks[0].Description != "buy milk" {
		t.Errorf("expected one task 'buy milk', got %v", tasks)
	}
	if tasks[0].Status != task.StatusPending {
		t.Errorf("new task should be pending, got %q", tasks[0].Status)
	}
}

func TestAddCommand_Quiet(t *testing.T) {
	st := testutil.NewFakeStore()

	cmd := &commands.AddCmd{}
	stdout, stderr, code := runCommand(t, cmd, st, []string{"buy milk"}, true)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stdout != "" || stderr != "" {
		t.Errorf("expected no output, got stdout=%q stderr=%q", stdout, stderr)
	}
}

func TestAddCommand_MissingDescription(t *testing.T) {
	st := testutil.NewFakeStore()

	cmd := &commands.AddCmd{}
	_, stderr, code := runCommand(t, cmd, st, nil, false)

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	if stderr != "error: description required\n" {
		t.Errorf("unexpected stderr: %q", stderr)
	}
}

func TestAddCommand_BlankDescription(t *testing.T) {
	st := testutil.NewFakeStore()

	cmd := &commands.AddCmd{}
	_, stderr, code := runCommand(t, cmd, st, []string{"  ", " "}, false)

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	if stderr != "error: description required\n" {
		t.Errorf("unexpected stderr: %q", stderr)
	}
}

func TestAddCommand_StoreError(t *testing.T) {
	st := testutil.NewFakeStore()
	st.AddErr = errors.New("disk full")

	cmd := &commands.AddCmd{}
	_, stderr, code := runCommand(t, cmd, st, []string{"buy milk"}, false)

	if code != exitcode.BackendError {
		t.Errorf("expected exit code %d, got %d", exitcode.BackendError, code)
	}
	if stderr != "error: store error: disk full\n" {
		t.Errorf("unexpected stderr: %q", stderr)
	}
}

// Tests for list command
func TestListCommand_Empty(t *testing.T) {
	st := testutil.NewFakeStore()

	cmd := &commands.ListCmd{}
	stdout, stderr, code := runCommand(t, cmd, st, nil, false)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stderr != "" {
		t.Errorf("expected no stderr, got %q", stderr)
	}
	if stdout != "no tasks found\n" {
		t.Errorf("unexpected stdout: %q", stdout)
	}
}

func TestListCommand_EmptyQuiet(t *testing.T) {
	st := testutil.NewFakeStore()

	cmd := &commands.ListCmd{}
	stdout, _, code := runCommand(t, cmd, st, nil, true)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stdout != "" {
		t.Errorf("expected no stdout, got %q", stdout)
	}
}

func TestListCommand_AllTasks(t *testing.T) {
	st := testutil.NewFakeStore()
	st.SeedPending("buy milk")
	done := st.SeedPending("buy eggs")
	if _, err := st.Complete(context.Background(), done.ID); err != nil {
		t.Fatalf("complete failed: %v", err)
	}

	cmd := &commands.ListCmd{}
	stdout, stderr, code := runCommand(t, cmd, st, nil, false)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stderr != "" {
		t.Errorf("expected no stderr, got %q", stderr)
	}

	expected := "   1  [ ]  buy milk\n   2  [x]  buy eggs\n"
	if stdout != expected {
		t.Errorf("expected %q, got %q", expected, stdout)
	}
}

func TestListCommand_FilterPending(t *testing.T) {
	st := testutil.NewFakeStore()
	st.SeedPending("buy milk")
	done := st.SeedPending("buy eggs")
	if _, err := st.Complete(context.Background(), done.ID); err != nil {
		t.Fatalf("complete failed: %v", err)
	}

	cmd := &commands.ListCmd{}
	cmd.SetFilter("pending")
	stdout, _, code := runCommand(t, cmd, st, nil, false)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	expected := "   1  [ ]  buy milk\n"
	if stdout != expected {
		t.Errorf("expected %q, got %q", expected, stdout)
	}
}

func TestListCommand_FilterCompleted(t *testing.T) {
	st := testutil.NewFakeStore()
	st.SeedPending("buy milk")
	done := st.SeedPending("buy eggs")
	if _, err := st.Complete(context.Background(), done.ID); err != nil {
		t.Fatalf("complete failed: %v", err)
	}

	cmd := &commands.ListCmd{}
	cmd.SetFilter("completed")
	stdout, _, code := runCommand(t, cmd, st, nil, false)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	expected := "   2  [x]  buy eggs\n"
	if stdout != expected {
		t.Errorf("expected %q, got %q", expected, stdout)
	}
}

func TestListCommand_FilterNoMatches(t *testing.T) {
	st := testutil.NewFakeStore()
	st.SeedPending("buy milk")

	cmd := &commands.ListCmd{}
	cmd.SetFilter("completed")
	stdout, _, code := runCommand(t, cmd, st, nil, false)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stdout != "no tasks found\n" {
		t.Errorf("unexpected stdout: %q", stdout)
	}
}

func TestListCommand_InvalidFilter(t *testing.T) {
	st := testutil.NewFakeStore()

	cmd := &commands.ListCmd{}
	cmd.SetFilter("urgent")
	_, stderr, code := runCommand(t, cmd, st, nil, false)

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	if stderr != "error: invalid status: urgent\n" {
		t.Errorf("unexpected stderr: %q", stderr)
	}
}

func TestListCommand_UnexpectedArgument(t *testing.T) {
	st := testutil.NewFakeStore()

	cmd := &commands.ListCmd{}
	_, stderr, code := runCommand(t, cmd, st, []string{"extra"}, false)

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	if stderr != "error: unexpected argument: extra\n" {
		t.Errorf("unexpected stderr: %q", stderr)
	}
}

func TestListCommand_StoreError(t *testing.T) {
	st := testutil.NewFakeStore()
	st.ListErr = errors.New("read failed")

	cmd := &commands.ListCmd{}
	_, stderr, code := runCommand(t, cmd, st, nil, false)

	if code != exitcode.BackendError {
		t.Errorf("expected exit code %d, got %d", exitcode.BackendError, code)
	}
	if stderr != "error: store error: read failed\n" {
		t.Errorf("unexpected stderr: %q", stderr)
	}
}

// Tests for complete command
func TestCompleteCommand(t *testing.T) {
	st := testutil.NewFakeStore()
	st.SeedPending("buy milk")

	cmd := &commands.CompleteCmd{}
	stdout, stderr, code := runCommand(t, cmd, st, []string{"1"}, false)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stderr != "" {
		t.Errorf("expected no stderr, got %q", stderr)
	}
	if stdout != "ok\n" {
		t.Errorf("unexpected stdout: %q", stdout)
	}

	tasks, err := st.List(context.Background(), store.All)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if tasks[0].Status != task.StatusCompleted {
		t.Errorf("task should be completed, got %q", tasks[0].Status)
	}
}

func TestCompleteCommand_NotFound(t *testing.T) {
	st := testutil.NewFakeStore()

	cmd := &commands.CompleteCmd{}
	_, stderr, code := runCommand(t, cmd, st, []string{"9"}, false)

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	if stderr != "error: task not found: 9\n" {
		t.Errorf("unexpected stderr: %q", stderr)
	}
}

func TestCompleteCommand_InvalidID(t *testing.T) {
	st := testutil.NewFakeStore()

	cmd := &commands.CompleteCmd{}
	_, stderr, code := runCommand(t, cmd, st, []string{"abc"}, false)

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	if stderr != "error: invalid task id: abc\n" {
		t.Errorf("unexpected stderr: %q", stderr)
	}
}

func TestCompleteCommand_MissingID(t *testing.T) {
	st := testutil.NewFakeStore()

	cmd := &commands.CompleteCmd{}
	_, stderr, code := runCommand(t, cmd, st, nil, false)

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	if stderr != "error: task id required\n" {
		t.Errorf("unexpected stderr: %q", stderr)
	}
}

func TestCompleteCommand_StoreError(t *testing.T) {
	st := testutil.NewFakeStore()
	st.CompleteErr = errors.New("write failed")

	cmd := &commands.CompleteCmd{}
	_, stderr, code := runCommand(t, cmd, st, []string{"1"}, false)

	if code != exitcode.BackendError {
		t.Errorf("expected exit code %d, got %d", exitcode.BackendError, code)
	}
	if stderr != "error: store error: write failed\n" {
		t.Errorf("unexpected stderr: %q", stderr)
	}
}

// Tests for remove command
func TestRemoveCommand(t *testing.T) {
	st := testutil.NewFakeStore()
	st.SeedPending("buy milk")
	st.SeedPending("buy eggs")

	cmd := &commands.RemoveCmd{}
	stdout, stderr, code := runCommand(t, cmd, st, []string{"1"}, false)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stderr != "" {
		t.Errorf("expected no stderr, got %q", stderr)
	}
	if stdout != "ok\n" {
		t.Errorf("unexpected stdout: %q", stdout)
	}

	// Remaining task keeps its id.
	tasks, err := st.List(context.Background(), store.All)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(tasks) != 1 || tasks[0].ID != 2 {
		t.Errorf("expected only task 2 to remain, got %v", tasks)
	}
}

func TestRemoveCommand_NotFound(t *testing.T) {
	st := testutil.NewFakeStore()

	cmd := &commands.RemoveCmd{}
	_, stderr, code := runCommand(t, cmd, st, []string{"3"}, false)

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	if stderr != "error: task not found: 3\n" {
		t.Errorf("unexpected stderr: %q", stderr)
	}
}

func TestRemoveCommand_InvalidID(t *testing.T) {
	st := testutil.NewFakeStore()

	cmd := &commands.RemoveCmd{}
	_, stderr, code := runCommand(t, cmd, st, []string{"-1"}, false)

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	if stderr != "error: invalid task id: -1\n" {
		t.Errorf("unexpected stderr: %q", stderr)
	}
}

// Tests for logout command
func TestLogoutCommand_NotLoggedIn(t *testing.T) {
	cmd := &commands.LogoutCmd{}

	stdout, stderr, code := runCommand(t, cmd, nil, nil, false)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stderr != "" {
		t.Errorf("expected no stderr, got %q", stderr)
	}
	if stdout != "not logged in\n" {
		t.Errorf("unexpected stdout: %q", stdout)
	}
}

// Tests for sync command
func TestSyncCommand(t *testing.T) {
	st := testutil.NewFakeStore()
	st.SeedPending("buy milk")
	done := st.SeedPending("buy eggs")
	if _, err := st.Complete(context.Background(), done.ID); err != nil {
		t.Fatalf("complete failed: %v", err)
	}

	remote := testutil.NewFakeRemote()
	remote.SeedOpen("buy eggs")

	cmd := &commands.SyncCmd{}
	cmd.SetRemoteFactory(func(ctx context.Context, cfg *config.Config) (sync.Remote, error) {
		return remote, nil
	})

	stdout, stderr, code := runCommand(t, cmd, st, nil, false)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stderr != "" {
		t.Errorf("expected no stderr, got %q", stderr)
	}
	if stdout != "synced: 1 created, 1 completed, 0 pruned\n" {
		t.Errorf("unexpected stdout: %q", stdout)
	}
}

func TestSyncCommand_Prune(t *testing.T) {
	st := testutil.NewFakeStore()

	remote := testutil.NewFakeRemote()
	remote.SeedOpen("stale remote")

	cmd := &commands.SyncCmd{}
	cmd.SetPrune(true)
	cmd.SetRemoteFactory(func(ctx context.Context, cfg *config.Config) (sync.Remote, error) {
		return remote, nil
	})

	stdout, _, code := runCommand(t, cmd, st, nil, false)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stdout != "synced: 0 created, 0 completed, 1 pruned\n" {
		t.Errorf("unexpected stdout: %q", stdout)
	}
	if len(remote.Open()) != 0 {
		t.Errorf("expected remote to be pruned, got %v", remote.Open())
	}
}

func TestSyncCommand_AuthError(t *testing.T) {
	st := testutil.NewFakeStore()

	cmd := &commands.SyncCmd{}
	cmd.SetRemoteFactory(func(ctx context.Context, cfg *config.Config) (sync.Remote, error) {
		return nil, errors.New("invalid token.json")
	})

	_, stderr, code := runCommand(t, cmd, st, nil, false)

	if code != exitcode.AuthError {
		t.Errorf("expected exit code %d, got %d", exitcode.AuthError, code)
	}
	if stderr != "error: auth error: invalid token.json\n" {
		t.Errorf("unexpected stderr: %q", stderr)
	}
}

func TestSyncCommand_BackendError(t *testing.T) {
	st := testutil.NewFakeStore()

	remote := testutil.NewFakeRemote()
	remote.ListOpenErr = errors.New("network down")

	cmd := &commands.SyncCmd{}
	cmd.SetRemoteFactory(func(ctx context.Context, cfg *config.Config) (sync.Remote, error) {
		return remote, nil
	})

	_, stderr, code := runCommand(t, cmd, st, nil, false)

	if code != exitcode.BackendError {
		t.Errorf("expected exit code %d, got %d", exitcode.BackendError, code)
	}
	if stderr != "error: backend error: network down\n" {
		t.Errorf("unexpected stderr: %q", stderr)
	}
}

func TestSyncCommand_NotLoggedIn(t *testing.T) {
	st := testutil.NewFakeStore()

	// No remote factory: the real backend path checks credentials.
	cmd := &commands.SyncCmd{}
	_, stderr, code := runCommand(t, cmd, st, nil, false)

	if code != exitcode.AuthError {
		t.Errorf("expected exit code %d, got %d", exitcode.AuthError, code)
	}
	if !strings.Contains(stderr, "oauth_client.json not found") {
		t.Errorf("unexpected stderr: %q", stderr)
	}
}
