package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"ltask/internal/backend/googletasks"
	"ltask/internal/config"
	"ltask/internal/exitcode"
	"ltask/internal/store"
	"ltask/internal/sync"
)

// RemoteFactory creates a sync.Remote from config.
// Used to inject the remote backend during tests.
type RemoteFactory func(ctx context.Context, cfg *config.Config) (sync.Remote, error)

func init() {
	Register(&SyncCmd{})
}

// SyncCmd implements the sync command: one-way push of the local store
// to the default Google Tasks list.
type SyncCmd struct {
	prune  bool
	remote RemoteFactory
}

// SetPrune sets the prune flag (for testing).
func (c *SyncCmd) SetPrune(prune bool) {
	c.prune = prune
}

// SetRemoteFactory overrides the remote backend (for testing).
func (c *SyncCmd) SetRemoteFactory(f RemoteFactory) {
	c.remote = f
}

func (c *SyncCmd) Name() string      { return "sync" }
func (c *SyncCmd) Aliases() []string { return nil }
func (c *SyncCmd) Synopsis() string  { return "Push tasks to Google Tasks" }
func (c *SyncCmd) Usage() string     { return "ltask sync [common flags] [--prune]" }
func (c *SyncCmd) NeedsStore() bool  { return true }

func (c *SyncCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.BoolVar(&c.prune, "prune", false, "")
}

func (c *SyncCmd) Run(ctx context.Context, cfg *config.Config, st store.Store, args []string, out, errOut io.Writer) int {
	if len(args) > 0 {
		fmt.Fprintf(errOut, "error: unexpected argument: %s\n", args[0])
		return exitcode.UserError
	}

	factory := c.remote
	if factory == nil {
		// Real backend: check credentials up front for friendly errors.
		if !cfg.HasOAuthClient() {
			fmt.Fprintf(errOut, "error: oauth_client.json not found in %s\n", cfg.Dir)
			return exitcode.AuthError
		}
		if !cfg.HasToken() {
			fmt.Fprintln(errOut, "error: not logged in (run: ltask login)")
			return exitcode.AuthError
		}
		factory = func(ctx context.Context, cfg *config.Config) (sync.Remote, error) {
			return googletasks.New(ctx, cfg)
		}
	}

	remote, err := factory(ctx, cfg)
	if err != nil {
		if strings.Contains(err.Error(), "token") || strings.Contains(err.Error(), "oauth") {
			fmt.Fprintf(errOut, "error: auth error: %s\n", err)
			return exitcode.AuthError
		}
		fmt.Fprintf(errOut, "error: backend error: %v\n", err)
		return exitcode.BackendError
	}

	local, err := st.List(ctx, store.All)
	if err != nil {
		fmt.Fprintf(errOut, "error: store error: %v\n", err)
		return exitcode.BackendError
	}

	created, completed, pruned, err := sync.Push(ctx, remote, local, c.prune)
	if err != nil {
		fmt.Fprintf(errOut, "error: backend error: %v\n", err)
		return exitcode.BackendError
	}

	if !cfg.Quiet {
		fmt.Fprintf(out, "synced: %d created, %d completed, %d pruned\n", created, completed, pruned)
	}
	return exitcode.Success
}
