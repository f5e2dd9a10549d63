package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"ltask/internal/config"
	"ltask/internal/exitcode"
	"ltask/internal/store"
)

func init() {
	Register(&HelpCmd{})
}

// HelpCmd implements the help command.
type HelpCmd struct{}

func (c *HelpCmd) Name() string      { return "help" }
func (c *HelpCmd) Aliases() []string { return nil }
func (c *HelpCmd) Synopsis() string  { return "Print usage" }
func (c *HelpCmd) Usage() string     { return "ltask help" }
func (c *HelpCmd) NeedsStore() bool  { return false }

func (c *HelpCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *HelpCmd) Run(ctx context.Context, cfg *config.Config, st store.Store, args []string, out, errOut io.Writer) int {
	fmt.Fprint(out, helpText)
	return exitcode.Success
}

const helpText = `Usage:
  ltask                                          List all tasks
  ltask add [common flags] <description...>      Add a task
  ltask list [common flags] [--filter <status>]  List tasks (status: pending, completed)
  ltask complete [common flags] <task_id>        Mark a task completed (alias: done)
  ltask remove [common flags] <task_id>          Delete a task (alias: rm)
  ltask sync [common flags] [--prune]            Push tasks to Google Tasks
  ltask login [common flags]                     Authenticate with Google
  ltask logout [common flags]                    Remove stored credentials
  ltask help
  ltask version

Common flags:
  --config <dir>   Override config directory
  --quiet          Suppress informational output
  --debug          Print debug logs to stderr
`
