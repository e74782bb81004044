package commands

import (
	"context"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/travlog/pkg/app"
	"tableflip.dev/travlog/pkg/commands/options"
	"tableflip.dev/travlog/pkg/entry"
	"tableflip.dev/travlog/pkg/logging"
	"tableflip.dev/travlog/pkg/store"
)

var (
	global = &options.GlobalOptions{}
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "travlog",
		Short: base.Wrap80("A travel journal on the command line: memories of past trips and plans for the next ones."),
		// main reports the error once.
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	options.AddGlobalArgs(cmd, global)
	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addAdd(topLevel)
	addList(topLevel)
	addShow(topLevel)
	addEdit(topLevel)
	addRemove(topLevel)
	addClear(topLevel)
	addConvert(topLevel)
	addReschedule(topLevel)
	addCalendar(topLevel)
	addExport(topLevel)
	addWatch(topLevel)
	addUI(topLevel)
	addKey(topLevel)
	addInfo(topLevel)
	addMCP(topLevel)
	addVersion(topLevel)
	addUpgrade(topLevel)
	addCompletions(topLevel)
}

// env is what a command needs to reach the journal.
type env struct {
	Config      store.Config
	Log         zerolog.Logger
	Persistence store.Persistence
	Journal     *app.Journal
}

// open loads configuration, builds the logger and opens the journal.
func open(ctx context.Context) (*env, error) {
	cfg, err := store.LoadConfig()
	if err != nil {
		return nil, err
	}
	log := logging.New(os.Stderr, viper.GetString("log-level"))
	p, err := store.Load(cfg, log)
	if err != nil {
		return nil, err
	}
	j, err := app.Open(ctx, p, app.WithLogger(log))
	if err != nil {
		return nil, err
	}
	return &env{Config: cfg, Log: log, Persistence: p, Journal: j}, nil
}

// tabArg reads an optional tab argument, falling back to the configured
// default tab from the config file. "all" yields the empty type.
func tabArg(args []string) (entry.Type, error) {
	v := viper.GetString("tab")
	if len(args) > 0 {
		v = args[0]
	}
	if v == "" {
		return entry.Memory, nil
	}
	if v == app.All {
		return "", nil
	}
	return entry.ParseType(v)
}

var tabArgs = []string{"memory", "planned", app.All}
