package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"github.com/rs/zerolog"

	"github.com/Karaytumut20/dailyspark/internal/cli"
	"github.com/Karaytumut20/dailyspark/internal/storage"
	"github.com/Karaytumut20/dailyspark/internal/tracker"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Storage file path." type:"path" default:"~/.config/dailyspark/dailyspark.db"`
	Debug   bool   `help:"Enable debug logging."`

	Init     cli.InitCmd     `cmd:"" help:"Initialize dailyspark storage."`
	Tui      cli.TuiCmd      `cmd:"" help:"Launch the interactive TUI." default:"1"`
	Today    cli.TodayCmd    `cmd:"" help:"Show (and assign) today's challenge."`
	Complete cli.CompleteCmd `cmd:"" help:"Mark today's challenge as completed."`
	History  cli.HistoryCmd  `cmd:"" help:"List completed challenges."`
	Stats    cli.StatsCmd    `cmd:"" help:"Show completion statistics."`
	Goal     struct {
		Add    cli.GoalAddCmd    `cmd:"" help:"Add a personal goal."`
		List   cli.GoalListCmd   `cmd:"" help:"List personal goals."`
		Done   cli.GoalDoneCmd   `cmd:"" help:"Toggle a goal's completed state."`
		Delete cli.GoalDeleteCmd `cmd:"" help:"Delete a goal."`
	} `cmd:"" help:"Manage personal goals."`
	Profile struct {
		Set  cli.ProfileSetCmd  `cmd:"" help:"Set your level and focus."`
		Show cli.ProfileShowCmd `cmd:"" help:"Show the stored profile."`
	} `cmd:"" help:"Manage your profile."`
	Backup struct {
		Create  cli.BackupCreateCmd  `cmd:"" help:"Create a backup of the storage file."`
		List    cli.BackupListCmd    `cmd:"" help:"List available backups."`
		Restore cli.BackupRestoreCmd `cmd:"" help:"Restore storage from a backup."`
	} `cmd:"" help:"Manage storage backups."`
	Reset    cli.ResetCmd  `cmd:"" help:"Erase all stored data."`
	Doctor   cli.DoctorCmd `cmd:"" help:"Run storage health checks."`
	DebugCmd cli.DebugCmd  `cmd:"" name:"debug" help:"Debugging helpers."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("dailyspark"),
		kong.Description("Daily challenge and personal goal companion"),
		kong.UsageOnError(),
		kong.Vars{"version": "v0.1.0"},
	)

	level := zerolog.WarnLevel
	if CLI.Debug {
		level = zerolog.DebugLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		With().Timestamp().Logger().Level(level)

	// Determine storage type based on extension
	var store storage.Provider
	if len(CLI.Config) > 5 && CLI.Config[len(CLI.Config)-5:] == ".json" {
		store = storage.NewJSONStore(CLI.Config)
	} else {
		store = storage.NewSQLiteStore(CLI.Config)
	}

	appCtx := &cli.Context{
		Store:   store,
		Tracker: tracker.New(store, logger),
		Logger:  logger,
	}

	err := ctx.Run(appCtx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
