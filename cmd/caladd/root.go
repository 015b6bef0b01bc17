package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"caladd/internal/config"
	appLog "caladd/internal/log"
	"caladd/internal/model"
	"caladd/internal/publish"
	"caladd/internal/resolve"
)

const version = "0.1.0"

// deps holds what run needs from the outside world.
type deps struct {
	stdout       io.Writer
	stderr       io.Writer
	newPublisher func(publish.Options) (publish.Publisher, error)
}

func defaultDeps() deps {
	return deps{
		stdout:       os.Stdout,
		stderr:       os.Stderr,
		newPublisher: publish.New,
	}
}

type flagConfig struct {
	end        string
	duration   string
	configPath string
	dryRun     bool
	verbose    bool
}

// run executes the CLI and returns the process exit code.
func run(ctx context.Context, args []string, d deps) int {
	cmd := newRootCmd(d)
	cmd.SetArgs(args)
	cmd.SetOut(d.stdout)
	cmd.SetErr(d.stderr)

	if err := cmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(d.stderr, "Error:", err)
		switch {
		case errors.Is(err, resolve.ErrInvalidDateFormat):
			fmt.Fprintln(d.stderr, resolve.DateFormatHint)
		case errors.Is(err, resolve.ErrInvalidDurationFormat):
			fmt.Fprintln(d.stderr, resolve.DurationFormatHint)
		}
		return 1
	}
	return 0
}

func newRootCmd(d deps) *cobra.Command {
	var flags flagConfig

	cmd := &cobra.Command{
		Use:   "caladd [flags] <start> <title>",
		Short: "Add an event to your calendar",
		Long: `Add a single event to your calendar.

<start> and --end accept YYYY-MM-DD (all-day), YYYY-MM-DDTHH:MM or
"YYYY-MM-DD HH:MM" (timed). Timed events default to one hour unless
--end or --duration is given; --end wins when both are.`,
		Example: `  caladd 2025-01-01 "New year"
  caladd 2025-02-03 -e 2025-02-05 "Conference"
  caladd "2025-02-03 14:15" -d 30m "Dentist"`,
		Version:       version,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return addEvent(cmd.Context(), d, flags, args[0], args[1])
		},
	}

	f := cmd.Flags()
	f.StringVarP(&flags.end, "end", "e", "", "end date/time of the event")
	f.StringVarP(&flags.duration, "duration", "d", "", "duration of a timed event, e.g. 30m or 2h")
	f.StringVarP(&flags.configPath, "config", "c", config.DefaultPath(), "path to config file")
	f.BoolVarP(&flags.dryRun, "dry-run", "n", false, "resolve and print the event without saving it")
	f.BoolVarP(&flags.verbose, "verbose", "v", false, "enable debug logging")

	return cmd
}

func addEvent(ctx context.Context, d deps, flags flagConfig, start, title string) error {
	if flags.verbose {
		appLog.SetLevel(appLog.LevelDebug)
	}

	// Bad input fails here, before config is touched or anything is written.
	r, err := resolve.Resolve(start, flags.end, flags.duration)
	if err != nil {
		return err
	}
	ev := model.NewEvent(title, r)

	appLog.Debug("event resolved",
		"title", title,
		"start", r.Start,
		"end", r.End,
		"all_day", r.AllDay,
	)

	if flags.dryRun {
		fmt.Fprintf(d.stdout, "%s: %s\n", ev.Title, ev.Range)
		return nil
	}

	if err := config.LoadDotEnv(""); err != nil {
		appLog.Error("failed to load .env", err)
	}

	conf, err := config.Load(flags.configPath)
	if err != nil {
		return fmt.Errorf("load config %s: %w", flags.configPath, err)
	}
	if !flags.verbose {
		appLog.SetLevel(appLog.ParseLevel(conf.LogLevel))
	}

	appLog.Debug("effective config",
		"config_path", flags.configPath,
		"publisher", conf.Publisher,
		"ics_path", conf.ICSPath,
		"calendar", conf.Calendar,
		"timeout", conf.Timeout,
	)

	pub, err := d.newPublisher(conf.PublishOptions())
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, conf.Timeout)
	defer cancel()

	id, err := pub.Publish(ctx, ev)
	if err != nil {
		return err
	}

	appLog.Info("event created", "id", id, "publisher", conf.Publisher)
	fmt.Fprintf(d.stdout, "%s: %s (%s)\n", ev.Title, ev.Range, id)
	return nil
}
