// Command calctl drives the eventcal API from a terminal: it shows the month
// grid and a day's events, and creates, edits or deletes events.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"eventcal/src-client/api"
	"eventcal/src-client/app"
	"eventcal/src-client/calendar"
	"eventcal/src-client/render"

	"github.com/joho/godotenv"
	"github.com/lmittmann/tint"
	"github.com/olebedev/when"
)

const usage = `usage: calctl <command> [flags]

commands:
  month  [-date WHEN]                  show the month grid
  day    [-date WHEN]                  show the month grid and a day's events
  add    -title T [-date WHEN] [-start HH:MM] [-end HH:MM] [-memo M]
  edit   -id N [-date WHEN] [-title T] [-start HH:MM] [-end HH:MM] [-memo M]
  delete -id N [-date WHEN]

WHEN is YYYY-MM-DD or plain English ("tomorrow", "next friday").
For edit and delete, -date must fall in the event's month.
EVENTCAL_API sets the server (default http://localhost:8080/api).`

func init() {
	if err := godotenv.Load(); err != nil {
		slog.Debug(err.Error())
	}
	slog.SetDefault(slog.New(
		tint.NewHandler(os.Stderr, &tint.Options{
			Level:      slog.LevelInfo,
			TimeFormat: time.Kitchen,
		}),
	))
}

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(2)
	}

	baseURL := os.Getenv("EVENTCAL_API")
	if baseURL == "" {
		baseURL = "http://localhost:8080/api"
	}
	loc := time.Local
	if tz := os.Getenv("TIMEZONE"); tz != "" {
		var err error
		if loc, err = time.LoadLocation(tz); err != nil {
			slog.Error("invalid timezone", "timezone", tz, "error", err)
			os.Exit(1)
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	c := &cli{
		api:    api.NewClient(baseURL, nil),
		when:   newWhenParser(),
		now:    time.Now(),
		loc:    loc,
		stdout: os.Stdout,
		stderr: os.Stderr,
	}
	if err := c.run(ctx, os.Args[1], os.Args[2:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		slog.Error(os.Args[1]+" failed", "error", err)
		os.Exit(1)
	}
}

type cli struct {
	api    app.EventAPI
	when   *when.Parser
	now    time.Time
	loc    *time.Location
	stdout io.Writer
	stderr io.Writer
}

// eventFlags are the dialog fields settable from the command line. Nil
// pointers are fields the user didn't pass.
type eventFlags struct {
	id    *int64
	date  *string
	title *string
	start *string
	end   *string
	memo  *string
}

func (c *cli) flagSet(name string, withID, withFields bool) (*flag.FlagSet, eventFlags) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(c.stderr)
	var f eventFlags
	f.date = fs.String("date", "", "day, YYYY-MM-DD or plain English")
	if withID {
		f.id = fs.Int64("id", 0, "event id")
	}
	if withFields {
		f.title = fs.String("title", "", "event title")
		f.start = fs.String("start", "", "start time, HH:MM")
		f.end = fs.String("end", "", "end time, HH:MM")
		f.memo = fs.String("memo", "", "free text memo")
	}
	return fs, f
}

func (c *cli) run(ctx context.Context, command string, args []string) error {
	var failure error
	notifier := app.NotifierFunc(func(msg string) {
		failure = errors.New(msg)
	})

	switch command {
	case "month", "day":
		fs, f := c.flagSet(command, false, false)
		if err := fs.Parse(args); err != nil {
			return err
		}
		ctrl, err := c.open(ctx, notifier, *f.date)
		if err != nil {
			return err
		}
		if failure != nil {
			return failure
		}
		view := render.NewView(ctrl.State())
		if command == "month" {
			return render.TextGrid(c.stdout, view)
		}
		return render.Text(c.stdout, view)

	case "add":
		fs, f := c.flagSet(command, false, true)
		if err := fs.Parse(args); err != nil {
			return err
		}
		ctrl, err := c.open(ctx, notifier, *f.date)
		if err != nil {
			return err
		}
		if failure != nil {
			return failure
		}
		state := ctrl.Dispatch(ctx, calendar.OpenCreate{})
		form := applyFlags(state.Dialog.Form, f, fs)
		ctrl.Dispatch(ctx, calendar.Submit{Form: form})
		if failure != nil {
			return failure
		}
		fmt.Fprintf(c.stdout, "created %q on %s\n", form.Title, form.Date)
		return nil

	case "edit", "delete":
		fs, f := c.flagSet(command, true, command == "edit")
		if err := fs.Parse(args); err != nil {
			return err
		}
		if *f.id <= 0 {
			return fmt.Errorf("-id is required")
		}
		ctrl, err := c.open(ctx, notifier, *f.date)
		if err != nil {
			return err
		}
		if failure != nil {
			return failure
		}
		state := ctrl.Dispatch(ctx, calendar.OpenEdit{ID: *f.id})
		if state.Dialog.Mode != calendar.DialogEditingExisting {
			return fmt.Errorf("event #%d not found in %s", *f.id, calendar.MonthToken(state.Current, c.loc))
		}
		verb := "updated"
		if command == "delete" {
			verb = "deleted"
			ctrl.Dispatch(ctx, calendar.Delete{})
		} else {
			ctrl.Dispatch(ctx, calendar.Submit{Form: applyFlags(state.Dialog.Form, f, fs)})
		}
		if failure != nil {
			return failure
		}
		fmt.Fprintf(c.stdout, "%s #%d\n", verb, *f.id)
		return nil
	}

	fmt.Fprintln(c.stderr, usage)
	return fmt.Errorf("unknown command %q", command)
}

// open loads the month of dateText with that day selected.
func (c *cli) open(ctx context.Context, notifier app.Notifier, dateText string) (*app.Controller, error) {
	day, err := resolveDay(c.when, dateText, c.now, c.loc)
	if err != nil {
		return nil, err
	}
	ctrl := app.NewController(ctx, c.api, notifier, day, c.loc)
	ctrl.Dispatch(ctx, calendar.SelectDay{Day: day})
	return ctrl, nil
}

// applyFlags overwrites the prefilled form with the flags actually passed.
// -date only picks the month for edit, so it never moves the event.
func applyFlags(form calendar.Form, f eventFlags, fs *flag.FlagSet) calendar.Form {
	fs.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "title":
			form.Title = *f.title
		case "start":
			form.Start = *f.start
		case "end":
			form.End = *f.end
		case "memo":
			form.Memo = *f.memo
		}
	})
	return form
}
