package commands

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"google.golang.org/api/classroom/v1"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"github.com/uhppoted/uhppoted-app-classroom/courses"
)

var SyncCmd = Sync{
	command: command{
		workdir:     DEFAULT_WORKDIR,
		credentials: DEFAULT_CREDENTIALS,
		tokens:      "",
		url:         "",
		debug:       false,
	},

	sheet:    "Sheet1",
	logSheet: "Sheet2",
	exclude:  strings.Join(courses.DefaultExclusions, ","),
	rate:     5,
	dryrun:   false,
}

type Sync struct {
	command
	sheet    string
	logSheet string
	exclude  string
	rate     float64
	dryrun   bool
}

type syncOptions struct {
	Credentials string  `flag:"credentials" validate:"required"`
	URL         string  `flag:"url" validate:"required,url"`
	Sheet       string  `flag:"sheet" validate:"required"`
	LogSheet    string  `flag:"log-sheet" validate:"required,nefield=Sheet"`
	Rate        float64 `flag:"rate" validate:"gte=0"`
}

func (cmd *Sync) Name() string {
	return "sync"
}

func (cmd *Sync) Description() string {
	return "Creates or updates the Google Classroom courses listed in a Google Sheets worksheet"
}

func (cmd *Sync) Usage() string {
	return "--credentials <file> --url <url>"
}

func (cmd *Sync) Help() {
	fmt.Println()
	fmt.Printf("  Usage: %s [--debug] sync [options] --url <URL> [--sheet <sheet>] [--log-sheet <sheet>]\n", APP)
	fmt.Println()
	fmt.Println("  Creates or updates a Google Classroom course for each row of a Google Sheets worksheet, assigns")
	fmt.Println("  the course lead as a teacher and enrolls the listed students. The actions taken are recorded")
	fmt.Println("  in the log worksheet.")
	fmt.Println()

	helpOptions(cmd.FlagSet())

	fmt.Println()
	fmt.Println("  Examples:")
	fmt.Println(`    uhppoted-app-classroom sync --credentials "credentials.json" \`)
	fmt.Println(`                                --url "https://docs.google.com/spreadsheets/d/1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms" \`)
	fmt.Println(`                                --sheet "Courses" --log-sheet "Log"`)
	fmt.Println()
	fmt.Println(`    uhppoted-app-classroom --debug sync --credentials "credentials.json" \`)
	fmt.Println(`                                        --url "https://docs.google.com/spreadsheets/d/1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms" \`)
	fmt.Println(`                                        --dryrun`)
	fmt.Println()
}

func (cmd *Sync) FlagSet() *flag.FlagSet {
	flagset := cmd.flagset("sync")

	flagset.StringVar(&cmd.sheet, "sheet", cmd.sheet, "Worksheet with the list of courses")
	flagset.StringVar(&cmd.logSheet, "log-sheet", cmd.logSheet, "Worksheet for the audit log")
	flagset.StringVar(&cmd.exclude, "exclude", cmd.exclude, "Comma separated list of keywords for courses to skip")
	flagset.Float64Var(&cmd.rate, "rate", cmd.rate, "Maximum Google Classroom API requests per second (0 for unlimited)")
	flagset.BoolVar(&cmd.dryrun, "dryrun", cmd.dryrun, "Logs the changes without updating Google Classroom or the worksheets")

	return flagset
}

func (cmd *Sync) Execute(args ...any) error {
	if len(args) > 0 {
		if options, ok := args[0].(*Options); ok {
			cmd.debug = options.Debug
		}
	}

	courses.Debug = cmd.debug

	// ... check parameters
	if err := cmd.validate(); err != nil {
		return err
	}

	spreadsheetId, err := spreadsheetID(cmd.url)
	if err != nil {
		return err
	}

	if cmd.debug {
		debugf("Spreadsheet - ID:%s  sheet:%s  log:%s", spreadsheetId, cmd.sheet, cmd.logSheet)
	}

	ctx := context.Background()

	// ... authorise
	client, err := authorize(cmd.credentials, SCOPES, cmd.tokensDir())
	if err != nil {
		return fmt.Errorf("authentication/authorization error (%v)", err)
	}

	google, err := sheets.NewService(ctx, option.WithHTTPClient(client))
	if err != nil {
		return fmt.Errorf("unable to create new Sheets client (%v)", err)
	}

	gclass, err := classroom.NewService(ctx, option.WithHTTPClient(client))
	if err != nil {
		return fmt.Errorf("unable to create new Classroom client (%v)", err)
	}

	spreadsheet, err := getSpreadsheet(google, spreadsheetId)
	if err != nil {
		return err
	}

	main, err := newWorksheet(google, spreadsheet, cmd.sheet)
	if err != nil {
		return err
	}

	audit, err := newWorksheet(google, spreadsheet, cmd.logSheet)
	if err != nil {
		return err
	}

	remote := newClassroom(gclass, cmd.rate)
	batch := cmd.batch(main, audit, remote, remote)

	summary, err := batch.Run(ctx)
	if err != nil {
		return err
	}

	infof("run %v  created:%v  updated:%v  unchanged:%v  skipped:%v  errors:%v", summary.Run, summary.Created, summary.Updated, summary.Unchanged, summary.Skipped, summary.Errors)

	for _, err := range summary.Failures {
		warnf("%v", err)
	}

	return nil
}

func (cmd *Sync) validate() error {
	options := syncOptions{
		Credentials: strings.TrimSpace(cmd.credentials),
		URL:         strings.TrimSpace(cmd.url),
		Sheet:       strings.TrimSpace(cmd.sheet),
		LogSheet:    strings.TrimSpace(cmd.logSheet),
		Rate:        cmd.rate,
	}

	return validateOptions(options)
}

func (cmd *Sync) batch(table courses.Table, log courses.AuditLog, remote courses.Classroom, identity courses.Identity) *courses.Batch {
	batch := courses.Batch{
		Sheet:     table,
		Log:       log,
		Classroom: remote,
		Identity:  identity,
		Exclude:   keywords(cmd.exclude),
	}

	if cmd.dryrun {
		infof("dryrun  Google Classroom and worksheets will not be updated")

		batch.Sheet = dryrunTable{table}
		batch.Log = dryrunLog{log}
		batch.Classroom = dryrunClassroom{remote}
	}

	return &batch
}

func keywords(s string) []string {
	list := []string{}
	for _, v := range strings.Split(s, ",") {
		if keyword := strings.TrimSpace(v); keyword != "" {
			list = append(list, keyword)
		}
	}

	return list
}
