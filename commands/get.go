package commands

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

var GetCmd = Get{
	command: command{
		workdir:     DEFAULT_WORKDIR,
		credentials: DEFAULT_CREDENTIALS,
		tokens:      "",
		url:         "",
		debug:       false,
	},

	area: "Sheet1!A1:Z",
	file: time.Now().Format("courses-2006-01-02T150405.tsv"),
}

type Get struct {
	command
	area string
	file string
}

type getOptions struct {
	Credentials string `flag:"credentials" validate:"required"`
	URL         string `flag:"url" validate:"required,url"`
	Range       string `flag:"range" validate:"required"`
	File        string `flag:"file" validate:"required"`
}

func (cmd *Get) Name() string {
	return "get"
}

func (cmd *Get) Description() string {
	return "Retrieves the course list from a Google Sheets worksheet and stores it to a local file"
}

func (cmd *Get) Usage() string {
	return "--credentials <file> --url <url> --file <file>"
}

func (cmd *Get) Help() {
	fmt.Println()
	fmt.Printf("  Usage: %s [--debug] get [options] --url <URL> --range <range> --file <file>\n", APP)
	fmt.Println()
	fmt.Println("  Downloads the course list from a Google Sheets worksheet to a TSV file")
	fmt.Println()

	helpOptions(cmd.FlagSet())

	fmt.Println()
	fmt.Println("  Examples:")
	fmt.Println(`    uhppoted-app-classroom --debug get --credentials "credentials.json" \`)
	fmt.Println(`                                       --url "https://docs.google.com/spreadsheets/d/1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms" \`)
	fmt.Println(`                                       --range "Courses!A1:H" \`)
	fmt.Println(`                                       --file "courses.tsv"`)
	fmt.Println()
}

func (cmd *Get) FlagSet() *flag.FlagSet {
	flagset := cmd.flagset("get")

	flagset.StringVar(&cmd.area, "range", cmd.area, "Spreadsheet range e.g. 'Courses!A1:H'")
	flagset.StringVar(&cmd.file, "file", cmd.file, "TSV file name. Defaults to 'courses-<yyyy-mm-ddTHHmmss>.tsv'")

	return flagset
}

func (cmd *Get) Execute(args ...any) error {
	if len(args) > 0 {
		if options, ok := args[0].(*Options); ok {
			cmd.debug = options.Debug
		}
	}

	// ... check parameters
	options := getOptions{
		Credentials: strings.TrimSpace(cmd.credentials),
		URL:         strings.TrimSpace(cmd.url),
		Range:       strings.TrimSpace(cmd.area),
		File:        strings.TrimSpace(cmd.file),
	}

	if err := validateOptions(options); err != nil {
		return err
	}

	spreadsheet, err := spreadsheetID(cmd.url)
	if err != nil {
		return err
	}

	area := options.Range

	if cmd.debug {
		debugf("Spreadsheet - ID:%s  range:%s", spreadsheet, area)
	}

	ctx := context.Background()

	// ... authorise
	client, err := authorize(cmd.credentials, []string{SHEETS}, cmd.tokensDir())
	if err != nil {
		return fmt.Errorf("authentication/authorization error (%v)", err)
	}

	google, err := sheets.NewService(ctx, option.WithHTTPClient(client))
	if err != nil {
		return fmt.Errorf("unable to create new Sheets client (%v)", err)
	}

	response, err := google.Spreadsheets.Values.Get(spreadsheet, area).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("unable to retrieve data from sheet (%v)", err)
	}

	if len(response.Values) == 0 {
		return fmt.Errorf("no data in spreadsheet/range")
	}

	tmp, err := os.CreateTemp(os.TempDir(), "courses")
	if err != nil {
		return err
	}

	defer func() {
		tmp.Close()
		os.Remove(tmp.Name())
	}()

	if err := sheetToTSV(tmp, response); err != nil {
		return fmt.Errorf("error creating TSV file (%v)", err)
	}

	tmp.Close()

	dir := filepath.Dir(options.File)
	if err := os.MkdirAll(dir, 0770); err != nil {
		return err
	}

	if err := os.Rename(tmp.Name(), options.File); err != nil {
		return err
	}

	infof("Retrieved course list to file %s", options.File)

	return nil
}
