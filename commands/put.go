package commands

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

var PutCmd = Put{
	command: command{
		workdir:     DEFAULT_WORKDIR,
		credentials: DEFAULT_CREDENTIALS,
		tokens:      "",
		url:         "",
		debug:       false,
	},

	area: "",
	file: "",
}

type Put struct {
	command
	area string
	file string
}

type putOptions struct {
	Credentials string `flag:"credentials" validate:"required"`
	URL         string `flag:"url" validate:"required,url"`
	Range       string `flag:"range" validate:"required"`
	File        string `flag:"file" validate:"required"`
}

func (cmd *Put) Name() string {
	return "put"
}

func (cmd *Put) Description() string {
	return "Uploads a TSV course list to a Google Sheets worksheet"
}

func (cmd *Put) Usage() string {
	return "--credentials <file> --url <url> --range <range> --file <file>"
}

func (cmd *Put) Help() {
	fmt.Println()
	fmt.Printf("  Usage: %s [--debug] put [options] --credentials <credentials> --url <URL> --range <range> --file <file>\n", APP)
	fmt.Println()
	fmt.Println("  Uploads a TSV course list to a Google Sheets worksheet, replacing the existing contents of the range")
	fmt.Println()

	helpOptions(cmd.FlagSet())

	fmt.Println()
	fmt.Println("  Examples:")
	fmt.Println(`    uhppoted-app-classroom --debug put --credentials "credentials.json" \`)
	fmt.Println(`                                       --url "https://docs.google.com/spreadsheets/d/1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms" \`)
	fmt.Println(`                                       --range "Courses!A1:H" \`)
	fmt.Println(`                                       --file "courses.tsv"`)
	fmt.Println()
}

func (cmd *Put) FlagSet() *flag.FlagSet {
	flagset := cmd.flagset("put")

	flagset.StringVar(&cmd.area, "range", cmd.area, "Spreadsheet range e.g. 'Courses!A1:H'")
	flagset.StringVar(&cmd.file, "file", cmd.file, "TSV file")

	return flagset
}

func (cmd *Put) Execute(args ...any) error {
	if len(args) > 0 {
		if options, ok := args[0].(*Options); ok {
			cmd.debug = options.Debug
		}
	}

	// ... check parameters
	options := putOptions{
		Credentials: strings.TrimSpace(cmd.credentials),
		URL:         strings.TrimSpace(cmd.url),
		Range:       strings.TrimSpace(cmd.area),
		File:        strings.TrimSpace(cmd.file),
	}

	if err := validateOptions(options); err != nil {
		return err
	}

	spreadsheetId, err := spreadsheetID(cmd.url)
	if err != nil {
		return err
	}

	region, err := parseRange(options.Range)
	if err != nil {
		return err
	}

	if cmd.debug {
		debugf("Spreadsheet - ID:%s  range:%s", spreadsheetId, region)
	}

	f, err := os.Open(options.File)
	if err != nil {
		return err
	}

	defer f.Close()

	header, data, err := tsvToSheet(f, *region)
	if err != nil {
		return fmt.Errorf("invalid TSV file (%v)", err)
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

	spreadsheet, err := getSpreadsheet(google, spreadsheetId)
	if err != nil {
		return err
	}

	if err := clear(google, spreadsheet, []string{region.String()}, ctx); err != nil {
		return fmt.Errorf("error clearing range %v (%v)", region, err)
	}

	rq := sheets.BatchUpdateValuesRequest{
		ValueInputOption: "RAW",
		Data:             []*sheets.ValueRange{header, data},
	}

	if _, err := google.Spreadsheets.Values.BatchUpdate(spreadsheet.SpreadsheetId, &rq).Context(ctx).Do(); err != nil {
		return err
	}

	infof("Uploaded TSV file %v to Google Sheets %v", options.File, region)

	return nil
}
