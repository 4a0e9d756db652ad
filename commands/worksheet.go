package commands

import (
	"context"
	"fmt"

	"google.golang.org/api/sheets/v4"

	"github.com/uhppoted/uhppoted-app-classroom/courses"
)

// worksheet implements the course table and audit log over a single Google Sheets
// worksheet. The header is always row 1, starting in column A.
type worksheet struct {
	google      *sheets.Service
	spreadsheet *sheets.Spreadsheet
	sheet       *sheets.Sheet
	name        string
}

func newWorksheet(google *sheets.Service, spreadsheet *sheets.Spreadsheet, name string) (*worksheet, error) {
	sheet, err := getSheet(spreadsheet, name)
	if err != nil {
		return nil, err
	}

	return &worksheet{
		google:      google,
		spreadsheet: spreadsheet,
		sheet:       sheet,
		name:        sheet.Properties.Title,
	}, nil
}

func (w *worksheet) ReadAll(ctx context.Context) ([][]string, error) {
	response, err := w.google.Spreadsheets.Values.Get(w.spreadsheet.SpreadsheetId, quote(w.name)).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("unable to retrieve data from sheet '%v' (%w)", w.name, err)
	}

	return makeRows(response.Values), nil
}

func (w *worksheet) Header(ctx context.Context) ([]string, error) {
	response, err := w.google.Spreadsheets.Values.Get(w.spreadsheet.SpreadsheetId, quote(w.name)+"!1:1").Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("unable to retrieve column headers from sheet '%v' (%w)", w.name, err)
	}

	if rows := makeRows(response.Values); len(rows) > 0 {
		return rows[0], nil
	}

	return []string{}, nil
}

// EnsureColumn adds a header cell after the last column if there is no column with
// the name, extending the grid if it is already full.
func (w *worksheet) EnsureColumn(ctx context.Context, name string) (bool, error) {
	header, err := w.Header(ctx)
	if err != nil {
		return false, err
	}

	for _, v := range header {
		if normalise(v) == normalise(name) {
			return false, nil
		}
	}

	column := len(header) + 1

	if grid := w.sheet.Properties.GridProperties; grid != nil && int64(column) > grid.ColumnCount {
		rq := sheets.BatchUpdateSpreadsheetRequest{
			Requests: []*sheets.Request{
				&sheets.Request{
					AppendDimension: &sheets.AppendDimensionRequest{
						SheetId:   w.sheet.Properties.SheetId,
						Dimension: "COLUMNS",
						Length:    1,
					},
				},
			},
		}

		if _, err := w.google.Spreadsheets.BatchUpdate(w.spreadsheet.SpreadsheetId, &rq).Context(ctx).Do(); err != nil {
			return false, fmt.Errorf("error adding column to sheet '%v' (%w)", w.name, err)
		}

		grid.ColumnCount++
	}

	cell := sheets.ValueRange{
		Values: [][]interface{}{
			[]interface{}{name},
		},
	}

	if _, err := w.google.Spreadsheets.Values.Update(w.spreadsheet.SpreadsheetId, a1(w.name, 1, column), &cell).
		ValueInputOption("RAW").
		Context(ctx).
		Do(); err != nil {
		return false, fmt.Errorf("error writing column header to sheet '%v' (%w)", w.name, err)
	}

	return true, nil
}

// WriteCells updates all the cells in a single batch. Values are written RAW so that
// course IDs are not reinterpreted as numbers.
func (w *worksheet) WriteCells(ctx context.Context, writes []courses.PendingWrite) error {
	rq := sheets.BatchUpdateValuesRequest{
		ValueInputOption: "RAW",
		Data:             []*sheets.ValueRange{},
	}

	for _, c := range writes {
		rq.Data = append(rq.Data, &sheets.ValueRange{
			Range: a1(w.name, c.Row, c.Column),
			Values: [][]interface{}{
				[]interface{}{c.Value},
			},
		})
	}

	if _, err := w.google.Spreadsheets.Values.BatchUpdate(w.spreadsheet.SpreadsheetId, &rq).Context(ctx).Do(); err != nil {
		return err
	}

	return nil
}

func (w *worksheet) EnsureHeader(ctx context.Context, header []string) (bool, error) {
	response, err := w.google.Spreadsheets.Values.Get(w.spreadsheet.SpreadsheetId, quote(w.name)).Context(ctx).Do()
	if err != nil {
		return false, fmt.Errorf("unable to retrieve data from log sheet (%w)", err)
	}

	if len(response.Values) > 0 {
		return false, nil
	}

	if err := w.append(ctx, [][]string{header}); err != nil {
		return false, fmt.Errorf("error writing header to log sheet (%w)", err)
	}

	return true, nil
}

func (w *worksheet) Append(ctx context.Context, entries []courses.LogEntry) error {
	return w.append(ctx, logRows(entries))
}

func (w *worksheet) append(ctx context.Context, rows [][]string) error {
	values := sheets.ValueRange{
		Values: makeValues(rows),
	}

	if _, err := w.google.Spreadsheets.Values.Append(w.spreadsheet.SpreadsheetId, quote(w.name), &values).
		ValueInputOption("RAW").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do(); err != nil {
		return err
	}

	return nil
}

func logRows(entries []courses.LogEntry) [][]string {
	rows := [][]string{}

	for _, e := range entries {
		rows = append(rows, []string{
			e.Timestamp.Format(courses.TimestampFormat),
			e.CourseName,
			string(e.Action),
			e.CourseID,
			e.Notes,
		})
	}

	return rows
}
