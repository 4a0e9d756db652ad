package commands

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/api/classroom/v1"
	"google.golang.org/api/sheets/v4"
)

const (
	SHEETS    = sheets.SpreadsheetsScope
	CLASSROOM = "https://www.googleapis.com/auth/classroom"
)

var SCOPES = []string{
	sheets.SpreadsheetsScope,
	classroom.ClassroomCoursesScope,
	classroom.ClassroomRostersScope,
	classroom.ClassroomProfileEmailsScope,
}

func clear(google *sheets.Service, spreadsheet *sheets.Spreadsheet, ranges []string, ctx context.Context) error {
	rq := sheets.BatchClearValuesRequest{
		Ranges: ranges,
	}

	if _, err := google.Spreadsheets.Values.BatchClear(spreadsheet.SpreadsheetId, &rq).Context(ctx).Do(); err != nil {
		return err
	}

	return nil
}

// a1 returns the A1 notation for a cell in a worksheet. Row and column are 1-based.
func a1(sheet string, row, column int) string {
	return fmt.Sprintf("%v!%v%v", quote(sheet), columnName(column), row)
}

// columnName converts a 1-based column number to the worksheet column letters
// e.g. 1 -> A, 26 -> Z, 27 -> AA.
func columnName(column int) string {
	name := ""
	for column > 0 {
		column--
		name = string(rune('A'+column%26)) + name
		column /= 26
	}

	return name
}

func quote(sheet string) string {
	return "'" + strings.ReplaceAll(sheet, "'", "''") + "'"
}
