package commands

import (
	"encoding/csv"
	"fmt"
	"io"
	"regexp"
	"slices"
	"strconv"

	"google.golang.org/api/sheets/v4"

	"github.com/uhppoted/uhppoted-app-classroom/courses"
)

// area is a worksheet range. A zero bottom row is an open ended range.
type area struct {
	sheet  string
	left   string
	top    int
	right  string
	bottom int
}

func parseRange(s string) (*area, error) {
	match := regexp.MustCompile(`^(.+?)!([a-zA-Z]+)([0-9]+):([a-zA-Z]+)([0-9]+)?$`).FindStringSubmatch(s)
	if len(match) < 5 {
		return nil, fmt.Errorf("Invalid spreadsheet range '%s'", s)
	}

	top, err := strconv.Atoi(match[3])
	if err != nil || top < 1 {
		return nil, fmt.Errorf("Invalid spreadsheet range '%s'", s)
	}

	bottom := 0
	if match[5] != "" {
		if bottom, err = strconv.Atoi(match[5]); err != nil || bottom < top {
			return nil, fmt.Errorf("Invalid spreadsheet range '%s'", s)
		}
	}

	return &area{
		sheet:  match[1],
		left:   match[2],
		top:    top,
		right:  match[4],
		bottom: bottom,
	}, nil
}

func (a area) String() string {
	if a.bottom > 0 {
		return fmt.Sprintf("%s!%s%v:%s%v", a.sheet, a.left, a.top, a.right, a.bottom)
	}

	return fmt.Sprintf("%s!%s%v:%s", a.sheet, a.left, a.top, a.right)
}

// sheetToTSV writes the course worksheet as TSV, with the recognised columns first
// in a fixed order followed by any other columns. Rows without a course name are
// dropped.
func sheetToTSV(f io.Writer, data *sheets.ValueRange) error {
	rows := makeRows(data.Values)
	if len(rows) == 0 {
		return fmt.Errorf("Empty sheet")
	}

	columns, err := courses.MakeColumns(rows[0])
	if err != nil {
		return err
	}

	// ... header
	index := []int{}
	for _, ix := range []int{
		columns.Name,
		columns.Leads,
		columns.Subject,
		columns.YearGroup,
		columns.Students,
		columns.CourseID,
		columns.LastUpdated,
	} {
		if ix != -1 {
			index = append(index, ix)
		}
	}

	for i := range rows[0] {
		if !slices.Contains(index, i) {
			index = append(index, i)
		}
	}

	header := []string{}
	for _, ix := range index {
		header = append(header, clean(rows[0][ix]))
	}

	// ... records
	records := [][]string{}
	for _, row := range rows[1:] {
		if clean(cellAt(row, columns.Name)) == "" {
			continue
		}

		record := []string{}
		for _, ix := range index {
			record = append(record, clean(cellAt(row, ix)))
		}

		records = append(records, record)
	}

	// ... write to file
	w := csv.NewWriter(f)
	w.Comma = '\t'

	w.Write(header)
	for _, record := range records {
		w.Write(record)
	}

	w.Flush()

	return w.Error()
}

// tsvToSheet converts a TSV file to the header and data value ranges for a worksheet
// range. The header is written to the top row of the range and the data to the rows
// below it.
func tsvToSheet(f io.Reader, a area) (*sheets.ValueRange, *sheets.ValueRange, error) {
	r := csv.NewReader(f)
	r.Comma = '\t'
	r.LazyQuotes = true

	records, err := r.ReadAll()
	if err != nil {
		return nil, nil, err
	}

	if len(records) == 0 {
		return nil, nil, fmt.Errorf("TSV file is empty")
	}

	if _, err := courses.MakeColumns(records[0]); err != nil {
		return nil, nil, err
	}

	if a.bottom > 0 && a.bottom == a.top {
		return nil, nil, fmt.Errorf("range %v has no rows for data", a)
	}

	if a.bottom > 0 && len(records) > a.bottom-a.top+1 {
		return nil, nil, fmt.Errorf("TSV file has %v rows but range %v only has %v rows", len(records), a, a.bottom-a.top+1)
	}

	bottom := ""
	if a.bottom > 0 {
		bottom = fmt.Sprintf("%v", a.bottom)
	}

	header := sheets.ValueRange{
		Range:  fmt.Sprintf("%s!%s%v:%s%v", a.sheet, a.left, a.top, a.right, a.top),
		Values: makeValues(records[:1]),
	}

	data := sheets.ValueRange{
		Range:  fmt.Sprintf("%s!%s%v:%s%v", a.sheet, a.left, a.top+1, a.right, bottom),
		Values: makeValues(records[1:]),
	}

	return &header, &data, nil
}

func cellAt(row []string, ix int) string {
	if ix >= 0 && ix < len(row) {
		return row[ix]
	}

	return ""
}
