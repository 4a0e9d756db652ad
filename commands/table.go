package commands

import (
	"fmt"
)

// makeRows converts the cell values returned by the Sheets API to strings. Rows keep
// the length returned by the API, which omits trailing empty cells.
func makeRows(values [][]interface{}) [][]string {
	rows := make([][]string, 0, len(values))

	for _, record := range values {
		row := make([]string, len(record))
		for i, v := range record {
			switch value := v.(type) {
			case nil:
				row[i] = ""
			case string:
				row[i] = value
			default:
				row[i] = fmt.Sprintf("%v", value)
			}
		}

		rows = append(rows, row)
	}

	return rows
}

// makeValues converts a list of string rows to the value format used by the Sheets API.
func makeValues(rows [][]string) [][]interface{} {
	values := make([][]interface{}, 0, len(rows))

	for _, row := range rows {
		record := make([]interface{}, len(row))
		for i, v := range row {
			record[i] = v
		}

		values = append(values, record)
	}

	return values
}
