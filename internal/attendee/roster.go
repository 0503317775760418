package attendee

import (
	"encoding/csv"
	"errors"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Roster parsing turns an uploaded check-in sheet into Rows for Reconcile.
// Recognized columns are first_name, last_name, email and phone_number,
// located by header name in the first row; unknown columns are ignored.

var rosterColumns = []string{"first_name", "last_name", "email", "phone_number"}

func stripInvisible(s string) string {
	return strings.Map(func(r rune) rune {
		if r == '\u200B' || r == '\uFEFF' {
			return -1
		}
		return r
	}, s)
}

func headerIndex(header []string) map[string]int {
	index := make(map[string]int, len(rosterColumns))
	for i, name := range header {
		name = strings.ToLower(strings.TrimSpace(stripInvisible(name)))
		for _, col := range rosterColumns {
			if name == col {
				index[col] = i
			}
		}
	}
	return index
}

func cell(record []string, index map[string]int, column string) string {
	i, ok := index[column]
	if !ok || i >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[i])
}

func rowFromRecord(record []string, index map[string]int) (Row, bool) {
	row := Row{
		FirstName:   cell(record, index, "first_name"),
		LastName:    cell(record, index, "last_name"),
		Email:       cell(record, index, "email"),
		PhoneNumber: cell(record, index, "phone_number"),
	}
	empty := row.FirstName == "" && row.LastName == "" && row.Email == "" && row.PhoneNumber == ""
	return row, !empty
}

// ParseRosterCSV reads a CSV roster with a header row.
func ParseRosterCSV(r io.Reader) ([]Row, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, errors.New("invalid CSV format or missing header")
	}
	index := headerIndex(header)
	if _, ok := index["email"]; !ok {
		return nil, errors.New("CSV header must contain an email column")
	}

	var rows []Row
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if row, ok := rowFromRecord(record, index); ok {
			rows = append(rows, row)
		}
	}

	return rows, nil
}

// ParseRosterXLSX reads the first sheet of an Excel roster with a header row.
func ParseRosterXLSX(r io.Reader) ([]Row, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, errors.New("invalid Excel file")
	}
	defer f.Close()

	records, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, errors.New("Excel roster is missing a header row")
	}

	index := headerIndex(records[0])
	if _, ok := index["email"]; !ok {
		return nil, errors.New("Excel header must contain an email column")
	}

	var rows []Row
	for _, record := range records[1:] {
		if row, ok := rowFromRecord(record, index); ok {
			rows = append(rows, row)
		}
	}

	return rows, nil
}
