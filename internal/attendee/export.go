package attendee

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/xuri/excelize/v2"

	"github.com/anirudhs017/event-management-backend/internal/event"
)

// Export formats for the attendee roster.
const (
	FormatCSV   = "csv"
	FormatExcel = "excel"
	FormatPDF   = "pdf"
)

// RosterExporter exports an event's attendee roster in different formats
type RosterExporter interface {
	Export(format string, ev *event.Event, attendees []Attendee) ([]byte, string, string, error)
}

type rosterExporter struct{}

func NewRosterExporter() RosterExporter {
	return &rosterExporter{}
}

var rosterHeaders = []string{"ID", "First Name", "Last Name", "Email", "Phone Number", "Checked In"}

func rosterRecord(a Attendee) []string {
	return []string{
		strconv.FormatUint(uint64(a.ID), 10),
		a.FirstName,
		a.LastName,
		a.Email,
		a.PhoneNumber,
		strconv.FormatBool(a.CheckInStatus),
	}
}

func (e *rosterExporter) Export(format string, ev *event.Event, attendees []Attendee) ([]byte, string, string, error) {
	timestamp := time.Now().Format("20060102_150405")

	switch format {
	case FormatCSV:
		data, err := e.exportCSV(attendees)
		if err != nil {
			return nil, "", "", err
		}
		filename := fmt.Sprintf("attendees_event_%d_%s.csv", ev.ID, timestamp)
		return data, filename, "text/csv", nil

	case FormatExcel:
		data, err := e.exportExcel(attendees)
		if err != nil {
			return nil, "", "", err
		}
		filename := fmt.Sprintf("attendees_event_%d_%s.xlsx", ev.ID, timestamp)
		return data, filename, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", nil

	case FormatPDF:
		data, err := e.exportPDF(ev, attendees)
		if err != nil {
			return nil, "", "", err
		}
		filename := fmt.Sprintf("attendees_event_%d_%s.pdf", ev.ID, timestamp)
		return data, filename, "application/pdf", nil

	default:
		return nil, "", "", fmt.Errorf("unsupported export format: %s", format)
	}
}

func (e *rosterExporter) exportCSV(attendees []Attendee) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	if err := writer.Write(rosterHeaders); err != nil {
		return nil, err
	}
	for _, a := range attendees {
		if err := writer.Write(rosterRecord(a)); err != nil {
			return nil, err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

func (e *rosterExporter) exportExcel(attendees []Attendee) ([]byte, error) {
	f := excelize.NewFile()
	sheetName := "Attendees"
	f.SetSheetName("Sheet1", sheetName)

	for i, header := range rosterHeaders {
		cell := fmt.Sprintf("%c1", 'A'+i)
		f.SetCellValue(sheetName, cell, header)
	}

	for i, a := range attendees {
		row := i + 2
		for col, value := range rosterRecord(a) {
			cell := fmt.Sprintf("%c%d", 'A'+col, row)
			f.SetCellValue(sheetName, cell, value)
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (e *rosterExporter) exportPDF(ev *event.Event, attendees []Attendee) ([]byte, error) {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(0, 10, fmt.Sprintf("Attendees - %s", ev.Name))
	pdf.Ln(20)

	pdf.SetFont("Arial", "B", 9)
	widths := []float64{15, 45, 45, 75, 40, 25}
	for i, h := range rosterHeaders {
		pdf.CellFormat(widths[i], 7, h, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 8)
	for _, a := range attendees {
		for i, v := range rosterRecord(a) {
			pdf.CellFormat(widths[i], 6, v, "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
