package attendee

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/anirudhs017/event-management-backend/internal/event"
)

func exportFixtures() (*event.Event, []Attendee) {
	ev := testEvent(10)
	attendees := []Attendee{
		{ID: 1, FirstName: "Ada", LastName: "Lovelace", Email: "a@x.com", PhoneNumber: "555-0001", EventID: 1, CheckInStatus: true},
		{ID: 2, FirstName: "Bob", LastName: "Byrne", Email: "b@x.com", EventID: 1},
	}
	return &ev, attendees
}

func TestRosterExport_CSV(t *testing.T) {
	ev, attendees := exportFixtures()

	data, filename, contentType, err := NewRosterExporter().Export(FormatCSV, ev, attendees)
	require.NoError(t, err)
	assert.Equal(t, "text/csv", contentType)
	assert.Contains(t, filename, "attendees_event_1_")

	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, rosterHeaders, records[0])
	assert.Equal(t, []string{"1", "Ada", "Lovelace", "a@x.com", "555-0001", "true"}, records[1])
	assert.Equal(t, []string{"2", "Bob", "Byrne", "b@x.com", "", "false"}, records[2])
}

func TestRosterExport_Excel(t *testing.T) {
	ev, attendees := exportFixtures()

	data, filename, contentType, err := NewRosterExporter().Export(FormatExcel, ev, attendees)
	require.NoError(t, err)
	assert.Contains(t, filename, ".xlsx")
	assert.Contains(t, contentType, "spreadsheetml")

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Attendees")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "a@x.com", rows[1][3])
}

func TestRosterExport_PDF(t *testing.T) {
	ev, attendees := exportFixtures()

	data, filename, contentType, err := NewRosterExporter().Export(FormatPDF, ev, attendees)
	require.NoError(t, err)
	assert.Contains(t, filename, ".pdf")
	assert.Equal(t, "application/pdf", contentType)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
}

func TestRosterExport_UnsupportedFormat(t *testing.T) {
	ev, attendees := exportFixtures()

	_, _, _, err := NewRosterExporter().Export("docx", ev, attendees)
	assert.Error(t, err)
}
