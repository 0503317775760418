package attendee

import (
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/anirudhs017/event-management-backend/internal/apperror"
	"github.com/anirudhs017/event-management-backend/middleware"
)

type Handler struct {
	Service   *Service
	Exporter  RosterExporter
	UploadDir string
}

func NewHandler(s *Service, exporter RosterExporter, uploadDir string) *Handler {
	return &Handler{Service: s, Exporter: exporter, UploadDir: uploadDir}
}

func parseEventID(c *gin.Context) (uint, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid event ID"})
		return 0, false
	}
	return uint(id), true
}

func respondError(c *gin.Context, err error) {
	status := apperror.HTTPStatus(err)
	if status == http.StatusInternalServerError {
		log.Printf("attendee request failed: %v", err)
	}
	c.JSON(status, gin.H{"error": apperror.PublicMessage(err)})
}

// ===========================
// Register Attendee - POST /events/:id/attendees
func (h *Handler) Register(c *gin.Context) {
	eventID, ok := parseEventID(c)
	if !ok {
		return
	}

	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input: " + err.Error()})
		return
	}

	ip := middleware.GetIPFromContext(c)
	attendee, err := h.Service.Register(c.Request.Context(), eventID, &req, ip)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "attendee registered successfully", "attendee": attendee})
}

// ===========================
// List Attendees - GET /events/:id/attendees?check_in_status=true
func (h *Handler) List(c *gin.Context) {
	eventID, ok := parseEventID(c)
	if !ok {
		return
	}

	var checkedIn *bool
	if v := c.Query("check_in_status"); v != "" {
		filter := strings.EqualFold(v, "true")
		checkedIn = &filter
	}

	attendees, err := h.Service.List(c.Request.Context(), eventID, checkedIn)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, attendees)
}

// ===========================
// Check In - PATCH /events/:id/attendees/:attendee_id/checkin
func (h *Handler) CheckIn(c *gin.Context) {
	eventID, ok := parseEventID(c)
	if !ok {
		return
	}

	attendeeID, err := strconv.Atoi(c.Param("attendee_id"))
	if err != nil || attendeeID < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid attendee ID"})
		return
	}

	ip := middleware.GetIPFromContext(c)
	attendee, err := h.Service.CheckIn(c.Request.Context(), eventID, uint(attendeeID), ip)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "attendee checked in successfully", "attendee": attendee})
}

// ===========================
// Bulk Check In - POST /events/:id/attendees/bulk_checkin
//
// Accepts a multipart "file" field holding a .csv or .xlsx roster. The
// upload is archived under the upload directory before processing.
func (h *Handler) BulkCheckIn(c *gin.Context) {
	eventID, ok := parseEventID(c)
	if !ok {
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "roster file is required"})
		return
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if ext != ".csv" && ext != ".xlsx" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid file type, upload a CSV or Excel roster"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to open uploaded file"})
		return
	}
	defer file.Close()

	if err := h.archiveUpload(file, eventID, ext); err != nil {
		// The archive copy is for traceability only; check-in proceeds.
		log.Printf("roster archive failed for event %d: %v", eventID, err)
	}
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read uploaded file"})
		return
	}

	var rows []Row
	if ext == ".csv" {
		rows, err = ParseRosterCSV(file)
	} else {
		rows, err = ParseRosterXLSX(file)
	}
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ip := middleware.GetIPFromContext(c)
	result, err := h.Service.Reconcile(c.Request.Context(), eventID, rows, ip)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":   "bulk check-in completed",
		"attendees": result.Processed,
	})
}

func (h *Handler) archiveUpload(file io.Reader, eventID uint, ext string) error {
	dir := filepath.Join(h.UploadDir, fmt.Sprintf("event_%d", eventID))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	name := fmt.Sprintf("%s%s", uuid.New().String(), ext)
	dst, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return err
	}
	defer dst.Close()

	_, err = io.Copy(dst, file)
	return err
}

// ===========================
// Export Roster - GET /events/:id/attendees/export?format=csv
func (h *Handler) Export(c *gin.Context) {
	eventID, ok := parseEventID(c)
	if !ok {
		return
	}

	format := c.DefaultQuery("format", FormatCSV)

	ev, attendees, err := h.Service.Roster(c.Request.Context(), eventID)
	if err != nil {
		respondError(c, err)
		return
	}

	data, filename, contentType, err := h.Exporter.Export(format, ev, attendees)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, contentType, data)
}
