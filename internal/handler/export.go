package handler

import (
	"bytes"
	"encoding/csv"
	"net/http"
	"strconv"
	"time"
)

// enquiryCSVHeaders defines the column names written as the first row of the
// enquiry CSV export.
var enquiryCSVHeaders = []string{
	"enquiry_id", "created_at", "status", "source",
	"name", "email", "phone",
	"trip_id", "trip_title", "travel_date", "travellers",
	"message", "notes",
}

// GetEnquiryExport handles GET /api/enquiries/export.
// It accepts the same filters as the admin enquiry list.
// Use ?format=csv to receive CSV; default is JSON.
func (s *Server) GetEnquiryExport(w http.ResponseWriter, r *http.Request) {
	q, err := listQuery(r)
	if err != nil {
		s.badRequest(w, err.Error())
		return
	}
	rows, err := s.d.Export.Enquiries(r.Context(), q)
	if err != nil {
		s.fail(w, r, "Enquiry", err)
		return
	}

	if r.URL.Query().Get("format") != "csv" {
		writeJSON(w, http.StatusOK, map[string]any{"enquiries": rows, "count": len(rows)})
		return
	}

	var buf bytes.Buffer
	cw := csv.NewWriter(&buf)
	//nolint:errcheck // bytes.Buffer.Write never returns an error.
	cw.Write(enquiryCSVHeaders)
	for _, row := range rows {
		//nolint:errcheck
		cw.Write([]string{
			strconv.FormatInt(row.EnquiryID, 10),
			row.CreatedAt.UTC().Format(time.RFC3339),
			row.Status,
			row.Source,
			row.Name,
			row.Email,
			row.Phone,
			formatOptionalInt64(row.TripID),
			row.TripTitle,
			row.TravelDate,
			formatOptionalInt(row.Travellers),
			row.Message,
			row.Notes,
		})
	}
	cw.Flush()

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="enquiries.csv"`)
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}

// formatOptionalInt64 returns the decimal form of v, or "" if v is nil.
func formatOptionalInt64(v *int64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatInt(*v, 10)
}

func formatOptionalInt(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}
