package itinerary

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"github.com/ytget/tripwise/internal/model"
	"github.com/ytget/tripwise/internal/platform"
)

// Format is an export file type
type Format string

const (
	FormatJSON Format = "json"
	FormatPDF  Format = "pdf"
)

// ErrNoDocument is returned when there is nothing to export
var ErrNoDocument = errors.New("no itinerary to export")

// FileName returns "<destination>-itinerary.<ext>" with characters that are
// unsafe in file names replaced
func FileName(destination string, f Format) string {
	name := strings.Map(func(r rune) rune {
		switch {
		case r < 0x20 || r == 0x7f:
			return -1
		case strings.ContainsRune(`/\:*?"<>|`, r):
			return '-'
		}
		return r
	}, destination)
	name = strings.Trim(name, " .")
	if name == "" {
		name = "trip"
	}
	return name + "-itinerary." + string(f)
}

// MarshalJSON re-indents the received bytes with two spaces. The document is
// never re-encoded from its parsed form, so unknown fields survive.
func MarshalJSON(doc *model.ItineraryDocument) ([]byte, error) {
	if doc == nil || len(doc.Raw) == 0 {
		return nil, ErrNoDocument
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, doc.Raw, "", "  "); err != nil {
		return nil, fmt.Errorf("failed to indent itinerary: %w", err)
	}
	return buf.Bytes(), nil
}

// Render produces the file contents for a format
func Render(doc *model.ItineraryDocument, f Format) ([]byte, error) {
	switch f {
	case FormatJSON:
		return MarshalJSON(doc)
	case FormatPDF:
		return RenderPDF(doc)
	default:
		return nil, fmt.Errorf("unsupported export format %q", f)
	}
}

// Export writes the document into dir and returns the file path
func Export(dir string, doc *model.ItineraryDocument, f Format) (string, error) {
	if doc == nil {
		return "", ErrNoDocument
	}
	data, err := Render(doc, f)
	if err != nil {
		return "", err
	}
	if err := platform.CreateDirectoryIfNotExists(dir); err != nil {
		return "", fmt.Errorf("failed to create export directory: %w", err)
	}

	path := filepath.Join(dir, FileName(doc.Trip().Destination, f))
	if err := os.WriteFile(path, data, platform.DefaultFilePermissions); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}
	log.Printf("itinerary: exported %s (%d bytes)", path, len(data))
	return path, nil
}

// RenderPDF lays out the projection on A4 pages
func RenderPDF(doc *model.ItineraryDocument) ([]byte, error) {
	if doc == nil {
		return nil, ErrNoDocument
	}
	view := Project(doc.Trip())

	pdf := gofpdf.New("P", "mm", "A4", "")
	// Core fonts are cp1252; map what we can (€, curly quotes) and drop the rest.
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetMargins(18, 18, 18)
	pdf.SetAutoPageBreak(true, 18)
	pdf.SetTitle(tr(view.Destination+" Trip"), false)
	pdf.SetCreator("TripWise", false)
	pdf.AddPage()

	// Header bar
	pdf.SetFillColor(37, 99, 235)
	pdf.Rect(0, 0, 210, 30, "F")
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 20)
	pdf.SetXY(18, 7)
	pdf.CellFormat(174, 10, tr(view.Destination), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetX(18)
	pdf.CellFormat(174, 6, tr(view.Summary), "", 1, "L", false, 0, "")
	pdf.SetY(38)
	pdf.SetTextColor(0, 0, 0)

	if view.Budget != "" {
		pdf.SetFont("Helvetica", "I", 10)
		pdf.CellFormat(0, 6, tr("Budget: "+view.Budget), "", 1, "L", false, 0, "")
		pdf.Ln(2)
	}

	for _, day := range view.Days {
		pdf.SetFillColor(241, 245, 249)
		pdf.SetFont("Helvetica", "B", 13)
		pdf.CellFormat(0, 9, tr(day.Heading), "", 1, "L", true, 0, "")
		pdf.Ln(1)

		for _, a := range day.Activities {
			pdf.SetFont("Helvetica", "B", 11)
			pdf.MultiCell(0, 6, tr(a.Name), "", "L", false)
			pdf.SetFont("Helvetica", "", 10)
			pdf.SetTextColor(60, 60, 60)
			if a.Description != "" {
				pdf.MultiCell(0, 5, tr(a.Description), "", "L", false)
			}
			meta := strings.Join(nonEmpty(a.Time, a.Transport, a.Price), "  |  ")
			if meta != "" {
				pdf.SetFont("Helvetica", "I", 9)
				pdf.MultiCell(0, 5, tr(meta), "", "L", false)
			}
			if a.HasMap() {
				pdf.SetTextColor(37, 99, 235)
				pdf.SetFont("Helvetica", "U", 9)
				pdf.CellFormat(0, 5, "View on Map", "", 1, "L", false, 0, a.Link)
			}
			pdf.SetTextColor(0, 0, 0)
			pdf.Ln(2)
		}

		if day.ShowTips() {
			pdf.SetFont("Helvetica", "B", 10)
			pdf.CellFormat(0, 6, "Daily Tips", "", 1, "L", false, 0, "")
			pdf.SetFont("Helvetica", "", 10)
			for _, tip := range day.Tips {
				pdf.MultiCell(0, 5, tr("- "+tip), "", "L", false)
			}
		}
		pdf.Ln(4)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("PDF output failed: %w", err)
	}
	return buf.Bytes(), nil
}

func nonEmpty(values ...string) []string {
	out := values[:0]
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			out = append(out, v)
		}
	}
	return out
}
