// package formatter renders a gallery selection as CSV, Markdown, or plain text
package formatter

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/desertthunder/photox/internal/models"
	"github.com/desertthunder/photox/internal/shared"
)

// Format names an export encoding.
type Format string

const (
	FormatText     Format = "text"
	FormatCSV      Format = "csv"
	FormatMarkdown Format = "markdown"
)

// ParseFormat maps a flag value to a [Format]. "md" is accepted for Markdown.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "text", "txt":
		return FormatText, nil
	case "csv":
		return FormatCSV, nil
	case "markdown", "md":
		return FormatMarkdown, nil
	default:
		return "", fmt.Errorf("%w: unknown format %q (want text, csv or markdown)", shared.ErrInvalidFlag, s)
	}
}

// Extension returns the file extension used when writing f to disk.
func (f Format) Extension() string {
	switch f {
	case FormatCSV:
		return ".csv"
	case FormatMarkdown:
		return ".md"
	default:
		return ".txt"
	}
}

// SelectionExport is a selection resolved against its gallery, in selection order.
type SelectionExport struct {
	Title    string
	Photos   []models.Photo
	AnchorID string
	Total    int
}

// Export encodes e in format f.
func Export(e *SelectionExport, f Format) ([]byte, error) {
	switch f {
	case FormatCSV:
		return ExportToCSV(e)
	case FormatMarkdown:
		return ExportToMarkdown(e)
	case FormatText:
		return ExportToText(e)
	default:
		return nil, fmt.Errorf("%w: unknown format %q", shared.ErrInvalidFlag, f)
	}
}

// ExportToCSV converts a SelectionExport to CSV format with columns: ID, Name, Path, Width, Height, Orientation, Annotations
func ExportToCSV(e *SelectionExport) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	headers := []string{"ID", "Name", "Path", "Width", "Height", "Orientation", "Annotations"}
	if err := writer.Write(headers); err != nil {
		return nil, fmt.Errorf("failed to write CSV headers: %w", err)
	}

	for _, p := range e.Photos {
		record := []string{
			p.ID,
			p.Name,
			p.Path,
			strconv.Itoa(p.Width),
			strconv.Itoa(p.Height),
			strconv.Itoa(int(p.Orientation.Normalize())),
			strconv.Itoa(len(p.Annotations)),
		}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return buf.Bytes(), nil
}

// ExportToMarkdown converts a SelectionExport to Markdown with one section per photo listing its annotations
func ExportToMarkdown(e *SelectionExport) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf("# %s\n\n", title(e)))
	buf.WriteString(fmt.Sprintf("**Selected**: %d of %d\n", len(e.Photos), e.Total))
	if e.AnchorID != "" {
		buf.WriteString(fmt.Sprintf("**Anchor**: `%s`\n", e.AnchorID))
	}
	buf.WriteString("\n")

	for i, p := range e.Photos {
		w, h := p.DisplaySize()
		buf.WriteString(fmt.Sprintf("## %d. %s\n\n", i+1, p.Name))
		buf.WriteString(fmt.Sprintf("- ID: `%s`\n", p.ID))
		if p.Path != "" {
			buf.WriteString(fmt.Sprintf("- Path: %s\n", p.Path))
		}
		buf.WriteString(fmt.Sprintf("- Orientation: %s (displayed %dx%d)\n", p.Orientation.Normalize(), w, h))

		if len(p.Annotations) > 0 {
			buf.WriteString("\n| Label | Kind | Center | Size |\n|---|---|---|---|\n")
			for _, a := range p.Annotations {
				buf.WriteString(fmt.Sprintf("| %s | %s | %.3f, %.3f | %.3f x %.3f |\n",
					a.Label, a.Kind, a.Box.CenterX, a.Box.CenterY, a.Box.Width, a.Box.Height))
			}
		}
		buf.WriteString("\n")
	}

	return buf.Bytes(), nil
}

// ExportToText converts a SelectionExport to plain text format
func ExportToText(e *SelectionExport) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf("Gallery: %s\n", title(e)))
	buf.WriteString(fmt.Sprintf("Selected: %d of %d\n", len(e.Photos), e.Total))
	if e.AnchorID != "" {
		buf.WriteString(fmt.Sprintf("Anchor: %s\n", e.AnchorID))
	}
	buf.WriteString("\n")

	for i, p := range e.Photos {
		buf.WriteString(fmt.Sprintf("%d. %s (%s)\n", i+1, p.Name, p.ID))
	}

	return buf.Bytes(), nil
}

// WriteExport writes e to path in format f.
//
// An empty path defaults to "selection" plus the format's extension.
func WriteExport(e *SelectionExport, f Format, path string) (string, error) {
	if path == "" {
		path = "selection" + f.Extension()
	}

	data, err := Export(e, f)
	if err != nil {
		return "", fmt.Errorf("failed to generate %s: %w", f, err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return "", fmt.Errorf("failed to create directory: %w", err)
		}
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write %s file: %w", f, err)
	}

	return path, nil
}

func title(e *SelectionExport) string {
	if e.Title == "" {
		return "Untitled gallery"
	}
	return e.Title
}
