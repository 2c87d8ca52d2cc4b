package report

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fumiama/go-docx"
)

const tableWidth = 9026

// DocxSink renders blocks into a Word document via go-docx.
type DocxSink struct {
	doc *docx.Docx
}

func NewDocxSink() *DocxSink {
	return &DocxSink{doc: docx.New().WithDefaultTheme()}
}

func (s *DocxSink) Heading(text string, level int) {
	if level < 1 {
		level = 1
	}
	if level > 6 {
		level = 6
	}
	s.doc.AddParagraph().Style(fmt.Sprintf("Heading%d", level)).AddText(text)
}

func (s *DocxSink) Paragraph(text string) {
	s.doc.AddParagraph().AddText(text)
}

func (s *DocxSink) BulletItem(text string) {
	s.doc.AddParagraph().Style("ListBullet").AddText(text)
}

func (s *DocxSink) NumberedItem(text string) {
	s.doc.AddParagraph().Style("ListNumber").AddText(text)
}

func (s *DocxSink) Quote(text string) {
	s.doc.AddParagraph().Style("Quote").AddText(text)
}

func (s *DocxSink) Table(rows [][]string, cols int) {
	if len(rows) == 0 || cols <= 0 {
		return
	}
	tbl := s.doc.AddTable(len(rows), cols, tableWidth, nil)
	for i, tr := range tbl.TableRows {
		for j, cell := range tr.TableCells {
			text := ""
			if i < len(rows) && j < len(rows[i]) {
				text = rows[i][j]
			}
			run := cell.AddParagraph().AddText(text)
			if i == 0 {
				run.Bold()
			}
		}
	}
}

// Save writes the document, creating missing parent directories first so a
// directory failure prevents any partial file write.
func (s *DocxSink) Save(path string) error {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create document file: %w", err)
	}
	defer f.Close()
	if _, err := s.doc.WriteTo(f); err != nil {
		return fmt.Errorf("failed to write document: %w", err)
	}
	return nil
}
