package report

// Sink receives rendered document blocks. It decouples element rendering from
// the DOCX mechanics so the renderer can be tested against an in-memory
// implementation.
type Sink interface {
	Heading(text string, level int)
	Paragraph(text string)
	BulletItem(text string)
	NumberedItem(text string)
	Quote(text string)
	// Table writes rows into a grid of cols columns. Rows shorter than cols
	// are padded with blank cells; cells beyond cols are dropped. The first
	// row is the header row and is rendered bold.
	Table(rows [][]string, cols int)
}
