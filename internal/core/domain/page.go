package domain

// MainNamespace is the namespace of ordinary content pages.
// Pages in any other namespace are parsed but never converted.
const MainNamespace = 0

// PageRecord is a main-namespace page lifted out of the dump.
// It is created once, when the page's closing tag is seen, and is
// never modified afterwards, so it is safe to hand to a worker.
type PageRecord struct {
	// ID is the page id from the dump.
	ID int64

	// Title has its whitespace runs collapsed to single spaces.
	Title string

	// Namespace is the page's namespace id.
	Namespace int

	// RawText is the wikitext of the page's revision. Empty when absent.
	RawText string
}

// ConvertedRecord is a page after plain-text extraction.
type ConvertedRecord struct {
	// ID is copied from the PageRecord.
	ID int64

	// Title is copied from the PageRecord.
	Title string

	// PlainText is the extractor output. Internal newlines are preserved.
	PlainText string
}

// Convert builds the ConvertedRecord for this page from extracted text.
func (p PageRecord) Convert(plainText string) ConvertedRecord {
	return ConvertedRecord{
		ID:        p.ID,
		Title:     p.Title,
		PlainText: plainText,
	}
}

// ConversionStats summarises a conversion run.
type ConversionStats struct {
	// PagesEmitted is the number of main-namespace pages converted.
	PagesEmitted int

	// PagesSkipped is the number of pages dropped for their namespace.
	PagesSkipped int

	// Flushes is the number of pipeline drains, including the final one.
	Flushes int

	// BytesRead is the number of dump bytes consumed.
	BytesRead int64

	// TotalBytes is the size of the dump file.
	TotalBytes int64
}
