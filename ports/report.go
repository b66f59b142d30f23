package ports

// ReportRenderer turns a markdown run report into a shareable document
type ReportRenderer interface {
	RenderHTML(markdown []byte) []byte
}
