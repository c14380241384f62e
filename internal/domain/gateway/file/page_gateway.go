package file

import "time"

// PageInfo describes the page currently on disk.
type PageInfo struct {
	Path       string
	Size       int64
	ModifiedAt time.Time
}

// PageGateway persists the rendered document
type PageGateway interface {
	// Write overwrites the page with html
	Write(html string) error

	// Stat reports the page on disk, or an error wrapping fs.ErrNotExist when it was never written
	Stat() (PageInfo, error)

	// Path returns the configured output path
	Path() string
}
