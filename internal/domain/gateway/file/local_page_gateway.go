package file

import (
	"fmt"
	"os"
)

const pageFileMode = 0o644

type localPageGateway struct {
	path string
}

// NewLocalPageGateway writes the page to a path on the local filesystem. Writes are not atomic and
// concurrent writers race: the last one wins.
func NewLocalPageGateway(path string) PageGateway {
	return &localPageGateway{path: path}
}

func (g *localPageGateway) Write(html string) error {
	if err := os.WriteFile(g.path, []byte(html), pageFileMode); err != nil {
		return fmt.Errorf("failed to write page %s: %w", g.path, err)
	}
	return nil
}

func (g *localPageGateway) Stat() (PageInfo, error) {
	info, err := os.Stat(g.path)
	if err != nil {
		return PageInfo{}, fmt.Errorf("failed to stat page %s: %w", g.path, err)
	}
	return PageInfo{Path: g.path, Size: info.Size(), ModifiedAt: info.ModTime()}, nil
}

func (g *localPageGateway) Path() string {
	return g.path
}
