package imaging

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"countrygdp/internal/domain"

	"github.com/fogleman/gg"
)

const (
	imageWidth  = 800
	imageHeight = 600
	fileName    = "summary.png"
)

// Renderer draws the refresh summary PNG into a fixed cache location.
// Concurrent refreshes overwrite the same file, latest write wins.
type Renderer struct {
	cacheDir string
}

func (r *Renderer) Path() string {
	return filepath.Join(r.cacheDir, fileName)
}

func (r *Renderer) Render(total int64, lastRefresh time.Time, top []domain.Country) error {
	if err := os.MkdirAll(r.cacheDir, 0o755); err != nil {
		return fmt.Errorf("failed to create cache dir: %w", err)
	}

	dc := gg.NewContext(imageWidth, imageHeight)
	dc.SetRGB(1, 1, 1)
	dc.Clear()
	dc.SetRGB(0, 0, 0)

	y := 30.0
	dc.DrawString(fmt.Sprintf("Countries: %d", total), 20, y)
	y += 30
	refreshed := "never"
	if !lastRefresh.IsZero() {
		refreshed = lastRefresh.UTC().Format(time.RFC3339)
	}
	dc.DrawString("Last refresh: "+refreshed, 20, y)
	y += 40
	dc.DrawString(fmt.Sprintf("Top %d by estimated GDP:", len(top)), 20, y)
	y += 30
	for i, c := range top {
		dc.DrawString(fmt.Sprintf("%d. %s - %.2f", i+1, c.Name, c.EstimatedGDP), 40, y)
		y += 24
	}

	if err := dc.SavePNG(r.Path()); err != nil {
		return fmt.Errorf("failed to save summary image: %w", err)
	}
	return nil
}

func NewRenderer(cacheDir string) *Renderer {
	return &Renderer{cacheDir: cacheDir}
}
