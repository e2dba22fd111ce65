package plot

import (
	"errors"
	"fmt"
	"image/jpeg"
	"image/png"
	"io"
	"strings"

	chart "github.com/wcharczuk/go-chart/v2"
)

// DefaultFileName is offered by the save dialog.
const DefaultFileName = "blackbody.png"

var (
	ErrNothingToExport   = errors.New("no curves to export")
	ErrUnsupportedFormat = errors.New("unsupported image format")
)

// SupportedExtensions lists the file extensions Export understands.
var SupportedExtensions = []string{".png", ".jpg", ".jpeg", ".svg"}

// Export writes the current view to w in the format named by ext, e.g.
// ".png" or ".svg".
func (s *Surface) Export(w io.Writer, ext string) error {
	if s.Empty() {
		return ErrNothingToExport
	}

	switch strings.ToLower(ext) {
	case ".png":
		img, err := s.Image()
		if err != nil {
			return err
		}
		if err := png.Encode(w, img); err != nil {
			return fmt.Errorf("encoding png: %w", err)
		}
	case ".jpg", ".jpeg":
		img, err := s.Image()
		if err != nil {
			return err
		}
		if err := jpeg.Encode(w, img, &jpeg.Options{Quality: 95}); err != nil {
			return fmt.Errorf("encoding jpeg: %w", err)
		}
	case ".svg":
		if err := s.Chart().Render(chart.SVG, w); err != nil {
			return fmt.Errorf("rendering svg: %w", err)
		}
	default:
		return fmt.Errorf("%w %q (use one of %s)", ErrUnsupportedFormat, ext, strings.Join(SupportedExtensions, ", "))
	}
	return nil
}
