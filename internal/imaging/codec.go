// Package imaging is the codec boundary between image files and the
// core pipeline. Decoding failures surface here as errors; the
// pipeline itself never sees an invalid grid.
package imaging

import (
	"fmt"

	"gocv.io/x/gocv"

	"inkpath/internal/models"
)

// Load decodes the image at path into a 16-bit intensity grid. The
// file is read as 8-bit grayscale and widened so the full 16-bit
// range is used, matching the grid's fixed sample depth.
func Load(path string) (*models.IntensityGrid, error) {
	mat := gocv.IMRead(path, gocv.IMReadGrayScale)
	if mat.Empty() {
		return nil, fmt.Errorf("decode %q: unreadable or unsupported image", path)
	}
	defer mat.Close()

	width := mat.Cols()
	height := mat.Rows()
	data := mat.ToBytes()

	samples := make([]uint16, width*height)
	for i, v := range data {
		samples[i] = uint16(v) * 257 // 0..255 -> 0..65535
	}

	return models.NewIntensityGrid(width, height, samples), nil
}

// SaveMask writes a mask as an 8-bit grayscale image, ink black on
// white, for inspecting intermediate pipeline output.
func SaveMask(mask *models.BinaryMask, path string) error {
	width := mask.Width()
	height := mask.Height()
	if mask.Empty() {
		return fmt.Errorf("save mask %q: empty mask", path)
	}

	data := make([]byte, width*height)
	for y := 0; y < height; y++ {
		row := mask.Row(y)
		base := y * width
		for x, s := range row {
			if s == models.Foreground {
				data[base+x] = 0
			} else {
				data[base+x] = 255
			}
		}
	}

	mat, err := gocv.NewMatFromBytes(height, width, gocv.MatTypeCV8U, data)
	if err != nil {
		return fmt.Errorf("save mask %q: %w", path, err)
	}
	defer mat.Close()

	if ok := gocv.IMWrite(path, mat); !ok {
		return fmt.Errorf("save mask %q: encode failed", path)
	}
	return nil
}
