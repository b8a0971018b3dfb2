package scaling

import (
	"fmt"
	"image"

	"gocv.io/x/gocv"

	"inkpath/internal/models"
)

// foregroundCut separates ink from paper when reading resampled pixels
// back out of the 8-bit Mat. Lanczos ringing keeps real edges well
// away from the midpoint.
const foregroundCut = 128

// resample resizes a mask to width x height with Lanczos4
// interpolation. The mask travels through an 8-bit Mat (ink 0, paper
// 255) so edge pixels land on a defined side of the midpoint cut.
func resample(mask *models.BinaryMask, width, height int) (*models.BinaryMask, error) {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}

	src, err := maskToMat(mask)
	if err != nil {
		return nil, err
	}
	defer src.Close()

	dst := gocv.NewMat()
	defer dst.Close()

	if err := gocv.Resize(src, &dst, image.Point{X: width, Y: height}, 0, 0, gocv.InterpolationLanczos4); err != nil {
		return nil, fmt.Errorf("lanczos resize to %dx%d: %w", width, height, err)
	}

	return matToMask(dst, width, height), nil
}

func maskToMat(mask *models.BinaryMask) (gocv.Mat, error) {
	width := mask.Width()
	height := mask.Height()

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
		return gocv.Mat{}, fmt.Errorf("mask to mat %dx%d: %w", width, height, err)
	}
	return mat, nil
}

func matToMask(mat gocv.Mat, width, height int) *models.BinaryMask {
	mask := models.NewBinaryMask(width, height)
	data := mat.ToBytes()
	for y := 0; y < height; y++ {
		row := mask.Row(y)
		base := y * width
		for x := range row {
			if data[base+x] < foregroundCut {
				row[x] = models.Foreground
			}
		}
	}
	return mask
}
