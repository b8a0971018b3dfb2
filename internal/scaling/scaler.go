// Package scaling resamples binary masks into a target region under
// one of five fitting policies. All resampling goes through the same
// Lanczos4 path so foreground boundaries stay stable across modes.
package scaling

import (
	"fmt"

	"inkpath/internal/models"
)

// Scale fits the mask into the region under the selected mode. The
// output is always region.Width() x region.Height(); padding is
// Background. The region corners may be given in either order.
func Scale(mask *models.BinaryMask, region models.Region, mode models.ScaleMode) (*models.BinaryMask, error) {
	targetW := region.Width()
	targetH := region.Height()

	if mask.Empty() {
		return models.NewBinaryMask(targetW, targetH), nil
	}

	switch mode {
	case models.ScaleStretch:
		return resample(mask, targetW, targetH)
	case models.ScaleFit:
		return scaleFit(mask, targetW, targetH)
	case models.ScaleFill:
		return scaleFill(mask, targetW, targetH)
	case models.ScaleCenter:
		return scaleCenter(mask, targetW, targetH), nil
	case models.ScaleTile:
		return scaleTile(mask, targetW, targetH), nil
	}
	return nil, fmt.Errorf("unknown scaling mode: %v", mode)
}

// scaleFit shrinks or grows uniformly until the whole mask fits, then
// centers it on a background canvas.
func scaleFit(mask *models.BinaryMask, targetW, targetH int) (*models.BinaryMask, error) {
	srcW := mask.Width()
	srcH := mask.Height()

	scale := min(float64(targetW)/float64(srcW), float64(targetH)/float64(srcH))
	newW := int(float64(srcW) * scale)
	newH := int(float64(srcH) * scale)

	scaled, err := resample(mask, newW, newH)
	if err != nil {
		return nil, err
	}

	canvas := models.NewBinaryMask(targetW, targetH)
	offsetX := (targetW - scaled.Width()) / 2
	offsetY := (targetH - scaled.Height()) / 2
	paste(canvas, scaled, offsetX, offsetY)
	return canvas, nil
}

// scaleFill grows uniformly until the region is covered, then crops
// the overflow symmetrically.
func scaleFill(mask *models.BinaryMask, targetW, targetH int) (*models.BinaryMask, error) {
	srcW := mask.Width()
	srcH := mask.Height()

	scale := max(float64(targetW)/float64(srcW), float64(targetH)/float64(srcH))
	newW := int(float64(srcW) * scale)
	newH := int(float64(srcH) * scale)

	scaled, err := resample(mask, newW, newH)
	if err != nil {
		return nil, err
	}

	cropX := 0
	if scaled.Width() > targetW {
		cropX = (scaled.Width() - targetW) / 2
	}
	cropY := 0
	if scaled.Height() > targetH {
		cropY = (scaled.Height() - targetH) / 2
	}

	out := models.NewBinaryMask(targetW, targetH)
	for y := 0; y < targetH; y++ {
		srcY := cropY + y
		if srcY >= scaled.Height() {
			continue
		}
		dst := out.Row(y)
		src := scaled.Row(srcY)
		for x := 0; x < targetW; x++ {
			srcX := cropX + x
			if srcX >= scaled.Width() {
				continue
			}
			dst[x] = src[srcX]
		}
	}
	return out, nil
}

// scaleCenter pastes the mask at native resolution, centered, clipping
// whatever exceeds the canvas.
func scaleCenter(mask *models.BinaryMask, targetW, targetH int) *models.BinaryMask {
	canvas := models.NewBinaryMask(targetW, targetH)

	offsetX := 0
	if targetW > mask.Width() {
		offsetX = (targetW - mask.Width()) / 2
	}
	offsetY := 0
	if targetH > mask.Height() {
		offsetY = (targetH - mask.Height()) / 2
	}

	paste(canvas, mask, offsetX, offsetY)
	return canvas
}

// scaleTile repeats the mask in both directions, no resampling. A
// region matching the source dimensions reproduces it exactly.
func scaleTile(mask *models.BinaryMask, targetW, targetH int) *models.BinaryMask {
	out := models.NewBinaryMask(targetW, targetH)
	srcW := mask.Width()
	srcH := mask.Height()

	for y := 0; y < targetH; y++ {
		dst := out.Row(y)
		src := mask.Row(y % srcH)
		for x := 0; x < targetW; x++ {
			dst[x] = src[x%srcW]
		}
	}
	return out
}

// paste copies src onto dst at the offset, clipping at dst's edges.
func paste(dst, src *models.BinaryMask, offsetX, offsetY int) {
	for y := 0; y < src.Height(); y++ {
		dstY := offsetY + y
		if dstY < 0 || dstY >= dst.Height() {
			continue
		}
		srcRow := src.Row(y)
		dstRow := dst.Row(dstY)
		for x, s := range srcRow {
			dstX := offsetX + x
			if dstX < 0 || dstX >= dst.Width() {
				continue
			}
			dstRow[dstX] = s
		}
	}
}
