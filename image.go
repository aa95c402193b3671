package sdl3

import (
	"image"
	"image/draw"
	"io"

	"golang.org/x/image/bmp"
)

// SurfaceFromImage copies img into a new surface with RGBA byte order.
func (s *SDL) SurfaceFromImage(img image.Image) (*Surface, error) {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	rgba, ok := img.(*image.RGBA)
	if !ok || rgba.Stride != w*4 {
		tmp := image.NewRGBA(image.Rect(0, 0, w, h))
		draw.Draw(tmp, tmp.Bounds(), img, bounds.Min, draw.Src)
		rgba = tmp
	}
	return s.CreateSurfaceFrom(int32(w), int32(h), PixelFormatRGBA32, rgba.Pix, int32(w*4))
}

// Image copies the surface's pixels into an image.RGBA, converting the
// format as needed.
func (r *SurfaceRef) Image() (*image.RGBA, error) {
	conv, err := r.Convert(PixelFormatRGBA32)
	if err != nil {
		return nil, err
	}
	defer conv.Destroy()
	lock, err := conv.Lock()
	if err != nil {
		return nil, err
	}
	defer lock.Unlock()

	w, h := int(conv.Width()), int(conv.Height())
	pitch := int(conv.Pitch())
	src := lock.Pixels()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		copy(img.Pix[y*img.Stride:y*img.Stride+w*4], src[y*pitch:y*pitch+w*4])
	}
	return img, nil
}

// DecodeBMP reads a BMP image from rd into a new surface. Unlike
// LoadBMP this runs the Go decoder, so it accepts any source the
// native loader never sees.
func (s *SDL) DecodeBMP(rd io.Reader) (*Surface, error) {
	img, err := bmp.Decode(rd)
	if err != nil {
		return nil, err
	}
	return s.SurfaceFromImage(img)
}

// EncodeBMP writes the surface to wr as BMP using the Go encoder.
func (r *SurfaceRef) EncodeBMP(wr io.Writer) error {
	img, err := r.Image()
	if err != nil {
		return err
	}
	return bmp.Encode(wr, img)
}
