package canvasutils

import (
	"fmt"
	"image"
	_ "image/jpeg" // register JPEG decoding
	_ "image/png"  // register PNG decoding
	"io"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/draw"
)

// ImageAsset is an image file that is decoded and resized once, then handed
// to sprites as an *ebiten.Image. The target size is either a scale factor of
// the source dimensions or an explicit width and height.
type ImageAsset struct {
	path string

	scale    float64
	explicit bool
	size     Size

	image  *ebiten.Image
	loaded bool
}

// NewImageAsset describes the image at path, scaled by scale on load. A scale
// of 1 keeps the source size.
func NewImageAsset(path string, scale float64) *ImageAsset {
	return &ImageAsset{path: path, scale: scale}
}

// NewImageAssetSized describes the image at path, resized to w x h on load.
func NewImageAssetSized(path string, w, h int) *ImageAsset {
	return &ImageAsset{path: path, explicit: true, size: Size{W: float64(w), H: float64(h)}}
}

// Load reads and decodes the file, then resizes it if needed.
func (a *ImageAsset) Load() error {
	f, err := os.Open(a.path)
	if err != nil {
		return fmt.Errorf("canvasutils: load image %s: %w", a.path, err)
	}
	defer f.Close()
	return a.LoadFrom(f)
}

// LoadFrom decodes PNG or JPEG data from r instead of the asset's path.
func (a *ImageAsset) LoadFrom(r io.Reader) error {
	img, size, err := a.decode(r)
	if err != nil {
		return err
	}
	a.image = ebiten.NewImageFromImage(img)
	a.size = size
	a.loaded = true
	return nil
}

// Image returns the loaded image, or nil before a successful Load.
func (a *ImageAsset) Image() *ebiten.Image {
	return a.image
}

// Size returns the loaded size. Before Load it is the requested explicit
// size, or zero for scaled assets.
func (a *ImageAsset) Size() Size {
	return a.size
}

// Loaded reports whether Load has completed successfully.
func (a *ImageAsset) Loaded() bool {
	return a.loaded
}

// decode reads r and returns the image at its target size.
func (a *ImageAsset) decode(r io.Reader) (image.Image, Size, error) {
	src, _, err := image.Decode(r)
	if err != nil {
		return nil, Size{}, fmt.Errorf("canvasutils: decode image %s: %w", a.path, err)
	}
	b := src.Bounds()
	size := a.targetSize(b.Dx(), b.Dy())
	if int(size.W) == b.Dx() && int(size.H) == b.Dy() {
		return src, size, nil
	}
	if size.W <= 0 || size.H <= 0 {
		return nil, Size{}, fmt.Errorf("canvasutils: resize image %s: invalid target size %vx%v", a.path, size.W, size.H)
	}
	return resizeImage(src, int(size.W), int(size.H)), size, nil
}

// targetSize resolves the requested size for a w x h source.
func (a *ImageAsset) targetSize(w, h int) Size {
	if a.explicit {
		return a.size
	}
	return Size{
		W: roundHalfUp(float64(w) * a.scale),
		H: roundHalfUp(float64(h) * a.scale),
	}
}

// resizeImage resamples src to w x h with Catmull-Rom filtering.
func resizeImage(src image.Image, w, h int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst
}
