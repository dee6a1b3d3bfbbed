package ui

import (
	"bytes"
	"embed"
	"fmt"
	"image"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	"github.com/veandco/go-sdl2/sdl"
)

//go:embed assets/*.svg
var assets embed.FS

// rasterize renders an SVG document into a w×h RGBA image.
func rasterize(svg []byte, w, h int) (*image.RGBA, error) {
	icon, err := oksvg.ReadIconStream(bytes.NewReader(svg))
	if err != nil {
		return nil, fmt.Errorf("parse svg: %w", err)
	}

	icon.SetTarget(0, 0, float64(w), float64(h))
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	scanner := rasterx.NewScannerGV(w, h, img, img.Bounds())
	icon.Draw(rasterx.NewDasher(w, h, scanner), 1)
	return img, nil
}

// illustration returns the named asset as a texture of the given size,
// rasterizing it on first use.
func (u *UI) illustration(name string, w, h int32) (*sdl.Texture, error) {
	key := fmt.Sprintf("%s@%dx%d", name, w, h)
	if t, ok := u.imageCache.Get(key); ok {
		return t, nil
	}

	data, err := assets.ReadFile("assets/" + name)
	if err != nil {
		return nil, fmt.Errorf("illustration %s: %w", name, err)
	}
	img, err := rasterize(data, int(w), int(h))
	if err != nil {
		return nil, fmt.Errorf("illustration %s: %w", name, err)
	}

	texture, err := u.textureFromRGBA(img)
	if err != nil {
		return nil, fmt.Errorf("illustration %s: %w", name, err)
	}
	u.imageCache.Set(key, texture)
	return texture, nil
}

// textureFromRGBA uploads img through a surface whose memory layout is
// R, G, B, A bytes.
func (u *UI) textureFromRGBA(img *image.RGBA) (*sdl.Texture, error) {
	w, h := int32(img.Rect.Dx()), int32(img.Rect.Dy())

	surface, err := sdl.CreateRGBSurfaceWithFormat(0, w, h, 32, uint32(sdl.PIXELFORMAT_ABGR8888))
	if err != nil {
		return nil, err
	}
	defer surface.Free()

	surface.Lock()
	pixels := surface.Pixels()
	pitch := int(surface.Pitch)
	rowBytes := int(w) * 4
	for y := 0; y < int(h); y++ {
		copy(pixels[y*pitch:y*pitch+rowBytes], img.Pix[y*img.Stride:y*img.Stride+rowBytes])
	}
	surface.Unlock()

	texture, err := u.win.renderer.CreateTextureFromSurface(surface)
	if err != nil {
		return nil, err
	}
	texture.SetBlendMode(sdl.BLENDMODE_BLEND)
	return texture, nil
}

// drawIllustration draws the named asset centered at cx within a box of
// w×h starting at y. Failures are logged and leave the area empty.
func (u *UI) drawIllustration(name string, cx, y, w, h int32) {
	if u.brokenAssets[name] {
		return
	}
	texture, err := u.illustration(name, w, h)
	if err != nil {
		u.logger.Warn("Illustration unavailable", "name", name, "error", err)
		u.brokenAssets[name] = true
		return
	}
	u.win.renderer.Copy(texture, nil, &sdl.Rect{X: cx - w/2, Y: y, W: w, H: h})
}
