package emu

import (
	"fmt"
	"image"
)

// Blit unpacks the current video snapshot into dst at one byte per
// pixel, writing the foreground byte for set bits and the background
// byte for clear bits. dst is a top-left origin image of at least
// ScreenWidth x ScreenHeight pixels with the given row stride.
//
// Video RAM is stored rotated: the game draws a 256x224 image in
// column-of-the-cabinet order. Unpacking walks dst bottom-left to
// top-right, one column per 256 bits, which rotates the image back
// upright without a second pass.
//
// Sizing is a fatal precondition: stride must cover the screen width
// and dst must cover the final row. Blit holds the snapshot mutex and
// is safe to call concurrently with ServiceInterrupts.
func (i *IO) Blit(dst []byte, stride int) {
	w := i.video.ScreenWidth()
	h := i.video.ScreenHeight()
	if stride < w {
		panic(fmt.Sprintf("emu: blit stride %d shorter than screen width %d", stride, w))
	}
	if need := stride*(h-1) + w; len(dst) < need {
		panic(fmt.Sprintf("emu: blit buffer is %d bytes, need %d", len(dst), need))
	}

	i.mu.Lock()
	defer i.mu.Unlock()
	i.blitLocked(dst, stride)
}

// blitLocked performs the unpack walk. Callers hold the snapshot mutex
// and have validated dst against the screen geometry.
func (i *IO) blitLocked(dst []byte, stride int) {
	h := i.video.ScreenHeight()

	// pos marks the bottom of the column being filled, cur the pixel
	// within it. Each bit moves cur up one row; running off the top
	// starts the next column.
	pos := stride * (h - 1)
	cur := pos
	for _, b := range i.snapshot {
		for bit := 0; bit < 8; bit++ {
			if b&1 != 0 {
				dst[cur] = i.foreground
			} else {
				dst[cur] = i.background
			}
			b >>= 1
			if cur >= stride {
				cur -= stride
			} else {
				pos++
				cur = pos
			}
		}
	}
}

// BlitRGBA unpacks the current video snapshot into an RGBA image as
// opaque gray levels, for frontends that texture from image.RGBA. The
// image must cover ScreenWidth x ScreenHeight pixels.
func (i *IO) BlitRGBA(img *image.RGBA) {
	w := i.video.ScreenWidth()
	h := i.video.ScreenHeight()
	if img.Rect.Dx() < w || img.Rect.Dy() < h {
		panic(fmt.Sprintf("emu: blit image is %dx%d, need %dx%d", img.Rect.Dx(), img.Rect.Dy(), w, h))
	}

	i.mu.Lock()
	defer i.mu.Unlock()
	if i.plane == nil {
		i.plane = make([]byte, w*h)
	}
	i.blitLocked(i.plane, w)

	for y := 0; y < h; y++ {
		off := img.PixOffset(img.Rect.Min.X, img.Rect.Min.Y+y)
		for _, v := range i.plane[y*w : (y+1)*w] {
			img.Pix[off] = v
			img.Pix[off+1] = v
			img.Pix[off+2] = v
			img.Pix[off+3] = 0xFF
			off += 4
		}
	}
}
