package emu

// Core identity, reported by embedding frontends.
const (
	Name    = "space-invaders"
	Version = "1.0.0"
)

// Screen geometry. Video RAM holds a 256x224 raster one bit per pixel,
// but the cabinet mounts the monitor on its side so the player sees a
// 224x256 image. Blit performs the rotation while unpacking.
const (
	ScreenWidth  = 224
	ScreenHeight = 256
)
