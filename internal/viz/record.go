package viz

import (
	"errors"
	"image"
	"image/color"
	"image/gif"
	"os"
)

// ErrNoFrames is returned when a recording is saved before any frame
// was captured.
var ErrNoFrames = errors.New("viz: no frames captured")

// CaptureFrame rasterizes the canvas dot grid into a paletted image.
// Sprites are not rasterized; recordings capture the orbit geometry.
func CaptureFrame(c *Canvas) *image.Paletted {
	charW, charH := 8, 16
	imgW, imgH := c.Width*charW, c.Height*charH
	img := image.NewPaletted(image.Rect(0, 0, imgW, imgH), color.Palette{color.Black, color.White})

	dotW, dotH := charW/2, charH/4
	for row := 0; row < c.Height; row++ {
		for col := 0; col < c.Width; col++ {
			r := c.Grid[row][col]
			if r <= 0x2800 {
				continue
			}
			pattern := int(r - 0x2800)
			baseX, baseY := col*charW, row*charH
			for dy := 0; dy < 4; dy++ {
				for dx := 0; dx < 2; dx++ {
					if pattern&pixelMap[dy][dx] == 0 {
						continue
					}
					for py := 0; py < dotH; py++ {
						for px := 0; px < dotW; px++ {
							img.SetColorIndex(baseX+dx*dotW+px, baseY+dy*dotH+py, 1)
						}
					}
				}
			}
		}
	}

	return img
}

// SaveGIF writes captured frames as a looping GIF.
func SaveGIF(path string, frames []*image.Paletted) error {
	if len(frames) == 0 {
		return ErrNoFrames
	}

	anim := gif.GIF{LoopCount: 0}
	for _, frame := range frames {
		anim.Image = append(anim.Image, frame)
		anim.Delay = append(anim.Delay, 2)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return gif.EncodeAll(f, &anim)
}
