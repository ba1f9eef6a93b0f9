package main

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"os"
	"time"
)

// TakeScreenshot writes the renderer's current frame buffer to a png next
// to the executable. The CPU buffer is the source of truth so no GPU
// readback is needed.
func TakeScreenshot(r *Renderer) (string, error) {
	img := image.NewNRGBA(image.Rect(0, 0, r.W, r.H))
	copy(img.Pix, r.Buf)

	timeStr := time.Now().Format("0102150405")
	filename := fmt.Sprintf("aura-%s.png", timeStr)

	nameCounter := 1
	for {
		if _, err := os.Stat(filename); os.IsNotExist(err) {
			break
		}
		nameCounter += 1
		filename = fmt.Sprintf("aura-%s-(%d).png", timeStr, nameCounter)
	}

	buffer := &bytes.Buffer{}
	if err := png.Encode(buffer, img); err != nil {
		return "", err
	}

	if err := os.WriteFile(filename, buffer.Bytes(), 0644); err != nil {
		return "", err
	}

	return filename, nil
}
