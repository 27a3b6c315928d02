package renderer

import "time"

// RenderStats contains statistics about a completed render
type RenderStats struct {
	Width        int           // Image width in pixels
	Height       int           // Image height in pixels
	TotalPixels  int           // Total number of pixels rendered
	TotalSamples int           // Total number of camera samples taken
	NumChunks    int           // Number of chunks the image was split into
	NumWorkers   int           // Number of parallel workers used
	RenderTime   time.Duration // Wall-clock render duration
}
