package renderer

// DefaultChunksPerWorker scales the default chunk count from the hardware
// parallelism. It balances load against dispatch overhead: enough chunks
// that a slow region of the image does not stall the pool, few enough that
// channel traffic stays negligible.
const DefaultChunksPerWorker = 8

// Chunk is a contiguous range of row-major pixel indices assigned to one
// worker. Chunks never overlap and together cover every pixel exactly once.
type Chunk struct {
	ID    int
	Start int // First pixel index, inclusive
	End   int // Last pixel index, exclusive
}

// Size returns the number of pixels in the chunk
func (c Chunk) Size() int {
	return c.End - c.Start
}

// PartitionChunks splits totalPixels row-major indices into chunkCount
// contiguous chunks of size totalPixels/chunkCount, with the division
// remainder accumulated into the last chunk.
func PartitionChunks(totalPixels, chunkCount int) []Chunk {
	if chunkCount < 1 {
		chunkCount = 1
	}
	if totalPixels > 0 && chunkCount > totalPixels {
		chunkCount = totalPixels
	}

	size := totalPixels / chunkCount
	chunks := make([]Chunk, 0, chunkCount)
	for i := 0; i < chunkCount; i++ {
		start := i * size
		end := start + size
		if i == chunkCount-1 {
			end = totalPixels
		}
		chunks = append(chunks, Chunk{ID: i, Start: start, End: end})
	}

	return chunks
}
