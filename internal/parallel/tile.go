// Package parallel runs lane-batch work on a work-stealing worker pool.
//
// A run covers a contiguous range of lane batches (4 samples each). The
// range is cut into tiles of a fixed number of batches; every tile is an
// independent work item writing its own slice of the output. A Dispatcher
// turns one run into tiles, submits them to a WorkerPool and returns a
// Handle that completes when the last tile has finished.
//
// Thread safety: WorkerPool and Dispatcher are safe for concurrent use.
// Handles may be waited on from any number of goroutines.
package parallel

// DefaultTileSize is the number of lane batches per tile (256 samples).
const DefaultTileSize = 64

// Tile is a half-open range [Start, End) of lane batches.
type Tile struct {
	// Index is the tile's position in the run.
	Index int

	// Start is the first batch of the tile.
	Start int

	// End is one past the last batch of the tile.
	End int
}

// Len returns the number of batches in the tile.
func (t Tile) Len() int {
	return t.End - t.Start
}

// Tiles splits [0, batches) into tiles of tileSize batches. The last tile
// may be shorter. A tileSize below 1 uses DefaultTileSize.
func Tiles(batches, tileSize int) []Tile {
	if batches <= 0 {
		return nil
	}
	if tileSize < 1 {
		tileSize = DefaultTileSize
	}

	count := (batches + tileSize - 1) / tileSize
	tiles := make([]Tile, count)
	for i := range tiles {
		start := i * tileSize
		tiles[i] = Tile{
			Index: i,
			Start: start,
			End:   min(start+tileSize, batches),
		}
	}
	return tiles
}
