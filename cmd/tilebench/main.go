// tilebench exercises the dense tiler end to end: it builds a synthetic
// 3D uint32 array write and materializes every intersecting tile, fanning
// the per-tile GetTile calls across a bounded worker pool. This is the
// demo/benchmark surface; the tiler core itself has no CLI.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"golang.org/x/sync/errgroup"

	"github.com/pavlosantoniou/tiledb/buffer"
	"github.com/pavlosantoniou/tiledb/config"
	"github.com/pavlosantoniou/tiledb/coord"
	"github.com/pavlosantoniou/tiledb/diag"
	"github.com/pavlosantoniou/tiledb/schema"
	"github.com/pavlosantoniou/tiledb/subarray"
	"github.com/pavlosantoniou/tiledb/tilebuf"
	"github.com/pavlosantoniou/tiledb/tiler"
	"github.com/pavlosantoniou/tiledb/tilerlog"
)

func main() {
	configPath := flag.String("config", "", "path to a TOML config file (optional)")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		cfg = loaded
	}
	tilerlog.SetFileSink(tilerlog.FileConfig{
		Logfile: cfg.Log.Logfile,
		MaxSize: cfg.Log.MaxSize,
		MaxAge:  cfg.Log.MaxAge,
	})

	if err := run(cfg); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cfg config.Config) error {
	// 100x200x300 domain, 10x10x10 tiles, row-major tile layout.
	lo := coord.NewPoint([]int32{0, 0, 0})
	hi := coord.NewPoint([]int32{99, 199, 299})
	ext := coord.NewPoint([]int32{10, 10, 10})

	fillValue := make([]byte, 4)
	sc := schema.NewStatic(lo, hi, ext, coord.RowMajor, []schema.Attribute{
		{Name: "intensity", Type: schema.TUint32, CellSize: 4, Fill: fillValue},
	})

	subLo := coord.NewPoint([]int32{5, 5, 5})
	subHi := coord.NewPoint([]int32{24, 34, 44})
	sub := subarray.NewUnary[int32](subLo, subHi, coord.RowMajor)

	subBox := coord.NewBox(subLo, subHi)
	cellCount := subBox.NumCells()
	data := make([]byte, cellCount*4)
	for i := range data {
		data[i] = byte(i)
	}
	buffers := map[string]buffer.QueryBuffer{
		"intensity": buffer.Static(data),
	}

	t, err := tiler.New[int32](sc, sub, buffers, tiler.WithFillBatchCells[int32](cfg.FillBatchCells))
	if err != nil {
		return err
	}
	tilerlog.Infof("tiler constructed: tile_num=%d geometry footprint ~%d bytes\n", t.TileNum(), diag.Sizeof(t))

	workers := cfg.Workers
	if workers <= 0 {
		workers = 1
	}

	g, ctx := errgroup.WithContext(context.Background())
	sem := make(chan struct{}, workers)
fanOut:
	for id := uint64(0); id < t.TileNum(); id++ {
		id := id
		select {
		case sem <- struct{}{}:
		case <-ctx.Done():
			break fanOut
		}
		g.Go(func() error {
			defer func() { <-sem }()
			var tile tilebuf.Buffer
			if err := t.GetTile(id, "intensity", &tile); err != nil {
				return fmt.Errorf("tile %d: %w", id, err)
			}
			tilerlog.TileMaterialized(id, "intensity", tile.Size())
			return nil
		})
	}
	return g.Wait()
}
