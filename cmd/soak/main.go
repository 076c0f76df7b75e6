package main

import (
	"flag"
	"log"
	"os"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/delaneyj/tickwave/wave"
	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"
)

// Drives many ticks over a wide graph with tasks in flight and prints
// what actually ran, as a cheap way to spot lost or duplicated
// notifications over time.
func main() {
	ticks := flag.Int("ticks", 10_000, "ticks to run")
	lanes := flag.Int("lanes", 64, "independent signal lanes")
	flag.Parse()

	world := wave.NewWorld(func(node wave.Handle, err error) {
		log.Printf("tick error on %v: %v", node, err)
	})
	wave.RegisterType[int](world)

	var effectRuns, taskRuns atomic.Int64

	sources := make([]wave.Handle, *lanes)
	for i := range sources {
		src := wave.State(world, 0)
		sources[i] = src
		doubled := wave.Computed1(world, func(v int) (int, error) {
			return v * 2, nil
		}, src)
		wave.Effect1(world, func(_ int, _ *wave.World) error {
			effectRuns.Add(1)
			return nil
		}, doubled)
		wave.Task1(world, func(_ int) (wave.Batch, error) {
			taskRuns.Add(1)
			time.Sleep(time.Millisecond)
			return wave.Batch{}, nil
		}, doubled)
	}
	world.RunTick()

	start := time.Now()
	errCount := 0
	for i := 0; i < *ticks; i++ {
		lane := i % *lanes
		if err := wave.Send(world, sources[lane], i); err != nil {
			log.Fatal(err)
		}
		world.RunTick()
		errCount += len(world.Context().Errors)
	}
	// drain the stragglers
	for world.Context().Running.Cardinality() > 0 {
		time.Sleep(time.Millisecond)
		world.RunTick()
	}
	elapsed := time.Since(start)

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"metric", "value"})
	table.Append([]string{"ticks", humanize.Comma(int64(*ticks))})
	table.Append([]string{"lanes", humanize.Comma(int64(*lanes))})
	table.Append([]string{"effect runs", humanize.Comma(effectRuns.Load())})
	table.Append([]string{"task runs", humanize.Comma(taskRuns.Load())})
	table.Append([]string{"tick errors", humanize.Comma(int64(errCount))})
	table.Append([]string{"elapsed", elapsed.String()})
	table.Append([]string{"ticks/sec", strconv.FormatFloat(float64(*ticks)/elapsed.Seconds(), 'f', 0, 64)})
	table.Render()
}
