package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/delaneyj/tickwave/wave"
	"github.com/jamiealquiza/tachymeter"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/urfave/cli/v3"
)

const itersKey = "iters"

func main() {
	cmd := &cli.Command{
		Name:  "benchmark",
		Usage: "Measure tick latency across propagation topologies",
		Flags: []cli.Flag{
			&cli.UintFlag{
				Name:  itersKey,
				Usage: "Number of measured ticks per topology",
				Value: 100,
			},
		},
		Action: run,
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

var (
	ww = []int{1, 10, 100}
	hh = []int{1, 10, 100}
)

func addOne(v int) (int, error) {
	return v + 1, nil
}

func run(ctx context.Context, cmd *cli.Command) error {
	iters := int(cmd.Uint(itersKey))

	tbl := table.NewWriter()
	tbl.SetTitle("tickwave propagation")
	tbl.SetOutputMirror(os.Stdout)
	tbl.AppendHeader(table.Row{"benchmark", "avg", "min", "p75", "p99", "max"})

	for _, w := range ww {
		for _, h := range hh {
			tach := tachymeter.New(&tachymeter.Config{Size: iters})

			world := wave.NewWorld(func(node wave.Handle, err error) {
				log.Panicf("node %v: %v", node, err)
			})
			wave.RegisterType[int](world)

			src := wave.State(world, 1)
			fired := 0
			for i := 0; i < w; i++ {
				last := src
				for j := 0; j < h; j++ {
					last = wave.Computed1(world, addOne, last)
				}
				wave.Effect1(world, func(_ int, _ *wave.World) error {
					fired++
					return nil
				}, last)
			}
			world.RunTick()

			for i := 0; i < iters; i++ {
				if err := wave.Send(world, src, i+2); err != nil {
					return err
				}
				start := time.Now()
				world.RunTick()
				tach.AddTime(time.Since(start))
			}
			if fired == 0 {
				return fmt.Errorf("topology %d*%d never fired its effects", w, h)
			}

			calc := tach.Calc()
			tbl.AppendRows([]table.Row{
				{
					fmt.Sprintf("propagate: %d * %d", w, h),
					calc.Time.Avg,
					calc.Time.Min,
					calc.Time.P75,
					calc.Time.P99,
					calc.Time.Max,
				},
			})
		}
	}

	tbl.Render()
	return nil
}
