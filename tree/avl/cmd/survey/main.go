// Command survey builds many AVL trees from random insertion
// orders and reports how tall they get.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/golang/glog"
	"github.com/spf13/pflag"

	"go.lepak.sg/avltree/tree/avl"
	"go.lepak.sg/avltree/tree/avl/survey"
)

var (
	num      = pflag.IntP("num", "n", 1000, "number of keys in each tree")
	trees    = pflag.IntP("trees", "t", 100, "number of trees to build")
	workers  = pflag.IntP("workers", "w", 0, "trees built at once (default number of CPUs)")
	seed     = pflag.Int64P("seed", "s", 0, "seed (default current unix time in ns)")
	fraction = pflag.Float64P("remove", "r", 0, "fraction of keys removed again after building")
	show     = pflag.Bool("show", false, "print every tree's result")
)

func main() {
	pflag.CommandLine.AddGoFlagSet(flag.CommandLine)
	pflag.Parse()
	_ = flag.CommandLine.Parse(nil)
	defer glog.Flush()

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	glog.V(1).Infof("seed %d", *seed)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	start := time.Now()
	s, err := survey.Run(ctx, survey.Config{
		Keys:           *num,
		Trees:          *trees,
		Workers:        *workers,
		Seed:           *seed,
		RemoveFraction: *fraction,
	})
	if err != nil {
		glog.Exitf("survey failed: %v", err)
	}
	glog.V(1).Infof("built %d trees in %v", len(s.Results), time.Since(start))

	if *show {
		for _, r := range s.Results {
			fmt.Printf("seed=%d keys=%d height=%d rotations=%d\n",
				r.Seed, r.Keys, r.Height, r.Stats.Rotations())
		}
	}

	fmt.Printf("height: min %d, mean %.2f, max %d\n", s.MinHeight, s.MeanHeight, s.MaxHeight)
	if len(s.Results) > 0 {
		keys := s.Results[0].Keys
		fmt.Printf("bound: %d (1.44*log2(n+2) = %.2f)\n", s.Bound, avl.HeightLimit(keys))
	}
	fmt.Printf("rotations: %d (%.2f per tree)\n", s.Rotations, float64(s.Rotations)/float64(len(s.Results)))
}
