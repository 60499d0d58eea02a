// Package survey measures how AVL trees built from random
// insertion orders actually turn out.
//
// Every tree is built, and optionally thinned out, by a single
// goroutine that owns it; trees are never shared between workers.
package survey

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"runtime"

	"golang.org/x/sync/errgroup"

	"go.lepak.sg/avltree/tree/avl"
)

// Config describes a survey.
type Config struct {
	// Keys is the number of keys inserted into each tree.
	Keys int
	// Trees is the number of trees to build.
	Trees int
	// Workers is the maximum number of trees built at once.
	// If Workers <= 0, runtime.NumCPU() is used.
	Workers int
	// Seed decides every insertion order: tree i uses Seed+i.
	Seed int64
	// RemoveFraction is the share of keys, in [0, 1], removed again
	// in random order after each tree is built.
	RemoveFraction float64
}

func (c Config) validate() error {
	if c.Keys < 0 {
		return fmt.Errorf("survey: negative key count %d", c.Keys)
	}
	if c.Trees <= 0 {
		return fmt.Errorf("survey: need at least one tree, got %d", c.Trees)
	}
	// written this way round so that NaN is rejected too
	if !(c.RemoveFraction >= 0 && c.RemoveFraction <= 1) {
		return fmt.Errorf("survey: remove fraction %v not in [0, 1]", c.RemoveFraction)
	}
	return nil
}

// Result describes one tree.
type Result struct {
	Seed   int64
	Keys   int
	Height int
	Stats  avl.Stats
}

// Summary aggregates the Results of a survey.
type Summary struct {
	Results []Result

	MinHeight, MaxHeight int
	MeanHeight           float64

	// Bound is the tallest an AVL tree with the surviving
	// number of keys could be.
	Bound int
	// Rotations is the total number of single rotations.
	Rotations int
}

var ErrBroken = errors.New("survey: tree failed its invariant check")

// Run builds cfg.Trees trees in parallel with at most cfg.Workers
// in flight, checks each one, and summarizes them.
//
// Context cancellation: If the context is canceled, Run stops starting
// new trees, waits for the running ones to finish, then returns the
// context error.
func Run(ctx context.Context, cfg Config) (*Summary, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	results := make([]Result, cfg.Trees)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	started := 0
	for i := range results {
		i := i
		if gctx.Err() != nil {
			break
		}
		started++
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			r, err := buildOne(cfg, cfg.Seed+int64(i))
			if err != nil {
				return err
			}
			results[i] = r
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if started < len(results) {
		// ctx was canceled before every tree was started
		return nil, ctx.Err()
	}

	return summarize(results), nil
}

func buildOne(cfg Config, seed int64) (Result, error) {
	keys := avl.Shuffled(cfg.Keys, seed)
	tr := avl.BuildFrom(keys...)

	remove := int(float64(cfg.Keys) * cfg.RemoveFraction)
	rd := rand.New(rand.NewSource(^seed))
	rd.Shuffle(len(keys), func(i, j int) {
		keys[i], keys[j] = keys[j], keys[i]
	})
	for _, k := range keys[:remove] {
		if !tr.Remove(k) {
			return Result{}, fmt.Errorf("%w: seed %d: key %d vanished", ErrBroken, seed, k)
		}
	}

	if err := tr.Check(); err != nil {
		return Result{}, fmt.Errorf("%w: seed %d: %v", ErrBroken, seed, err)
	}

	return Result{
		Seed:   seed,
		Keys:   tr.Len(),
		Height: tr.Height(),
		Stats:  tr.Stats(),
	}, nil
}

func summarize(results []Result) *Summary {
	s := &Summary{
		Results:   results,
		MinHeight: results[0].Height,
		MaxHeight: results[0].Height,
		Bound:     avl.HeightBound(results[0].Keys),
	}

	total := 0
	for _, r := range results {
		if r.Height < s.MinHeight {
			s.MinHeight = r.Height
		}
		if r.Height > s.MaxHeight {
			s.MaxHeight = r.Height
		}
		total += r.Height
		s.Rotations += r.Stats.Rotations()
	}
	s.MeanHeight = float64(total) / float64(len(results))

	return s
}
