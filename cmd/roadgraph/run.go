package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/voidshard/roadgraph"
)

type growOpts struct {
	configPath string
	steps      int
	seed       int64
	style      string
	outPNG     string
	outJSON    string
	size       int
}

type renderOpts struct {
	inJSON string
	outPNG string
	size   int
}

func runGrow(opts *growOpts) error {
	cfg := &roadgraph.Config{}
	if opts.configPath != "" {
		loaded, err := roadgraph.LoadConfig(opts.configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	if opts.seed != 0 {
		cfg.Seed = opts.seed
	}
	if opts.style != "" {
		cfg.Style = roadgraph.GrowthStyle(opts.style)
	}

	eng, err := roadgraph.New(cfg, cfg.Exclusions.Terrain())
	if err != nil {
		return err
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	// grow in small batches so an interrupt lands between cycles &
	// we can still report / render whatever we have so far
	total := 0
grow:
	for opts.steps == 0 || total < opts.steps {
		batch := cfg.StepsPerFrame
		if opts.steps > 0 && opts.steps-total < batch {
			batch = opts.steps - total
		}

		done, err := eng.Advance(batch)
		if err != nil {
			return err
		}
		total += done

		if done < batch {
			fmt.Printf("network went quiescent after %d cycles\n", total)
			break
		}

		select {
		case <-stop:
			fmt.Printf("interrupted after %d cycles\n", total)
			break grow
		default:
		}
	}

	printStats(eng, cfg)

	snap := eng.Snapshot()
	err = roadgraph.NewMap(snap, opts.size).Save(opts.outPNG)
	if err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", opts.outPNG)

	if opts.outJSON != "" {
		err = eng.SaveJSON(opts.outJSON)
		if err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", opts.outJSON)
	}
	return nil
}

func runRender(opts *renderOpts) error {
	snap, err := roadgraph.LoadSnapshot(opts.inJSON)
	if err != nil {
		return err
	}

	err = roadgraph.NewMap(snap, opts.size).Save(opts.outPNG)
	if err != nil {
		return err
	}
	fmt.Printf("wrote %s (%d nodes, %d roads)\n", opts.outPNG, len(snap.Nodes), len(snap.Roads))
	return nil
}

func printStats(eng *roadgraph.Engine, cfg *roadgraph.Config) {
	mean, stddev := eng.Snapshot().LengthStats()

	fmt.Println("==stats==")
	fmt.Printf("seed: %d style: %s\n", eng.Seed, cfg.Style)
	fmt.Printf("cycles: %d nodes: %d roads: %d\n", eng.Stats.Cycles, eng.NodeCount(), eng.RoadCount())
	fmt.Printf("committed: %d rejected: %d (spacing) %d (terrain)\n",
		eng.Stats.Committed, eng.Stats.RejectedSpacing, eng.Stats.RejectedTerrain)
	fmt.Printf("road length: mean %.3f stddev %.3f\n", mean, stddev)
}
