package main

import (
	"flag"
	"net/http"
	_ "net/http/pprof"
	"os"
	"strings"
	"time"

	"github.com/apex/log"
	"github.com/apex/log/handlers/cli"

	"github.com/daystram/bitvariant/board"
	"github.com/daystram/bitvariant/store"
)

const (
	exitOK = iota
	exitErr
)

var (
	profile = flag.Bool("profile", false, "serve pprof endpoint")
	verbose = flag.Bool("verbose", false, "log debug messages")

	movegenRun  = flag.Bool("movegen", false, "run movegen mode")
	movegenDraw = flag.Bool("movegen.draw", false, "draw successor states in movegen mode")

	stepRun   = flag.Bool("step", false, "run step mode")
	stepCount = flag.Int("step.count", 200, "number of random plies in step mode")

	perftDepth    = flag.Int("perft", 0, "run perft to the given depth")
	perftParallel = flag.Bool("perft.parallel", true, "walk the perft tree in parallel")

	selfplayPlies = flag.Int("selfplay", 0, "play the given number of plies bot against bot")
	selfplayEval  = flag.String("eval", "material", "evaluator used by the bot")
	depth         = flag.Uint("depth", 2, "bot search depth")
	timeout       = flag.Duration("timeout", 0, "search time limit per move, 0 for none")

	svgOut  = flag.String("svg", "", "write the position as SVG to the given file")
	svgCell = flag.Int("svg.cell", 48, "SVG cell size in pixels")

	cacheDir = flag.String("cache", "", "move map cache directory, \"default\" for the user cache directory")
	seed     = flag.Uint64("seed", 0, "random seed, 0 for time based")
)

func main() {
	flag.Parse()
	log.SetHandler(cli.New(os.Stderr))
	if *verbose {
		log.SetLevel(log.DebugLevel)
	}

	if *profile {
		runProfiler()
	}

	err := realMain(flag.Args())
	if err != nil {
		log.WithError(err).Error("exiting")
		os.Exit(exitErr)
	}
	os.Exit(exitOK)
}

func runProfiler() {
	go func() {
		addr := "localhost:6060"
		log.Infof("starting pprof endpoint: http://%s/debug/pprof", addr)
		_ = http.ListenAndServe(addr, nil)
	}()
}

func realMain(args []string) (err error) {
	fen := board.DefaultStartingPositionFEN
	if len(args) > 0 {
		fen = strings.Join(args, " ")
	}
	if *seed == 0 {
		*seed = uint64(time.Now().UnixNano())
	}

	maps := board.NewMoveMaps()
	if *cacheDir != "" {
		st, openErr := openCache(*cacheDir, maps)
		if openErr != nil {
			return openErr
		}
		defer func() {
			if saveErr := saveCache(st, maps); err == nil {
				err = saveErr
			}
		}()
	}

	switch {
	case *svgOut != "":
		return writeSVG(fen, *svgOut, *svgCell)
	case *movegenRun:
		return movegen(fen, maps, *movegenDraw)
	case *stepRun:
		return step(fen, maps, *stepCount, *seed)
	case *perftDepth > 0:
		return perft(*perftDepth, fen, maps, *perftParallel)
	case *selfplayPlies > 0:
		return selfplay(fen, maps, *selfplayPlies, *selfplayEval, uint8(*depth), *timeout, *seed)
	}
	return runUCI(maps, *seed)
}

func openCache(dir string, maps *board.MoveMaps) (*store.Store, error) {
	if dir == "default" {
		var err error
		if dir, err = store.DefaultDir(); err != nil {
			return nil, err
		}
	}
	st, err := store.Open(dir)
	if err != nil {
		return nil, err
	}
	start := time.Now()
	n, err := st.Load(maps)
	if err != nil {
		_ = st.Close()
		return nil, err
	}
	log.WithFields(log.Fields{"dir": dir, "entries": n, "elapsed": time.Since(start)}).Info("move maps loaded")
	return st, nil
}

func saveCache(st *store.Store, maps *board.MoveMaps) error {
	defer st.Close()
	n, err := st.Save(maps)
	if err != nil {
		return err
	}
	hits, misses := maps.Stats()
	log.WithFields(log.Fields{"entries": n, "hits": hits, "misses": misses}).Info("move maps saved")
	return nil
}
