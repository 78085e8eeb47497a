// Command perft runs the move generator's node-counting traversal
// against either a single ad hoc FEN or the fixture suite in
// testdata/perft_suite.toml, logging results with zap the way the
// teacher's own CLI entry points do, and supporting the same
// cpuprofile/memprofile flags as the teacher's internal/perft.go did.
package main

import (
	"flag"
	"os"
	"runtime/pprof"
	"time"

	"github.com/BurntSushi/toml"
	"go.uber.org/zap"

	"github.com/kagenoshin/zugzwang"
	"github.com/kagenoshin/zugzwang/internal/fen"
	"github.com/kagenoshin/zugzwang/internal/perft"
)

type fixture struct {
	Name   string `toml:"name"`
	FEN    string `toml:"fen"`
	Depths []int  `toml:"depths"`
}

type suite struct {
	Positions []fixture `toml:"positions"`
}

func main() {
	depth := flag.Int("depth", 5, "search depth for an ad hoc -fen run")
	fenFlag := flag.String("fen", "", "run a single position instead of the fixture suite")
	suitePath := flag.String("suite", "testdata/perft_suite.toml", "fixture suite to run when -fen is unset")
	dumbFill := flag.Bool("dumbfill", false, "use the dumb7fill attack provider instead of obstruction-difference")
	cpuProfile := flag.String("cpuprofile", "", "file to write a CPU profile")
	memProfile := flag.String("memprofile", "", "file to write a heap profile")
	verbose := flag.Bool("verbose", false, "log development-level detail instead of production JSON")
	flag.Parse()

	var logger *zap.Logger
	var err error
	if *verbose {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	sugar := logger.Sugar()

	if *cpuProfile != "" {
		f, err := os.Create(*cpuProfile)
		if err != nil {
			sugar.Fatalw("create cpu profile", "error", err)
		}
		pprof.StartCPUProfile(f)
		defer pprof.StopCPUProfile()
	}
	if *memProfile != "" {
		f, err := os.Create(*memProfile)
		if err != nil {
			sugar.Fatalw("create mem profile", "error", err)
		}
		defer func() {
			pprof.WriteHeapProfile(f)
			f.Close()
		}()
	}

	var provider zugzwang.AttackProvider = zugzwang.ObsDiffPanopticon{}
	if *dumbFill {
		provider = zugzwang.DumbFillPanopticon{}
	}
	rules := zugzwang.ClassicCastlingRules()
	zt := zugzwang.NewFullZobristTables()

	if *fenFlag != "" {
		runAdHoc(sugar, provider, rules, zt, *fenFlag, *depth)
		return
	}
	runSuite(sugar, provider, rules, zt, *suitePath)
}

func runAdHoc(sugar *zap.SugaredLogger, provider zugzwang.AttackProvider, rules *zugzwang.CastlingRules, zt zugzwang.ZobristTables, fenStr string, depth int) {
	b, err := fen.Parse(fen.FullTotals, fenStr, rules, zt)
	if err != nil {
		sugar.Fatalw("parse fen", "fen", fenStr, "error", err)
	}

	start := time.Now()
	nodes := perft.Nodes(provider, b, depth)
	elapsed := time.Since(start)

	sugar.Infow("perft",
		"fen", fenStr,
		"depth", depth,
		"nodes", nodes,
		"elapsed", elapsed,
	)
}

func runSuite(sugar *zap.SugaredLogger, provider zugzwang.AttackProvider, rules *zugzwang.CastlingRules, zt zugzwang.ZobristTables, path string) {
	var s suite
	if _, err := toml.DecodeFile(path, &s); err != nil {
		sugar.Fatalw("decode suite", "path", path, "error", err)
	}

	failures := 0
	for _, pos := range s.Positions {
		b, err := fen.Parse(fen.FullTotals, pos.FEN, rules, zt)
		if err != nil {
			sugar.Errorw("parse fixture", "name", pos.Name, "error", err)
			failures++
			continue
		}

		for i, want := range pos.Depths {
			depth := i + 1
			start := time.Now()
			got := perft.Nodes(provider, b, depth)
			elapsed := time.Since(start)

			if got != want {
				failures++
				sugar.Errorw("perft mismatch",
					"name", pos.Name, "depth", depth, "got", got, "want", want)
				continue
			}
			sugar.Infow("perft ok",
				"name", pos.Name, "depth", depth, "nodes", got, "elapsed", elapsed)
		}
	}

	if failures > 0 {
		sugar.Fatalw("perft suite failed", "failures", failures)
	}
}
