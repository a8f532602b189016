package uci

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/daystram/bitvariant/bench"
	"github.com/daystram/bitvariant/board"
	"github.com/daystram/bitvariant/engine"
)

var (
	EngineName   = "bitvariant"
	EngineAuthor = "bitvariant authors"

	defaultOptions = options{
		depth:         4,
		timeout:       10 * time.Second,
		evaluator:     "material",
		hashTableSize: engine.DefaultEvalCacheSize,
		parallelPerft: true,
	}
)

type options struct {
	depth         uint8
	timeout       time.Duration
	evaluator     string
	hashTableSize uint64
	parallelPerft bool
}

// Interface speaks a UCI-flavored line protocol. Moves are in coordinate
// notation and are accepted only if the generator produces the resulting
// state.
type Interface struct {
	in      io.Reader
	out     io.Writer
	outMu   sync.Mutex
	options options
	seed    uint64

	state board.State
	turn  board.Turn
	maps  *board.MoveMaps
	gen   *board.Generator
	bot   *engine.Bot

	engineMu      sync.Mutex
	engineRunning bool
	engineCancel  context.CancelFunc
	engineDone    sync.WaitGroup
}

// NewInterface reads commands from in and writes replies to out. maps may be
// nil.
func NewInterface(in io.Reader, out io.Writer, maps *board.MoveMaps, seed uint64) *Interface {
	if maps == nil {
		maps = board.NewMoveMaps()
	}
	return &Interface{
		in:      in,
		out:     out,
		options: defaultOptions,
		seed:    seed,
		maps:    maps,
		gen:     board.NewGenerator(maps),
	}
}

// Run serves commands until quit or the end of input. A search still running
// at that point is stopped.
func (i *Interface) Run() error {
	ctx := context.Background()
	i.reset(ctx)
	defer i.commandStop(ctx)

	scanner := bufio.NewScanner(i.in)
	for scanner.Scan() {
		args := strings.Fields(scanner.Text())
		if len(args) == 0 {
			continue
		}
		switch args[0] {
		case "uci":
			i.commandUCI(ctx)
		case "ucinewgame":
			i.reset(ctx)
		case "isready":
			i.commandReady(ctx)
		case "setoption":
			i.commandSetOption(ctx, args[1:])
		case "position":
			i.commandPosition(ctx, args[1:])
		case "d":
			i.commandDraw(ctx)
		case "go":
			i.commandGo(ctx, args[1:])
		case "stop":
			i.commandStop(ctx)
		case "quit":
			return nil
		default:
			i.println(fmt.Sprintf("info string unknown command %q", args[0]))
		}
	}
	return scanner.Err()
}

func (i *Interface) commandUCI(_ context.Context) {
	i.println(fmt.Sprintf("id name %s", EngineName))
	i.println(fmt.Sprintf("id author %s", EngineAuthor))
	i.println(fmt.Sprintf("option name Depth type spin default %d min 0 max 16", defaultOptions.depth))
	i.println(fmt.Sprintf("option name Timeout type spin default %d min 100 max 3600000", defaultOptions.timeout.Milliseconds()))
	i.println(fmt.Sprintf("option name Evaluator type combo default %s var %s",
		defaultOptions.evaluator, strings.Join(engine.EvaluatorNames(), " var ")))
	i.println(fmt.Sprintf("option name Hash type spin default %d min 0 max 16777216", defaultOptions.hashTableSize))
	i.println(fmt.Sprintf("option name ParallelPerft type check default %v", defaultOptions.parallelPerft))
	i.println("uciok")
}

func (i *Interface) commandReady(_ context.Context) {
	i.println("readyok")
}

func (i *Interface) commandSetOption(_ context.Context, args []string) {
	if i.isEngineRunning() || len(args) < 4 || args[0] != "name" || args[2] != "value" {
		return
	}
	switch name, valueStr := strings.ToLower(args[1]), args[3]; name {
	case "depth":
		value, err := strconv.ParseUint(valueStr, 10, 8)
		if err != nil || value > 16 {
			return
		}
		i.options.depth = uint8(value)
	case "timeout":
		value, err := strconv.ParseUint(valueStr, 10, 64)
		if err != nil || value < 100 || value > 3600000 {
			return
		}
		i.options.timeout = time.Duration(value * uint64(time.Millisecond))
	case "evaluator":
		if _, err := engine.NewEvaluatorFromName(valueStr); err != nil {
			i.println("info string " + err.Error())
			return
		}
		i.options.evaluator = strings.ToLower(valueStr)
	case "hash":
		value, err := strconv.ParseUint(valueStr, 10, 64)
		if err != nil || value > 1<<24 {
			return
		}
		i.options.hashTableSize = value
	case "parallelperft":
		value, err := strconv.ParseBool(valueStr)
		if err != nil {
			return
		}
		i.options.parallelPerft = value
	default:
		return
	}
	i.newBot()
}

// commandPosition handles "startpos" or "fen <six fields>", optionally
// followed by "moves" and coordinate moves.
func (i *Interface) commandPosition(_ context.Context, args []string) {
	if i.isEngineRunning() || len(args) == 0 {
		return
	}

	var fen string
	var rest []string
	switch args[0] {
	case "startpos":
		fen = board.DefaultStartingPositionFEN
		rest = args[1:]
	case "fen":
		if len(args) < 7 {
			i.println("info string incomplete fen")
			return
		}
		fen = strings.Join(args[1:7], " ")
		rest = args[7:]
	default:
		return
	}

	s, t, err := board.NewState(board.WithFEN(fen))
	if err != nil {
		i.println("info string " + err.Error())
		return
	}
	if len(rest) > 0 {
		if rest[0] != "moves" {
			return
		}
		for _, n := range rest[1:] {
			if s, err = i.play(s, t, n); err != nil {
				i.println("info string " + err.Error())
				return
			}
			t = t.Next()
		}
	}
	i.state, i.turn = s, t
}

func (i *Interface) play(s board.State, t board.Turn, n string) (board.State, error) {
	from, to, err := board.ParseCoordinate(n)
	if err != nil {
		return board.State{}, err
	}
	next, mv, err := board.Apply(s, from, to)
	if err != nil {
		return board.State{}, err
	}
	if mv.Slice.Side() != t.Side() {
		return board.State{}, fmt.Errorf("%w: %s is not %s to move", board.ErrNotAMove, n, t.Side())
	}
	for _, candidate := range i.gen.StatesForTurn(s, t) {
		if candidate == next {
			return next, nil
		}
	}
	return board.State{}, fmt.Errorf("%w: %s is not reachable", board.ErrNotAMove, n)
}

func (i *Interface) commandDraw(_ context.Context) {
	i.println(i.state.Draw())
	i.println(i.state.DebugString(i.turn))
}

func (i *Interface) commandGo(ctx context.Context, args []string) {
	if i.isEngineRunning() {
		return
	}
	depth := i.options.depth
	if len(args) > 0 {
		switch mode := args[0]; mode {
		case "perft":
			if len(args) != 2 {
				return
			}
			d, err := strconv.Atoi(args[1])
			if err != nil || d < 0 {
				return
			}

			out := make(chan string, 64)
			done := make(chan struct{})
			go func() {
				defer close(done)
				for s := range out {
					i.println(s)
				}
			}()
			_, _ = bench.Perft(d, i.state.FEN(i.turn), i.options.parallelPerft, true, i.maps, out)
			close(out)
			<-done
			return
		case "depth":
			if len(args) != 2 {
				return
			}
			d, err := strconv.ParseUint(args[1], 10, 8)
			if err != nil {
				return
			}
			depth = uint8(d)
		default:
			return
		}
	}

	engineCtx, engineCancel := context.WithTimeout(ctx, i.options.timeout)
	i.engineMu.Lock()
	i.engineRunning = true
	i.engineCancel = engineCancel
	i.engineMu.Unlock()
	i.bot.SetDepth(depth)
	s, t := i.state, i.turn

	i.engineDone.Add(1)
	go func() {
		defer i.engineDone.Done()
		defer func() {
			engineCancel()
			i.engineMu.Lock()
			i.engineRunning = false
			i.engineMu.Unlock()
		}()

		next, err := i.bot.SelectStateContext(engineCtx, s, t)
		if err != nil && !errors.Is(err, engine.ErrSearchTruncated) {
			i.println("info string " + err.Error())
			i.println("bestmove 0000")
			return
		}
		mv, err := board.Diff(s, next)
		if err != nil {
			i.println("info string " + err.Error())
			i.println("bestmove 0000")
			return
		}
		i.println(fmt.Sprintf("bestmove %s", mv.Coordinate()))
	}()
}

func (i *Interface) commandStop(_ context.Context) {
	i.engineMu.Lock()
	if i.engineRunning {
		i.engineCancel()
	}
	i.engineMu.Unlock()
	i.engineDone.Wait()
}

func (i *Interface) isEngineRunning() bool {
	i.engineMu.Lock()
	defer i.engineMu.Unlock()
	return i.engineRunning
}

func (i *Interface) reset(ctx context.Context) {
	i.commandStop(ctx)
	i.commandPosition(ctx, []string{"startpos"})
	i.newBot()
}

func (i *Interface) newBot() {
	eval, err := engine.NewEvaluatorFromName(i.options.evaluator)
	if err != nil {
		eval = engine.MaterialEvaluator
	}
	i.bot = engine.NewBot(eval, i.options.depth,
		engine.WithGenerator(i.gen),
		engine.WithSeed(i.seed),
		engine.WithEvalCache(i.options.hashTableSize),
		engine.WithLogger(func(a ...any) {
			i.println("info string " + fmt.Sprint(a...))
		}),
	)
}

func (i *Interface) println(a ...any) {
	i.outMu.Lock()
	defer i.outMu.Unlock()
	fmt.Fprintln(i.out, a...)
}
