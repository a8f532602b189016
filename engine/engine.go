package engine

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"golang.org/x/exp/constraints"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/daystram/bitvariant/board"
)

// ScoreInfinite bounds every evaluation. Evaluator results are clamped to the
// open interval (-ScoreInfinite, ScoreInfinite).
const ScoreInfinite Score = math.MaxInt16

var (
	ErrNoSuccessors    = errors.New("no successor states")
	ErrSearchTruncated = errors.New("search truncated")
	ErrInvalidState    = errors.New("invalid state")
)

// Score is positive in favor of White.
type Score int32

func (s Score) String() string {
	switch s {
	case ScoreInfinite:
		return "+inf"
	case -ScoreInfinite:
		return "-inf"
	}
	if s > 0 {
		return fmt.Sprintf("+%d", s)
	}
	return fmt.Sprintf("%d", s)
}

// Successors enumerates the states reachable in one move. *board.Generator
// satisfies it.
type Successors interface {
	StatesForTurn(s board.State, t board.Turn) []board.State
}

func DiscardLogger(...any) {}

type SearchStats struct {
	Nodes     uint64
	Cutoffs   uint64
	Elapsed   time.Duration
	Truncated bool
}

type botConfig struct {
	gen       Successors
	seed      uint64
	nodeLimit uint64
	cacheSize uint64
	logger    func(...any)
}

type BotOption func(*botConfig)

func WithGenerator(gen Successors) BotOption {
	return func(cfg *botConfig) {
		cfg.gen = gen
	}
}

// WithSeed fixes the shuffle applied to candidate states before selection.
func WithSeed(seed uint64) BotOption {
	return func(cfg *botConfig) {
		cfg.seed = seed
	}
}

// WithNodeLimit stops SelectState after n visited nodes. Zero means no limit.
func WithNodeLimit(n uint64) BotOption {
	return func(cfg *botConfig) {
		cfg.nodeLimit = n
	}
}

// WithEvalCache sets the number of cached evaluations, rounded down to a power
// of two. Zero disables the cache.
func WithEvalCache(size uint64) BotOption {
	return func(cfg *botConfig) {
		cfg.cacheSize = size
	}
}

func WithLogger(logger func(...any)) BotOption {
	return func(cfg *botConfig) {
		cfg.logger = logger
	}
}

// Bot picks successor states by depth-limited minimax with alpha-beta pruning.
// A Bot is not safe for concurrent use; give each goroutine its own and share
// the generator's move maps instead.
type Bot struct {
	eval      Evaluator
	depth     uint8
	gen       Successors
	rand      *board.PseudoRand
	nodeLimit uint64
	tt        *TranspositionTable
	clock     *Clock
	logger    func(...any)

	stats SearchStats
}

// NewBot returns a Bot looking depth plies past each candidate state. Depth 0
// scores candidates with eval directly.
func NewBot(eval Evaluator, depth uint8, opts ...BotOption) *Bot {
	cfg := &botConfig{
		seed:      uint64(time.Now().UnixNano()),
		cacheSize: DefaultEvalCacheSize,
		logger:    DiscardLogger,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.gen == nil {
		cfg.gen = board.NewGenerator(nil)
	}

	r := board.NewPseudoRand()
	r.Seed(cfg.seed)
	return &Bot{
		eval:      eval,
		depth:     depth,
		gen:       cfg.gen,
		rand:      r,
		nodeLimit: cfg.nodeLimit,
		tt:        NewTranspositionTable(cfg.cacheSize),
		clock:     NewClock(),
		logger:    cfg.logger,
	}
}

func (b *Bot) Depth() uint8 {
	return b.depth
}

func (b *Bot) SetDepth(depth uint8) {
	b.depth = depth
}

// Stats reports the last SelectState call.
func (b *Bot) Stats() SearchStats {
	return b.stats
}

func (b *Bot) TranspositionTable() *TranspositionTable {
	return b.tt
}

func (b *Bot) SelectState(s board.State, t board.Turn) (board.State, error) {
	return b.SelectStateContext(context.Background(), s, t)
}

// SelectStateContext returns the successor of s with the best minimax value
// for t's side. Candidates are shuffled first and only a strictly better value
// replaces the current pick, so ties are broken at random.
//
// When ctx ends or the node limit is reached the error wraps
// ErrSearchTruncated and the returned state is the best among the candidates
// searched to completion, or the first candidate if there is none.
func (b *Bot) SelectStateContext(ctx context.Context, s board.State, t board.Turn) (board.State, error) {
	if err := s.Validate(); err != nil {
		return board.State{}, fmt.Errorf("%w: %v", ErrInvalidState, err)
	}
	candidates := b.gen.StatesForTurn(s, t)
	if len(candidates) == 0 {
		return board.State{}, fmt.Errorf("%w: %s to move", ErrNoSuccessors, t.Side())
	}
	b.shuffle(candidates)

	b.stats = SearchStats{}
	startTime := time.Now()
	b.clock.Start(ctx, ClockConfig{Nodes: b.nodeLimit})
	defer b.clock.Stop()

	maximizing := t.Side() == board.SideWhite
	best, bestScore := candidates[0], -ScoreInfinite
	if !maximizing {
		bestScore = ScoreInfinite
	}
	var searched int
	for _, next := range candidates {
		score := b.minimax(next, t.Next(), b.depth, -ScoreInfinite, ScoreInfinite)
		if b.clock.Done() {
			b.stats.Truncated = true
			break
		}
		if searched == 0 || (maximizing && score > bestScore) || (!maximizing && score < bestScore) {
			best, bestScore = next, score
		}
		searched++
	}
	b.stats.Nodes = b.clock.Nodes()
	b.stats.Elapsed = time.Since(startTime)

	hits, misses, _ := b.tt.Stats()
	b.logger(message.NewPrinter(language.English).
		Sprintf("depth:%d [%s] candidates:%d/%d nodes:%d (%.0fn/s) cutoffs:%d cache:%d/%d t:%s",
			b.depth, bestScore, searched, len(candidates), b.stats.Nodes,
			float64(b.stats.Nodes)/((b.stats.Elapsed + 1).Seconds()), b.stats.Cutoffs,
			hits, hits+misses, b.stats.Elapsed))

	if b.stats.Truncated {
		return best, fmt.Errorf("%w: %d of %d candidates searched after %d nodes",
			ErrSearchTruncated, searched, len(candidates), b.stats.Nodes)
	}
	return best, nil
}

// Minimax returns the alpha-beta value of s with t to move, searching depth
// plies. It ignores the node limit.
func (b *Bot) Minimax(s board.State, t board.Turn, depth uint8, alpha, beta Score) Score {
	b.clock.Start(context.Background(), ClockConfig{})
	defer b.clock.Stop()
	return b.minimax(s, t, depth, alpha, beta)
}

// FullMinimax returns the value of s without pruning.
func (b *Bot) FullMinimax(s board.State, t board.Turn, depth uint8) Score {
	if depth == 0 {
		return b.evaluate(s)
	}
	successors := b.gen.StatesForTurn(s, t)
	if len(successors) == 0 {
		return b.evaluate(s)
	}
	maximizing := t.Side() == board.SideWhite
	best := -ScoreInfinite
	if !maximizing {
		best = ScoreInfinite
	}
	for _, next := range successors {
		score := b.FullMinimax(next, t.Next(), depth-1)
		if maximizing {
			best = max(best, score)
		} else {
			best = min(best, score)
		}
	}
	return best
}

// A side without successors is scored by its static evaluation. Once the clock
// is done the returned values are meaningless and callers must check it.
func (b *Bot) minimax(s board.State, t board.Turn, depth uint8, alpha, beta Score) Score {
	if b.clock.Tick() {
		return 0
	}
	if depth == 0 {
		return b.evaluate(s)
	}
	successors := b.gen.StatesForTurn(s, t)
	if len(successors) == 0 {
		return b.evaluate(s)
	}

	if t.Side() == board.SideWhite {
		best := -ScoreInfinite
		for _, next := range successors {
			best = max(best, b.minimax(next, t.Next(), depth-1, alpha, beta))
			alpha = max(alpha, best)
			if alpha >= beta {
				b.stats.Cutoffs++
				break
			}
		}
		return best
	}

	best := ScoreInfinite
	for _, next := range successors {
		best = min(best, b.minimax(next, t.Next(), depth-1, alpha, beta))
		beta = min(beta, best)
		if alpha >= beta {
			b.stats.Cutoffs++
			break
		}
	}
	return best
}

func (b *Bot) evaluate(s board.State) Score {
	if score, ok := b.tt.Get(s); ok {
		return score
	}
	score := clamp(b.eval.Evaluate(s), -ScoreInfinite+1, ScoreInfinite-1)
	b.tt.Set(s, score)
	return score
}

// shuffle is a Fisher-Yates pass over the bot's own generator.
func (b *Bot) shuffle(states []board.State) {
	for i := len(states) - 1; i > 0; i-- {
		j := int(b.rand.Uint64() % uint64(i+1))
		states[i], states[j] = states[j], states[i]
	}
}

func max[T constraints.Ordered](x1, x2 T) T {
	if x1 > x2 {
		return x1
	}
	return x2
}

func min[T constraints.Ordered](x1, x2 T) T {
	if x1 < x2 {
		return x1
	}
	return x2
}

func clamp[T constraints.Ordered](x, lo, hi T) T {
	return min(max(x, lo), hi)
}
