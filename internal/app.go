// Package internal wires the refresh pipeline: holdings from the backend,
// quotes from the exchange, valuation, then a full-frame repaint.
package internal

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/avolkov/coinfolio/internal/entity"
	"github.com/avolkov/coinfolio/internal/services/pricer"
	"github.com/avolkov/coinfolio/internal/services/symbols"
	"github.com/avolkov/coinfolio/internal/services/valuation"
	"github.com/avolkov/coinfolio/internal/view"
)

// refreshInterval is fixed; the tracker has always polled once a second.
const refreshInterval = time.Second

const clearScreen = "\033[H\033[2J"

type backendClient interface {
	Holdings(ctx context.Context) ([]entity.Holding, error)
	Transactions(ctx context.Context, symbol string) ([]entity.Transaction, error)
	AddTransaction(ctx context.Context, tx entity.NewTransaction) error
}

// cycleGate serializes display updates from overlapping refresh cycles.
// Cycles may run concurrently, but one may only apply its result if no
// younger cycle already has.
type cycleGate struct {
	next    atomic.Uint64
	applied atomic.Uint64
}

func (g *cycleGate) begin() uint64 { return g.next.Add(1) }

func (g *cycleGate) tryApply(gen uint64) bool {
	for {
		cur := g.applied.Load()
		if gen <= cur {
			return false
		}
		if g.applied.CompareAndSwap(cur, gen) {
			return true
		}
	}
}

// App owns the portfolio screen: the poll loop, the command reader and the
// one-shot side pipelines (ledger fetch, add transaction).
type App struct {
	backend   backendClient
	quotes    pricer.QuoteProvider
	universe  *symbols.Cache
	portfolio *view.PortfolioView
	ledger    view.LedgerView
	logger    *zap.Logger

	in  io.Reader
	out io.Writer

	gate      cycleGate
	suspended atomic.Bool

	mu    sync.Mutex
	alert string

	// swapped out in tests
	transactionForm func(view.Suggester, string) (entity.NewTransaction, bool, error)
}

func NewApp(
	backend backendClient,
	quotes pricer.QuoteProvider,
	universe *symbols.Cache,
	portfolio *view.PortfolioView,
	logger *zap.Logger,
	in io.Reader,
	out io.Writer,
) *App {
	return &App{
		backend:         backend,
		quotes:          quotes,
		universe:        universe,
		portfolio:       portfolio,
		logger:          logger,
		in:              in,
		out:             out,
		transactionForm: view.TransactionForm,
	}
}

// Run drives the poll loop and the command reader until ctx is cancelled or
// the user quits.
func (a *App) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return a.poll(ctx)
	})
	g.Go(func() error {
		defer cancel()
		return a.readCommands(ctx)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

func (a *App) poll(ctx context.Context) error {
	go a.refreshCycle(ctx)

	ticker := time.NewTicker(refreshInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			// cycles overlap on purpose; the gate keeps a slow one from
			// overwriting a fresher frame
			go a.refreshCycle(ctx)
		}
	}
}

// refreshCycle runs one pass of the pipeline. On any failure the cycle is
// abandoned: the error is logged and the prior frame stays on screen.
func (a *App) refreshCycle(ctx context.Context) {
	gen := a.gate.begin()

	rows, totals, err := a.computeSnapshot(ctx)
	if err != nil {
		a.logger.Error("refresh cycle failed", zap.Uint64("generation", gen), zap.Error(err))
		return
	}

	if a.suspended.Load() {
		return
	}
	// icon probes inside Render can block on the network; build the frame
	// before consulting the gate so a slow cycle cannot paint over a
	// fresher one after the fact
	frame := a.portfolio.Render(ctx, rows, totals, a.currentAlert())

	if !a.gate.tryApply(gen) {
		a.logger.Debug("discarding stale refresh cycle", zap.Uint64("generation", gen))
		return
	}
	a.render(gen, frame)
}

func (a *App) computeSnapshot(ctx context.Context) ([]entity.Row, entity.Totals, error) {
	holdings, err := a.backend.Holdings(ctx)
	if err != nil {
		return nil, entity.Totals{}, errors.Wrap(err, "fetch holdings")
	}

	syms := make([]string, 0, len(holdings))
	for _, h := range holdings {
		syms = append(syms, h.Symbol)
	}

	quotes, err := a.quotes.Quotes(ctx, syms)
	if err != nil {
		return nil, entity.Totals{}, errors.Wrap(err, "fetch quotes")
	}

	rows, totals := valuation.Compute(holdings, quotes)
	return rows, totals, nil
}

func (a *App) render(gen uint64, frame string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	// re-check under the lock: a younger cycle may have applied and painted
	// between tryApply and here
	if a.gate.applied.Load() != gen || a.suspended.Load() {
		return
	}
	fmt.Fprint(a.out, clearScreen)
	fmt.Fprint(a.out, frame)
}

func (a *App) readCommands(ctx context.Context) error {
	scanner := bufio.NewScanner(a.in)
	lines := make(chan string)
	go func() {
		defer close(lines)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
	}()

	for {
		var line string
		select {
		case <-ctx.Done():
			return ctx.Err()
		case l, ok := <-lines:
			if !ok {
				return scanner.Err()
			}
			line = l
		}

		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "q", "quit":
			return nil
		case "a", "add":
			prefill := ""
			if len(fields) > 1 {
				prefill = strings.ToUpper(fields[1])
			}
			a.addTransaction(ctx, prefill)
		case "t", "tx":
			if len(fields) < 2 {
				a.setAlert("usage: t <symbol>")
				continue
			}
			a.showLedger(ctx, strings.ToUpper(fields[1]), lines)
		default:
			a.setAlert(fmt.Sprintf("unknown command %q", fields[0]))
		}
	}
}

// addTransaction opens the form, refreshing the symbol universe first the
// way the web modal did on open. Submitting does not force a refresh; the
// next poll cycle picks the new transaction up.
func (a *App) addTransaction(ctx context.Context, prefill string) {
	a.suspended.Store(true)
	defer a.suspended.Store(false)

	if err := a.universe.Refresh(ctx); err != nil {
		a.logger.Warn("symbol universe refresh failed", zap.Error(err))
	}

	tx, submitted, err := a.transactionForm(a.universe, prefill)
	if err != nil {
		a.setAlert(err.Error())
		return
	}
	if !submitted {
		return
	}

	if err := a.backend.AddTransaction(ctx, tx); err != nil {
		a.logger.Error("add transaction failed", zap.Error(err))
		a.setAlert("Failed to add transaction: " + err.Error())
		return
	}
	a.clearAlert()
}

// showLedger fetches and displays one coin's transaction history, then
// waits for enter before handing the screen back to the poll loop.
func (a *App) showLedger(ctx context.Context, symbol string, lines <-chan string) {
	txs, err := a.backend.Transactions(ctx, symbol)
	if err != nil {
		a.logger.Error("fetch transactions failed", zap.String("symbol", symbol), zap.Error(err))
		a.setAlert("Failed to load transactions for " + symbol)
		return
	}

	a.suspended.Store(true)
	defer a.suspended.Store(false)

	a.mu.Lock()
	fmt.Fprint(a.out, clearScreen)
	fmt.Fprint(a.out, a.ledger.Render(symbol, txs))
	a.mu.Unlock()

	select {
	case <-ctx.Done():
	case <-lines:
	}
}

func (a *App) setAlert(msg string) {
	a.mu.Lock()
	a.alert = msg
	a.mu.Unlock()
}

func (a *App) clearAlert() { a.setAlert("") }

func (a *App) currentAlert() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.alert
}
