package folio

import (
	"context"
	"errors"
	"sync"

	log "github.com/sirupsen/logrus"
)

// Status is the loading state of a Panel.
type Status int

const (
	Loading Status = iota
	Ready
	Failed
)

func (s Status) String() string {
	switch s {
	case Ready:
		return "ready"
	case Failed:
		return "failed"
	default:
		return "loading"
	}
}

// Panel holds data being fetched for one part of the dashboard.
// Its zero value is Loading.
type Panel[T any] struct {
	status Status
	value  T
	err    error
}

// ReadyPanel returns a panel holding v.
func ReadyPanel[T any](v T) Panel[T] { return Panel[T]{status: Ready, value: v} }

// FailedPanel returns a panel that failed to load with err.
func FailedPanel[T any](err error) Panel[T] { return Panel[T]{status: Failed, err: err} }

func (p Panel[T]) Status() Status { return p.status }

// Value returns the panel value, ok is false unless the panel is Ready.
func (p Panel[T]) Value() (v T, ok bool) { return p.value, p.status == Ready }

// Err returns the error of a Failed panel.
func (p Panel[T]) Err() error { return p.err }

// Source provides the dashboard data. *Client is a Source.
type Source interface {
	Summary(ctx context.Context) (Summary, error)
	PerformanceSeries(ctx context.Context) (Series, error)
	Allocation(ctx context.Context) (Allocation, error)
	Holdings(ctx context.Context) (Holdings, error)
	Positions(ctx context.Context) (Positions, error)
	Transactions(ctx context.Context) (Transactions, error)
}

var _ Source = (*Client)(nil)

// Dashboard is the state of the dashboard view: one panel per data set and
// the selected Window.
type Dashboard struct {
	window Window

	Summary      Panel[Summary]
	Series       Panel[Series]
	Allocation   Panel[Allocation]
	Holdings     Panel[Holdings]
	Positions    Panel[Positions]
	Transactions Panel[Transactions]
}

// NewDashboard returns a dashboard with all panels Loading.
func NewDashboard(w Window) *Dashboard {
	if _, err := ParseWindow(string(w)); err != nil {
		w = DefaultWindow
	}
	return &Dashboard{window: w}
}

// Window returns the selected window.
func (d *Dashboard) Window() Window { return d.window }

// Select changes the selected window.
func (d *Dashboard) Select(w Window) error {
	w, err := ParseWindow(string(w))
	if err != nil {
		return err
	}
	d.window = w
	return nil
}

// load runs f and turns the result into a panel.
func load[T any](ctx context.Context, name string, f func(context.Context) (T, error)) Panel[T] {
	v, err := f(ctx)
	if err != nil {
		log.WithField("panel", name).WithError(err).Debug("cannot load panel")
		return FailedPanel[T](err)
	}
	return ReadyPanel(v)
}

// Load fetches all panels from src concurrently. A panel failure is recorded
// in that panel only. If ctx is done before all panels are fetched, the
// results are discarded and ctx's error is returned.
func (d *Dashboard) Load(ctx context.Context, src Source) error {
	var (
		wg sync.WaitGroup
		n  Dashboard
	)
	run := func(f func()) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			f()
		}()
	}
	run(func() { n.Summary = load(ctx, "summary", src.Summary) })
	run(func() { n.Series = loadSeries(ctx, src) })
	run(func() { n.Allocation = load(ctx, "allocation", src.Allocation) })
	run(func() { n.Holdings = load(ctx, "holdings", src.Holdings) })
	run(func() { n.Positions = load(ctx, "positions", src.Positions) })
	run(func() { n.Transactions = load(ctx, "transactions", src.Transactions) })
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return err
	}
	n.window = d.window
	*d = n
	return nil
}

// loadSeries loads the valuation series. A malformed series is not an error
// for the chart, it shows the no data placeholder.
func loadSeries(ctx context.Context, src Source) Panel[Series] {
	s, err := src.PerformanceSeries(ctx)
	if errors.Is(err, ErrMalformed) {
		log.WithError(err).Warn("ignoring malformed performance series")
		return ReadyPanel(Series{})
	}
	if err != nil {
		log.WithField("panel", "performance").WithError(err).Debug("cannot load panel")
		return FailedPanel[Series](err)
	}
	return ReadyPanel(s)
}

// Performance is the performance chart for a window.
type Performance struct {
	Window Window
	Series Series // filtered
	Axis   Axis
	Change Change
}

// NewPerformance filters s on w and computes the chart axis and change.
func NewPerformance(s Series, w Window) Performance {
	filtered := Filter(s, w)
	return Performance{
		Window: w,
		Series: filtered,
		Axis:   NewAxis(filtered),
		Change: filtered.Change(),
	}
}

// Empty reports whether there is nothing to plot.
func (p Performance) Empty() bool { return len(p.Series) == 0 }

// Performance returns the performance chart for the selected window.
// The panel state is returned as is when the series is not Ready.
func (d *Dashboard) Performance() (Performance, Status, error) {
	s, ok := d.Series.Value()
	if !ok {
		return Performance{Window: d.window}, d.Series.Status(), d.Series.Err()
	}
	return NewPerformance(s, d.window), Ready, nil
}
