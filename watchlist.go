package folio

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strings"
	"sync"
)

// WatchlistStore persists the watchlist tickers.
// Load returns an empty list if nothing was saved yet.
type WatchlistStore interface {
	Load(ctx context.Context) ([]string, error)
	Save(ctx context.Context, tickers []string) error
}

var tickerRegexp = regexp.MustCompile(`^[A-Z0-9][A-Z0-9.\-]{0,11}$`)

// NormalizeTicker trims and upper-cases a ticker and checks it looks like one.
func NormalizeTicker(ticker string) (string, error) {
	t := strings.ToUpper(strings.TrimSpace(ticker))
	if !tickerRegexp.MatchString(t) {
		return "", fmt.Errorf("invalid ticker %q", ticker)
	}
	return t, nil
}

// Watchlist is a sorted set of tickers the user tracks.
// Every change is saved to its store immediately.
type Watchlist struct {
	store   WatchlistStore
	tickers []string
}

// OpenWatchlist loads the watchlist from store.
func OpenWatchlist(ctx context.Context, store WatchlistStore) (*Watchlist, error) {
	tickers, err := store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("cannot load watchlist: %w", err)
	}
	w := &Watchlist{store: store}
	for _, t := range tickers {
		if t, err = NormalizeTicker(t); err != nil {
			return nil, fmt.Errorf("cannot load watchlist: %w", err)
		}
		w.insert(t)
	}
	return w, nil
}

// Tickers returns a copy of the tickers, sorted.
func (w *Watchlist) Tickers() []string { return slices.Clone(w.tickers) }

// Contains reports whether ticker is watched.
func (w *Watchlist) Contains(ticker string) bool {
	t, err := NormalizeTicker(ticker)
	if err != nil {
		return false
	}
	_, found := slices.BinarySearch(w.tickers, t)
	return found
}

func (w *Watchlist) insert(t string) bool {
	i, found := slices.BinarySearch(w.tickers, t)
	if found {
		return false
	}
	w.tickers = slices.Insert(w.tickers, i, t)
	return true
}

// Add adds ticker to the watchlist. Adding a watched ticker is a no-op.
func (w *Watchlist) Add(ctx context.Context, ticker string) error {
	t, err := NormalizeTicker(ticker)
	if err != nil {
		return err
	}
	if !w.insert(t) {
		return nil
	}
	return w.save(ctx)
}

// Remove removes ticker from the watchlist. It reports whether the ticker was watched.
func (w *Watchlist) Remove(ctx context.Context, ticker string) (bool, error) {
	t, err := NormalizeTicker(ticker)
	if err != nil {
		return false, err
	}
	i, found := slices.BinarySearch(w.tickers, t)
	if !found {
		return false, nil
	}
	w.tickers = slices.Delete(w.tickers, i, i+1)
	return true, w.save(ctx)
}

func (w *Watchlist) save(ctx context.Context) error {
	if err := w.store.Save(ctx, w.Tickers()); err != nil {
		return fmt.Errorf("cannot save watchlist: %w", err)
	}
	return nil
}

// FileWatchlist stores the watchlist as a JSON file.
type FileWatchlist struct {
	Path string
}

type watchlistFile struct {
	Tickers []string `json:"tickers"`
}

func (f FileWatchlist) Load(_ context.Context) ([]string, error) {
	content, err := os.ReadFile(f.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var wf watchlistFile
	if err := json.Unmarshal(content, &wf); err != nil {
		return nil, fmt.Errorf("invalid watchlist file %q: %w", f.Path, err)
	}
	return wf.Tickers, nil
}

// Save writes the file atomically, creating its folder if needed.
func (f FileWatchlist) Save(_ context.Context, tickers []string) error {
	if tickers == nil {
		tickers = []string{}
	}
	content, err := json.MarshalIndent(watchlistFile{Tickers: tickers}, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(f.Path), 0o755); err != nil {
		return err
	}
	tmp := f.Path + ".tmp"
	if err := os.WriteFile(tmp, append(content, '\n'), 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, f.Path)
}

// MemoryWatchlist keeps the watchlist in memory.
type MemoryWatchlist struct {
	mu      sync.Mutex
	tickers []string
}

func (m *MemoryWatchlist) Load(_ context.Context) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return slices.Clone(m.tickers), nil
}

func (m *MemoryWatchlist) Save(_ context.Context, tickers []string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tickers = slices.Clone(tickers)
	return nil
}
