package catalog

import (
	"context"
	"sync"
	"time"

	"github.com/nikolayk812/partsdepot/internal/domain"
	"github.com/nikolayk812/partsdepot/internal/port"
	"go.uber.org/zap"
)

// DefaultDebounce is how long search text must stay unchanged before it is
// sent.
const DefaultDebounce = 500 * time.Millisecond

type Status string

const (
	StatusIdle    Status = "idle"
	StatusLoading Status = "loading"
	StatusReady   Status = "ready"
	StatusEmpty   Status = "empty"
	StatusError   Status = "error"
)

// State is a snapshot of the catalog page.
type State struct {
	Status     Status
	Filters    Filters
	SortBy     domain.SortKey
	Parts      []domain.Part
	Total      int
	Page       int
	TotalPages int
	Err        error
}

type Option func(*Searcher)

func WithDebounce(d time.Duration) Option {
	return func(s *Searcher) {
		s.debounce = d
	}
}

// WithOnChange registers a callback invoked with every new state. It runs
// outside the searcher's lock.
func WithOnChange(fn func(State)) Option {
	return func(s *Searcher) {
		s.onChange = fn
	}
}

// Searcher drives the catalog listing: it debounces search text, resets
// paging on filter changes and keeps only the response of the latest
// request. Each request carries a generation number; a response whose
// generation is not the current one is dropped, and starting a request
// cancels the previous one.
type Searcher struct {
	lister   port.PartsLister
	logger   *zap.Logger
	debounce time.Duration
	onChange func(State)

	baseCtx    context.Context
	baseCancel context.CancelFunc

	mu         sync.Mutex
	state      State
	timer      *time.Timer
	generation uint64
	cancel     context.CancelFunc
	closed     bool

	wg sync.WaitGroup
}

func NewSearcher(lister port.PartsLister, logger *zap.Logger, opts ...Option) *Searcher {
	ctx, cancel := context.WithCancel(context.Background())

	s := &Searcher{
		lister:     lister,
		logger:     logger.Named("catalog"),
		debounce:   DefaultDebounce,
		baseCtx:    ctx,
		baseCancel: cancel,
		state: State{
			Status: StatusIdle,
			SortBy: domain.DefaultSort,
			Page:   1,
		},
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Search fetches the current page with the current filters.
func (s *Searcher) Search() {
	s.update(func() bool { return true })
}

// SetSearchText records a keystroke. The fetch happens once the text has
// been stable for the debounce window; the page then resets to 1.
func (s *Searcher) SetSearchText(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}

	if s.timer != nil {
		s.timer.Stop()
	}

	s.timer = time.AfterFunc(s.debounce, func() {
		s.update(func() bool {
			if s.state.Filters.Search == text && s.state.Status != StatusIdle {
				return false
			}
			s.state.Filters.Search = text
			s.state.Page = 1
			return true
		})
	})
}

// SetFilters replaces every filter except the search text, which belongs to
// SetSearchText, and resets the page to 1.
func (s *Searcher) SetFilters(f Filters) {
	s.update(func() bool {
		f.Search = s.state.Filters.Search
		s.state.Filters = f
		s.state.Page = 1
		return true
	})
}

func (s *Searcher) SetSort(sortBy domain.SortKey) {
	s.update(func() bool {
		s.state.SortBy = sortBy
		s.state.Page = 1
		return true
	})
}

// ClearFilters drops all filters, including pending search text.
func (s *Searcher) ClearFilters() {
	s.update(func() bool {
		if s.timer != nil {
			s.timer.Stop()
		}
		s.state.Filters = Filters{}
		s.state.SortBy = domain.DefaultSort
		s.state.Page = 1
		return true
	})
}

// GoToPage moves to page n clamped to [1, TotalPages].
func (s *Searcher) GoToPage(n int) {
	s.update(func() bool {
		page := ClampPage(n, s.state.TotalPages)
		if page == s.state.Page {
			return false
		}
		s.state.Page = page
		return true
	})
}

func (s *Searcher) NextPage() {
	s.update(func() bool {
		page := ClampPage(s.state.Page+1, s.state.TotalPages)
		if page == s.state.Page {
			return false
		}
		s.state.Page = page
		return true
	})
}

func (s *Searcher) PrevPage() {
	s.update(func() bool {
		page := ClampPage(s.state.Page-1, s.state.TotalPages)
		if page == s.state.Page {
			return false
		}
		s.state.Page = page
		return true
	})
}

func (s *Searcher) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.snapshot()
}

// Close stops the debounce timer, cancels the in-flight request and waits
// for it to return. Later calls are no-ops.
func (s *Searcher) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	if s.timer != nil {
		s.timer.Stop()
	}
	s.mu.Unlock()

	s.baseCancel()
	s.wg.Wait()
}

// update applies mutate under the lock and starts a fetch when it reports a
// change.
func (s *Searcher) update(mutate func() bool) {
	s.mu.Lock()

	if s.closed || !mutate() {
		s.mu.Unlock()
		return
	}

	s.startFetchLocked()
	state := s.snapshot()
	s.mu.Unlock()

	s.notify(state)
}

func (s *Searcher) startFetchLocked() {
	s.generation++
	generation := s.generation

	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}

	filters, err := ParseParams(BuildParams(s.state.Filters, s.state.Page, s.state.SortBy))
	if err != nil {
		s.failLocked(err)
		return
	}

	ctx, cancel := context.WithCancel(s.baseCtx)
	s.cancel = cancel
	s.state.Status = StatusLoading
	s.state.Err = nil

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()

		page, err := s.lister.ListParts(ctx, filters)
		s.complete(generation, page, err)
	}()
}

func (s *Searcher) complete(generation uint64, page domain.PartPage, err error) {
	s.mu.Lock()

	if s.closed || generation != s.generation {
		s.mu.Unlock()
		s.logger.Debug("dropping stale response", zap.Uint64("generation", generation))
		return
	}

	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}

	if err != nil {
		s.logger.Warn("catalog search failed", zap.Error(err))
		s.failLocked(err)
	} else {
		s.state.Parts = page.Parts
		s.state.Total = page.Total
		s.state.TotalPages = TotalPages(page.Total, PageSize)
		s.state.Err = nil
		s.state.Status = StatusReady
		if len(page.Parts) == 0 {
			s.state.Status = StatusEmpty
		}
	}

	state := s.snapshot()
	s.mu.Unlock()

	s.notify(state)
}

func (s *Searcher) failLocked(err error) {
	s.state.Status = StatusError
	s.state.Err = err
	s.state.Parts = nil
	s.state.Total = 0
	s.state.TotalPages = 0
}

func (s *Searcher) snapshot() State {
	state := s.state
	state.Parts = append([]domain.Part(nil), s.state.Parts...)
	return state
}

func (s *Searcher) notify(state State) {
	if s.onChange != nil {
		s.onChange(state)
	}
}
