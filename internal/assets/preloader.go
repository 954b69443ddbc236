package assets

import (
	"context"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/meur/crafthub/internal/catalog"
	"github.com/meur/crafthub/internal/models"
	"github.com/meur/crafthub/internal/obs"
)

const (
	// BatchSize is the number of images fetched per round
	BatchSize    = 5
	queueSize    = 512
	fetchTimeout = 10 * time.Second
)

// Preloader fetches item images in the background so the CDN has them warm
// when a browser asks. It remembers every key it attempted, successful or
// not, and never tries a key twice. The set only grows.
type Preloader struct {
	base   string
	client *http.Client

	mu        sync.Mutex
	attempted map[string]bool
	pending   map[string]bool
	closed    bool

	queue     chan string
	done      chan struct{}
	closeOnce sync.Once
	wg        sync.WaitGroup
}

// NewPreloader starts a preloader fetching from the image service at base
func NewPreloader(base string, client *http.Client) *Preloader {
	if client == nil {
		client = &http.Client{Timeout: fetchTimeout}
	}
	p := &Preloader{
		base:      base,
		client:    client,
		attempted: make(map[string]bool),
		pending:   make(map[string]bool),
		queue:     make(chan string, queueSize),
		done:      make(chan struct{}),
	}
	p.wg.Add(1)
	go p.run()
	return p
}

// RepresentativeID is the id whose image stands for a base item: its lowest tier
func RepresentativeID(b models.BaseItem) (string, bool) {
	if len(b.Tiers) == 0 {
		return "", false
	}
	return catalog.TierID(b.Tiers[0], b.ID), true
}

// Enqueue schedules the representative image of each base item and returns
// how many were newly queued. Keys already attempted or queued are skipped;
// keys that do not fit in the queue are dropped. After Close nothing is
// queued.
func (p *Preloader) Enqueue(items []models.BaseItem) int {
	p.mu.Lock()
	defer p.mu.Unlock()

	queued := 0
	for _, b := range items {
		if p.closed {
			return queued
		}
		id, ok := RepresentativeID(b)
		if !ok || p.attempted[id] || p.pending[id] {
			continue
		}

		select {
		case p.queue <- id:
			p.pending[id] = true
			queued++
		default:
		}
	}
	return queued
}

// Attempted reports whether an image fetch for id has completed
func (p *Preloader) Attempted(id string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.attempted[id]
}

// AttemptedCount returns the size of the attempted set
func (p *Preloader) AttemptedCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.attempted)
}

// Close stops the background worker. Keys still queued are dropped without
// being recorded as attempted.
func (p *Preloader) Close() {
	p.closeOnce.Do(func() {
		p.mu.Lock()
		p.closed = true
		p.mu.Unlock()
		close(p.done)
	})
	p.wg.Wait()

	p.mu.Lock()
	defer p.mu.Unlock()
	for {
		select {
		case id := <-p.queue:
			delete(p.pending, id)
		default:
			return
		}
	}
}

func (p *Preloader) run() {
	defer p.wg.Done()
	for {
		var batch []string
		select {
		case id := <-p.queue:
			batch = append(batch, id)
		case <-p.done:
			return
		}
	fill:
		for len(batch) < BatchSize {
			select {
			case id := <-p.queue:
				batch = append(batch, id)
			default:
				break fill
			}
		}

		var wg sync.WaitGroup
		for _, id := range batch {
			wg.Add(1)
			go func(id string) {
				defer wg.Done()
				p.fetch(id)
			}(id)
		}
		wg.Wait()
	}
}

func (p *Preloader) fetch(id string) {
	ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
	defer cancel()

	url := ImageURL(p.base, id, 0, 0)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err == nil {
		var resp *http.Response
		resp, err = p.client.Do(req)
		if err == nil {
			io.Copy(io.Discard, resp.Body)
			resp.Body.Close()
			if resp.StatusCode >= 400 {
				obs.Logger.Debug("image preload returned non-success status", "id", id, "status", resp.StatusCode)
			}
		}
	}
	if err != nil {
		obs.Logger.Debug("image preload failed", "id", id, "error", err)
	}

	p.mu.Lock()
	delete(p.pending, id)
	p.attempted[id] = true
	p.mu.Unlock()
}
