package cards

import (
	"context"
	"fmt"
	"math/rand"
	"sync"

	"github.com/DedS3t/marble-backend/app/models"
	log "github.com/sirupsen/logrus"
)

type Source interface {
	Cards(ctx context.Context) ([]models.Card, error)
}

// Deck caches the card catalog in memory. It is shared by every room.
type Deck struct {
	source Source

	mu        sync.RWMutex
	cards     []models.Card
	immediate []models.Card
	loaded    bool

	rngMu sync.Mutex
	rng   *rand.Rand
}

func NewDeck(source Source, rng *rand.Rand) *Deck {
	return &Deck{source: source, rng: rng}
}

// Refresh reloads the catalog.
func (d *Deck) Refresh(ctx context.Context) error {
	all, err := d.source.Cards(ctx)
	if err != nil {
		return fmt.Errorf("load cards: %w", err)
	}
	var immediate []models.Card
	for _, c := range all {
		if c.Immediate {
			immediate = append(immediate, c)
		}
	}

	d.mu.Lock()
	d.cards = all
	d.immediate = immediate
	d.loaded = true
	d.mu.Unlock()

	log.WithFields(log.Fields{"cards": len(all), "immediate": len(immediate)}).Info("card deck loaded")
	return nil
}

func (d *Deck) ensure(ctx context.Context) error {
	d.mu.RLock()
	loaded := d.loaded
	d.mu.RUnlock()
	if loaded {
		return nil
	}
	return d.Refresh(ctx)
}

// Pick draws uniformly from the immediate cards.
func (d *Deck) Pick(ctx context.Context) (models.Card, error) {
	if err := d.ensure(ctx); err != nil {
		return models.Card{}, err
	}
	d.mu.RLock()
	defer d.mu.RUnlock()
	if len(d.immediate) == 0 {
		return models.Card{}, models.NotFound("card deck is empty")
	}

	d.rngMu.Lock()
	i := d.rng.Intn(len(d.immediate))
	d.rngMu.Unlock()
	return d.immediate[i], nil
}

func (d *Deck) Find(ctx context.Context, name string) (models.Card, error) {
	if err := d.ensure(ctx); err != nil {
		return models.Card{}, err
	}
	d.mu.RLock()
	defer d.mu.RUnlock()
	for _, c := range d.cards {
		if c.Name == name {
			return c, nil
		}
	}
	return models.Card{}, models.NotFound("card %q not found", name)
}
