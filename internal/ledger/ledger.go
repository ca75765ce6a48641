package ledger

import (
	"context"
	"fmt"
	"sync"

	"boutique/internal/domain"
	apperrors "boutique/internal/errors"

	"go.uber.org/zap"
)

// Repository persists orders behind the in-memory ledger. Save must be atomic
// for a single order.
type Repository interface {
	Save(ctx context.Context, order domain.Order) error
	FindAll(ctx context.Context) ([]domain.Order, error)
}

// Ledger is the append-only, chronologically ordered sequence of orders. Reads
// return copies, so callers can never reach the stored orders.
type Ledger struct {
	mu     sync.RWMutex
	orders []domain.Order
	ids    map[string]struct{}
	repo   Repository
	logger *zap.Logger
}

// New returns an empty ledger. repo may be nil, in which case orders live only
// for the lifetime of the process.
func New(repo Repository, logger *zap.Logger) *Ledger {
	return &Ledger{
		ids:    make(map[string]struct{}),
		repo:   repo,
		logger: logger,
	}
}

// Load replaces the in-memory contents with what the repository holds.
func (l *Ledger) Load(ctx context.Context) error {
	if l.repo == nil {
		return nil
	}

	orders, err := l.repo.FindAll(ctx)
	if err != nil {
		return apperrors.NewInternalError("loading order ledger", err)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	l.orders = make([]domain.Order, 0, len(orders))
	l.ids = make(map[string]struct{}, len(orders))
	for _, o := range orders {
		l.orders = append(l.orders, o.Clone())
		l.ids[o.ID] = struct{}{}
	}

	l.logger.Info("order ledger loaded", zap.Int("orderCount", len(orders)))
	return nil
}

// Append writes the order through to the repository, then records it. Nothing
// is recorded when the repository rejects the order.
func (l *Ledger) Append(ctx context.Context, order domain.Order) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, exists := l.ids[order.ID]; exists {
		return apperrors.NewInternalError(fmt.Sprintf("order id %s already recorded", order.ID), nil)
	}

	if l.repo != nil {
		if err := l.repo.Save(ctx, order); err != nil {
			l.logger.Error("failed to persist order", zap.String("orderId", order.ID), zap.Error(err))
			return apperrors.NewInternalError("persisting order", err)
		}
	}

	l.orders = append(l.orders, order.Clone())
	l.ids[order.ID] = struct{}{}
	return nil
}

func (l *Ledger) Contains(id string) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	_, ok := l.ids[id]
	return ok
}

func (l *Ledger) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.orders)
}

// Orders returns a copy of every order in insertion order.
func (l *Ledger) Orders() []domain.Order {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]domain.Order, len(l.orders))
	for i, o := range l.orders {
		out[i] = o.Clone()
	}
	return out
}

func (l *Ledger) FindByID(id string) (*domain.Order, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	for _, o := range l.orders {
		if o.ID == id {
			clone := o.Clone()
			return &clone, nil
		}
	}
	return nil, apperrors.NewNotFoundError(fmt.Sprintf("order with id %s not found", id))
}
