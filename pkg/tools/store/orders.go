package store

import (
	"errors"
	"fmt"
	"math"
	"sync"

	"github.com/peter-kozarec/fillsim/pkg/common"
)

var (
	ErrOrderNotPresent = errors.New("order is not present in order store")
	ErrDuplicateOrder  = errors.New("order is already present in order store")
	ErrInvalidOrder    = errors.New("invalid order")
)

// OrderStore is a minimal in-memory order manager. It keeps insertion order
// so matching cycles see orders in the sequence they were placed.
type OrderStore struct {
	mu     sync.RWMutex
	orders []common.Order
	index  map[common.OrderId]int
}

func NewOrderStore() *OrderStore {
	return &OrderStore{
		index: make(map[common.OrderId]int),
	}
}

// Add validates and stores order as pending. Orders with a non positive
// quantity or malformed prices are rejected here, the matching engine
// assumes it never sees them.
func (s *OrderStore) Add(order common.Order) error {
	if math.IsNaN(order.Quantity) || math.IsInf(order.Quantity, 0) || order.Quantity <= 0 {
		return fmt.Errorf("%w: order %d quantity must be positive, got %v", ErrInvalidOrder, order.Id, order.Quantity)
	}
	if order.Symbol == "" {
		return fmt.Errorf("%w: order %d has no symbol", ErrInvalidOrder, order.Id)
	}
	if err := order.Type.Validate(); err != nil {
		return fmt.Errorf("%w: order %d: %w", ErrInvalidOrder, order.Id, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.index[order.Id]; ok {
		return fmt.Errorf("unable to add order %d: %w", order.Id, ErrDuplicateOrder)
	}

	order.Status = common.OrderStatusPending
	order.Triggered = false
	s.index[order.Id] = len(s.orders)
	s.orders = append(s.orders, order)
	return nil
}

func (s *OrderStore) Get(id common.OrderId) (common.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx, ok := s.index[id]
	if !ok {
		return common.Order{}, fmt.Errorf("unable to get order %d: %w", id, ErrOrderNotPresent)
	}
	return s.orders[idx], nil
}

// ActiveOrders returns copies of every order that may still fill.
func (s *OrderStore) ActiveOrders() []common.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()

	active := make([]common.Order, 0, len(s.orders))
	for _, order := range s.orders {
		if order.Status.IsActive() {
			active = append(active, order)
		}
	}
	return active
}

func (s *OrderStore) UpdateStatus(id common.OrderId, status common.OrderStatus) error {
	return s.update(id, func(order *common.Order) {
		order.Status = status
	})
}

// MarkTriggered records that the stop leg of a stop-limit order fired.
func (s *OrderStore) MarkTriggered(id common.OrderId) error {
	return s.update(id, func(order *common.Order) {
		order.Triggered = true
		order.Status = common.OrderStatusTriggered
	})
}

func (s *OrderStore) Cancel(id common.OrderId) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx, ok := s.index[id]
	if !ok {
		return fmt.Errorf("unable to cancel order %d: %w", id, ErrOrderNotPresent)
	}
	if !s.orders[idx].Status.IsActive() {
		return fmt.Errorf("unable to cancel order %d in status %s", id, s.orders[idx].Status)
	}
	s.orders[idx].Status = common.OrderStatusCancelled
	return nil
}

func (s *OrderStore) update(id common.OrderId, fn func(*common.Order)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx, ok := s.index[id]
	if !ok {
		return fmt.Errorf("unable to update order %d: %w", id, ErrOrderNotPresent)
	}
	fn(&s.orders[idx])
	return nil
}
