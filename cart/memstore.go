package cart

import (
	"sync"

	"kc414/model"
)

// MemStore is an in-memory Store. It backs tests and any context where the
// synchronization mechanism behind the interface does not matter.
type MemStore struct {
	mu      sync.Mutex
	items   []model.CartItem
	subs    map[int]chan Change
	nextSub int
}

// NewMemStore creates an empty in-memory cart.
func NewMemStore() *MemStore {
	return &MemStore{
		items: []model.CartItem{},
		subs:  make(map[int]chan Change),
	}
}

func (s *MemStore) Load() []model.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	items := make([]model.CartItem, len(s.items))
	copy(items, s.items)
	return items
}

func (s *MemStore) Save(items []model.CartItem) error {
	if items == nil {
		items = []model.CartItem{}
	}
	s.mu.Lock()
	s.items = items
	subs := make([]chan Change, 0, len(s.subs))
	for _, ch := range s.subs {
		subs = append(subs, ch)
	}
	snapshot := make([]model.CartItem, len(items))
	copy(snapshot, items)
	s.mu.Unlock()

	for _, ch := range subs {
		select {
		case ch <- Change{Items: snapshot}:
		default:
		}
	}
	return nil
}

func (s *MemStore) Add(item model.CartItem) error {
	if !validSize(item.SelectedSize) {
		return ErrInvalidSize
	}
	return s.Save(append(s.Load(), item))
}

func (s *MemStore) RemoveByProductID(productID int64) error {
	return s.Save(removeByProductID(s.Load(), productID))
}

func (s *MemStore) Clear() error {
	return s.Save(nil)
}

func (s *MemStore) Subscribe() (<-chan Change, func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextSub
	s.nextSub++
	ch := make(chan Change, 8)
	s.subs[id] = ch

	cancel := func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if c, ok := s.subs[id]; ok {
			delete(s.subs, id)
			close(c)
		}
	}
	return ch, cancel
}
