package cart

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"kc414/logger"
	"kc414/model"

	"github.com/fsnotify/fsnotify"
	"github.com/google/uuid"
)

// envelope is the on-disk cart format. The writer id lets an instance tell
// its own writes apart from another instance's when the watcher fires.
type envelope struct {
	Writer string           `json:"writer"`
	Cart   []model.CartItem `json:"cart"`
}

// FileStore persists the cart as a single JSON file and watches it with
// fsnotify, so a write by one instance surfaces as an External change on
// every other instance sharing the file.
type FileStore struct {
	path     string
	writerID string
	watcher  *fsnotify.Watcher

	mu      sync.Mutex
	subs    map[int]chan Change
	nextSub int
}

// NewFileStore opens (or creates room for) the cart file at path and starts
// the change watcher.
func NewFileStore(path string) (*FileStore, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	// Watch the directory, not the file: the file may not exist yet, and
	// editors/atomic writers replace files rather than writing in place.
	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return nil, err
	}

	s := &FileStore{
		path:     path,
		writerID: uuid.NewString(),
		watcher:  watcher,
		subs:     make(map[int]chan Change),
	}
	go s.watch()
	return s, nil
}

// Close stops the watcher. Subscriber channels are closed by their cancel
// funcs, not here.
func (s *FileStore) Close() error {
	return s.watcher.Close()
}

// Load reads the cart. Any read or parse failure is treated as an empty
// cart; the buyer never sees a broken cart page.
func (s *FileStore) Load() []model.CartItem {
	env, ok := s.read()
	if !ok {
		return []model.CartItem{}
	}
	return env.Cart
}

func (s *FileStore) read() (envelope, bool) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return envelope{}, false
	}
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		logger.Warn("unparseable cart state, treating as empty", logger.ErrorField(err))
		return envelope{}, false
	}
	if env.Cart == nil {
		env.Cart = []model.CartItem{}
	}
	return env, true
}

// Save replaces the cart contents and notifies local subscribers.
func (s *FileStore) Save(items []model.CartItem) error {
	if items == nil {
		items = []model.CartItem{}
	}
	data, err := json.Marshal(envelope{Writer: s.writerID, Cart: items})
	if err != nil {
		return err
	}
	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return err
	}
	s.broadcast(Change{Items: items, External: false})
	return nil
}

// Add appends an item to the cart. The selected size must come from the
// fixed size enumeration.
func (s *FileStore) Add(item model.CartItem) error {
	if !validSize(item.SelectedSize) {
		return ErrInvalidSize
	}
	return s.Save(append(s.Load(), item))
}

// RemoveByProductID drops every cart line with the given product id.
func (s *FileStore) RemoveByProductID(productID int64) error {
	return s.Save(removeByProductID(s.Load(), productID))
}

// Clear empties the cart. Called on successful checkout.
func (s *FileStore) Clear() error {
	return s.Save(nil)
}

// Subscribe registers for cart changes, both local mutations and writes made
// by other instances of the same file.
func (s *FileStore) Subscribe() (<-chan Change, func()) {
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

func (s *FileStore) broadcast(change Change) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, ch := range s.subs {
		select {
		case ch <- change:
		default:
			// Slow subscriber; drop rather than block a mutation.
		}
	}
}

// watch turns file writes by other instances into External changes. Own
// writes carry this instance's writer id and are skipped: local subscribers
// already heard about them from Save.
func (s *FileStore) watch() {
	for {
		select {
		case event, ok := <-s.watcher.Events:
			if !ok {
				return
			}
			if event.Name != s.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			env, ok := s.read()
			if !ok || env.Writer == s.writerID {
				continue
			}
			s.broadcast(Change{Items: env.Cart, External: true})
		case err, ok := <-s.watcher.Errors:
			if !ok {
				return
			}
			logger.Warn("cart watcher error", logger.ErrorField(err))
		}
	}
}
