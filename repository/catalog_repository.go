package repository

import (
	"sync"

	"kc414/model"
)

// CatalogRepository defines read access to the product and track catalog.
// The catalog is fixed at startup; there are no mutation operations.
type CatalogRepository interface {
	ListProducts() []*model.Product
	GetProduct(id int64) *model.Product
	ListTracks() []*model.Track
	GetTrack(id int64) *model.Track
	ListRelatedProducts(trackID int64) []*model.Product
}

// memoryCatalogRepository implements CatalogRepository with process-local maps.
type memoryCatalogRepository struct {
	mu            sync.RWMutex
	products      map[int64]*model.Product
	tracks        map[int64]*model.Track
	productOrder  []int64
	trackOrder    []int64
	nextProductID int64
	nextTrackID   int64
}

// NewMemoryCatalogRepository creates a catalog repository seeded with the
// fixed site catalog. Tracks are seeded before products so relatedTrackId
// values resolve against ids assigned in the same pass.
func NewMemoryCatalogRepository() CatalogRepository {
	r := &memoryCatalogRepository{
		products:      make(map[int64]*model.Product),
		tracks:        make(map[int64]*model.Track),
		nextProductID: 1,
		nextTrackID:   1,
	}
	for _, t := range seedTracks() {
		r.addTrack(t)
	}
	for _, p := range seedProducts() {
		r.addProduct(p)
	}
	return r
}

func (r *memoryCatalogRepository) addTrack(t model.Track) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t.ID = r.nextTrackID
	r.nextTrackID++
	r.tracks[t.ID] = &t
	r.trackOrder = append(r.trackOrder, t.ID)
}

func (r *memoryCatalogRepository) addProduct(p model.Product) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p.ID = r.nextProductID
	r.nextProductID++
	r.products[p.ID] = &p
	r.productOrder = append(r.productOrder, p.ID)
}

// ListProducts returns all products in insertion order.
func (r *memoryCatalogRepository) ListProducts() []*model.Product {
	r.mu.RLock()
	defer r.mu.RUnlock()
	products := make([]*model.Product, 0, len(r.productOrder))
	for _, id := range r.productOrder {
		products = append(products, r.products[id])
	}
	return products
}

// GetProduct returns the product with the given id, or nil if absent.
func (r *memoryCatalogRepository) GetProduct(id int64) *model.Product {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.products[id]
}

// ListTracks returns all tracks in insertion order.
func (r *memoryCatalogRepository) ListTracks() []*model.Track {
	r.mu.RLock()
	defer r.mu.RUnlock()
	tracks := make([]*model.Track, 0, len(r.trackOrder))
	for _, id := range r.trackOrder {
		tracks = append(tracks, r.tracks[id])
	}
	return tracks
}

// GetTrack returns the track with the given id, or nil if absent.
func (r *memoryCatalogRepository) GetTrack(id int64) *model.Track {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.tracks[id]
}

// ListRelatedProducts returns every product whose relatedTrackId equals
// trackID, in insertion order. An unknown trackID yields an empty slice,
// not an error.
func (r *memoryCatalogRepository) ListRelatedProducts(trackID int64) []*model.Product {
	r.mu.RLock()
	defer r.mu.RUnlock()
	related := make([]*model.Product, 0)
	for _, id := range r.productOrder {
		p := r.products[id]
		if p.RelatedTrackID != nil && *p.RelatedTrackID == trackID {
			related = append(related, p)
		}
	}
	return related
}
