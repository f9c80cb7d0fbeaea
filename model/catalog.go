package model

// Track represents a released track in the music catalog.
type Track struct {
	ID       int64  `json:"id"`
	Title    string `json:"title"`
	AudioURL string `json:"audioUrl"`
	CoverURL string `json:"coverUrl"`
	// SpotifyTrackID is set for tracks that also stream on Spotify.
	SpotifyTrackID *string `json:"spotifyTrackId"`
}

// Product represents a merchandise item.
type Product struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       string `json:"price"` // Decimal string, e.g. "29.99"
	Size        string `json:"size"`
	ImageURL    string `json:"imageUrl"`
	Category    string `json:"category"`
	InStock     bool   `json:"inStock"`
	// RelatedTrackID links merch to the track it promotes. A dangling id is
	// tolerated: the lookup simply resolves no track.
	RelatedTrackID *int64 `json:"relatedTrackId"`
}
