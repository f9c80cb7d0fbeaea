package repository

import "kc414/model"

func strPtr(s string) *string { return &s }

func int64Ptr(i int64) *int64 { return &i }

// seedTracks returns the fixed track catalog. Ids are assigned sequentially
// by the repository, so the order here is load-bearing: products reference
// tracks by the position they take in this list.
func seedTracks() []model.Track {
	return []model.Track{
		{
			Title:          "Summer Nights",
			AudioURL:       "https://example.com/track1.mp3",
			CoverURL:       "https://images.unsplash.com/photo-1517697471339-4aa32003c11a",
			SpotifyTrackID: strPtr("4uLU6hMCjMI75M1A2tKUQC"),
		},
		{
			Title:    "City Lights",
			AudioURL: "https://example.com/track2.mp3",
			CoverURL: "https://images.unsplash.com/photo-1650783756081-f235c2c76b6a",
		},
	}
}

// seedProducts returns the fixed merchandise catalog.
func seedProducts() []model.Product {
	return []model.Product{
		{
			Name:           "Summer Nights Tee",
			Description:    "T-shirt featuring the Summer Nights album artwork",
			Price:          "29.99",
			Size:           "S, M, L, XL",
			ImageURL:       "https://images.unsplash.com/photo-1523381294911-8d3cead13475",
			Category:       "clothing",
			InStock:        true,
			RelatedTrackID: int64Ptr(1),
		},
		{
			Name:           "City Lights Hoodie",
			Description:    "Premium hoodie with City Lights album art",
			Price:          "59.99",
			Size:           "S, M, L, XL",
			ImageURL:       "https://images.unsplash.com/photo-1529374255404-311a2a4f1fd9",
			Category:       "clothing",
			InStock:        true,
			RelatedTrackID: int64Ptr(2),
		},
		{
			Name:        "KC414 Logo Cap",
			Description: "Embroidered snapback with the KC414 logo",
			Price:       "24.99",
			Size:        "One Size",
			ImageURL:    "https://images.unsplash.com/photo-1588850561407-ed78c282e89b",
			Category:    "accessories",
			InStock:     true,
		},
		{
			Name:        "Tour Poster",
			Description: "Limited edition 18x24 tour poster",
			Price:       "14.99",
			Size:        "18x24",
			ImageURL:    "https://images.unsplash.com/photo-1561070791-2526d30994b5",
			Category:    "prints",
			InStock:     true,
		},
	}
}
