package mockapi

import "kicks/internal/domain"

// Seed наполняет хранилище небольшим каталогом для локальной разработки
func Seed(store *Store) {
	sneakers := []domain.Sneaker{
		{Name: "Air Max 90", Brand: "Nike", Category: "lifestyle", Price: 129.99, Sizes: []int{40, 41, 42, 43, 44}},
		{Name: "Air Zoom Pegasus 41", Brand: "Nike", Category: "running", Price: 139.99, Sizes: []int{41, 42, 43, 44, 45}},
		{Name: "Samba OG", Brand: "Adidas", Category: "lifestyle", Price: 99.99, Sizes: []int{39, 40, 41, 42, 43}},
		{Name: "Ultraboost 5", Brand: "Adidas", Category: "running", Price: 189.99, Sizes: []int{40, 42, 44, 46}},
		{Name: "Old Skool", Brand: "Vans", Category: "skate", Price: 74.99, Sizes: []int{38, 39, 40, 41, 42, 43}},
		{Name: "Chuck 70", Brand: "Converse", Category: "lifestyle", Price: 84.99, Sizes: []int{37, 38, 39, 40, 41, 42}},
		{Name: "990v6", Brand: "New Balance", Category: "running", Price: 199.99, Sizes: []int{41, 42, 43, 44}},
		{Name: "Gel-Kayano 31", Brand: "Asics", Category: "running", Price: 164.99, Sizes: []int{40, 41, 42, 43, 44, 45}},
		{Name: "Suede Classic", Brand: "Puma", Category: "lifestyle", Price: 79.99, Sizes: []int{39, 40, 41, 42}},
		{Name: "SB Dunk Low", Brand: "Nike", Category: "skate", Price: 119.99, Sizes: []int{40, 41, 42, 43}},
		{Name: "Gazelle", Brand: "Adidas", Category: "lifestyle", Price: 104.99, Sizes: []int{38, 39, 40, 41, 42, 43, 44}},
		{Name: "Authentic", Brand: "Vans", Category: "skate", Price: 64.99, Sizes: []int{39, 40, 41, 42}},
		{Name: "574 Core", Brand: "New Balance", Category: "lifestyle", Price: 89.99, Sizes: []int{40, 41, 42, 43, 44, 45}},
		{Name: "Air Force 1 '07", Brand: "Nike", Category: "lifestyle", Price: 114.99, Sizes: []int{40, 41, 42, 43, 44, 45, 46}},
	}
	for _, sn := range sneakers {
		store.AddSneaker(sn)
	}
}
