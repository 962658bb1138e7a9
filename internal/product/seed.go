package product

// DefaultProducts is the catalog served by the demo. IDs and prices are part
// of the API contract; the frontend references them directly.
func DefaultProducts() []Product {
	return []Product{
		{
			ID:       1,
			Name:     "Wireless Bluetooth Headphones",
			Price:    99.99,
			ImageURL: "https://images.unsplash.com/photo-1505740420928-5e560c06d30e?w=300&h=300&fit=crop",
		},
		{
			ID:       2,
			Name:     "Smart Watch Series 5",
			Price:    299.99,
			ImageURL: "https://images.unsplash.com/photo-1523275335684-37898b6baf30?w=300&h=300&fit=crop",
		},
		{
			ID:       3,
			Name:     "Mechanical Gaming Keyboard",
			Price:    149.99,
			ImageURL: "https://images.unsplash.com/photo-1541140532154-b024d705b90a?w=300&h=300&fit=crop",
		},
		{
			ID:       4,
			Name:     "Wireless Mouse",
			Price:    49.99,
			ImageURL: "https://images.unsplash.com/photo-1527864550417-7fd91fc51a46?w=300&h=300&fit=crop",
		},
		{
			ID:       5,
			Name:     "USB-C Hub",
			Price:    79.99,
			ImageURL: "https://images.unsplash.com/photo-1583394838336-acd977736f90?w=300&h=300&fit=crop",
		},
		{
			ID:       6,
			Name:     "Portable Power Bank",
			Price:    39.99,
			ImageURL: "https://images.unsplash.com/photo-1609592807905-7b0a0b0b0b0b?w=300&h=300&fit=crop",
		},
		{
			ID:       7,
			Name:     "Bluetooth Speaker",
			Price:    89.99,
			ImageURL: "https://images.unsplash.com/photo-1608043152269-423dbba4e7e1?w=300&h=300&fit=crop",
		},
		{
			ID:       8,
			Name:     "Gaming Mouse Pad",
			Price:    24.99,
			ImageURL: "https://images.unsplash.com/photo-1615663245857-ac93bb7c39e7?w=300&h=300&fit=crop",
		},
	}
}
