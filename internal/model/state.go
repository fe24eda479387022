package model

// AppState is the complete Entity Store snapshot: every domain collection
// plus the current session role. It is the unit of persistence — every
// mutation produces a new snapshot that replaces the old one wholesale, so
// readers always see either the previous or the next state, never a torn one.
//
// Movements and transactions are kept newest-first.
type AppState struct {
	Services     []Service                `json:"services"`
	Products     []Product                `json:"products"`
	Clients      []Client                 `json:"clients"`
	Providers    []Provider               `json:"providers"`
	Inventory    map[string]InventoryItem `json:"inventory"` // product id → item
	Movements    []InventoryMovement      `json:"movements"`
	Transactions []Transaction            `json:"transactions"`
	UserRole     Role                     `json:"userRole"`
}

// Clone returns a deep copy. Published snapshots are never mutated; all
// writes go through a clone that atomically replaces the current state.
func (s *AppState) Clone() *AppState {
	c := &AppState{
		Services:     make([]Service, len(s.Services)),
		Products:     make([]Product, len(s.Products)),
		Clients:      make([]Client, len(s.Clients)),
		Providers:    make([]Provider, len(s.Providers)),
		Inventory:    make(map[string]InventoryItem, len(s.Inventory)),
		Movements:    make([]InventoryMovement, len(s.Movements)),
		Transactions: make([]Transaction, len(s.Transactions)),
		UserRole:     s.UserRole,
	}
	copy(c.Services, s.Services)
	copy(c.Products, s.Products)
	copy(c.Clients, s.Clients)
	copy(c.Providers, s.Providers)
	copy(c.Movements, s.Movements)
	for id, item := range s.Inventory {
		c.Inventory[id] = item
	}
	for i, t := range s.Transactions {
		if len(t.Items) > 0 {
			items := make([]TransactionItem, len(t.Items))
			copy(items, t.Items)
			t.Items = items
		}
		c.Transactions[i] = t
	}
	return c
}

// FindProduct resolves a product by id or, failing that, by sku.
// Returns nil when neither matches.
func (s *AppState) FindProduct(idOrSKU string) *Product {
	for i := range s.Products {
		if s.Products[i].ID == idOrSKU {
			return &s.Products[i]
		}
	}
	for i := range s.Products {
		if s.Products[i].SKU == idOrSKU {
			return &s.Products[i]
		}
	}
	return nil
}

// FindClient returns the client with the given id, or nil.
func (s *AppState) FindClient(id string) *Client {
	for i := range s.Clients {
		if s.Clients[i].ID == id {
			return &s.Clients[i]
		}
	}
	return nil
}
