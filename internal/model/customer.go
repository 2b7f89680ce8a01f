package model

// Customer is a dealership customer.  Email addresses are unique
// across the `customers` table; the database enforces this.
type Customer struct {
	ID    uint64 `json:"id"`    // customers.id
	Name  string `json:"name"`  // customers.name
	Email string `json:"email"` // customers.email (unique)
}
