package model

// Salesperson is a member of staff who records sales and runs test
// drives.  Corresponds to a row in the `salespeople` table.
type Salesperson struct {
	ID         uint64 `json:"id"`         // salespeople.id
	Name       string `json:"name"`       // salespeople.name
	Department string `json:"department"` // salespeople.department
}
