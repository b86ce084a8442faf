package cart

import "time"

// Line is one product entry within a cart. Name, price and image are
// snapshotted from the catalog when the line is added; later catalog changes
// do not rewrite existing lines.
type Line struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
	ImageURL  string  `json:"imageUrl"`
}

// Cart is the per-subject aggregate. Total always equals the sum of
// line price times quantity; it is recomputed after every mutation.
type Cart struct {
	ID        string    `json:"id"`
	SubjectID string    `json:"userId"`
	Lines     []Line    `json:"items"`
	Total     float64   `json:"total"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Clone returns a deep copy so repository callers can never alias stored
// line slices.
func (c *Cart) Clone() *Cart {
	if c == nil {
		return nil
	}
	out := *c
	out.Lines = make([]Line, len(c.Lines))
	copy(out.Lines, c.Lines)
	return &out
}
