package api

// Common response structures

// DeleteResponse confirms a delete operation, naming the removed id.
// Deletes are idempotent, so the same confirmation is returned whether
// or not the record existed.
type DeleteResponse struct {
	Message string `json:"message"`
	ID      int    `json:"id"`
}

// BackfillResponse confirms the bulk updated_at backfill.
type BackfillResponse struct {
	Message string `json:"message"`

	// Updated is the number of records that received a timestamp.
	Updated int `json:"updated"`
}
