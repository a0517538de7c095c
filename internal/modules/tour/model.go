// README: Tour entity stored in PostgreSQL.
package tour

// Tour is a saved tour listing.
type Tour struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
	Location    string  `json:"location"`
}
