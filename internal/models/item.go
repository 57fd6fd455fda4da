package models

// Item is a record of the shared items collection. Items have no owner;
// every authenticated user may read and edit all of them.
type Item struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}
