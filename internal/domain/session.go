package domain

// UserSession is the persisted session identity blob. It is stored as a whole
// under its own key in the blob store, independent from the reservation snapshot.
type UserSession struct {
	UserID string `json:"userId"`
	Name   string `json:"name"`
	Email  string `json:"email"`
}
