package domain

// Principal is the authenticated identity a request acts for
type Principal struct {
	ID      string
	IsAdmin bool
}
