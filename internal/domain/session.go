package domain

// Session holds the current user identity, if any. At most one session is
// active per store instance.
type Session struct {
	User            *User `json:"user"`
	IsAuthenticated bool  `json:"isAuthenticated"`
}
