package service

import "gestor-politico/internal/model"

// Session is the authenticated actor of a request, decoded from the access
// token by the auth middleware and handed explicitly to the services.
type Session struct {
	UserID   int
	Username string
	Name     string
	Role     model.Role
}

func (s Session) IsAdmin() bool {
	return s.Role == model.RoleAdmin
}

// SessionFromClaims builds the session carried by a verified token.
func SessionFromClaims(c *CustomClaims) Session {
	return Session{UserID: c.UserID, Username: c.Username, Name: c.Name, Role: c.Role}
}
