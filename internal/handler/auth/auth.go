package auth

import (
	"time"

	"gestor-politico/internal/service"
	"gestor-politico/internal/store"
)

var (
	authenticateUser     = service.AuthenticateUser
	issueAccessToken     = service.IssueAccessToken
	issueRefreshToken    = service.IssueRefreshToken
	validateRefreshToken = service.ValidateRefreshToken
	revokeRefreshToken   = service.RevokeRefreshToken
	getUserByID          = store.GetUserByID
	timeNow              = time.Now
)
