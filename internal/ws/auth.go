// internal/ws/auth.go
package ws

import (
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/skillsharehq/skillshare-hub/internal/auth"
	"github.com/skillsharehq/skillshare-hub/internal/model"
)

// authenticate resolves the caller from a Bearer header or, for browser
// websocket clients that cannot set headers, a token query parameter.
func authenticate(tokenManager *auth.TokenManager, r *http.Request) (uuid.UUID, bool) {
	token := r.URL.Query().Get("token")
	if token == "" {
		header := r.Header.Get("Authorization")
		if parts := strings.Split(header, " "); len(parts) == 2 && parts[0] == "Bearer" {
			token = parts[1]
		}
	}
	if token == "" {
		return uuid.Nil, false
	}

	claims, err := tokenManager.Validate(token)
	if err != nil {
		return uuid.Nil, false
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return uuid.Nil, false
	}

	return userID, true
}

func messageType(raw string) model.MessageType {
	switch model.MessageType(raw) {
	case model.MessageImage:
		return model.MessageImage
	case model.MessageFile:
		return model.MessageFile
	default:
		return model.MessageText
	}
}
