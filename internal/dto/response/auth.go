package response

import "localserve/internal/data/entity"

type SessionResponse struct {
	Authenticated bool   `json:"authenticated"`
	Username      string `json:"username,omitempty"`
	Email         string `json:"email,omitempty"`
}

func SessionToResponse(session *entity.Session) SessionResponse {
	if session == nil {
		return SessionResponse{}
	}
	return SessionResponse{
		Authenticated: session.Authenticated,
		Username:      session.Username,
		Email:         session.Email,
	}
}

type PasswordResetResponse struct {
	Email   string `json:"email"`
	Message string `json:"message"`
}
