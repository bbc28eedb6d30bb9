package server

import (
	"encoding/json"
	"net/http"

	apperrors "github.com/instamd/portal-auth/internal/errors"
	"github.com/rs/zerolog/log"
)

// Service-provided failure messages. Clients display these verbatim.
const (
	msgMissingFields      = "Username and password are required"
	msgInvalidCredentials = "Invalid email or password"
	msgUnexpectedError    = "An unexpected error occurred"
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type userPayload struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

type loginResponse struct {
	Success bool         `json:"success"`
	Token   string       `json:"token,omitempty"`
	User    *userPayload `json:"user,omitempty"`
	Error   string       `json:"error,omitempty"`
}

// LoginHandler processes POST /api/login. The username field carries
// the account email; matching is case-insensitive, the password check
// is exact.
func (s *Server) LoginHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req loginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Err(err).Msg("login: undecodable request body")
			writeJSON(w, http.StatusInternalServerError, loginResponse{Success: false, Error: msgUnexpectedError})
			return
		}

		if req.Username == "" || req.Password == "" {
			writeJSON(w, http.StatusBadRequest, loginResponse{Success: false, Error: msgMissingFields})
			return
		}

		user, err := s.users.GetByEmail(req.Username)
		if err != nil && !apperrors.Is(err, apperrors.ErrUserNotFound) {
			log.Err(err).Msg("login: directory lookup failed")
			writeJSON(w, http.StatusInternalServerError, loginResponse{Success: false, Error: msgUnexpectedError})
			return
		}

		// Same response for unknown user and wrong password
		if user == nil || !user.CheckPassword(req.Password) {
			writeJSON(w, http.StatusUnauthorized, loginResponse{Success: false, Error: msgInvalidCredentials})
			return
		}

		signedToken, err := s.tokens.CreateAccessToken(user)
		if err != nil {
			log.Err(err).Msg("login: token creation failed")
			writeJSON(w, http.StatusInternalServerError, loginResponse{Success: false, Error: msgUnexpectedError})
			return
		}

		writeJSON(w, http.StatusOK, loginResponse{
			Success: true,
			Token:   signedToken,
			User: &userPayload{
				ID:    user.ID,
				Email: user.Email,
				Name:  user.Name,
				Role:  string(user.Role),
			},
		})
	}
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", contentTypeJSON)
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Err(err).Msg("failed to encode response")
	}
}
