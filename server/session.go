package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"ai_blog_assistant/generator"
)

const sessionCookie = "blog_session"

// loadSession returns the caller's session, creating one (and its cookie)
// when the cookie is missing or points at an expired session.
func (s *Server) loadSession(c *gin.Context) (*generator.Session, error) {
	if id, err := c.Cookie(sessionCookie); err == nil && id != "" {
		sess, err := s.store.Get(c.Request.Context(), id)
		if err == nil {
			return sess, nil
		}
		if !errors.Is(err, ErrSessionNotFound) {
			return nil, err
		}
	}

	sess := generator.NewSession(uuid.NewString())
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     sessionCookie,
		Value:    sess.ID,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return sess, nil
}
