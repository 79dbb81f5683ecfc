package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"ai_blog_assistant/generator"
	"ai_blog_assistant/publisher"
)

type titlesRequest struct {
	Topic string `json:"topic"`
}

// blogRequest accepts an empty title and keyword list; only the enums and
// the word-count range are checked.
type blogRequest struct {
	Title    string   `json:"title"`
	Keywords []string `json:"keywords"`
	Length   int      `json:"length" binding:"required,min=100,max=1000"`
	Tone     string   `json:"tone" binding:"required,oneof=formal casual professional funny"`
	Style    string   `json:"style" binding:"required,oneof=news storytelling listicle"`
}

type blogResponse struct {
	Title   string               `json:"title"`
	Content string               `json:"content"`
	HTML    string               `json:"html"`
	Share   publisher.ShareLinks `json:"share"`
	Stats   publisher.PostStats  `json:"stats"`
}

type keywordRequest struct {
	Keyword string `json:"keyword"`
}

func (s *Server) apiSuggestTitles(c *gin.Context) {
	var req titlesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request body: "+err.Error())
		return
	}

	raw, err := s.agent.SuggestTitles(c.Request.Context(), req.Topic)
	if err != nil {
		LLMFailure(c, err)
		return
	}
	c.JSON(http.StatusOK, generator.NewTitleSuggestions(raw))
}

func (s *Server) apiWriteBlog(c *gin.Context) {
	var req blogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request body: "+err.Error())
		return
	}

	content, err := s.agent.WriteBlog(c.Request.Context(), generator.BlogRequest{
		Title:    req.Title,
		Keywords: req.Keywords,
		Length:   req.Length,
		Tone:     generator.Tone(req.Tone),
		Style:    generator.Style(req.Style),
	})
	if err != nil {
		LLMFailure(c, err)
		return
	}

	html, err := publisher.RenderHTML(content)
	if err != nil {
		log.WithError(err).Warn("[Server] markdown render failed")
	}
	c.JSON(http.StatusOK, blogResponse{
		Title:   req.Title,
		Content: content,
		HTML:    html,
		Share:   publisher.BuildShareLinks(content),
		Stats:   publisher.Analyze(content),
	})
}

func (s *Server) apiCreateSession(c *gin.Context) {
	sess := generator.NewSession(uuid.NewString())
	if err := s.store.Save(c.Request.Context(), sess); err != nil {
		Internal(c, err.Error())
		return
	}
	c.JSON(http.StatusCreated, sess)
}

func (s *Server) apiGetSession(c *gin.Context) {
	sess, ok := s.apiLoadSession(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, sess)
}

func (s *Server) apiAddKeyword(c *gin.Context) {
	var req keywordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request body: "+err.Error())
		return
	}
	sess, ok := s.apiLoadSession(c)
	if !ok {
		return
	}
	sess.AddKeyword(req.Keyword)
	if err := s.store.Save(c.Request.Context(), sess); err != nil {
		Internal(c, err.Error())
		return
	}
	c.JSON(http.StatusOK, sess)
}

func (s *Server) apiClearKeywords(c *gin.Context) {
	sess, ok := s.apiLoadSession(c)
	if !ok {
		return
	}
	sess.ClearKeywords()
	if err := s.store.Save(c.Request.Context(), sess); err != nil {
		Internal(c, err.Error())
		return
	}
	c.JSON(http.StatusOK, sess)
}

func (s *Server) apiLoadSession(c *gin.Context) (*generator.Session, bool) {
	id := c.Param("id")
	sess, err := s.store.Get(c.Request.Context(), id)
	if errors.Is(err, ErrSessionNotFound) {
		NotFound(c, "session "+id+" not found")
		return nil, false
	}
	if err != nil {
		Internal(c, err.Error())
		return nil, false
	}
	return sess, true
}
