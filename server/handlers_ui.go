package server

import (
	"html/template"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"ai_blog_assistant/generator"
	"ai_blog_assistant/publisher"
)

type pageData struct {
	Session  *generator.Session
	Tones    []generator.Tone
	Styles   []generator.Style
	MinLen   int
	MaxLen   int
	StepLen  int
	PostHTML template.HTML
	Share    *publisher.ShareLinks
	Stats    *publisher.PostStats
	Error    string
	Provider string
	Model    string
}

func (s *Server) handleIndex(c *gin.Context) {
	sess, err := s.loadSession(c)
	if err != nil {
		s.renderFailure(c, err)
		return
	}
	s.saveAndRender(c, sess, nil)
}

// handleSubmitTopic runs the title-suggestion pipeline for the entered topic.
func (s *Server) handleSubmitTopic(c *gin.Context) {
	sess, ok := s.sessionFromForm(c)
	if !ok {
		return
	}
	_, err := sess.SubmitTopic(c.Request.Context(), s.agent, c.PostForm("topic"))
	s.saveAndRender(c, sess, err)
}

// handlePickTitle copies one of the suggested titles into the title field.
func (s *Server) handlePickTitle(c *gin.Context) {
	sess, ok := s.sessionFromForm(c)
	if !ok {
		return
	}
	if pick := c.PostForm("pick"); pick != "" {
		sess.Form.Title = pick
	}
	s.saveAndRender(c, sess, nil)
}

func (s *Server) handleAddKeyword(c *gin.Context) {
	sess, ok := s.sessionFromForm(c)
	if !ok {
		return
	}
	sess.AddKeyword(c.PostForm("keyword"))
	s.saveAndRender(c, sess, nil)
}

func (s *Server) handleClearKeywords(c *gin.Context) {
	sess, ok := s.sessionFromForm(c)
	if !ok {
		return
	}
	sess.ClearKeywords()
	s.saveAndRender(c, sess, nil)
}

func (s *Server) handleGenerateBlog(c *gin.Context) {
	sess, ok := s.sessionFromForm(c)
	if !ok {
		return
	}
	_, err := sess.GenerateBlog(c.Request.Context(), s.agent)
	s.saveAndRender(c, sess, err)
}

// sessionFromForm loads the session and copies the posted form fields into
// it, so every button keeps what the user typed. Out-of-range or unknown
// values keep the previous setting.
func (s *Server) sessionFromForm(c *gin.Context) (*generator.Session, bool) {
	sess, err := s.loadSession(c)
	if err != nil {
		s.renderFailure(c, err)
		return nil, false
	}

	if topic, ok := c.GetPostForm("topic"); ok {
		sess.Topic = topic
	}
	if title, ok := c.GetPostForm("title"); ok {
		sess.Form.Title = title
	}
	if raw, ok := c.GetPostForm("length"); ok {
		if n, err := strconv.Atoi(raw); err == nil && validLength(n) {
			sess.Form.Length = n
		}
	}
	if tone := generator.Tone(c.PostForm("tone")); tone.Valid() {
		sess.Form.Tone = tone
	}
	if style := generator.Style(c.PostForm("style")); style.Valid() {
		sess.Form.Style = style
	}
	return sess, true
}

func validLength(n int) bool {
	return n >= generator.MinBlogLength && n <= generator.MaxBlogLength &&
		(n-generator.MinBlogLength)%generator.BlogLengthStep == 0
}

// saveAndRender persists the session and renders the page. A generation
// error is shown in the banner with the rest of the state intact.
func (s *Server) saveAndRender(c *gin.Context, sess *generator.Session, genErr error) {
	status := http.StatusOK
	data := pageData{
		Session:  sess,
		Tones:    generator.Tones,
		Styles:   generator.Styles,
		MinLen:   generator.MinBlogLength,
		MaxLen:   generator.MaxBlogLength,
		StepLen:  generator.BlogLengthStep,
		Provider: s.opts.Provider,
		Model:    s.opts.Model,
	}
	if genErr != nil {
		status = http.StatusBadGateway
		data.Error = genErr.Error()
		_ = c.Error(genErr)
	}

	if err := s.store.Save(c.Request.Context(), sess); err != nil {
		log.WithError(err).Error("[Server] failed to save session")
		status = http.StatusInternalServerError
		data.Error = "could not save your session: " + err.Error()
	}

	if sess.Post != nil {
		html, err := publisher.RenderHTML(sess.Post.Content)
		if err != nil {
			log.WithError(err).Warn("[Server] markdown render failed, showing raw text")
			html = "<pre>" + template.HTMLEscapeString(sess.Post.Content) + "</pre>"
		}
		data.PostHTML = template.HTML(html)
		links := publisher.BuildShareLinks(sess.Post.Content)
		data.Share = &links
		stats := publisher.Analyze(sess.Post.Content)
		data.Stats = &stats
	}

	c.HTML(status, "index.html", data)
}

func (s *Server) renderFailure(c *gin.Context, err error) {
	log.WithError(err).Error("[Server] failed to load session")
	c.HTML(http.StatusInternalServerError, "index.html", pageData{
		Session: generator.NewSession(""),
		Tones:   generator.Tones,
		Styles:  generator.Styles,
		MinLen:  generator.MinBlogLength,
		MaxLen:  generator.MaxBlogLength,
		StepLen: generator.BlogLengthStep,
		Error:   "could not load your session: " + err.Error(),
	})
}
