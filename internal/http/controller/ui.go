package controller

import (
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"pantry/internal/view"
)

const pageTemplate = "index.tmpl"

// session returns the caller's session id and state. A browser without a
// live session gets a new one whose item list is loaded before first render.
func (h *Handler) session(c *gin.Context) (string, view.State) {
	if id, err := c.Cookie(h.cfg.SessionCookie); err == nil && id != "" {
		if state, ok := h.sessions.Load(id); ok {
			return id, state
		}
	}
	id := h.sessions.NewID()
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cfg.SessionCookie, id, 0, "/", "", false, true)
	state := h.view.Refresh(c.Request.Context(), view.State{})
	h.sessions.Save(id, state)
	h.log.Debug("session started", zap.String("session", id))
	return id, state
}

func (h *Handler) redirectHome(c *gin.Context) {
	c.Redirect(http.StatusSeeOther, "/")
}

// Page renders the inventory page. The search query parameter, when present,
// replaces the session's search term; refresh=1 reloads the list first.
func (h *Handler) Page(c *gin.Context) {
	id, state := h.session(c)
	if term, ok := c.GetQuery("search"); ok {
		state = view.SetSearch(state, term)
	}
	if c.Query("refresh") == "1" {
		state = h.view.Refresh(c.Request.Context(), state)
	}
	h.sessions.Save(id, state)
	c.HTML(http.StatusOK, pageTemplate, gin.H{
		"Page":       view.Render(state),
		"Collection": url.PathEscape(h.svc.Collection()),
	})
}

func (h *Handler) OpenAdd(c *gin.Context) {
	id, state := h.session(c)
	h.sessions.Save(id, view.OpenAdd(state))
	h.redirectHome(c)
}

func (h *Handler) OpenEdit(c *gin.Context) {
	id, state := h.session(c)
	h.sessions.Save(id, view.OpenEditByName(state, c.PostForm("name")))
	h.redirectHome(c)
}

func (h *Handler) CloseModal(c *gin.Context) {
	id, state := h.session(c)
	h.sessions.Save(id, view.Close(state))
	h.redirectHome(c)
}

func (h *Handler) Submit(c *gin.Context) {
	id, state := h.session(c)
	state = h.view.Submit(c.Request.Context(), state, c.PostForm("name"), c.PostForm("quantity"))
	h.sessions.Save(id, state)
	h.redirectHome(c)
}

func (h *Handler) Remove(c *gin.Context) {
	id, state := h.session(c)
	state = h.view.Remove(c.Request.Context(), state, c.PostForm("name"))
	h.sessions.Save(id, state)
	h.redirectHome(c)
}
