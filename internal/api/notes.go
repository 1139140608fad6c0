package api

import (
	"context"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"secondbrain/internal/entity"
)

type notesUsecase interface {
	CreateNote(ctx context.Context, fields entity.NoteFields) (entity.Note, error)
	GetNote(ctx context.Context, id int64) (entity.Note, error)
	ListNotes(ctx context.Context, search string) ([]entity.Note, error)
	UpdateNote(ctx context.Context, id int64, patch entity.NotePatch) (entity.Note, error)
	DeleteNote(ctx context.Context, id int64) error
	CreateManualLink(ctx context.Context, sourceID, targetID int64) (entity.Link, error)
	SubscribeToCreated(ctx context.Context) <-chan entity.NoteCreatedEvent
}

type NotesHandler struct {
	notes notesUsecase
}

func NewNotesHandler(notes notesUsecase) *NotesHandler {
	return &NotesHandler{notes: notes}
}

func (h *NotesHandler) RegisterRoutes(r gin.IRouter) {
	g := r.Group("/api")
	g.GET("/notes", h.list)
	g.POST("/notes", h.create)
	g.GET("/notes/:id", h.get)
	g.PUT("/notes/:id", h.update)
	g.DELETE("/notes/:id", h.delete)
	g.POST("/links", h.createLink)
	g.GET("/events", h.events)
}

type createNoteRequest struct {
	Title      string   `json:"title"`
	Content    *string  `json:"content" binding:"required"`
	Type       string   `json:"type"`
	Tags       []string `json:"tags"`
	IsFavorite bool     `json:"isFavorite"`
}

type updateNoteRequest struct {
	Title      *string  `json:"title"`
	Content    *string  `json:"content"`
	Type       *string  `json:"type"`
	Tags       []string `json:"tags"`
	IsFavorite *bool    `json:"isFavorite"`
}

type createLinkRequest struct {
	SourceID int64 `json:"sourceId" binding:"required"`
	TargetID int64 `json:"targetId" binding:"required"`
}

func (h *NotesHandler) list(c *gin.Context) {
	notes, err := h.notes.ListNotes(c.Request.Context(), c.Query("search"))
	if err != nil {
		writeError(c, err)
		return
	}

	if notes == nil {
		notes = []entity.Note{}
	}

	c.JSON(http.StatusOK, notes)
}

func (h *NotesHandler) create(c *gin.Context) {
	var req createNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, entity.NewValidationError("content", "content is required"))
		return
	}

	note, err := h.notes.CreateNote(c.Request.Context(), entity.NoteFields{
		Title:      req.Title,
		Content:    *req.Content,
		Type:       req.Type,
		Tags:       req.Tags,
		IsFavorite: req.IsFavorite,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, note)
}

func (h *NotesHandler) get(c *gin.Context) {
	id, err := noteID(c)
	if err != nil {
		writeError(c, entity.ErrNoteNotFound)
		return
	}

	note, err := h.notes.GetNote(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, note)
}

func (h *NotesHandler) update(c *gin.Context) {
	id, err := noteID(c)
	if err != nil {
		writeError(c, entity.ErrNoteNotFound)
		return
	}

	var req updateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, entity.NewValidationError("body", "invalid update payload"))
		return
	}

	note, err := h.notes.UpdateNote(c.Request.Context(), id, entity.NotePatch{
		Title:      req.Title,
		Content:    req.Content,
		Type:       req.Type,
		Tags:       req.Tags,
		IsFavorite: req.IsFavorite,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, note)
}

func (h *NotesHandler) delete(c *gin.Context) {
	id, err := noteID(c)
	if err != nil {
		c.Status(http.StatusNoContent)
		return
	}

	if err := h.notes.DeleteNote(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *NotesHandler) createLink(c *gin.Context) {
	var req createLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, entity.NewValidationError("body", "sourceId and targetId are required"))
		return
	}

	link, err := h.notes.CreateManualLink(c.Request.Context(), req.SourceID, req.TargetID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, link)
}

// events streams created notes as server-sent events until the client goes
// away.
func (h *NotesHandler) events(c *gin.Context) {
	ctx := c.Request.Context()
	events := h.notes.SubscribeToCreated(ctx)

	c.Header("Cache-Control", "no-cache")

	c.Stream(func(w io.Writer) bool {
		select {
		case <-ctx.Done():
			return false
		case ev, ok := <-events:
			if !ok {
				return false
			}
			c.SSEvent("note_created", ev)
			return true
		}
	})
}

func noteID(c *gin.Context) (int64, error) {
	return strconv.ParseInt(c.Param("id"), 10, 64)
}
