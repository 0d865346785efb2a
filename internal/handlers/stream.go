package handlers

import (
	"io"

	"github.com/gin-gonic/gin"
	"github.com/teamhub/teamhub/internal/dto"
	apierrors "github.com/teamhub/teamhub/internal/errors"
	"github.com/teamhub/teamhub/internal/middleware"
	"github.com/teamhub/teamhub/internal/services"
	"github.com/teamhub/teamhub/internal/store"
)

// StreamHandler exposes the store's snapshot subscriptions as server-sent
// events. Each event carries the full current result set, filtered to what
// the reader's role may see; slow readers receive the latest snapshot, not
// a backlog.
type StreamHandler struct {
	store store.Store
}

// NewStreamHandler creates a new StreamHandler backed by the given store.
func NewStreamHandler(st store.Store) *StreamHandler {
	return &StreamHandler{store: st}
}

// StreamDocuments emits a "snapshot" event with the visible document set on
// subscribe and after every document mutation, until the client disconnects.
func (h *StreamHandler) StreamDocuments(c *gin.Context) {
	role := middleware.GetRole(c)

	snapshots, cancel, err := h.store.SubscribeDocuments()
	if err != nil {
		apierrors.StoreUnavailable(c, "")
		return
	}
	defer cancel()

	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")

	clientGone := c.Request.Context().Done()
	c.Stream(func(w io.Writer) bool {
		select {
		case docs, ok := <-snapshots:
			if !ok {
				return false
			}
			visible := services.DocumentsVisibleTo(docs, role)
			c.SSEvent("snapshot", dto.ToDocumentDTOs(visible))
			return true
		case <-clientGone:
			return false
		}
	})
}

// StreamTickets emits a "snapshot" event with the visible ticket set on
// subscribe and after every ticket mutation, until the client disconnects.
func (h *StreamHandler) StreamTickets(c *gin.Context) {
	role := middleware.GetRole(c)

	snapshots, cancel, err := h.store.SubscribeTickets()
	if err != nil {
		apierrors.StoreUnavailable(c, "")
		return
	}
	defer cancel()

	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")

	clientGone := c.Request.Context().Done()
	c.Stream(func(w io.Writer) bool {
		select {
		case tickets, ok := <-snapshots:
			if !ok {
				return false
			}
			visible := services.TicketsVisibleTo(tickets, role)
			c.SSEvent("snapshot", dto.ToTicketDTOs(visible, role))
			return true
		case <-clientGone:
			return false
		}
	})
}

// StreamLinks emits a "snapshot" event with the global link list on
// subscribe and after every save, until the client disconnects.
func (h *StreamHandler) StreamLinks(c *gin.Context) {
	snapshots, cancel, err := h.store.SubscribeSettings()
	if err != nil {
		apierrors.StoreUnavailable(c, "")
		return
	}
	defer cancel()

	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")

	clientGone := c.Request.Context().Done()
	c.Stream(func(w io.Writer) bool {
		select {
		case settings, ok := <-snapshots:
			if !ok {
				return false
			}
			c.SSEvent("snapshot", dto.ToSettingsDTO(settings))
			return true
		case <-clientGone:
			return false
		}
	})
}
