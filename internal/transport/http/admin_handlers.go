package http

import (
	stdhttp "net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/peerlink/relay/internal/core"
	"github.com/peerlink/relay/internal/store"
)

// AdminHandlers serves read-only snapshots of the relay's live state.
type AdminHandlers struct {
	hub   *core.Hub
	store store.Store
}

// NewAdminHandlers builds the admin endpoint handlers.
func NewAdminHandlers(hub *core.Hub, st store.Store) *AdminHandlers {
	return &AdminHandlers{hub: hub, store: st}
}

// ChannelInfo is one active channel in the admin listing.
type ChannelInfo struct {
	Name      string `json:"name"`
	UserCount int    `json:"userCount"`
}

// UploadInfo is one stored blob in the admin listing.
type UploadInfo struct {
	Name      string    `json:"name"`
	URL       string    `json:"url"`
	Type      string    `json:"type"`
	Size      int64     `json:"size"`
	CreatedAt time.Time `json:"createdAt"`
}

// Channels lists all channels with at least one member.
func (h *AdminHandlers) Channels(c *gin.Context) {
	snapshot := h.hub.ChannelsSnapshot()
	channels := make([]ChannelInfo, 0, len(snapshot))
	for _, ch := range snapshot {
		channels = append(channels, ChannelInfo{Name: ch.Name, UserCount: ch.UserCount})
	}
	c.JSON(stdhttp.StatusOK, channels)
}

// Users lists the presence snapshot for one channel.
func (h *AdminHandlers) Users(c *gin.Context) {
	users := h.hub.UsersSnapshot(c.Param("channel"))
	c.JSON(stdhttp.StatusOK, onlineUsersToData(users))
}

// Uploads lists the most recently stored blobs.
func (h *AdminHandlers) Uploads(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	uploads, err := h.store.ListUploads(c.Request.Context(), limit)
	if err != nil {
		c.JSON(stdhttp.StatusInternalServerError, ErrorResponse{Error: "failed to list uploads"})
		return
	}
	out := make([]UploadInfo, 0, len(uploads))
	for _, up := range uploads {
		out = append(out, UploadInfo{
			Name:      up.Name,
			URL:       "/uploads/" + up.StoredName,
			Type:      up.Kind,
			Size:      up.Size,
			CreatedAt: up.CreatedAt,
		})
	}
	c.JSON(stdhttp.StatusOK, out)
}
