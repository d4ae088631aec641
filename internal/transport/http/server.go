package http

import (
	"fmt"
	stdhttp "net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/peerlink/relay/internal/config"
	"github.com/peerlink/relay/internal/core"
	"github.com/peerlink/relay/internal/store"
)

// NewServer builds the HTTP server: websocket endpoint, upload endpoint,
// static serving of stored blobs, and the admin snapshots.
func NewServer(hub *core.Hub, st store.Store, cfg config.Config, logger *zerolog.Logger) *stdhttp.Server {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery(), LoggerMiddleware(logger))

	router.GET("/health", healthHandler)
	router.GET("/ws", gin.WrapH(NewWSHandler(hub, logger)))

	uploads := NewUploadHandlers(st, cfg.UploadDir, cfg.UploadMaxBytes, logger)
	router.POST("/upload", uploads.Upload)
	router.Static("/uploads", cfg.UploadDir)

	admin := NewAdminHandlers(hub, st)
	router.GET("/admin/channels", admin.Channels)
	router.GET("/admin/users/:channel", admin.Users)
	router.GET("/admin/uploads", admin.Uploads)

	return &stdhttp.Server{
		Addr:              cfg.Addr,
		Handler:           router,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
	}
}

func healthHandler(c *gin.Context) {
	_, _ = fmt.Fprint(c.Writer, "ok")
}
