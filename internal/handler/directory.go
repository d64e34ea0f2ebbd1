package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/medai-pro/medai-server-go/internal/domain/directory"
)

// SpecialistsResponse wraps the static specialist directory.
type SpecialistsResponse struct {
	Success     bool                   `json:"success"`
	Specialists []directory.Specialist `json:"specialists"`
}

// TipsResponse wraps the static health tips.
type TipsResponse struct {
	Success bool     `json:"success"`
	Tips    []string `json:"tips"`
}

// DirectoryHandler serves the static lookup endpoints.
type DirectoryHandler struct {
	directory *directory.Directory
}

// NewDirectoryHandler creates the static lookup handler.
func NewDirectoryHandler(dir *directory.Directory) *DirectoryHandler {
	return &DirectoryHandler{directory: dir}
}

// RegisterRoutes registers the static lookup routes.
func (h *DirectoryHandler) RegisterRoutes(router *gin.Engine) {
	router.GET("/api/specialists", h.handleSpecialists)
	router.GET("/api/health-tips", h.handleTips)
}

func (h *DirectoryHandler) handleSpecialists(c *gin.Context) {
	c.JSON(http.StatusOK, SpecialistsResponse{
		Success:     true,
		Specialists: h.directory.Specialists(),
	})
}

func (h *DirectoryHandler) handleTips(c *gin.Context) {
	c.JSON(http.StatusOK, TipsResponse{
		Success: true,
		Tips:    h.directory.Tips(),
	})
}
