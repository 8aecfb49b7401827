package shortenurlhandlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/aseptimu/shortlink/internal/app/config"
	"github.com/aseptimu/shortlink/internal/app/service"
	"github.com/aseptimu/shortlink/internal/app/utils"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// URLGetter resolves identifiers.
type URLGetter interface {
	GetOriginalURL(ctx context.Context, id string) (string, error)
}

// GetURLHandler redirects to original URLs.
type GetURLHandler struct {
	cfg     *config.ConfigType
	service URLGetter
	logger  *zap.SugaredLogger
}

func NewGetURLHandler(cfg *config.ConfigType, service URLGetter, logger *zap.SugaredLogger) *GetURLHandler {
	return &GetURLHandler{cfg: cfg, service: service, logger: logger}
}

// GetURL handles GET /:id with a 302 to the stored URL. Unknown ids and
// storage failures both answer 404.
func (h *GetURLHandler) GetURL(c *gin.Context) {
	utils.LogRequest(c, h.logger)

	ctx, cancel := requestContext(c, h.cfg)
	defer cancel()

	id := c.Param("id")
	originalURL, err := h.service.GetOriginalURL(ctx, id)
	if err != nil {
		if !errors.Is(err, service.ErrURLNotFound) {
			h.logger.Errorw("Failed to resolve URL", "id", id, "error", err)
		}
		writeStatus(c, http.StatusNotFound)
		return
	}

	// Location is set verbatim; http.Redirect would rewrite relative values.
	c.Header("Location", originalURL)
	c.Status(http.StatusFound)
}
