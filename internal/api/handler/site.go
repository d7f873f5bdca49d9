package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/linuxbro/blog_go_server/internal/pkg/response"
	"github.com/linuxbro/blog_go_server/internal/service"
)

type SiteHandler struct {
	siteService *service.SiteService
}

func NewSiteHandler(siteService *service.SiteService) *SiteHandler {
	return &SiteHandler{
		siteService: siteService,
	}
}

// GetSection 站点栏目内容
// GET /api/v1/site/:section
func (h *SiteHandler) GetSection(c *gin.Context) {
	items, err := h.siteService.GetSection(c.Param("section"))
	if err != nil {
		if errors.Is(err, service.ErrUnknownSection) {
			response.NotFoundError(c, err.Error())
			return
		}
		response.ServerError(c, "")
		return
	}

	response.Success(c, items)
}
