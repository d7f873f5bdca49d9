package service

import (
	"errors"

	"github.com/linuxbro/blog_go_server/internal/model"
	"github.com/linuxbro/blog_go_server/internal/repository"
)

var ErrUnknownSection = errors.New("未知的站点内容栏目")

type SiteService struct {
	siteRepo *repository.SiteRepository
}

func NewSiteService(siteRepo *repository.SiteRepository) *SiteService {
	return &SiteService{siteRepo: siteRepo}
}

// GetSection 获取站点栏目内容（关于、页脚、团队、联系方式、广告位）
func (s *SiteService) GetSection(section string) ([]*model.SiteContent, error) {
	if !model.ValidSiteSection(section) {
		return nil, ErrUnknownSection
	}
	return s.siteRepo.ListBySection(section)
}
