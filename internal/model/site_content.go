package model

import (
	"time"
)

// 站点内容栏目
const (
	SiteSectionAbout   = "about"
	SiteSectionFooter  = "footer"
	SiteSectionTeam    = "team"
	SiteSectionContact = "contact"
	SiteSectionAd      = "ad"
)

var siteSections = map[string]bool{
	SiteSectionAbout:   true,
	SiteSectionFooter:  true,
	SiteSectionTeam:    true,
	SiteSectionContact: true,
	SiteSectionAd:      true,
}

func ValidSiteSection(section string) bool {
	return siteSections[section]
}

// SiteContent 站点级内容条目。about/footer/contact 通常只有一条，
// team 与 ad 按 position 排序展示多条。
type SiteContent struct {
	ID        int64     `gorm:"primaryKey" json:"id"`
	Section   string    `gorm:"size:20;not null;index" json:"section"`
	Title     string    `gorm:"size:200" json:"title,omitempty"`
	Body      string    `gorm:"type:text" json:"body,omitempty"`
	ImageURL  string    `gorm:"size:500" json:"image_url,omitempty"`
	LinkURL   string    `gorm:"size:500" json:"link_url,omitempty"`
	Position  int       `gorm:"default:0" json:"position"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (SiteContent) TableName() string {
	return "site_contents"
}
