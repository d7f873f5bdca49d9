package model

import (
	"time"
)

type Author struct {
	ID            int64     `gorm:"primaryKey" json:"id"`
	UUID          string    `gorm:"size:36;uniqueIndex;not null" json:"uuid"`
	Username      string    `gorm:"size:50;uniqueIndex;not null" json:"username"`
	Email         *string   `gorm:"size:100;uniqueIndex" json:"email,omitempty"`
	PasswordHash  *string   `gorm:"size:255" json:"-"`
	FullName      string    `gorm:"size:100" json:"full_name"`
	Bio           string    `gorm:"type:text" json:"bio"`
	AvatarURL     string    `gorm:"size:500" json:"avatar_url"`
	Website       string    `gorm:"size:200" json:"website"`
	TwitterHandle string    `gorm:"size:100" json:"twitter_handle"`
	GithubID      *string   `gorm:"column:github_id;size:50;uniqueIndex" json:"-"`
	GoogleID      *string   `gorm:"column:google_id;size:100;uniqueIndex" json:"-"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (Author) TableName() string {
	return "authors"
}
