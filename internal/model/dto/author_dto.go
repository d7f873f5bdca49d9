package dto

// AuthorInfo 作者摘要信息
type AuthorInfo struct {
	ID        int64  `json:"id"`
	UUID      string `json:"uuid"`
	Username  string `json:"username"`
	FullName  string `json:"full_name,omitempty"`
	AvatarURL string `json:"avatar_url"`
}

// AuthorProfile 作者主页信息
type AuthorProfile struct {
	ID            int64  `json:"id"`
	UUID          string `json:"uuid"`
	Username      string `json:"username"`
	FullName      string `json:"full_name,omitempty"`
	Bio           string `json:"bio,omitempty"`
	AvatarURL     string `json:"avatar_url"`
	Website       string `json:"website,omitempty"`
	TwitterHandle string `json:"twitter_handle,omitempty"`
	StoryCount    int64            `json:"story_count"`
	FollowerCount int64            `json:"follower_count"`
	IsFollowing   bool             `json:"is_following"`
	TopStories    []*StoryListItem `json:"top_stories"`
	CreatedAt     string           `json:"created_at"`
}
