package dto

// CreateCommentRequest 创建评论请求
type CreateCommentRequest struct {
	Body     string `json:"body" binding:"required,min=1,max=2000"`
	ParentID *int64 `json:"parent_id,omitempty"`
}

// CommentItem 评论项（含点赞状态与子回复）
type CommentItem struct {
	ID        int64          `json:"id"`
	User      *CommentUser   `json:"user"`
	Body      string         `json:"body"`
	ParentID  *int64         `json:"parent_id"`
	LikeCount int            `json:"like_count"`
	IsLiked   bool           `json:"is_liked"`
	Replies   []*CommentItem `json:"replies"`
	CreatedAt string         `json:"created_at"`
}

// CommentUser 评论用户信息
type CommentUser struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	AvatarURL string `json:"avatar_url"`
}

// ToggleResponse 点赞/收藏/关注开关结果
type ToggleResponse struct {
	Active bool `json:"active"`
	Count  int  `json:"count,omitempty"`
}
