package dto

// ContentBlockInput 内容块入参
type ContentBlockInput struct {
	BlockType    string `json:"block_type" binding:"required"`
	Text         string `json:"text,omitempty"`
	ImageURL     string `json:"image_url,omitempty"`
	VideoURL     string `json:"video_url,omitempty"`
	CodeLanguage string `json:"code_language,omitempty"`
}

// CreateStoryRequest 创建文章请求
type CreateStoryRequest struct {
	Title         string               `json:"title" binding:"required,min=1,max=200"`
	Subtitle      string               `json:"subtitle,omitempty" binding:"omitempty,max=200"`
	CoverImageURL string               `json:"cover_image_url,omitempty" binding:"omitempty,max=500"`
	CategoryID    *int64               `json:"category_id,omitempty"`
	SubCategoryID *int64               `json:"sub_category_id,omitempty"`
	Tags          []string             `json:"tags,omitempty" binding:"omitempty,max=10,dive,min=1,max=50"`
	Blocks        []*ContentBlockInput `json:"blocks" binding:"required,min=1,dive"`
}

// UpdateStoryRequest 更新文章请求（整体替换内容块）
type UpdateStoryRequest struct {
	Title         *string              `json:"title,omitempty" binding:"omitempty,min=1,max=200"`
	Subtitle      *string              `json:"subtitle,omitempty" binding:"omitempty,max=200"`
	CoverImageURL *string              `json:"cover_image_url,omitempty" binding:"omitempty,max=500"`
	CategoryID    *int64               `json:"category_id,omitempty"`
	SubCategoryID *int64               `json:"sub_category_id,omitempty"`
	Tags          []string             `json:"tags,omitempty" binding:"omitempty,max=10,dive,min=1,max=50"`
	Blocks        []*ContentBlockInput `json:"blocks,omitempty" binding:"omitempty,min=1,dive"`
}

// ContentBlockItem 内容块展示项
type ContentBlockItem struct {
	BlockType    string `json:"block_type"`
	Position     int    `json:"position"`
	Text         string `json:"text,omitempty"`
	HTML         string `json:"html,omitempty"`
	ImageURL     string `json:"image_url,omitempty"`
	VideoURL     string `json:"video_url,omitempty"`
	VideoID      string `json:"video_id,omitempty"`
	CodeLanguage string `json:"code_language,omitempty"`
}

// StoryListItem 文章列表项
type StoryListItem struct {
	ID            int64       `json:"id"`
	UUID          string      `json:"uuid"`
	Title         string      `json:"title"`
	Subtitle      string      `json:"subtitle,omitempty"`
	CoverImageURL string      `json:"cover_image_url,omitempty"`
	Author        *AuthorInfo `json:"author"`
	Category      string      `json:"category,omitempty"`
	Tags          []string    `json:"tags,omitempty"`
	LikeCount     int         `json:"like_count"`
	CommentCount  int         `json:"comment_count"`
	ViewCount     int         `json:"view_count"`
	CreatedAt     string      `json:"created_at"`
}

// StoryDetail 文章详情
type StoryDetail struct {
	ID             int64               `json:"id"`
	UUID           string              `json:"uuid"`
	Title          string              `json:"title"`
	Subtitle       string              `json:"subtitle,omitempty"`
	CoverImageURL  string              `json:"cover_image_url,omitempty"`
	ApprovalStatus string              `json:"approval_status"`
	Author         *AuthorInfo         `json:"author"`
	Category       string              `json:"category,omitempty"`
	SubCategory    string              `json:"sub_category,omitempty"`
	Tags           []string            `json:"tags,omitempty"`
	Blocks         []*ContentBlockItem `json:"blocks"`
	LikeCount      int                 `json:"like_count"`
	CommentCount   int                 `json:"comment_count"`
	ViewCount      int                 `json:"view_count"`
	IsLiked        bool                `json:"is_liked"`
	IsSaved        bool                `json:"is_saved"`
	CreatedAt      string              `json:"created_at"`
	UpdatedAt      string              `json:"updated_at"`
}

// StoryListResponse 文章分页列表响应
type StoryListResponse struct {
	Stories  []*StoryListItem `json:"stories"`
	Total    int64            `json:"total"`
	Page     int              `json:"page"`
	PageSize int              `json:"page_size"`
}

// StoryQuery 文章列表查询参数
type StoryQuery struct {
	Page       int    `form:"page,default=1" binding:"omitempty,min=1"`
	PageSize   int    `form:"page_size" binding:"omitempty,min=1,max=50"`
	CategoryID int64  `form:"category_id" binding:"omitempty,min=1"`
	Tag        string `form:"tag" binding:"omitempty,max=50"`
	Search     string `form:"search" binding:"omitempty,max=100"`
	AuthorID   int64  `form:"author_id" binding:"omitempty,min=1"`
}
