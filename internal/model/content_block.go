package model

// 内容块类型
const (
	BlockTypeParagraph  = "paragraph"
	BlockTypeImage      = "image"
	BlockTypeBlockquote = "blockquote"
	BlockTypeYoutube    = "youtube"
	BlockTypeCode       = "code"
)

// CodeLanguages 代码块支持的语言（空串为纯文本）
var CodeLanguages = []string{
	"", "python", "javascript", "java", "cpp", "c", "html", "css", "sql",
	"bash", "json", "xml", "yaml", "markdown", "php", "ruby", "go", "rust",
	"swift", "kotlin", "typescript", "dart",
}

type ContentBlock struct {
	ID           int64  `gorm:"primaryKey" json:"id"`
	StoryID      int64  `gorm:"not null;index" json:"story_id"`
	BlockType    string `gorm:"size:20;not null" json:"block_type"`
	Position     int    `gorm:"not null" json:"position"`
	Text         string `gorm:"type:text" json:"text,omitempty"`
	ImageURL     string `gorm:"size:500" json:"image_url,omitempty"`
	VideoURL     string `gorm:"size:200" json:"video_url,omitempty"`
	CodeLanguage string `gorm:"size:20" json:"code_language,omitempty"`
}

func (ContentBlock) TableName() string {
	return "content_blocks"
}

// ValidBlockType 检查内容块类型是否合法
func ValidBlockType(t string) bool {
	switch t {
	case BlockTypeParagraph, BlockTypeImage, BlockTypeBlockquote, BlockTypeYoutube, BlockTypeCode:
		return true
	}
	return false
}

// ValidCodeLanguage 检查代码语言是否在白名单内
func ValidCodeLanguage(lang string) bool {
	for _, l := range CodeLanguages {
		if l == lang {
			return true
		}
	}
	return false
}
