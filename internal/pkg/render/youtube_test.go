package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestYoutubeID(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"裸视频 ID", "dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"短链", "https://youtu.be/dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"标准 watch 链接", "https://www.youtube.com/watch?v=dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"不带 www", "https://youtube.com/watch?v=dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"移动端域名", "https://m.youtube.com/watch?v=dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"watch 带其他参数", "https://www.youtube.com/watch?v=dQw4w9WgXcQ&t=42s", "dQw4w9WgXcQ"},
		{"embed 链接", "https://www.youtube.com/embed/dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"shorts 链接", "https://www.youtube.com/shorts/dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"前后空白", "  https://youtu.be/dQw4w9WgXcQ  ", "dQw4w9WgXcQ"},
		{"空串", "", ""},
		{"其他站点", "https://vimeo.com/12345678", ""},
		{"ID 长度不对", "https://youtu.be/short", ""},
		{"watch 缺少 v 参数", "https://www.youtube.com/watch?list=PLabc", ""},
		{"乱文本", "not a url at all", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, YoutubeID(tt.input))
		})
	}
}

func TestYoutubeEmbedURL(t *testing.T) {
	assert.Equal(t, "https://www.youtube.com/embed/dQw4w9WgXcQ", YoutubeEmbedURL("dQw4w9WgXcQ"))
	assert.Empty(t, YoutubeEmbedURL(""))
}
