package render

import (
	"net/url"
	"regexp"
	"strings"
)

var youtubeIDPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{11}$`)

// YoutubeID 从各种 YouTube 链接形式中提取 11 位视频 ID，失败返回空串
func YoutubeID(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}

	// 允许直接传视频 ID
	if youtubeIDPattern.MatchString(raw) {
		return raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return ""
	}

	host := strings.TrimPrefix(u.Hostname(), "www.")
	switch host {
	case "youtu.be":
		// https://youtu.be/<id>
		id := strings.Trim(u.Path, "/")
		if youtubeIDPattern.MatchString(id) {
			return id
		}
	case "youtube.com", "m.youtube.com":
		// https://www.youtube.com/watch?v=<id>
		if id := u.Query().Get("v"); youtubeIDPattern.MatchString(id) {
			return id
		}
		// https://www.youtube.com/embed/<id> 或 /shorts/<id>
		parts := strings.Split(strings.Trim(u.Path, "/"), "/")
		if len(parts) == 2 && (parts[0] == "embed" || parts[0] == "shorts") {
			if youtubeIDPattern.MatchString(parts[1]) {
				return parts[1]
			}
		}
	}
	return ""
}

// YoutubeEmbedURL 生成嵌入播放地址
func YoutubeEmbedURL(videoID string) string {
	if videoID == "" {
		return ""
	}
	return "https://www.youtube.com/embed/" + videoID
}
