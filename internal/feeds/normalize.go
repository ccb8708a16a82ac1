package feeds

import (
	"crypto/sha1"
	"encoding/hex"
	"strings"
	"time"

	"medonet-rss/internal/model"

	"github.com/mmcdole/gofeed"
)

// Normalize 把一条原始订阅条目转换为规范条目：
// - guid：原生标识 → 链接 → 标题+链接的 SHA-1
// - 时间：published → updated → 当前运行时间，统一转换到目标时区
// - 图片：enclosure → media:content → media:thumbnail → 兜底常量
// - 描述：description → summary 等价字段
// 文本字段去除首尾空白；缺标题不报错，由序列化层渲染占位符。
func Normalize(it *gofeed.Item, label string, now time.Time, loc *time.Location, fallbackImage string) model.Item {
	return model.Item{
		GUID:        ResolveGUID(it),
		Title:       strings.TrimSpace(it.Title),
		Link:        strings.TrimSpace(it.Link),
		Description: resolveDescription(it),
		PubDate:     resolveTime(it, now, loc),
		Label:       label,
		Image:       resolveImage(it, fallbackImage),
	}
}

// ResolveGUID 按兜底链解析条目标识。
// gofeed 已把 RSS guid 与 Atom id 合并到 Item.GUID；两者皆缺时退回链接，
// 再缺则取 "标题-链接" 的 SHA-1，保证每条都有确定性标识。
func ResolveGUID(it *gofeed.Item) string {
	if g := strings.TrimSpace(it.GUID); g != "" {
		return g
	}
	if l := strings.TrimSpace(it.Link); l != "" {
		return l
	}
	sum := sha1.Sum([]byte(it.Title + "-" + it.Link))
	return hex.EncodeToString(sum[:])
}

// resolveTime 取发布时间，缺省时退回更新时间，再缺退回运行时间。
// 无时间戳条目因此总是"新鲜"的：必过保留窗口且排序靠前。
func resolveTime(it *gofeed.Item, now time.Time, loc *time.Location) time.Time {
	if it.PublishedParsed != nil {
		return it.PublishedParsed.In(loc)
	}
	if it.UpdatedParsed != nil {
		return it.UpdatedParsed.In(loc)
	}
	return now.In(loc)
}

// resolveDescription 优先 description，缺省时取 summary 等价字段。
// 不做 HTML 清洗，原样透传。
func resolveDescription(it *gofeed.Item) string {
	if d := strings.TrimSpace(it.Description); d != "" {
		return d
	}
	return strings.TrimSpace(it.Content)
}

// resolveImage 按优先级取图：enclosure → media:content → media:thumbnail。
// 候选缺失或不以 http 开头（相对路径/空串）一律替换为兜底常量。
func resolveImage(it *gofeed.Item, fallback string) string {
	url := ""
	switch {
	case len(it.Enclosures) > 0:
		url = it.Enclosures[0].URL
	case hasMedia(it, "content"):
		url = mediaAttr(it, "content")
	case hasMedia(it, "thumbnail"):
		url = mediaAttr(it, "thumbnail")
	}
	if url == "" || !strings.HasPrefix(url, "http") {
		return fallback
	}
	return url
}

// hasMedia 判断 media 扩展（mrss）是否含指定元素。
func hasMedia(it *gofeed.Item, name string) bool {
	return it.Extensions != nil && len(it.Extensions["media"][name]) > 0
}

// mediaAttr 取 media 扩展中第一个指定元素的 url 属性。
func mediaAttr(it *gofeed.Item, name string) string {
	if !hasMedia(it, name) {
		return ""
	}
	return it.Extensions["media"][name][0].Attrs["url"]
}
