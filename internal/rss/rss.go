// 包 rss 负责把聚合结果序列化为 RSS 2.0 文档并整体写入输出文件。
// 声明行固定为 <?xml version="1.0" encoding="UTF-8"?>（大写、双引号），
// 下游消费端依赖这一精确文本，不能交给序列化库的默认行为。
package rss

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"medonet-rss/internal/model"
)

const (
	// 缺标题条目的渲染占位符
	placeholderTitle = "(bez tytułu)"
	mediaNS          = "http://search.yahoo.com/mrss/"
	enclosureType    = "image/jpeg"
)

// document 为 <rss> 根元素，声明 media（mrss）命名空间。
type document struct {
	XMLName xml.Name `xml:"rss"`
	Version string   `xml:"version,attr"`
	MediaNS string   `xml:"xmlns:media,attr"`
	Channel channel  `xml:"channel"`
}

type channel struct {
	Title         string `xml:"title"`
	Link          string `xml:"link"`
	Description   string `xml:"description"`
	Language      string `xml:"language"`
	LastBuildDate string `xml:"lastBuildDate"`
	Items         []item `xml:"item"`
}

// item 的图片引用写两份：经典 enclosure 与 media:content（提升消费端兼容性）。
type item struct {
	Title       string    `xml:"title"`
	Link        string    `xml:"link"`
	Description string    `xml:"description"`
	GUID        string    `xml:"guid"`
	PubDate     string    `xml:"pubDate"`
	Category    string    `xml:"category"`
	Enclosure   enclosure `xml:"enclosure"`
	Media       media     `xml:"media:content"`
}

type enclosure struct {
	URL    string `xml:"url,attr"`
	Length string `xml:"length,attr"`
	Type   string `xml:"type,attr"`
}

type media struct {
	URL    string `xml:"url,attr"`
	Medium string `xml:"medium,attr"`
}

// Render 生成完整文档字节：精确声明行 + 文档体 + 末尾换行。
// 相同输入（含 buildTime）产出逐字节一致。
func Render(meta model.ChannelMeta, items []model.Item, buildTime time.Time) ([]byte, error) {
	doc := document{
		Version: "2.0",
		MediaNS: mediaNS,
		Channel: channel{
			Title:         meta.Title,
			Link:          meta.Link,
			Description:   meta.Description,
			Language:      meta.Language,
			LastBuildDate: buildTime.Format(time.RFC1123Z),
			Items:         make([]item, 0, len(items)),
		},
	}
	for _, it := range items {
		title := it.Title
		if title == "" {
			title = placeholderTitle
		}
		doc.Channel.Items = append(doc.Channel.Items, item{
			Title:       title,
			Link:        it.Link,
			Description: it.Description,
			GUID:        it.GUID,
			PubDate:     it.PubDate.Format(time.RFC1123Z),
			Category:    it.Label,
			Enclosure:   enclosure{URL: it.Image, Length: "0", Type: enclosureType},
			Media:       media{URL: it.Image, Medium: "image"},
		})
	}
	body, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal rss: %w", err)
	}
	var buf bytes.Buffer
	buf.WriteString(xml.Header) // 恰好是要求的声明行 + 换行
	buf.Write(body)
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

// WriteFile 渲染并整体覆盖写入输出文件（父目录不存在时先创建）。
func WriteFile(path string, meta model.ChannelMeta, items []model.Item, buildTime time.Time) error {
	b, err := Render(meta, items, buildTime)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("mkdir %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
