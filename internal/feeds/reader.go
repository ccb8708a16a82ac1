// 包 feeds 负责订阅读取与条目归一化：
// - Reader：抓取并解析单个订阅源（gofeed），区分网络失败与文档畸形
// - Normalize：把原始条目转换为 model.Item（guid/时间/图片/描述兜底链）
package feeds

import (
	"context"
	"fmt"
	"time"

	"medonet-rss/internal/fetch"

	"github.com/mmcdole/gofeed"
)

// Parsed 为单个订阅源的解析结果。
// Malformed 表示文档无法通过解析；此时 Items 为空，由上层决定是否继续。
type Parsed struct {
	Malformed bool
	Items     []*gofeed.Item
}

// Reader 从订阅地址读取并解析条目。
type Reader struct {
	cl *fetch.Client
}

// NewReader 创建 Reader。
func NewReader(cl *fetch.Client) *Reader {
	return &Reader{cl: cl}
}

// Fetch 抓取并解析一个订阅源：
// - 网络/HTTP 层失败：返回 error（上层视为致命，终止整轮运行）
// - 文档畸形：返回 Malformed=true 且条目为空（上层告警后继续）
func (r *Reader) Fetch(ctx context.Context, feedURL string) (*Parsed, error) {
	reqCtx, cancel := context.WithTimeout(ctx, 25*time.Second)
	defer cancel()
	// gofeed 不直接接收自定义 http.Client，因此先用自定义客户端抓取后再交给 gofeed 解析
	resp, err := r.cl.Get(reqCtx, feedURL)
	if err != nil {
		return nil, fmt.Errorf("GET feed %s: %w", feedURL, err)
	}
	defer resp.Body.Close()
	feed, err := gofeed.NewParser().Parse(resp.Body)
	if err != nil {
		return &Parsed{Malformed: true}, nil
	}
	return &Parsed{Items: feed.Items}, nil
}
