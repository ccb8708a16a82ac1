// 包 aggregate 负责主流程编排：
// - 按配置顺序逐个抓取订阅源并归一化条目
// - 跨源按 guid 去重（先遇见者为准）
// - 应用保留窗口并按发布时间倒序输出
package aggregate

import (
	"context"
	"fmt"
	"time"

	"medonet-rss/internal/config"
	"medonet-rss/internal/feeds"
	"medonet-rss/internal/logx"
	"medonet-rss/internal/model"
)

// Runner 聚合执行器，持有配置/读取器/目标时区。
type Runner struct {
	cfg    *config.Config
	reader *feeds.Reader
	loc    *time.Location
}

// New 创建 Runner。
func New(cfg *config.Config, rd *feeds.Reader, loc *time.Location) *Runner {
	return &Runner{cfg: cfg, reader: rd, loc: loc}
}

// Run 执行一轮聚合：逐源抓取→归一化→去重，返回遇见顺序的条目与统计。
// 全程串行；单源抓取失败视为致命并返回 error（此时不应写任何输出）。
// 畸形订阅仅告警：已解出的条目（可能为空）照常使用。
func (r *Runner) Run(ctx context.Context, now time.Time) ([]model.Item, model.Stats, error) {
	col := NewCollector()
	st := model.Stats{SourcesTotal: len(r.cfg.Feeds), UpdatedAt: now}
	for _, src := range r.cfg.Feeds {
		parsed, err := r.reader.Fetch(ctx, src.URL)
		if err != nil {
			return nil, st, fmt.Errorf("fetch feed %s: %w", src.URL, err)
		}
		if parsed.Malformed {
			st.SourcesMalformed++
			logx.Warnf("订阅解析异常：%s", src.URL)
		}
		added := 0
		for _, e := range parsed.Items {
			st.EntriesSeen++
			guid := feeds.ResolveGUID(e)
			if col.Seen(guid) {
				st.EntriesDuplicate++
				continue
			}
			col.Add(feeds.Normalize(e, src.Label, now, r.loc, r.cfg.FallbackImage))
			added++
		}
		logx.Infof("[%s] 条目归一化完成：%d（重复跳过 %d）", src.Label, added, len(parsed.Items)-added)
	}
	return col.Items(), st, nil
}
