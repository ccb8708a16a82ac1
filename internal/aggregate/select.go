package aggregate

import (
	"sort"
	"time"

	"medonet-rss/internal/model"
)

// Select 应用保留窗口并排序：
// - cutoff = now - days（按整 24 小时计），pubDate >= cutoff 的条目保留（含边界）
// - 按发布时间倒序；时间相同保持遇见顺序（稳定排序，无次级键）
func Select(items []model.Item, now time.Time, days int) []model.Item {
	cutoff := now.Add(-time.Duration(days) * 24 * time.Hour)
	kept := make([]model.Item, 0, len(items))
	for _, it := range items {
		if !it.PubDate.Before(cutoff) {
			kept = append(kept, it)
		}
	}
	sort.SliceStable(kept, func(i, j int) bool {
		return kept[i].PubDate.After(kept[j].PubDate)
	})
	return kept
}
