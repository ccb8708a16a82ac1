package aggregate

import "medonet-rss/internal/model"

// Collector 在单次运行内按 guid 去重并保持遇见顺序。
// 跨源去重规则：同一 guid 以先遇见者为准（同一篇文章可能出现在多个栏目订阅中）。
type Collector struct {
	seen  map[string]struct{}
	items []model.Item
}

func NewCollector() *Collector {
	return &Collector{seen: make(map[string]struct{})}
}

// Seen 判断 guid 在本轮运行中是否已收录。
func (c *Collector) Seen(guid string) bool {
	_, ok := c.seen[guid]
	return ok
}

// Add 收录条目；guid 已存在时忽略并返回 false。
func (c *Collector) Add(it model.Item) bool {
	if c.Seen(it.GUID) {
		return false
	}
	c.seen[it.GUID] = struct{}{}
	c.items = append(c.items, it)
	return true
}

// Items 返回按遇见顺序收录的全部条目。
func (c *Collector) Items() []model.Item {
	return c.items
}
