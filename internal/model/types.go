// 包 model 定义聚合输出的数据模型（条目/频道/统计）。
package model

import "time"

// Item 为归一化后的订阅条目，GUID 在单次运行内唯一。
type Item struct {
	GUID        string    `json:"guid"`
	Title       string    `json:"title"`
	Link        string    `json:"link"`
	Description string    `json:"description"`
	PubDate     time.Time `json:"pub_date"`
	Label       string    `json:"label"`
	Image       string    `json:"image"`
}

// ChannelMeta 为输出频道的元信息。
type ChannelMeta struct {
	Title       string `json:"title"`
	Link        string `json:"link"`
	Description string `json:"description"`
	Language    string `json:"language"`
}

// Stats 为单次聚合的统计信息。
type Stats struct {
	SourcesTotal     int       `json:"sources_total"`
	SourcesMalformed int       `json:"sources_malformed"`
	EntriesSeen      int       `json:"entries_seen"`
	EntriesDuplicate int       `json:"entries_duplicate"`
	UpdatedAt        time.Time `json:"updated_at"`
}
