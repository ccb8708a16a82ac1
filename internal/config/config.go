// 包 config 负责加载与校验应用配置（settings.yaml），
// 对外提供结构体 Config 及默认值/合法性校验。
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// 仅保留当前需要的字段，避免过度设计（KISS/YAGNI）。
type Config struct {
	Feeds         []Feed  `yaml:"FEEDS"`
	RetentionDays int     `yaml:"RETENTION_DAYS"`
	FallbackImage string  `yaml:"FALLBACK_IMAGE"`
	OutputFile    string  `yaml:"OUTPUT_FILE"`
	Timezone      string  `yaml:"TIMEZONE"`
	UserAgent     string  `yaml:"USER_AGENT"`
	Channel       Channel `yaml:"CHANNEL"`
	LogLevel      string  `yaml:"LOG_LEVEL"`
	LogFormat     string  `yaml:"LOG_FORMAT"` // text|json|pretty
	LogLocale     string  `yaml:"LOG_LOCALE"` // zh-CN|en
	LogColor      string  `yaml:"LOG_COLOR"`  // auto|always|never
}

// Feed 为一个上游订阅源：URL + 栏目标签，按配置顺序抓取。
type Feed struct {
	URL   string `yaml:"url"`
	Label string `yaml:"label"`
}

// Channel 为输出频道的元信息（写入 <channel>）。
type Channel struct {
	Title       string `yaml:"title"`
	Link        string `yaml:"link"`
	Description string `yaml:"description"`
	Language    string `yaml:"language"`
}

// Default 返回内置默认配置（Medonet 四个栏目，14 天保留窗口）。
func Default() *Config {
	c := &Config{}
	_ = c.Validate()
	return c
}

func Load(path string) (*Config, error) {
	// Load 从文件读取 YAML 并反序列化为 Config，同时进行基础校验与默认值填充。
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open config %s: %w", path, err)
	}
	defer f.Close()
	b, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, fmt.Errorf("unmarshal config %s: %w", path, err)
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return &c, nil
}

func (c *Config) Validate() error {
	// Validate 负责合法性检查与默认值设置，避免在业务层分散判空逻辑。
	if c.RetentionDays < 0 {
		return errors.New("RETENTION_DAYS must be >= 0")
	}
	if c.RetentionDays == 0 {
		c.RetentionDays = 14
	}
	for i, f := range c.Feeds {
		if f.URL == "" {
			return fmt.Errorf("FEEDS[%d]: url required", i)
		}
	}
	if len(c.Feeds) == 0 {
		c.Feeds = []Feed{
			{URL: "https://www.medonet.pl/.feed", Label: "ogólny"},
			{URL: "https://dziecko.medonet.pl/.feed", Label: "dziecko"},
			{URL: "https://uroda.medonet.pl/.feed", Label: "uroda"},
			{URL: "https://zywienie.medonet.pl/.feed", Label: "żywienie"},
		}
	}
	if c.FallbackImage == "" {
		c.FallbackImage = "https://sm-cdn.eu/y37kjgxdy0ufdyjt.jpg"
	}
	if c.OutputFile == "" {
		c.OutputFile = "docs/medonet.xml"
	}
	if c.Timezone == "" {
		c.Timezone = "Europe/Warsaw"
	}
	if _, err := time.LoadLocation(c.Timezone); err != nil {
		return fmt.Errorf("unsupported TIMEZONE %s: %w", c.Timezone, err)
	}
	if c.UserAgent == "" {
		c.UserAgent = "medonetRSS/1.0"
	}
	if c.Channel.Title == "" {
		c.Channel.Title = "medonetRSS – agregat (ogólny, dziecko, uroda, żywienie)"
	}
	if c.Channel.Link == "" {
		c.Channel.Link = "https://www.medonet.pl/"
	}
	if c.Channel.Description == "" {
		c.Channel.Description = "Zbiorczy RSS z wybranych sekcji Medonetu. Retencja: 14 dni."
	}
	if c.Channel.Language == "" {
		c.Channel.Language = "pl-PL"
	}
	if c.LogFormat == "" {
		c.LogFormat = "pretty"
	}
	if c.LogLocale == "" {
		c.LogLocale = "zh-CN"
	}
	if c.LogColor == "" {
		c.LogColor = "auto"
	}
	return nil
}

// Location 解析配置的目标时区（Validate 已保证可加载）。
func (c *Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("load timezone %s: %w", c.Timezone, err)
	}
	return loc, nil
}
