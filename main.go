// 命令行入口：
// - 解析 flags 与 settings.yaml
// - 初始化日志与 HTTP 客户端
// - 执行 抓取→归一化→去重→过滤→排序→序列化 流水线
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"
	"time"

	"medonet-rss/internal/aggregate"
	"medonet-rss/internal/config"
	"medonet-rss/internal/feeds"
	"medonet-rss/internal/fetch"
	"medonet-rss/internal/logx"
	"medonet-rss/internal/model"
	"medonet-rss/internal/rss"
)

func main() {
	var (
		configPath = flag.String("config", "settings.yaml", "path to settings.yaml")
		outPath    = flag.String("out", "", "override OUTPUT_FILE from settings")
	)
	flag.Parse()

	// 1) 加载配置；文件缺失时使用内置默认值（与上游常量一致）
	cfg, err := config.Load(*configPath)
	if errors.Is(err, fs.ErrNotExist) {
		log.Printf("settings %s not found, using defaults", *configPath)
		cfg, err = config.Default(), nil
	}
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if *outPath != "" {
		cfg.OutputFile = *outPath
	}

	// 2) 初始化日志：级别/格式/语言/颜色
	logx.Init(cfg.LogLevel, cfg.LogFormat, cfg.LogLocale, cfg.LogColor)

	loc, err := cfg.Location()
	if err != nil {
		log.Fatalf("timezone: %v", err)
	}

	// 3) 初始化 HTTP 客户端（固定 UA，无重试）
	cl, err := fetch.New(fetch.Options{UserAgent: cfg.UserAgent, Timeout: 25 * time.Second})
	if err != nil {
		log.Fatalf("http client: %v", err)
	}

	// 4) 运行聚合流程；"now" 只取一次，贯穿时间兜底与保留窗口
	ctx := context.Background()
	now := time.Now().In(loc)
	run := aggregate.New(cfg, feeds.NewReader(cl), loc)
	logx.Infof("开始聚合：订阅源=%d 保留窗口=%d天", len(cfg.Feeds), cfg.RetentionDays)
	items, st, err := run.Run(ctx, now)
	if err != nil {
		logx.Errorf("运行失败：%v", err)
		os.Exit(1)
	}
	kept := aggregate.Select(items, now, cfg.RetentionDays)
	logx.Infof("条目共 %d（重复 %d，畸形源 %d），窗口内保留 %d",
		st.EntriesSeen, st.EntriesDuplicate, st.SourcesMalformed, len(kept))

	// 5) 全部处理成功后才写输出（整体覆盖）
	meta := model.ChannelMeta{
		Title:       cfg.Channel.Title,
		Link:        cfg.Channel.Link,
		Description: cfg.Channel.Description,
		Language:    cfg.Channel.Language,
	}
	if err := rss.WriteFile(cfg.OutputFile, meta, kept, time.Now().In(loc)); err != nil {
		logx.Errorf("写入输出失败：%v", err)
		os.Exit(1)
	}
	fmt.Printf("OK: zapisano %s (pozycje: %d)\n", cfg.OutputFile, len(kept))
}
