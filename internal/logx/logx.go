// 包 logx 是对标准库 slog 的薄封装：
// - 支持级别/格式/语言/颜色配置
// - 提供 pretty 中文输出（[调试]/[信息]/[警告]/[错误]）
// - 通过 Debugf/Infof/Warnf/Errorf 暴露，便于将来替换底层实现（DIP）
// 日志一律写标准错误流；标准输出只留给最终的成功行。
package logx

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
	"time"
)

// silenceLevel 高于一切常规等级，用于 LOG_LEVEL=none。
const silenceLevel slog.Level = 100

// Init 根据 level/format/locale/colorMode 初始化全局日志器。
// 采用 slog 默认 Handler（json/text）或内置 pretty Handler（中文美化）。
func Init(level, format, locale, colorMode string) {
	lv := parseLevel(level)
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json":
		slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: lv})))
	case "text":
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lv})))
	default: // pretty
		slog.SetDefault(slog.New(newPrettyHandler(os.Stderr, lv, locale, colorMode)))
	}
}

// parseLevel 将字符串级别解析为 slog.Level。
func parseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	case "none", "silent", "off":
		return silenceLevel
	default: // info 或留空
		return slog.LevelInfo
	}
}

// 便捷函数：格式化并按级别输出
func Debugf(format string, v ...any) { slog.Debug(fmt.Sprintf(format, v...)) }
func Infof(format string, v ...any)  { slog.Info(fmt.Sprintf(format, v...)) }
func Warnf(format string, v ...any)  { slog.Warn(fmt.Sprintf(format, v...)) }
func Errorf(format string, v ...any) { slog.Error(fmt.Sprintf(format, v...)) }

// prettyHandler：最小可用的中文美化输出（可选彩色），仅用于人读；支持中英文标签。
type prettyHandler struct {
	w     io.Writer
	min   slog.Level
	zh    bool
	color bool
	mu    *sync.Mutex
	attrs []slog.Attr
}

func newPrettyHandler(w io.Writer, min slog.Level, locale, colorMode string) slog.Handler {
	return &prettyHandler{
		w:     w,
		min:   min,
		zh:    locale == "" || strings.HasPrefix(strings.ToLower(locale), "zh"),
		color: shouldColor(w, colorMode),
		mu:    &sync.Mutex{},
	}
}

// Enabled 根据配置的最低级别判定是否输出。
func (h *prettyHandler) Enabled(_ context.Context, l slog.Level) bool {
	return h.min < silenceLevel && l >= h.min
}

// Handle 格式化输出：时间 + 等级 + 消息 + 扁平化属性
func (h *prettyHandler) Handle(_ context.Context, r slog.Record) error {
	ts := r.Time
	if ts.IsZero() {
		ts = time.Now()
	}
	var buf bytes.Buffer
	buf.WriteString(ts.Format("2006-01-02 15:04:05"))
	buf.WriteByte(' ')
	label := h.label(r.Level)
	if h.color {
		label = colorize(label, r.Level)
	}
	buf.WriteString(label)
	buf.WriteByte(' ')
	buf.WriteString(r.Message)
	for _, a := range h.attrs {
		fmt.Fprintf(&buf, " %s=%s", a.Key, a.Value.String())
	}
	r.Attrs(func(a slog.Attr) bool {
		fmt.Fprintf(&buf, " %s=%s", a.Key, a.Value.String())
		return true
	})
	buf.WriteByte('\n')
	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := h.w.Write(buf.Bytes())
	return err
}

// WithAttrs 附加属性（本项目未大量使用）。
func (h *prettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	cp := *h
	cp.attrs = append(append([]slog.Attr{}, h.attrs...), attrs...)
	return &cp
}

// WithGroup 分组对人读输出意义不大，直接忽略组名。
func (h *prettyHandler) WithGroup(string) slog.Handler { return h }

// label 根据语言返回等级标签。
func (h *prettyHandler) label(l slog.Level) string {
	if h.zh {
		switch l {
		case slog.LevelDebug:
			return "[调试]"
		case slog.LevelInfo:
			return "[信息]"
		case slog.LevelWarn:
			return "[警告]"
		case slog.LevelError:
			return "[错误]"
		}
		return fmt.Sprintf("[L%d]", l)
	}
	switch l {
	case slog.LevelDebug:
		return "[DEBUG]"
	case slog.LevelInfo:
		return "[INFO]"
	case slog.LevelWarn:
		return "[WARN]"
	case slog.LevelError:
		return "[ERROR]"
	}
	return fmt.Sprintf("[L%d]", l)
}

// shouldColor 判断是否启用颜色：遵循 LOG_COLOR 与 NO_COLOR。
func shouldColor(w io.Writer, mode string) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "always":
		return true
	case "auto", "":
		// 简单的 TTY 检测：仅在字符设备上启用彩色输出
		if f, ok := w.(*os.File); ok {
			if fi, err := f.Stat(); err == nil {
				return (fi.Mode() & os.ModeCharDevice) != 0
			}
		}
		return false
	default: // never 及未知取值
		return false
	}
}

// colorize 按等级包裹 ANSI 颜色码。
func colorize(s string, l slog.Level) string {
	code := "0"
	switch l {
	case slog.LevelDebug:
		code = "90" // bright black
	case slog.LevelInfo:
		code = "36" // cyan
	case slog.LevelWarn:
		code = "33" // yellow
	case slog.LevelError:
		code = "31" // red
	}
	return "\x1b[" + code + "m" + s + "\x1b[0m"
}
