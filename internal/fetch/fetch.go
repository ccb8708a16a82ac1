// 包 fetch 封装 HTTP 客户端（UA/超时），用于抓取上游订阅。
// 本项目不做重试与退避：单个订阅抓取失败会让整轮运行失败，
// 在输出写入之前终止，避免产生半成品文件。
package fetch

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"time"
)

// Client 为带固定 UA 的 HTTP 客户端。
type Client struct {
	http *http.Client
	ua   string
}

// Options 为客户端构造参数。
type Options struct {
	UserAgent string
	Timeout   time.Duration
}

// New 创建客户端，配置基础超时与 User-Agent。
func New(opts Options) (*Client, error) {
	transport := &http.Transport{
		Proxy:                 http.ProxyFromEnvironment,
		DialContext:           (&net.Dialer{Timeout: 10 * time.Second}).DialContext,
		TLSHandshakeTimeout:   10 * time.Second,
		ResponseHeaderTimeout: 15 * time.Second,
		ExpectContinueTimeout: 1 * time.Second,
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 20 * time.Second
	}
	ua := opts.UserAgent
	if ua == "" {
		ua = "medonetRSS/1.0"
	}
	return &Client{
		http: &http.Client{Transport: transport, Timeout: opts.Timeout},
		ua:   ua,
	}, nil
}

// Get 发起单次 GET 请求，仅 2xx 视为成功；不重试。
func (c *Client) Get(ctx context.Context, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("new request: %w", err)
	}
	req.Header.Set("User-Agent", c.ua)
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		if resp.Body != nil {
			resp.Body.Close()
		}
		return nil, fmt.Errorf("http status: %s", resp.Status)
	}
	return resp, nil
}
