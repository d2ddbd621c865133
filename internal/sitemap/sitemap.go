// 包 sitemap：生成站点地图（静态页面与每个公园的详情页）
package sitemap

import (
	"encoding/xml"
	"fmt"
	"io"
	"strings"
	"time"

	"parks-api/internal/park"
	"parks-api/internal/slug"
)

const (
	DefaultBaseURL = "https://wgfi.lucamack.at"
	namespace      = "http://www.sitemaps.org/schemas/sitemap/0.9"
)

// URL：单个条目
type URL struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod"`
	ChangeFreq string `xml:"changefreq"`
	Priority   string `xml:"priority"`
}

// URLSet：sitemap 根元素
type URLSet struct {
	XMLName xml.Name `xml:"urlset"`
	Xmlns   string   `xml:"xmlns,attr"`
	URLs    []URL    `xml:"url"`
}

type page struct {
	path       string
	priority   string
	changeFreq string
}

var staticPages = []page{
	{"/", "1.0", "daily"},
	{"/index", "0.9", "daily"},
	{"/map", "0.8", "weekly"},
	{"/statistics", "0.7", "weekly"},
	{"/favorites", "0.6", "monthly"},
	{"/idea", "0.5", "monthly"},
}

// Build：静态页在前，公园详情页按输入顺序，同名 slug 只保留第一次
func Build(baseURL string, parks []park.Park, now time.Time) URLSet {
	base := strings.TrimRight(baseURL, "/")
	if base == "" {
		base = DefaultBaseURL
	}
	lastmod := now.UTC().Format(time.RFC3339)
	set := URLSet{Xmlns: namespace, URLs: make([]URL, 0, len(staticPages)+len(parks))}
	for _, p := range staticPages {
		set.URLs = append(set.URLs, URL{Loc: base + p.path, LastMod: lastmod, ChangeFreq: p.changeFreq, Priority: p.priority})
	}
	seen := make(map[string]struct{}, len(parks))
	for _, p := range parks {
		s := slug.Slugify(p.Name)
		if s == "" {
			continue
		}
		if _, dup := seen[s]; dup {
			continue
		}
		seen[s] = struct{}{}
		set.URLs = append(set.URLs, URL{Loc: base + "/index/" + s, LastMod: lastmod, ChangeFreq: "monthly", Priority: "0.8"})
	}
	return set
}

// Write：带 XML 声明的缩进输出
func Write(w io.Writer, set URLSet) error {
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(set); err != nil {
		return fmt.Errorf("encode sitemap: %w", err)
	}
	_, err := io.WriteString(w, "\n")
	return err
}
