package server

import (
	"encoding/xml"
	"fmt"
	"net/http"
	"strings"

	"github.com/greenaire/site/internal/ui/catalog"
	"github.com/greenaire/site/logging"
)

type urlSet struct {
	XMLName xml.Name   `xml:"urlset"`
	Xmlns   string     `xml:"xmlns,attr"`
	URLs    []urlEntry `xml:"url"`
}

type urlEntry struct {
	Loc        string `xml:"loc"`
	ChangeFreq string `xml:"changefreq,omitempty"`
	Priority   string `xml:"priority,omitempty"`
}

func (s *server) handleRobots(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Cache-Control", "public, max-age=300")
	fmt.Fprintln(w, "User-agent: *")
	fmt.Fprintln(w, "Allow: /")
	fmt.Fprintf(w, "Sitemap: %s\n", s.absoluteURL(r, "/sitemap.xml"))
}

func (s *server) handleSitemap(w http.ResponseWriter, r *http.Request) {
	var entries []urlEntry
	for _, route := range catalog.Routes() {
		entry := urlEntry{Loc: s.absoluteURL(r, route), ChangeFreq: "monthly", Priority: "0.6"}
		if route == "/" {
			entry.ChangeFreq = "weekly"
			entry.Priority = "1.0"
		}
		entries = append(entries, entry)
	}

	smap := urlSet{
		Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs:  entries,
	}

	w.Header().Set("Content-Type", "application/xml; charset=utf-8")
	w.Header().Set("Cache-Control", "public, max-age=300")
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(smap); err != nil {
		s.logger.Error(logging.CategoryHTTP, "encode sitemap", err, nil)
	}
}

func (s *server) absoluteURL(r *http.Request, path string) string {
	clean := strings.TrimSpace(path)
	if clean == "" {
		clean = "/"
	}
	if !strings.HasPrefix(clean, "/") {
		clean = "/" + clean
	}
	scheme := "https"
	if r != nil {
		if proto := strings.ToLower(strings.TrimSpace(r.Header.Get("X-Forwarded-Proto"))); proto != "" {
			scheme = proto
		} else if r.TLS == nil {
			scheme = "http"
		}
		if host := strings.TrimSpace(r.Host); host != "" {
			return fmt.Sprintf("%s://%s%s", scheme, host, clean)
		}
	}
	host := strings.TrimSpace(s.primaryHost)
	if host == "" {
		host = "localhost"
	}
	return fmt.Sprintf("%s://%s%s", scheme, host, clean)
}
