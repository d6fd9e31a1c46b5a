package guide

import (
	"context"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/tkohara/gomi-navi/internal/fetch"
	"github.com/tkohara/gomi-navi/internal/gomi"
	"github.com/tkohara/gomi-navi/internal/logger"
	"golang.org/x/net/html"
)

const (
	// IndexTimeout bounds the guide index page request.
	IndexTimeout = 10 * time.Second
	// PageTimeout bounds each linked category page request.
	PageTimeout = 5 * time.Second
	// DefaultWorkers bounds the concurrent category-page fetches so the
	// crawl doesn't hammer the origin server.
	DefaultWorkers = 4
)

// contentContainers lists the ids that may hold the page's main content,
// in fallback order.
var contentContainers = []string{"#main", "#contents"}

// Crawler fetches the guide index and its linked category pages.
type Crawler struct {
	client  *fetch.Client
	cfg     Config
	mapper  *Mapper
	workers int
}

// NewCrawler creates a Crawler with the given HTTP client and crawl content.
func NewCrawler(client *fetch.Client, cfg Config) *Crawler {
	return &Crawler{
		client:  client,
		cfg:     cfg,
		mapper:  NewMapper(cfg.Mappings),
		workers: DefaultWorkers,
	}
}

// link is one qualifying anchor from the index page.
type link struct {
	Text string
	URL  string
}

// Crawl fetches the guide index at indexURL, follows every qualifying link,
// and returns one GuideRecord per successfully extracted page. Failures are
// fail-soft throughout: an unreachable index or missing content region
// yields an empty slice, and a single failing page never aborts the crawl
// of its siblings.
func (c *Crawler) Crawl(ctx context.Context, indexURL string) []gomi.GuideRecord {
	res := c.client.Get(ctx, indexURL, IndexTimeout)
	if !res.OK() {
		logger.Warn("guide index fetch failed", logger.Fields{
			"url":    indexURL,
			"reason": res.Reason(),
		})
		return nil
	}

	links := c.collectLinks(res.Body, indexURL)
	if len(links) == 0 {
		logger.Debug("guide index yielded no links", logger.Fields{"url": indexURL})
		return nil
	}

	// Fan out the page fetches with bounded concurrency. Each worker owns
	// one slot of the results slice, keeping output order deterministic
	// without locking.
	results := make([]*gomi.GuideRecord, len(links))
	sem := make(chan struct{}, c.workers)
	var wg sync.WaitGroup

	for i, l := range links {
		wg.Add(1)
		go func(i int, l link) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()
			results[i] = c.fetchPage(ctx, l)
		}(i, l)
	}
	wg.Wait()

	records := make([]gomi.GuideRecord, 0, len(links))
	for _, r := range results {
		if r != nil {
			records = append(records, *r)
		}
	}

	logger.Info("guide crawl complete", logger.Fields{
		"links":   len(links),
		"records": len(records),
	})
	return records
}

// collectLinks extracts the qualifying (text, url) anchor candidates from
// the index page, resolving relative hrefs against baseURL and deduplicating
// by the (text, url) pair so repeated links cost one fetch.
func (c *Crawler) collectLinks(body, baseURL string) []link {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(body))
	if err != nil {
		logger.Warn("guide index parse failed", logger.Fields{"error": err.Error()})
		return nil
	}

	region := contentRegion(doc)
	if region == nil {
		logger.Debug("guide content region missing", logger.Fields{"url": baseURL})
		return nil
	}

	base, err := url.Parse(baseURL)
	if err != nil {
		return nil
	}

	seen := make(map[string]bool)
	var links []link

	region.Find("a").Each(func(_ int, a *goquery.Selection) {
		href, ok := a.Attr("href")
		text := strings.TrimSpace(a.Text())
		if !ok || href == "" || text == "" {
			return
		}
		if !containsAny(text, c.cfg.Keywords) {
			return
		}

		ref, err := url.Parse(href)
		if err != nil {
			return
		}
		abs := base.ResolveReference(ref).String()

		key := text + "|" + abs
		if seen[key] {
			return
		}
		seen[key] = true
		links = append(links, link{Text: text, URL: abs})
	})

	return links
}

// fetchPage fetches one category page and builds its record. Returns nil if
// the page is unreachable or its content region is missing.
func (c *Crawler) fetchPage(ctx context.Context, l link) *gomi.GuideRecord {
	res := c.client.Get(ctx, l.URL, PageTimeout)
	if !res.OK() {
		logger.Debug("guide page fetch failed", logger.Fields{
			"url":    l.URL,
			"reason": res.Reason(),
		})
		return nil
	}

	details, ok := extractDetails(res.Body)
	if !ok {
		logger.Debug("guide page content missing", logger.Fields{"url": l.URL})
		return nil
	}

	return &gomi.GuideRecord{
		CategoryName: l.Text,
		CalendarName: c.mapper.Map(l.Text),
		Details:      details,
		URL:          l.URL,
	}
}

// extractDetails pulls the visible guidance text out of a category page:
// content region located by the known container ids, script and style
// subtrees removed, text nodes trimmed and joined with newlines.
func extractDetails(body string) (string, bool) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(body))
	if err != nil {
		return "", false
	}

	region := contentRegion(doc)
	if region == nil {
		return "", false
	}

	region.Find("script, style").Remove()
	return blockText(region), true
}

// contentRegion returns the first matching content container, or nil when
// the expected page structure is absent.
func contentRegion(doc *goquery.Document) *goquery.Selection {
	for _, sel := range contentContainers {
		if region := doc.Find(sel).First(); region.Length() > 0 {
			return region
		}
	}
	return nil
}

// blockText collects the non-empty trimmed text nodes under sel, joined
// with newlines.
func blockText(sel *goquery.Selection) string {
	var parts []string
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			if t := strings.TrimSpace(n.Data); t != "" {
				parts = append(parts, t)
			}
			return
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	for _, n := range sel.Nodes {
		walk(n)
	}
	return strings.Join(parts, "\n")
}

func containsAny(s string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}
