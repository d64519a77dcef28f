package ideagen

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"math"
	"net/http"
	"net/url"
	"sync"
	"time"
)

type TrendFetcherConfig struct {
	BaseURL    string
	Timeout    time.Duration
	HTTPClient *http.Client
}

// TrendFetcher looks up recent story signals for industries against an
// external search index. Every failure degrades to an empty list: trends are
// enrichment, never a reason to fail a request.
type TrendFetcher struct {
	cfg TrendFetcherConfig
}

func NewTrendFetcher(cfg TrendFetcherConfig) *TrendFetcher {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultSearchURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = TrendFetchTimeout
	}
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = &http.Client{}
	}
	return &TrendFetcher{cfg: cfg}
}

// FetchAll fans out one lookup per industry and joins the results in input
// order, truncated to MaxTrends. A slow or failing industry contributes an
// empty slot without blocking or aborting the others.
func (f *TrendFetcher) FetchAll(ctx context.Context, industries []string) []TrendItem {
	perIndustry := make([][]TrendItem, len(industries))
	var wg sync.WaitGroup
	for i, industry := range industries {
		wg.Add(1)
		go func(slot int, industry string) {
			defer wg.Done()
			perIndustry[slot] = f.fetchIndustry(ctx, industry)
		}(i, industry)
	}
	wg.Wait()

	out := []TrendItem{}
	for _, items := range perIndustry {
		for _, item := range items {
			if len(out) == MaxTrends {
				return out
			}
			out = append(out, item)
		}
	}
	return out
}

func (f *TrendFetcher) fetchIndustry(ctx context.Context, industry string) []TrendItem {
	ctx, cancel := context.WithTimeout(ctx, f.cfg.Timeout)
	defer cancel()

	reqURL := fmt.Sprintf("%s?query=%s&tags=story&hitsPerPage=%d", f.cfg.BaseURL, url.QueryEscape(industry), HitsPerIndustry)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		log.Printf("ideaforge trend fetch skipped industry=%q err=%v", industry, err)
		return nil
	}

	res, err := f.cfg.HTTPClient.Do(req)
	if err != nil {
		log.Printf("ideaforge trend fetch failed industry=%q err=%v", industry, err)
		return nil
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		log.Printf("ideaforge trend fetch failed industry=%q status=%d", industry, res.StatusCode)
		return nil
	}

	b, err := io.ReadAll(io.LimitReader(res.Body, 2<<20))
	if err != nil {
		log.Printf("ideaforge trend fetch read failed industry=%q err=%v", industry, err)
		return nil
	}
	var parsed struct {
		Hits []map[string]any `json:"hits"`
	}
	if err := json.Unmarshal(b, &parsed); err != nil {
		log.Printf("ideaforge trend fetch bad payload industry=%q err=%v", industry, err)
		return nil
	}

	items := make([]TrendItem, 0, len(parsed.Hits))
	for _, hit := range parsed.Hits {
		if item, ok := mapHit(industry, hit); ok {
			items = append(items, item)
		}
	}
	return items
}

// mapHit flattens one raw search hit. Title falls back to the story title,
// URL falls back to the story URL and then to the canonical item page built
// from the objectID. Hits without a usable title are dropped.
func mapHit(industry string, hit map[string]any) (TrendItem, bool) {
	title := sanitizeString(hit["title"])
	if title == "" {
		title = sanitizeString(hit["story_title"])
	}
	if title == "" {
		return TrendItem{}, false
	}

	itemURL := sanitizeString(hit["url"])
	if itemURL == "" {
		itemURL = sanitizeString(hit["story_url"])
	}
	if itemURL == "" {
		if id := sanitizeString(hit["objectID"]); id != "" {
			itemURL = HNItemURLPrefix + id
		}
	}

	points := 0
	if n, ok := toNumber(hit["points"]); ok && n > 0 {
		points = int(math.Round(n))
	}

	return TrendItem{
		Industry:  industry,
		Title:     title,
		URL:       itemURL,
		Points:    points,
		CreatedAt: sanitizeString(hit["created_at"]),
	}, true
}
