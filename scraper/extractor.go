package scraper

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/chromedp/chromedp"
	"github.com/google/uuid"

	"github.com/Danik911/dublin-accommodation-bot/geo"
	"github.com/Danik911/dublin-accommodation-bot/models"
	"github.com/Danik911/dublin-accommodation-bot/session"
	"github.com/Danik911/dublin-accommodation-bot/utils"
)

const (
	// Source labels every listing produced by this extractor.
	Source = "Facebook Marketplace"

	siteOrigin = "https://www.facebook.com"
)

// priceRegexp captures an optional euro symbol followed by digits with
// optional thousands separators and an optional two-digit decimal part.
var priceRegexp = regexp.MustCompile(`€?\s*(\d+(?:,\d{3})*(?:\.\d{2})?)`)

// containerProbe mirrors containerChain for the in-page wait: extraction
// starts once any container strategy resolves.
const containerProbe = `
	(function() {
		var selectors = [
			'[data-testid="marketplace-item"]',
			'.marketplace-item',
			'[role="article"]',
			'a[href*="/marketplace/item/"]'
		];
		for (var i = 0; i < selectors.length; i++) {
			if (document.querySelectorAll(selectors[i]).length > 0) return true;
		}
		return false;
	})()
`

// Extractor locates listing containers on the current page and normalizes
// them into Listing records. Per-container failures are isolated; one bad
// element never cancels the batch.
type Extractor struct {
	session *session.Controller
	logger  *utils.Logger
	seen    *utils.SeenSet
}

// NewExtractor creates an Extractor bound to the owned session.
func NewExtractor(sess *session.Controller, logger *utils.Logger) *Extractor {
	return &Extractor{
		session: sess,
		logger:  logger,
		seen:    utils.NewSeenSet(),
	}
}

// ExtractAll scrolls the page, waits for the container chain to resolve,
// captures the page HTML and parses up to limit listings. A page where no
// container strategy resolves yields an empty slice, not an error: "no
// listings" is distinct from "page unreachable", which surfaces from the
// session's navigation instead.
func (e *Extractor) ExtractAll(ctx context.Context, limit int) ([]*models.Listing, error) {
	if err := e.session.ScrollPage(ctx); err != nil {
		e.logger.Warn("[extractor] Page scroll failed: %v — extracting anyway", err)
	}

	if !e.waitForContainers(10 * time.Second) {
		e.logger.Warn("[extractor] No listing containers found within timeout — 0 listings")
		return []*models.Listing{}, nil
	}

	html, err := e.session.CaptureHTML(ctx)
	if err != nil {
		return nil, fmt.Errorf("extract: %w", err)
	}

	return e.ParseListings(html, limit), nil
}

// waitForContainers polls the container probe until any strategy resolves
// or the timeout elapses.
func (e *Extractor) waitForContainers(timeout time.Duration) bool {
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		var found bool
		err := e.session.Run(5*time.Second, chromedp.Evaluate(containerProbe, &found))
		if err == nil && found {
			return true
		}
		time.Sleep(time.Second)
	}
	return false
}

// ParseListings extracts up to limit normalized listings from raw page
// HTML. Containers yielding an empty title are dropped silently; duplicate
// links are emitted once.
func (e *Extractor) ParseListings(html string, limit int) []*models.Listing {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		e.logger.Warn("[extractor] HTML parse failed: %v — 0 listings", err)
		return []*models.Listing{}
	}

	containers, strategy := containerChain.FindAll(doc)
	if containers == nil {
		e.logger.Debug("[extractor] No container strategy resolved")
		return []*models.Listing{}
	}
	e.logger.Info("[extractor] Found %d containers via %q strategy", containers.Length(), strategy)

	var listings []*models.Listing
	containers.EachWithBreak(func(i int, el *goquery.Selection) bool {
		if len(listings) >= limit {
			return false
		}

		listing := e.extractOne(el, i)
		if listing == nil {
			return true
		}
		if listing.Link != "" && !e.seen.Add(listing.Link) {
			e.logger.Debug("[extractor] Duplicate link skipped: %s", listing.Link)
			return true
		}

		listings = append(listings, listing)
		e.logger.Debug("[extractor] Extracted: %s", listing.Title)
		return true
	})

	e.logger.Info("[extractor] Extracted %d listings (limit %d, %d unique links seen)", len(listings), limit, e.seen.Size())
	return listings
}

// extractOne pulls one listing out of a container element. Any panic from
// a malformed container is caught here so it only skips this container.
func (e *Extractor) extractOne(el *goquery.Selection, index int) (listing *models.Listing) {
	defer func() {
		if r := recover(); r != nil {
			e.logger.Warn("[extractor] Container %d skipped: %v", index, r)
			listing = nil
		}
	}()

	title := titleChain.FirstText(el)
	if title == "" {
		// Link-level containers carry the title as their own text.
		title = strings.TrimSpace(el.Text())
		if idx := strings.IndexByte(title, '\n'); idx > 0 {
			title = strings.TrimSpace(title[:idx])
		}
	}
	if title == "" {
		return nil
	}

	link := linkChain.FirstAttr(el, "href")
	if link == "" {
		if href, ok := el.Attr("href"); ok {
			link = href
		}
	}

	return &models.Listing{
		ID:          uuid.NewString(),
		Title:       collapseWhitespace(title),
		Price:       normalizePrice(findPriceText(el)),
		Location:    normalizeLocation(findLocationText(el)),
		Link:        normalizeLink(link),
		ExtractedAt: time.Now().UTC(),
		Source:      Source,
	}
}

// findPriceText scans the container's spans for the first text that looks
// like a price.
func findPriceText(el *goquery.Selection) string {
	var priceText string
	el.Find("span").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		text := strings.TrimSpace(s.Text())
		if strings.ContainsRune(text, '€') && priceRegexp.MatchString(text) {
			priceText = text
			return false
		}
		return true
	})
	return priceText
}

// findLocationText scans the container's spans for the first text naming a
// known Dublin area or Ireland.
func findLocationText(el *goquery.Selection) string {
	var locText string
	el.Find("span").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		text := strings.TrimSpace(s.Text())
		lower := strings.ToLower(text)
		if strings.Contains(lower, "ireland") {
			locText = text
			return false
		}
		for _, kw := range geo.DublinAreaKeywords {
			if strings.Contains(lower, kw) && !strings.ContainsRune(text, '€') {
				locText = text
				return false
			}
		}
		return true
	})
	return locText
}

// normalizePrice parses a raw price text into a numeric value. Absent or
// unparseable text yields nil, which downstream treats as "no price", not
// zero.
func normalizePrice(raw string) *float64 {
	if raw == "" {
		return nil
	}
	match := priceRegexp.FindStringSubmatch(raw)
	if match == nil {
		return nil
	}
	cleaned := strings.ReplaceAll(match[1], ",", "")
	val, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return nil
	}
	return &val
}

// normalizeLocation defaults empty extraction to "Dublin".
func normalizeLocation(raw string) string {
	loc := collapseWhitespace(raw)
	if loc == "" {
		return "Dublin"
	}
	return loc
}

// normalizeLink rewrites a relative path to an absolute URL against the
// site origin. Already-absolute links pass through; absent links stay
// empty.
func normalizeLink(raw string) string {
	link := strings.TrimSpace(raw)
	if link == "" {
		return ""
	}
	if strings.HasPrefix(link, "/") {
		return siteOrigin + link
	}
	return link
}

// collapseWhitespace trims and collapses internal whitespace runs.
func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
