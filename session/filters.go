package session

import (
	"context"
	"strconv"
	"time"

	"github.com/chromedp/chromedp"

	"github.com/Danik911/dublin-accommodation-bot/models"
	"github.com/Danik911/dublin-accommodation-bot/utils"
)

// FilterApplier translates structured search parameters into best-effort UI
// interactions. Each sub-step is independent: a missing or broken control
// is logged and skipped, and the search proceeds with whatever filtering
// succeeded. The upstream UI contract is not owned by this system, so
// degradation is the policy, not an error.
type FilterApplier struct {
	session *Controller
	logger  *utils.Logger
	query   string
}

// NewFilterApplier creates a FilterApplier bound to the owned session.
func NewFilterApplier(session *Controller, logger *utils.Logger, query string) *FilterApplier {
	return &FilterApplier{session: session, logger: logger, query: query}
}

// ApplyFilters attempts keyword, price-range and category sub-steps in
// order. It returns the number of sub-steps that succeeded and the errors
// of the ones that did not; it never fails the run.
func (f *FilterApplier) ApplyFilters(ctx context.Context, params models.SearchParams) (int, []*FilterError) {
	f.logger.Info("[filters] Applying search filters — price €%d-€%d, location %s",
		params.MinPrice, params.MaxPrice, params.Location)

	applied := 0
	var failures []*FilterError

	steps := []struct {
		name string
		fn   func(models.SearchParams) error
	}{
		{"keyword", f.applyKeyword},
		{"price-range", f.applyPriceRange},
		{"category", f.applyCategory},
	}

	for _, step := range steps {
		if err := step.fn(params); err != nil {
			fe := &FilterError{Step: step.name, Err: err}
			f.logger.Warn("[filters] %v — continuing", fe)
			failures = append(failures, fe)
			continue
		}
		applied++
	}

	f.logger.Info("[filters] %d/%d filter sub-steps applied", applied, len(steps))
	return applied, failures
}

// applyKeyword fills the search box and submits the query.
func (f *FilterApplier) applyKeyword(params models.SearchParams) error {
	const searchBox = `input[placeholder*="Search"], input[aria-label*="Search"]`
	return f.session.Run(15*time.Second,
		chromedp.WaitVisible(searchBox, chromedp.ByQuery),
		chromedp.Clear(searchBox, chromedp.ByQuery),
		chromedp.SendKeys(searchBox, f.query, chromedp.ByQuery),
		chromedp.Submit(searchBox, chromedp.ByQuery),
		chromedp.Sleep(3*time.Second),
	)
}

// applyPriceRange opens the price filter panel and fills min/max inputs.
func (f *FilterApplier) applyPriceRange(params models.SearchParams) error {
	if params.MaxPrice <= 0 {
		return nil
	}
	return f.session.Run(15*time.Second,
		chromedp.Click(`//span[text()="Price"]`, chromedp.BySearch),
		chromedp.Sleep(1*time.Second),
		chromedp.SendKeys(`input[placeholder*="Min"], input[aria-label*="minimum"]`,
			strconv.Itoa(params.MinPrice), chromedp.ByQuery),
		chromedp.SendKeys(`input[placeholder*="Max"], input[aria-label*="maximum"]`,
			strconv.Itoa(params.MaxPrice), chromedp.ByQuery),
		chromedp.Click(`//span[text()="Apply"]`, chromedp.BySearch),
		chromedp.Sleep(2*time.Second),
	)
}

// applyCategory selects the property-rentals category when the control
// exists.
func (f *FilterApplier) applyCategory(params models.SearchParams) error {
	return f.session.Run(15*time.Second,
		chromedp.Click(`//span[text()="Category"]`, chromedp.BySearch),
		chromedp.Sleep(1*time.Second),
		chromedp.Click(`//span[contains(text(),"Property Rentals")]`, chromedp.BySearch),
		chromedp.Sleep(2*time.Second),
	)
}
