package services

import (
	"strings"

	"github.com/Danik911/dublin-accommodation-bot/models"
	"github.com/Danik911/dublin-accommodation-bot/utils"
)

// freeAccommodationKeywords is the fixed evidence set for the
// free-accommodation flag.
var freeAccommodationKeywords = []string{
	"free", "exchange", "work", "help", "house sitting",
	"caretaker", "au pair", "volunteer", "trade", "barter",
}

// Classifier labels listings with free-accommodation affinity and selects
// the outreach template type.
type Classifier struct {
	logger *utils.Logger
}

// NewClassifier creates a Classifier with the given logger.
func NewClassifier(logger *utils.Logger) *Classifier {
	return &Classifier{logger: logger}
}

// Classify flags a listing as free-accommodation-compatible when its
// lower-cased title+location contains any keyword OR its price is nil or
// zero. The OR is deliberate: a priced listing with a matching keyword is
// still flagged.
func (c *Classifier) Classify(l *models.Listing) *models.ClassificationResult {
	text := strings.ToLower(l.Title + " " + l.Location)

	var matched []string
	for _, kw := range freeAccommodationKeywords {
		if strings.Contains(text, kw) {
			matched = append(matched, kw)
		}
	}

	freePrice := l.Price == nil || *l.Price == 0

	result := &models.ClassificationResult{
		IsFreeAccommodation: len(matched) > 0 || freePrice,
		MatchedKeywords:     matched,
	}

	c.logger.Debug("[classifier] %q — free=%t keywords=%v",
		l.Title, result.IsFreeAccommodation, matched)
	return result
}

// DetermineMessageType picks the outreach template for a listing. Specific
// intent phrases in the listing text always win over the coarser free/paid
// signal; a keyword-matched priced listing with no phrase match still
// renders as lowCost.
func (c *Classifier) DetermineMessageType(l *models.Listing, result *models.ClassificationResult) models.MessageType {
	text := strings.ToLower(l.Title + " " + l.Location)

	switch {
	case strings.Contains(text, "house sit"):
		return models.MsgHouseSitting
	case strings.Contains(text, "caretaker") || strings.Contains(text, "property maintenance"):
		return models.MsgCaretaker
	case strings.Contains(text, "work exchange") || strings.Contains(text, "help with"):
		return models.MsgWorkExchange
	case result != nil && result.IsFreeAccommodation:
		return models.MsgFreeAccommodation
	default:
		return models.MsgLowCost
	}
}
