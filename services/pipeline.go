package services

import (
	"context"
	"time"

	"github.com/Danik911/dublin-accommodation-bot/config"
	"github.com/Danik911/dublin-accommodation-bot/geo"
	"github.com/Danik911/dublin-accommodation-bot/models"
	"github.com/Danik911/dublin-accommodation-bot/scraper"
	"github.com/Danik911/dublin-accommodation-bot/session"
	"github.com/Danik911/dublin-accommodation-bot/utils"
)

// Pipeline drives one full acquisition-and-normalization run: search areas,
// authenticated session, filters, extraction, enrichment, composition.
// Listings are processed strictly sequentially; the browser session is the
// only shared resource and is torn down on every exit path.
type Pipeline struct {
	cfg     *config.Config
	logger  *utils.Logger
	persona *models.PersonaProfile

	classifier *Classifier
	analyzer   *CommuteAnalyzer
	composer   *Composer
}

// NewPipeline wires the pure services around the shared config and persona.
func NewPipeline(cfg *config.Config, persona *models.PersonaProfile, logger *utils.Logger) *Pipeline {
	return &Pipeline{
		cfg:        cfg,
		logger:     logger,
		persona:    persona,
		classifier: NewClassifier(logger),
		analyzer:   NewCommuteAnalyzer(persona),
		composer:   NewComposer(persona, logger),
	}
}

// Run executes the pipeline and returns the run result. Only authentication
// failure, session-launch failure and unrecoverable navigation to the
// search page abort the run; everything downstream degrades per unit of
// work.
func (p *Pipeline) Run(ctx context.Context) (*models.RunResult, error) {
	result := &models.RunResult{Timestamp: time.Now().UTC()}

	p.logger.Info("[pipeline] Generating search areas — radius %.0fkm, grid %dx%d",
		p.cfg.RadiusKm, p.cfg.GridSize, p.cfg.GridSize)
	result.SearchAreas = geo.AllAreas(p.cfg.CenterLat, p.cfg.CenterLng, p.cfg.RadiusKm, p.cfg.GridSize)
	p.logger.Info("[pipeline] %d search areas within %.0fkm", len(result.SearchAreas), p.cfg.RadiusKm)

	sess := session.New(p.cfg, p.logger)
	defer sess.Close()

	if err := sess.Start(ctx); err != nil {
		return nil, err
	}
	if err := sess.AwaitLogin(ctx); err != nil {
		return nil, err
	}
	if err := sess.Navigate(ctx, p.cfg.SearchURL); err != nil {
		return nil, err
	}

	params := models.SearchParams{
		MinPrice: p.cfg.MinPrice,
		MaxPrice: p.cfg.MaxPrice,
		Location: "Dublin, Ireland",
		RadiusKm: p.cfg.RadiusKm,
	}
	filters := session.NewFilterApplier(sess, p.logger, p.cfg.SearchQuery)
	filters.ApplyFilters(ctx, params)

	extractor := scraper.NewExtractor(sess, p.logger)
	listings, err := extractor.ExtractAll(ctx, p.cfg.MaxListings)
	if err != nil {
		p.logger.Warn("[pipeline] Extraction degraded: %v", err)
	}
	result.Listings = listings

	p.enrich(listings)
	result.Messages = p.composeMessages(listings)
	result.Summary = p.summarize(result)

	return result, nil
}

// enrich attaches classification and commute analysis to each listing. The
// listing's coordinates come from the gazetteer when its location text
// names a known area, falling back to the catchment center.
func (p *Pipeline) enrich(listings []*models.Listing) {
	for _, l := range listings {
		l.Classification = p.classifier.Classify(l)

		lat, lng, ok := geo.Locate(l.Location)
		if !ok {
			lat, lng = p.cfg.CenterLat, p.cfg.CenterLng
		}
		l.Commute = p.analyzer.Analyze(lat, lng)
	}
}

// composeMessages emits one outreach message per listing, bounded by the
// configured maximum. A failure for one listing never cancels the rest.
func (p *Pipeline) composeMessages(listings []*models.Listing) []*models.ComposedMessage {
	var messages []*models.ComposedMessage
	for _, l := range listings {
		if len(messages) >= p.cfg.MaxMessages {
			break
		}
		msgType := p.classifier.DetermineMessageType(l, l.Classification)
		messages = append(messages, p.composer.Compose(l, msgType, l.Commute, ""))
	}
	p.logger.Info("[pipeline] Generated %d personalized messages", len(messages))
	return messages
}

func (p *Pipeline) summarize(result *models.RunResult) models.RunSummary {
	summary := models.RunSummary{
		TotalListings:     len(result.Listings),
		MessagesGenerated: len(result.Messages),
		MessagesByType:    make(map[string]int),
	}
	for _, l := range result.Listings {
		if l.Classification != nil && l.Classification.IsFreeAccommodation {
			summary.FreeAccommodationFound++
		}
	}
	for _, m := range result.Messages {
		summary.MessagesByType[string(m.MessageType)]++
	}
	return summary
}
