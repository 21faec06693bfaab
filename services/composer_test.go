package services

import (
	"regexp"
	"strings"
	"testing"

	"github.com/Danik911/dublin-accommodation-bot/config"
	"github.com/Danik911/dublin-accommodation-bot/models"
)

var tokenRe = regexp.MustCompile(`\{[a-zA-Z]+\}`)

func newTestComposer() *Composer {
	return NewComposer(config.DefaultPersona(), newTestLogger())
}

func TestComposeLeavesNoUnresolvedTokens(t *testing.T) {
	composer := newTestComposer()

	listings := []*models.Listing{
		{ID: "a", Title: "Cozy room in Rathmines", Location: "Rathmines, Dublin", Price: price(650)},
		{ID: "b", Title: "", Location: "", Price: nil},
		{ID: "c", Title: "House sitting opportunity", Location: "Swords, Ireland", Price: price(0)},
	}
	msgTypes := []models.MessageType{
		models.MsgFreeAccommodation, models.MsgWorkExchange, models.MsgLowCost,
		models.MsgHouseSitting, models.MsgCaretaker,
	}

	for _, l := range listings {
		for _, mt := range msgTypes {
			msg := composer.Compose(l, mt, nil, "")
			if tok := tokenRe.FindString(msg.Text); tok != "" {
				t.Errorf("message type %s for %q left unresolved token %s", mt, l.ID, tok)
			}
		}
	}
}

func TestComposeHostNameDefault(t *testing.T) {
	composer := newTestComposer()
	l := &models.Listing{ID: "a", Title: "Room", Location: "Dublin", Price: price(500)}

	msg := composer.Compose(l, models.MsgLowCost, nil, "")
	if !strings.Contains(msg.Text, "Hi there!") {
		t.Error("missing host name should default to \"there\"")
	}

	msg = composer.Compose(l, models.MsgLowCost, nil, "Mary")
	if !strings.Contains(msg.Text, "Hi Mary!") {
		t.Error("provided host name should be used")
	}
}

func TestComposeUnknownTypeFallsBackToLowCost(t *testing.T) {
	composer := newTestComposer()
	l := &models.Listing{ID: "a", Title: "Room", Location: "Dublin"}

	msg := composer.Compose(l, models.MessageType("bogus"), nil, "")
	if msg.MessageType != models.MsgLowCost {
		t.Errorf("got %s; want lowCost fallback", msg.MessageType)
	}
}

func TestComposeMetadata(t *testing.T) {
	composer := newTestComposer()
	l := &models.Listing{ID: "listing-1", Title: "Room to rent", Location: "Dublin"}

	msg := composer.Compose(l, models.MsgLowCost, nil, "")
	if msg.ListingID != "listing-1" {
		t.Errorf("listing id = %q", msg.ListingID)
	}
	if msg.GeneratedAt.IsZero() {
		t.Error("generatedAt should be stamped")
	}
}

func TestExtractLocationName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Rathmines, Ireland", "Rathmines"},
		{"Naas, Co. Kildare", "Naas"},
		{"Dublin 8", "Dublin"},
		{"", "the area"},
	}
	for _, tt := range tests {
		if got := extractLocationName(tt.in); got != tt.want {
			t.Errorf("extractLocationName(%q) = %q; want %q", tt.in, got, tt.want)
		}
	}
}

func TestInferPropertyType(t *testing.T) {
	tests := []struct {
		title string
		want  string
	}{
		{"Modern apartment near city", "apartment"},
		{"Bright flat to share", "apartment"},
		{"House with garden", "house"},
		{"Studio available", "studio"},
		{"Single room", "room"},
		{"Something else entirely", "accommodation"},
	}
	for _, tt := range tests {
		if got := inferPropertyType(tt.title); got != tt.want {
			t.Errorf("inferPropertyType(%q) = %q; want %q", tt.title, got, tt.want)
		}
	}
}

func TestSuggestContribution(t *testing.T) {
	l := &models.Listing{Title: "House with big garden, needs maintenance, dog friendly", Location: "Dublin"}
	got := suggestContribution(l)

	if !strings.Contains(got, "garden maintenance and plant care") {
		t.Errorf("expected garden offer in %q", got)
	}
	if !strings.Contains(got, "pet care and walking") {
		t.Errorf("expected pet offer in %q", got)
	}
	if n := len(strings.Split(got, ", ")); n > 3 {
		t.Errorf("got %d offers; want at most 3", n)
	}
}

func TestSuggestContributionDefaults(t *testing.T) {
	l := &models.Listing{Title: "Plain room", Location: "Dublin"}
	got := suggestContribution(l)
	if got != "household maintenance, cleaning, garden work" {
		t.Errorf("got %q; want the fixed defaults", got)
	}
}

func TestCommuteBenefitVariants(t *testing.T) {
	composer := newTestComposer()

	excellent := []models.CommuteAnalysis{
		{DestinationName: "College", DistanceKm: 2, TransportScore: models.ScoreExcellent},
		{DestinationName: "Work", DistanceKm: 3, TransportScore: models.ScoreExcellent},
	}
	if got := composer.commuteBenefit(excellent); !strings.Contains(got, "perfect for my daily routine") {
		t.Errorf("excellent commute sentence = %q", got)
	}

	good := []models.CommuteAnalysis{
		{DestinationName: "College", DistanceKm: 7, TransportScore: models.ScoreGood},
		{DestinationName: "Work", DistanceKm: 8, TransportScore: models.ScoreGood},
	}
	if got := composer.commuteBenefit(good); !strings.Contains(got, "works well for my commute") {
		t.Errorf("good commute sentence = %q", got)
	}

	poor := []models.CommuteAnalysis{
		{DestinationName: "College", DistanceKm: 25, TransportScore: models.ScorePoor},
		{DestinationName: "Work", DistanceKm: 30, TransportScore: models.ScorePoor},
	}
	if got := composer.commuteBenefit(poor); !strings.Contains(got, "comfortable with the commute") {
		t.Errorf("poor commute sentence = %q", got)
	}

	if got := composer.commuteBenefit(nil); !strings.Contains(got, "would work well for my daily commute") {
		t.Errorf("fallback sentence = %q", got)
	}
}

func TestCommuteBenefitSingleDestination(t *testing.T) {
	composer := newTestComposer()

	single := []models.CommuteAnalysis{
		{DestinationName: "Griffith College Dublin", DistanceKm: 2.4, TransportScore: models.ScoreExcellent},
	}
	got := composer.commuteBenefit(single)
	if !strings.Contains(got, "perfect for my daily routine") || !strings.Contains(got, "Griffith College Dublin") {
		t.Errorf("single excellent sentence = %q", got)
	}

	single[0].TransportScore = models.ScoreGood
	single[0].DistanceKm = 8.1
	got = composer.commuteBenefit(single)
	if !strings.Contains(got, "works well for my commute") || !strings.Contains(got, "8.1km") {
		t.Errorf("single good sentence = %q", got)
	}

	single[0].TransportScore = models.ScorePoor
	got = composer.commuteBenefit(single)
	if !strings.Contains(got, "comfortable with the commute to Griffith College Dublin") {
		t.Errorf("single poor sentence = %q", got)
	}
}
