package models

import "time"

// SearchArea is one named candidate search point within the catchment.
// DistanceFromCenterKm is always <= the configured radius for areas that
// survive filtering.
type SearchArea struct {
	Name                 string  `json:"name"`
	Lat                  float64 `json:"lat"`
	Lng                  float64 `json:"lng"`
	DistanceFromCenterKm float64 `json:"distanceFromCenterKm"`
}

// Listing is one normalized accommodation advertisement extracted from the
// marketplace page. Title is never empty; Price is nil when the listing
// shows no parseable price.
type Listing struct {
	ID          string    `json:"id" db:"id"`
	Title       string    `json:"title" db:"title"`
	Price       *float64  `json:"price" db:"price"`
	Location    string    `json:"location" db:"location"`
	Link        string    `json:"link" db:"link"`
	ExtractedAt time.Time `json:"extractedAt" db:"extracted_at"`
	Source      string    `json:"source" db:"source"`

	// Enrichment, attached after extraction.
	Classification *ClassificationResult `json:"classification,omitempty" db:"-"`
	Commute        []CommuteAnalysis     `json:"commute,omitempty" db:"-"`
}

// ClassificationResult records free-accommodation affinity of a listing.
type ClassificationResult struct {
	IsFreeAccommodation bool     `json:"isFreeAccommodation"`
	MatchedKeywords     []string `json:"matchedKeywords"`
}

// TransportScore is the qualitative commute bucket.
type TransportScore string

const (
	ScoreExcellent TransportScore = "Excellent"
	ScoreGood      TransportScore = "Good"
	ScoreFair      TransportScore = "Fair"
	ScorePoor      TransportScore = "Poor"
)

// CommuteAnalysis is the distance/time/score from a listing's location to
// one fixed landmark.
type CommuteAnalysis struct {
	DestinationName string         `json:"destination"`
	DistanceKm      float64        `json:"distanceKm"`
	EstimatedTime   string         `json:"estimatedTime"`
	TransportScore  TransportScore `json:"transportScore"`
}

// MessageType selects the outreach template for a listing.
type MessageType string

const (
	MsgFreeAccommodation MessageType = "freeAccommodation"
	MsgWorkExchange      MessageType = "workExchange"
	MsgLowCost           MessageType = "lowCost"
	MsgHouseSitting      MessageType = "houseSitting"
	MsgCaretaker         MessageType = "caretaker"
)

// ComposedMessage is the final personalized outreach text for one listing.
type ComposedMessage struct {
	ListingID    string      `json:"listingId" db:"listing_id"`
	ListingTitle string      `json:"listingTitle" db:"listing_title"`
	MessageType  MessageType `json:"messageType" db:"message_type"`
	Text         string      `json:"message" db:"message"`
	GeneratedAt  time.Time   `json:"generatedAt" db:"generated_at"`
}

// Landmark is a fixed commute destination taken from the persona profile.
type Landmark struct {
	Name string  `yaml:"name" json:"name"`
	Lat  float64 `yaml:"lat" json:"lat"`
	Lng  float64 `yaml:"lng" json:"lng"`
}

// Lifestyle holds persona attributes used by message templates.
type Lifestyle struct {
	Smoker     bool     `yaml:"smoker" json:"smoker"`
	Pets       bool     `yaml:"pets" json:"pets"`
	EarlyRiser bool     `yaml:"early_riser" json:"earlyRiser"`
	Schedule   string   `yaml:"schedule" json:"schedule"`
	Activities []string `yaml:"activities" json:"activities"`
}

// PersonaProfile describes the outreach sender. Loaded once at startup and
// treated as read-only by every component.
type PersonaProfile struct {
	Age                 int       `yaml:"age" json:"age"`
	Occupation          string    `yaml:"occupation" json:"occupation"`
	Course              string    `yaml:"course" json:"course"`
	College             string    `yaml:"college" json:"college"`
	Workplace           string    `yaml:"workplace" json:"workplace"`
	AccommodationPeriod string     `yaml:"accommodation_period" json:"accommodationPeriod"`
	Lifestyle           Lifestyle  `yaml:"lifestyle" json:"lifestyle"`
	Landmarks           []Landmark `yaml:"landmarks" json:"landmarks"`
}

// SearchParams is the structured search input handed to the filter applier.
type SearchParams struct {
	MinPrice int     `json:"minPrice"`
	MaxPrice int     `json:"maxPrice"`
	Location string  `json:"location"`
	RadiusKm float64 `json:"radiusKm"`
}

// RunSummary aggregates one pipeline run.
type RunSummary struct {
	TotalListings          int            `json:"totalListings"`
	MessagesGenerated      int            `json:"messagesGenerated"`
	FreeAccommodationFound int            `json:"freeAccommodationFound"`
	MessagesByType         map[string]int `json:"messagesByType,omitempty"`
}

// RunResult is the full output record handed to the persistence sinks.
type RunResult struct {
	Listings    []*Listing         `json:"listings"`
	Messages    []*ComposedMessage `json:"messages"`
	SearchAreas []SearchArea       `json:"searchAreas"`
	Timestamp   time.Time          `json:"timestamp"`
	Summary     RunSummary         `json:"summary"`
}
