package services

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/Danik911/dublin-accommodation-bot/models"
	"github.com/Danik911/dublin-accommodation-bot/utils"
)

// contributionRule maps listing-text keywords to an offered contribution.
type contributionRule struct {
	keywords []string
	offer    string
}

var contributionRules = []contributionRule{
	{[]string{"garden", "plants"}, "garden maintenance and plant care"},
	{[]string{"elderly", "care"}, "companionship and light assistance"},
	{[]string{"maintenance", "repair"}, "property maintenance and repairs"},
	{[]string{"clean", "housework"}, "cleaning and housework"},
	{[]string{"pet", "dog", "cat"}, "pet care and walking"},
}

var defaultContributions = []string{"household maintenance", "cleaning", "garden work"}

var (
	countySuffixRe  = regexp.MustCompile(`, Co\. \w+$`)
	dublinNumberRe  = regexp.MustCompile(`Dublin \d+`)
	irelandSuffixRe = regexp.MustCompile(`, Ireland$`)
)

// Composer fills outreach templates with persona, listing and commute data.
// Substitution is total over the token set: every recognized token is
// replaced for every input, with neutral defaults for missing fields, so no
// literal placeholder ever survives into the output.
type Composer struct {
	persona *models.PersonaProfile
	logger  *utils.Logger
}

// NewComposer creates a Composer for the given persona.
func NewComposer(persona *models.PersonaProfile, logger *utils.Logger) *Composer {
	return &Composer{persona: persona, logger: logger}
}

// Compose selects the template for the given message type and personalizes
// it. hostName may be empty; it defaults to "there".
func (c *Composer) Compose(l *models.Listing, msgType models.MessageType, commute []models.CommuteAnalysis, hostName string) *models.ComposedMessage {
	tmpl, ok := templates[msgType]
	if !ok {
		tmpl = templates[models.MsgLowCost]
		msgType = models.MsgLowCost
	}

	if hostName == "" {
		hostName = "there"
	}

	replacer := strings.NewReplacer(
		"{hostName}", hostName,
		"{location}", extractLocationName(l.Location),
		"{propertyType}", inferPropertyType(l.Title),
		"{suggestedContribution}", suggestContribution(l),
		"{commuteBenefit}", c.commuteBenefit(commute),
		"{userAge}", strconv.Itoa(c.persona.Age),
		"{userOccupation}", c.persona.Occupation,
		"{userCourse}", c.persona.Course,
		"{userCollege}", c.persona.College,
		"{userWorkplace}", c.persona.Workplace,
		"{accommodationPeriod}", c.persona.AccommodationPeriod,
		"{userActivities}", strings.Join(c.persona.Lifestyle.Activities, ", "),
		"{userSchedule}", c.persona.Lifestyle.Schedule,
	)

	msg := &models.ComposedMessage{
		ListingID:    l.ID,
		ListingTitle: l.Title,
		MessageType:  msgType,
		Text:         replacer.Replace(tmpl),
		GeneratedAt:  time.Now().UTC(),
	}

	c.logger.Debug("[composer] %s message for %q", msgType, l.Title)
	return msg
}

// extractLocationName cleans a raw location into a short place name.
func extractLocationName(location string) string {
	if location == "" {
		return "the area"
	}
	loc := irelandSuffixRe.ReplaceAllString(location, "")
	loc = countySuffixRe.ReplaceAllString(loc, "")
	loc = dublinNumberRe.ReplaceAllString(loc, "Dublin")
	loc = strings.TrimSpace(loc)
	if loc == "" {
		return "the area"
	}
	return loc
}

// inferPropertyType guesses the property kind from the title.
func inferPropertyType(title string) string {
	t := strings.ToLower(title)
	switch {
	case strings.Contains(t, "apartment") || strings.Contains(t, "flat"):
		return "apartment"
	case strings.Contains(t, "house"):
		return "house"
	case strings.Contains(t, "studio"):
		return "studio"
	case strings.Contains(t, "room"):
		return "room"
	default:
		return "accommodation"
	}
}

// suggestContribution inspects the listing text for domain keywords and
// returns up to three matching contribution phrases, or the fixed defaults
// when nothing matches.
func suggestContribution(l *models.Listing) string {
	text := strings.ToLower(l.Title + " " + l.Location)

	var offers []string
	for _, rule := range contributionRules {
		for _, kw := range rule.keywords {
			if strings.Contains(text, kw) {
				offers = append(offers, rule.offer)
				break
			}
		}
	}

	if len(offers) == 0 {
		offers = defaultContributions
	}
	if len(offers) > 3 {
		offers = offers[:3]
	}
	return strings.Join(offers, ", ")
}

// commuteBenefit renders a commute sentence from the analysis. The
// best-scoring entry picks the sentence variant; only missing analysis
// falls back to the generic line.
func (c *Composer) commuteBenefit(commute []models.CommuteAnalysis) string {
	if len(commute) == 0 {
		return "The location would work well for my daily commute to college and work."
	}

	if len(commute) == 1 {
		only := commute[0]
		switch only.TransportScore {
		case models.ScoreExcellent:
			return fmt.Sprintf("The location is perfect for my daily routine - just %.1fkm from %s.",
				only.DistanceKm, only.DestinationName)
		case models.ScoreGood:
			return fmt.Sprintf("The location works well for my commute - %.1fkm from %s, with good transport links.",
				only.DistanceKm, only.DestinationName)
		default:
			return fmt.Sprintf("I'm comfortable with the commute to %s (%.1fkm) from this location.",
				only.DestinationName, only.DistanceKm)
		}
	}

	college, work := commute[0], commute[1]
	best := college.TransportScore
	if scoreRank(work.TransportScore) > scoreRank(best) {
		best = work.TransportScore
	}

	switch best {
	case models.ScoreExcellent:
		return fmt.Sprintf("The location is perfect for my daily routine - just %.1fkm from %s and %.1fkm from my workplace at %s.",
			college.DistanceKm, c.persona.College, work.DistanceKm, c.persona.Workplace)
	case models.ScoreGood:
		return fmt.Sprintf("The location works well for my commute - %.1fkm from college and %.1fkm from work, with good transport links.",
			college.DistanceKm, work.DistanceKm)
	default:
		return fmt.Sprintf("I'm comfortable with the commute to college (%.1fkm) and work (%.1fkm) from this location.",
			college.DistanceKm, work.DistanceKm)
	}
}

func scoreRank(s models.TransportScore) int {
	switch s {
	case models.ScoreExcellent:
		return 3
	case models.ScoreGood:
		return 2
	case models.ScoreFair:
		return 1
	default:
		return 0
	}
}
