package services

import (
	"regexp"
	"strings"
)

type LocationServiceInterface interface {
	ExtractLocation(message string, explicitLocation string) string
}

// indianLocations is the gazetteer scanned before any pattern matching. Order
// is the tie-break: the first entry that appears as a substring of the
// message wins, so the literal order is part of the extraction contract.
// A few entries repeat; they are no-ops under first-match semantics and are
// kept as-is for compatibility.
var indianLocations = []string{
	"delhi", "mumbai", "kerala", "rajasthan", "goa", "bangalore", "chennai", "kolkata", "hyderabad",
	"pune", "ahmedabad", "jaipur", "lucknow", "kanpur", "nagpur", "indore", "bhopal", "visakhapatnam",
	"tamil nadu", "karnataka", "andhra pradesh", "telangana", "maharashtra", "gujarat", "west bengal",
	"uttar pradesh", "madhya pradesh", "bihar", "odisha", "punjab", "haryana", "himachal pradesh",
	"uttarakhand", "jharkhand", "chhattisgarh", "assam", "manipur", "meghalaya", "tripura", "mizoram",
	"nagaland", "arunachal pradesh", "sikkim", "jammu and kashmir", "ladakh", "agra", "varanasi",
	"amritsar", "udaipur", "jodhpur", "pushkar", "rishikesh", "haridwar", "shimla", "manali",
	"darjeeling", "gangtok", "kochi", "cochin", "mysore", "hampi", "aurangabad", "nashik",
	"madurai", "srinagar", "leh", "itanagar", "kohima", "imphal", "shillong", "agartala", "aizawl",
	"raipur", "ranchi", "patna", "warangal", "guwahati", "gurugram", "gurgaon", "bhubaneswar", "puri",
	"agra", "varanasi", "kanpur", "meerut", "allahabad", "prayagraj", "mathura", "vrindavan",
	"jamshedpur", "deoghar", "netarhat", "uttar pradesh", "up",
}

// Fallback patterns, tried in order only when no gazetteer entry matched.
// The first capture that survives the stop-word filter is the location.
var locationPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?:visit|go to|explore|in|about|places in|traveling to)\s+([a-zA-Z\s]+)`),
	regexp.MustCompile(`([a-zA-Z\s]+)(?:\s+places|\s+tourism|\s+tour|\s+travel)`),
	regexp.MustCompile(`^([a-zA-Z\s]+)$`),
}

// excludeWords are captures that look like locations to the patterns above
// but are generic travel vocabulary.
var excludeWords = map[string]struct{}{
	"places": {}, "best": {}, "top": {}, "good": {}, "nice": {},
	"beautiful": {}, "famous": {}, "popular": {}, "must": {}, "see": {},
	"visit": {}, "travel": {}, "trip": {}, "tour": {}, "tourism": {},
}

type LocationService struct{}

func NewLocationService() LocationServiceInterface {
	return &LocationService{}
}

// ExtractLocation resolves a message to a lowercase location token, or ""
// when nothing can be determined. An explicit location bypasses all text
// analysis. Deterministic and side-effect free.
func (s *LocationService) ExtractLocation(message string, explicitLocation string) string {
	if explicit := strings.ToLower(strings.TrimSpace(explicitLocation)); explicit != "" {
		return explicit
	}

	normalized := strings.ToLower(message)

	for _, location := range indianLocations {
		if strings.Contains(normalized, location) {
			return location
		}
	}

	for _, pattern := range locationPatterns {
		match := pattern.FindStringSubmatch(normalized)
		if len(match) < 2 {
			continue
		}
		location := strings.TrimSpace(match[1])
		if len(location) <= 2 {
			continue
		}
		if _, generic := excludeWords[location]; generic {
			continue
		}
		return location
	}

	return ""
}
