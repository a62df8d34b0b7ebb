// Package extract pulls structured candidates out of free-text messages using
// lexical heuristics. The rules are deliberately simple and carried as
// configuration so the vocabulary can grow without touching dispatch logic.
package extract

import (
	"strings"
	"unicode"
)

// maxSizeTokenLen bounds the size heuristic to two-digit tokens. Any bare
// two-digit number in the message will match; that misfire is a documented
// limitation of the rule, not something later stages try to repair.
const maxSizeTokenLen = 2

// Config holds the lexical rule set.
type Config struct {
	// Brands is the product keyword vocabulary, lower-case.
	Brands []string
	// OrderIDPrefix marks order-id tokens, compared against the upper-cased
	// token.
	OrderIDPrefix string
}

// DefaultConfig returns the stock rule set.
func DefaultConfig() Config {
	return Config{
		Brands:        []string{"nike", "adidas", "levi"},
		OrderIDPrefix: "ORD-",
	}
}

// Entities are the candidates extracted from one message. Zero values mean
// the heuristic found nothing.
type Entities struct {
	Brand   string
	Size    string
	Names   []string
	OrderID string
}

// Extractor applies the configured rules to raw messages.
type Extractor struct {
	cfg Config
}

// New creates an Extractor. Zero-value config fields fall back to the
// defaults.
func New(cfg Config) *Extractor {
	def := DefaultConfig()
	if len(cfg.Brands) == 0 {
		cfg.Brands = def.Brands
	}
	if cfg.OrderIDPrefix == "" {
		cfg.OrderIDPrefix = def.OrderIDPrefix
	}
	return &Extractor{cfg: cfg}
}

// Extract runs all heuristics over the message.
func (e *Extractor) Extract(message string) Entities {
	return Entities{
		Brand:   e.Brand(message),
		Size:    e.Size(message),
		Names:   e.NameCandidates(message),
		OrderID: e.OrderID(message),
	}
}

// Brand returns the first lower-cased whitespace token that exactly equals a
// configured brand, or "".
func (e *Extractor) Brand(message string) string {
	for _, word := range strings.Fields(strings.ToLower(message)) {
		for _, brand := range e.cfg.Brands {
			if word == brand {
				return brand
			}
		}
	}
	return ""
}

// Size returns the first purely numeric token of at most two characters,
// or "".
func (e *Extractor) Size(message string) string {
	for _, word := range strings.Fields(strings.ToLower(message)) {
		if len(word) <= maxSizeTokenLen && isAllDigits(word) {
			return word
		}
	}
	return ""
}

// NameCandidates scans the original-case tokens for proper-noun spans. A
// token starts a candidate when it is capitalized and longer than two
// characters; when the next token is also capitalized the pair joins into a
// single two-word candidate and both tokens are consumed. Candidates keep
// message order so later stages can try them first to last.
func (e *Extractor) NameCandidates(message string) []string {
	words := strings.Fields(message)
	var names []string
	for i := 0; i < len(words); i++ {
		if !isCapitalized(words[i]) || len([]rune(words[i])) <= 2 {
			continue
		}
		if i+1 < len(words) && isCapitalized(words[i+1]) {
			names = append(names, words[i]+" "+words[i+1])
			i++
			continue
		}
		names = append(names, words[i])
	}
	return names
}

// OrderID returns the first token whose upper-cased form starts with the
// configured prefix, upper-cased, or "".
func (e *Extractor) OrderID(message string) string {
	for _, word := range strings.Fields(message) {
		upper := strings.ToUpper(word)
		if strings.HasPrefix(upper, e.cfg.OrderIDPrefix) {
			return upper
		}
	}
	return ""
}

func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// isCapitalized reports whether the token reads as a title-cased word: the
// first letter is upper case and no later letter is. "Jane" and "Jane's"
// qualify; "ORD-001", "jane" and "iPhone" do not.
func isCapitalized(s string) bool {
	seenFirst := false
	for _, r := range s {
		if !unicode.IsLetter(r) {
			continue
		}
		if !seenFirst {
			if !unicode.IsUpper(r) {
				return false
			}
			seenFirst = true
			continue
		}
		if unicode.IsUpper(r) {
			return false
		}
	}
	return seenFirst
}
