package insight

import (
	"strings"

	"ledger/internal/models"
)

// DiscretionaryPolicy decides whether an expense counts as discretionary
// spending. Implementations must be pure.
type DiscretionaryPolicy interface {
	IsDiscretionary(tx *models.Transaction) bool
}

// DefaultKeywords is the keyword list used by DefaultPolicy.
var DefaultKeywords = []string{
	"zomato", "swiggy", "uber", "ola", "movie", "netflix", "amazon",
	"shopping", "party", "pizza", "burger", "coffee", "starbucks", "bar",
}

// KeywordPolicy flags an expense when its description contains any keyword,
// ignoring case. It is a substring test, nothing more.
type KeywordPolicy struct {
	keywords []string
}

// NewKeywordPolicy builds a KeywordPolicy. Blank keywords are dropped.
func NewKeywordPolicy(keywords ...string) *KeywordPolicy {
	p := &KeywordPolicy{keywords: make([]string, 0, len(keywords))}
	for _, k := range keywords {
		if k = strings.ToLower(strings.TrimSpace(k)); k != "" {
			p.keywords = append(p.keywords, k)
		}
	}
	return p
}

// DefaultPolicy returns a KeywordPolicy over DefaultKeywords.
func DefaultPolicy() *KeywordPolicy {
	return NewKeywordPolicy(DefaultKeywords...)
}

// IsDiscretionary implements DiscretionaryPolicy.
func (p *KeywordPolicy) IsDiscretionary(tx *models.Transaction) bool {
	desc := strings.ToLower(tx.Description)
	for _, k := range p.keywords {
		if strings.Contains(desc, k) {
			return true
		}
	}
	return false
}

// PolicyFunc adapts a plain function to DiscretionaryPolicy.
type PolicyFunc func(tx *models.Transaction) bool

// IsDiscretionary implements DiscretionaryPolicy.
func (f PolicyFunc) IsDiscretionary(tx *models.Transaction) bool { return f(tx) }
