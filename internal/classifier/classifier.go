// Package classifier implements rule-based coffee classification over the
// fixed beverage catalog.
package classifier

import (
	"github.com/kopigraph/kopigraph/internal/model"
)

// LabelUnknown is returned when no constrained rule matches. The terminal
// wildcard rule guarantees Classify is total over the attribute space.
const LabelUnknown = "unknown"

// Rule pairs a conjunction of equality constraints with a result label.
// A zero-valued field in Constraints is a wildcard for that axis.
type Rule struct {
	Label       string
	Constraints model.Attributes
}

// matches reports whether attrs satisfies every constrained field.
func (r Rule) matches(attrs model.Attributes) bool {
	c := r.Constraints
	if c.Base != "" && c.Base != attrs.Base {
		return false
	}
	if c.Milk != "" && c.Milk != attrs.Milk {
		return false
	}
	if c.Additive != "" && c.Additive != attrs.Additive {
		return false
	}
	if c.Preparation != "" && c.Preparation != attrs.Preparation {
		return false
	}
	if c.Serving != "" && c.Serving != attrs.Serving {
		return false
	}
	if c.Origin != "" && c.Origin != attrs.Origin {
		return false
	}
	return true
}

// Classifier evaluates an ordered rule list against the catalog. Rules and
// catalog are immutable after construction, so a Classifier is safe for
// concurrent use without locking.
type Classifier struct {
	catalog *model.Catalog
	rules   []Rule
}

// New creates a classifier over the given catalog and rule list. Rule order
// is significant: the first satisfied rule wins.
func New(catalog *model.Catalog, rules []Rule) *Classifier {
	return &Classifier{catalog: catalog, rules: rules}
}

// NewDefault creates a classifier with the canonical catalog and rules.
func NewDefault() *Classifier {
	return New(model.DefaultCatalog(), DefaultRules())
}

// Classify returns the label of the first rule whose constraints attrs
// satisfies. It never fails: inputs outside the known enums simply fail
// every constrained rule and fall through to the wildcard.
func (c *Classifier) Classify(attrs model.Attributes) string {
	for _, rule := range c.rules {
		if rule.matches(attrs) {
			return rule.Label
		}
	}
	// Unreachable with the default rules (terminal wildcard), kept so a
	// caller-supplied rule list without one stays total.
	return LabelUnknown
}

// Lookup returns the catalog record for name; ok is false when absent.
func (c *Classifier) Lookup(name string) (model.CoffeeRecord, bool) {
	return c.catalog.Lookup(name)
}

// Catalog returns the catalog the classifier was built over.
func (c *Classifier) Catalog() *model.Catalog {
	return c.catalog
}

// HasEspressoBase reports whether the named coffee is espresso-based.
// Unknown names report false.
func (c *Classifier) HasEspressoBase(name string) bool {
	r, ok := c.catalog.Lookup(name)
	return ok && r.Attributes.Base == model.BaseEspresso
}

// HasMilk reports whether the named coffee contains any milk.
func (c *Classifier) HasMilk(name string) bool {
	r, ok := c.catalog.Lookup(name)
	return ok && r.Attributes.Milk != model.MilkNone
}

// IsBoiled reports whether the named coffee is prepared by boiling.
func (c *Classifier) IsBoiled(name string) bool {
	r, ok := c.catalog.Lookup(name)
	return ok && r.Attributes.Preparation == model.PreparationBoiled
}

// IsFromOrigin reports whether the named coffee originates from origin.
func (c *Classifier) IsFromOrigin(name string, origin model.Origin) bool {
	r, ok := c.catalog.Lookup(name)
	return ok && r.Attributes.Origin == origin
}
