package catalog

import (
	"regexp"

	"github.com/DelcyVillalba/chic-storefront/internal/core/domain"
)

// A TitleRule rewrites the first match of Pattern in a title with Replace.
type TitleRule struct {
	Pattern *regexp.Regexp
	Replace string
}

func rule(pattern, replace string) TitleRule {
	return TitleRule{regexp.MustCompile("(?i)" + pattern), replace}
}

// DefaultTitleRules are applied in order, each one to the output of the previous.
var DefaultTitleRules = []TitleRule{
	rule(`t-?shirts?`, "Remera"),
	rule(`rain ?jacket|raincoat`, "Impermeable"),
	rule(`jacket`, "Campera"),
	rule(`backpack`, "Mochila"),
	rule(`bracelet`, "Pulsera"),
	rule(`\brings?\b`, "Anillo"),
	rule(`earrings?`, "Aros"),
	rule(`hard drive`, "Disco rígido"),
	rule(`\bmonitor\b`, "Monitor"),
	rule(`\bwomen'?s\b`, "de mujer"),
	rule(`\bmen'?s\b`, "de hombre"),
	rule(`\bcotton\b`, "algodón"),
	rule(`\bslim fit\b`, "entallada"),
}

// DefaultCategoryLabels maps catalog category keys to display labels.
var DefaultCategoryLabels = map[string]string{
	"electronics":      "Electrónica",
	"jewelery":         "Joyería",
	"men's clothing":   "Ropa de hombre",
	"women's clothing": "Ropa de mujer",
}

// A Translator localizes catalog records. It is stateless after construction.
type Translator struct {
	rules  []TitleRule
	labels map[string]string
}

func NewTranslator(rules []TitleRule, labels map[string]string) Translator {
	return Translator{rules: rules, labels: labels}
}

func DefaultTranslator() Translator {
	return NewTranslator(DefaultTitleRules, DefaultCategoryLabels)
}

func (t Translator) Translate(p domain.Product) domain.LocalizedProduct {
	lp := domain.LocalizedProduct{Product: p}
	lp.Title = t.title(p)
	if p.DescriptionEs != "" {
		lp.Description = p.DescriptionEs
	}
	lp.CategoryEs = t.CategoryLabel(p.Category)
	return lp
}

func (t Translator) TranslateAll(ps []domain.Product) []domain.LocalizedProduct {
	out := make([]domain.LocalizedProduct, len(ps))
	for i, p := range ps {
		out[i] = t.Translate(p)
	}
	return out
}

// CategoryLabel falls back to the raw key for unknown categories.
func (t Translator) CategoryLabel(category string) string {
	if label, ok := t.labels[category]; ok {
		return label
	}
	return category
}

func (t Translator) title(p domain.Product) string {
	if p.TitleEs != "" {
		return p.TitleEs
	}
	title := p.Title
	for _, r := range t.rules {
		title = replaceFirst(r.Pattern, title, r.Replace)
	}
	return title
}

func replaceFirst(re *regexp.Regexp, s, repl string) string {
	loc := re.FindStringIndex(s)
	if loc == nil {
		return s
	}
	return s[:loc[0]] + repl + s[loc[1]:]
}
