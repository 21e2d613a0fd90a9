package pipeline

import (
	"fmt"
	"strings"

	"mixwise/internal/catalog"
)

// Keyword heuristics are ordered (keywords, result) rule lists; the
// first group with a hit wins, so earlier groups break ties.

var baseSpiritRules = []struct {
	spirit   string
	keywords []string
}{
	{"Vodka", []string{"vodka", "russian", "moscow", "bloody mary", "espresso martini", "cosmopolitan"}},
	{"Gin", []string{"gin", "martini", "negroni", "tom collins", "aviation", "gimlet"}},
	{"Rum", []string{"rum", "mojito", "daiquiri", "mai tai", "pina colada", "cuba"}},
	{"Whiskey", []string{"whiskey", "whisky", "bourbon", "rye", "scotch", "manhattan", "old fashioned", "mint julep"}},
	{"Tequila", []string{"tequila", "mezcal", "margarita", "paloma"}},
	{"Brandy", []string{"brandy", "cognac", "sidecar"}},
	{"Champagne", []string{"champagne", "prosecco", "bellini", "mimosa", "french 75"}},
	{"Aperitif", []string{"aperol", "campari", "americano"}},
}

// BaseSpirit infers the spirit from the name, optionally helped by an
// ingredients hint string.
func BaseSpirit(name, ingredientsHint string) string {
	n := strings.ToLower(name)
	hint := strings.ToLower(ingredientsHint)
	for _, rule := range baseSpiritRules {
		for _, kw := range rule.keywords {
			if strings.Contains(n, kw) || (hint != "" && strings.Contains(hint, kw)) {
				return rule.spirit
			}
		}
	}
	return "Spirit"
}

var categoryRules = []struct {
	category string
	keywords []string
}{
	{"Spirit-Forward", []string{"martini", "manhattan", "negroni", "old fashioned", "sazerac"}},
	{"Sour", []string{"sour", "daiquiri", "margarita", "whiskey sour"}},
	{"Highball", []string{"fizz", "collins", "rickey", "highball", "tonic"}},
	{"Tiki", []string{"mai tai", "zombie", "tiki", "hurricane", "painkiller"}},
	{"Sparkling", []string{"spritz", "aperol", "bellini", "mimosa"}},
	{"Shot", []string{"shot", "shooter", "b-52", "kamikaze"}},
}

func Category(name string) string {
	n := strings.ToLower(name)
	for _, rule := range categoryRules {
		if containsAny(n, rule.keywords...) {
			return rule.category
		}
	}
	return "Classic"
}

func ShortDescription(name, baseSpirit string) string {
	if desc, ok := catalog.ShortDescription(name); ok {
		return desc
	}
	return fmt.Sprintf("A %s-based cocktail with balanced flavor and character.", strings.ToLower(baseSpirit))
}

func LongDescription(short, category string) string {
	switch category {
	case "Spirit-Forward":
		return short + " This spirit-forward cocktail highlights the quality of the base spirit with minimal dilution. Served chilled and stirred, it delivers a sophisticated drinking experience. Perfect for sipping slowly and appreciating complexity."
	case "Sour":
		return short + " The sour family balances spirit, citrus, and sweetener in perfect harmony. Shaken vigorously with ice to achieve proper dilution and aeration. A versatile template that has spawned countless variations."
	case "Tiki":
		return short + " Tiki cocktails celebrate the tropical flavors and rum-forward recipes pioneered in mid-century tiki bars. Complex, layered, and often featuring multiple rums and exotic ingredients. Best enjoyed with crushed ice and elaborate garnishes."
	default:
		return short + " A well-balanced cocktail that showcases technique and quality ingredients. Versatile enough for any occasion while maintaining its distinctive character."
	}
}

func SEODescription(name, baseSpirit string) string {
	return fmt.Sprintf("Learn how to make a %s cocktail with %s, citrus, and premium ingredients. Classic recipe with expert mixing technique.", name, strings.ToLower(baseSpirit))
}

func CategoriesAll(primary string) string {
	categories := []string{primary}
	if primary != "Classic" {
		categories = append(categories, "Classic")
	}
	return strings.Join(categories, "|")
}

func Tags(name, baseSpirit, category string) string {
	tags := []string{
		strings.ToLower(baseSpirit),
		strings.ReplaceAll(strings.ToLower(category), " ", "-"),
		"cocktail",
	}

	n := strings.ToLower(name)
	if containsAny(n, "martini", "manhattan", "old fashioned") {
		tags = append(tags, "classic")
	}
	if containsAny(n, "sour", "fizz", "collins") {
		tags = append(tags, "refreshing")
	}
	if containsAny(n, "frozen", "blended") {
		tags = append(tags, "frozen")
	}

	if len(tags) > 6 {
		tags = tags[:6]
	}
	return strings.Join(tags, "|")
}

func ImageAlt(name string) string {
	return fmt.Sprintf("A beautifully crafted %s cocktail in proper glassware with garnish", name)
}

var garnishRules = []struct {
	keyword string
	garnish string
}{
	{"martini", "Lemon twist or olive"},
	{"manhattan", "Maraschino cherry"},
	{"old fashioned", "Orange peel and cherry"},
	{"negroni", "Orange peel"},
	{"margarita", "Lime wheel and salt rim"},
	{"mojito", "Mint sprig and lime wheel"},
	{"daiquiri", "Lime wheel"},
}

func Garnish(name string) string {
	n := strings.ToLower(name)
	for _, rule := range garnishRules {
		if strings.Contains(n, rule.keyword) {
			return rule.garnish
		}
	}
	return "Lemon twist"
}

func Technique(category, name string) string {
	n := strings.ToLower(name)
	switch {
	case category == "Spirit-Forward" || strings.Contains(n, "martini") || strings.Contains(n, "manhattan"):
		return "Stir"
	case category == "Sour" || strings.Contains(n, "sour") || strings.Contains(n, "daiquiri"):
		return "Shake"
	case category == "Highball" || strings.Contains(n, "fizz") || strings.Contains(n, "collins"):
		return "Build"
	case containsAny(n, "frozen", "blended"):
		return "Blend"
	case containsAny(n, "julep", "smash"):
		return "Muddle"
	default:
		return "Shake"
	}
}

func Difficulty(name, category string) string {
	n := strings.ToLower(name)
	switch {
	case containsAny(n, "tonic", "soda", "highball", "screwdriver"):
		return "Easy"
	case containsAny(n, "ramos", "flip", "tiki", "zombie", "blended"):
		return "Advanced"
	case category == "Shot":
		return "Easy"
	default:
		return "Intermediate"
	}
}

var notesRules = []struct {
	keyword string
	note    string
}{
	{"martini", "Stir with ice for 30 seconds to achieve proper dilution. The colder, the better."},
	{"old fashioned", "Use a large ice cube to minimize dilution. Express the orange peel over the drink before garnishing."},
	{"sour", "Dry shake with egg white first, then add ice and shake again for proper foam."},
	{"daiquiri", "Use fresh lime juice and quality rum. Shake hard with ice until well-chilled."},
}

func Notes(name string) string {
	n := strings.ToLower(name)
	for _, rule := range notesRules {
		if strings.Contains(n, rule.keyword) {
			return rule.note
		}
	}
	return "Use quality ingredients and proper technique for best results."
}

func FunFact(name string) string {
	if fact, ok := catalog.FunFact(name); ok {
		return fact
	}
	return fmt.Sprintf("The %s is a classic cocktail with a rich history in cocktail culture.", name)
}

func FunFactSource(name string) string {
	if source, ok := catalog.FunFactSource(name); ok {
		return source
	}
	return "Cocktail historical references"
}

func Ingredients(name, baseSpirit string) string {
	if recipe, ok := catalog.Recipe(name); ok {
		return recipe
	}
	return fmt.Sprintf("2 oz %s|1 oz citrus juice|0.75 oz simple syrup", strings.ToLower(baseSpirit))
}

func containsAny(haystack string, keywords ...string) bool {
	for _, kw := range keywords {
		if strings.Contains(haystack, kw) {
			return true
		}
	}
	return false
}
