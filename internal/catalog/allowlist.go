// Package catalog holds the curated static data that drives the
// pipeline: the allow-list of legitimate cocktail names, the junk
// patterns, and the content lookup tables.
package catalog

import "regexp"

// Entries are matched against normalized (lowercase, punctuation
// stripped) names, so entries that carry punctuation never match and
// act as documentation of the intended drink. Duplicates across groups
// are harmless, the set is built once at init.
var legitimateNames = []string{
	// IBA official cocktails
	"alexander", "americano", "aviation", "b-52", "bellini", "bijou", "bramble",
	"caipirinha", "casino", "clover club", "cosmopolitan", "cuba libre", "daiquiri",
	"dry martini", "espresso martini", "french 75", "french connection", "gimlet",
	"gin fizz", "godfather", "godmother", "grasshopper", "greyhound", "harvey wallbanger",
	"hemingway special", "horse's neck", "irish coffee", "john collins", "long island iced tea",
	"mai tai", "manhattan", "margarita", "martini", "mimosa", "mint julep", "mojito",
	"moscow mule", "negroni", "old fashioned", "paloma", "pina colada", "pisco sour",
	"planter's punch", "porto flip", "ramos gin fizz", "rob roy", "rusty nail",
	"sazerac", "screwdriver", "sea breeze", "sex on the beach", "sidecar", "singapore sling",
	"tequila sunrise", "tom collins", "vesper", "whiskey sour", "white russian",

	// Classic pre-Prohibition and Savoy cocktails
	"blood and sand", "boulevardier", "brandy alexander", "bronx", "brooklyn",
	"casino royale", "corpse reviver", "last word", "martinez", "monkey gland",
	"pegu club", "pink lady", "ramos fizz", "vieux carré", "ward eight",
	"widow's kiss", "army & navy", "bamboo", "hanky panky", "income tax",

	// Modern classics (post-1980)
	"aperol spritz", "dark 'n' stormy", "french martini",
	"tommy's margarita", "penicillin", "naked and famous", "paper plane",
	"suffering bastard", "ti' punch", "jungle bird", "chartreuse swizzle",

	// Tiki and tropical
	"zombie", "painkiller", "navy grog", "fog cutter", "pearl diver",
	"saturn", "three dots and a dash", "missionary's downfall", "rum runner",
	"bahama mama", "blue hawaiian", "chi chi", "hurricane", "jet pilot",
	"piña colada", "scorpion",

	// Contemporary classics and well-documented modern drinks
	"elderflower collins", "gold rush", "oaxaca old fashioned", "division bell",
	"death flip", "greenpoint", "little italy", "red hook", "trident",
	"bitter giuseppe", "black manhattan", "bobby burns", "brandy crusta",
	"breakfast martini", "benton's old fashioned", "chrysanthemum", "improved whiskey cocktail",

	// Additional legitimate historical and regional cocktails
	"adonis", "affinity", "algonquin", "artillery", "barracuda",
	"blinker", "boston sour", "buck's fizz", "caipirissima",
	"champagne cocktail", "cornell", "death in the afternoon", "derby",
	"diamond fizz", "dubonnet cocktail", "el presidente", "english rose cocktail",
	"fiance", "fitzgerald", "flamingo", "french negroni", "frose",
	"frozen daiquiri", "gibson", "gin and tonic", "gin daisy", "gin rickey",
	"gin sour", "gluehwein", "golden dream", "hemingway daiquiri", "hot toddy",
	"improved cognac cocktail", "jack rose", "japanese cocktail", "kir",
	"kir royale", "lemondrop", "lynchburg lemonade", "mary pickford",
	"mexican firing squad", "millionaire cocktail", "negroni sbagliato",
	"old cuban", "paradise", "pimm's cup", "port and starboard",
	"remember the maine", "scofflaw", "seelbach", "sherry cobbler",
	"sloe gin fizz", "smithsonian", "southside", "stinger", "toronto",
	"twentieth century", "whiskey smash", "white lady", "yellow bird",

	// Additional valid lesser-known cocktails
	"boothby", "boxcar", "chicago fizz",
	"corn n oil", "dark caipirinha", "dirty martini", "dragonfly", "dry rob roy",
	"duchamp's punch", "english highball", "fancy free", "figgy thyme", "flying dutchman",
	"flying scotchman", "frisco sour", "frozen mint daiquiri", "frozen pineapple daiquiri",
	"gagliardo", "gin and it", "gin cooler", "gin lemon",
	"gin sling", "gin smash", "gin squirt", "gin swizzle", "gin toddy", "gin tonic",
	"grass skirt", "grim reaper", "pink gin", "sherry flip", "stone sour",
	"amaretto sour", "apple martini", "b-53", "between the sheets", "black russian",
	"blackthorn", "blue lagoon", "bluebird", "bora bora", "boomerang", "brigadier",
	"buccaneer", "bumble bee", "cherry bomb", "cuba libra", "dirty nipple",
	"flaming lamborghini", "freddy kruger", "foxy lady", "funk and soul",
	"godchild", "grand blue", "godson", "kamikaze", "kiss on the lips",
	"lemon drop", "lion's tail", "long vodka", "madras",
	"melon ball", "metropolitan", "midori sour", "mother's milk", "mudslide",
	"new york sour", "nuclear daiquiri", "orange push-up", "orgasm", "passion fruit martini",
	"pink panther", "purple haze", "radioactive long island iced tea",
	"red snapper", "royal gin fizz", "rum and coke", "rum punch", "rum swizzle",
	"sake bomb", "salty dog", "savoy tango", "screaming orgasm", "slippery nipple",
	"snow ball", "southern comfort manhattan", "southern peach", "strawberry daiquiri",
	"sweet martini", "tequila slammer", "tipperary", "tokyo iced tea",
	"turf club", "valencia", "vampire", "vodka martini", "vodka tonic", "woo woo",
	"acapulco", "affair", "allegheny", "almeria", "applecar", "avalon", "balmoral",
	"cafe savoy", "casa blanca", "cherry rum", "chocolate milk",
}

// Junk patterns match at the start of the normalized name. The list is
// a boolean OR; order only affects which pattern short-circuits first.
var junkPatterns = []*regexp.Regexp{
	regexp.MustCompile(`^[a-z]$`), // single letters
	regexp.MustCompile(`^a1$`), regexp.MustCompile(`^abc$`), regexp.MustCompile(`^ace$`), regexp.MustCompile(`^at&t$`),
	regexp.MustCompile(`^acid$`), regexp.MustCompile(`^adam$`), regexp.MustCompile(`^a\.?\s*j\.?$`),
	regexp.MustCompile(`^abilene$`), regexp.MustCompile(`^addison$`), regexp.MustCompile(`^apello$`), regexp.MustCompile(`^avalanche$`),
	regexp.MustCompile(`^brain\s*fart`), regexp.MustCompile(`^fuzzy\s*asshole`), regexp.MustCompile(`^flaming\s*dr\.?\s*pepper`),
	regexp.MustCompile(`^fahrenheit\s*5000`), regexp.MustCompile(`^big\s*red$`), regexp.MustCompile(`^bible\s*belt`), regexp.MustCompile(`^baby\s*eskimo`),
	regexp.MustCompile(`^bob\s*marley`), regexp.MustCompile(`^bubble\s*gum$`), regexp.MustCompile(`^citrus\s*coke$`), regexp.MustCompile(`^gg$`),
	regexp.MustCompile(`^damned\s*if\s*you\s*do`), regexp.MustCompile(`^egg\s*cream$`), regexp.MustCompile(`^coke\s*and\s*drops`),
	regexp.MustCompile(`^diesel$`), regexp.MustCompile(`^danbooka$`), regexp.MustCompile(`^downshift$`), regexp.MustCompile(`^darkwood\s*sling`),
	regexp.MustCompile(`^flander.*flake`), regexp.MustCompile(`^afterglow$`), regexp.MustCompile(`^addington$`), regexp.MustCompile(`^affair$`),
}

var allowSet = func() map[string]struct{} {
	set := make(map[string]struct{}, len(legitimateNames))
	for _, name := range legitimateNames {
		set[name] = struct{}{}
	}
	return set
}()

// IsAllowed reports whether a normalized name is on the allow-list.
func IsAllowed(normalized string) bool {
	_, ok := allowSet[normalized]
	return ok
}

// IsJunk reports whether a normalized name matches any junk pattern.
func IsJunk(normalized string) bool {
	for _, pattern := range junkPatterns {
		if pattern.MatchString(normalized) {
			return true
		}
	}
	return false
}
