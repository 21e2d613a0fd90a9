package catalog

import (
	"strings"

	"mixwise/internal/util"
)

// Curated content keyed by display name; lookups go through a
// normalized-name index built at init so "Piña Colada" vs "pina colada"
// style mismatches behave the same way everywhere.

var shortDescriptions = map[string]string{
	"Martini":          "A classic gin and vermouth cocktail, stirred and elegant.",
	"Manhattan":        "A whiskey and vermouth classic with aromatic bitters.",
	"Negroni":          "An Italian aperitif with equal parts gin, Campari, and sweet vermouth.",
	"Old Fashioned":    "A timeless whiskey cocktail with bitters, sugar, and an orange twist.",
	"Daiquiri":         "A refreshing Cuban classic with rum, lime juice, and simple syrup.",
	"Margarita":        "Tequila, lime, and orange liqueur shaken with salt on the rim.",
	"Mojito":           "A minty, refreshing rum cocktail with lime and soda water.",
	"Cosmopolitan":     "Vodka, cranberry, and lime in a chic pink cocktail.",
	"Espresso Martini": "A caffeinated vodka cocktail with coffee liqueur and fresh espresso.",
	"Whiskey Sour":     "Whiskey, lemon juice, and simple syrup with an optional egg white.",
	"Tom Collins":      "Gin, lemon, simple syrup, and soda in a tall refreshing glass.",
	"Aviation":         "A floral gin cocktail with maraschino and crème de violette.",
	"Gimlet":           "A sharp and refreshing gin and lime cocktail.",
	"Mai Tai":          "A tiki classic with rum, lime, orgeat, and orange curaçao.",
	"Pina Colada":      "A creamy tropical blend of rum, pineapple, and coconut.",
	"Moscow Mule":      "Vodka, ginger beer, and lime served in a copper mug.",
	"Bellini":          "Prosecco and white peach purée in a Champagne flute.",
	"Mimosa":           "Champagne and orange juice for a classic brunch cocktail.",
	"Aperol Spritz":    "A bittersweet Italian aperitif with Prosecco and soda.",
	"Americano":        "Campari and sweet vermouth topped with soda water.",
	"Caipirinha":       "Brazil's national cocktail with cachaça, lime, and sugar.",
	"French 75":        "Gin, lemon, and sugar topped with Champagne.",
	"Sazerac":          "A New Orleans classic with rye whiskey and absinthe rinse.",
	"Boulevardier":     "A whiskey-based Negroni with bourbon replacing gin.",
	"Penicillin":       "A modern classic with scotch, honey, ginger, and Islay float.",
	"Paper Plane":      "Equal parts bourbon, Aperol, Amaro, and lemon juice.",
	"Last Word":        "Gin, green Chartreuse, maraschino, and lime in equal measure.",
	"Clover Club":      "A pre-Prohibition gin sour with raspberry and egg white.",
	"Bramble":          "Gin, lemon, sugar, and blackberry liqueur over crushed ice.",
	"Corpse Reviver":   "A potent gin cocktail with Lillet, Cointreau, lemon, and absinthe.",
}

var funFacts = map[string]string{
	"Martini":          "The Martini has been a symbol of sophistication since the late 1800s. Its exact origins remain disputed, with both Martinez, California and New York City claiming invention.",
	"Manhattan":        "Created in the 1870s at the Manhattan Club in New York City. It quickly became the most famous whiskey cocktail in America.",
	"Old Fashioned":    "The Old Fashioned is widely considered the original cocktail template. The term \"cocktail\" originally meant spirit, sugar, water, and bitters.",
	"Daiquiri":         "Named after a beach near Santiago de Cuba, the Daiquiri was popularized by Ernest Hemingway, who favored a version with grapefruit and no sugar.",
	"Negroni":          "Created in Florence in 1919 when Count Camillo Negroni asked for an Americano with gin instead of soda water.",
	"Margarita":        "The Margarita's true origin is disputed, with dozens of bartenders claiming credit. It likely evolved from the Daisy family of cocktails.",
	"Mojito":           "The Mojito has roots in 16th-century Cuba. Ernest Hemingway famously drank them at La Bodeguita del Medio in Havana.",
	"Aviation":         "Created by Hugo Ensslin, head bartender at the Hotel Wallick in New York, around 1916. The crème de violette gives it a distinctive sky-blue color.",
	"Sazerac":          "Recognized as the official cocktail of New Orleans. Originally made with cognac, it switched to rye whiskey during the phylloxera epidemic.",
	"French 75":        "Named after the powerful French 75mm field gun used in WWI. The cocktail packs a similar punch.",
	"Espresso Martini": "Invented in 1983 by London bartender Dick Bradsell when a customer requested a drink to \"wake me up and f*** me up.\"",
	"Last Word":        "Created at the Detroit Athletic Club during Prohibition. It disappeared for decades before being rediscovered and becoming a modern classic.",
	"Corpse Reviver":   "Part of a family of \"morning after\" cocktails designed as hangover cures. This version appears in the Savoy Cocktail Book with the warning: \"Four of these taken in swift succession will unrevive the corpse again.\"",
	"Penicillin":       "Created in 2005 by Sam Ross at Milk & Honey in New York. It has become the most influential cocktail of the 21st century.",
	"Paper Plane":      "Created in 2007 by Sam Ross, named after the M.I.A. song \"Paper Planes.\" It follows the Last Word template with equal parts of four ingredients.",
}

var funFactSources = map[string]string{
	"Martini":          "Wondrich, Imbibe!",
	"Manhattan":        "Historical cocktail records",
	"Old Fashioned":    "Wondrich, Imbibe!",
	"Daiquiri":         "Hemingway archives",
	"Negroni":          "Camillo Negroni family records",
	"Sazerac":          "New Orleans cocktail history",
	"French 75":        "Savoy Cocktail Book, 1930",
	"Espresso Martini": "Dick Bradsell interview archives",
	"Last Word":        "Ted Saucier, Bottoms Up, 1951",
	"Corpse Reviver":   "Savoy Cocktail Book, 1930",
	"Penicillin":       "Sam Ross, Milk & Honey NYC",
	"Paper Plane":      "Sam Ross, 2007",
	"Aviation":         "Hugo Ensslin, Recipes for Mixed Drinks, 1916",
	"Mojito":           "Hemingway, Cuban cocktail culture",
}

var recipes = map[string]string{
	"Martini":          "2 oz gin|0.5 oz dry vermouth|Lemon twist or olive",
	"Dry Martini":      "2.5 oz gin|0.5 oz dry vermouth|Lemon twist",
	"Manhattan":        "2 oz rye whiskey|1 oz sweet vermouth|2 dashes Angostura bitters|Maraschino cherry",
	"Old Fashioned":    "2 oz bourbon|0.25 oz simple syrup|3 dashes Angostura bitters|Orange peel",
	"Negroni":          "1 oz gin|1 oz Campari|1 oz sweet vermouth|Orange peel",
	"Daiquiri":         "2 oz white rum|1 oz fresh lime juice|0.75 oz simple syrup",
	"Margarita":        "2 oz tequila blanco|1 oz fresh lime juice|0.75 oz orange liqueur|Salt for rim",
	"Mojito":           "2 oz white rum|1 oz fresh lime juice|0.75 oz simple syrup|8 mint leaves|Soda water",
	"Cosmopolitan":     "1.5 oz vodka|1 oz cranberry juice|0.5 oz fresh lime juice|0.5 oz orange liqueur",
	"Whiskey Sour":     "2 oz bourbon|0.75 oz fresh lemon juice|0.75 oz simple syrup|1 egg white",
	"Espresso Martini": "2 oz vodka|1 oz coffee liqueur|1 oz fresh espresso|0.5 oz simple syrup",
	"Gimlet":           "2 oz gin|0.75 oz fresh lime juice|0.75 oz simple syrup",
	"Tom Collins":      "2 oz gin|1 oz fresh lemon juice|0.5 oz simple syrup|Soda water",
	"Aviation":         "2 oz gin|0.5 oz maraschino liqueur|0.25 oz crème de violette|0.75 oz fresh lemon juice",
	"French 75":        "1 oz gin|0.5 oz fresh lemon juice|0.5 oz simple syrup|3 oz Champagne",
	"Mai Tai":          "2 oz aged rum|0.75 oz fresh lime juice|0.5 oz orange curaçao|0.5 oz orgeat|0.25 oz simple syrup",
	"Moscow Mule":      "2 oz vodka|0.5 oz fresh lime juice|4 oz ginger beer",
	"Aperol Spritz":    "3 oz Prosecco|2 oz Aperol|1 oz soda water|Orange slice",
	"Americano":        "1.5 oz Campari|1.5 oz sweet vermouth|Soda water|Orange slice",
	"Caipirinha":       "2 oz cachaça|0.5 lime cut into wedges|2 tsp sugar",
	"Sazerac":          "2 oz rye whiskey|0.25 oz simple syrup|3 dashes Peychaud's bitters|Absinthe rinse|Lemon peel",
	"Boulevardier":     "1.5 oz bourbon|1 oz Campari|1 oz sweet vermouth|Orange peel",
	"Last Word":        "0.75 oz gin|0.75 oz green Chartreuse|0.75 oz maraschino liqueur|0.75 oz fresh lime juice",
	"Paper Plane":      "0.75 oz bourbon|0.75 oz Aperol|0.75 oz Amaro Nonino|0.75 oz fresh lemon juice",
	"Corpse Reviver":   "0.75 oz gin|0.75 oz Lillet Blanc|0.75 oz Cointreau|0.75 oz fresh lemon juice|Absinthe rinse",
	"Clover Club":      "2 oz gin|0.75 oz fresh lemon juice|0.5 oz raspberry syrup|1 egg white",
	"Bramble":          "2 oz gin|1 oz fresh lemon juice|0.5 oz simple syrup|0.5 oz crème de mûre",
	"Bellini":          "2 oz white peach purée|4 oz Prosecco",
	"Mimosa":           "3 oz Champagne|3 oz fresh orange juice",
	"Pina Colada":      "2 oz white rum|1.5 oz cream of coconut|1.5 oz pineapple juice|0.5 oz fresh lime juice",
	"Mint Julep":       "2.5 oz bourbon|0.5 oz simple syrup|8 mint leaves",
	"Singapore Sling":  "1.5 oz gin|0.5 oz cherry liqueur|0.25 oz Cointreau|0.25 oz Bénédictine|4 oz pineapple juice|0.5 oz fresh lime juice|Dash Angostura bitters",
	"Sidecar":          "2 oz cognac|1 oz orange liqueur|1 oz fresh lemon juice",
	"Vesper":           "3 oz gin|1 oz vodka|0.5 oz Lillet Blanc|Lemon twist",
	"Gin Fizz":         "2 oz gin|1 oz fresh lemon juice|0.75 oz simple syrup|Soda water",
	"Gin and Tonic":    "2 oz gin|4 oz tonic water|Lime wedge",
	"Cuba Libre":       "2 oz white rum|4 oz Coca-Cola|0.5 oz fresh lime juice|Lime wedge",
	"Tequila Sunrise":  "2 oz tequila|4 oz orange juice|0.5 oz grenadine",
	"Paloma":           "2 oz tequila|0.5 oz fresh lime juice|4 oz grapefruit soda|Salt for rim",
	"Irish Coffee":     "1.5 oz Irish whiskey|4 oz hot coffee|1 oz heavy cream|1 tsp brown sugar",
	"White Russian":    "2 oz vodka|1 oz coffee liqueur|1 oz heavy cream",
	"Black Russian":    "2 oz vodka|1 oz coffee liqueur",
	"Screwdriver":      "2 oz vodka|4 oz fresh orange juice",
	"Bloody Mary":      "2 oz vodka|4 oz tomato juice|0.5 oz fresh lemon juice|Worcestershire sauce|Hot sauce|Salt|Pepper|Celery salt",
	"Rob Roy":          "2 oz scotch|1 oz sweet vermouth|2 dashes Angostura bitters",
	"Rusty Nail":       "1.5 oz scotch|0.75 oz Drambuie",
	"Godfather":        "1.5 oz scotch|0.75 oz amaretto",
	"Godmother":        "1.5 oz vodka|0.75 oz amaretto",
	"B-52":             "0.5 oz Kahlúa|0.5 oz Baileys Irish Cream|0.5 oz Grand Marnier",
	"Grasshopper":      "1 oz crème de menthe|1 oz crème de cacao|1 oz heavy cream",
	"French Martini":   "2 oz vodka|0.5 oz Chambord|1.5 oz pineapple juice",
	"Lemon Drop":       "2 oz vodka|0.75 oz fresh lemon juice|0.5 oz simple syrup|0.25 oz orange liqueur|Sugar rim",
}

// Glassware standardization is substring matching in declaration order,
// so the pairs stay a slice rather than a map.
var glasswarePairs = []struct {
	match    string
	standard string
}{
	{"cocktail glass", "Coupe Glass"},
	{"martini glass", "Martini Glass"},
	{"old-fashioned glass", "Old Fashioned Glass"},
	{"highball glass", "Highball Glass"},
	{"collins glass", "Collins Glass"},
	{"shot glass", "Shot Glass"},
	{"champagne flute", "Champagne Flute"},
	{"coupe glass", "Coupe Glass"},
	{"rocks glass", "Old Fashioned Glass"},
	{"whiskey sour glass", "Coupe Glass"},
}

var (
	shortDescIndex = normalizeKeys(shortDescriptions)
	funFactIndex   = normalizeKeys(funFacts)
	factSrcIndex   = normalizeKeys(funFactSources)
	recipeIndex    = normalizeKeys(recipes)
)

func normalizeKeys(table map[string]string) map[string]string {
	out := make(map[string]string, len(table))
	for key, value := range table {
		out[util.NormalizeName(key)] = value
	}
	return out
}

func ShortDescription(name string) (string, bool) {
	v, ok := shortDescIndex[util.NormalizeName(name)]
	return v, ok
}

func FunFact(name string) (string, bool) {
	v, ok := funFactIndex[util.NormalizeName(name)]
	return v, ok
}

func FunFactSource(name string) (string, bool) {
	v, ok := factSrcIndex[util.NormalizeName(name)]
	return v, ok
}

func Recipe(name string) (string, bool) {
	v, ok := recipeIndex[util.NormalizeName(name)]
	return v, ok
}

// StandardGlassware maps a raw glass description onto the fixed
// glassware vocabulary, defaulting to a coupe.
func StandardGlassware(raw string) string {
	glass := strings.ToLower(strings.TrimSpace(raw))
	for _, pair := range glasswarePairs {
		if strings.Contains(glass, pair.match) {
			return pair.standard
		}
	}
	return "Coupe Glass"
}
