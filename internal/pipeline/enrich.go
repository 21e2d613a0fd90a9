package pipeline

import (
	"fmt"
	"strings"

	"mixwise/internal"
	"mixwise/internal/catalog"
	"mixwise/internal/util"
)

// Enrich derives the full 28-field record from one raw row. It is a
// pure function of the row given the static tables; the only failures
// are a missing id or name.
func Enrich(row internal.RawRecord) (internal.EnrichedRecord, error) {
	id := strings.TrimSpace(row.ID)
	if id == "" {
		return internal.EnrichedRecord{}, fmt.Errorf("missing id")
	}
	name := strings.TrimSpace(row.Name)
	if name == "" {
		return internal.EnrichedRecord{}, fmt.Errorf("missing name")
	}

	spirit := BaseSpirit(name, "")
	category := Category(name)
	short := ShortDescription(name, spirit)

	glass := row.Glass
	if strings.TrimSpace(glass) == "" {
		glass = "Cocktail glass"
	}

	return internal.EnrichedRecord{
		ID:               id,
		Slug:             util.Slugify(name),
		Name:             name,
		ShortDescription: short,
		LongDescription:  LongDescription(short, category),
		SEODescription:   SEODescription(name, spirit),
		BaseSpirit:       spirit,
		CategoryPrimary:  category,
		CategoriesAll:    CategoriesAll(category),
		Tags:             Tags(name, spirit, category),
		ImageURL:         row.ImageURL,
		ImageAlt:         ImageAlt(name),
		Glassware:        catalog.StandardGlassware(glass),
		Garnish:          Garnish(name),
		Technique:        Technique(category, name),
		Difficulty:       Difficulty(name, category),
		FlavorStrength:   FlavorScore(name, AspectStrength),
		FlavorSweetness:  FlavorScore(name, AspectSweetness),
		FlavorTartness:   FlavorScore(name, AspectTartness),
		FlavorBitterness: FlavorScore(name, AspectBitterness),
		FlavorAroma:      FlavorScore(name, AspectAroma),
		FlavorTexture:    FlavorScore(name, AspectTexture),
		Notes:            Notes(name),
		FunFact:          FunFact(name),
		FunFactSource:    FunFactSource(name),
		MetadataJSON:     "{}",
		Ingredients:      Ingredients(name, spirit),
		Instructions:     CleanInstructions(row.Instructions),
	}, nil
}
