package internal

// RawRecord is one row of the source dataset. Only ID and Name are
// guaranteed; the remaining columns may be blank depending on the export.
type RawRecord struct {
	ID           string
	Name         string
	ImageURL     string
	Glass        string
	Instructions string
}

// EnrichedRecord is the fixed 28-column output schema. Multi-valued
// fields (CategoriesAll, Tags, Ingredients) are pipe-joined strings.
type EnrichedRecord struct {
	ID               string
	Slug             string
	Name             string
	ShortDescription string
	LongDescription  string
	SEODescription   string
	BaseSpirit       string
	CategoryPrimary  string
	CategoriesAll    string
	Tags             string
	ImageURL         string
	ImageAlt         string
	Glassware        string
	Garnish          string
	Technique        string
	Difficulty       string
	FlavorStrength   int
	FlavorSweetness  int
	FlavorTartness   int
	FlavorBitterness int
	FlavorAroma      int
	FlavorTexture    int
	Notes            string
	FunFact          string
	FunFactSource    string
	MetadataJSON     string
	Ingredients      string
	Instructions     string
}

type SlugRename struct {
	From string
	To   string
	ID   string
}

// RunSummary holds the counters one enrichment run reports. Removed
// names keep input order for the summary preview.
type RunSummary struct {
	Loaded       int
	Legitimate   int
	Enriched     int
	RemovedNames []string
	Renames      []SlugRename
}

func (s RunSummary) Removed() int {
	return len(s.RemovedNames)
}
