package storage

import (
	"database/sql"
	"encoding/json"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"mixwise/internal"
)

type DB struct {
	conn *sql.DB
}

func Open(path string) (*DB, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}

	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	if _, err := conn.Exec(`PRAGMA journal_mode = WAL;`); err != nil {
		_ = conn.Close()
		return nil, err
	}

	db := &DB{conn: conn}
	if err := db.init(); err != nil {
		_ = conn.Close()
		return nil, err
	}

	return db, nil
}

func (d *DB) Close() error {
	return d.conn.Close()
}

func (d *DB) init() error {
	schema := `
CREATE TABLE IF NOT EXISTS cocktails (
  id TEXT PRIMARY KEY,
  slug TEXT NOT NULL,
  name TEXT NOT NULL,
  short_description TEXT,
  long_description TEXT,
  seo_description TEXT,
  base_spirit TEXT,
  category_primary TEXT,
  categories_all TEXT,
  tags TEXT,
  image_url TEXT,
  image_alt TEXT,
  glassware TEXT,
  garnish TEXT,
  technique TEXT,
  difficulty TEXT,
  flavor_strength INTEGER,
  flavor_sweetness INTEGER,
  flavor_tartness INTEGER,
  flavor_bitterness INTEGER,
  flavor_aroma INTEGER,
  flavor_texture INTEGER,
  notes TEXT,
  fun_fact TEXT,
  fun_fact_source TEXT,
  metadata_json TEXT,
  ingredients TEXT,
  instructions TEXT,
  loadedAt TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_cocktails_slug ON cocktails(slug);
CREATE INDEX IF NOT EXISTS idx_cocktails_base_spirit ON cocktails(base_spirit);

CREATE TABLE IF NOT EXISTS runs (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  traceId TEXT NOT NULL,
  inputPath TEXT,
  timingsJson TEXT NOT NULL,
  countsJson TEXT NOT NULL,
  createdAt TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP
);
`

	_, err := d.conn.Exec(schema)
	return err
}

func (d *DB) UpsertCocktails(rows []internal.EnrichedRecord) error {
	tx, err := d.conn.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.Prepare(`
INSERT INTO cocktails (
  id, slug, name, short_description, long_description, seo_description,
  base_spirit, category_primary, categories_all, tags, image_url, image_alt,
  glassware, garnish, technique, difficulty, flavor_strength, flavor_sweetness,
  flavor_tartness, flavor_bitterness, flavor_aroma, flavor_texture, notes,
  fun_fact, fun_fact_source, metadata_json, ingredients, instructions, loadedAt
) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP)
ON CONFLICT(id) DO UPDATE SET
  slug=excluded.slug,
  name=excluded.name,
  short_description=excluded.short_description,
  long_description=excluded.long_description,
  seo_description=excluded.seo_description,
  base_spirit=excluded.base_spirit,
  category_primary=excluded.category_primary,
  categories_all=excluded.categories_all,
  tags=excluded.tags,
  image_url=excluded.image_url,
  image_alt=excluded.image_alt,
  glassware=excluded.glassware,
  garnish=excluded.garnish,
  technique=excluded.technique,
  difficulty=excluded.difficulty,
  flavor_strength=excluded.flavor_strength,
  flavor_sweetness=excluded.flavor_sweetness,
  flavor_tartness=excluded.flavor_tartness,
  flavor_bitterness=excluded.flavor_bitterness,
  flavor_aroma=excluded.flavor_aroma,
  flavor_texture=excluded.flavor_texture,
  notes=excluded.notes,
  fun_fact=excluded.fun_fact,
  fun_fact_source=excluded.fun_fact_source,
  metadata_json=excluded.metadata_json,
  ingredients=excluded.ingredients,
  instructions=excluded.instructions,
  loadedAt=CURRENT_TIMESTAMP
`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, r := range rows {
		if _, err := stmt.Exec(
			r.ID, r.Slug, r.Name, r.ShortDescription, r.LongDescription, r.SEODescription,
			r.BaseSpirit, r.CategoryPrimary, r.CategoriesAll, r.Tags, r.ImageURL, r.ImageAlt,
			r.Glassware, r.Garnish, r.Technique, r.Difficulty, r.FlavorStrength, r.FlavorSweetness,
			r.FlavorTartness, r.FlavorBitterness, r.FlavorAroma, r.FlavorTexture, r.Notes,
			r.FunFact, r.FunFactSource, r.MetadataJSON, r.Ingredients, r.Instructions,
		); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (d *DB) CocktailCount() (int, error) {
	var count int
	err := d.conn.QueryRow(`SELECT COUNT(*) FROM cocktails`).Scan(&count)
	return count, err
}

func (d *DB) InsertRun(traceID, inputPath string, timings map[string]float64, counts map[string]int) error {
	timingsJSON, _ := json.Marshal(timings)
	countsJSON, _ := json.Marshal(counts)
	_, err := d.conn.Exec(`INSERT INTO runs (traceId, inputPath, timingsJson, countsJson) VALUES (?, ?, ?, ?)`,
		traceID, inputPath, string(timingsJSON), string(countsJSON))
	return err
}
