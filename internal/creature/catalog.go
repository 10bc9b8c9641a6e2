package creature

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	getter "github.com/hashicorp/go-getter"
	"golang.org/x/text/cases"

	"github.com/osse101/PackSim_Go/internal/domain"
	"github.com/osse101/PackSim_Go/internal/logger"
	"github.com/osse101/PackSim_Go/internal/utils"
	"github.com/osse101/PackSim_Go/internal/validation"
)

// catalogFile is the on-disk layout of configs/catalog.json.
type catalogFile struct {
	Version   string                `json:"version"`
	Creatures []domain.CatalogEntry `json:"creatures"`
}

// Catalog is the fixed local creature list used by the catalog variant.
// It is read-only after construction.
type Catalog struct {
	entries []domain.CatalogEntry
	byID    map[int]int
	byName  map[string]int
}

// defaultEntries is the built-in four-creature loot box.
var defaultEntries = []domain.CatalogEntry{
	{ID: 1, Name: "Flameling", Image: "/images/flameling.jpg", Types: []string{"fire"}, Rarity: domain.RarityCommon},
	{ID: 2, Name: "Aquanix", Image: "/images/aquanix.jpg", Types: []string{"water"}, Rarity: domain.RarityRare},
	{ID: 3, Name: "Voltazor", Image: "/images/voltazor.jpg", Types: []string{"electric"}, Rarity: domain.RarityEpic},
	{ID: 4, Name: "Mystarion", Image: "/images/mystarion.jpg", Types: []string{"psychic"}, Rarity: domain.RarityLegendary},
}

// DefaultCatalog returns the built-in catalog.
func DefaultCatalog() *Catalog {
	c, err := NewCatalog(defaultEntries)
	if err != nil {
		panic(err) // built-in data is static
	}
	return c
}

// NewCatalog validates entries and indexes them by id and folded name.
func NewCatalog(entries []domain.CatalogEntry) (*Catalog, error) {
	if len(entries) == 0 {
		return nil, domain.ErrEmptyCatalog
	}

	fold := cases.Fold()
	c := &Catalog{
		entries: make([]domain.CatalogEntry, len(entries)),
		byID:    make(map[int]int, len(entries)),
		byName:  make(map[string]int, len(entries)),
	}
	copy(c.entries, entries)

	for i, e := range c.entries {
		if e.ID <= 0 || e.Name == "" {
			return nil, fmt.Errorf("%s: entry %d needs an id and a name", ErrContextInvalidCatalog, i)
		}
		if !e.Rarity.IsValid() {
			return nil, fmt.Errorf("%s: %w: %q on %s", ErrContextInvalidCatalog, domain.ErrInvalidRarity, e.Rarity, e.Name)
		}
		if _, dup := c.byID[e.ID]; dup {
			return nil, fmt.Errorf("%s: duplicate id %d", ErrContextInvalidCatalog, e.ID)
		}
		c.byID[e.ID] = i
		c.byName[fold.String(e.Name)] = i
	}
	return c, nil
}

// LoadCatalog loads the catalog from src.
//
// An empty src yields the built-in catalog. A plain path is read directly; a
// missing file falls back to the built-in catalog. Anything go-getter
// understands (https://, s3::, git::...) is first downloaded into workDir.
func LoadCatalog(ctx context.Context, src, workDir string) (*Catalog, error) {
	log := logger.FromContext(ctx)

	if src == "" {
		return DefaultCatalog(), nil
	}

	path := src
	if isRemote(src) {
		log.Info(LogMsgCatalogFetching, LogFieldSource, src)
		dst := filepath.Join(workDir, "catalog.json")
		if err := os.MkdirAll(workDir, 0755); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrContextFetchCatalog, err)
		}
		client := &getter.Client{
			Ctx:  ctx,
			Src:  src,
			Dst:  dst,
			Mode: getter.ClientModeFile,
		}
		if err := client.Get(); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrContextFetchCatalog, err)
		}
		path = dst
	} else if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		log.Warn(LogMsgCatalogNotOnDisk, LogFieldSource, src)
		return DefaultCatalog(), nil
	}

	if err := validation.NewSchemaValidator().ValidateFile(path, validation.SchemaCatalog); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextInvalidCatalog, err)
	}

	var file catalogFile
	if err := utils.LoadJSON(path, &file); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextLoadCatalog, err)
	}
	c, err := NewCatalog(file.Creatures)
	if err != nil {
		return nil, err
	}

	log.Info(LogMsgCatalogLoaded, LogFieldSource, src, LogFieldEntries, c.Len())
	return c, nil
}

func isRemote(src string) bool {
	return strings.Contains(src, "::") || strings.Contains(src, "://")
}

// Len returns the number of entries.
func (c *Catalog) Len() int {
	return len(c.entries)
}

// At returns the i-th entry.
func (c *Catalog) At(i int) domain.CatalogEntry {
	return c.entries[i]
}

// Entries returns a copy of every entry in catalog order.
func (c *Catalog) Entries() []domain.CatalogEntry {
	out := make([]domain.CatalogEntry, len(c.entries))
	copy(out, c.entries)
	return out
}

// FetchByID implements Source without any network access.
func (c *Catalog) FetchByID(_ context.Context, id int) (*domain.Creature, error) {
	i, ok := c.byID[id]
	if !ok {
		return nil, fmt.Errorf("%w: id %d", domain.ErrCreatureNotFound, id)
	}
	return entryToCreature(c.entries[i]), nil
}

// FetchByName implements Source with case-insensitive matching.
func (c *Catalog) FetchByName(_ context.Context, name string) (*domain.Creature, error) {
	i, ok := c.byName[cases.Fold().String(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrCreatureNotFound, name)
	}
	return entryToCreature(c.entries[i]), nil
}

func entryToCreature(e domain.CatalogEntry) *domain.Creature {
	return &domain.Creature{
		ID:          e.ID,
		Name:        e.Name,
		DisplayName: e.Name,
		Image:       e.Image,
		Types:       append([]string(nil), e.Types...),
	}
}
