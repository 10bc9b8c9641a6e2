package creature

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/osse101/PackSim_Go/internal/domain"
	"github.com/osse101/PackSim_Go/internal/logger"
)

// ClientConfig configures the PokeAPI client.
type ClientConfig struct {
	BaseURL   string
	Timeout   time.Duration
	CacheSize int
	CacheTTL  time.Duration
}

// PokeAPIClient fetches creatures from PokeAPI. Lookups are never retried;
// a failed lookup is reported to the caller, which drops that unit.
type PokeAPIClient struct {
	baseURL    string
	httpClient *http.Client
	cache      *creatureCache
}

// NewPokeAPIClient creates a client with an expiring lookup cache.
func NewPokeAPIClient(cfg ClientConfig) *PokeAPIClient {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = DefaultCacheTTL
	}
	return &PokeAPIClient{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{Timeout: cfg.Timeout},
		cache:      newCreatureCache(cfg.CacheSize, cfg.CacheTTL),
	}
}

// FetchByID implements Source.
func (c *PokeAPIClient) FetchByID(ctx context.Context, id int) (*domain.Creature, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: id %d", domain.ErrInvalidInput, id)
	}
	if cr, ok := c.cache.get(idKey(id)); ok {
		logger.FromContext(ctx).Debug(LogMsgCreatureCacheHit, LogFieldCreatureID, id)
		return cr, nil
	}
	return c.fetch(ctx, strconv.Itoa(id))
}

// FetchByName implements Source.
func (c *PokeAPIClient) FetchByName(ctx context.Context, name string) (*domain.Creature, error) {
	// PokeAPI keys names with dashes, display names use spaces.
	name = strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), " ", "-")
	if name == "" {
		return nil, fmt.Errorf("%w: empty name", domain.ErrInvalidInput)
	}
	if cr, ok := c.cache.get(nameKey(name)); ok {
		logger.FromContext(ctx).Debug(LogMsgCreatureCacheHit, LogFieldName, name)
		return cr, nil
	}
	return c.fetch(ctx, name)
}

// CacheStats returns lookup cache statistics.
func (c *PokeAPIClient) CacheStats() CacheStats {
	return c.cache.stats()
}

// ClearCache drops every cached lookup.
func (c *PokeAPIClient) ClearCache() {
	c.cache.clear()
}

func (c *PokeAPIClient) fetch(ctx context.Context, ref string) (*domain.Creature, error) {
	url := fmt.Sprintf(pokemonPathFormat, c.baseURL, ref)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextBuildRequest, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrSourceUnavailable, ErrContextRequestFailed, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, fmt.Errorf("%w: %s", domain.ErrCreatureNotFound, ref)
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("%w: %s %d", domain.ErrSourceUnavailable, ErrContextUnexpectedCode, resp.StatusCode)
	}

	var body pokemonResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrMalformedCreature, ErrContextDecodeBody, err)
	}

	cr, err := body.toCreature()
	if err != nil {
		return nil, err
	}
	c.cache.set(cr)

	logger.FromContext(ctx).Debug(LogMsgCreatureFetched, LogFieldCreatureID, cr.ID, LogFieldName, cr.Name)
	return cr, nil
}

type namedRef struct {
	Name string `json:"name"`
}

type spriteSet struct {
	FrontDefault string `json:"front_default"`
	FrontShiny   string `json:"front_shiny"`
}

type typeSlot struct {
	Slot int      `json:"slot"`
	Type namedRef `json:"type"`
}

type pokemonResponse struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Height  int    `json:"height"`
	Weight  int    `json:"weight"`
	Sprites struct {
		spriteSet
		Other map[string]spriteSet `json:"other"`
	} `json:"sprites"`
	Types     []typeSlot `json:"types"`
	Abilities []struct {
		Ability  namedRef `json:"ability"`
		IsHidden bool     `json:"is_hidden"`
	} `json:"abilities"`
	Stats []struct {
		BaseStat int      `json:"base_stat"`
		Stat     namedRef `json:"stat"`
	} `json:"stats"`
}

func (p *pokemonResponse) toCreature() (*domain.Creature, error) {
	if p.ID <= 0 || p.Name == "" {
		return nil, fmt.Errorf("%w: missing id or name", domain.ErrMalformedCreature)
	}

	art := p.Sprites.Other[officialArtwork]
	image := firstNonEmpty(art.FrontDefault, p.Sprites.FrontDefault)
	if image == "" {
		return nil, fmt.Errorf("%w: no sprite for %s", domain.ErrMalformedCreature, p.Name)
	}

	types := make([]typeSlot, len(p.Types))
	copy(types, p.Types)
	sort.SliceStable(types, func(i, j int) bool { return types[i].Slot < types[j].Slot })

	cr := &domain.Creature{
		ID:          p.ID,
		Name:        p.Name,
		DisplayName: DisplayName(p.Name),
		Image:       image,
		ShinyImage:  firstNonEmpty(art.FrontShiny, p.Sprites.FrontShiny),
		Types:       make([]string, 0, len(types)),
		Height:      p.Height,
		Weight:      p.Weight,
	}
	for _, t := range types {
		cr.Types = append(cr.Types, t.Type.Name)
	}
	for _, a := range p.Abilities {
		cr.Abilities = append(cr.Abilities, a.Ability.Name)
	}
	if len(p.Stats) > 0 {
		cr.BaseStats = make(map[string]int, len(p.Stats))
		for _, s := range p.Stats {
			cr.BaseStats[s.Stat.Name] = s.BaseStat
		}
	}
	return cr, nil
}

// DisplayName turns an API name such as "mr-mime" into "Mr Mime".
// A Caser holds state, so each call builds its own.
func DisplayName(name string) string {
	return cases.Title(language.English).String(strings.ReplaceAll(name, "-", " "))
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// IsSkippable reports whether err describes a lookup failure that should drop
// one reveal unit rather than fail the whole pack.
func IsSkippable(err error) bool {
	return errors.Is(err, domain.ErrSourceUnavailable) ||
		errors.Is(err, domain.ErrCreatureNotFound) ||
		errors.Is(err, domain.ErrMalformedCreature)
}
