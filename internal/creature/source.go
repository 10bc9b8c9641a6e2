// Package creature provides the sources creatures are revealed from: the
// public PokeAPI and the fixed local catalog.
package creature

import (
	"context"

	"github.com/osse101/PackSim_Go/internal/domain"
)

// Source looks up creature records.
//
// Implementations return domain.ErrCreatureNotFound for unknown creatures,
// domain.ErrSourceUnavailable for transport failures and
// domain.ErrMalformedCreature for undecodable responses.
type Source interface {
	FetchByID(ctx context.Context, id int) (*domain.Creature, error)
	FetchByName(ctx context.Context, name string) (*domain.Creature, error)
}
