package pipeline

import (
	"fmt"
	"time"

	"github.com/couchcryptid/trmnl-weather/internal/domain"
	"github.com/couchcryptid/trmnl-weather/internal/render"
)

// Transformer derives display data from a raw forecast and renders the panel.
type Transformer struct {
	units domain.Units
}

func NewTransformer(units domain.Units) *Transformer {
	return &Transformer{units: units}
}

// Transform builds the snapshot for loc as of now.
func (t *Transformer) Transform(raw domain.RawForecast, loc domain.Location, now time.Time) (domain.Snapshot, error) {
	display, err := domain.DeriveAt(raw, t.units, now)
	if err != nil {
		return domain.Snapshot{}, fmt.Errorf("derive display: %w", err)
	}
	markup, err := render.Markup(display)
	if err != nil {
		return domain.Snapshot{}, err
	}
	return domain.Snapshot{
		Key:         loc.Key(),
		Location:    loc,
		Display:     display,
		Markup:      markup,
		GeneratedAt: now.UTC(),
	}, nil
}
