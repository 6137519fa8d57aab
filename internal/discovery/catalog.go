package discovery

import (
	"context"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/bnema/ghostconf/internal/keybind"
	"github.com/bnema/ghostconf/internal/schema"
)

// Catalog is everything discovered from the host installation at startup.
// The registry is required; the rest degrades gracefully when a probe
// fails (no themes dir, old ghostty without +list-fonts, ...).
type Catalog struct {
	Registry        *schema.Registry
	Themes          []ThemeInfo
	Fonts           []FontFamily
	Actions         []string
	DefaultKeybinds []keybind.Binding
}

// LoadCatalog runs all discovery probes concurrently. Only a schema
// registry failure is fatal; optional probes log and fall back to empty.
func LoadCatalog(ctx context.Context, r Runner, log zerolog.Logger) (*Catalog, error) {
	cat := &Catalog{}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		source, err := ShowConfig(ctx, r)
		if err != nil {
			return err
		}
		reg, err := schema.Load(source)
		if err != nil {
			return err
		}
		cat.Registry = reg
		return nil
	})

	g.Go(func() error {
		themes, err := LoadThemes(ThemeDir())
		if err != nil {
			log.Warn().Err(err).Msg("failed to load themes")
			return nil
		}
		cat.Themes = themes
		return nil
	})

	g.Go(func() error {
		fonts, err := LoadFonts(ctx, r)
		if err != nil {
			log.Warn().Err(err).Msg("failed to list fonts")
			return nil
		}
		cat.Fonts = fonts
		return nil
	})

	g.Go(func() error {
		actions, err := LoadActions(ctx, r)
		if err != nil {
			log.Warn().Err(err).Msg("failed to list actions")
			return nil
		}
		cat.Actions = actions
		return nil
	})

	g.Go(func() error {
		binds, err := LoadKeybinds(ctx, r)
		if err != nil {
			log.Warn().Err(err).Msg("failed to list default keybinds")
			return nil
		}
		cat.DefaultKeybinds = binds
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	log.Info().
		Int("options", cat.Registry.Len()).
		Int("themes", len(cat.Themes)).
		Int("fonts", len(cat.Fonts)).
		Int("actions", len(cat.Actions)).
		Int("default_keybinds", len(cat.DefaultKeybinds)).
		Msg("discovery complete")

	return cat, nil
}
