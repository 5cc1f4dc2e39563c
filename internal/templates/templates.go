// Package templates registers the built-in track templates.
// Import it for side effects:
//
//	import _ "github.com/vovakirdan/trackgen/internal/templates"
package templates

import (
	"github.com/vovakirdan/trackgen/internal/config"
	"github.com/vovakirdan/trackgen/internal/registry"
	"github.com/vovakirdan/trackgen/internal/rng"
	"github.com/vovakirdan/trackgen/internal/track"
)

// DefaultID is the template used when none is selected.
const DefaultID = "spiky"

type template struct {
	id, title, desc string
	build           func(*config.TrackFile)
}

func (t template) ID() string          { return t.id }
func (t template) Title() string       { return t.title }
func (t template) Description() string { return t.desc }

func (t template) TrackFile() config.TrackFile {
	cfg := config.DefaultTrackFile()
	t.build(&cfg)
	return cfg
}

var builtin = []template{
	{
		id:    "flat",
		title: "Flat Run",
		desc:  "wide low bumps, good for warming up",
		build: func(c *config.TrackFile) {
			c.Segments.Count = 20
			c.Segments.SpikeHeight = rng.R(0, 0.15)
		},
	},
	{
		id:    "spiky",
		title: "Spike Alley",
		desc:  "40 spikes between the walls, some dipping below the floor",
		build: func(c *config.TrackFile) {},
	},
	{
		id:    "bumpy",
		title: "Bumpy Road",
		desc:  "random walk floor kept within the corridor",
		build: func(c *config.TrackFile) {
			c.Strategy = track.StrategyWalk
		},
	},
	{
		id:    "canyon",
		title: "Canyon",
		desc:  "long tall track whose floor climbs but never drops below zero",
		build: func(c *config.TrackFile) {
			c.Width = 80
			c.Height = 12
			c.Strategy = track.StrategyWalk
			c.Walk.XStep = rng.R(0.3, 1.5)
			c.Walk.YDelta = rng.R(-0.8, 1.0)
			c.Walk.Clamp = track.ClampFloor.String()
			c.Walk.ClampMargin = 2
		},
	},
}

func init() {
	for _, t := range builtin {
		registry.Register(t.id, func() registry.Template { return t })
	}
}
