// Package level models a generated level: boundary polygons plus objects,
// and checks that its geometry is something the game engine can load.
package level

import (
	"fmt"

	"github.com/vovakirdan/trackgen/internal/core"
)

// ObjectRadius is the game's physical radius of an object (apple, flower,
// killer, start).
const ObjectRadius = 0.4

// Polygon is a closed loop of vertices; the edge from the last vertex back to
// the first is implicit. Grass polygons are decoration, not track surface.
type Polygon struct {
	Grass    bool
	Vertices []core.Position
}

// Bounds returns the bounding box of the polygon.
func (p Polygon) Bounds() core.Bounds {
	return core.BoundsOf(p.Vertices)
}

// ObjectType identifies what an object does in the game.
type ObjectType int

const (
	ObjectExit ObjectType = iota + 1
	ObjectApple
	ObjectKiller
	ObjectPlayer
)

var objectNames = map[ObjectType]string{
	ObjectExit:   "exit",
	ObjectApple:  "apple",
	ObjectKiller: "killer",
	ObjectPlayer: "player",
}

func (t ObjectType) String() string {
	if name, ok := objectNames[t]; ok {
		return name
	}
	return fmt.Sprintf("ObjectType(%d)", int(t))
}

// ParseObjectType parses an object type name.
func ParseObjectType(s string) (ObjectType, error) {
	for t, name := range objectNames {
		if name == s {
			return t, nil
		}
	}
	return 0, fmt.Errorf("level: unknown object type %q", s)
}

// Object is a positioned game object.
type Object struct {
	Position core.Position
	Type     ObjectType
}

// Level is a complete level ready to be written out.
type Level struct {
	Name     string
	Seed     string // seed the level was generated from, if any
	Polygons []Polygon
	Objects  []Object
}

// Bounds returns the bounding box of all polygons.
func (l *Level) Bounds() core.Bounds {
	var b core.Bounds
	for i, p := range l.Polygons {
		if i == 0 {
			b = p.Bounds()
			continue
		}
		b = b.Union(p.Bounds())
	}
	return b
}

// VertexCount returns the number of vertices across all polygons.
func (l *Level) VertexCount() int {
	n := 0
	for _, p := range l.Polygons {
		n += len(p.Vertices)
	}
	return n
}

// CountObjects returns how many objects of type t the level holds.
func (l *Level) CountObjects(t ObjectType) int {
	n := 0
	for _, o := range l.Objects {
		if o.Type == t {
			n++
		}
	}
	return n
}
