package material

import "github.com/df07/go-ray-kernel/pkg/core"

// Ref is an index into a Palette. Primitives carry a Ref instead of a
// pointer so scenes stay plain values that can be shared read-only.
type Ref int32

// NoMaterial is the Ref of primitives without an assigned material
const NoMaterial Ref = -1

// missingAlbedo is returned for refs that do not resolve
var missingAlbedo = NewSolidRGB(1, 0, 1)

// Entry is a single material in the palette
type Entry struct {
	Name   string
	Albedo Texture
}

// Palette is the material arena of a scene. It is filled during scene
// construction and must not be modified once rendering starts.
type Palette struct {
	entries []Entry
	byName  map[string]Ref
}

// NewPalette creates an empty palette
func NewPalette() *Palette {
	return &Palette{byName: make(map[string]Ref)}
}

// Add appends a material and returns its reference. Adding a name that
// already exists replaces the lookup for that name but keeps the old entry
// so existing refs stay valid.
func (p *Palette) Add(name string, albedo Texture) Ref {
	ref := Ref(len(p.entries))
	p.entries = append(p.entries, Entry{Name: name, Albedo: albedo})
	if name != "" {
		p.byName[name] = ref
	}
	return ref
}

// Lookup returns the reference registered under name
func (p *Palette) Lookup(name string) (Ref, bool) {
	ref, ok := p.byName[name]
	return ref, ok
}

// Len returns the number of materials
func (p *Palette) Len() int {
	return len(p.entries)
}

// Entry returns the material for ref, or false if ref is out of range
func (p *Palette) Entry(ref Ref) (Entry, bool) {
	if ref < 0 || int(ref) >= len(p.entries) {
		return Entry{}, false
	}
	return p.entries[ref], true
}

// Albedo returns the albedo texture for ref. Unknown refs resolve to magenta
// so a broken reference is visible in the image instead of panicking.
func (p *Palette) Albedo(ref Ref) Texture {
	entry, ok := p.Entry(ref)
	if !ok || entry.Albedo == nil {
		return missingAlbedo
	}
	return entry.Albedo
}

// Color evaluates the albedo of ref at a surface point
func (p *Palette) Color(ref Ref, u, v float64, point core.Vec3) core.Vec3 {
	return p.Albedo(ref).Value(u, v, point)
}
