package statetoken

// State is a decoded state document. The underlying document is a generic
// JSON tree (maps, slices, and scalars) so that anything unknown to this
// package survives a decode/re-serialize round trip untouched; the root may
// be any JSON value, not just an object. Typed accessors cover the fields
// the display layer knows about; everything is optional, and accessors
// report absence instead of failing.
//
// A State is immutable once decoded; accessors never modify the tree.
type State struct {
	doc any
}

// NewState wraps an already-parsed document. Most callers should use Decode;
// NewState exists for tests and for tooling that obtains documents from
// elsewhere.
func NewState(doc any) *State {
	return &State{doc: doc}
}

// Raw returns the underlying document tree. Callers must not mutate it.
func (s *State) Raw() any {
	return s.doc
}

// Field returns a top-level document field and whether it is present.
// Documents whose root is not an object have no fields.
func (s *State) Field(name string) (any, bool) {
	m, ok := s.doc.(map[string]any)
	if !ok {
		return nil, false
	}
	v, ok := m[name]
	return v, ok
}

// Viewport holds the raw viewport fields. Each field is the untyped JSON
// value (usually a Precision Number object) or nil when absent. Use
// NumberFrom to interpret a field as a Precision Number.
type Viewport struct {
	CenterX any
	CenterY any
	Width   any
	Height  any
}

// Viewport extracts the viewport fields from the document. Missing or
// oddly-shaped pieces simply leave the corresponding fields nil.
func (s *State) Viewport() Viewport {
	var v Viewport
	raw, _ := s.Field("viewport")
	vp, ok := raw.(map[string]any)
	if !ok {
		return v
	}
	if center, ok := vp["center"].([]any); ok {
		if len(center) > 0 {
			v.CenterX = center[0]
		}
		if len(center) > 1 {
			v.CenterY = center[1]
		}
	}
	v.Width = vp["width"]
	v.Height = vp["height"]
	return v
}

// Number is a Precision Number: a binary fraction string with an optional
// precision annotation. Numbers are owned by the document field they came
// from and are immutable.
type Number struct {
	Value         string
	PrecisionBits int64
	HasPrecision  bool
}

// NumberFrom interprets a raw document value as a Precision Number. It
// returns ok=false when the value is not an object with a string "value"
// field; callers then fall back to displaying the raw value.
func NumberFrom(v any) (Number, bool) {
	m, ok := v.(map[string]any)
	if !ok {
		return Number{}, false
	}
	value, ok := m["value"].(string)
	if !ok {
		return Number{}, false
	}
	n := Number{Value: value}
	if bits, ok := m["precision_bits"].(float64); ok {
		n.PrecisionBits = int64(bits)
		n.HasPrecision = true
	}
	return n, true
}
