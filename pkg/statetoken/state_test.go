package statetoken

import "testing"

func TestNumberFrom(t *testing.T) {
	tests := []struct {
		name   string
		value  any
		want   Number
		wantOK bool
	}{
		{
			name:   "value with precision",
			value:  map[string]any{"value": "-110.0101", "precision_bits": float64(128)},
			want:   Number{Value: "-110.0101", PrecisionBits: 128, HasPrecision: true},
			wantOK: true,
		},
		{
			name:   "value without precision",
			value:  map[string]any{"value": "0.1"},
			want:   Number{Value: "0.1"},
			wantOK: true,
		},
		{
			name:   "nil",
			value:  nil,
			wantOK: false,
		},
		{
			name:   "plain scalar",
			value:  3.5,
			wantOK: false,
		},
		{
			name:   "object without value",
			value:  map[string]any{"precision_bits": float64(64)},
			wantOK: false,
		},
		{
			name:   "non-string value field",
			value:  map[string]any{"value": float64(7)},
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := NumberFrom(tt.value)
			if ok != tt.wantOK {
				t.Fatalf("NumberFrom() ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("NumberFrom() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestViewport(t *testing.T) {
	t.Run("full viewport", func(t *testing.T) {
		state := NewState(map[string]any{
			"viewport": map[string]any{
				"center": []any{
					map[string]any{"value": "-1.1"},
					map[string]any{"value": "0.01"},
				},
				"width":  map[string]any{"value": "0.001"},
				"height": map[string]any{"value": "0.001"},
			},
		})

		v := state.Viewport()
		for name, field := range map[string]any{
			"CenterX": v.CenterX, "CenterY": v.CenterY, "Width": v.Width, "Height": v.Height,
		} {
			if _, ok := NumberFrom(field); !ok {
				t.Errorf("%s is not a Precision Number: %#v", name, field)
			}
		}
	})

	t.Run("missing viewport", func(t *testing.T) {
		v := NewState(map[string]any{}).Viewport()
		if v.CenterX != nil || v.CenterY != nil || v.Width != nil || v.Height != nil {
			t.Errorf("Viewport() = %+v, want all nil", v)
		}
	})

	t.Run("short center list", func(t *testing.T) {
		state := NewState(map[string]any{
			"viewport": map[string]any{
				"center": []any{map[string]any{"value": "1"}},
			},
		})
		v := state.Viewport()
		if v.CenterX == nil {
			t.Error("CenterX should be set")
		}
		if v.CenterY != nil {
			t.Error("CenterY should be nil for a one-element center")
		}
	})

	t.Run("center not a list", func(t *testing.T) {
		state := NewState(map[string]any{
			"viewport": map[string]any{"center": "oops"},
		})
		v := state.Viewport()
		if v.CenterX != nil || v.CenterY != nil {
			t.Errorf("Viewport() center = (%v, %v), want nil", v.CenterX, v.CenterY)
		}
	})
}
