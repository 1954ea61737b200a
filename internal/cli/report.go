package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fractalwonder/fwdecode/pkg/binfrac"
	"github.com/fractalwonder/fwdecode/pkg/statetoken"
)

// separator matches the width used by the original report output.
var separator = strings.Repeat("=", 60)

// renderReport writes the human-readable state report for a decoded token.
//
// Missing fields render as explicit sentinels ("unknown" for config values,
// "N/A" for numbers) rather than failing. The zoom depth block is
// best-effort: when it cannot be derived from the width field it is omitted
// with no error, since it is purely informational.
func renderReport(w io.Writer, state *statetoken.State, showRaw, noColor bool) error {
	st := newStyles(w, noColor)

	fmt.Fprintln(w, st.dim.Render(separator))
	fmt.Fprintln(w, st.title.Render("FRACTALWONDER STATE"))
	fmt.Fprintln(w, st.dim.Render(separator))

	if err := renderViewport(w, st, state); err != nil {
		return err
	}
	renderConfig(w, st, state)
	renderSettings(w, st, state)

	if showRaw {
		fmt.Fprintln(w)
		fmt.Fprintln(w, st.dim.Render(separator))
		fmt.Fprintln(w, st.title.Render("RAW JSON:"))
		fmt.Fprintln(w, st.dim.Render(separator))
		return writeJSON(w, state.Raw())
	}
	return nil
}

// renderViewport prints the viewport coordinates and, when derivable, the
// zoom depth estimate.
func renderViewport(w io.Writer, st styles, state *statetoken.State) error {
	vp := state.Viewport()

	fmt.Fprintln(w)
	fmt.Fprintln(w, st.title.Render("VIEWPORT:"))
	for _, field := range []struct {
		label string
		value any
	}{
		{"Center X: ", vp.CenterX},
		{"Center Y: ", vp.CenterY},
		{"Width:    ", vp.Width},
		{"Height:   ", vp.Height},
	} {
		s, err := fieldString(field.value)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "  %s %s\n", st.label.Render(field.label), st.value.Render(s))
	}

	// Advisory zoom estimate, derived from the width's leading zero bits.
	// Omitted entirely when it cannot be derived.
	if n, ok := statetoken.NumberFrom(vp.Width); ok {
		if dec, bin, ok := binfrac.ZoomDepth(n.Value); ok {
			zoom := fmt.Sprintf("~10^%d (2^%d)", dec, bin)
			fmt.Fprintf(w, "  %s %s\n", st.label.Render("Zoom Depth:"), st.value.Render(zoom))

			bits := "N/A"
			if n.HasPrecision {
				bits = strconv.FormatInt(n.PrecisionBits, 10)
			}
			fmt.Fprintf(w, "  %s %s\n", st.label.Render("Precision: "), st.value.Render(bits+" bits"))
		}
	}
	return nil
}

// renderConfig prints the identification block, with "unknown" sentinels for
// anything the document does not carry.
func renderConfig(w io.Writer, st styles, state *statetoken.State) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, st.title.Render("CONFIG:"))
	for _, field := range []struct {
		label string
		key   string
	}{
		{"Config ID:   ", "config_id"},
		{"Palette:     ", "palette_name"},
		{"Version:     ", "version"},
	} {
		value := "unknown"
		if v, ok := state.Field(field.key); ok {
			value = fmt.Sprint(v)
		}
		fmt.Fprintf(w, "  %s %s\n", st.label.Render(field.label), st.value.Render(value))
	}
}

// renderSettings prints the render settings block. The whole block is
// skipped when the document has no settings; individual missing settings
// render as "N/A".
func renderSettings(w io.Writer, st styles, state *statetoken.State) {
	raw, _ := state.Field("render_settings")
	settings, ok := raw.(map[string]any)
	if !ok || len(settings) == 0 {
		return
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, st.title.Render("RENDER SETTINGS:"))
	for _, field := range []struct {
		label string
		key   string
	}{
		{"Cycle Count: ", "cycle_count"},
		{"Use GPU:     ", "use_gpu"},
		{"X-Ray:       ", "xray_enabled"},
	} {
		value := "N/A"
		if v, ok := settings[field.key]; ok {
			value = fmt.Sprint(v)
		}
		fmt.Fprintf(w, "  %s %s\n", st.label.Render(field.label), st.value.Render(value))
	}
}

// fieldString formats one viewport field for display. Absent fields render
// as "N/A"; Precision Numbers are converted exactly and then bounded for
// display; anything else is shown verbatim.
func fieldString(v any) (string, error) {
	if v == nil {
		return "N/A", nil
	}
	n, ok := statetoken.NumberFrom(v)
	if !ok {
		return fmt.Sprint(v), nil
	}
	d, err := binfrac.Convert(n.Value)
	if err != nil {
		return "", err
	}
	return binfrac.Format(d), nil
}

// writeJSON pretty-prints the raw state document.
func writeJSON(w io.Writer, doc any) error {
	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(out))
	return err
}
