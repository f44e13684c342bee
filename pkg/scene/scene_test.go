package scene

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/perchui/perch/pkg/errors"
	"github.com/perchui/perch/pkg/position"
)

const testTOML = `
[viewport]
width = 1000
height = 1000

[anchor]
left = 50
top = 100
width = 100
height = 20

[floating]
width = 80
height = 30

[settings]
side = "bottom"
anchor_offset = 10
`

func TestReadTOML(t *testing.T) {
	sc, err := ReadTOML(strings.NewReader(testTOML))
	if err != nil {
		t.Fatalf("ReadTOML() error: %v", err)
	}

	if sc.Viewport.Width != 1000 {
		t.Errorf("Viewport.Width = %v, want 1000", sc.Viewport.Width)
	}
	if sc.Anchor.Left != 50 || sc.Anchor.Top != 100 {
		t.Errorf("anchor corner = (%v, %v), want (50, 100)", sc.Anchor.Left, sc.Anchor.Top)
	}
	if sc.Settings.Side != "bottom" {
		t.Errorf("Settings.Side = %q, want %q", sc.Settings.Side, "bottom")
	}
	if sc.Settings.AnchorOffset == nil || *sc.Settings.AnchorOffset != 10 {
		t.Errorf("Settings.AnchorOffset = %v, want 10", sc.Settings.AnchorOffset)
	}
}

func TestReadJSON(t *testing.T) {
	input := `{
		"viewport": {"width": 1000, "height": 1000},
		"anchor": {"left": 50, "top": 100, "width": 100, "height": 20},
		"floating": {"width": 80, "height": 30},
		"settings": {"side": "top", "prevent_overflow": false}
	}`

	sc, err := ReadJSON(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ReadJSON() error: %v", err)
	}

	if sc.Settings.Side != "top" {
		t.Errorf("Settings.Side = %q, want %q", sc.Settings.Side, "top")
	}
	if sc.Settings.PreventOverflow == nil || *sc.Settings.PreventOverflow {
		t.Error("Settings.PreventOverflow should decode to false")
	}
}

func TestReadJSONRejectsBadGeometry(t *testing.T) {
	input := `{
		"viewport": {"width": 0, "height": 1000},
		"anchor": {"left": 50, "top": 100, "width": 100, "height": 20},
		"floating": {"width": 80, "height": 30}
	}`

	_, err := ReadJSON(strings.NewReader(input))
	if err == nil {
		t.Fatal("ReadJSON() error = nil, want validation error")
	}
	if !errors.Is(err, errors.ErrCodeInvalidScene) {
		t.Errorf("error code = %v, want %v", errors.GetCode(err), errors.ErrCodeInvalidScene)
	}
}

func TestSettingsResolveDefaults(t *testing.T) {
	resolved, err := Settings{}.Resolve()
	if err != nil {
		t.Fatalf("Resolve() error: %v", err)
	}

	want := position.DefaultSettings()
	if resolved.Placement != want.Placement || resolved.Side != want.Side || resolved.Align != want.Align {
		t.Errorf("enums = %v/%v/%v, want defaults", resolved.Placement, resolved.Side, resolved.Align)
	}
	if resolved.AnchorOffset != want.AnchorOffset {
		t.Errorf("AnchorOffset = %v, want %v", resolved.AnchorOffset, want.AnchorOffset)
	}
	if !resolved.PreventOverflow {
		t.Error("PreventOverflow = false, want true")
	}
}

func TestSettingsResolveOverrides(t *testing.T) {
	offset := 4.0
	prevent := false
	resolved, err := Settings{
		Placement:       "inside",
		Side:            "centered",
		Align:           "last",
		AnchorOffset:    &offset,
		PreventOverflow: &prevent,
		Strategies:      []string{"offset"},
	}.Resolve()
	if err != nil {
		t.Fatalf("Resolve() error: %v", err)
	}

	if resolved.Placement != position.PlaceInside {
		t.Errorf("Placement = %v, want inside", resolved.Placement)
	}
	if resolved.Side != position.SideCentered {
		t.Errorf("Side = %v, want centered", resolved.Side)
	}
	if resolved.AnchorOffset != 4 {
		t.Errorf("AnchorOffset = %v, want 4", resolved.AnchorOffset)
	}
	if resolved.PreventOverflow {
		t.Error("PreventOverflow = true, want false")
	}
	if len(resolved.Strategies) != 1 || resolved.Strategies[0] != position.StrategyOffset {
		t.Errorf("Strategies = %v, want [offset]", resolved.Strategies)
	}
}

func TestSettingsResolveRejectsUnknownEnums(t *testing.T) {
	tests := []struct {
		name     string
		settings Settings
		wantCode errors.Code
	}{
		{"bad side", Settings{Side: "middle"}, errors.ErrCodeInvalidSide},
		{"bad align", Settings{Align: "start"}, errors.ErrCodeInvalidAlign},
		{"bad placement", Settings{Placement: "over"}, errors.ErrCodeInvalidSettings},
		{"bad strategy", Settings{Strategies: []string{"shrink"}}, errors.ErrCodeInvalidStrategy},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.settings.Resolve()
			if err == nil {
				t.Fatal("Resolve() error = nil, want error")
			}
			if !errors.Is(err, tt.wantCode) {
				t.Errorf("error code = %v, want %v", errors.GetCode(err), tt.wantCode)
			}
		})
	}
}

func TestScenePosition(t *testing.T) {
	sc, err := ReadTOML(strings.NewReader(testTOML))
	if err != nil {
		t.Fatalf("ReadTOML() error: %v", err)
	}

	at, err := sc.Position()
	if err != nil {
		t.Fatalf("Position() error: %v", err)
	}

	if at.Top != 130 {
		t.Errorf("Top = %v, want 130", at.Top)
	}
	if at.Left != 50 {
		t.Errorf("Left = %v, want 50", at.Left)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	tomlPath := filepath.Join(dir, "scene.toml")
	if err := os.WriteFile(tomlPath, []byte(testTOML), 0o644); err != nil {
		t.Fatal(err)
	}

	sc, err := Load(tomlPath)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if sc.Floating.Width != 80 {
		t.Errorf("Floating.Width = %v, want 80", sc.Floating.Width)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err == nil {
		t.Fatal("Load() error = nil, want error")
	}
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("error code = %v, want %v", errors.GetCode(err), errors.ErrCodeFileNotFound)
	}
}

func TestLoadUnsupportedExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.yaml")
	if err := os.WriteFile(path, []byte("viewport:\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := Load(path)
	if err == nil {
		t.Fatal("Load() error = nil, want error")
	}
	if !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("error code = %v, want %v", errors.GetCode(err), errors.ErrCodeInvalidFormat)
	}
}

func TestSceneJSONRoundTrip(t *testing.T) {
	original, err := ReadTOML(strings.NewReader(testTOML))
	if err != nil {
		t.Fatalf("ReadTOML() error: %v", err)
	}

	var buf bytes.Buffer
	if err := WriteJSON(original, &buf); err != nil {
		t.Fatalf("WriteJSON() error: %v", err)
	}

	imported, err := ReadJSON(&buf)
	if err != nil {
		t.Fatalf("ReadJSON() error: %v", err)
	}

	// Settings holds pointers and slices, so compare serialized forms.
	a, err := json.Marshal(original)
	if err != nil {
		t.Fatal(err)
	}
	b, err := json.Marshal(imported)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(a, b) {
		t.Errorf("round trip = %s, want %s", b, a)
	}
}

func TestWriteResult(t *testing.T) {
	sc, err := ReadTOML(strings.NewReader(testTOML))
	if err != nil {
		t.Fatalf("ReadTOML() error: %v", err)
	}
	at, err := sc.Position()
	if err != nil {
		t.Fatalf("Position() error: %v", err)
	}

	var buf bytes.Buffer
	if err := WriteResult(at, &buf); err != nil {
		t.Fatalf("WriteResult() error: %v", err)
	}

	var decoded struct {
		Top  float64 `json:"top"`
		Left float64 `json:"left"`
	}
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("json.Unmarshal() error: %v", err)
	}
	if decoded.Top != 130 || decoded.Left != 50 {
		t.Errorf("result = %+v, want {130 50}", decoded)
	}
}
