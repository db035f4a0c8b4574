package style

import (
	"image/color"
	"path/filepath"
	"strings"
	"testing"
)

const testdataDir = "testdata"

func testPath(name string) string {
	return filepath.Join(testdataDir, name)
}

func TestDefault_KnownCategories(t *testing.T) {
	tests := []struct {
		category string
		color    color.NRGBA
		shape    Shape
		label    string
	}{
		{"enemies-arcs", color.NRGBA{R: 0xef, G: 0x53, B: 0x50, A: 0xff}, ShapeDiamond, "ARC"},
		{"extraction", color.NRGBA{R: 0x26, G: 0xc6, B: 0xda, A: 0xff}, ShapeArrowUp, "EXIT"},
		{"spawn", color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}, ShapeArrowDown, "DROP"},
		{"locked-rooms", color.NRGBA{R: 0xfb, G: 0xc0, B: 0x2d, A: 0xff}, ShapePadlock, "LOCK"},
		{"objectives", color.NRGBA{R: 0xff, G: 0xeb, B: 0x3b, A: 0xff}, ShapeStar, "OBJ"},
		{"loot-containers", color.NRGBA{R: 0xe0, G: 0xe0, B: 0xe0, A: 0xff}, ShapeBox, "LOOT"},
		{"supply-stations", color.NRGBA{R: 0xbd, G: 0xbd, B: 0xbd, A: 0xff}, ShapeRadio, "SUP"},
		{"resources-plants", color.NRGBA{R: 0x66, G: 0xbb, B: 0x6a, A: 0xff}, ShapeLeaf, "BIO"},
		{"other", color.NRGBA{R: 0x9e, G: 0x9e, B: 0x9e, A: 0xff}, ShapeCircle, "???"},
	}

	sheet := Default()
	for _, tt := range tests {
		t.Run(tt.category, func(t *testing.T) {
			st, known := sheet.Lookup(tt.category)
			if !known {
				t.Fatalf("Lookup(%q) known = false, want true", tt.category)
			}
			if st.Color != tt.color {
				t.Errorf("Color = %v, want %v", st.Color, tt.color)
			}
			if st.Shape != tt.shape {
				t.Errorf("Shape = %v, want %v", st.Shape, tt.shape)
			}
			if st.Label != tt.label {
				t.Errorf("Label = %q, want %q", st.Label, tt.label)
			}
		})
	}
}

func TestLookup_UnknownCategory(t *testing.T) {
	st, known := Default().Lookup("weather-stations")
	if known {
		t.Fatal("Lookup of unknown category reported known = true")
	}

	want := Style{
		Color: color.NRGBA{R: 0x9e, G: 0x9e, B: 0x9e, A: 0xff},
		Shape: ShapeCircle,
		Label: "???",
	}
	if st != want {
		t.Errorf("fallback style = %+v, want %+v", st, want)
	}
}

func TestCategories_Sorted(t *testing.T) {
	got := Default().Categories()
	if len(got) != 9 {
		t.Fatalf("Categories len = %d, want 9", len(got))
	}
	for i := 1; i < len(got); i++ {
		if got[i-1] >= got[i] {
			t.Errorf("Categories not sorted: %q before %q", got[i-1], got[i])
		}
	}
}

func TestLoad_ValidSheet(t *testing.T) {
	sheet, err := Load(testPath("valid-styles.yaml"))
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	st, known := sheet.Lookup("volcano")
	if !known {
		t.Fatal("Lookup(volcano) known = false, want true")
	}
	if st.Shape != ShapeBox {
		t.Errorf("Shape = %v, want %v", st.Shape, ShapeBox)
	}
	if st.Color != (color.NRGBA{R: 0xff, G: 0x00, B: 0x00, A: 0xff}) {
		t.Errorf("Color = %v, want #ff0000", st.Color)
	}
	if st.Label != "VOL" {
		t.Errorf("Label = %q, want %q", st.Label, "VOL")
	}

	// A loaded sheet replaces the built-in table entirely.
	if _, known := sheet.Lookup("objectives"); known {
		t.Error("Lookup(objectives) known = true, want false after replacement")
	}

	// This sheet declares its own fallback.
	fb := sheet.Fallback()
	if fb.Shape != ShapeSquare || fb.Label != "N/A" {
		t.Errorf("Fallback = %+v, want square/N/A", fb)
	}
}

func TestLoad_BuiltinFallbackWhenOmitted(t *testing.T) {
	sheet, err := Load(testPath("minimal-styles.yaml"))
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	fb := sheet.Fallback()
	if fb.Shape != ShapeCircle || fb.Label != "???" {
		t.Errorf("Fallback = %+v, want built-in gray circle", fb)
	}
}

func TestLoad_VersionGate(t *testing.T) {
	_, err := Load(testPath("wrong-version.yaml"))
	if err == nil {
		t.Fatal("expected error for unsupported format version, got nil")
	}
	if !strings.Contains(err.Error(), "not supported") {
		t.Errorf("error = %q, want it to mention the unsupported format", err)
	}
}

func TestLoad_SchemaViolations(t *testing.T) {
	_, err := Load(testPath("invalid-styles.yaml"))
	if err == nil {
		t.Fatal("expected error for invalid sheet, got nil")
	}
	if !strings.Contains(err.Error(), "validation issue") {
		t.Errorf("error = %q, want it to mention validation issues", err)
	}
}

func TestLoad_FileNotFound(t *testing.T) {
	if _, err := Load(testPath("nonexistent.yaml")); err == nil {
		t.Fatal("expected error for missing file, got nil")
	}
}

func TestCheckFormatVersion(t *testing.T) {
	tests := []struct {
		version string
		wantErr bool
	}{
		{"1.0.0", false},
		{"1.4.2", false},
		{"v1.0.0", false},
		{"2.0.0", true},
		{"0.9.0", true},
		{"", true},
		{"garbage", true},
	}

	for _, tt := range tests {
		t.Run(tt.version, func(t *testing.T) {
			err := checkFormatVersion(tt.version)
			if (err != nil) != tt.wantErr {
				t.Errorf("checkFormatVersion(%q) error = %v, wantErr %v", tt.version, err, tt.wantErr)
			}
		})
	}
}
