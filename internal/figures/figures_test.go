package figures

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestRenderAll(t *testing.T) {
	if testing.Short() {
		t.Skip("rendering full figures is slow")
	}
	dir := t.TempDir()
	if err := RenderAll(dir); err != nil {
		t.Fatalf("RenderAll: %v", err)
	}

	want := []string{
		"figura1_wz_amplitudes",
		"figura2_cutoff_geometrico",
		"figura3_valle_resiliencia",
	}
	for _, base := range want {
		for _, ext := range []string{".png", ".pdf"} {
			path := filepath.Join(dir, base+ext)
			fi, err := os.Stat(path)
			if err != nil {
				t.Errorf("missing artifact %s: %v", base+ext, err)
				continue
			}
			if fi.Size() == 0 {
				t.Errorf("artifact %s is empty", base+ext)
			}
		}
	}

	// PDFs carry the expected header.
	raw, err := os.ReadFile(filepath.Join(dir, want[0]+".pdf"))
	if err != nil {
		t.Fatalf("reading pdf: %v", err)
	}
	if !bytes.HasPrefix(raw, []byte("%PDF")) {
		t.Error("pdf artifact does not start with %PDF")
	}

	// PNGs decode at the export density: 7 x 4.5 in at 150 dpi.
	f, err := os.Open(filepath.Join(dir, want[0]+".png"))
	if err != nil {
		t.Fatalf("opening png: %v", err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decoding png: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 1050 || b.Dy() != 675 {
		t.Errorf("png dimensions = %dx%d, want 1050x675", b.Dx(), b.Dy())
	}
}

func TestRenderAllOverwrites(t *testing.T) {
	if testing.Short() {
		t.Skip("rendering full figures is slow")
	}
	dir := t.TempDir()
	if err := RenderAll(dir); err != nil {
		t.Fatalf("first RenderAll: %v", err)
	}
	if err := RenderAll(dir); err != nil {
		t.Fatalf("second RenderAll: %v", err)
	}
}

func TestRenderAllBadDirectory(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "occupied")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	// A plain file in place of the output directory must surface the
	// underlying filesystem error.
	if err := RenderAll(filepath.Join(file, "out")); err == nil {
		t.Error("RenderAll into an unusable path succeeded")
	}
}
