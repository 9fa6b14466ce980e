package pptx

import (
	"archive/zip"
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// helper: write presentation to buffer and read back
func roundTrip(t *testing.T, p *Presentation) *Presentation {
	t.Helper()
	var buf bytes.Buffer
	if err := p.WriteTo(&buf); err != nil {
		t.Fatalf("WriteTo failed: %v", err)
	}
	data := buf.Bytes()
	pres, err := ReadFrom(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatalf("ReadFrom failed: %v", err)
	}
	return pres
}

// helper: create a minimal 1x1 PNG
func testPNG() []byte {
	return []byte{
		0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A,
		0x00, 0x00, 0x00, 0x0D, 0x49, 0x48, 0x44, 0x52,
		0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x01,
		0x08, 0x02, 0x00, 0x00, 0x00, 0x90, 0x77, 0x53,
		0xDE, 0x00, 0x00, 0x00, 0x0C, 0x49, 0x44, 0x41,
		0x54, 0x08, 0xD7, 0x63, 0xF8, 0xCF, 0xC0, 0x00,
		0x00, 0x00, 0x02, 0x00, 0x01, 0xE2, 0x21, 0xBC,
		0x33, 0x00, 0x00, 0x00, 0x00, 0x49, 0x45, 0x4E,
		0x44, 0xAE, 0x42, 0x60, 0x82,
	}
}

// helper: list zip entry names of a written deck
func zipEntries(t *testing.T, data []byte) map[string][]byte {
	t.Helper()
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatalf("zip.NewReader: %v", err)
	}
	out := make(map[string][]byte)
	for _, f := range zr.File {
		rc, err := f.Open()
		if err != nil {
			t.Fatalf("open %s: %v", f.Name, err)
		}
		b, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			t.Fatalf("read %s: %v", f.Name, err)
		}
		out[f.Name] = b
	}
	return out
}

func TestWriteToPackageParts(t *testing.T) {
	p := New()
	p.GetLayout().SetCustomLayout(Inch(4), Inch(9))
	slide := p.GetActiveSlide()
	slide.CreateDrawingShape().
		SetImageData(testPNG(), "image/png").
		SetBounds(Inch(1), Inch(2), Inch(0.5), Inch(0.25))

	var buf bytes.Buffer
	if err := p.WriteTo(&buf); err != nil {
		t.Fatalf("WriteTo: %v", err)
	}
	entries := zipEntries(t, buf.Bytes())

	for _, name := range []string{
		"[Content_Types].xml",
		"_rels/.rels",
		"docProps/app.xml",
		"docProps/core.xml",
		"ppt/presentation.xml",
		"ppt/_rels/presentation.xml.rels",
		"ppt/presProps.xml",
		"ppt/viewProps.xml",
		"ppt/tableStyles.xml",
		"ppt/slideMasters/slideMaster1.xml",
		"ppt/slideMasters/_rels/slideMaster1.xml.rels",
		"ppt/slideLayouts/slideLayout1.xml",
		"ppt/slideLayouts/_rels/slideLayout1.xml.rels",
		"ppt/theme/theme1.xml",
		"ppt/slides/slide1.xml",
		"ppt/slides/_rels/slide1.xml.rels",
		"ppt/media/image1.png",
	} {
		if _, ok := entries[name]; !ok {
			t.Errorf("missing part %s", name)
		}
	}

	pres := string(entries["ppt/presentation.xml"])
	if !strings.Contains(pres, `<p:sldSz cx="3657600" cy="8229600" type="custom"/>`) {
		t.Errorf("unexpected slide size in presentation.xml:\n%s", pres)
	}
	ct := string(entries["[Content_Types].xml"])
	if !strings.Contains(ct, `Extension="png"`) {
		t.Errorf("content types missing png default:\n%s", ct)
	}
	slideXML := string(entries["ppt/slides/slide1.xml"])
	if !strings.Contains(slideXML, `<a:off x="914400" y="1828800"/>`) {
		t.Errorf("picture offset not written:\n%s", slideXML)
	}
	if !bytes.Equal(entries["ppt/media/image1.png"], testPNG()) {
		t.Error("media bytes differ from input")
	}
}

func TestRoundTripPictures(t *testing.T) {
	p := New()
	p.GetLayout().SetCustomLayout(Inch(4), Inch(9))
	p.GetDocumentProperties().Title = "Partners & Friends"
	slide := p.GetActiveSlide()
	for i := 0; i < 3; i++ {
		ds := slide.CreateDrawingShape()
		ds.SetImageData(testPNG(), "image/png")
		ds.SetName("logo")
		ds.SetDescription("logo.png")
		ds.SetPosition(Inch(float64(i)), Inch(1))
		ds.SetSize(Inch(0.5), Inch(0.5))
	}

	got := roundTrip(t, p)
	if got.GetSlideCount() != 1 {
		t.Fatalf("expected 1 slide, got %d", got.GetSlideCount())
	}
	if got.GetDocumentProperties().Title != "Partners & Friends" {
		t.Errorf("title = %q", got.GetDocumentProperties().Title)
	}
	layout := got.GetLayout()
	if layout.CX != Inch(4) || layout.CY != Inch(9) || layout.Name != LayoutCustom {
		t.Errorf("layout = %+v", layout)
	}
	shapes := got.GetAllSlides()[0].GetShapes()
	if len(shapes) != 3 {
		t.Fatalf("expected 3 shapes, got %d", len(shapes))
	}
	for i, sh := range shapes {
		ds, ok := sh.(*DrawingShape)
		if !ok {
			t.Fatalf("shape %d is %T", i, sh)
		}
		if ds.GetOffsetX() != Inch(float64(i)) || ds.GetOffsetY() != Inch(1) {
			t.Errorf("shape %d offset = (%d, %d)", i, ds.GetOffsetX(), ds.GetOffsetY())
		}
		if ds.GetWidth() != Inch(0.5) || ds.GetHeight() != Inch(0.5) {
			t.Errorf("shape %d size = (%d, %d)", i, ds.GetWidth(), ds.GetHeight())
		}
		if ds.GetName() != "logo" || ds.GetDescription() != "logo.png" {
			t.Errorf("shape %d name/descr = %q/%q", i, ds.GetName(), ds.GetDescription())
		}
		if !bytes.Equal(ds.GetImageData(), testPNG()) || ds.GetMimeType() != "image/png" {
			t.Errorf("shape %d image data not recovered", i)
		}
	}
}

func TestSaveOverwritesExisting(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sub", "deck.pptx")
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("stale"), 0o644); err != nil {
		t.Fatal(err)
	}

	p := New()
	p.GetActiveSlide().CreateDrawingShape().SetImageData(testPNG(), "image/png").
		SetBounds(0, 0, Inch(1), Inch(1))
	if err := p.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if n := got.GetAllSlides()[0].GetShapeCount(); n != 1 {
		t.Errorf("expected 1 shape, got %d", n)
	}
}

func TestSaveInvalidPath(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	if err := os.WriteFile(blocker, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	if err := New().Save(filepath.Join(blocker, "deck.pptx")); err == nil {
		t.Error("expected error when parent is a regular file")
	}
}

func TestPicturePathIsEmbedded(t *testing.T) {
	dir := t.TempDir()
	img := filepath.Join(dir, "logo.png")
	if err := os.WriteFile(img, testPNG(), 0o644); err != nil {
		t.Fatal(err)
	}

	p := New()
	p.GetActiveSlide().CreateDrawingShape().SetPath(img).SetBounds(0, 0, Inch(1), Inch(1))
	got := roundTrip(t, p)
	ds := got.GetAllSlides()[0].GetShapes()[0].(*DrawingShape)
	if !bytes.Equal(ds.GetImageData(), testPNG()) {
		t.Error("picture loaded from path was not embedded")
	}
}

func TestValidate(t *testing.T) {
	p := New()
	if err := p.Validate(); err != nil {
		t.Fatalf("default presentation should validate: %v", err)
	}

	p.GetActiveSlide().CreateDrawingShape()
	p.GetLayout().SetCustomLayout(Inch(0.5), Inch(60))
	err := p.Validate()
	if err == nil {
		t.Fatal("expected validation error")
	}
	for _, want := range []string{"no image data", "layout width", "layout height"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q does not mention %q", err, want)
		}
	}
}

func TestMeasurements(t *testing.T) {
	tests := []struct {
		name string
		got  int64
		want int64
	}{
		{"one inch", Inch(1), 914400},
		{"96 px at 96 dpi", Pixel(96, 96), 914400},
		{"48 px default dpi", Pixel(48, 0), 457200},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %d, want %d", tt.got, tt.want)
			}
		})
	}
	if EMUToInch(Inch(2.5)) != 2.5 {
		t.Errorf("EMUToInch round trip failed")
	}
}

func TestRoundTripWidescreenLayout(t *testing.T) {
	p := New()
	layout := p.GetLayout()
	layout.CX, layout.CY, layout.Name = 12192000, 6858000, LayoutScreen16x9

	var buf bytes.Buffer
	if err := p.WriteTo(&buf); err != nil {
		t.Fatal(err)
	}
	if xml := string(zipEntries(t, buf.Bytes())["ppt/presentation.xml"]); !strings.Contains(xml, `type="screen16x9"`) {
		t.Errorf("sldSz type not written:\n%s", xml)
	}
	got := roundTrip(t, p).GetLayout()
	if got.Name != LayoutScreen16x9 || got.CX != 12192000 || got.CY != 6858000 {
		t.Errorf("layout = %+v", got)
	}
}

func TestGetSlide(t *testing.T) {
	p := New()
	p.CreateSlide()
	if s, err := p.GetSlide(1); err != nil || s != p.GetAllSlides()[1] {
		t.Errorf("GetSlide(1) = %v, %v", s, err)
	}
	for _, i := range []int{-1, 2} {
		if _, err := p.GetSlide(i); err == nil {
			t.Errorf("GetSlide(%d) should fail", i)
		}
	}
}
