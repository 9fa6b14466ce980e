package pptx

import (
	"archive/zip"
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"path"
	"strings"
)

// Reader is the interface for presentation readers.
type Reader interface {
	Read(path string) (*Presentation, error)
	ReadFromReader(r io.ReaderAt, size int64) (*Presentation, error)
}

// ReaderType represents the input format.
type ReaderType string

const (
	ReaderPowerPoint2007 ReaderType = "PowerPoint2007"
)

// NewReader creates a reader for the given format.
func NewReader(format ReaderType) (Reader, error) {
	switch format {
	case ReaderPowerPoint2007:
		return &PPTXReader{}, nil
	default:
		return nil, fmt.Errorf("unsupported reader format: %s", format)
	}
}

// Open reads a PPTX file from disk and returns a Presentation.
// Only slide size, core properties and pictures are recovered.
func Open(path string) (*Presentation, error) {
	reader, err := NewReader(ReaderPowerPoint2007)
	if err != nil {
		return nil, err
	}
	return reader.Read(path)
}

// ReadFrom reads a PPTX from an io.ReaderAt with the given size.
func ReadFrom(r io.ReaderAt, size int64) (*Presentation, error) {
	reader, err := NewReader(ReaderPowerPoint2007)
	if err != nil {
		return nil, err
	}
	return reader.ReadFromReader(r, size)
}

// PPTXReader reads PPTX files.
type PPTXReader struct{}

// Read reads a presentation from a file path.
func (r *PPTXReader) Read(path string) (*Presentation, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}

	return r.ReadFromReader(f, info.Size())
}

// maxZipEntrySize is the maximum allowed size for a single file extracted from a ZIP.
const maxZipEntrySize = 50 << 20 // 50 MB

// maxZipTotalSize is the limit for the archive as a whole.
const maxZipTotalSize = 200 << 20 // 200 MB

// maxZipEntries is the maximum number of files allowed in a ZIP archive.
const maxZipEntries = 10000

// ReadFromReader reads a presentation from an io.ReaderAt.
func (r *PPTXReader) ReadFromReader(reader io.ReaderAt, size int64) (*Presentation, error) {
	if size <= 0 {
		return nil, fmt.Errorf("invalid reader size: %d", size)
	}
	if size > int64(maxZipTotalSize) {
		return nil, fmt.Errorf("file size %d exceeds maximum allowed (%d bytes)", size, maxZipTotalSize)
	}

	zr, err := zip.NewReader(reader, size)
	if err != nil {
		return nil, fmt.Errorf("failed to open zip: %w", err)
	}
	if len(zr.File) > maxZipEntries {
		return nil, fmt.Errorf("zip archive contains too many entries (%d > %d)", len(zr.File), maxZipEntries)
	}
	files := zipIndex(zr)

	pres := &Presentation{
		properties: NewDocumentProperties(),
		slides:     make([]*Slide, 0),
		layout:     NewDocumentLayout(),
	}

	// Missing core properties are acceptable.
	_ = r.readCoreProperties(files, pres)

	slideRels, err := r.readPresentation(files, pres)
	if err != nil {
		return nil, err
	}

	presRels, err := r.readRelationships(files, "ppt/_rels/presentation.xml.rels")
	if err != nil {
		return nil, err
	}

	for _, relID := range slideRels {
		target := ""
		for _, rel := range presRels {
			if rel.ID == relID {
				target = rel.Target
				break
			}
		}
		if target == "" {
			continue
		}
		if !strings.HasPrefix(target, "ppt/") {
			target = "ppt/" + target
		}

		slide, err := r.readSlide(files, target)
		if err != nil {
			return nil, fmt.Errorf("failed to read slide %s: %w", target, err)
		}
		pres.slides = append(pres.slides, slide)
	}

	return pres, nil
}

// zipIndex builds a map from file name to *zip.File for O(1) lookups.
func zipIndex(zr *zip.Reader) map[string]*zip.File {
	m := make(map[string]*zip.File, len(zr.File))
	for _, f := range zr.File {
		m[f.Name] = f
	}
	return m
}

func readFileFromZip(files map[string]*zip.File, name string) ([]byte, error) {
	f, ok := files[name]
	if !ok {
		return nil, fmt.Errorf("file not found in zip: %s", name)
	}
	if f.UncompressedSize64 > maxZipEntrySize {
		return nil, fmt.Errorf("file %s exceeds maximum allowed size (%d bytes)", name, maxZipEntrySize)
	}
	rc, err := f.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open %s in zip: %w", name, err)
	}
	defer rc.Close()
	data, err := io.ReadAll(io.LimitReader(rc, int64(maxZipEntrySize)+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read %s from zip: %w", name, err)
	}
	if int64(len(data)) > int64(maxZipEntrySize) {
		return nil, fmt.Errorf("file %s actual size exceeds maximum allowed size", name)
	}
	return data, nil
}

// --- Relationship reading ---

type xmlRelForRead struct {
	ID         string `xml:"Id,attr"`
	Type       string `xml:"Type,attr"`
	Target     string `xml:"Target,attr"`
	TargetMode string `xml:"TargetMode,attr"`
}

type xmlRelsForRead struct {
	XMLName       xml.Name        `xml:"Relationships"`
	Relationships []xmlRelForRead `xml:"Relationship"`
}

func (r *PPTXReader) readRelationships(files map[string]*zip.File, path string) ([]xmlRelForRead, error) {
	data, err := readFileFromZip(files, path)
	if err != nil {
		return nil, nil // relationships file may not exist
	}

	var rels xmlRelsForRead
	if err := xml.Unmarshal(data, &rels); err != nil {
		return nil, fmt.Errorf("failed to parse relationships %s: %w", path, err)
	}
	return rels.Relationships, nil
}

// --- Presentation and properties ---

type xmlPresentationForRead struct {
	SlideIDs []struct {
		RelID string `xml:"http://schemas.openxmlformats.org/officeDocument/2006/relationships id,attr"`
	} `xml:"sldIdLst>sldId"`
	SlideSize struct {
		CX   int64  `xml:"cx,attr"`
		CY   int64  `xml:"cy,attr"`
		Type string `xml:"type,attr"`
	} `xml:"sldSz"`
}

func (r *PPTXReader) readPresentation(files map[string]*zip.File, pres *Presentation) ([]string, error) {
	data, err := readFileFromZip(files, "ppt/presentation.xml")
	if err != nil {
		return nil, err
	}
	var xp xmlPresentationForRead
	if err := xml.Unmarshal(data, &xp); err != nil {
		return nil, fmt.Errorf("failed to parse presentation.xml: %w", err)
	}

	if xp.SlideSize.CX > 0 && xp.SlideSize.CY > 0 {
		switch xp.SlideSize.Type {
		case LayoutScreen4x3, LayoutScreen16x9:
			pres.layout.Name = xp.SlideSize.Type
			pres.layout.CX = xp.SlideSize.CX
			pres.layout.CY = xp.SlideSize.CY
		default:
			pres.layout.SetCustomLayout(xp.SlideSize.CX, xp.SlideSize.CY)
		}
	}

	ids := make([]string, 0, len(xp.SlideIDs))
	for _, s := range xp.SlideIDs {
		ids = append(ids, s.RelID)
	}
	return ids, nil
}

type xmlCorePropsForRead struct {
	Creator        string `xml:"creator"`
	LastModifiedBy string `xml:"lastModifiedBy"`
	Title          string `xml:"title"`
	Description    string `xml:"description"`
	Subject        string `xml:"subject"`
	Keywords       string `xml:"keywords"`
}

func (r *PPTXReader) readCoreProperties(files map[string]*zip.File, pres *Presentation) error {
	data, err := readFileFromZip(files, "docProps/core.xml")
	if err != nil {
		return err
	}
	var cp xmlCorePropsForRead
	if err := xml.Unmarshal(data, &cp); err != nil {
		return fmt.Errorf("failed to parse core properties: %w", err)
	}
	props := pres.properties
	props.Creator = cp.Creator
	props.LastModifiedBy = cp.LastModifiedBy
	props.Title = cp.Title
	props.Description = cp.Description
	props.Subject = cp.Subject
	props.Keywords = cp.Keywords
	return nil
}

// --- Slides ---

type xmlPicForRead struct {
	CNvPr struct {
		Name  string `xml:"name,attr"`
		Descr string `xml:"descr,attr"`
	} `xml:"nvPicPr>cNvPr"`
	Blip struct {
		Embed string `xml:"embed,attr"`
	} `xml:"blipFill>blip"`
	Off struct {
		X int64 `xml:"x,attr"`
		Y int64 `xml:"y,attr"`
	} `xml:"spPr>xfrm>off"`
	Ext struct {
		CX int64 `xml:"cx,attr"`
		CY int64 `xml:"cy,attr"`
	} `xml:"spPr>xfrm>ext"`
}

type xmlSlideForRead struct {
	Pics []xmlPicForRead `xml:"cSld>spTree>pic"`
}

func (r *PPTXReader) readSlide(files map[string]*zip.File, slidePath string) (*Slide, error) {
	data, err := readFileFromZip(files, slidePath)
	if err != nil {
		return nil, err
	}
	var xs xmlSlideForRead
	if err := xml.Unmarshal(data, &xs); err != nil {
		return nil, fmt.Errorf("failed to parse slide: %w", err)
	}

	relsPath := path.Join(path.Dir(slidePath), "_rels", path.Base(slidePath)+".rels")
	rels, err := r.readRelationships(files, relsPath)
	if err != nil {
		return nil, err
	}

	slide := newSlide()
	for _, pic := range xs.Pics {
		ds := NewDrawingShape()
		ds.name = pic.CNvPr.Name
		ds.description = pic.CNvPr.Descr
		ds.offsetX = pic.Off.X
		ds.offsetY = pic.Off.Y
		ds.width = pic.Ext.CX
		ds.height = pic.Ext.CY

		for _, rel := range rels {
			if rel.ID != pic.Blip.Embed || rel.Type != relTypeImage {
				continue
			}
			mediaPath := path.Join(path.Dir(slidePath), rel.Target)
			img, err := readFileFromZip(files, mediaPath)
			if err != nil {
				return nil, err
			}
			ds.SetImageData(img, mimeFromName(mediaPath))
			break
		}
		slide.shapes = append(slide.shapes, ds)
	}
	return slide, nil
}
