package pptx

import (
	"archive/zip"
	"encoding/xml"
	"fmt"
	"strings"
)

// XML namespace constants
const (
	nsRelationships  = "http://schemas.openxmlformats.org/package/2006/relationships"
	nsContentTypes   = "http://schemas.openxmlformats.org/package/2006/content-types"
	nsPresentationML = "http://schemas.openxmlformats.org/presentationml/2006/main"
	nsDrawingML      = "http://schemas.openxmlformats.org/drawingml/2006/main"
	nsOfficeDocRels  = "http://schemas.openxmlformats.org/officeDocument/2006/relationships"
	nsDCTerms        = "http://purl.org/dc/terms/"
	nsDC             = "http://purl.org/dc/elements/1.1/"
	nsCoreProperties = "http://schemas.openxmlformats.org/package/2006/metadata/core-properties"
	nsExtProperties  = "http://schemas.openxmlformats.org/officeDocument/2006/extended-properties"
	nsXSI            = "http://www.w3.org/2001/XMLSchema-instance"

	relTypeSlide       = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/slide"
	relTypeSlideMaster = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/slideMaster"
	relTypeSlideLayout = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/slideLayout"
	relTypeTheme       = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/theme"
	relTypePresProps   = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/presProps"
	relTypeViewProps   = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/viewProps"
	relTypeTableStyles = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/tableStyles"
	relTypeOfficeDoc   = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument"
	relTypeCoreProps   = "http://schemas.openxmlformats.org/package/2006/relationships/metadata/core-properties"
	relTypeExtProps    = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/extended-properties"
	relTypeImage       = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/image"

	ctPresentation = "application/vnd.openxmlformats-officedocument.presentationml.presentation.main+xml"
	ctSlide        = "application/vnd.openxmlformats-officedocument.presentationml.slide+xml"
	ctSlideMaster  = "application/vnd.openxmlformats-officedocument.presentationml.slideMaster+xml"
	ctSlideLayout  = "application/vnd.openxmlformats-officedocument.presentationml.slideLayout+xml"
	ctTheme        = "application/vnd.openxmlformats-officedocument.theme+xml"
	ctPresProps    = "application/vnd.openxmlformats-officedocument.presentationml.presProps+xml"
	ctViewProps    = "application/vnd.openxmlformats-officedocument.presentationml.viewProps+xml"
	ctTableStyles  = "application/vnd.openxmlformats-officedocument.presentationml.tableStyles+xml"
	ctCoreProps    = "application/vnd.openxmlformats-package.core-properties+xml"
	ctExtProps     = "application/vnd.openxmlformats-officedocument.extended-properties+xml"
	ctRels         = "application/vnd.openxmlformats-package.relationships+xml"
)

func writeXMLToZip(zw *zip.Writer, path string, v interface{}) error {
	fw, err := zw.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s in zip: %w", path, err)
	}
	if _, err := fw.Write([]byte(xml.Header)); err != nil {
		return err
	}
	enc := xml.NewEncoder(fw)
	enc.Indent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	return nil
}

func writeRawXMLToZip(zw *zip.Writer, path string, content string) error {
	fw, err := zw.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s in zip: %w", path, err)
	}
	_, err = fw.Write([]byte(content))
	return err
}

// --- Content Types ---

type xmlContentTypes struct {
	XMLName   xml.Name      `xml:"Types"`
	Xmlns     string        `xml:"xmlns,attr"`
	Defaults  []xmlDefault  `xml:"Default"`
	Overrides []xmlOverride `xml:"Override"`
}

type xmlDefault struct {
	Extension   string `xml:"Extension,attr"`
	ContentType string `xml:"ContentType,attr"`
}

type xmlOverride struct {
	PartName    string `xml:"PartName,attr"`
	ContentType string `xml:"ContentType,attr"`
}

func (w *PPTXWriter) writeContentTypes(zw *zip.Writer) error {
	ct := xmlContentTypes{
		Xmlns: nsContentTypes,
		Defaults: []xmlDefault{
			{Extension: "rels", ContentType: ctRels},
			{Extension: "xml", ContentType: "application/xml"},
		},
		Overrides: []xmlOverride{
			{PartName: "/ppt/presentation.xml", ContentType: ctPresentation},
			{PartName: "/ppt/presProps.xml", ContentType: ctPresProps},
			{PartName: "/ppt/viewProps.xml", ContentType: ctViewProps},
			{PartName: "/ppt/tableStyles.xml", ContentType: ctTableStyles},
			{PartName: "/ppt/slideMasters/slideMaster1.xml", ContentType: ctSlideMaster},
			{PartName: "/ppt/slideLayouts/slideLayout1.xml", ContentType: ctSlideLayout},
			{PartName: "/ppt/theme/theme1.xml", ContentType: ctTheme},
			{PartName: "/docProps/core.xml", ContentType: ctCoreProps},
			{PartName: "/docProps/app.xml", ContentType: ctExtProps},
		},
	}

	for i := range w.presentation.slides {
		ct.Overrides = append(ct.Overrides, xmlOverride{
			PartName:    fmt.Sprintf("/ppt/slides/slide%d.xml", i+1),
			ContentType: ctSlide,
		})
	}

	seen := map[string]bool{"rels": true, "xml": true}
	for _, slide := range w.presentation.slides {
		pics, _ := pictures(slide, 0)
		for _, pic := range pics {
			ds := pic.shape
			ext := mediaExtension(ds)
			if seen[ext] {
				continue
			}
			seen[ext] = true
			ct.Defaults = append(ct.Defaults, xmlDefault{
				Extension:   ext,
				ContentType: mediaContentType(ds),
			})
		}
	}

	return writeXMLToZip(zw, "[Content_Types].xml", ct)
}

// mediaExtensions maps the picture MIME types the writer embeds to the
// part extension used under ppt/media.
var mediaExtensions = map[string]string{
	"image/png":  "png",
	"image/jpeg": "jpeg",
	"image/gif":  "gif",
	"image/bmp":  "bmp",
}

func mediaExtension(ds *DrawingShape) string {
	if ext, ok := mediaExtensions[ds.mimeType]; ok {
		return ext
	}
	return "png"
}

func mediaContentType(ds *DrawingShape) string {
	if _, ok := mediaExtensions[ds.mimeType]; ok {
		return ds.mimeType
	}
	return "image/png"
}

// --- Relationships ---

type xmlRelationships struct {
	XMLName       xml.Name          `xml:"Relationships"`
	Xmlns         string            `xml:"xmlns,attr"`
	Relationships []xmlRelationship `xml:"Relationship"`
}

type xmlRelationship struct {
	ID         string `xml:"Id,attr"`
	Type       string `xml:"Type,attr"`
	Target     string `xml:"Target,attr"`
	TargetMode string `xml:"TargetMode,attr,omitempty"`
}

func (w *PPTXWriter) writeRootRels(zw *zip.Writer) error {
	rels := xmlRelationships{
		Xmlns: nsRelationships,
		Relationships: []xmlRelationship{
			{ID: "rId1", Type: relTypeOfficeDoc, Target: "ppt/presentation.xml"},
			{ID: "rId2", Type: relTypeCoreProps, Target: "docProps/core.xml"},
			{ID: "rId3", Type: relTypeExtProps, Target: "docProps/app.xml"},
		},
	}
	return writeXMLToZip(zw, "_rels/.rels", rels)
}

// slideRelID returns the presentation-level relationship ID of slide n
// (1-based). rId1 is the slide master.
func slideRelID(n int) string {
	return fmt.Sprintf("rId%d", n+1)
}

func (w *PPTXWriter) writePresentationRels(zw *zip.Writer) error {
	rels := xmlRelationships{
		Xmlns: nsRelationships,
	}
	rels.Relationships = append(rels.Relationships, xmlRelationship{
		ID:     "rId1",
		Type:   relTypeSlideMaster,
		Target: "slideMasters/slideMaster1.xml",
	})

	n := len(w.presentation.slides)
	for i := 1; i <= n; i++ {
		rels.Relationships = append(rels.Relationships, xmlRelationship{
			ID:     slideRelID(i),
			Type:   relTypeSlide,
			Target: fmt.Sprintf("slides/slide%d.xml", i),
		})
	}

	relIdx := n + 2
	for _, r := range []struct{ typ, target string }{
		{relTypePresProps, "presProps.xml"},
		{relTypeViewProps, "viewProps.xml"},
		{relTypeTableStyles, "tableStyles.xml"},
		{relTypeTheme, "theme/theme1.xml"},
	} {
		rels.Relationships = append(rels.Relationships, xmlRelationship{
			ID:     fmt.Sprintf("rId%d", relIdx),
			Type:   r.typ,
			Target: r.target,
		})
		relIdx++
	}

	return writeXMLToZip(zw, "ppt/_rels/presentation.xml.rels", rels)
}

// --- App Properties ---

func (w *PPTXWriter) writeAppProperties(zw *zip.Writer) error {
	props := w.presentation.properties
	content := fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Properties xmlns="%s" xmlns:vt="http://schemas.openxmlformats.org/officeDocument/2006/docPropsVTypes">
  <Application>logogrid v%s</Application>
  <Company>%s</Company>
  <AppVersion>%s</AppVersion>
  <Slides>%d</Slides>
</Properties>`, nsExtProperties, Version, xmlEscape(props.Company), Version, len(w.presentation.slides))
	return writeRawXMLToZip(zw, "docProps/app.xml", content)
}

// --- Core Properties ---

func (w *PPTXWriter) writeCoreProperties(zw *zip.Writer) error {
	props := w.presentation.properties
	content := fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<cp:coreProperties xmlns:cp="%s" xmlns:dc="%s" xmlns:dcterms="%s" xmlns:xsi="%s">
  <dc:creator>%s</dc:creator>
  <cp:lastModifiedBy>%s</cp:lastModifiedBy>
  <dc:title>%s</dc:title>
  <dc:description>%s</dc:description>
  <dc:subject>%s</dc:subject>
  <cp:keywords>%s</cp:keywords>
  <dcterms:created xsi:type="dcterms:W3CDTF">%s</dcterms:created>
  <dcterms:modified xsi:type="dcterms:W3CDTF">%s</dcterms:modified>
</cp:coreProperties>`,
		nsCoreProperties, nsDC, nsDCTerms, nsXSI,
		xmlEscape(props.Creator),
		xmlEscape(props.LastModifiedBy),
		xmlEscape(props.Title),
		xmlEscape(props.Description),
		xmlEscape(props.Subject),
		xmlEscape(props.Keywords),
		props.Created.UTC().Format("2006-01-02T15:04:05Z"),
		props.Modified.UTC().Format("2006-01-02T15:04:05Z"),
	)
	return writeRawXMLToZip(zw, "docProps/core.xml", content)
}

// xmlEscape escapes special XML characters using the standard library.
func xmlEscape(s string) string {
	var b strings.Builder
	if err := xml.EscapeText(&b, []byte(s)); err != nil {
		return s
	}
	return b.String()
}
