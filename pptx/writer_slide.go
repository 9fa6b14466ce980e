package pptx

import (
	"archive/zip"
	"fmt"
	"os"
	"strings"
)

// slidePicture is a picture as it appears in one slide part: its
// relationship id within the slide and its media part number in the deck.
type slidePicture struct {
	shape *DrawingShape
	relID int
	media int
}

// pictures lists the pictures of slide. first is the media number of the
// slide's first picture; the returned next is the number after its last.
func pictures(slide *Slide, first int) (pics []slidePicture, next int) {
	next = first
	relID := 2 // rId1 is the slide layout
	for _, shape := range slide.shapes {
		ds, ok := shape.(*DrawingShape)
		if !ok || !ds.hasImage() {
			continue
		}
		pics = append(pics, slidePicture{shape: ds, relID: relID, media: next})
		relID++
		next++
	}
	return pics, next
}

func (w *PPTXWriter) writeSlide(zw *zip.Writer, slideNum int, pics []slidePicture) error {
	var b strings.Builder
	fmt.Fprintf(&b, `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<p:sld xmlns:a="%s" xmlns:r="%s" xmlns:p="%s">
  <p:cSld>
    <p:spTree>
%s`, nsDrawingML, nsOfficeDocRels, nsPresentationML, emptySpTreeHeader)
	for i, pic := range pics {
		writePictureXML(&b, pic, i+2) // id 1 is the tree itself
	}
	b.WriteString(`    </p:spTree>
  </p:cSld>
  <p:clrMapOvr>
    <a:masterClrMapping/>
  </p:clrMapOvr>
</p:sld>`)
	return writeRawXMLToZip(zw, fmt.Sprintf("ppt/slides/slide%d.xml", slideNum), b.String())
}

func (w *PPTXWriter) writeSlideRels(zw *zip.Writer, slideNum int, pics []slidePicture) error {
	var b strings.Builder
	fmt.Fprintf(&b, `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="%s">
  <Relationship Id="rId1" Type="%s" Target="../slideLayouts/slideLayout1.xml"/>`, nsRelationships, relTypeSlideLayout)
	for _, pic := range pics {
		fmt.Fprintf(&b, `
  <Relationship Id="rId%d" Type="%s" Target="../media/%s"/>`,
			pic.relID, relTypeImage, mediaName(pic))
	}
	b.WriteString(`
</Relationships>`)
	return writeRawXMLToZip(zw, fmt.Sprintf("ppt/slides/_rels/slide%d.xml.rels", slideNum), b.String())
}

func mediaName(pic slidePicture) string {
	return fmt.Sprintf("image%d.%s", pic.media, mediaExtension(pic.shape))
}

func writePictureXML(b *strings.Builder, pic slidePicture, id int) {
	s := pic.shape
	name := s.name
	if name == "" {
		name = fmt.Sprintf("Picture %d", id-1)
	}
	fmt.Fprintf(b, `      <p:pic>
        <p:nvPicPr>
          <p:cNvPr id="%d" name="%s" descr="%s"/>
          <p:cNvPicPr>
            <a:picLocks noChangeAspect="1"/>
          </p:cNvPicPr>
          <p:nvPr/>
        </p:nvPicPr>
        <p:blipFill>
          <a:blip r:embed="rId%d"/>
          <a:stretch>
            <a:fillRect/>
          </a:stretch>
        </p:blipFill>
        <p:spPr>
          <a:xfrm>
            <a:off x="%d" y="%d"/>
            <a:ext cx="%d" cy="%d"/>
          </a:xfrm>
          <a:prstGeom prst="rect">
            <a:avLst/>
          </a:prstGeom>
        </p:spPr>
      </p:pic>
`, id, xmlEscape(name), xmlEscape(s.description), pic.relID,
		s.offsetX, s.offsetY, s.width, s.height)
}

func (w *PPTXWriter) writeMedia(zw *zip.Writer, pics []slidePicture) error {
	for _, pic := range pics {
		data, err := pictureBytes(pic.shape)
		if err != nil {
			return err
		}
		fw, err := zw.Create("ppt/media/" + mediaName(pic))
		if err != nil {
			return err
		}
		if _, err := fw.Write(data); err != nil {
			return err
		}
	}
	return nil
}

// pictureBytes returns the embedded data, or reads the picture's file.
func pictureBytes(ds *DrawingShape) ([]byte, error) {
	if ds.data != nil {
		return ds.data, nil
	}
	info, err := os.Stat(ds.path)
	if err != nil {
		return nil, fmt.Errorf("picture %s: %w", ds.path, err)
	}
	if info.Size() > maxImageFileSize {
		return nil, fmt.Errorf("picture %s too large: %d bytes (max %d)", ds.path, info.Size(), maxImageFileSize)
	}
	data, err := os.ReadFile(ds.path)
	if err != nil {
		return nil, fmt.Errorf("picture %s: %w", ds.path, err)
	}
	return data, nil
}
