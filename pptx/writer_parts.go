package pptx

import (
	"archive/zip"
	"fmt"
	"strings"
)

// emptySpTreeHeader is the group shape header every shape tree starts with.
const emptySpTreeHeader = `      <p:nvGrpSpPr>
        <p:cNvPr id="1" name=""/>
        <p:cNvGrpSpPr/>
        <p:nvPr/>
      </p:nvGrpSpPr>
      <p:grpSpPr>
        <a:xfrm>
          <a:off x="0" y="0"/>
          <a:ext cx="0" cy="0"/>
          <a:chOff x="0" y="0"/>
          <a:chExt cx="0" cy="0"/>
        </a:xfrm>
      </p:grpSpPr>
`

// --- Presentation ---

func (w *PPTXWriter) writePresentation(zw *zip.Writer) error {
	layout := w.presentation.layout

	var sldIDs strings.Builder
	for i := range w.presentation.slides {
		fmt.Fprintf(&sldIDs, "    <p:sldId id=\"%d\" r:id=\"%s\"/>\n", 256+i, slideRelID(i+1))
	}

	content := fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<p:presentation xmlns:a="%s" xmlns:r="%s" xmlns:p="%s" saveSubsetFonts="1">
  <p:sldMasterIdLst>
    <p:sldMasterId id="2147483648" r:id="rId1"/>
  </p:sldMasterIdLst>
  <p:sldIdLst>
%s  </p:sldIdLst>
  <p:sldSz cx="%d" cy="%d" type="%s"/>
  <p:notesSz cx="6858000" cy="9144000"/>
</p:presentation>`, nsDrawingML, nsOfficeDocRels, nsPresentationML,
		sldIDs.String(), layout.CX, layout.CY, layout.presentationSizeType())
	return writeRawXMLToZip(zw, "ppt/presentation.xml", content)
}

func (w *PPTXWriter) writePresProps(zw *zip.Writer) error {
	content := fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<p:presentationPr xmlns:a="%s" xmlns:r="%s" xmlns:p="%s"/>`, nsDrawingML, nsOfficeDocRels, nsPresentationML)
	return writeRawXMLToZip(zw, "ppt/presProps.xml", content)
}

func (w *PPTXWriter) writeViewProps(zw *zip.Writer) error {
	content := fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<p:viewPr xmlns:a="%s" xmlns:r="%s" xmlns:p="%s">
  <p:gridSpacing cx="76200" cy="76200"/>
</p:viewPr>`, nsDrawingML, nsOfficeDocRels, nsPresentationML)
	return writeRawXMLToZip(zw, "ppt/viewProps.xml", content)
}

func (w *PPTXWriter) writeTableStyles(zw *zip.Writer) error {
	content := fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<a:tblStyleLst xmlns:a="%s" def="{5C22544A-7EE6-4342-B048-85BDC9FD1C3A}"/>`, nsDrawingML)
	return writeRawXMLToZip(zw, "ppt/tableStyles.xml", content)
}

// --- Slide master and layout ---

func (w *PPTXWriter) writeSlideMaster(zw *zip.Writer) error {
	content := fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<p:sldMaster xmlns:a="%s" xmlns:r="%s" xmlns:p="%s">
  <p:cSld>
    <p:bg>
      <p:bgRef idx="1001">
        <a:schemeClr val="bg1"/>
      </p:bgRef>
    </p:bg>
    <p:spTree>
%s    </p:spTree>
  </p:cSld>
  <p:clrMap bg1="lt1" tx1="dk1" bg2="lt2" tx2="dk2" accent1="accent1" accent2="accent2" accent3="accent3" accent4="accent4" accent5="accent5" accent6="accent6" hlink="hlink" folHlink="folHlink"/>
  <p:sldLayoutIdLst>
    <p:sldLayoutId id="2147483649" r:id="rId1"/>
  </p:sldLayoutIdLst>
</p:sldMaster>`, nsDrawingML, nsOfficeDocRels, nsPresentationML, emptySpTreeHeader)
	if err := writeRawXMLToZip(zw, "ppt/slideMasters/slideMaster1.xml", content); err != nil {
		return err
	}

	rels := xmlRelationships{
		Xmlns: nsRelationships,
		Relationships: []xmlRelationship{
			{ID: "rId1", Type: relTypeSlideLayout, Target: "../slideLayouts/slideLayout1.xml"},
			{ID: "rId2", Type: relTypeTheme, Target: "../theme/theme1.xml"},
		},
	}
	return writeXMLToZip(zw, "ppt/slideMasters/_rels/slideMaster1.xml.rels", rels)
}

func (w *PPTXWriter) writeSlideLayout(zw *zip.Writer) error {
	content := fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<p:sldLayout xmlns:a="%s" xmlns:r="%s" xmlns:p="%s" type="blank" preserve="1">
  <p:cSld name="Blank">
    <p:spTree>
%s    </p:spTree>
  </p:cSld>
  <p:clrMapOvr>
    <a:masterClrMapping/>
  </p:clrMapOvr>
</p:sldLayout>`, nsDrawingML, nsOfficeDocRels, nsPresentationML, emptySpTreeHeader)
	if err := writeRawXMLToZip(zw, "ppt/slideLayouts/slideLayout1.xml", content); err != nil {
		return err
	}

	rels := xmlRelationships{
		Xmlns: nsRelationships,
		Relationships: []xmlRelationship{
			{ID: "rId1", Type: relTypeSlideMaster, Target: "../slideMasters/slideMaster1.xml"},
		},
	}
	return writeXMLToZip(zw, "ppt/slideLayouts/_rels/slideLayout1.xml.rels", rels)
}

// --- Theme ---

func (w *PPTXWriter) writeTheme(zw *zip.Writer) error {
	content := fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<a:theme xmlns:a="%s" name="Office Theme">
  <a:themeElements>
    <a:clrScheme name="Office">
      <a:dk1><a:sysClr val="windowText" lastClr="000000"/></a:dk1>
      <a:lt1><a:sysClr val="window" lastClr="FFFFFF"/></a:lt1>
      <a:dk2><a:srgbClr val="44546A"/></a:dk2>
      <a:lt2><a:srgbClr val="E7E6E6"/></a:lt2>
      <a:accent1><a:srgbClr val="4472C4"/></a:accent1>
      <a:accent2><a:srgbClr val="ED7D31"/></a:accent2>
      <a:accent3><a:srgbClr val="A5A5A5"/></a:accent3>
      <a:accent4><a:srgbClr val="FFC000"/></a:accent4>
      <a:accent5><a:srgbClr val="5B9BD5"/></a:accent5>
      <a:accent6><a:srgbClr val="70AD47"/></a:accent6>
      <a:hlink><a:srgbClr val="0563C1"/></a:hlink>
      <a:folHlink><a:srgbClr val="954F72"/></a:folHlink>
    </a:clrScheme>
    <a:fontScheme name="Office">
      <a:majorFont><a:latin typeface="Calibri Light"/><a:ea typeface=""/><a:cs typeface=""/></a:majorFont>
      <a:minorFont><a:latin typeface="Calibri"/><a:ea typeface=""/><a:cs typeface=""/></a:minorFont>
    </a:fontScheme>
    <a:fmtScheme name="Office">
      <a:fillStyleLst>
        <a:solidFill><a:schemeClr val="phClr"/></a:solidFill>
        <a:solidFill><a:schemeClr val="phClr"/></a:solidFill>
        <a:solidFill><a:schemeClr val="phClr"/></a:solidFill>
      </a:fillStyleLst>
      <a:lnStyleLst>
        <a:ln w="6350"><a:solidFill><a:schemeClr val="phClr"/></a:solidFill></a:ln>
        <a:ln w="12700"><a:solidFill><a:schemeClr val="phClr"/></a:solidFill></a:ln>
        <a:ln w="19050"><a:solidFill><a:schemeClr val="phClr"/></a:solidFill></a:ln>
      </a:lnStyleLst>
      <a:effectStyleLst>
        <a:effectStyle><a:effectLst/></a:effectStyle>
        <a:effectStyle><a:effectLst/></a:effectStyle>
        <a:effectStyle><a:effectLst/></a:effectStyle>
      </a:effectStyleLst>
      <a:bgFillStyleLst>
        <a:solidFill><a:schemeClr val="phClr"/></a:solidFill>
        <a:solidFill><a:schemeClr val="phClr"/></a:solidFill>
        <a:solidFill><a:schemeClr val="phClr"/></a:solidFill>
      </a:bgFillStyleLst>
    </a:fmtScheme>
  </a:themeElements>
</a:theme>`, nsDrawingML)
	return writeRawXMLToZip(zw, "ppt/theme/theme1.xml", content)
}
