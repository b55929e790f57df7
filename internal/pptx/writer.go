// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pptx

import (
	"archive/zip"
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Save writes the document to a PPTX file, creating parent directories
// as needed. A failed write removes the partial file.
func (d *Doc) Save(path string) error {
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating directory %s: %w", dir, err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}

	writeErr := d.WriteTo(f)
	closeErr := f.Close()
	if writeErr != nil {
		os.Remove(path)
		return fmt.Errorf("writing %s: %w", path, writeErr)
	}
	return closeErr
}

// WriteTo writes the document to w in PPTX format.
func (d *Doc) WriteTo(w io.Writer) error {
	zw := zip.NewWriter(w)
	media, mediaByPath := d.mediaIndex()

	if err := d.writeContentTypes(zw, media); err != nil {
		return err
	}
	if err := writePart(zw, "_rels/.rels", rootRelsXML); err != nil {
		return err
	}
	if err := d.writeDocProps(zw); err != nil {
		return err
	}
	if err := d.writePresentation(zw); err != nil {
		return err
	}
	if err := d.writePresentationRels(zw); err != nil {
		return err
	}
	if err := writePart(zw, "ppt/presProps.xml", presPropsXML); err != nil {
		return err
	}
	if err := writePart(zw, "ppt/viewProps.xml", viewPropsXML); err != nil {
		return err
	}
	if err := writePart(zw, "ppt/tableStyles.xml", tableStylesXML); err != nil {
		return err
	}
	if err := writePart(zw, "ppt/slideMasters/slideMaster1.xml", slideMasterXML); err != nil {
		return err
	}
	if err := writePart(zw, "ppt/slideMasters/_rels/slideMaster1.xml.rels", slideMasterRelsXML); err != nil {
		return err
	}
	if err := writePart(zw, "ppt/slideLayouts/slideLayout1.xml", slideLayoutXMLPart); err != nil {
		return err
	}
	if err := writePart(zw, "ppt/slideLayouts/_rels/slideLayout1.xml.rels", slideLayoutRelsXML); err != nil {
		return err
	}
	if err := writePart(zw, "ppt/theme/theme1.xml", themeXML); err != nil {
		return err
	}

	for i, slide := range d.slides {
		if err := d.writeSlide(zw, slide, i+1); err != nil {
			return err
		}
		if err := d.writeSlideRels(zw, slide, i+1, mediaByPath, media); err != nil {
			return err
		}
	}

	for i, m := range media {
		data, err := readImageFile(m.path)
		if err != nil {
			return err
		}
		fw, err := zw.Create(fmt.Sprintf("ppt/media/image%d.%s", i+1, m.ext))
		if err != nil {
			return err
		}
		if _, err := fw.Write(data); err != nil {
			return err
		}
	}

	return zw.Close()
}

func writePart(zw *zip.Writer, path, content string) error {
	fw, err := zw.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s in package: %w", path, err)
	}
	_, err = fw.Write([]byte(content))
	return err
}

func xmlEscape(s string) string {
	var b strings.Builder
	if err := xml.EscapeText(&b, []byte(s)); err != nil {
		return s
	}
	return b.String()
}

// --- Content types and package metadata ---

func (d *Doc) writeContentTypes(zw *zip.Writer, media []mediaEntry) error {
	var sb strings.Builder
	fmt.Fprintf(&sb, `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="%s">
  <Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>
  <Default Extension="xml" ContentType="application/xml"/>`, nsContentTypes)

	seen := make(map[string]bool)
	for _, m := range media {
		if seen[m.ext] {
			continue
		}
		seen[m.ext] = true
		fmt.Fprintf(&sb, "\n  <Default Extension=%q ContentType=%q/>", m.ext, imageContentType(m.ext))
	}

	sb.WriteString(`
  <Override PartName="/ppt/presentation.xml" ContentType="application/vnd.openxmlformats-officedocument.presentationml.presentation.main+xml"/>
  <Override PartName="/ppt/presProps.xml" ContentType="application/vnd.openxmlformats-officedocument.presentationml.presProps+xml"/>
  <Override PartName="/ppt/viewProps.xml" ContentType="application/vnd.openxmlformats-officedocument.presentationml.viewProps+xml"/>
  <Override PartName="/ppt/tableStyles.xml" ContentType="application/vnd.openxmlformats-officedocument.presentationml.tableStyles+xml"/>
  <Override PartName="/ppt/slideMasters/slideMaster1.xml" ContentType="application/vnd.openxmlformats-officedocument.presentationml.slideMaster+xml"/>
  <Override PartName="/ppt/slideLayouts/slideLayout1.xml" ContentType="application/vnd.openxmlformats-officedocument.presentationml.slideLayout+xml"/>
  <Override PartName="/ppt/theme/theme1.xml" ContentType="application/vnd.openxmlformats-officedocument.theme+xml"/>
  <Override PartName="/docProps/core.xml" ContentType="application/vnd.openxmlformats-package.core-properties+xml"/>
  <Override PartName="/docProps/app.xml" ContentType="application/vnd.openxmlformats-officedocument.extended-properties+xml"/>`)

	for i := range d.slides {
		fmt.Fprintf(&sb, "\n  <Override PartName=\"/ppt/slides/slide%d.xml\" ContentType=\"application/vnd.openxmlformats-officedocument.presentationml.slide+xml\"/>", i+1)
	}
	sb.WriteString("\n</Types>")
	return writePart(zw, "[Content_Types].xml", sb.String())
}

func imageContentType(ext string) string {
	switch ext {
	case "jpeg", "jpg":
		return "image/jpeg"
	case "gif":
		return "image/gif"
	case "bmp":
		return "image/bmp"
	default:
		return "image/png"
	}
}

const rootRelsXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
  <Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="ppt/presentation.xml"/>
  <Relationship Id="rId2" Type="http://schemas.openxmlformats.org/package/2006/relationships/metadata/core-properties" Target="docProps/core.xml"/>
  <Relationship Id="rId3" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/extended-properties" Target="docProps/app.xml"/>
</Relationships>`

func (d *Doc) writeDocProps(zw *zip.Writer) error {
	now := time.Now().UTC().Format("2006-01-02T15:04:05Z")
	core := fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<cp:coreProperties xmlns:cp="http://schemas.openxmlformats.org/package/2006/metadata/core-properties" xmlns:dc="http://purl.org/dc/elements/1.1/" xmlns:dcterms="http://purl.org/dc/terms/" xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance">
  <dc:creator>carousel</dc:creator>
  <cp:lastModifiedBy>carousel</cp:lastModifiedBy>
  <dcterms:created xsi:type="dcterms:W3CDTF">%s</dcterms:created>
  <dcterms:modified xsi:type="dcterms:W3CDTF">%s</dcterms:modified>
</cp:coreProperties>`, now, now)
	if err := writePart(zw, "docProps/core.xml", core); err != nil {
		return err
	}

	app := fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Properties xmlns="http://schemas.openxmlformats.org/officeDocument/2006/extended-properties" xmlns:vt="http://schemas.openxmlformats.org/officeDocument/2006/docPropsVTypes">
  <Application>carousel</Application>
  <Slides>%d</Slides>
</Properties>`, len(d.slides))
	return writePart(zw, "docProps/app.xml", app)
}

// --- Presentation part ---

func (d *Doc) writePresentation(zw *zip.Writer) error {
	var slideIDs strings.Builder
	for i := range d.slides {
		fmt.Fprintf(&slideIDs, "\n    <p:sldId id=\"%d\" r:id=\"rId%d\"/>", 256+i, 2+i)
	}

	content := fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<p:presentation xmlns:a="%s" xmlns:r="%s" xmlns:p="%s">
  <p:sldMasterIdLst>
    <p:sldMasterId id="2147483648" r:id="rId1"/>
  </p:sldMasterIdLst>
  <p:sldIdLst>%s
  </p:sldIdLst>
  <p:sldSz cx="%d" cy="%d"/>
  <p:notesSz cx="6858000" cy="9144000"/>
</p:presentation>`, nsDrawingML, nsOfficeDocRels, nsPresentationML,
		slideIDs.String(), d.widthEMU, d.heightEMU)
	return writePart(zw, "ppt/presentation.xml", content)
}

func (d *Doc) writePresentationRels(zw *zip.Writer) error {
	var sb strings.Builder
	fmt.Fprintf(&sb, `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="%s">
  <Relationship Id="rId1" Type="%s" Target="slideMasters/slideMaster1.xml"/>`, nsRelationships, relTypeSlideMaster)

	relIdx := 2
	for i := range d.slides {
		fmt.Fprintf(&sb, "\n  <Relationship Id=\"rId%d\" Type=%q Target=\"slides/slide%d.xml\"/>", relIdx, relTypeSlide, i+1)
		relIdx++
	}
	fmt.Fprintf(&sb, "\n  <Relationship Id=\"rId%d\" Type=%q Target=\"presProps.xml\"/>", relIdx, relTypePresProps)
	relIdx++
	fmt.Fprintf(&sb, "\n  <Relationship Id=\"rId%d\" Type=%q Target=\"viewProps.xml\"/>", relIdx, relTypeViewProps)
	relIdx++
	fmt.Fprintf(&sb, "\n  <Relationship Id=\"rId%d\" Type=%q Target=\"tableStyles.xml\"/>", relIdx, relTypeTableStyles)
	relIdx++
	fmt.Fprintf(&sb, "\n  <Relationship Id=\"rId%d\" Type=%q Target=\"theme/theme1.xml\"/>", relIdx, relTypeTheme)
	sb.WriteString("\n</Relationships>")
	return writePart(zw, "ppt/_rels/presentation.xml.rels", sb.String())
}

// --- Slides ---

func (d *Doc) writeSlide(zw *zip.Writer, slide *DocSlide, slideNum int) error {
	var shapesXML strings.Builder
	shapeID := 2 // 1 is reserved for the group shape
	relIdx := 2  // rId1 is the slide layout

	for _, shape := range slide.shapes {
		switch s := shape.(type) {
		case *Picture:
			shapesXML.WriteString(pictureXML(s, shapeID, relIdx))
			shapeID++
			relIdx++
		case *Rect:
			shapesXML.WriteString(rectXML(s, shapeID))
			shapeID++
		case *TextBox:
			shapesXML.WriteString(textBoxXML(s, shapeID))
			shapeID++
		}
	}

	bgXML := ""
	if slide.BackgroundHex != "" {
		bgXML = fmt.Sprintf(`    <p:bg>
      <p:bgPr>
        <a:solidFill><a:srgbClr val="%s"/></a:solidFill>
        <a:effectLst/>
      </p:bgPr>
    </p:bg>
`, slide.BackgroundHex)
	}

	content := fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<p:sld xmlns:a="%s" xmlns:r="%s" xmlns:p="%s">
  <p:cSld>
%s    <p:spTree>
      <p:nvGrpSpPr>
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
%s    </p:spTree>
  </p:cSld>
  <p:clrMapOvr>
    <a:masterClrMapping/>
  </p:clrMapOvr>
</p:sld>`, nsDrawingML, nsOfficeDocRels, nsPresentationML, bgXML, shapesXML.String())

	return writePart(zw, fmt.Sprintf("ppt/slides/slide%d.xml", slideNum), content)
}

func (d *Doc) writeSlideRels(zw *zip.Writer, slide *DocSlide, slideNum int, mediaByPath map[string]int, media []mediaEntry) error {
	var sb strings.Builder
	fmt.Fprintf(&sb, `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="%s">
  <Relationship Id="rId1" Type="%s" Target="../slideLayouts/slideLayout1.xml"/>`, nsRelationships, relTypeSlideLayout)

	relIdx := 2
	for _, shape := range slide.shapes {
		pic, ok := shape.(*Picture)
		if !ok {
			continue
		}
		idx := mediaByPath[pic.Path]
		fmt.Fprintf(&sb, "\n  <Relationship Id=\"rId%d\" Type=%q Target=\"../media/image%d.%s\"/>",
			relIdx, relTypeImage, idx, media[idx-1].ext)
		relIdx++
	}
	sb.WriteString("\n</Relationships>")
	return writePart(zw, fmt.Sprintf("ppt/slides/_rels/slide%d.xml.rels", slideNum), sb.String())
}

func pictureXML(p *Picture, shapeID, relIdx int) string {
	lnXML := ""
	if p.BorderHex != "" {
		width := int64(p.BorderWidthPt * emuPerPoint)
		if width <= 0 {
			width = emuPerPoint
		}
		lnXML = fmt.Sprintf("\n          <a:ln w=\"%d\"><a:solidFill><a:srgbClr val=\"%s\"/></a:solidFill></a:ln>", width, p.BorderHex)
	}

	name := filepath.Base(p.Path)
	return fmt.Sprintf(`      <p:pic>
        <p:nvPicPr>
          <p:cNvPr id="%d" name="%s"/>
          <p:cNvPicPr>
            <a:picLocks noChangeAspect="1"/>
          </p:cNvPicPr>
          <p:nvPr/>
        </p:nvPicPr>
        <p:blipFill>
          <a:blip r:embed="rId%d"/>
          <a:stretch><a:fillRect/></a:stretch>
        </p:blipFill>
        <p:spPr>
          <a:xfrm>
            <a:off x="%d" y="%d"/>
            <a:ext cx="%d" cy="%d"/>
          </a:xfrm>
          <a:prstGeom prst="rect"><a:avLst/></a:prstGeom>%s
        </p:spPr>
      </p:pic>
`, shapeID, xmlEscape(name), relIdx, p.OffX, p.OffY, p.CX, p.CY, lnXML)
}

func rectXML(r *Rect, shapeID int) string {
	rotAttr := ""
	if r.Rotation != 0 {
		rotAttr = fmt.Sprintf(` rot="%d"`, int64(r.Rotation*60000))
	}

	fillXML := ""
	switch {
	case r.Gradient != nil:
		var stops strings.Builder
		for _, stop := range r.Gradient.Stops {
			alphaXML := ""
			if stop.Alpha < 100000 {
				alphaXML = fmt.Sprintf(`<a:alpha val="%d"/>`, stop.Alpha)
			}
			fmt.Fprintf(&stops, "\n              <a:gs pos=\"%d\"><a:srgbClr val=\"%s\">%s</a:srgbClr></a:gs>", stop.Pos, stop.Hex, alphaXML)
		}
		fillXML = fmt.Sprintf(`          <a:gradFill>
            <a:gsLst>%s
            </a:gsLst>
            <a:lin ang="%d" scaled="1"/>
          </a:gradFill>
`, stops.String(), r.Gradient.AngleDeg*60000)
	case r.FillHex != "":
		fillXML = fmt.Sprintf("          <a:solidFill><a:srgbClr val=\"%s\"/></a:solidFill>\n", r.FillHex)
	}

	return fmt.Sprintf(`      <p:sp>
        <p:nvSpPr>
          <p:cNvPr id="%d" name="Rectangle %d"/>
          <p:cNvSpPr/>
          <p:nvPr/>
        </p:nvSpPr>
        <p:spPr>
          <a:xfrm%s>
            <a:off x="%d" y="%d"/>
            <a:ext cx="%d" cy="%d"/>
          </a:xfrm>
          <a:prstGeom prst="rect"><a:avLst/></a:prstGeom>
%s          <a:ln><a:noFill/></a:ln>
        </p:spPr>
        <p:txBody>
          <a:bodyPr/>
          <a:lstStyle/>
          <a:p/>
        </p:txBody>
      </p:sp>
`, shapeID, shapeID, rotAttr, r.OffX, r.OffY, r.CX, r.CY, fillXML)
}

func textBoxXML(t *TextBox, shapeID int) string {
	fillXML := ""
	if t.FillHex != "" {
		fillXML = fmt.Sprintf("          <a:solidFill><a:srgbClr val=\"%s\"/></a:solidFill>\n", t.FillHex)
	}

	sz := int(t.SizePt * 100)
	if sz <= 0 {
		sz = 1800
	}
	attrs := fmt.Sprintf(` lang="en-US" sz="%d" dirty="0"`, sz)
	if t.Bold {
		attrs += ` b="1"`
	}

	colorXML := ""
	if t.ColorHex != "" {
		colorXML = fmt.Sprintf(`<a:solidFill><a:srgbClr val="%s"/></a:solidFill>`, t.ColorHex)
	}

	algnAttr := ""
	if t.Align != "" {
		algnAttr = fmt.Sprintf(` algn="%s"`, t.Align)
	}

	return fmt.Sprintf(`      <p:sp>
        <p:nvSpPr>
          <p:cNvPr id="%d" name="TextBox %d"/>
          <p:cNvSpPr txBox="1"/>
          <p:nvPr/>
        </p:nvSpPr>
        <p:spPr>
          <a:xfrm>
            <a:off x="%d" y="%d"/>
            <a:ext cx="%d" cy="%d"/>
          </a:xfrm>
          <a:prstGeom prst="rect"><a:avLst/></a:prstGeom>
%s        </p:spPr>
        <p:txBody>
          <a:bodyPr wrap="square"/>
          <a:lstStyle/>
          <a:p>
            <a:pPr%s/>
            <a:r>
              <a:rPr%s>%s</a:rPr>
              <a:t>%s</a:t>
            </a:r>
          </a:p>
        </p:txBody>
      </p:sp>
`, shapeID, shapeID, t.OffX, t.OffY, t.CX, t.CY, fillXML, algnAttr, attrs, colorXML, xmlEscape(t.Text))
}

// --- Static parts ---

const presPropsXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<p:presentationPr xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main" xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships" xmlns:p="http://schemas.openxmlformats.org/presentationml/2006/main"/>`

const viewPropsXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<p:viewPr xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main" xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships" xmlns:p="http://schemas.openxmlformats.org/presentationml/2006/main">
  <p:normalViewPr>
    <p:restoredLeft sz="15620"/>
    <p:restoredTop sz="94660"/>
  </p:normalViewPr>
</p:viewPr>`

const tableStylesXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<a:tblStyleLst xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main" def="{5C22544A-7EE6-4342-B048-85BDC9FD1C3A}"/>`

const slideMasterXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<p:sldMaster xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main" xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships" xmlns:p="http://schemas.openxmlformats.org/presentationml/2006/main">
  <p:cSld>
    <p:bg>
      <p:bgRef idx="1001">
        <a:schemeClr val="bg1"/>
      </p:bgRef>
    </p:bg>
    <p:spTree>
      <p:nvGrpSpPr>
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
    </p:spTree>
  </p:cSld>
  <p:clrMap bg1="lt1" tx1="dk1" bg2="lt2" tx2="dk2" accent1="accent1" accent2="accent2" accent3="accent3" accent4="accent4" accent5="accent5" accent6="accent6" hlink="hlink" folHlink="folHlink"/>
  <p:sldLayoutIdLst>
    <p:sldLayoutId id="2147483649" r:id="rId1"/>
  </p:sldLayoutIdLst>
</p:sldMaster>`

const slideMasterRelsXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
  <Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/slideLayout" Target="../slideLayouts/slideLayout1.xml"/>
  <Relationship Id="rId2" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/theme" Target="../theme/theme1.xml"/>
</Relationships>`

const slideLayoutXMLPart = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<p:sldLayout xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main" xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships" xmlns:p="http://schemas.openxmlformats.org/presentationml/2006/main" type="blank" preserve="1">
  <p:cSld name="Blank">
    <p:spTree>
      <p:nvGrpSpPr>
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
    </p:spTree>
  </p:cSld>
  <p:clrMapOvr>
    <a:masterClrMapping/>
  </p:clrMapOvr>
</p:sldLayout>`

const slideLayoutRelsXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
  <Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/slideMaster" Target="../slideMasters/slideMaster1.xml"/>
</Relationships>`

const themeXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<a:theme xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main" name="Office Theme">
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
      <a:majorFont>
        <a:latin typeface="Calibri Light"/>
        <a:ea typeface=""/>
        <a:cs typeface=""/>
      </a:majorFont>
      <a:minorFont>
        <a:latin typeface="Calibri"/>
        <a:ea typeface=""/>
        <a:cs typeface=""/>
      </a:minorFont>
    </a:fontScheme>
    <a:fmtScheme name="Office">
      <a:fillStyleLst>
        <a:solidFill><a:schemeClr val="phClr"/></a:solidFill>
        <a:solidFill><a:schemeClr val="phClr"/></a:solidFill>
        <a:solidFill><a:schemeClr val="phClr"/></a:solidFill>
      </a:fillStyleLst>
      <a:lnStyleLst>
        <a:ln w="6350" cap="flat" cmpd="sng" algn="ctr"><a:solidFill><a:schemeClr val="phClr"/></a:solidFill><a:prstDash val="solid"/></a:ln>
        <a:ln w="12700" cap="flat" cmpd="sng" algn="ctr"><a:solidFill><a:schemeClr val="phClr"/></a:solidFill><a:prstDash val="solid"/></a:ln>
        <a:ln w="19050" cap="flat" cmpd="sng" algn="ctr"><a:solidFill><a:schemeClr val="phClr"/></a:solidFill><a:prstDash val="solid"/></a:ln>
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
</a:theme>`
