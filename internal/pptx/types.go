// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pptx

import "encoding/xml"

// XML namespaces used in PPTX packages.
const (
	nsPresentationML = "http://schemas.openxmlformats.org/presentationml/2006/main"
	nsDrawingML      = "http://schemas.openxmlformats.org/drawingml/2006/main"
	nsOfficeDocRels  = "http://schemas.openxmlformats.org/officeDocument/2006/relationships"
	nsRelationships  = "http://schemas.openxmlformats.org/package/2006/relationships"
	nsContentTypes   = "http://schemas.openxmlformats.org/package/2006/content-types"

	relTypeOfficeDoc   = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument"
	relTypeSlide       = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/slide"
	relTypeSlideMaster = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/slideMaster"
	relTypeSlideLayout = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/slideLayout"
	relTypeNotesSlide  = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/notesSlide"
	relTypeImage       = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/image"
	relTypeTheme       = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/theme"
	relTypePresProps   = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/presProps"
	relTypeViewProps   = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/viewProps"
	relTypeTableStyles = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/tableStyles"
)

// presentationXML maps ppt/presentation.xml.
type presentationXML struct {
	XMLName     xml.Name        `xml:"presentation"`
	SlideIDList *slideIDListXML `xml:"sldIdLst"`
	SlideSz     *slideSzXML     `xml:"sldSz"`
}

type slideIDListXML struct {
	SlideID []slideIDXML `xml:"sldId"`
}

type slideIDXML struct {
	ID  string `xml:"id,attr"`
	RID string `xml:"http://schemas.openxmlformats.org/officeDocument/2006/relationships id,attr"`
}

type slideSzXML struct {
	Cx int64 `xml:"cx,attr"`
	Cy int64 `xml:"cy,attr"`
}

// slideXML maps a ppt/slides/slide*.xml part.
type slideXML struct {
	XMLName xml.Name `xml:"sld"`
	CSld    cSldXML  `xml:"cSld"`
}

// slideLayoutXML maps a ppt/slideLayouts/slideLayout*.xml part. Only the
// layout name is of interest.
type slideLayoutXML struct {
	XMLName xml.Name `xml:"sldLayout"`
	CSld    cSldXML  `xml:"cSld"`
}

// notesSlideXML maps a ppt/notesSlides/notesSlide*.xml part.
type notesSlideXML struct {
	XMLName xml.Name `xml:"notes"`
	CSld    cSldXML  `xml:"cSld"`
}

type cSldXML struct {
	Name   string    `xml:"name,attr"`
	SpTree spTreeXML `xml:"spTree"`
}

// spTreeXML is the shape tree of a slide. Children preserves document
// order, which a per-element-name slice would lose.
type spTreeXML struct {
	Children []shapeNode
}

// shapeNode is one child of a shape tree; exactly one field is set.
type shapeNode struct {
	Sp           *spXML
	Pic          *picXML
	GraphicFrame *graphicFrameXML
	GrpSp        *grpSpXML
	CxnSp        *cxnSpXML
}

// UnmarshalXML decodes the shape tree children in document order.
func (t *spTreeXML) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	for {
		tok, err := d.Token()
		if err != nil {
			return err
		}
		switch el := tok.(type) {
		case xml.StartElement:
			var node shapeNode
			switch el.Name.Local {
			case "sp":
				node.Sp = &spXML{}
				err = d.DecodeElement(node.Sp, &el)
			case "pic":
				node.Pic = &picXML{}
				err = d.DecodeElement(node.Pic, &el)
			case "graphicFrame":
				node.GraphicFrame = &graphicFrameXML{}
				err = d.DecodeElement(node.GraphicFrame, &el)
			case "grpSp":
				node.GrpSp = &grpSpXML{}
				err = d.DecodeElement(node.GrpSp, &el)
			case "cxnSp":
				node.CxnSp = &cxnSpXML{}
				err = d.DecodeElement(node.CxnSp, &el)
			default:
				if err := d.Skip(); err != nil {
					return err
				}
				continue
			}
			if err != nil {
				return err
			}
			t.Children = append(t.Children, node)
		case xml.EndElement:
			if el.Name == start.Name {
				return nil
			}
		}
	}
}

// spXML maps a <p:sp> shape element.
type spXML struct {
	NvSpPr nvSpPrXML  `xml:"nvSpPr"`
	SpPr   spPrXML    `xml:"spPr"`
	TxBody *txBodyXML `xml:"txBody"`
}

type nvSpPrXML struct {
	CNvPr   cNvPrXML   `xml:"cNvPr"`
	CNvSpPr cNvSpPrXML `xml:"cNvSpPr"`
	NvPr    nvPrXML    `xml:"nvPr"`
}

type cNvPrXML struct {
	ID   int    `xml:"id,attr"`
	Name string `xml:"name,attr"`
}

type cNvSpPrXML struct {
	TxBox int `xml:"txBox,attr"`
}

type nvPrXML struct {
	Ph *phXML `xml:"ph"`
}

type phXML struct {
	Type string `xml:"type,attr"`
	Idx  string `xml:"idx,attr"`
}

type spPrXML struct {
	Xfrm      *xfrmXML     `xml:"xfrm"`
	PrstGeom  *prstGeomXML `xml:"prstGeom"`
	CustGeom  *struct{}    `xml:"custGeom"`
	SolidFill *fillXML     `xml:"solidFill"`
}

type prstGeomXML struct {
	Prst string `xml:"prst,attr"`
}

type fillXML struct {
	SrgbClr *srgbClrXML `xml:"srgbClr"`
}

type srgbClrXML struct {
	Val   string    `xml:"val,attr"`
	Alpha *alphaXML `xml:"alpha"`
}

type alphaXML struct {
	Val int `xml:"val,attr"`
}

type xfrmXML struct {
	Rot int64  `xml:"rot,attr"`
	Off offXML `xml:"off"`
	Ext extXML `xml:"ext"`
}

type offXML struct {
	X int64 `xml:"x,attr"`
	Y int64 `xml:"y,attr"`
}

type extXML struct {
	Cx int64 `xml:"cx,attr"`
	Cy int64 `xml:"cy,attr"`
}

// txBodyXML maps a text body.
type txBodyXML struct {
	P []pXML `xml:"p"`
}

type pXML struct {
	PPr *pPrXML `xml:"pPr"`
	R   []rXML  `xml:"r"`
}

type pPrXML struct {
	Lvl  int    `xml:"lvl,attr"`
	Algn string `xml:"algn,attr"`
}

type rXML struct {
	RPr *rPrXML `xml:"rPr"`
	T   string  `xml:"t"`
}

type rPrXML struct {
	Sz        int      `xml:"sz,attr"`
	B         *int     `xml:"b,attr"`
	I         *int     `xml:"i,attr"`
	U         string   `xml:"u,attr"`
	SolidFill *fillXML `xml:"solidFill"`
	Latin     *struct {
		Typeface string `xml:"typeface,attr"`
	} `xml:"latin"`
}

// picXML maps a <p:pic> picture element.
type picXML struct {
	NvPicPr  nvPicPrXML  `xml:"nvPicPr"`
	BlipFill blipFillXML `xml:"blipFill"`
	SpPr     spPrXML     `xml:"spPr"`
}

type nvPicPrXML struct {
	CNvPr cNvPrXML `xml:"cNvPr"`
	NvPr  struct {
		VideoFile *struct{} `xml:"videoFile"`
		AudioFile *struct{} `xml:"audioFile"`
	} `xml:"nvPr"`
}

type blipFillXML struct {
	Blip blipXML `xml:"blip"`
}

type blipXML struct {
	Embed string `xml:"http://schemas.openxmlformats.org/officeDocument/2006/relationships embed,attr"`
}

// graphicFrameXML maps a <p:graphicFrame> (tables, charts).
type graphicFrameXML struct {
	NvGraphicFramePr struct {
		CNvPr cNvPrXML `xml:"cNvPr"`
	} `xml:"nvGraphicFramePr"`
	Xfrm    *xfrmXML `xml:"xfrm"`
	Graphic struct {
		GraphicData struct {
			URI string  `xml:"uri,attr"`
			Tbl *tblXML `xml:"tbl"`
		} `xml:"graphicData"`
	} `xml:"graphic"`
}

type tblXML struct {
	TblGrid struct {
		GridCol []struct {
			W int64 `xml:"w,attr"`
		} `xml:"gridCol"`
	} `xml:"tblGrid"`
	Tr []trXML `xml:"tr"`
}

type trXML struct {
	H  int64   `xml:"h,attr"`
	Tc []tcXML `xml:"tc"`
}

type tcXML struct {
	RowSpan  int        `xml:"rowSpan,attr"`
	GridSpan int        `xml:"gridSpan,attr"`
	VMerge   *int       `xml:"vMerge,attr"`
	HMerge   *int       `xml:"hMerge,attr"`
	TxBody   *txBodyXML `xml:"txBody"`
}

// grpSpXML maps a <p:grpSp> group, possibly nested.
type grpSpXML struct {
	NvGrpSpPr struct {
		CNvPr cNvPrXML `xml:"cNvPr"`
	} `xml:"nvGrpSpPr"`
	GrpSpPr struct {
		Xfrm *xfrmXML `xml:"xfrm"`
	} `xml:"grpSpPr"`
	SpTree spTreeXML
}

// UnmarshalXML decodes group metadata, then its children in document
// order via the same path as the top-level shape tree.
func (g *grpSpXML) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	for {
		tok, err := d.Token()
		if err != nil {
			return err
		}
		switch el := tok.(type) {
		case xml.StartElement:
			switch el.Name.Local {
			case "nvGrpSpPr":
				if err := d.DecodeElement(&g.NvGrpSpPr, &el); err != nil {
					return err
				}
			case "grpSpPr":
				if err := d.DecodeElement(&g.GrpSpPr, &el); err != nil {
					return err
				}
			case "sp", "pic", "graphicFrame", "grpSp", "cxnSp":
				// Re-dispatch through the shape-tree decoder.
				var node shapeNode
				var derr error
				switch el.Name.Local {
				case "sp":
					node.Sp = &spXML{}
					derr = d.DecodeElement(node.Sp, &el)
				case "pic":
					node.Pic = &picXML{}
					derr = d.DecodeElement(node.Pic, &el)
				case "graphicFrame":
					node.GraphicFrame = &graphicFrameXML{}
					derr = d.DecodeElement(node.GraphicFrame, &el)
				case "grpSp":
					node.GrpSp = &grpSpXML{}
					derr = d.DecodeElement(node.GrpSp, &el)
				case "cxnSp":
					node.CxnSp = &cxnSpXML{}
					derr = d.DecodeElement(node.CxnSp, &el)
				}
				if derr != nil {
					return derr
				}
				g.SpTree.Children = append(g.SpTree.Children, node)
			default:
				if err := d.Skip(); err != nil {
					return err
				}
			}
		case xml.EndElement:
			if el.Name == start.Name {
				return nil
			}
		}
	}
}

// cxnSpXML maps a <p:cxnSp> connector (line) element.
type cxnSpXML struct {
	NvCxnSpPr struct {
		CNvPr cNvPrXML `xml:"cNvPr"`
	} `xml:"nvCxnSpPr"`
	SpPr spPrXML `xml:"spPr"`
}

// relationshipsXML maps a .rels part.
type relationshipsXML struct {
	XMLName      xml.Name          `xml:"Relationships"`
	Relationship []relationshipXML `xml:"Relationship"`
}

type relationshipXML struct {
	ID     string `xml:"Id,attr"`
	Type   string `xml:"Type,attr"`
	Target string `xml:"Target,attr"`
}
