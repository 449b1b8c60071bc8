package writer

import (
	"strconv"
	"strings"

	"github.com/openvehiclediag/diagdb-to-odx/diag"
)

func writeParamsXML(b *strings.Builder, params []diag.Param) {
	if len(params) == 0 {
		return
	}
	b.WriteString("<PARAMS>")
	for _, p := range params {
		writeParamXML(b, p)
	}
	b.WriteString("</PARAMS>")
}

func writeParamXML(b *strings.Builder, p diag.Param) {
	b.WriteString(`<PARAM xsi:type="`)
	if p.IsCodedConst() {
		b.WriteString("CODED-CONST")
	} else {
		b.WriteString("VALUE")
	}
	b.WriteString(`"`)
	if hasText(p.Semantic) {
		b.WriteString(` SEMANTIC="`)
		b.WriteString(xmlEscape(p.Semantic))
		b.WriteString(`"`)
	}
	b.WriteString(">")
	b.WriteString("<SHORT-NAME>")
	b.WriteString(p.ShortName)
	b.WriteString("</SHORT-NAME>")
	if hasText(p.LongName) {
		b.WriteString("<LONG-NAME>")
		b.WriteString(xmlEscape(p.LongName))
		b.WriteString("</LONG-NAME>")
	}
	if hasText(p.Description) {
		b.WriteString("<DESC>")
		b.WriteString(p.Description)
		b.WriteString("</DESC>")
	}
	if p.BytePosition != nil {
		b.WriteString("<BYTE-POSITION>")
		b.WriteString(strconv.Itoa(*p.BytePosition))
		b.WriteString("</BYTE-POSITION>")
	}
	if p.IsCodedConst() {
		b.WriteString("<CODED-VALUE>")
		b.WriteString(xmlEscape(p.CodedValue))
		b.WriteString("</CODED-VALUE>")
		b.WriteString(`<DIAG-CODED-TYPE BASE-DATA-TYPE="`)
		b.WriteString(xmlEscape(p.BaseDataType))
		b.WriteString(`"/>`)
	} else {
		writeRefXML(b, "DOP-REF", p.DopRef)
	}
	b.WriteString("</PARAM>")
}
