package writer

import (
	"strings"

	"github.com/openvehiclediag/diagdb-to-odx/diag"
)

// RenderSingleEcuJob serializes one SINGLE-ECU-JOB element. Unlike
// DIAG-SERVICE there is no SEMANTIC default; the attribute is only
// written when the job declares one.
func RenderSingleEcuJob(job diag.SingleEcuJob, audiences AudienceRenderer) string {
	var b strings.Builder
	writeSingleEcuJobXML(&b, job, audiences)
	return b.String()
}

func writeSingleEcuJobXML(b *strings.Builder, job diag.SingleEcuJob, audiences AudienceRenderer) {
	b.WriteString(`<SINGLE-ECU-JOB ID="`)
	b.WriteString(xmlEscape(job.ID))
	b.WriteString(`"`)
	if hasText(job.Semantic) {
		b.WriteString(` SEMANTIC="`)
		b.WriteString(xmlEscape(job.Semantic))
		b.WriteString(`"`)
	}
	b.WriteString(">")
	b.WriteString("<SHORT-NAME>")
	b.WriteString(job.ShortName)
	b.WriteString("</SHORT-NAME>")
	if hasText(job.LongName) {
		b.WriteString("<LONG-NAME>")
		b.WriteString(xmlEscape(job.LongName))
		b.WriteString("</LONG-NAME>")
	}
	if hasText(job.Description) {
		b.WriteString("<DESC>")
		b.WriteString(job.Description)
		b.WriteString("</DESC>")
	}
	if len(job.FunctClassRefs) > 0 {
		b.WriteString("<FUNCT-CLASS-REFS>")
		for _, ref := range job.FunctClassRefs {
			writeRefXML(b, "FUNCT-CLASS-REF", ref)
		}
		b.WriteString("</FUNCT-CLASS-REFS>")
	}
	if job.Audience != nil {
		b.WriteString(audiences.RenderAudience(job.Audience))
	}
	// PROG-CODES is mandatory for a job
	b.WriteString("<PROG-CODES>")
	for _, pc := range job.ProgCodes {
		writeProgCodeXML(b, pc)
	}
	b.WriteString("</PROG-CODES>")
	if len(job.InputParams) > 0 {
		b.WriteString("<INPUT-PARAMS>")
		for _, p := range job.InputParams {
			writeInputParamXML(b, p)
		}
		b.WriteString("</INPUT-PARAMS>")
	}
	if len(job.OutputParams) > 0 {
		b.WriteString("<OUTPUT-PARAMS>")
		for _, p := range job.OutputParams {
			writeOutputParamXML(b, p)
		}
		b.WriteString("</OUTPUT-PARAMS>")
	}
	if len(job.NegOutputParams) > 0 {
		b.WriteString("<NEG-OUTPUT-PARAMS>")
		for _, p := range job.NegOutputParams {
			writeNegOutputParamXML(b, p)
		}
		b.WriteString("</NEG-OUTPUT-PARAMS>")
	}
	b.WriteString("</SINGLE-ECU-JOB>")
}

func writeProgCodeXML(b *strings.Builder, pc diag.ProgCode) {
	b.WriteString("<PROG-CODE>")
	b.WriteString("<CODE-FILE>")
	b.WriteString(xmlEscape(pc.CodeFile))
	b.WriteString("</CODE-FILE>")
	if hasText(pc.Encryption) {
		b.WriteString("<ENCRYPTION>")
		b.WriteString(xmlEscape(pc.Encryption))
		b.WriteString("</ENCRYPTION>")
	}
	b.WriteString("<SYNTAX>")
	b.WriteString(xmlEscape(pc.Syntax))
	b.WriteString("</SYNTAX>")
	b.WriteString("<REVISION>")
	b.WriteString(xmlEscape(pc.Revision))
	b.WriteString("</REVISION>")
	if hasText(pc.Entrypoint) {
		b.WriteString("<ENTRYPOINT>")
		b.WriteString(xmlEscape(pc.Entrypoint))
		b.WriteString("</ENTRYPOINT>")
	}
	if len(pc.LibraryRefs) > 0 {
		b.WriteString("<LIBRARY-REFS>")
		for _, ref := range pc.LibraryRefs {
			writeRefXML(b, "LIBRARY-REF", ref)
		}
		b.WriteString("</LIBRARY-REFS>")
	}
	b.WriteString("</PROG-CODE>")
}

func writeInputParamXML(b *strings.Builder, p diag.JobParam) {
	b.WriteString("<INPUT-PARAM>")
	writeJobParamBodyXML(b, p)
	if hasText(p.PhysicalDefaultValue) {
		b.WriteString("<PHYSICAL-DEFAULT-VALUE>")
		b.WriteString(xmlEscape(p.PhysicalDefaultValue))
		b.WriteString("</PHYSICAL-DEFAULT-VALUE>")
	}
	writeRefXML(b, "DOP-BASE-REF", p.DopBaseRef)
	b.WriteString("</INPUT-PARAM>")
}

func writeOutputParamXML(b *strings.Builder, p diag.JobParam) {
	b.WriteString(`<OUTPUT-PARAM ID="`)
	b.WriteString(xmlEscape(p.ID))
	b.WriteString(`"`)
	if hasText(p.Semantic) {
		b.WriteString(` SEMANTIC="`)
		b.WriteString(xmlEscape(p.Semantic))
		b.WriteString(`"`)
	}
	b.WriteString(">")
	writeJobParamBodyXML(b, p)
	writeRefXML(b, "DOP-BASE-REF", p.DopBaseRef)
	b.WriteString("</OUTPUT-PARAM>")
}

func writeNegOutputParamXML(b *strings.Builder, p diag.JobParam) {
	b.WriteString("<NEG-OUTPUT-PARAM>")
	writeJobParamBodyXML(b, p)
	writeRefXML(b, "DOP-BASE-REF", p.DopBaseRef)
	b.WriteString("</NEG-OUTPUT-PARAM>")
}

func writeJobParamBodyXML(b *strings.Builder, p diag.JobParam) {
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
}
