package promptc

import (
	"strings"

	"github.com/copydrive/copydrive/internal/catalog"
)

// Section headers for the copy prompt, in emission order.
const (
	copyTypeHeader  = "## TIPO DE COPY"
	structureHeader = "## ESTRUTURA"
	audienceHeader  = "## PÚBLICO-ALVO"
	offerHeader     = "## OFERTA"
	objectiveHeader = "## OBJETIVO"
	stylesHeader    = "## ESTILOS"
	emotionalHeader = "## FOCO EMOCIONAL"
)

// styleSeparator joins combined style entries inside the styles section.
const styleSeparator = "\n\n---\n\n"

// BuildCopyPrompt compiles the copy-level configuration into an ordered,
// labeled context block. Section order is fixed: Type, Structure, Audience,
// Offer, Objective, Styles, EmotionalFocus. Absent fields contribute nothing.
func BuildCopyPrompt(ctx CopyContext) string {
	var sections []string
	add := func(header, body string) {
		if body != "" {
			sections = append(sections, header+"\n"+body)
		}
	}

	if ctx.CopyType != "" {
		add(copyTypeHeader, catalog.CopyType(ctx.CopyType))
	}
	if ctx.Framework != "" {
		add(structureHeader, catalog.Framework(ctx.Framework))
	}
	add(audienceHeader, audienceBody(ctx.Audience))
	add(offerHeader, offerBody(ctx.Offer))
	if ctx.Objective != "" {
		add(objectiveHeader, catalog.Objective(ctx.Objective))
	}
	add(stylesHeader, stylesBody(ctx.Styles))
	if ctx.EmotionalFocus != "" {
		add(emotionalHeader, catalog.EmotionalFocus(ctx.EmotionalFocus))
	}

	return strings.Join(sections, sectionSeparator)
}

// audienceBody renders the audience lines. Returns "" when the audience is
// absent or yields no content, so the section header is never emitted bare.
func audienceBody(a *Audience) string {
	if a == nil {
		return ""
	}

	var lines []string
	if a.Name != "" {
		lines = append(lines, "Segmento: "+a.Name)
	}
	if a.Description != "" {
		lines = append(lines, "Descrição: "+a.Description)
	}
	if demo := demographicsLine(a.Demographics); demo != "" {
		lines = append(lines, "Demografia: "+demo)
	}
	if bullets := bulletList(a.PainPoints); bullets != "" {
		lines = append(lines, "Dores:\n"+bullets)
	}
	if bullets := bulletList(a.Desires); bullets != "" {
		lines = append(lines, "Desejos:\n"+bullets)
	}

	return strings.Join(lines, "\n")
}

// demographicsLine renders present demographic sub-fields as a comma-joined list.
func demographicsLine(d *Demographics) string {
	if d == nil {
		return ""
	}

	var parts []string
	addPart := func(label, value string) {
		if value != "" {
			parts = append(parts, label+" "+value)
		}
	}

	addPart("idade", d.AgeRange)
	addPart("gênero", d.Gender)
	addPart("localização", d.Location)
	addPart("renda", d.IncomeLevel)
	addPart("escolaridade", d.EducationLevel)

	return strings.Join(parts, ", ")
}

// offerBody renders the offer lines, same presence rules as audienceBody.
func offerBody(o *Offer) string {
	if o == nil {
		return ""
	}

	var lines []string
	if o.Name != "" {
		lines = append(lines, "Nome: "+o.Name)
	}
	if o.Description != "" {
		lines = append(lines, "Descrição: "+o.Description)
	}
	if o.ValueProposition != "" {
		lines = append(lines, "Proposta de valor: "+o.ValueProposition)
	}
	if o.MainBenefit != "" {
		lines = append(lines, "Benefício principal: "+o.MainBenefit)
	}
	if bullets := bulletList(o.SecondaryBenefits); bullets != "" {
		lines = append(lines, "Benefícios secundários:\n"+bullets)
	}
	if bullets := bulletList(o.Differentials); bullets != "" {
		lines = append(lines, "Diferenciais:\n"+bullets)
	}

	return strings.Join(lines, "\n")
}

// stylesBody renders the catalog entry for each selected style, joined by a
// horizontal rule. Unrecognized tags pass through as raw text, never dropped.
func stylesBody(styles []string) string {
	if len(styles) == 0 {
		return ""
	}

	entries := make([]string, 0, len(styles))
	for _, tag := range styles {
		if strings.TrimSpace(tag) == "" {
			continue
		}
		entries = append(entries, catalog.Style(tag))
	}
	return strings.Join(entries, styleSeparator)
}

// bulletList renders non-empty items as "- item" lines.
func bulletList(items []string) string {
	var lines []string
	for _, it := range items {
		if strings.TrimSpace(it) == "" {
			continue
		}
		lines = append(lines, "- "+strings.TrimSpace(it))
	}
	return strings.Join(lines, "\n")
}
