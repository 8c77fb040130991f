package promptc

import "strings"

// Section headers for the project prompt.
const (
	identityHeader    = "## IDENTIDADE"
	methodologyHeader = "## METODOLOGIA E MECANISMO ÚNICO"
)

// sectionSeparator joins adjacent sections; omitted sections leave no residue.
const sectionSeparator = "\n\n"

// BuildProjectPrompt compiles brand identity and methodology into the
// project-level context block. Returns "" when both are empty, never a
// block of bare headers.
func BuildProjectPrompt(identity *ProjectIdentity, methodology *Methodology) string {
	var sections []string

	if s := identitySection(identity); s != "" {
		sections = append(sections, s)
	}
	if s := methodologySection(methodology); s != "" {
		sections = append(sections, s)
	}

	return strings.Join(sections, sectionSeparator)
}

func identitySection(identity *ProjectIdentity) string {
	if identity.Empty() {
		return ""
	}

	var lines []string
	addLine := func(label, value string) {
		if value != "" {
			lines = append(lines, label+": "+value)
		}
	}

	addLine("Marca", identity.BrandName)
	addLine("Propósito central", identity.CentralPurpose)
	addLine("Setor", identity.Sector)
	addLine("Personalidade da marca", joinList(identity.BrandPersonality))
	addLine("Tons de voz", joinList(identity.VoiceTones))
	addLine("Palavras-chave", joinList(identity.Keywords))

	if len(lines) == 0 {
		return ""
	}
	return identityHeader + "\n" + strings.Join(lines, "\n")
}

func methodologySection(m *Methodology) string {
	if m.Empty() {
		return ""
	}

	var paragraphs []string
	addParagraph := func(label, value string) {
		if value != "" {
			paragraphs = append(paragraphs, label+": "+value)
		}
	}

	addParagraph("Nome do método", m.Name)
	addParagraph("Tese central", m.TeseCentral)
	addParagraph("Mecanismo primário", m.MecanismoPrimario)
	addParagraph("Por que funciona", m.PorQueFunciona)
	addParagraph("Erro invisível", m.ErroInvisivel)
	addParagraph("Diferenciação", m.Diferenciacao)
	addParagraph("Princípios e fundamentos", m.PrincipiosFundamentos)
	addParagraph("Etapas do método", m.EtapasMetodo)
	addParagraph("Transformação real", m.TransformacaoReal)
	addParagraph("Prova de funcionamento", m.ProvaFuncionamento)

	if len(paragraphs) == 0 {
		return ""
	}
	return methodologyHeader + "\n" + strings.Join(paragraphs, "\n\n")
}

// joinList joins non-empty entries with ", ".
func joinList(items []string) string {
	var kept []string
	for _, it := range items {
		if strings.TrimSpace(it) != "" {
			kept = append(kept, strings.TrimSpace(it))
		}
	}
	return strings.Join(kept, ", ")
}
