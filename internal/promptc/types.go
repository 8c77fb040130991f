// Package promptc compiles structured copy/project configuration into the
// natural-language context blocks fed to the generation model, and derives
// the deterministic artifacts around them (context hash, fallback template,
// fixed meta-instruction).
package promptc

// ProjectIdentity describes the brand behind a project. All fields are
// optional; any present field makes the identity section non-empty.
type ProjectIdentity struct {
	BrandName        string   `json:"brand_name,omitempty"`
	CentralPurpose   string   `json:"central_purpose,omitempty"`
	Sector           string   `json:"sector,omitempty"`
	BrandPersonality []string `json:"brand_personality,omitempty"`
	VoiceTones       []string `json:"voice_tones,omitempty"`
	Keywords         []string `json:"keywords,omitempty"`
}

// Empty reports whether no identity field is set.
func (p *ProjectIdentity) Empty() bool {
	if p == nil {
		return true
	}
	return p.BrandName == "" && p.CentralPurpose == "" && p.Sector == "" &&
		len(p.BrandPersonality) == 0 && len(p.VoiceTones) == 0 && len(p.Keywords) == 0
}

// Methodology describes the project's proprietary method. Field names follow
// the product's Portuguese vocabulary on the wire.
type Methodology struct {
	Name                  string `json:"name,omitempty"`
	TeseCentral           string `json:"tese_central,omitempty"`
	MecanismoPrimario     string `json:"mecanismo_primario,omitempty"`
	PorQueFunciona        string `json:"por_que_funciona,omitempty"`
	ErroInvisivel         string `json:"erro_invisivel,omitempty"`
	Diferenciacao         string `json:"diferenciacao,omitempty"`
	PrincipiosFundamentos string `json:"principios_fundamentos,omitempty"`
	EtapasMetodo          string `json:"etapas_metodo,omitempty"`
	TransformacaoReal     string `json:"transformacao_real,omitempty"`
	ProvaFuncionamento    string `json:"prova_funcionamento,omitempty"`
}

// Empty reports whether no methodology field is set.
func (m *Methodology) Empty() bool {
	if m == nil {
		return true
	}
	return m.Name == "" && m.TeseCentral == "" && m.MecanismoPrimario == "" &&
		m.PorQueFunciona == "" && m.ErroInvisivel == "" && m.Diferenciacao == "" &&
		m.PrincipiosFundamentos == "" && m.EtapasMetodo == "" &&
		m.TransformacaoReal == "" && m.ProvaFuncionamento == ""
}

// Demographics is the optional demographic breakdown of an audience segment.
type Demographics struct {
	AgeRange       string `json:"age_range,omitempty"`
	Gender         string `json:"gender,omitempty"`
	Location       string `json:"location,omitempty"`
	IncomeLevel    string `json:"income_level,omitempty"`
	EducationLevel string `json:"education_level,omitempty"`
}

// Audience describes the target audience segment for a copy.
type Audience struct {
	Name         string        `json:"name,omitempty"`
	Description  string        `json:"description,omitempty"`
	Demographics *Demographics `json:"demographics,omitempty"`
	PainPoints   []string      `json:"pain_points,omitempty"`
	Desires      []string      `json:"desires,omitempty"`
}

// Offer describes the offer a copy sells.
type Offer struct {
	Name              string   `json:"name,omitempty"`
	Description       string   `json:"description,omitempty"`
	ValueProposition  string   `json:"value_proposition,omitempty"`
	MainBenefit       string   `json:"main_benefit,omitempty"`
	SecondaryBenefits []string `json:"secondary_benefits,omitempty"`
	Differentials     []string `json:"differentials,omitempty"`
}

// CopyContext is the full copy-level configuration handed to the compiler.
// CopyType is the only field callers are expected to always supply ("outro"
// when they have nothing better).
type CopyContext struct {
	CopyType       string    `json:"copyType"`
	Framework      string    `json:"framework,omitempty"`
	Objective      string    `json:"objective,omitempty"`
	Styles         []string  `json:"styles,omitempty"`
	EmotionalFocus string    `json:"emotionalFocus,omitempty"`
	Audience       *Audience `json:"audience,omitempty"`
	Offer          *Offer    `json:"offer,omitempty"`
}
