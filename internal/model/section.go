package model

import "fmt"

// SectionKind 引导流程的分段类型。
type SectionKind int

const (
	SectionWelcome SectionKind = iota
	SectionName
	SectionAge
	SectionGender
	SectionImprovementAreas
	SectionSurvey
	SectionConsent
)

// Section 引导流程的一个分段。SectionSurvey 额外携带问卷分区号（2~9），
// 其余类型 SurveyNumber 恒为 0。结构体可比较，变体相等即字段逐一相等。
type Section struct {
	Kind         SectionKind
	SurveyNumber int
}

func Welcome() Section          { return Section{Kind: SectionWelcome} }
func Name() Section             { return Section{Kind: SectionName} }
func Age() Section              { return Section{Kind: SectionAge} }
func Gender() Section           { return Section{Kind: SectionGender} }
func ImprovementAreas() Section { return Section{Kind: SectionImprovementAreas} }
func Survey(n int) Section      { return Section{Kind: SectionSurvey, SurveyNumber: n} }
func Consent() Section          { return Section{Kind: SectionConsent} }

// Title 分段的展示标题。
func (s Section) Title() string {
	switch s.Kind {
	case SectionWelcome:
		return "Bienvenido a Lyrah"
	case SectionName:
		return "Sobre ti"
	case SectionAge:
		return "Tu edad"
	case SectionGender:
		return "Tu género"
	case SectionImprovementAreas:
		return "Áreas de mejora"
	case SectionSurvey:
		switch s.SurveyNumber {
		case 2:
			return "Bienestar Emocional y Mental"
		case 3:
			return "Bienestar Físico y Vitalidad"
		case 4:
			return "Conexión Espiritual y Energética"
		case 5:
			return "Relaciones Personales y Sociales"
		case 6:
			return "Crecimiento y Desarrollo Personal"
		case 7:
			return "Salud Financiera y Económica"
		case 8:
			return "Estabilidad y Satisfacción Profesional"
		case 9:
			return "Desarrollo Educativo y Personal"
		default:
			return fmt.Sprintf("Sección %d", s.SurveyNumber)
		}
	case SectionConsent:
		return "Consentimiento y Privacidad"
	default:
		return ""
	}
}
