package playground

// Section identifies a focusable row of the playground.
type Section int

const (
	SectionPrimary Section = iota
	SectionNeutral
	SectionAppearance
	SectionFont
	SectionRadius
)

const sectionCount = 5

func (s Section) String() string {
	switch s {
	case SectionPrimary:
		return "Primary"
	case SectionNeutral:
		return "Neutral"
	case SectionAppearance:
		return "Appearance"
	case SectionFont:
		return "Font"
	case SectionRadius:
		return "Radius"
	default:
		return "Unknown"
	}
}

// copiedMsg reports the outcome of a clipboard write.
type copiedMsg struct {
	err error
}

// savedMsg reports the outcome of writing the stylesheet to disk.
type savedMsg struct {
	path string
	err  error
}

// clearNoticeMsg hides the notice it was scheduled for. Newer notices carry a
// higher id and survive older timers.
type clearNoticeMsg struct {
	id int
}
