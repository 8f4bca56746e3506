package theme

// Classes is every theme-dependent class selection a template needs.
// It is a plain value so two selections can be compared with ==.
type Classes struct {
	Page           string
	Header         string
	MobileMenu     string
	ToggleButton   string
	HeroSubtitle   string
	OutlineButton  string
	AltSection     string
	SkillCard      string
	ProjectCard    string
	ProjectImage   string
	ProjectText    string
	TechTag        string
	ExperienceCard string
	Period         string
	ContactLink    string
	Footer         string
	FormBackground string
	Input          string
	Label          string
	SubmitButton   string
	Backdrop       string
	Blob           string
}

var dark = Classes{
	Page:           "text-gray-100",
	Header:         "bg-gray-900/70 backdrop-blur-md",
	MobileMenu:     "bg-gray-900",
	ToggleButton:   "bg-gray-800",
	HeroSubtitle:   "text-gray-400",
	OutlineButton:  "border-gray-700 hover:border-gray-500",
	AltSection:     "bg-gray-800/50",
	SkillCard:      "bg-gray-700 hover:bg-gray-600",
	ProjectCard:    "bg-gray-800 hover:bg-gray-700",
	ProjectImage:   "bg-gray-700",
	ProjectText:    "text-gray-300",
	TechTag:        "bg-gray-700 text-gray-300",
	ExperienceCard: "bg-gray-700",
	Period:         "text-gray-400",
	ContactLink:    "bg-gray-800 hover:bg-gray-700",
	Footer:         "bg-gray-900",
	FormBackground: "bg-gray-900",
	Input:          "bg-gray-800 text-white border-gray-700 focus:ring-blue-400",
	Label:          "text-gray-300",
	SubmitButton:   "bg-blue-600 hover:bg-blue-500",
	Backdrop:       "bg-gray-900",
	Blob:           "bg-blue-500 mix-blend-screen",
}

var light = Classes{
	Page:           "text-gray-800",
	Header:         "bg-white/70 backdrop-blur-md",
	MobileMenu:     "bg-white",
	ToggleButton:   "bg-gray-200",
	HeroSubtitle:   "text-gray-600",
	OutlineButton:  "border-gray-300 hover:border-gray-400",
	AltSection:     "bg-gray-100/50",
	SkillCard:      "bg-white hover:bg-gray-50 shadow-md",
	ProjectCard:    "bg-white hover:bg-gray-50 shadow-lg",
	ProjectImage:   "bg-gray-200",
	ProjectText:    "text-gray-600",
	TechTag:        "bg-gray-200 text-gray-700",
	ExperienceCard: "bg-white shadow-md",
	Period:         "text-gray-500",
	ContactLink:    "bg-white hover:bg-gray-50 shadow-md",
	Footer:         "bg-gray-100",
	FormBackground: "bg-white",
	Input:          "bg-white text-gray-900 border-gray-300 focus:ring-blue-500",
	Label:          "text-gray-700",
	SubmitButton:   "bg-blue-500 hover:bg-blue-600",
	Backdrop:       "bg-gray-50",
	Blob:           "bg-blue-300 mix-blend-multiply",
}

// ClassesFor selects one of the two palettes.
func ClassesFor(t Theme) Classes {
	if t == Light {
		return light
	}
	return dark
}
