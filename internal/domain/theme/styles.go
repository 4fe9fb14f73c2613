package theme

type LayoutID string

const (
	LayoutModern   LayoutID = "modern"
	LayoutClassic  LayoutID = "classic"
	LayoutMinimal  LayoutID = "minimal"
	LayoutCreative LayoutID = "creative"
	LayoutTerminal LayoutID = "terminal"
	LayoutMagazine LayoutID = "magazine"
)

func Layouts() []LayoutID {
	return []LayoutID{LayoutModern, LayoutClassic, LayoutMinimal, LayoutCreative, LayoutTerminal, LayoutMagazine}
}

// StyleBundle is the full set of derived presentation values the public
// renderer consumes. Values are CSS colors and utility class strings.
type StyleBundle struct {
	PageBackground    string `json:"page_background"`
	SurfaceBackground string `json:"surface_background"`
	TextColor         string `json:"text_color"`
	MutedTextColor    string `json:"muted_text_color"`
	HeadingColor      string `json:"heading_color"`
	AccentColor       string `json:"accent_color"`
	BorderColor       string `json:"border_color"`
	LinkColor         string `json:"link_color"`

	HeadingFont string `json:"heading_font"`
	BodyFont    string `json:"body_font"`

	ContainerClass string `json:"container_class"`
	HeaderClass    string `json:"header_class"`
	SectionClass   string `json:"section_class"`
	CardClass      string `json:"card_class"`
	ButtonClass    string `json:"button_class"`
	NavClass       string `json:"nav_class"`
	AvatarClass    string `json:"avatar_class"`
	TagClass       string `json:"tag_class"`

	SectionSpacing string `json:"section_spacing"`
	CardRadius     string `json:"card_radius"`
}

type variantFunc func(base StyleBundle, p Palette, mode Mode) StyleBundle

// variants maps each layout onto its bundle builder. Every builder starts
// from the modern base computed before selection, so an unknown layout id
// simply yields the modern values.
var variants = map[LayoutID]variantFunc{
	LayoutModern: func(base StyleBundle, _ Palette, _ Mode) StyleBundle {
		return base
	},
	LayoutClassic: func(base StyleBundle, p Palette, _ Mode) StyleBundle {
		base.HeadingFont = "Georgia, serif"
		base.ContainerClass = "max-w-3xl mx-auto px-8"
		base.HeaderClass = "py-12 text-center border-b"
		base.SectionClass = "py-10"
		base.CardClass = "border-b pb-6"
		base.ButtonClass = "underline"
		base.NavClass = "flex justify-center gap-8 text-sm uppercase tracking-wide"
		base.AvatarClass = "rounded-full w-28 h-28 mx-auto"
		base.CardRadius = "0"
		base.BorderColor = p.Secondary
		return base
	},
	LayoutMinimal: func(base StyleBundle, p Palette, _ Mode) StyleBundle {
		base.SurfaceBackground = base.PageBackground
		base.HeaderClass = "py-8"
		base.SectionClass = "py-6"
		base.CardClass = "py-4"
		base.ButtonClass = "text-sm underline underline-offset-4"
		base.NavClass = "flex gap-6 text-sm"
		base.TagClass = "text-xs lowercase"
		base.SectionSpacing = "1.5rem"
		base.CardRadius = "0"
		base.AccentColor = p.Text
		base.LinkColor = p.Text
		return base
	},
	LayoutCreative: func(base StyleBundle, p Palette, _ Mode) StyleBundle {
		base.PageBackground = p.Accent
		base.SurfaceBackground = p.Background
		base.HeadingColor = p.Primary
		base.HeaderClass = "py-20 -rotate-1"
		base.SectionClass = "py-12 rotate-0"
		base.CardClass = "p-6 shadow-xl rotate-1 hover:rotate-0"
		base.ButtonClass = "px-6 py-3 rounded-full font-bold shadow-lg"
		base.AvatarClass = "rounded-2xl w-36 h-36 ring-4"
		base.TagClass = "px-3 py-1 rounded-full text-xs font-bold"
		base.CardRadius = "1.5rem"
		return base
	},
	LayoutTerminal: func(base StyleBundle, p Palette, _ Mode) StyleBundle {
		base.PageBackground = "#0d1117"
		base.SurfaceBackground = "#161b22"
		base.TextColor = "#c9d1d9"
		base.MutedTextColor = "#8b949e"
		base.HeadingColor = "#58a6ff"
		base.AccentColor = "#3fb950"
		base.BorderColor = "#30363d"
		base.LinkColor = "#58a6ff"
		base.HeadingFont = "'JetBrains Mono', monospace"
		base.BodyFont = "'JetBrains Mono', monospace"
		base.CardClass = "p-4 border font-mono"
		base.ButtonClass = "px-3 py-1 border font-mono text-sm"
		base.TagClass = "text-xs font-mono before:content-['#']"
		base.CardRadius = "0.25rem"
		return base
	},
	LayoutMagazine: func(base StyleBundle, p Palette, _ Mode) StyleBundle {
		base.HeadingFont = "'Playfair Display', serif"
		base.ContainerClass = "max-w-6xl mx-auto px-6"
		base.HeaderClass = "py-24 grid grid-cols-2 items-center"
		base.SectionClass = "py-14 grid grid-cols-12 gap-8"
		base.CardClass = "col-span-6 border-t-4 pt-4"
		base.NavClass = "flex gap-10 text-xs uppercase tracking-widest"
		base.AvatarClass = "w-full aspect-square object-cover"
		base.SectionSpacing = "3.5rem"
		base.CardRadius = "0"
		base.BorderColor = p.Primary
		return base
	},
}

// DeriveStyles is pure: identical inputs always yield identical bundles.
// The zero Palette falls back to the stock palette for the mode.
func DeriveStyles(layout LayoutID, p Palette, mode Mode) StyleBundle {
	if p == (Palette{}) {
		p = DefaultPalette(mode)
	}
	base := modernBase(p, mode)
	if build, ok := variants[layout]; ok {
		return build(base, p, mode)
	}
	return base
}

func modernBase(p Palette, mode Mode) StyleBundle {
	surface := "#f8fafc"
	muted := "#64748b"
	if mode == ModeDark {
		surface = "#1e293b"
		muted = "#94a3b8"
	}
	return StyleBundle{
		PageBackground:    p.Background,
		SurfaceBackground: surface,
		TextColor:         p.Text,
		MutedTextColor:    muted,
		HeadingColor:      p.Primary,
		AccentColor:       p.Accent,
		BorderColor:       p.Secondary,
		LinkColor:         p.Primary,

		HeadingFont: "Inter, sans-serif",
		BodyFont:    "Inter, sans-serif",

		ContainerClass: "max-w-4xl mx-auto px-6",
		HeaderClass:    "py-16 flex items-center gap-8",
		SectionClass:   "py-8",
		CardClass:      "p-5 shadow-sm hover:shadow-md",
		ButtonClass:    "px-4 py-2 rounded-lg font-medium",
		NavClass:       "flex gap-6 font-medium",
		AvatarClass:    "rounded-full w-32 h-32",
		TagClass:       "px-2 py-0.5 rounded text-xs",

		SectionSpacing: "2rem",
		CardRadius:     "0.75rem",
	}
}
