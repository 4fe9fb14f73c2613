package theme

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type Mode string

const (
	ModeLight Mode = "light"
	ModeDark  Mode = "dark"
)

// DefaultFont is applied when an owner never picked one.
const DefaultFont = "Inter"

type Palette struct {
	Primary    string `json:"primary"`
	Secondary  string `json:"secondary"`
	Accent     string `json:"accent"`
	Background string `json:"background"`
	Text       string `json:"text"`
}

func (p Palette) IsZero() bool {
	return p == Palette{}
}

// UserTheme is one per user and upserted wholesale.
type UserTheme struct {
	OwnerID   uuid.UUID `json:"owner_id"`
	Palette   Palette   `json:"palette"`
	Font      string    `json:"font"`
	Layout    LayoutID  `json:"layout"`
	Mode      Mode      `json:"mode"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Default returns the theme rendered for users that never saved one.
func Default(ownerID uuid.UUID) *UserTheme {
	return &UserTheme{
		OwnerID: ownerID,
		Palette: DefaultPalette(ModeLight),
		Font:    DefaultFont,
		Layout:  LayoutModern,
		Mode:    ModeLight,
	}
}

func DefaultPalette(mode Mode) Palette {
	if mode == ModeDark {
		return Palette{
			Primary:    "#60a5fa",
			Secondary:  "#94a3b8",
			Accent:     "#f59e0b",
			Background: "#0f172a",
			Text:       "#e2e8f0",
		}
	}
	return Palette{
		Primary:    "#2563eb",
		Secondary:  "#64748b",
		Accent:     "#d97706",
		Background: "#ffffff",
		Text:       "#1e293b",
	}
}

// IsDefaultPalette reports whether p carries no custom colors, either
// because it is zero or matches the stock palette for the mode.
func IsDefaultPalette(p Palette, mode Mode) bool {
	return p == (Palette{}) || p == DefaultPalette(mode)
}

type Repository interface {
	GetByOwner(ctx context.Context, ownerID uuid.UUID) (*UserTheme, error)
	Upsert(ctx context.Context, t *UserTheme) error
}
