package poster

import (
	"slices"
	"strings"

	"github.com/dgnsrekt/livecomment/internal/comment"
)

// Modifiers are the display options of a posted comment.
type Modifiers struct {
	Anonymous bool
	Size      string
	Position  string
	Font      string
	Color     string
}

var (
	sizes     = []string{"big", "medium", "small"}
	positions = []string{"ue", "naka", "shita"}
	fonts     = []string{"defont", "mincho", "gothic"}
)

// ParseModifiers reads a space separated command string such as
// "184 big ue red". The first token of each class wins.
func ParseModifiers(mail string) Modifiers {
	m := Modifiers{}
	for _, tok := range strings.Fields(mail) {
		switch {
		case tok == "184":
			m.Anonymous = true
		case slices.Contains(sizes, tok):
			if m.Size == "" {
				m.Size = tok
			}
		case slices.Contains(positions, tok):
			if m.Position == "" {
				m.Position = tok
			}
		case slices.Contains(fonts, tok):
			if m.Font == "" {
				m.Font = tok
			}
		case slices.Contains(comment.PostableColors, tok) || comment.IsHexColor(tok):
			if m.Color == "" {
				m.Color = tok
			}
		}
	}

	if m.Size == "" {
		m.Size = "medium"
	}
	if m.Position == "" {
		m.Position = "naka"
	}
	if m.Font == "" {
		m.Font = "defont"
	}
	if m.Color == "" {
		m.Color = "white"
	}
	return m
}
