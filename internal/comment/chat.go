package comment

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// JST is the zone comment timestamps are rendered in.
var JST = time.FixedZone("JST", 9*60*60)

type Position int

const (
	PositionDefault Position = iota // naka
	PositionTop                     // ue
	PositionBottom                  // shita
)

func (p Position) String() string {
	switch p {
	case PositionTop:
		return "ue"
	case PositionBottom:
		return "shita"
	default:
		return "naka"
	}
}

type Size int

const (
	SizeNormal Size = iota
	SizeSmall
	SizeLarge
)

func (s Size) String() string {
	switch s {
	case SizeSmall:
		return "small"
	case SizeLarge:
		return "big"
	default:
		return "medium"
	}
}

type Color struct {
	R, G, B uint8
}

func (c Color) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// White is the color of a comment without a color command.
var White = Color{0xFF, 0xFF, 0xFF}

// Chat is the normalized comment returned to callers.
type Chat struct {
	Time     time.Time
	Text     string
	Position Position
	Size     Size
	Color    Color
	Author   string
	ID       int
	IsSelf   bool
}

var palette = map[string]Color{
	"white":          White,
	"red":            {0xFF, 0x00, 0x00},
	"pink":           {0xFF, 0x80, 0x80},
	"orange":         {0xFF, 0xC0, 0x00},
	"yellow":         {0xFF, 0xFF, 0x00},
	"green":          {0x00, 0xFF, 0x00},
	"cyan":           {0x00, 0xFF, 0xFF},
	"blue":           {0x00, 0x00, 0xFF},
	"purple":         {0xC0, 0x00, 0xFF},
	"black":          {0x00, 0x00, 0x00},
	"white2":         {0xCC, 0xCC, 0x99},
	"niconicowhite":  {0xCC, 0xCC, 0x99},
	"red2":           {0xCC, 0x00, 0x33},
	"truered":        {0xCC, 0x00, 0x33},
	"pink2":          {0xFF, 0x33, 0xCC},
	"orange2":        {0xFF, 0x66, 0x00},
	"passionorange":  {0xFF, 0x66, 0x00},
	"yellow2":        {0x99, 0x99, 0x00},
	"madyellow":      {0x99, 0x99, 0x00},
	"green2":         {0x00, 0xCC, 0x66},
	"elementalgreen": {0x00, 0xCC, 0x66},
	"cyan2":          {0x00, 0xCC, 0xCC},
	"blue2":          {0x33, 0x99, 0xFF},
	"marineblue":     {0x33, 0x99, 0xFF},
	"purple2":        {0x66, 0x33, 0xCC},
	"nobleviolet":    {0x66, 0x33, 0xCC},
	"black2":         {0x66, 0x66, 0x66},
}

// PostableColors are the named colors the post frame accepts.
var PostableColors = []string{
	"white", "red", "pink", "orange", "yellow", "green", "cyan", "blue", "purple", "black",
	"white2", "red2", "pink2", "orange2", "yellow2", "green2", "cyan2", "blue2", "purple2", "black2",
}

var hexColorRe = regexp.MustCompile(`^#([0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// LookupColor resolves a named color.
func LookupColor(name string) (Color, bool) {
	c, ok := palette[name]
	return c, ok
}

// IsHexColor reports whether s is a #RGB or #RRGGBB literal.
func IsHexColor(s string) bool {
	return hexColorRe.MatchString(s)
}

// ParseHexColor parses #RGB or #RRGGBB.
func ParseHexColor(s string) (Color, bool) {
	m := hexColorRe.FindStringSubmatch(s)
	if m == nil {
		return Color{}, false
	}
	digits := m[1]
	if len(digits) == 3 {
		digits = string([]byte{digits[0], digits[0], digits[1], digits[1], digits[2], digits[2]})
	}
	v, err := strconv.ParseUint(digits, 16, 32)
	if err != nil {
		return Color{}, false
	}
	return Color{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, true
}

// ToChat normalizes a chat tag. Position, size and color come from the first
// matching command in the mail field.
func ToChat(tag *ChatTag) Chat {
	chat := Chat{
		Time:     time.Unix(tag.Date, int64(tag.DateUsec)*int64(time.Microsecond)).In(JST),
		Text:     tag.Text,
		Position: PositionDefault,
		Size:     SizeNormal,
		Color:    White,
		Author:   tag.UserID,
		ID:       tag.No,
		IsSelf:   tag.IsSelf,
	}

	var havePos, haveSize, haveColor bool
	for _, cmd := range strings.Fields(tag.Mail) {
		switch cmd {
		case "ue", "shita", "naka":
			if !havePos {
				havePos = true
				switch cmd {
				case "ue":
					chat.Position = PositionTop
				case "shita":
					chat.Position = PositionBottom
				}
			}
			continue
		case "big", "small", "medium":
			if !haveSize {
				haveSize = true
				switch cmd {
				case "big":
					chat.Size = SizeLarge
				case "small":
					chat.Size = SizeSmall
				}
			}
			continue
		}
		if haveColor {
			continue
		}
		if c, ok := LookupColor(cmd); ok {
			chat.Color, haveColor = c, true
		} else if c, ok := ParseHexColor(cmd); ok {
			chat.Color, haveColor = c, true
		}
	}
	return chat
}
