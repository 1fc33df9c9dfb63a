package termdisplay

import "strings"

var faces = map[string]string{
	"still":  "=^.^=",
	"alert":  "=^!^=",
	"yawn":   "=^O^=",
	"itch1":  "=^~^=",
	"itch2":  "=~^^=",
	"sleep1": "=-.-= z",
	"sleep2": "=-.-= Z",
}

var arrows = map[string]string{
	"n":  "↑",
	"ne": "↗",
	"e":  "→",
	"se": "↘",
	"s":  "↓",
	"sw": "↙",
	"w":  "←",
	"nw": "↖",
}

// Glyph returns the text drawn for a sprite
func Glyph(sprite string) string {
	if face, ok := faces[sprite]; ok {
		return face
	}

	for _, action := range []string{"run", "scratch"} {
		i := strings.Index(sprite, action)
		if i < 0 || len(sprite) != i+len(action)+1 {
			continue
		}

		arrow, ok := arrows[sprite[:i]]
		if !ok {
			break
		}

		frame := sprite[len(sprite)-1]
		switch {
		case action == "run" && frame == '1':
			return arrow + "=^.^="
		case action == "run":
			return arrow + "=^o^="
		case frame == '1':
			return arrow + "=^#^="
		default:
			return arrow + "=#^^="
		}
	}

	return "?" + sprite
}
