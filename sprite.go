package neko

import "strconv"

// KnownSprites lists every sprite name an asset set is expected to provide.
var KnownSprites = []string{
	"alert",
	"still",
	"yawn",
	"itch1", "itch2",
	"sleep1", "sleep2",
	// run
	"nrun1", "nrun2",
	"nerun1", "nerun2",
	"erun1", "erun2",
	"serun1", "serun2",
	"srun1", "srun2",
	"swrun1", "swrun2",
	"wrun1", "wrun2",
	"nwrun1", "nwrun2",
	// scratch
	"nscratch1", "nscratch2",
	"escratch1", "escratch2",
	"sscratch1", "sscratch2",
	"wscratch1", "wscratch2",
}

var knownSprites = func() map[string]bool {
	m := make(map[string]bool, len(KnownSprites))
	for _, name := range KnownSprites {
		m[name] = true
	}
	return m
}()

// DisplayName builds the sprite name: dir + name + n.
// A zero n and an empty dir are omitted.
func DisplayName(name string, n int, dir Direction) string {
	s := string(dir) + name
	if n != 0 {
		s += strconv.Itoa(n)
	}
	return s
}

// IsKnownSprite reports whether the sprite is part of KnownSprites
func IsKnownSprite(sprite string) bool {
	return knownSprites[sprite]
}
