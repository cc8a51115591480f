// Package icons holds the glyph set used by the player bar and sidebar.
package icons

// Style represents the icon style to use.
type Style string

const (
	StyleNerd    Style = "nerd"
	StyleUnicode Style = "unicode"
	StyleNone    Style = "none"
)

// Icons holds the icon characters for one style.
type Icons struct {
	Play      string
	Pause     string
	Volume    string
	Muted     string
	Shuffle   string
	RepeatAll string
	RepeatOne string
	Library   string
}

var (
	nerdIcons = Icons{
		Play:      "", // nf-fa-play
		Pause:     "", // nf-fa-pause
		Volume:    "󰕾",      // nf-md-volume_high
		Muted:     "󰝟",      // nf-md-volume_off
		Shuffle:   "󰒟",      // nf-md-shuffle
		RepeatAll: "󰑖",      // nf-md-repeat
		RepeatOne: "󰑘",      // nf-md-repeat_once
		Library:   "󰲸",      // nf-md-playlist_music
	}

	unicodeIcons = Icons{
		Play:      "▶",
		Pause:     "⏸",
		Volume:    "🔊",
		Muted:     "🔇",
		Shuffle:   "🔀",
		RepeatAll: "🔁",
		RepeatOne: "🔂",
		Library:   "♪",
	}

	noneIcons = Icons{
		Play:      ">",
		Pause:     "||",
		Volume:    "vol",
		Muted:     "mute",
		Shuffle:   "[S]",
		RepeatAll: "[R]",
		RepeatOne: "[1]",
		Library:   "*",
	}

	// current holds the active icon set
	current = unicodeIcons
)

// Init selects the icon style. Call it once at startup with the config
// value; unknown or empty styles keep the unicode set.
func Init(style string) {
	switch Style(style) {
	case StyleNerd:
		current = nerdIcons
	case StyleNone:
		current = noneIcons
	default:
		current = unicodeIcons
	}
}

// Play returns the playing indicator.
func Play() string {
	return current.Play
}

// Pause returns the paused indicator.
func Pause() string {
	return current.Pause
}

// Volume returns the volume icon for the mute state.
func Volume(muted bool) string {
	if muted {
		return current.Muted
	}
	return current.Volume
}

// Shuffle returns the shuffle icon.
func Shuffle() string {
	return current.Shuffle
}

// Repeat returns the repeat icon. one selects the single-track variant.
func Repeat(one bool) string {
	if one {
		return current.RepeatOne
	}
	return current.RepeatAll
}

// Library returns the icon for the whole-library entry.
func Library() string {
	return current.Library
}
