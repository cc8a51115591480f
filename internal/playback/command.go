package playback

// CommandKind enumerates the remote-control commands.
type CommandKind int

const (
	CmdToggle CommandKind = iota
	CmdPlay
	CmdPause
	CmdNext
	CmdPrevious
	CmdSeekTo
	CmdSeekBy
	CmdSetVolume
	CmdSetShuffle
	CmdSetRepeat
)

// Command is a request posted to the UI loop by a surface running on
// another goroutine, such as the MPRIS adapter.
type Command struct {
	Kind    CommandKind
	Seconds float64 // CmdSeekTo, CmdSeekBy
	Volume  float64 // CmdSetVolume
	Shuffle bool    // CmdSetShuffle
	Repeat  RepeatMode
}

// Apply executes cmd on the engine.
func (e *Engine) Apply(cmd Command) {
	switch cmd.Kind {
	case CmdToggle:
		e.TogglePlayPause()
	case CmdPlay:
		e.Play()
	case CmdPause:
		e.Pause()
	case CmdNext:
		e.Next()
	case CmdPrevious:
		e.Previous()
	case CmdSeekTo:
		e.Seek(cmd.Seconds)
	case CmdSeekBy:
		e.SeekBy(cmd.Seconds)
	case CmdSetVolume:
		e.SetVolume(cmd.Volume)
	case CmdSetShuffle:
		e.SetShuffle(cmd.Shuffle)
	case CmdSetRepeat:
		e.SetRepeatMode(cmd.Repeat)
	default:
		e.log.Debug().Int("kind", int(cmd.Kind)).Msg("ignoring unknown command")
	}
}
