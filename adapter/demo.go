package adapter

import "io"

// demoPlaylist is played in order by Demo; mov and rmvb are unsupported.
var demoPlaylist = [][2]string{
	{"mp3", "beyond the horizon.mp3"},
	{"mp4", "alone.mp4"},
	{"mov", "loser.mov"},
	{"vlc", "far far away.vlc"},
	{"avi", "mind me.avi"},
	{"rmvb", "plane.rmvb"},
}

// Demo plays a fixed playlist through a Player.
func Demo(w io.Writer, opts ...Option) error {
	p := NewPlayer(w, opts...)
	for _, track := range demoPlaylist {
		if err := p.Play(track[0], track[1]); err != nil {
			return err
		}
	}

	return nil
}
