package audio

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/cbodonnell/patiencebag/pkg/bag"
	"github.com/cbodonnell/patiencebag/pkg/config"
	"github.com/cbodonnell/patiencebag/pkg/log"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

const SampleRate = 44100

// Player plays the cues of the controller through an ebiten audio context.
// Cues without a configured file are silent.
type Player struct {
	players map[bag.Cue]*audio.Player
}

var _ bag.SoundPlayer = &Player{}

// NewPlayer decodes the configured sound files up front. A file that
// cannot be loaded leaves its cue silent.
func NewPlayer(ctx *audio.Context, sounds config.Sounds) *Player {
	p := &Player{
		players: make(map[bag.Cue]*audio.Player),
	}
	for cue, path := range map[bag.Cue]string{
		bag.CueSnap:      sounds.Snap,
		bag.CueExplosion: sounds.Explosion,
	} {
		if path == "" {
			continue
		}
		pcm, err := decodeFile(path, ctx.SampleRate())
		if err != nil {
			log.Error("Failed to load %s sound: %v", cue, err)
			continue
		}
		p.players[cue] = ctx.NewPlayerFromBytes(pcm)
		log.Debug("Loaded %s sound from %s", cue, path)
	}
	return p
}

// PlayCue restarts the cue from the beginning, so rapid snaps each sound.
func (p *Player) PlayCue(cue bag.Cue) {
	player, ok := p.players[cue]
	if !ok {
		return
	}
	if err := player.SetPosition(0); err != nil {
		log.Warn("Failed to rewind %s sound: %v", cue, err)
		return
	}
	player.Play()
}

func decodeFile(path string, sampleRate int) ([]byte, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read sound file: %v", err)
	}
	return decode(filepath.Ext(path), b, sampleRate)
}

// decode returns the raw stereo PCM of an encoded sound.
func decode(ext string, b []byte, sampleRate int) ([]byte, error) {
	var (
		stream io.Reader
		err    error
	)
	src := bytes.NewReader(b)
	switch strings.ToLower(ext) {
	case ".wav":
		stream, err = wav.DecodeWithSampleRate(sampleRate, src)
	case ".mp3":
		stream, err = mp3.DecodeWithSampleRate(sampleRate, src)
	case ".ogg":
		stream, err = vorbis.DecodeWithSampleRate(sampleRate, src)
	default:
		return nil, fmt.Errorf("unsupported sound format %q", ext)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to decode sound: %v", err)
	}
	pcm, err := io.ReadAll(stream)
	if err != nil {
		return nil, fmt.Errorf("failed to read decoded sound: %v", err)
	}
	return pcm, nil
}
