package main

import (
	"log"

	"github.com/deitrix/drilltris/game"
	"github.com/deitrix/drilltris/sound"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

// speaker plays the sound bank through ebiten's audio context. Each clip gets one player that
// is rewound on every play.
type speaker struct {
	ctx     *audio.Context
	bank    *sound.Bank
	players map[sound.Name]*audio.Player
	muted   bool
}

func newSpeaker(muted bool) *speaker {
	return &speaker{
		ctx:     audio.NewContext(int(sound.SampleRate)),
		bank:    sound.NewBank(),
		players: make(map[sound.Name]*audio.Player),
		muted:   muted,
	}
}

func (s *speaker) Play(e game.Event) {
	if s == nil || s.muted {
		return
	}
	name := sound.NameFor(e)
	p, ok := s.players[name]
	if !ok {
		clip := s.bank.Clip(name)
		if len(clip) == 0 {
			return
		}
		p = s.ctx.NewPlayerFromBytes(clip)
		s.players[name] = p
	}
	if err := p.Rewind(); err != nil {
		log.Printf("failed to rewind %s: %v", name, err)
		return
	}
	p.Play()
}
