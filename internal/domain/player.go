package domain

import (
	"errors"
	"math/rand"
)

var (
	ErrNothingPlaying    = errors.New("no video is currently playing")
	ErrNotPaused         = errors.New("video is not paused")
	ErrNoVideosAvailable = errors.New("no videos available")
)

type PlayerState int

const (
	PlayerStateIdle PlayerState = iota
	PlayerStatePlaying
	PlayerStatePaused
)

func (s PlayerState) String() string {
	switch s {
	case PlayerStatePlaying:
		return "playing"
	case PlayerStatePaused:
		return "paused"
	default:
		return "idle"
	}
}

// Player tracks the single video that is playing or paused. It borrows videos
// from the catalog and mirrors its paused state onto the current video.
type Player struct {
	current *Video
	intn    func(n int) int
}

func NewPlayer() *Player {
	return &Player{intn: rand.Intn}
}

// NewPlayerWithRand is like NewPlayer but picks random videos with intn,
// which must return a value in [0, n).
func NewPlayerWithRand(intn func(n int) int) *Player {
	return &Player{intn: intn}
}

func (p *Player) State() PlayerState {
	switch {
	case p.current == nil:
		return PlayerStateIdle
	case p.current.Paused:
		return PlayerStatePaused
	default:
		return PlayerStatePlaying
	}
}

// Current returns the active video and whether it is paused, or nil when idle.
func (p *Player) Current() (*Video, bool) {
	if p.current == nil {
		return nil, false
	}

	return p.current, p.current.Paused
}

func (p *Player) IsCurrent(videoID string) bool {
	return p.current != nil && p.current.ID == videoID
}

// Play switches to video, stopping the active one first. The stopped video is
// returned so callers can report it. A flagged video leaves the player untouched.
func (p *Player) Play(video *Video) (*Video, error) {
	if video.Flagged {
		return nil, ErrVideoFlagged
	}

	stopped := p.current
	if stopped != nil {
		stopped.Paused = false
	}

	p.current = video
	video.Paused = false
	return stopped, nil
}

func (p *Player) Stop() (*Video, error) {
	if p.current == nil {
		return nil, ErrNothingPlaying
	}

	stopped := p.current
	stopped.Paused = false
	p.current = nil
	return stopped, nil
}

// Pause pauses the active video. Pausing an already paused video changes
// nothing and reports alreadyPaused.
func (p *Player) Pause() (video *Video, alreadyPaused bool, err error) {
	if p.current == nil {
		return nil, false, ErrNothingPlaying
	}

	if p.current.Paused {
		return p.current, true, nil
	}

	p.current.Paused = true
	return p.current, false, nil
}

func (p *Player) Resume() (*Video, error) {
	if p.current == nil {
		return nil, ErrNothingPlaying
	}

	if !p.current.Paused {
		return p.current, ErrNotPaused
	}

	p.current.Paused = false
	return p.current, nil
}

// PlayRandom plays a uniformly chosen unflagged video from candidates.
func (p *Player) PlayRandom(candidates []*Video) (played, stopped *Video, err error) {
	available := make([]*Video, 0, len(candidates))
	for _, video := range candidates {
		if !video.Flagged {
			available = append(available, video)
		}
	}

	if len(available) == 0 {
		return nil, nil, ErrNoVideosAvailable
	}

	played = available[p.intn(len(available))]
	stopped, err = p.Play(played)
	if err != nil {
		return nil, nil, err
	}

	return played, stopped, nil
}
