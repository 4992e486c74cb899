package domain

import "errors"

var (
	ErrDuplicateVideo     = errors.New("video already added")
	ErrVideoNotInPlaylist = errors.New("video is not in playlist")
)

// PlaylistKey returns the case-insensitive identity of a playlist name.
func PlaylistKey(name string) string {
	return Fold(name)
}

type Playlist struct {
	Name string `json:"name"`
	Key  string `json:"-"`
	list []*Video
}

func NewPlaylist(name string) *Playlist {
	return &Playlist{
		Name: name,
		Key:  PlaylistKey(name),
	}
}

func (p *Playlist) AsList() []*Video {
	list := make([]*Video, len(p.list))
	copy(list, p.list)
	return list
}

func (p *Playlist) Length() int {
	return len(p.list)
}

func (p *Playlist) At(index int) *Video {
	return p.list[index]
}

func (p *Playlist) indexOf(videoID string) int {
	for index, video := range p.list {
		if video.ID == videoID {
			return index
		}
	}

	return -1
}

func (p *Playlist) Contains(videoID string) bool {
	return p.indexOf(videoID) >= 0
}

func (p *Playlist) Add(video *Video) error {
	if video.Flagged {
		return ErrVideoFlagged
	}

	if p.Contains(video.ID) {
		return ErrDuplicateVideo
	}

	p.list = append(p.list, video)
	return nil
}

func (p *Playlist) RemoveByID(videoID string) (*Video, error) {
	index := p.indexOf(videoID)
	if index < 0 {
		return nil, ErrVideoNotInPlaylist
	}

	video := p.list[index]
	p.list = append(p.list[:index:index], p.list[index+1:]...)
	return video, nil
}

func (p *Playlist) Clear() {
	p.list = nil
}
