package catalog

import (
	"slices"
	"strings"

	"github.com/sharetube/videoconsole/internal/domain"
)

func SortByTitle(videos []*domain.Video) {
	slices.SortStableFunc(videos, func(a, b *domain.Video) int {
		return strings.Compare(a.Title, b.Title)
	})
}

// TitleContains matches titles containing term, ignoring case.
func TitleContains(term string) func(*domain.Video) bool {
	needle := domain.Fold(term)
	return func(video *domain.Video) bool {
		return strings.Contains(domain.Fold(video.Title), needle)
	}
}

// HasTag matches videos carrying tag, ignoring case.
func HasTag(tag string) func(*domain.Video) bool {
	needle := domain.Fold(tag)
	return func(video *domain.Video) bool {
		for _, t := range video.Tags {
			if domain.Fold(t) == needle {
				return true
			}
		}

		return false
	}
}
