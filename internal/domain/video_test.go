package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertFlagInvariant(t *testing.T, v *Video) {
	t.Helper()
	assert.Equal(t, v.Flagged, v.FlagReason != "", "flag reason must be set iff video is flagged")
}

func TestVideoFlagAllow(t *testing.T) {
	v := NewVideo("1", "Funny Dogs", []string{"#dog", "#animal"})
	assertFlagInvariant(t, v)

	require.NoError(t, v.Flag(""))
	assert.True(t, v.Flagged)
	assert.Equal(t, DefaultFlagReason, v.FlagReason)
	assertFlagInvariant(t, v)

	assert.ErrorIs(t, v.Flag("spam"), ErrAlreadyFlagged)
	assert.Equal(t, DefaultFlagReason, v.FlagReason, "failed flag must not change reason")

	require.NoError(t, v.Allow())
	assert.False(t, v.Flagged)
	assertFlagInvariant(t, v)

	assert.ErrorIs(t, v.Allow(), ErrNotFlagged)
	assertFlagInvariant(t, v)

	require.NoError(t, v.Flag("dont_like_dogs"))
	assert.Equal(t, "dont_like_dogs", v.FlagReason)
	assertFlagInvariant(t, v)
}

func TestVideoString(t *testing.T) {
	v := NewVideo("funny_dogs_video_id", "Funny Dogs", []string{"#dog", "#animal"})
	assert.Equal(t, "Funny Dogs (funny_dogs_video_id) [#dog #animal]", v.String())

	require.NoError(t, v.Flag("dont_like_dogs"))
	assert.Equal(t, "Funny Dogs (funny_dogs_video_id) [#dog #animal] - FLAGGED (reason: dont_like_dogs)", v.String())

	empty := NewVideo("nothing_video_id", "Video about nothing", nil)
	assert.Equal(t, "Video about nothing (nothing_video_id) []", empty.String())
}

func TestNewVideoCopiesTags(t *testing.T) {
	tags := []string{"#a"}
	v := NewVideo("1", "A", tags)
	tags[0] = "#changed"
	assert.Equal(t, []string{"#a"}, v.Tags)
}
