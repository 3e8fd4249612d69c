package team

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Team 254", DefaultDisplayName(254))
	assert.Equal(t, Identity{Number: 7, DisplayName: "Team 7", Logo: PlaceholderLogo}, DefaultIdentity(7, ""))
	assert.Equal(t, "custom.png", DefaultIdentity(7, "custom.png").Logo)
	assert.Equal(t, "The Cheesy Poofs", DisplayNameOr(254, " The Cheesy Poofs "))
	assert.Equal(t, "Team 254", DisplayNameOr(254, "  "))
}

func TestAvatarDataURL(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "data:image/png;base64,iVBORw0KGgo=", AvatarDataURL("iVBORw0KGgo="))
	assert.Equal(t, "", AvatarDataURL(""))
}

func TestParseNumber(t *testing.T) {
	t.Parallel()

	n, err := ParseNumber("frc1678")
	require.NoError(t, err)
	assert.Equal(t, 1678, n)

	n, err = ParseNumber(" 254 ")
	require.NoError(t, err)
	assert.Equal(t, 254, n)

	for _, bad := range []string{"", "abc", "0", "-3", "—"} {
		_, err := ParseNumber(bad)
		assert.Error(t, err, bad)
	}
	assert.Equal(t, "frc254", Key(254))
}
