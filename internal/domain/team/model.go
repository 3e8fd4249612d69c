package team

import (
	"fmt"
	"strconv"
	"strings"
)

// PlaceholderLogo is the generic image shown when a team has no avatar.
const PlaceholderLogo = "icons/first-generic.png"

const avatarDataURLPrefix = "data:image/png;base64,"

// Identity is how a team is shown next to a scouted match.
type Identity struct {
	Number      int
	DisplayName string
	Logo        string
}

func DefaultDisplayName(number int) string {
	return "Team " + strconv.Itoa(number)
}

// DefaultIdentity is the fallback used when nothing could be fetched.
func DefaultIdentity(number int, placeholderLogo string) Identity {
	if placeholderLogo == "" {
		placeholderLogo = PlaceholderLogo
	}
	return Identity{
		Number:      number,
		DisplayName: DefaultDisplayName(number),
		Logo:        placeholderLogo,
	}
}

// DisplayNameOr returns the trimmed nickname, or the synthesized default.
func DisplayNameOr(number int, nickname string) string {
	if nick := strings.TrimSpace(nickname); nick != "" {
		return nick
	}
	return DefaultDisplayName(number)
}

// AvatarDataURL wraps a base64 PNG payload into an inline image reference.
func AvatarDataURL(base64Image string) string {
	base64Image = strings.TrimSpace(base64Image)
	if base64Image == "" {
		return ""
	}

	return avatarDataURLPrefix + base64Image
}

// ParseNumber accepts "254" or "frc254".
func ParseNumber(raw string) (int, error) {
	raw = strings.TrimPrefix(strings.ToLower(strings.TrimSpace(raw)), "frc")
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("team number must be a positive integer, got %q", raw)
	}
	return n, nil
}

// Key is the alliance-data service identifier for a team.
func Key(number int) string {
	return "frc" + strconv.Itoa(number)
}
