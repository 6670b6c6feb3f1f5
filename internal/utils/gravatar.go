package utils

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"strings"
)

// GravatarURL builds a deterministic avatar URL for the given email
// following the Gravatar protocol: an MD5 digest of the trimmed,
// lower-cased address, with a generated "robohash" fallback image so
// that accounts without a real Gravatar still get a stable avatar.
//
// Used at registration time when the user supplies no profile image.
func GravatarURL(email string, size int) string {
	normalized := strings.ToLower(strings.TrimSpace(email))
	digest := md5.Sum([]byte(normalized))

	return fmt.Sprintf("https://www.gravatar.com/avatar/%s?s=%d&d=robohash", hex.EncodeToString(digest[:]), size)
}
