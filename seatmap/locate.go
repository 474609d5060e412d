package seatmap

import (
	"regexp"
	"strings"

	"github.com/paologalligit/seat-helper/entities"
)

// #/<CINEMA>/<LETTERS><DIGITS>; only the digits of the session are kept
var addressRegex = regexp.MustCompile(`^#/([A-Z]+)/[A-Z]+([0-9]+)$`)

// Locate derives the cinema and session from a page address. It accepts
// either the bare fragment or a full URL carrying it.
func Locate(address string) (entities.SessionRef, error) {
	fragment := address
	if i := strings.IndexByte(address, '#'); i >= 0 {
		fragment = address[i:]
	}
	match := addressRegex.FindStringSubmatch(fragment)
	if match == nil {
		return entities.SessionRef{}, newError(KindMalformedAddress, nil, "%q does not encode a cinema and session", address)
	}
	return entities.SessionRef{
		Cinema:  match[1],
		Session: match[2],
	}, nil
}
