package validate

import (
	"regexp"
	"strconv"
)

// steamIDBase is the offset between a 32-bit account id and its 64-bit steam id.
const steamIDBase uint64 = 76561197960265728

var (
	tradeLinkRe = regexp.MustCompile(`(?i)^https?://steamcommunity\.com/tradeoffer/new/\?partner=([0-9]+)&token=([\w\-]+)$`)
	steamIDRe   = regexp.MustCompile(`^7656119[0-9]{10}$`)
)

func IsSteamID(s string) bool {
	return steamIDRe.MatchString(s)
}

// TradeLinkSteamID returns the steam id a trade offer link belongs to.
func TradeLinkSteamID(link string) (string, bool) {
	m := tradeLinkRe.FindStringSubmatch(link)
	if m == nil {
		return "", false
	}
	partner, err := strconv.ParseUint(m[1], 10, 32)
	if err != nil {
		return "", false
	}
	return strconv.FormatUint(partner+steamIDBase, 10), true
}

// IsTradeLinkOf reports whether link is a well formed trade link of steamID.
func IsTradeLinkOf(link, steamID string) bool {
	owner, ok := TradeLinkSteamID(link)
	return ok && owner == steamID
}
