package utils

import (
	"regexp"
	"strings"

	"github.com/git-abhijeet/credit-risk/internal/pkg/consts"
)

var (
	panRegex     = regexp.MustCompile(consts.ValidPANPattern)
	aadhaarRegex = regexp.MustCompile(consts.ValidAadhaarPattern)
)

// NormalizePAN upper-cases the PAN; the normalized form is what gets
// validated and persisted.
func NormalizePAN(pan string) string {
	return strings.ToUpper(pan)
}

// NormalizeAadhaar trims surrounding whitespace.
func NormalizeAadhaar(aadhaar string) string {
	return strings.TrimSpace(aadhaar)
}

// IsValidPAN expects an already-normalized PAN.
func IsValidPAN(pan string) bool {
	return panRegex.MatchString(pan)
}

// IsValidAadhaar expects an already-normalized Aadhaar.
func IsValidAadhaar(aadhaar string) bool {
	return aadhaarRegex.MatchString(aadhaar)
}
