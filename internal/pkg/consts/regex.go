package consts

const (
	// ValidPANPattern matches a PAN after upper-casing: 5 letters, 4 digits,
	// 1 letter (e.g. ABCDE1234F).
	ValidPANPattern = `^[A-Z]{5}[0-9]{4}[A-Z]$`

	// ValidAadhaarPattern matches exactly 12 digits.
	ValidAadhaarPattern = `^\d{12}$`
)
