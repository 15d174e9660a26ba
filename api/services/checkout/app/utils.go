package app

import "strings"

// Supported checkout languages; anything else falls back to LangDefault.
const (
	LangSpanish = "es"
	LangDefault = "en"
)

// NormalizeLang maps a requested language to one of the two supported values.
func NormalizeLang(lang string) string {
	if strings.ToLower(strings.TrimSpace(lang)) == LangSpanish {
		return LangSpanish
	}
	return LangDefault
}

// LangPrefix returns the storefront path prefix for a normalized language.
func LangPrefix(lang string) string {
	if lang == LangSpanish {
		return "/es"
	}
	return ""
}

// NormalizeReferralCode trims surrounding whitespace and upper-cases a
// referral code. A blank code normalizes to the empty string.
func NormalizeReferralCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// submitMessage is the localized note shown under the pay button.
func submitMessage(lang string) string {
	if lang == LangSpanish {
		return "Recibirás tu licencia por correo tras completar el pago."
	}
	return "You will receive your license by email after payment."
}
