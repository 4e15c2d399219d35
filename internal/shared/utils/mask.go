package utils

import "strings"

// MaskContact masks a phone number or contact link for public tracking pages.
// The first ceil(len*0.4) characters stay visible, the rest become '*'.
// Values of four characters or fewer are returned unchanged.
// Example: "0123456789" -> "0123******"
func MaskContact(contact string) string {
	runes := []rune(contact)
	if len(runes) <= 4 {
		return contact
	}
	visible := (len(runes)*4 + 9) / 10 // ceil(len * 0.4)
	return string(runes[:visible]) + strings.Repeat("*", len(runes)-visible)
}

// MaskAddress masks a comma-delimited address for public tracking pages.
// The first ceil(parts*0.5) comma-separated segments stay visible and a
// literal ", ***" marker is appended.
// Example: "12 Le Loi, Q1, HCMC" -> "12 Le Loi, Q1, ***"
func MaskAddress(address string) string {
	parts := strings.Split(address, ",")
	visible := (len(parts) + 1) / 2 // ceil(parts * 0.5)
	return strings.Join(parts[:visible], ",") + ", ***"
}

// MaskEmail masks an email address for safe logging.
// Example: "user@example.com" -> "u***@example.com"
func MaskEmail(email string) string {
	at := strings.Index(email, "@")
	if at <= 0 {
		return "***"
	}
	return email[:1] + "***" + email[at:]
}
