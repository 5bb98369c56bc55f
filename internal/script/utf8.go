package script

// #region char-helpers

// CharLen returns the number of runes (not bytes) in s.
func CharLen(s string) int {
	return len([]rune(s))
}

// SubstringByChar returns the substring of s starting at char offset
// charOffset and spanning charLen runes. Indices are clamped to the
// available range, matching Util::Utf8SubString's tolerant behavior.
func SubstringByChar(s string, charOffset, charLen int) string {
	runes := []rune(s)
	if charOffset < 0 {
		charOffset = 0
	}
	if charOffset >= len(runes) || charLen <= 0 {
		return ""
	}
	end := charOffset + charLen
	if end > len(runes) {
		end = len(runes)
	}
	return string(runes[charOffset:end])
}

// #endregion char-helpers
