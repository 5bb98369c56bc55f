package script

// #region last-token

// ExtractLastTokenOfSameScript walks text right-to-left and returns the
// maximal trailing run of same-script codepoints. Exactly one trailing
// ASCII space is consumed first; a second consecutive trailing space fails,
// as does an empty input.
func ExtractLastTokenOfSameScript(text string) (token string, t Type, ok bool) {
	runes := []rune(text)
	if len(runes) == 0 {
		return "", None, false
	}

	end := len(runes)
	if runes[end-1] == ' ' {
		end--
		if end == 0 {
			return "", None, false
		}
		if runes[end-1] == ' ' {
			return "", None, false
		}
	}

	last := Classify(runes[end-1])
	start := end - 1
	for start > 0 && Classify(runes[start-1]) == last {
		start--
	}
	return string(runes[start:end]), last, true
}

// #endregion last-token
