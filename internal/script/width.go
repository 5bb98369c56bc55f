package script

import "golang.org/x/text/width"

// #region fold

// FoldToHalfWidth converts full-width ASCII digits, letters, and symbols to
// their half-width (plain ASCII) form; everything else passes through
// unchanged. Used when a NUMBER or ALPHABET token extracted from preceding
// text must become a conversion key.
func FoldToHalfWidth(s string) string {
	return width.Narrow.String(s)
}

// #endregion fold
