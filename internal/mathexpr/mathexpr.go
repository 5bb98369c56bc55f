// Package mathexpr normalises a reading that looks like a math expression
// into its canonical ASCII form, short-circuiting reverse conversion when it
// succeeds: there is no point asking the lattice converter for a "reading"
// of "1+2".
package mathexpr

// #region mapping-table

// table is fixed and total on its domain: every codepoint accepted by
// Normalize has exactly one entry here, mapping to its ASCII canonical form.
var table = map[rune]rune{
	'0': '0', '1': '1', '2': '2', '3': '3', '4': '4',
	'5': '5', '6': '6', '7': '7', '8': '8', '9': '9',
	'０': '0', '１': '1', '２': '2', '３': '3', '４': '4',
	'５': '5', '６': '6', '７': '7', '８': '8', '９': '9',

	'+':      '+',
	'＋': '+',

	'-':      '-',
	'ー': '-', // ー, katakana-hiragana prolonged sound mark

	'*':      '*',
	'＊': '*',
	'×': '*', // ×

	'/':      '/',
	'／': '/',
	'・': '/', // ・
	'÷': '/', // ÷

	'(':      '(',
	'（': '(',

	')':      ')',
	'）': ')',

	'=':      '=',
	'＝': '=',
}

// #endregion mapping-table

// #region normalize

// Normalize folds every codepoint of s to its ASCII canonical form via
// table. It aborts and returns ("", false) the moment it sees a codepoint
// outside table's domain — the whole expression is rejected, not just the
// offending rune.
func Normalize(s string) (string, bool) {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		canon, ok := table[r]
		if !ok {
			return "", false
		}
		out = append(out, canon)
	}
	return string(out), true
}

// #endregion normalize
