package schema

import "strings"

// naturalLess compares two strings treating digit runs as numbers, so
// "step2" sorts before "step10". Leading zeros are ignored for comparison;
// ties fall back to plain string order.
func naturalLess(a, b string) bool {
	for a != "" && b != "" {
		aRun, aNum, aRest := nextRun(a)
		bRun, bNum, bRest := nextRun(b)

		if aNum && bNum {
			at := strings.TrimLeft(aRun, "0")
			bt := strings.TrimLeft(bRun, "0")
			if len(at) != len(bt) {
				return len(at) < len(bt)
			}
			if at != bt {
				return at < bt
			}
		} else if aRun != bRun {
			return aRun < bRun
		}
		a, b = aRest, bRest
	}
	return a == "" && b != ""
}

// nextRun splits off the leading run of digits or non-digits.
func nextRun(s string) (run string, numeric bool, rest string) {
	if s == "" {
		return "", false, ""
	}
	numeric = isDigit(s[0])
	i := 1
	for i < len(s) && isDigit(s[i]) == numeric {
		i++
	}
	return s[:i], numeric, s[i:]
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }
