package rpcclient

import (
	"strconv"
)

// orNull turns an empty string into a JSON null parameter. Sui methods with
// optional positional arguments (cursors, gas objects) expect explicit nulls.
func orNull(s string) any {
	if s == "" {
		return nil
	}
	return s
}

// orNullUint turns a zero limit into a JSON null parameter.
func orNullUint(u uint) any {
	if u == 0 {
		return nil
	}
	return u
}

// uintString renders an integer amount the way Sui expects u64 values on the
// wire, as a decimal string.
func uintString(u uint64) string {
	return strconv.FormatUint(u, 10)
}

// uintStrings renders a slice of integer amounts as decimal strings.
func uintStrings(us []uint64) []string {
	s := make([]string, len(us))
	for i, u := range us {
		s[i] = uintString(u)
	}
	return s
}
