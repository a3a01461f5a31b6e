package xmltree

import (
	"strconv"
	"strings"
)

// ParseValue returns an integer Value when the token is a base-10 integer
// literal (surrounding whitespace and a leading sign are accepted), otherwise
// the untouched token as a string. It never fails.
func ParseValue(token string) Value {
	i, err := strconv.ParseInt(strings.TrimSpace(token), 10, 64)
	if err != nil {
		return StringValue(token)
	}
	return IntValue(i)
}
