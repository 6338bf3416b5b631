package version

import (
	"fmt"
	"strconv"
	"strings"
)

// Compare orders two major.minor.patch versions, with or without a leading
// "v". It returns 1 when a is newer, -1 when b is newer and 0 otherwise.
func Compare(a, b string) (int, error) {
	av, err := parse(a)
	if err != nil {
		return 0, err
	}

	bv, err := parse(b)
	if err != nil {
		return 0, err
	}

	for i := range av {
		switch {
		case av[i] > bv[i]:
			return 1, nil
		case av[i] < bv[i]:
			return -1, nil
		}
	}

	return 0, nil
}

func parse(s string) ([3]int, error) {
	var v [3]int

	parts := strings.SplitN(strings.TrimPrefix(strings.TrimSpace(s), "v"), ".", 3)
	if len(parts) != 3 {
		return v, fmt.Errorf("malformed version %q", s)
	}

	for i, part := range parts {
		// drop pre-release and build suffixes: 1.2.3-rc1
		if j := strings.IndexAny(part, "-+"); j >= 0 && i == 2 {
			part = part[:j]
		}

		n, err := strconv.Atoi(part)
		if err != nil {
			return v, fmt.Errorf("malformed version %q", s)
		}
		v[i] = n
	}

	return v, nil
}
