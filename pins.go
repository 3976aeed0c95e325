package main

import (
	"strconv"
	"strings"

	"dscheirer.com/alphadisplay/dlg7137"
	"github.com/pkg/errors"
)

// highest BCM gpio on the pi header chips
const maxBCMPin = 53

// a comma list of pin ids, D0 first
func parsePins(list string) ([]string, error) {
	parts := strings.Split(list, ",")
	if len(parts) != dlg7137.LineCount {
		return nil, errors.Errorf("need %d pins, got %d in %q", dlg7137.LineCount, len(parts), list)
	}

	seen := make(map[string]bool)
	pins := make([]string, 0, len(parts))
	for i, p := range parts {
		p = strings.ToUpper(strings.TrimSpace(p))
		if p == "" {
			return nil, errors.Errorf("pin for D%d is empty", i)
		}
		if seen[p] {
			return nil, errors.Errorf("pin %s used twice", p)
		}
		seen[p] = true
		pins = append(pins, p)
	}
	return pins, nil
}

// "17" and "GPIO17" are both BCM 17
func bcmNumber(id string) (int, error) {
	n, err := strconv.Atoi(strings.TrimPrefix(strings.ToUpper(id), "GPIO"))
	if err != nil {
		return 0, errors.Wrapf(err, "pin %s", id)
	}
	if n < 0 || n > maxBCMPin {
		return 0, errors.Errorf("pin %s out of range", id)
	}
	return n, nil
}

// periph looks pins up by name, bare numbers are gpio numbers
func periphName(id string) string {
	if _, err := strconv.Atoi(id); err == nil {
		return "GPIO" + id
	}
	return id
}
