package main

import (
	"fmt"
	"strconv"
	"strings"
)

type paintSpec struct {
	X, Y, R int
}

// parsePaint reads an "x,y,r" disk. The radius is optional and defaults to 4.
func parsePaint(s string) (paintSpec, error) {
	parts := strings.Split(s, ",")
	if len(parts) < 2 || len(parts) > 3 {
		return paintSpec{}, fmt.Errorf("paint %q: want x,y[,r]", s)
	}
	vals := []int{0, 0, 4}
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return paintSpec{}, fmt.Errorf("paint %q: %w", s, err)
		}
		vals[i] = v
	}
	if vals[2] < 0 {
		return paintSpec{}, fmt.Errorf("paint %q: negative radius", s)
	}
	return paintSpec{X: vals[0], Y: vals[1], R: vals[2]}, nil
}

func parsePaints(specs []string) ([]paintSpec, error) {
	out := make([]paintSpec, 0, len(specs))
	for _, s := range specs {
		p, err := parsePaint(s)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}
