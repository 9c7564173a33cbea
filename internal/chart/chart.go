// Package chart is for the numeric series behind the sequence charts. Each
// chart is a Method that turns a window of a sequence into x and y values.
package chart

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrUnknownMethod is for a chart method that isn't registered
var ErrUnknownMethod = errors.New("unknown chart method")

// Method is a way of turning a sequence window into a series of points.
type Method interface {
	// Name is the name a Method is registered and looked up by
	Name() string

	// Compute returns the x and y values of the points for a window.
	// xs and ys are always the same length
	Compute(window string) (xs, ys []float64)
}

var methods = map[string]Method{}

// Register adds a Method, replacing any with the same name.
func Register(m Method) {
	methods[strings.ToLower(m.Name())] = m
}

// Lookup returns the Method with a name, ignoring case.
func Lookup(name string) (Method, error) {
	if m, ok := methods[strings.ToLower(name)]; ok {
		return m, nil
	}
	return nil, fmt.Errorf("failed to find %q, use one of %s: %w", name, strings.Join(Names(), ", "), ErrUnknownMethod)
}

// Names of the registered methods, sorted.
func Names() []string {
	names := make([]string, 0, len(methods))
	for name := range methods {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func init() {
	Register(squiggle{})
	Register(gates{})
	Register(yau{})
	Register(qi{})
	Register(randic{})
}

// bases upper-cases a window and reads U as T, so RNA charts like DNA.
func bases(window string) string {
	return strings.ReplaceAll(strings.ToUpper(window), "U", "T")
}
