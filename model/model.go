package model

import (
	"fmt"
	"math"
	"strings"
)

// Type identifies a growth model.
type Type int

const (
	// TypeLinear represents the linear model: T(n) = a*n + b
	TypeLinear Type = iota
	// TypeLinearithmic represents the linearithmic model: T(n) = a*n*ln(n) + b
	TypeLinearithmic
	// TypeQuadratic represents the quadratic model: T(n) = a*n² + b
	TypeQuadratic
)

// typeNames maps Type to their string representations.
var typeNames = map[Type]string{
	TypeLinear:       "linear",
	TypeLinearithmic: "linearithmic",
	TypeQuadratic:    "quadratic",
}

// String returns the string representation of the model type.
func (t Type) String() string {
	if name, exists := typeNames[t]; exists {
		return name
	}

	return "unknown"
}

// BigO returns the asymptotic class label for the model type, e.g. "O(n log n)".
func (t Type) BigO() string {
	switch t {
	case TypeLinear:
		return "O(n)"
	case TypeLinearithmic:
		return "O(n log n)"
	case TypeQuadratic:
		return "O(n²)"
	default:
		return "O(?)"
	}
}

// typeFromString maps string names to Type.
var typeFromString = map[string]Type{
	"linear":       TypeLinear,
	"linearithmic": TypeLinearithmic,
	"quadratic":    TypeQuadratic,
}

// TypeFromString returns the Type for a given string name (case-insensitive).
// Returns Type(-1) for unknown names.
func TypeFromString(name string) Type {
	if t, exists := typeFromString[strings.ToLower(name)]; exists {
		return t
	}

	return Type(-1)
}

// Model is a candidate growth model: a named two-parameter function from
// input size to estimated duration.
//
// Models are stateless and shared; calibration never mutates a Model, it
// produces a separate fit result carrying the calibrated parameters. All
// implementations are safe for concurrent use.
type Model interface {
	// Type returns the model type.
	Type() Type
	// Evaluate returns the estimated duration in seconds for input size n
	// under scale parameter a and offset parameter b. Evaluation is defined
	// for n >= 1; non-positive n yields +Inf.
	Evaluate(n, a, b float64) float64
	// Formula returns a human-readable formula with the given parameters
	// substituted in.
	Formula(a, b float64) string
}

// Linear is the shared instance of the linear model: T(n) = a*n + b.
var Linear Model = linear{}

type linear struct{}

func (linear) Type() Type { return TypeLinear }

func (linear) Evaluate(n, a, b float64) float64 {
	if n <= 0 {
		return math.Inf(1)
	}

	return a*n + b
}

func (linear) Formula(a, b float64) string {
	return fmt.Sprintf("T(n) = %.4g*n + %.4g", a, b)
}

// Linearithmic is the shared instance of the linearithmic model:
// T(n) = a*n*ln(n) + b.
var Linearithmic Model = linearithmic{}

type linearithmic struct{}

func (linearithmic) Type() Type { return TypeLinearithmic }

func (linearithmic) Evaluate(n, a, b float64) float64 {
	if n <= 0 {
		return math.Inf(1)
	}

	return a*n*math.Log(n) + b
}

func (linearithmic) Formula(a, b float64) string {
	return fmt.Sprintf("T(n) = %.4g*n*ln(n) + %.4g", a, b)
}

// Quadratic is the shared instance of the quadratic model: T(n) = a*n² + b.
var Quadratic Model = quadratic{}

type quadratic struct{}

func (quadratic) Type() Type { return TypeQuadratic }

func (quadratic) Evaluate(n, a, b float64) float64 {
	if n <= 0 {
		return math.Inf(1)
	}

	return a*n*n + b
}

func (quadratic) Formula(a, b float64) string {
	return fmt.Sprintf("T(n) = %.4g*n² + %.4g", a, b)
}

// Library returns the fixed, ordered set of candidate models: Linear,
// Linearithmic, Quadratic. The returned slice is freshly allocated; the
// models themselves are shared stateless singletons.
func Library() []Model {
	return []Model{Linear, Linearithmic, Quadratic}
}

// ByType returns the shared model instance for the given type, or nil for an
// unknown type.
func ByType(t Type) Model {
	switch t {
	case TypeLinear:
		return Linear
	case TypeLinearithmic:
		return Linearithmic
	case TypeQuadratic:
		return Quadratic
	default:
		return nil
	}
}
