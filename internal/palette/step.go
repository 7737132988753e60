package palette

import (
	"fmt"
	"strconv"
)

// Step is one of the eleven canonical shade positions.
type Step int

const (
	Step50  Step = 50
	Step100 Step = 100
	Step200 Step = 200
	Step300 Step = 300
	Step400 Step = 400
	Step500 Step = 500
	Step600 Step = 600
	Step700 Step = 700
	Step800 Step = 800
	Step900 Step = 900
	Step950 Step = 950
)

// StepCount is the number of shades in every palette.
const StepCount = 11

// Steps lists the shade positions from lightest to darkest.
var Steps = [StepCount]Step{Step50, Step100, Step200, Step300, Step400, Step500, Step600, Step700, Step800, Step900, Step950}

// Index returns the position of s within Steps, or -1.
func (s Step) Index() int {
	for i, candidate := range Steps {
		if candidate == s {
			return i
		}
	}
	return -1
}

// Valid reports whether s is a canonical step.
func (s Step) Valid() bool {
	return s.Index() >= 0
}

func (s Step) String() string {
	return strconv.Itoa(int(s))
}

// ParseStep converts "50".."950" to a Step.
func ParseStep(v string) (Step, error) {
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("parse step %q: %w", v, err)
	}
	s := Step(n)
	if !s.Valid() {
		return 0, fmt.Errorf("unknown shade step %d", n)
	}
	return s, nil
}
