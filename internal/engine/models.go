package engine

import (
	"errors"
	"fmt"
)

// Boost is the range multiplier for a supercharged jump launched from a
// general star's gravity well.
const Boost = 6.0

const (
	// legTolerance absorbs floating-point noise when testing a bridge leg
	// against the working limit.
	legTolerance = 1e-6
	// progressEpsilon is the minimum strict decrease in distance-to-goal a
	// candidate hop must offer. Prevents cycling between near-equidistant
	// stars.
	progressEpsilon = 1e-3
	// limitStep is how far the working limit is raised after a stalled
	// iteration, in light-years.
	limitStep = 1.0
	// limitCeiling aborts the search once the working limit climbs past it.
	limitCeiling = 1000.0
	// stallNoticeEvery controls how often consecutive stalls emit a
	// progress notice.
	stallNoticeEvery = 25
)

// Route is a computed neutron-highway route.
type Route struct {
	// Bridges lists the general-star ids used to supercharge each hop,
	// in hop order.
	Bridges []uint32
	// RequiredRange is the minimum base jump range the whole route needs.
	RequiredRange float32
	// Jumps counts physical jumps: each bridge is one boosted leg plus one
	// plain leg.
	Jumps int
}

// ErrNoRoute reports search exhaustion: no route was found before the
// working limit reached its ceiling. It is an expected outcome, distinct
// from catalog or lookup failures.
var ErrNoRoute = errors.New("no route found within search bounds")

// NotNeutronError reports a start or destination star that is not a
// neutron star.
type NotNeutronError struct {
	Name string
}

func (e *NotNeutronError) Error() string {
	return fmt.Sprintf("%s is not a neutron star", e.Name)
}
