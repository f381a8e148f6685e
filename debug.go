package sway

import (
	"fmt"
	"os"
	"time"
)

// updateStats holds per-tick counters for AnimationSystem.Update.
// Only populated when the system is in debug mode.
type updateStats struct {
	updateTime time.Duration
	registered int
	driven     int
	playing    int
}

// debugLog prints per-tick stats to stderr.
func (s *AnimationSystem) debugLog(stats updateStats) {
	if !s.debug {
		return
	}
	_, _ = fmt.Fprintf(os.Stderr,
		"[sway] update: %v | registered: %d | driven: %d | playing clips: %d\n",
		stats.updateTime, stats.registered, stats.driven, stats.playing)
}

// debugCheckDisposed panics with a descriptive message when a disposed node is
// used in a tree or component operation. Callers skip this outside debug mode.
func debugCheckDisposed(n *Node, op string) {
	if n.disposed {
		panic(fmt.Sprintf("sway debug: %s on disposed node %q", op, n.Name))
	}
}

// debugCheckDestroyed panics when a destroyed Animation is used.
func debugCheckDestroyed(a *Animation, op string) {
	if a.destroyed {
		panic(fmt.Sprintf("sway debug: %s on destroyed animation", op))
	}
}

// debugCheckTreeDepth warns on stderr if tree depth exceeds the threshold.
// Cascades recurse once per level.
const debugMaxTreeDepth = 32

func debugCheckTreeDepth(n *Node) {
	depth := 0
	for p := n; p != nil; p = p.Parent {
		depth++
	}
	if depth > debugMaxTreeDepth {
		_, _ = fmt.Fprintf(os.Stderr, "[sway] warning: tree depth %d exceeds %d (node %q)\n",
			depth, debugMaxTreeDepth, n.Name)
	}
}
