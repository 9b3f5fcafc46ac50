package engine

// Heuristic selects the free-rectangle scoring rule used to choose where a
// sprite is placed within a bin.
type Heuristic int

const (
	// BestShortSideFit positions the sprite against the short side of the
	// free rectangle into which it fits the best.
	BestShortSideFit Heuristic = iota
	// BestLongSideFit positions the sprite against the long side of the
	// free rectangle into which it fits the best.
	BestLongSideFit
	// BestAreaFit positions the sprite into the smallest free rectangle
	// that can hold it.
	BestAreaFit
	// BottomLeft does the Tetris placement: lowest top edge wins.
	BottomLeft
	// ContactPoint chooses the placement where the sprite touches the page
	// edges and already-placed sprites as much as possible.
	ContactPoint
)

// Heuristics lists every placement heuristic in trial order.
var Heuristics = []Heuristic{BestShortSideFit, BestLongSideFit, BestAreaFit, BottomLeft, ContactPoint}

func (h Heuristic) String() string {
	switch h {
	case BestShortSideFit:
		return "BSSF"
	case BestLongSideFit:
		return "BLSF"
	case BestAreaFit:
		return "BAF"
	case BottomLeft:
		return "BL"
	case ContactPoint:
		return "CP"
	default:
		return "unknown"
	}
}

// candidate is a scored placement proposal for one sprite. All scores are
// minimized: score1 is the primary criterion and score2 breaks ties.
// Contact-point scores are stored negated so the same comparison applies to
// every heuristic. found reports whether any free rectangle can hold the
// sprite in a permitted orientation.
type candidate struct {
	x, y          int
	width, height int
	rotated       bool
	score1        int
	score2        int
	found         bool
}

// better reports whether c should replace best. Ties on both scores keep
// the incumbent, so free-list iteration order is the final, deterministic
// tie-break.
func (c candidate) better(best candidate) bool {
	if !c.found {
		return false
	}
	if !best.found {
		return true
	}
	return c.score1 < best.score1 || (c.score1 == best.score1 && c.score2 < best.score2)
}
