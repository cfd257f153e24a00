package game

import "math"

// Optimal reciprocal collision avoidance between mobile units, after the
// RVO2 formulation. Each neighbor contributes a half-plane of permitted
// velocities; the solver picks the permitted velocity closest to the unit's
// preferred velocity. Both sides of a pair run the same computation, so each
// takes half the responsibility for avoiding the other.

const (
	orcaTimeHorizon  = 3.0  // s of lookahead against other units
	orcaMaxNeighbors = 10   // constraint cap per unit
	orcaNeighborDist = 64.0 // px neighbor search radius
)

// orcaAgent is an immutable snapshot of one mobile unit for the solver.
type orcaAgent struct {
	pos      Vec2
	vel      Vec2
	prefVel  Vec2
	radius   float64
	maxSpeed float64
}

// orcaLine is a directed line; the permitted half-plane is to its left.
type orcaLine struct {
	point Vec2
	dir   Vec2
}

// orcaVelocity returns the collision-free velocity for agent a closest to
// its preferred velocity, given its neighbor snapshots.
func orcaVelocity(a orcaAgent, neighbors []orcaAgent) Vec2 {
	lines := make([]orcaLine, 0, len(neighbors))
	for _, n := range neighbors {
		if line, ok := orcaConstraint(a, n); ok {
			lines = append(lines, line)
		}
	}

	result, failed := linearProgram2(lines, a.maxSpeed, a.prefVel, false)
	if failed < len(lines) {
		result = linearProgram3(lines, failed, a.maxSpeed, result)
	}
	return result
}

// orcaConstraint builds the half-plane constraint agent a owes neighbor n.
// Already-overlapping agents produce no constraint; the positional
// separation pass resolves contact instead of an impulsive velocity
// correction here.
func orcaConstraint(a, n orcaAgent) (orcaLine, bool) {
	relPos := n.pos.Sub(a.pos)
	relVel := a.vel.Sub(n.vel)
	distSq := relPos.LenSq()
	combinedR := a.radius + n.radius
	combinedRSq := combinedR * combinedR

	if distSq <= combinedRSq {
		return orcaLine{}, false
	}

	invHorizon := 1.0 / orcaTimeHorizon
	// w is the vector from the VO cutoff center to the relative velocity.
	w := relVel.Sub(relPos.Scale(invHorizon))
	wLenSq := w.LenSq()

	var dir Vec2
	var u Vec2
	dot := w.Dot(relPos)
	if dot < 0 && dot*dot > combinedRSq*wLenSq {
		// Project onto the cutoff circle.
		wLen := math.Sqrt(wLenSq)
		unitW := w.Scale(1 / wLen)
		dir = Vec2{unitW.Y, -unitW.X}
		u = unitW.Scale(combinedR*invHorizon - wLen)
	} else {
		// Project onto the nearer leg of the cone.
		leg := math.Sqrt(distSq - combinedRSq)
		if relPos.Det(w) > 0 {
			dir = Vec2{
				relPos.X*leg - relPos.Y*combinedR,
				relPos.X*combinedR + relPos.Y*leg,
			}.Scale(1 / distSq)
		} else {
			dir = Vec2{
				relPos.X*leg + relPos.Y*combinedR,
				-relPos.X*combinedR + relPos.Y*leg,
			}.Scale(-1 / distSq)
		}
		u = dir.Scale(relVel.Dot(dir)).Sub(relVel)
	}

	// Reciprocity: each agent moves half of u.
	return orcaLine{point: a.vel.Add(u.Scale(0.5)), dir: dir}, true
}

// linearProgram1 solves a 1D program on line lineNo, constrained to the
// previous lines and the speed circle. Reports false when infeasible.
func linearProgram1(lines []orcaLine, lineNo int, radius float64, optVel Vec2, dirOpt bool) (Vec2, bool) {
	ln := lines[lineNo]
	dotProduct := ln.point.Dot(ln.dir)
	discriminant := dotProduct*dotProduct + radius*radius - ln.point.LenSq()
	if discriminant < 0 {
		// Max speed circle fully invalidates this line.
		return Vec2{}, false
	}

	sqrtDiscriminant := math.Sqrt(discriminant)
	tLeft := -dotProduct - sqrtDiscriminant
	tRight := -dotProduct + sqrtDiscriminant

	for i := 0; i < lineNo; i++ {
		denominator := ln.dir.Det(lines[i].dir)
		numerator := lines[i].dir.Det(ln.point.Sub(lines[i].point))
		if math.Abs(denominator) <= 1e-9 {
			// Lines are parallel.
			if numerator < 0 {
				return Vec2{}, false
			}
			continue
		}
		t := numerator / denominator
		if denominator >= 0 {
			tRight = math.Min(tRight, t)
		} else {
			tLeft = math.Max(tLeft, t)
		}
		if tLeft > tRight {
			return Vec2{}, false
		}
	}

	var t float64
	if dirOpt {
		if optVel.Dot(ln.dir) > 0 {
			t = tRight
		} else {
			t = tLeft
		}
	} else {
		t = ln.dir.Dot(optVel.Sub(ln.point))
		t = clamp(t, tLeft, tRight)
	}
	return ln.point.Add(ln.dir.Scale(t)), true
}

// linearProgram2 finds the velocity satisfying all lines closest to optVel
// within the speed circle. Returns the first failing line index, or
// len(lines) on full success.
func linearProgram2(lines []orcaLine, radius float64, optVel Vec2, dirOpt bool) (Vec2, int) {
	var result Vec2
	if dirOpt {
		// optVel is a unit direction in this mode.
		result = optVel.Scale(radius)
	} else {
		result = optVel.ClampLen(radius)
	}

	for i, ln := range lines {
		if ln.dir.Det(ln.point.Sub(result)) > 0 {
			// result violates line i: reoptimize on that line.
			newResult, ok := linearProgram1(lines, i, radius, optVel, dirOpt)
			if !ok {
				return result, i
			}
			result = newResult
		}
	}
	return result, len(lines)
}

// linearProgram3 handles the infeasible case by minimizing the maximum
// penetration across all constraint lines, starting from the line that
// first failed.
func linearProgram3(lines []orcaLine, beginLine int, radius float64, result Vec2) Vec2 {
	distance := 0.0
	for i := beginLine; i < len(lines); i++ {
		if lines[i].dir.Det(lines[i].point.Sub(result)) <= distance {
			continue
		}
		// result deeply penetrates line i: project onto the boundary of
		// the region satisfying lines 0..i equally badly.
		projLines := make([]orcaLine, 0, i)
		for j := 0; j < i; j++ {
			var pl orcaLine
			determinant := lines[i].dir.Det(lines[j].dir)
			if math.Abs(determinant) <= 1e-9 {
				if lines[i].dir.Dot(lines[j].dir) > 0 {
					// Same direction: j adds nothing over i.
					continue
				}
				pl.point = lines[i].point.Add(lines[j].point).Scale(0.5)
			} else {
				t := lines[j].dir.Det(lines[i].point.Sub(lines[j].point)) / determinant
				pl.point = lines[i].point.Add(lines[i].dir.Scale(t))
			}
			pl.dir = lines[j].dir.Sub(lines[i].dir).Norm()
			projLines = append(projLines, pl)
		}

		dirOpt := Vec2{-lines[i].dir.Y, lines[i].dir.X}
		newResult, failed := linearProgram2(projLines, radius, dirOpt, true)
		if failed >= len(projLines) {
			result = newResult
		}
		distance = lines[i].dir.Det(lines[i].point.Sub(result))
	}
	return result
}
