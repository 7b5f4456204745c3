package dstar

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/dstar/gridmap"
)

// Advance performs one caller-driven agent hop. It plans first if needed.
// Before committing the hop the sensor is consulted: a blocked next cell is
// recorded with ModifyCost and the tree is repaired, and the agent stays
// put for this call. A cell revealed as traversable is reclassified and
// entered.
//
// Returns PathFound once the agent stands on the goal, Unreachable when the
// goal has been proven unreachable, and StepContinues otherwise.
func (p *Planner) Advance() (Outcome, error) {
	if !p.planned {
		out, err := p.Plan()
		if err != nil || out != StepContinues {
			return out, err
		}
	}
	if out := p.outcome(); out != StepContinues {
		return out, nil
	}

	here := p.grid.Agent()
	next := p.grid.Coordinate(p.nodes[p.grid.Index(here)].parent)

	// 1) Look before moving.
	if truth := p.sensor.Sense(next); truth == gridmap.Blocked || p.grid.Terrain(next) == gridmap.Blocked {
		if err := p.ModifyCost(next); err != nil {
			return Unreachable, err
		}
		if err := p.repair(); err != nil {
			return Unreachable, err
		}
		out := p.outcome()
		p.log.Info("replanned",
			slog.String("from", here.String()),
			slog.String("outcome", out.String()),
			slog.Float64("h", p.nodes[p.grid.Index(here)].h))

		return out, nil
	} else if p.grid.Terrain(next) == gridmap.Unknown {
		// observed clear; pricing already assumed traversable
		if err := p.grid.SetTerrain(next, truth); err != nil {
			return Unreachable, err
		}
	}

	// 2) Commit the hop.
	if err := p.grid.SetAgent(next); err != nil {
		return Unreachable, err
	}
	p.stats.Moves++
	p.log.Debug("moved", slog.String("from", here.String()), slog.String("to", next.String()))
	p.options.OnMove(next)

	return p.outcome(), nil
}

// Traverse runs Advance until the goal is reached or proven unreachable.
// The returned Result lists every cell the agent occupied, in order.
func (p *Planner) Traverse() (Result, error) {
	res := Result{Path: []gridmap.Cell{p.grid.Agent()}}
	// each hop or repair makes progress; bound the loop like expansions
	for hops := 0; ; hops++ {
		if hops >= p.maxSteps {
			res.Outcome = Unreachable
			res.Stats = p.stats

			return res, fmt.Errorf("%w: %d agent iterations", ErrStepLimit, hops)
		}
		before := p.grid.Agent()
		out, err := p.Advance()
		if err != nil {
			res.Outcome = out
			res.Stats = p.stats

			return res, err
		}
		if after := p.grid.Agent(); after != before {
			c, err := p.costs.Lookup(before, after)
			if err != nil {
				return res, fmt.Errorf("%w: %w", ErrIncompleteCosts, err)
			}
			res.Path = append(res.Path, after)
			res.Cost = round1(res.Cost + c)
		}
		if out != StepContinues {
			res.Outcome = out
			res.Stats = p.stats
			p.log.Info("traverse finished",
				slog.String("outcome", out.String()),
				slog.Int("hops", len(res.Path)-1),
				slog.Float64("cost", res.Cost))

			return res, nil
		}
	}
}
