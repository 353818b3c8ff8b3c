package game

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/mcoot/kellypool/internal/model"
	"github.com/mcoot/kellypool/internal/services/scoring"
)

// PocketBall resolves a ball going down.
//
// The 8-ball wins outright for a player holding only the 8-ball. Held by
// another active player it is pocketed like any other ball; held by the
// shooter or by nobody it eliminates the shooter. Any other ball is removed
// from its active owner's hand; emptying a hand finishes that player. A ball
// with no active owner is a foul that passes the turn.
func (e *Engine) PocketBall(g *model.Game, ball int) (Outcome, error) {
	if !g.InProgress() {
		return reject(g, model.ErrGameNotInProgress, "Game not in progress")
	}
	if !model.IsValidBall(ball) {
		return reject(g, model.ErrInvalidBall, fmt.Sprintf("Ball %d is not part of the rack", ball))
	}

	t := e.begin(g)

	owner := t.game.ActiveOwner(ball)
	if ball == model.EightBall && e.pocketEightBall(t, owner) {
		return t.outcome(), nil
	}

	if owner < 0 {
		e.illegalPocket(t, ball)
		return t.outcome(), nil
	}

	e.pocketOwnedBall(t, owner, ball)
	return t.outcome(), nil
}

func (e *Engine) pocketOwnedBall(t *transition, owner, ball int) {
	g := t.game
	p := &g.Players[owner]
	p.Balls = slices.DeleteFunc(p.Balls, func(b int) bool { return b == ball })
	finished := len(p.Balls) == 0
	if finished {
		p.IsActive = false
	}

	t.record(p.Name, model.ActionPocketed, &ball)
	t.notify(model.Success(fmt.Sprintf("%s pocketed ball %d", p.Name, ball)))

	if finished {
		position := len(g.Players) - g.ActiveCount()
		place := scoring.Ordinal(position)
		p.Score = e.scoring.FinishScore(len(g.Players), position)

		t.record(p.Name, model.FinishedAction(place), nil)
		t.notify(model.Success(fmt.Sprintf("%s finished in %s place!", p.Name, place)))

		e.logger.Debug("player finished",
			slog.String("table_id", string(g.ID)),
			slog.String("player_id", string(p.ID)),
			slog.Int("position", position),
			slog.Int("score", p.Score),
		)

		if g.ActiveCount() <= 1 {
			winner := owner
			if last := slices.IndexFunc(g.Players, func(other model.Player) bool { return other.IsActive }); last >= 0 {
				winner = last
			}
			e.declareWinner(t, winner, model.ActionWon, nil)
		}
	}

	e.advanceTurn(t)
}

// pocketEightBall settles the 8-ball win and scratch cases. It reports false
// when the 8-ball belongs to an active player other than the shooter, leaving
// the ball to the owned path.
func (e *Engine) pocketEightBall(t *transition, owner int) bool {
	g := t.game
	eight := model.EightBall

	if holder := slices.IndexFunc(g.Players, func(p model.Player) bool {
		return p.IsActive && p.HoldsOnly(model.EightBall)
	}); holder >= 0 {
		p := &g.Players[holder]
		p.Score += e.scoring.EightBallBonus()
		p.Balls = []int{}
		e.declareWinner(t, holder, model.ActionWonEightBall, &eight)
		return true
	}
	if owner >= 0 && owner != g.CurrentTurn {
		return false
	}

	shooter := g.CurrentPlayer()
	shooter.IsActive = false
	t.record(shooter.Name, model.ActionScratched, &eight)
	t.notify(model.Failure(fmt.Sprintf("%s scratched by pocketing the 8-ball early!", shooter.Name)))

	e.logger.Debug("player scratched",
		slog.String("table_id", string(g.ID)),
		slog.String("player_id", string(shooter.ID)),
	)

	if g.ActiveCount() == 1 {
		last := slices.IndexFunc(g.Players, func(p model.Player) bool { return p.IsActive })
		e.declareWinner(t, last, model.ActionWon, nil)
	}

	e.advanceTurn(t)
	return true
}

func (e *Engine) illegalPocket(t *transition, ball int) {
	shooter := t.game.CurrentPlayer()
	t.notify(model.Failure(fmt.Sprintf("%s pocketed someone else's ball, next player's turn", shooter.Name)))
	t.foul = model.ErrIllegalPocket

	e.logger.Debug("illegal pocket",
		slog.String("table_id", string(t.game.ID)),
		slog.String("player_id", string(shooter.ID)),
		slog.Int("ball", ball),
	)

	e.advanceTurn(t)
}
