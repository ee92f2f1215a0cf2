package config

// SpeedCurve maps score to tick interval in milliseconds.
type SpeedCurve struct {
	cfg SnakeSpeed
}

// NewSpeedCurve creates a speed curve from the speed block.
func NewSpeedCurve(cfg SnakeSpeed) SpeedCurve {
	return SpeedCurve{cfg: cfg}
}

// Initial returns the interval at the start of a game.
func (c SpeedCurve) Initial() int {
	return c.cfg.Initial
}

// IsEnabled returns whether the interval shrinks with score.
func (c SpeedCurve) IsEnabled() bool {
	return c.cfg.Enabled && c.cfg.ScorePerStep > 0
}

// Speed returns the tick interval for the given score.
// It is a pure function of score: initial until RampFromScore, then
// initial - score/ScorePerStep, never below Min.
func (c SpeedCurve) Speed(score int) int {
	if !c.IsEnabled() || score < c.cfg.RampFromScore {
		return c.cfg.Initial
	}
	return max(c.cfg.Min, c.cfg.Initial-score/c.cfg.ScorePerStep)
}

// Level returns the HUD speed level for an interval: 1 at 150 ms, rising by
// one for every 10 ms shaved off.
func Level(speed int) int {
	return (160 - speed) / 10
}
