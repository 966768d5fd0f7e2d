// internal/component/progress.go
package component

// Progress хранит уровень и опыт игрока.
type Progress struct {
	Level      int
	XP         int
	XPRequired int

	// PendingLevels — сколько выборов апгрейда ещё не показано игроку.
	PendingLevels int
}
