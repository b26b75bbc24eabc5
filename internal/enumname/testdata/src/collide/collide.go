package collide

type Level int // want `Enum 'Level' does not end with 'Enum'`

const LevelLow Level = 1

// LevelEnum takes the name the fix would use.
type LevelEnum struct{}

func init() {
	func() {
		type Scope string // want `Enum 'Scope' does not end with 'Enum'`
		const ScopeAll Scope = "all"
		_ = ScopeAll
	}()
}
