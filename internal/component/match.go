package component

// MatchStatus is the overall lifecycle of a match.
type MatchStatus int

const (
	MatchNotStarted MatchStatus = iota
	MatchPlaying
	MatchPaused
	MatchOver // terminal, reached only through base health exhaustion
)

// Match holds the cross-cutting economy and progression counters.
type Match struct {
	Coins      int
	BaseHealth int
	Score      int
	WaveNumber int // last wave started; 0 before the first
	Escaped    int
	Status     MatchStatus
}
