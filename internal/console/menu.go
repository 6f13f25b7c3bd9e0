package console

// action identifies one menu entry. The dispatch table is a fixed
// enumerated set; options map one-to-one onto query operations.
type action int

const (
	actionSeasonWinners action = iota + 1
	actionTotalWins
	actionAveragePoints
	actionSeasonsByPoints
	actionCareerPoints
	actionSeasonEntries
	actionQuit
)

// menuSize is the N in the validator's [1, N] menu-token contract.
const menuSize = int(actionQuit)

const menuText = `
podium season results ledger
  1) Winner per season
  2) Total wins per season
  3) Average points per season
  4) Seasons ranked by total points
  5) Career points for a driver
  6) Show a season's entries
  7) Quit
`
