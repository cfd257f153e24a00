package game

// Battlefield layout. The field is a single horizontal lane of grid cells:
// each team's fortress occupies the two columns at its own end, the player's
// build zone sits in front of their fortress, and everything between is open
// combat ground.
const (
	cellSize = 64.0 // px per grid cell
	gridCols = 82
	gridRows = 10

	fieldWidth  = gridCols * cellSize // px
	fieldHeight = gridRows * cellSize // px

	playerFortressCol = 0  // player fortress spans cols 0-1
	enemyFortressCol  = 80 // enemy fortress spans cols 80-81
	fortressColSpan   = 2

	buildZoneMinCol = 2 // player build zone, inclusive
	buildZoneMaxCol = 7

	combatZoneMinCol = 8 // open ground, inclusive
	combatZoneMaxCol = 79
)

// colToWorldX returns the world x of a grid column's center.
func colToWorldX(col int) float64 { return float64(col)*cellSize + cellSize/2 }

// rowToWorldY returns the world y of a grid row's center.
func rowToWorldY(row int) float64 { return float64(row)*cellSize + cellSize/2 }

func worldToCol(x float64) int { return int(x / cellSize) }
func worldToRow(y float64) int { return int(y / cellSize) }

// inBuildZone reports whether a grid cell is inside the player build zone.
func inBuildZone(col, row int) bool {
	return col >= buildZoneMinCol && col <= buildZoneMaxCol && row >= 0 && row < gridRows
}

// fortressCenter returns the world position of a team's fortress. Each
// fortress is a 2-column-wide, full-height rect centered on its span.
func fortressCenter(team Team) Vec2 {
	col := playerFortressCol
	if team == TeamEnemy {
		col = enemyFortressCol
	}
	return Vec2{
		X: float64(col)*cellSize + float64(fortressColSpan)*cellSize/2,
		Y: fieldHeight / 2,
	}
}
