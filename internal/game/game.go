package game

import (
	"fmt"
	"image/color"
	"math"

	"github.com/atotto/clipboard"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

const (
	screenWidth  = 1600
	screenHeight = 900
)

// Game is the windowed frontend: it drives the Sim from the ebiten loop and
// renders the battlefield. All gameplay state lives in the Sim; this layer
// only holds camera, input and presentation state.
type Game struct {
	sim      *Sim
	clock    *Clock
	reporter *SimReporter

	camX, camY float64
	camZoom    float64

	showHUD       bool
	reportFlash   int // frames left to show the "report copied" notice
	prevKeys      map[ebiten.Key]bool
	prevMouseLeft bool
}

func New() *Game {
	return &Game{
		sim:      NewSim(1, false),
		clock:    NewClock(),
		reporter: NewSimReporter(),
		camX:     fieldWidth / 2,
		camY:     fieldHeight / 2,
		camZoom:  1,
		showHUD:  true,
		prevKeys: map[ebiten.Key]bool{},
	}
}

func (g *Game) Update() error {
	// Handle input every frame regardless of sim speed.
	g.handleInput()

	for i := g.clock.Advance(1.0 / 60); i > 0; i-- {
		g.sim.Step()
	}
	if g.sim.Tick()%60 == 0 {
		g.reporter.Capture(g.sim)
	}
	if g.reportFlash > 0 {
		g.reportFlash--
	}
	return nil
}

// handleInput processes camera, speed and build controls. Toggles are
// edge-triggered.
func (g *Game) handleInput() {
	currentKeys := map[ebiten.Key]bool{}
	pressed := func(k ebiten.Key) bool {
		currentKeys[k] = ebiten.IsKeyPressed(k)
		return currentKeys[k] && !g.prevKeys[k]
	}

	// Camera pan: WASD or arrow keys.
	panSpeed := 8.0 / g.camZoom
	if ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		g.camY -= panSpeed
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		g.camY += panSpeed
	}
	if ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		g.camX -= panSpeed
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		g.camX += panSpeed
	}

	// Camera zoom: mouse wheel.
	const zoomMin, zoomMax = 0.5, 3.0
	_, wy := ebiten.Wheel()
	if wy != 0 {
		g.camZoom *= math.Pow(1.12, wy)
	}
	g.camZoom = clamp(g.camZoom, zoomMin, zoomMax)

	// Clamp camera centre to battlefield bounds (accounting for zoom).
	halfVW := float64(screenWidth) / 2 / g.camZoom
	halfVH := float64(screenHeight) / 2 / g.camZoom
	g.camX = clamp(g.camX, math.Min(halfVW, fieldWidth/2), math.Max(fieldWidth-halfVW, fieldWidth/2))
	g.camY = clamp(g.camY, math.Min(halfVH, fieldHeight/2), math.Max(fieldHeight-halfVH, fieldHeight/2))

	// Sim speed: P=pause/resume, ,=slower, .=faster.
	if pressed(ebiten.KeyP) {
		g.clock.TogglePause()
	}
	if pressed(ebiten.KeyComma) {
		g.clock.SetSpeed(g.clock.Speed() / 2)
	}
	if pressed(ebiten.KeyPeriod) {
		g.clock.SetSpeed(g.clock.Speed() * 2)
	}

	// H: toggle HUD. R: copy a battle report to the clipboard.
	if pressed(ebiten.KeyH) {
		g.showHUD = !g.showHUD
	}
	if pressed(ebiten.KeyR) {
		if err := clipboard.WriteAll(BattleReport(g.sim)); err == nil {
			g.reportFlash = 120
		}
	}

	// Left click: place a production building on the clicked cell.
	mouseLeft := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	if mouseLeft && !g.prevMouseLeft {
		mx, my := ebiten.CursorPosition()
		wx, wy := g.screenToWorld(mx, my)
		g.sim.PlaceBuilding(worldToCol(wx), worldToRow(wy))
	}
	g.prevMouseLeft = mouseLeft

	g.prevKeys = currentKeys
}

func (g *Game) screenToWorld(sx, sy int) (float64, float64) {
	wx := g.camX + (float64(sx)-screenWidth/2)/g.camZoom
	wy := g.camY + (float64(sy)-screenHeight/2)/g.camZoom
	return wx, wy
}

func (g *Game) worldToScreen(p Vec2) (float32, float32) {
	sx := (p.X-g.camX)*g.camZoom + screenWidth/2
	sy := (p.Y-g.camY)*g.camZoom + screenHeight/2
	return float32(sx), float32(sy)
}

var (
	colBackground = color.RGBA{18, 18, 24, 255}
	colGrid       = color.RGBA{34, 34, 44, 255}
	colBuildZone  = color.RGBA{30, 44, 30, 255}
	colPlayer     = color.RGBA{90, 160, 255, 255}
	colEnemy      = color.RGBA{235, 90, 80, 255}
	colBuilding   = color.RGBA{120, 130, 90, 255}
	colProjectile = color.RGBA{250, 230, 120, 255}
	colHealthBack = color.RGBA{60, 20, 20, 255}
	colHealthFill = color.RGBA{80, 200, 90, 255}
	colHUDText    = color.RGBA{220, 220, 220, 255}
)

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colBackground)
	g.drawField(screen)
	g.drawUnits(screen)
	g.drawProjectiles(screen)
	if g.showHUD {
		g.drawHUD(screen)
	}
}

func (g *Game) drawField(screen *ebiten.Image) {
	z := float32(g.camZoom)

	// Build zone tint.
	x0, y0 := g.worldToScreen(Vec2{float64(buildZoneMinCol) * cellSize, 0})
	vector.FillRect(screen, x0, y0,
		float32(buildZoneMaxCol-buildZoneMinCol+1)*cellSize*z, fieldHeight*z,
		colBuildZone, false)

	// Grid lines.
	for c := 0; c <= gridCols; c++ {
		sx, sy := g.worldToScreen(Vec2{float64(c) * cellSize, 0})
		vector.StrokeLine(screen, sx, sy, sx, sy+fieldHeight*z, 1, colGrid, false)
	}
	for r := 0; r <= gridRows; r++ {
		sx, sy := g.worldToScreen(Vec2{0, float64(r) * cellSize})
		vector.StrokeLine(screen, sx, sy, sx+fieldWidth*z, sy, 1, colGrid, false)
	}

	// Buildings.
	for _, b := range g.sim.Production().Buildings() {
		sx, sy := g.worldToScreen(b.Pos)
		half := float32(buildingSize/2) * z
		vector.FillRect(screen, sx-half, sy-half, half*2, half*2, colBuilding, false)
	}
}

func (g *Game) drawUnits(screen *ebiten.Image) {
	z := float32(g.camZoom)
	for _, u := range g.sim.World().Units() {
		col := colPlayer
		if u.Team == TeamEnemy {
			col = colEnemy
		}
		sx, sy := g.worldToScreen(u.Pos)
		if u.Fortress {
			hw := float32(u.Footprint.HalfW) * z
			hh := float32(u.Footprint.HalfH) * z
			vector.FillRect(screen, sx-hw, sy-hh, hw*2, hh*2, col, false)
			g.drawHealthBar(screen, sx-hw, sy-hh-8, hw*2, u.Health)
		} else {
			vector.FillCircle(screen, sx, sy, float32(u.Footprint.Radius)*z, col, false)
			g.drawHealthBar(screen, sx-12, sy-float32(u.Footprint.Radius)*z-6, 24, u.Health)
		}
	}
}

func (g *Game) drawHealthBar(screen *ebiten.Image, x, y, w float32, h Health) {
	if h.Current >= h.Max {
		return
	}
	vector.FillRect(screen, x, y, w, 3, colHealthBack, false)
	vector.FillRect(screen, x, y, w*float32(h.Current/h.Max), 3, colHealthFill, false)
}

func (g *Game) drawProjectiles(screen *ebiten.Image) {
	for _, p := range g.sim.Projectiles() {
		sx, sy := g.worldToScreen(p.Pos)
		vector.FillCircle(screen, sx, sy, 2.5*float32(g.camZoom), colProjectile, false)
	}
}

func (g *Game) drawHUD(screen *ebiten.Image) {
	rep := CaptureReport(g.sim)
	face := basicfont.Face7x13

	lines := []string{
		fmt.Sprintf("tick %d (%.0fs)  speed x%.2g", rep.Tick, g.sim.Elapsed(), g.clock.Speed()),
		fmt.Sprintf("player soldiers=%-3d fortress=%.0fhp", rep.Player.Soldiers, rep.Player.FortressHP),
		fmt.Sprintf("enemy  soldiers=%-3d fortress=%.0fhp", rep.Enemy.Soldiers, rep.Enemy.FortressHP),
		"[click] build  [p] pause  [,/.] speed  [r] report  [h] hud",
	}
	for i, ln := range lines {
		text.Draw(screen, ln, face, 12, 20+i*16, colHUDText)
	}
	if g.sim.Outcome() != OutcomeOngoing {
		text.Draw(screen, g.sim.Outcome().String(), face, screenWidth/2-30, screenHeight/2, colHUDText)
	}
	if g.reportFlash > 0 {
		text.Draw(screen, "battle report copied", face, 12, 20+len(lines)*16, colHUDText)
	}
	if g.clock.Paused() {
		ebitenutil.DebugPrintAt(screen, "PAUSED", screenWidth-70, 8)
	}
}

func (g *Game) Layout(_, _ int) (int, int) {
	return screenWidth, screenHeight
}
