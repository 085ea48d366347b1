package quest

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/vanara-leap/internal/config"
	"github.com/vovakirdan/vanara-leap/internal/core"
	"github.com/vovakirdan/vanara-leap/internal/games/quest/sim"
)

// Minimum terminal size the campaign can be drawn in.
const (
	MinScreenW = 60
	MinScreenH = 20
)

// hudRows is the number of rows above the play area.
const hudRows = 3

// Rendering characters.
const (
	GroundChar   = '▓'
	PlatformChar = '▬'
	EnemyChar    = '▒'
	EnemyHead    = 'Ψ'
	PowerUpChar  = '✦'
	GoalChar     = '░'
	GoalMark     = '✿'
	PlayerChar   = '█'
	MaceChar     = '⚒'
	FlyTrail     = '≋'
	MountainUp   = '/'
	MountainDown = '\\'
)

// theme is the palette for one level.
type theme struct {
	Ground   core.Color
	Platform core.Color
	Enemy    core.Color
	Mountain core.Color
	Title    core.Color
}

var themes = map[string]theme{
	config.ThemeKishkindha: {core.ColorForest, core.ColorBrown, core.ColorMaroon, core.ColorGreen, core.ColorBrightGreen},
	config.ThemeVindhya:    {core.ColorBrown, core.ColorSand, core.ColorRed, core.ColorGray, core.ColorSand},
	config.ThemeLanka:      {core.ColorMaroon, core.ColorGold, core.ColorBrightRed, core.ColorNavy, core.ColorGold},
}

func themeFor(name string) theme {
	if t, ok := themes[name]; ok {
		return t
	}
	return themes[config.ThemeKishkindha]
}

// Render draws the current campaign screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	w, h := dst.Width(), dst.Height()

	if g.phase == PhaseError {
		g.drawError(dst)
		return
	}
	if w < MinScreenW || h < MinScreenH {
		dst.DrawTextCentered(h/2, "Screen too small", core.ColorYellow)
		dst.DrawTextCentered(h/2+1, fmt.Sprintf("need %dx%d", MinScreenW, MinScreenH), core.ColorGray)
		return
	}

	switch g.phase {
	case PhaseMenu:
		g.drawMenu(dst)
	case PhaseStory:
		g.drawStory(dst)
	case PhasePlaying:
		g.drawWorld(dst)
		g.drawHUD(dst)
	case PhasePaused:
		g.drawWorld(dst)
		g.drawHUD(dst)
		drawMessage(dst, core.ColorWhite, "PAUSED", "P resume  ·  B abandon run")
	case PhaseGameOver:
		g.drawWorld(dst)
		g.drawHUD(dst)
		lines := []string{
			"MORTAL WOUND",
			"Even the mightiest may fall. Rise again, O Hanuman.",
			fmt.Sprintf("Karmic favor: %07d", g.score),
		}
		if g.newHigh {
			lines = append(lines, "A new high score!")
		}
		lines = append(lines, "ENTER menu  ·  R retry")
		drawMessage(dst, core.ColorBrightRed, lines...)
	case PhaseVictory:
		drawMessage(dst, core.ColorGold,
			"VICTORY",
			"The Sanjeevani herb is carried home. Lakshmana lives.",
			fmt.Sprintf("Karmic favor: %07d", g.score),
			"ENTER menu  ·  R play again",
		)
	}
}

func (g *Game) drawMenu(dst *core.Screen) {
	h := dst.Height()
	top := h/2 - 6
	dst.DrawTextCentered(top, "V A N A R A   L E A P", core.ColorGold)
	dst.DrawTextCentered(top+1, "The Leap of Hanuman", core.ColorOrange)

	dst.DrawTextCentered(top+3, "Cross three realms and carry the Sanjeevani herb to Lanka.", core.ColorWhite)
	dst.DrawTextCentered(top+5, fmt.Sprintf("High score %07d", g.highScore), core.ColorYellow)

	controls := []string{
		"←/→ or A/D  run        ↑/W  jump",
		"F  fly (uses prana)    SPACE  strike with the mace",
		"P  pause               Q  quit",
	}
	for i, line := range controls {
		dst.DrawTextCentered(top+7+i, line, core.ColorGray)
	}
	if g.frame/30%2 == 0 {
		dst.DrawTextCentered(top+11, "Press ENTER to begin your quest", core.ColorBrightYellow)
	}
}

func (g *Game) drawStory(dst *core.Screen) {
	w, h := dst.Width(), dst.Height()
	level := g.currentLevel()
	th := themeFor(level.Theme)

	top := h/2 - 6
	dst.DrawTextCentered(top, fmt.Sprintf("CHAPTER %d", g.levelIdx+1), core.ColorGray)
	dst.DrawTextCentered(top+1, strings.ToUpper(level.Name), th.Title)
	dst.DrawTextCentered(top+3, level.Description, core.ColorWhite)

	dst.DrawTextCentered(top+5, "Jambavan speaks:", core.ColorOrange)
	if g.storyReqID != 0 {
		msg := "listening to the wind..."
		g.loadingX = (w-len([]rune(msg)))/2 - 2
		g.loadingY = top + 7
		dst.DrawTextColored(g.loadingX+2, g.loadingY, msg, core.ColorGray)
	} else {
		for i, line := range wrap("“"+g.story+"”", w-10) {
			dst.DrawTextCentered(top+7+i, line, core.ColorYellow)
		}
	}
	dst.DrawTextCentered(h-3, "Press ENTER to continue", core.ColorBrightYellow)
}

func (g *Game) drawError(dst *core.Screen) {
	dst.DrawTextCentered(1, "CONFIGURATION ERROR", core.ColorBrightRed)
	msg := "unknown error"
	if g.err != nil {
		msg = g.err.Error()
	}
	for i, line := range wrap(msg, dst.Width()-4) {
		dst.DrawTextCentered(3+i, line, core.ColorWhite)
	}
	dst.DrawTextCentered(dst.Height()-2, "Q to quit", core.ColorGray)
}

func (g *Game) drawHUD(dst *core.Screen) {
	w := dst.Width()
	snap := g.last
	level := g.currentLevel()
	th := themeFor(level.Theme)

	dst.DrawTextColored(1, 0, strings.ToUpper(level.Name), th.Title)
	scoreText := fmt.Sprintf("KARMIC FAVOR %07d  HI %07d", g.score, core.Max(g.score, g.highScore))
	dst.DrawTextColored(w-len(scoreText)-1, 0, scoreText, core.ColorYellow)

	p := snap.Player
	healthFrac, pranaFrac := 0.0, 0.0
	if p.MaxHealth > 0 {
		healthFrac = p.Health / p.MaxHealth
	}
	if g.cfg.Physics.MaxFlyEnergy > 0 {
		pranaFrac = p.FlyEnergy / g.cfg.Physics.MaxFlyEnergy
	}
	barW := core.Clamp((w-30)/2, 8, 24)
	healthColor := core.ColorGreen
	if p.Health < g.cfg.Narration.LowHealthThreshold {
		healthColor = core.ColorBrightRed
	}
	dst.DrawTextColored(1, 1, "HEALTH", core.ColorWhite)
	dst.DrawBar(8, 1, barW, healthFrac, healthColor)
	dst.DrawTextColored(10+barW, 1, "PRANA", core.ColorWhite)
	dst.DrawBar(16+barW, 1, barW, pranaFrac, core.ColorCyan)
	if p.Invincible {
		dst.DrawTextColored(18+2*barW, 1, "DIVINE", core.ColorGold)
	}

	if g.toast != "" {
		text := g.toast
		if r := []rune(text); len(r) > w-4 {
			text = string(r[:w-5]) + "…"
		}
		dst.DrawTextColored(1, 2, "» "+text, core.ColorOrange)
	}
}

// view maps world units onto the play area below the HUD.
type view struct {
	camX   float64
	sx, sy float64
	top    int
	bottom int
	width  int
}

func newView(dst *core.Screen, canvas config.CanvasConfig, camX float64) view {
	rows := dst.Height() - hudRows
	return view{
		camX:   camX,
		sx:     canvas.Width / float64(dst.Width()),
		sy:     canvas.Height / float64(rows),
		top:    hudRows,
		bottom: dst.Height(),
		width:  dst.Width(),
	}
}

func (v view) cellX(wx float64) int {
	return int(math.Floor((wx - v.camX) / v.sx))
}

func (v view) cellY(wy float64) int {
	return v.top + int(math.Floor(wy/v.sy))
}

// set draws one cell, clipped to the play area.
func (v view) set(dst *core.Screen, x, y int, r rune, c core.Color) {
	if y < v.top || y >= v.bottom {
		return
	}
	dst.SetColored(x, y, r, c)
}

// fill paints the cells covered by a world rectangle, at least one cell.
func (v view) fill(dst *core.Screen, e sim.Entity, r rune, c core.Color) {
	x0, y0 := v.cellX(e.Pos.X), v.cellY(e.Pos.Y)
	x1 := core.Max(x0, v.cellX(e.Pos.X+e.Width-0.001))
	y1 := core.Max(y0, v.cellY(e.Pos.Y+e.Height-0.001))
	for y := core.Max(y0, v.top); y <= y1 && y < v.bottom; y++ {
		for x := x0; x <= x1; x++ {
			dst.SetColored(x, y, r, c)
		}
	}
}

func (g *Game) drawWorld(dst *core.Screen) {
	snap := g.last
	if !snap.Active {
		return
	}
	th := themeFor(snap.Level.Theme)
	v := newView(dst, g.cfg.Canvas, snap.CameraX)

	g.drawMountains(dst, v, th)

	for _, e := range snap.Entities {
		switch e.Kind {
		case sim.KindPlatform:
			if e.ID == sim.GroundID {
				v.fill(dst, e, GroundChar, th.Ground)
			} else {
				v.fill(dst, e, PlatformChar, th.Platform)
			}
		case sim.KindEnemy:
			v.fill(dst, e, EnemyChar, th.Enemy)
			cx := v.cellX(e.Pos.X + e.Width/2)
			v.set(dst, cx, v.cellY(e.Pos.Y), EnemyHead, core.ColorBrightRed)
		case sim.KindPowerUp:
			bob := math.Sin(float64(g.frame)*0.1) * 10
			v.set(dst, v.cellX(e.Pos.X+e.Width/2), v.cellY(e.Pos.Y+e.Height/2+bob), PowerUpChar, core.ColorGold)
		case sim.KindGoal:
			v.fill(dst, e, GoalChar, core.ColorBrightGreen)
			center := e.Bounds().Center()
			v.set(dst, v.cellX(center.X), v.cellY(center.Y), GoalMark, core.ColorGold)
		}
	}

	g.drawPlayer(dst, v, snap.Player)
}

// drawMountains draws a slow parallax ridge behind the level.
func (g *Game) drawMountains(dst *core.Screen, v view, th theme) {
	const period, peakY, baseY = 800.0, 200.0, 600.0
	half := period / 2
	for x := 0; x < v.width; x++ {
		wx := float64(x)*v.sx + v.camX*0.2
		t := math.Mod(wx, period)
		top := peakY + math.Abs(t-half)/half*(baseY-peakY)
		r := MountainUp
		if t >= half {
			r = MountainDown
		}
		v.set(dst, x, v.cellY(top), r, th.Mountain)
	}
}

func (g *Game) drawPlayer(dst *core.Screen, v view, p sim.Player) {
	color := core.ColorOrange
	if p.Invincible && g.frame/4%2 == 0 {
		color = core.ColorGold
	}
	v.fill(dst, p.Entity, PlayerChar, color)

	y := v.cellY(p.Pos.Y)
	face := '►'
	side := v.cellX(p.Pos.X+p.Width) + 1
	if p.Direction < 0 {
		face = '◄'
		side = v.cellX(p.Pos.X) - 1
	}
	v.set(dst, v.cellX(p.Pos.X+p.Width/2), y, face, core.ColorWhite)

	if p.IsAttacking {
		v.set(dst, side, y+1, MaceChar, core.ColorGold)
	}
	if p.IsFlying {
		below := v.cellY(p.Bottom()) + 1
		for x := v.cellX(p.Pos.X); x <= v.cellX(p.Pos.X+p.Width-0.001); x++ {
			v.set(dst, x, below, FlyTrail, core.ColorSky)
		}
	}
}

// drawMessage draws a boxed message in the center of the screen.
func drawMessage(dst *core.Screen, titleColor core.Color, lines ...string) {
	w, h := dst.Width(), dst.Height()

	boxW := 0
	for _, l := range lines {
		boxW = core.Max(boxW, len([]rune(l)))
	}
	boxW = core.Min(boxW+4, w)
	boxH := len(lines)*2 + 1
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(boxX, boxY, boxW, boxH, ' ', core.ColorDefault)
	dst.DrawBox(boxX, boxY, boxW, boxH, core.ColorWhite)

	for i, l := range lines {
		c := core.ColorWhite
		if i == 0 {
			c = titleColor
		}
		dst.DrawTextCentered(boxY+1+i*2, l, c)
	}
}

// wrap splits text into lines of at most width runes on word boundaries.
func wrap(text string, width int) []string {
	if width <= 0 {
		return nil
	}
	var lines []string
	var cur []rune
	for _, word := range strings.Fields(text) {
		wr := []rune(word)
		if len(cur) > 0 && len(cur)+1+len(wr) > width {
			lines = append(lines, string(cur))
			cur = cur[:0]
		}
		if len(cur) > 0 {
			cur = append(cur, ' ')
		}
		cur = append(cur, wr...)
	}
	if len(cur) > 0 {
		lines = append(lines, string(cur))
	}
	return lines
}
