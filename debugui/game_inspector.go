package debugui

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/AllenDang/cimgui-go/implot"
	"github.com/plus3/blockfall/tetris"
)

// GameInspector shows the live state of a game: play state and score, the
// active and queued blocks, the bag, the board and the session counters.
type GameInspector struct {
	game   *tetris.Game
	scores []float32
	offset int
}

const scoreHistorySize = 300

func NewGameInspector(game *tetris.Game) *GameInspector {
	return &GameInspector{
		game:   game,
		scores: make([]float32, scoreHistorySize),
	}
}

// ScoreHistory returns the sampled scores, oldest first.
func (gi *GameInspector) ScoreHistory() []float32 {
	samples := make([]float32, len(gi.scores))
	copy(samples, gi.scores[gi.offset:])
	copy(samples[len(gi.scores)-gi.offset:], gi.scores[:gi.offset])
	return samples
}

// Sample appends the current score to the history.
func (gi *GameInspector) Sample() {
	gi.scores[gi.offset] = float32(gi.game.Score())
	gi.offset = (gi.offset + 1) % len(gi.scores)
}

// Item returns the overlay window for registration on an ImguiSystem.
func (gi *GameInspector) Item() Item {
	return Item{Render: gi.Render}
}

func (gi *GameInspector) Render() {
	imgui.SetNextWindowPosV(imgui.NewVec2(510, 260), imgui.CondOnce, imgui.NewVec2(0, 0))
	if !imgui.BeginV("Game Inspector", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	gi.Sample()

	g := gi.game
	imgui.Text(fmt.Sprintf("State: %s", g.State()))
	imgui.Text(fmt.Sprintf("Session: %s", g.Session()))
	imgui.Text(fmt.Sprintf("Score: %d  Lines: %d  Pieces: %d", g.Score(), g.Lines(), g.Pieces()))
	imgui.Text(fmt.Sprintf("Drop interval: %s", g.DropInterval()))
	if imgui.Button("Reset") {
		g.Reset()
	}

	imgui.Separator()
	current := g.Current()
	imgui.Text(fmt.Sprintf("Current: %s rot=%d at %v", current.Kind(), current.Rotation(), current.Offset()))
	imgui.Text(fmt.Sprintf("Next: %s", g.Next().Kind()))

	if imgui.TreeNodeStr("Bag") {
		for _, k := range g.BagRemaining() {
			imgui.BulletText(k.String())
		}
		imgui.TreePop()
	}

	if imgui.TreeNodeStr("Board") {
		for _, line := range BoardLines(g) {
			imgui.Text(line)
		}
		imgui.TreePop()
	}

	if imgui.TreeNodeStr("Score History") {
		samples := gi.ScoreHistory()
		if implot.BeginPlotV("Score", imgui.NewVec2(-1, 200), 0) {
			implot.SetupAxesV("Frame", "Score", 0, implot.AxisFlagsAutoFit)
			implot.PlotLineFloatPtrInt("Score", &samples[0], int32(len(samples)))
			implot.EndPlot()
		}
		imgui.TreePop()
	}

	if imgui.TreeNodeStr("Stats") {
		gi.renderStats(g.Stats())
		imgui.TreePop()
	}

	imgui.End()
}

func (gi *GameInspector) renderStats(stats *tetris.Stats) {
	imgui.Text(fmt.Sprintf("Games: %d  Best: %d  Lines: %d  Locked: %d",
		stats.Games, stats.BestScore, stats.Lines, stats.Locked))

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
	if imgui.BeginTableV("SpawnTable", 2, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("Kind")
		imgui.TableSetupColumn("Spawned")
		imgui.TableHeadersRow()

		total := stats.TotalSpawned()
		for _, k := range tetris.Kinds() {
			n := stats.Spawned(k)
			imgui.TableNextRow()
			imgui.TableNextColumn()
			imgui.Text(k.String())
			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", n))

			if total > 0 {
				barWidth := float32(n) / float32(total) * 80.0
				imgui.SameLine()
				drawList := imgui.WindowDrawList()
				pos := imgui.CursorScreenPos()
				drawList.AddRectFilled(pos, imgui.NewVec2(pos.X+barWidth, pos.Y+10), colorU32(tetris.CellColor(k)))
			}
		}
		imgui.EndTable()
	}

	for _, rows := range stats.ClearSizes() {
		imgui.BulletText(fmt.Sprintf("%d-row clears: %d", rows, stats.Clears(rows)))
	}
}

// BoardLines renders the locked cells with the active block overlaid, one
// string per row. Active cells are drawn in lower case.
func BoardLines(g *tetris.Game) []string {
	grid := g.Grid()
	lines := strings.Split(strings.TrimSuffix(grid.String(), "\n"), "\n")

	current := g.Current()
	letter := strings.ToLower(current.Kind().String())
	for _, cell := range current.Cells() {
		if grid.IsCellOutside(cell.Row, cell.Column) {
			continue
		}
		row := []byte(lines[cell.Row])
		row[cell.Column] = letter[0]
		lines[cell.Row] = string(row)
	}
	return lines
}

func colorU32(c color.RGBA) uint32 {
	return imgui.ColorU32Vec4(imgui.NewVec4(
		float32(c.R)/255, float32(c.G)/255, float32(c.B)/255, float32(c.A)/255,
	))
}
