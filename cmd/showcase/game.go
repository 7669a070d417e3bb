package main

import (
	"fmt"
	"image/color"
	_ "image/png"
	"log"
	"path/filepath"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/quasilyte/gdata/v2"
	"golang.org/x/image/colornames"

	"github.com/milk9111/cellanim/anim"
	"github.com/milk9111/cellanim/atlas"
)

const (
	baseWidth  = 960
	baseHeight = 540

	cellSize      = 64
	defaultCells  = 8
	saveObject    = "showcase"
	saveProperty  = "last_sequence"
	gdataAppName  = "cellanim_showcase"
	managerTickHz = 60
)

type Game struct {
	atlas   *atlas.Atlas
	sprite  *Sprite
	manager *anim.Manager
	ui      *ebitenui.UI
	watcher *atlas.Watcher
	saves   *gdata.Manager

	specPath   string
	scriptPath string
}

func NewGame(specPath, scriptPath string, watch bool) (*Game, error) {
	g := &Game{specPath: specPath, scriptPath: scriptPath}

	a, err := buildAtlas(specPath)
	if err != nil {
		return nil, err
	}
	g.atlas = a

	if scriptPath != "" {
		seqs, err := atlas.LoadScript(scriptPath, a.CellCount())
		if err != nil {
			return nil, err
		}
		for _, s := range seqs {
			a.Append(s)
		}
	}

	g.sprite = &Sprite{
		atlas: a,
		x:     baseWidth / 2,
		y:     baseHeight / 2,
		scale: 3,
	}

	m, err := anim.NewManager(g.sprite, a, anim.NewFixedClock(managerTickHz))
	if err != nil {
		return nil, err
	}
	g.manager = m
	g.ui = newTransportPanel(g)

	if saves, err := gdata.Open(gdata.Config{AppName: gdataAppName}); err != nil {
		log.Printf("showcase: save storage unavailable: %v", err)
	} else {
		g.saves = saves
		g.restoreSelection()
	}

	if watch {
		dirs := watchDirs(specPath, scriptPath)
		if len(dirs) > 0 {
			w, err := atlas.Watch(atlas.WatchConfig{Dirs: dirs})
			if err != nil {
				return nil, fmt.Errorf("showcase: watch definitions: %w", err)
			}
			g.watcher = w
		}
	}

	return g, nil
}

// buildAtlas loads the YAML definition when given one; otherwise it draws a
// procedural numbered-color sheet so the showcase runs without assets.
func buildAtlas(specPath string) (*atlas.Atlas, error) {
	if specPath == "" {
		return atlas.FromImage(makeSheet(cellSize, defaultCells), cellSize, cellSize)
	}

	spec, err := atlas.LoadSpec(specPath)
	if err != nil {
		return nil, err
	}

	var a *atlas.Atlas
	if spec.Image != "" {
		img, _, err := ebitenutil.NewImageFromFile(spec.Image)
		if err != nil {
			return nil, fmt.Errorf("showcase: load sheet %s: %w", spec.Image, err)
		}
		a, err = atlas.FromImage(img, spec.CellWidth, spec.CellHeight)
		if err != nil {
			return nil, err
		}
	} else {
		a, err = atlas.FromImage(makeSheet(cellSize, defaultCells), cellSize, cellSize)
		if err != nil {
			return nil, err
		}
	}

	seqs, err := spec.BuildSequences()
	if err != nil {
		return nil, err
	}
	a.SetSequences(seqs)
	return a, nil
}

// makeSheet draws a horizontal strip of solid-colored cells, one color per
// cell, so frame changes are visible without a real sprite sheet.
func makeSheet(size, count int) *ebiten.Image {
	palette := []color.RGBA{
		colornames.Crimson,
		colornames.Orange,
		colornames.Gold,
		colornames.Mediumseagreen,
		colornames.Deepskyblue,
		colornames.Royalblue,
		colornames.Mediumpurple,
		colornames.Hotpink,
	}
	sheet := ebiten.NewImage(size*count, size)
	cell := ebiten.NewImage(size-8, size-8)
	for i := 0; i < count; i++ {
		cell.Fill(palette[i%len(palette)])
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(float64(i*size+4), 4)
		sheet.DrawImage(cell, op)
	}
	return sheet
}

func watchDirs(paths ...string) []string {
	seen := map[string]bool{}
	var dirs []string
	for _, p := range paths {
		if p == "" {
			continue
		}
		dir := filepath.Dir(p)
		if !seen[dir] {
			seen[dir] = true
			dirs = append(dirs, dir)
		}
	}
	return dirs
}

func (g *Game) Update() error {
	g.pollWatcher()
	g.handleInput()
	g.ui.Update()
	g.manager.Update()
	return nil
}

func (g *Game) handleInput() {
	m := g.manager

	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		if cur, ok := m.Get(m.CurrentName()); ok {
			switch cur.State() {
			case anim.Playing:
				m.Pause()
			case anim.Paused:
				m.Resume()
			default:
				m.Play("")
			}
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		m.Stop()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		m.NextFrame()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		m.PrevFrame()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		m.PlayAt(0, "")
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		g.cycleSequence()
	}

	digits := []ebiten.Key{
		ebiten.Key0, ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4,
		ebiten.Key5, ebiten.Key6, ebiten.Key7, ebiten.Key8, ebiten.Key9,
	}
	for i, k := range digits {
		if inpututil.IsKeyJustPressed(k) {
			m.SwitchTo(anim.ByIndex(i), anim.PlayKeep)
		}
	}
}

func (g *Game) cycleSequence() {
	names := g.manager.Names()
	if len(names) < 2 {
		return
	}
	cur := g.manager.CurrentName()
	for i, n := range names {
		if n != cur {
			continue
		}
		next := names[(i+1)%len(names)]
		if g.manager.SwitchTo(anim.ByName(next), anim.PlayKeep) {
			g.saveSelection(next)
		}
		return
	}
}

func (g *Game) pollWatcher() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case ev, ok := <-g.watcher.Events():
			if !ok {
				g.watcher = nil
				return
			}
			log.Printf("showcase: %s %s changed, reloading definitions", ev.Kind, ev.Path)
			g.reload()
		case err, ok := <-g.watcher.Errors():
			if ok {
				log.Printf("showcase: watch error: %v", err)
			}
		default:
			return
		}
	}
}

// reload re-reads the definition files, swaps the atlas's sequence
// collection, and rebuilds the manager, keeping the previous selection and
// play state where possible.
func (g *Game) reload() {
	var seqs []*anim.Sequence
	if g.specPath != "" {
		spec, err := atlas.LoadSpec(g.specPath)
		if err != nil {
			log.Printf("showcase: reload: %v", err)
			return
		}
		built, err := spec.BuildSequences()
		if err != nil {
			log.Printf("showcase: reload: %v", err)
			return
		}
		seqs = append(seqs, built...)
	}
	if g.scriptPath != "" {
		built, err := atlas.LoadScript(g.scriptPath, g.atlas.CellCount())
		if err != nil {
			log.Printf("showcase: reload: %v", err)
			return
		}
		seqs = append(seqs, built...)
	}
	g.atlas.SetSequences(seqs)

	prev := g.manager.CurrentName()
	wasPlaying := g.manager.IsPlaying()
	g.manager.Destroy()

	m, err := anim.NewManager(g.sprite, g.atlas, anim.NewFixedClock(managerTickHz))
	if err != nil {
		log.Printf("showcase: reload: %v", err)
		return
	}
	g.manager = m
	policy := anim.PlayStop
	if wasPlaying {
		policy = anim.PlayStart
	}
	m.SwitchTo(anim.ByName(prev), policy)
}

func (g *Game) restoreSelection() {
	if !g.saves.ObjectPropExists(saveObject, saveProperty) {
		return
	}
	data, err := g.saves.LoadObjectProp(saveObject, saveProperty)
	if err != nil {
		log.Printf("showcase: restore selection: %v", err)
		return
	}
	if g.manager.SwitchTo(anim.ByName(string(data)), anim.PlayKeep) {
		log.Printf("showcase: restored sequence %q", string(data))
	}
}

func (g *Game) saveSelection(name string) {
	if g.saves == nil {
		return
	}
	if err := g.saves.SaveObjectProp(saveObject, saveProperty, []byte(name)); err != nil {
		log.Printf("showcase: save selection: %v", err)
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.NRGBA{R: 0x1e, G: 0x1e, B: 0x24, A: 0xff})
	g.sprite.Draw(screen)
	g.ui.Draw(screen)

	state := "stopped"
	if cur, ok := g.manager.Get(g.manager.CurrentName()); ok {
		state = cur.State().String()
	}
	msg := fmt.Sprintf(
		"sequence: %s  state: %s  frame: %d/%d  cell: %d\n[space] play/pause  [s] stop  [n/p] step  [r] restart  [tab] switch  [0-9] seek",
		g.manager.CurrentName(), state,
		g.manager.FrameIndex()+1, g.manager.Length(), g.manager.CurrentCell(),
	)
	ebitenutil.DebugPrint(screen, msg)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return baseWidth, baseHeight
}

// Close releases the watcher and the manager. Safe to call once the game
// loop has returned.
func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
	g.manager.Destroy()
}
