package main

import (
	"fmt"
	"image/color"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/slingshot/common"
	"github.com/milk9111/slingshot/ecs"
	"github.com/milk9111/slingshot/ecs/component"
	"github.com/milk9111/slingshot/ecs/entity"
	"github.com/milk9111/slingshot/ecs/system"
	"github.com/milk9111/slingshot/levels"
	"github.com/milk9111/slingshot/logger"
	"github.com/milk9111/slingshot/prefabs"
	"go.uber.org/zap"
)

var backgroundColor = color.NRGBA{R: 0x1d, G: 0x23, B: 0x2c, A: 0xff}

type Game struct {
	log   *zap.Logger
	debug bool

	level          *levels.Level
	launcherPrefab string

	world     *ecs.World
	scheduler *ecs.Scheduler
	render    *system.RenderSystem
	entities  entity.LevelEntities

	frames  int
	paused  bool
	restart bool
	pauseUI *ebitenui.UI
	watcher *prefabs.Watcher
}

func NewGame(levelName string, debug, watch bool, log *zap.Logger) (*Game, error) {
	log = logger.OrNop(log)

	lvl, err := levels.LoadLevelFromFS(levelName)
	if err != nil {
		return nil, fmt.Errorf("load level %q: %w", levelName, err)
	}

	g := &Game{
		log:            log,
		debug:          debug,
		level:          lvl,
		launcherPrefab: lvl.Launcher,
		render:         system.NewRenderSystem(),
	}
	if g.launcherPrefab == "" {
		g.launcherPrefab = "launcher.yaml"
	}
	g.pauseUI = NewPauseUI(g)

	if watch {
		w, err := prefabs.NewWatcher(prefabs.Dir)
		if err != nil {
			log.Warn("prefab watcher disabled", zap.String("dir", prefabs.Dir), zap.Error(err))
		} else {
			g.watcher = w
		}
	}

	if err := g.reset(); err != nil {
		_ = g.Close()
		return nil, err
	}
	return g, nil
}

// reset rebuilds the world and every system from the loaded level.
func (g *Game) reset() error {
	world := ecs.NewWorld()
	ents, err := entity.LoadLevelToWorld(world, g.level)
	if err != nil {
		return fmt.Errorf("build level: %w", err)
	}

	g.world = world
	g.entities = ents
	g.scheduler = ecs.NewScheduler(
		system.NewInputSystem(nil),
		system.NewInvokeSystem(),
		system.NewLauncherSystem(g.log),
		system.NewPhysicsSystem(g.log),
		system.NewTTLSystem(),
		system.NewCameraSystem(),
	)
	g.log.Info("level loaded",
		zap.Float64("width", g.level.Width),
		zap.Float64("height", g.level.Height),
		zap.Int("entities", len(ecs.Entities(world))),
	)
	return nil
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.paused = !g.paused
	}

	if g.restart {
		g.restart = false
		g.paused = false
		if err := g.reset(); err != nil {
			return err
		}
	}

	if g.paused {
		g.pauseUI.Update()
		return nil
	}

	g.frames++
	g.reloadPrefabs()
	g.scheduler.Update(g.world)
	return nil
}

// reloadPrefabs applies on-disk edits of the launcher prefab to the running
// launcher. Other prefabs are read again on their next instantiation.
func (g *Game) reloadPrefabs() {
	for _, name := range g.watcher.Poll() {
		g.log.Debug("prefab changed", zap.String("prefab", name))
		if name != g.launcherPrefab {
			continue
		}
		if err := g.reloadLauncher(); err != nil {
			g.log.Warn("reload launcher", zap.String("prefab", name), zap.Error(err))
			continue
		}
		g.log.Info("launcher reloaded", zap.String("prefab", name))
	}
}

func (g *Game) reloadLauncher() error {
	spec, err := prefabs.LoadEntityBuildSpec(g.launcherPrefab)
	if err != nil {
		return err
	}
	raw, ok := spec.Components["ball_launcher"]
	if !ok {
		return fmt.Errorf("%s has no ball_launcher component", g.launcherPrefab)
	}
	launcherSpec, err := prefabs.DecodeComponentSpec[prefabs.BallLauncherComponentSpec](raw)
	if err != nil {
		return err
	}
	l, ok := ecs.Get(g.world, g.entities.Launcher, component.BallLauncherComponent.Kind())
	if !ok {
		return fmt.Errorf("launcher entity is gone")
	}
	return entity.ApplyLauncherSpec(l, launcherSpec)
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)
	g.render.Draw(g.world, screen)

	phase := component.LauncherIdle
	shots := 0
	if l, ok := ecs.Get(g.world, g.entities.Launcher, component.BallLauncherComponent.Kind()); ok {
		phase = l.Phase()
		shots = l.Shots
	}
	hud := fmt.Sprintf("State: %s    Shots: %d", phase, shots)
	if g.debug {
		hud += fmt.Sprintf("\nFrames: %d    FPS: %.2f    Entities: %d", g.frames, ebiten.ActualFPS(), len(ecs.Entities(g.world)))
	}
	ebitenutil.DebugPrint(screen, hud)

	if g.paused {
		g.pauseUI.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return common.BaseWidth, common.BaseHeight
}

func (g *Game) Close() error {
	if g.watcher == nil {
		return nil
	}
	return g.watcher.Close()
}
