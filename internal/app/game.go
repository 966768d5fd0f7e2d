// internal/app/game.go
package app

import (
	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"go-survivors/internal/component"
	"go-survivors/internal/config"
	"go-survivors/internal/entity"
	"go-survivors/internal/event"
	"go-survivors/internal/system"
	"go-survivors/internal/utils"
)

// Game — оркестратор симуляции: владеет миром, шиной событий и всеми
// системами, задаёт порядок тика. Порядок — контракт: от него зависит,
// какие позиции видят коллизии.
type Game struct {
	World           *entity.World
	EventDispatcher *event.Dispatcher

	rng *utils.PRNGService
	log *zap.SugaredLogger

	playerSystem     *system.PlayerSystem
	weaponSystem     *system.WeaponSystem
	bombSystem       *system.BombSystem
	enemySystem      *system.EnemySystem
	projectileSystem *system.ProjectileSystem
	pickupSystem     *system.PickupSystem
	collisionSystem  *system.CollisionSystem
	combatSystem     *system.CombatSystem
	waveSystem       *system.WaveSystem
	upgradeSystem    *system.UpgradeSystem
	effectSystem     *system.VisualEffectSystem
	renderSystem     *system.RenderSystem
	progression      *system.ProgressionSystem

	camera   *Camera
	gameOver bool
}

// NewGame собирает симуляцию. Сид 0 означает случайный.
func NewGame(log *zap.SugaredLogger, seed int64) *Game {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	world := entity.NewWorld()
	dispatcher := event.NewDispatcher(log)
	rng := utils.NewPRNGService(seed)

	g := &Game{
		World:           world,
		EventDispatcher: dispatcher,
		rng:             rng,
		log:             log,
		camera:          NewCamera(world.Player.Pos),
	}

	g.bombSystem = system.NewBombSystem(world)
	g.collisionSystem = system.NewCollisionSystem(world, config.GridCellSize)
	g.playerSystem = system.NewPlayerSystem(world, rng, g.bombSystem)
	g.weaponSystem = system.NewWeaponSystem(world, g.collisionSystem, g.bombSystem, log)
	g.enemySystem = system.NewEnemySystem(world, rng, log)
	g.projectileSystem = system.NewProjectileSystem(world)
	g.pickupSystem = system.NewPickupSystem(world)
	g.combatSystem = system.NewCombatSystem(world, dispatcher, rng, log)
	g.waveSystem = system.NewWaveSystem(world, dispatcher, rng, log)
	g.upgradeSystem = system.NewUpgradeSystem(world, rng)
	g.effectSystem = system.NewVisualEffectSystem(world, dispatcher, rng)
	g.renderSystem = system.NewRenderSystem(world)
	g.progression = system.NewProgressionSystem(world, dispatcher)

	dispatcher.Subscribe(event.PlayerDied, func(e event.Event) {
		g.gameOver = true
	})

	return g
}

// Update продвигает симуляцию на один тик.
func (g *Game) Update(deltaTime float64, in system.InputFrame) {
	g.World.GameTime += deltaTime

	g.playerSystem.Update(deltaTime, in)
	g.weaponSystem.Update(deltaTime, in)
	g.bombSystem.Update(deltaTime)
	g.enemySystem.Update(deltaTime)
	g.projectileSystem.Update(deltaTime)
	g.pickupSystem.Update(deltaTime)

	fc := g.collisionSystem.CheckAll()
	g.combatSystem.Resolve(fc, deltaTime)

	g.waveSystem.Update(deltaTime)
	g.effectSystem.Update(deltaTime)
	g.camera.Follow(g.World.Player.Pos, deltaTime)
}

// Draw отрисовывает мир (без UI).
func (g *Game) Draw(screen *ebiten.Image) {
	g.renderSystem.Draw(screen, g.camera.TopLeft(), g.World.GameTime)
}

// Camera — камера для перевода экранных координат в мировые.
func (g *Game) Camera() *Camera { return g.camera }

// Waves — планировщик волн для UI.
func (g *Game) Waves() *system.WaveSystem { return g.waveSystem }

// Upgrades — система улучшений для экрана выбора.
func (g *Game) Upgrades() *system.UpgradeSystem { return g.upgradeSystem }

// IsGameOver сообщает, погиб ли игрок.
func (g *Game) IsGameOver() bool { return g.gameOver }

// Progress — уровень и опыт игрока.
func (g *Game) Progress() *component.Progress { return g.World.Progress }
