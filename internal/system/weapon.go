// internal/system/weapon.go
package system

import (
	"math"

	"go.uber.org/zap"

	"go-survivors/internal/component"
	"go-survivors/internal/config"
	"go-survivors/internal/defs"
	"go-survivors/internal/entity"
	"go-survivors/internal/types"
	"go-survivors/pkg/vec"
)

// WeaponSystem обновляет слоты оружия: прицеливание, перезарядку и
// выстрелы всех классов оружия.
type WeaponSystem struct {
	world      *entity.World
	collisions *CollisionSystem
	bombSystem *BombSystem
	log        *zap.SugaredLogger
}

func NewWeaponSystem(world *entity.World, collisions *CollisionSystem, bombSystem *BombSystem, log *zap.SugaredLogger) *WeaponSystem {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &WeaponSystem{
		world:      world,
		collisions: collisions,
		bombSystem: bombSystem,
		log:        log,
	}
}

func (s *WeaponSystem) Update(deltaTime float64, in InputFrame) {
	pl := s.world.Player
	if pl.Health <= 0 {
		return
	}

	for i := range pl.Weapons {
		slot := &pl.Weapons[i]
		def, err := defs.Weapon(slot.Class)
		if err != nil {
			s.log.Errorw("unknown weapon in slot", "slot", i, "class", string(slot.Class))
			continue
		}

		slot.Cooldown -= deltaTime * pl.AttackSpeedMult
		if slot.Cooldown > 0 {
			continue
		}

		mount := s.mountWorldPos(slot)
		fired := false
		switch slot.Class {
		case defs.WeaponBasic:
			fired = s.fireBasic(slot, def, mount)
		case defs.WeaponSpread:
			fired = s.fireSpread(slot, def, mount, in.Cursor)
		case defs.WeaponLaser:
			fired = s.fireLaser(slot, def, mount)
		case defs.WeaponChainLaser:
			fired = s.fireChainLaser(slot, def, mount)
		case defs.WeaponBombPlacer:
			fired = s.fireBombPlacer(mount)
		}
		if fired {
			slot.Cooldown = def.Cooldown
		}
	}
}

// mountWorldPos — мировая позиция крепления: смещение слота, повёрнутое
// на угол взгляда игрока.
func (s *WeaponSystem) mountWorldPos(slot *component.WeaponSlot) vec.V2 {
	return s.world.Player.Pos.Add(slot.Mount.Rotate(s.world.Player.Facing))
}

// nearestEnemy ищет ближайшего врага в радиусе от точки крепления,
// а не от центра игрока. При равных дистанциях побеждает меньший ID.
func (s *WeaponSystem) nearestEnemy(from vec.V2, maxRange float64, exclude map[types.EntityID]struct{}) (types.EntityID, bool) {
	var bestID types.EntityID
	bestDist := maxRange
	found := false
	for id, e := range s.world.Enemies {
		if _, skip := exclude[id]; skip {
			continue
		}
		d := from.Dist(e.Pos)
		if d < bestDist || (found && d == bestDist && id < bestID) {
			bestID = id
			bestDist = d
			found = true
		}
	}
	return bestID, found
}

func (s *WeaponSystem) spawnProjectile(def defs.WeaponDefinition, level int, origin, dir vec.V2) {
	id := s.world.NewEntity()
	s.world.Projectiles[id] = &component.Projectile{
		Pos:    origin,
		Vel:    dir.Scale(def.ProjectileSpeed),
		Radius: def.ProjectileRadius,
		Damage: def.Damage * defs.DamageMultForLevel(level),
		Life:   def.ProjectileLifetime,
		Color:  def.Color,
		Weapon: def.ID,
	}
}

// barrelTip — точка вылета: кончик ствола дальше крепления вдоль
// направления выстрела. Совпадает с тем, что рисует RenderSystem.
func barrelTip(mount, dir vec.V2) vec.V2 {
	return mount.Add(dir.Scale(config.WeaponBarrelLength * 0.5))
}

func (s *WeaponSystem) fireBasic(slot *component.WeaponSlot, def defs.WeaponDefinition, mount vec.V2) bool {
	targetID, ok := s.nearestEnemy(mount, def.Range, nil)
	if !ok {
		return false
	}
	target := s.world.Enemies[targetID]
	dir := target.Pos.Sub(mount).Normalized()
	s.spawnProjectile(def, slot.Level, barrelTip(mount, dir), dir)
	return true
}

func (s *WeaponSystem) fireSpread(slot *component.WeaponSlot, def defs.WeaponDefinition, mount, cursor vec.V2) bool {
	dir := cursor.Sub(mount).Normalized()
	if dir.LenSq() == 0 {
		dir = vec.FromAngle(s.world.Player.Facing)
	}
	base := dir.Angle()
	arc := def.SpreadAngleDeg * math.Pi / 180
	n := def.SpreadCount
	for i := 0; i < n; i++ {
		var angle float64
		if n == 1 {
			angle = base
		} else {
			angle = base - arc/2 + arc*float64(i)/float64(n-1)
		}
		d := vec.FromAngle(angle)
		s.spawnProjectile(def, slot.Level, barrelTip(mount, d), d)
	}
	return true
}

// fireLaser — мгновенный луч с отскоками: цепочка ближайших целей,
// урон каждой, визуальные сегменты с коротким временем жизни.
func (s *WeaponSystem) fireLaser(slot *component.WeaponSlot, def defs.WeaponDefinition, mount vec.V2) bool {
	firstID, ok := s.nearestEnemy(mount, def.Range, nil)
	if !ok {
		return false
	}

	damage := def.Damage * defs.DamageMultForLevel(slot.Level)
	bounces := def.BaseBounces + (slot.Level-1)/2

	hit := make(map[types.EntityID]struct{})
	from := mount
	currentID := firstID
	for i := 0; i <= bounces; i++ {
		target, alive := s.world.Enemies[currentID]
		if !alive {
			break
		}
		s.addBeam(from, target.Pos, def)
		s.applyBeamDamage(currentID, damage)
		hit[currentID] = struct{}{}

		// Луч прожигает и тех, кто стоит на его пути.
		for _, throughID := range s.collisions.EnemiesNearSegment(from, target.Pos, def.ProjectileRadius) {
			if _, done := hit[throughID]; done {
				continue
			}
			s.applyBeamDamage(throughID, damage)
			hit[throughID] = struct{}{}
		}

		from = target.Pos
		nextID, found := s.nearestEnemy(from, def.BounceRange, hit)
		if !found {
			break
		}
		currentID = nextID
	}
	return true
}

// fireChainLaser — непрерывный луч с захватом цели. Захват сбрасывается,
// когда цель умирает или выходит за дальность; на высоких уровнях луч
// перескакивает на дополнительные цели.
func (s *WeaponSystem) fireChainLaser(slot *component.WeaponSlot, def defs.WeaponDefinition, mount vec.V2) bool {
	target, locked := s.world.Enemies[slot.Target]
	if !locked || mount.Dist(target.Pos) > def.Range {
		slot.Target = 0
		newID, found := s.nearestEnemy(mount, def.Range, nil)
		if !found {
			return false
		}
		slot.Target = newID
		target = s.world.Enemies[newID]
	}

	// Урон за одно срабатывание: DPS, умноженный на период.
	tickDamage := def.Damage * defs.DamageMultForLevel(slot.Level) * def.Cooldown

	chains := 0
	if slot.Level >= def.ChainEnabledAtLevel {
		chains = defs.ChainCountForLevel(slot.Level) - 1
	}

	hit := make(map[types.EntityID]struct{})
	from := mount
	currentID := slot.Target
	for i := 0; i <= chains; i++ {
		e, alive := s.world.Enemies[currentID]
		if !alive {
			break
		}
		s.addBeam(from, e.Pos, def)
		s.applyBeamDamage(currentID, tickDamage)
		hit[currentID] = struct{}{}

		from = e.Pos
		nextID, found := s.nearestEnemy(from, def.ChainRange, hit)
		if !found {
			break
		}
		currentID = nextID
	}
	return true
}

func (s *WeaponSystem) fireBombPlacer(mount vec.V2) bool {
	pl := s.world.Player
	if pl.Bombs <= 0 {
		return false
	}
	pl.Bombs--
	s.bombSystem.Place(mount)
	return true
}

func (s *WeaponSystem) addBeam(from, to vec.V2, def defs.WeaponDefinition) {
	id := s.world.NewEntity()
	s.world.Beams[id] = &component.Beam{
		From:  from,
		To:    to,
		Color: def.Color,
		Life:  0.08,
	}
}

// applyBeamDamage — лучи бьют мгновенно, минуя систему снарядов.
// Смерть цели разрешает CombatSystem на своём шаге.
func (s *WeaponSystem) applyBeamDamage(id types.EntityID, damage float64) {
	e, ok := s.world.Enemies[id]
	if !ok {
		return
	}
	def, err := defs.Enemy(e.Class)
	if err == nil && e.IsInvulnerable(&def) {
		return
	}
	e.Health -= damage
}
