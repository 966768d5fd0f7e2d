// cmd/game/main.go
package main

import (
	"flag"
	"net/http"
	_ "net/http/pprof"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"go-survivors/internal/config"
	"go-survivors/internal/defs"
	"go-survivors/internal/state"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	// Зажимаем dt: после зависания окна физика не должна взрываться.
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	balancePath := flag.String("balance", "balance.toml", "path to balance override file")
	skipMenu := flag.Bool("skip-menu", false, "start straight into the game")
	flag.Parse()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	log := logger.Sugar()

	if err := defs.LoadBalanceOverrides(*balancePath); err != nil {
		log.Fatalw("balance overrides failed to load", "path", *balancePath, "err", err)
	}

	go func() {
		log.Infow("pprof stopped", "err", http.ListenAndServe("localhost:6060", nil))
	}()

	sm := state.NewStateMachine()
	if *skipMenu {
		sm.SetState(state.NewGameState(sm, log))
	} else {
		sm.SetState(state.NewMenuState(sm, log))
	}
	app := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Survivors")
	if err := ebiten.RunGame(app); err != nil {
		log.Fatalw("game loop exited", "err", err)
	}
}
