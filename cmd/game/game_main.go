package main

import (
	"context"
	"errors"
	"fmt"
	nethttp "net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"CastleRealm/internal/game/alliance"
	"CastleRealm/internal/game/broadcast"
	"CastleRealm/internal/game/handler"
	"CastleRealm/internal/game/lifecycle"
	"CastleRealm/internal/game/store"
	"CastleRealm/internal/shared/logs"
	"CastleRealm/internal/shared/serverconfig"
	"CastleRealm/internal/shared/session"
	transporthttp "CastleRealm/internal/shared/transport/http"
	"CastleRealm/internal/shared/transport/ws"
	"CastleRealm/internal/shared/utils"
	"CastleRealm/modules/kit/logx"
)

func main() {
	serverconfig.Load()
	if err := logs.Init("game", serverconfig.Conf.Log); err != nil {
		panic(err)
	}
	logs.Info("conf", zap.Any("conf", serverconfig.Conf))
	utils.ConfigureSnowflakeNode(int64(serverconfig.Conf.World.ServerID))

	serverConfig := serverconfig.Conf.GameServer
	gameHost := serverConfig.Host
	if gameHost == "" {
		gameHost = "0.0.0.0"
	}
	gameServerAddr := fmt.Sprintf("%s:%d", gameHost, serverConfig.Port)

	baseLogger := logx.NewZapLogger(logs.Logger())

	world := store.New()
	world.GenerateWorld()

	scheduler := lifecycle.NewScheduler(baseLogger)
	defer scheduler.Stop()

	sessMgr := session.NewSessMgr()
	broadcaster := broadcast.New(sessMgr, baseLogger)
	life := lifecycle.NewManager(world, scheduler, broadcaster, baseLogger)
	registry := alliance.NewRegistry(world, baseLogger)

	wsRouter := ws.NewRouter(baseLogger)
	gameHandler := handler.New(world, life, registry, sessMgr, broadcaster, baseLogger)
	gameHandler.Register(wsRouter)

	httpServer := transporthttp.NewHttpServer(gameServerAddr, nil, baseLogger)
	wsServer := ws.NewServer(wsRouter, baseLogger, serverConfig.CmdRate, serverConfig.CmdBurst)
	httpServer.Engine().Any("/game", gin.WrapH(wsServer))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	tick := time.Duration(serverconfig.Conf.World.ProductionTickMS) * time.Millisecond
	go life.RunProduction(ctx, tick)

	errCh := make(chan error, 1)
	go func() {
		if err := httpServer.Start(); err != nil && !errors.Is(err, nethttp.ErrServerClosed) {
			errCh <- fmt.Errorf("game server start failed: %w", err)
			return
		}
		errCh <- nil
	}()

	select {
	case <-ctx.Done():
		logs.Info("收到退出信号，准备优雅退出")
	case err := <-errCh:
		if err != nil {
			logs.Error("服务异常退出", zap.Error(err))
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = httpServer.Shutdown(shutdownCtx)
}
