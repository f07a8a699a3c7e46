package serverconfig

import (
	"os"
	"strconv"

	"CastleRealm/internal/shared/config"
)

const defaultConfigRelPath = "configs/conf.yml"

var Conf Config

func Load() {
	config.Load(defaultConfigRelPath, &Conf)
	// 环境变量优先，方便容器部署覆盖端口。
	if raw := os.Getenv("GAME_PORT"); raw != "" {
		if port, err := strconv.Atoi(raw); err == nil {
			Conf.GameServer.Port = port
		}
	}
}
