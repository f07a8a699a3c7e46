package serverconfig

type Config struct {
	GameServer GameServerConfig `yaml:"gameserver" mapstructure:"gameserver"`
	Log        LogConfig        `yaml:"log" mapstructure:"log"`
	World      WorldConfig      `yaml:"world" mapstructure:"world"`
}

type GameServerConfig struct {
	Host string `yaml:"host" mapstructure:"host"`
	Port int    `yaml:"port" mapstructure:"port"`
	// 单连接每秒允许的命令数与突发额度
	CmdRate  float64 `yaml:"cmd_rate" mapstructure:"cmd_rate"`
	CmdBurst int     `yaml:"cmd_burst" mapstructure:"cmd_burst"`
}

type LogConfig struct {
	FileDir    string `yaml:"file_dir" mapstructure:"file_dir"`
	MaxSize    int    `yaml:"max_size" mapstructure:"max_size"` // MB
	MaxBackups int    `yaml:"max_backups" mapstructure:"max_backups"`
	MaxAge     int    `yaml:"max_age" mapstructure:"max_age"` // days
	Compress   bool   `yaml:"compress" mapstructure:"compress"`
	Level      string `yaml:"level" mapstructure:"level"` // debug/info/warn/error...
	Dev        bool   `yaml:"dev" mapstructure:"dev"`
}

type WorldConfig struct {
	// 资源产出结算周期，毫秒；0 取默认 1000
	ProductionTickMS int `yaml:"production_tick_ms" mapstructure:"production_tick_ms"`
	ServerID         int `yaml:"server_id" mapstructure:"server_id"`
}
