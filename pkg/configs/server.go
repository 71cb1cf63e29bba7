package configs

import "github.com/spf13/viper"

// DefaultPort is the TCP port the greeting server binds when nothing overrides it.
const DefaultPort = 3000

// ServerConfig HTTP 服务配置
type ServerConfig struct {
	Host string `mapstructure:"host" json:"host" yaml:"host" toml:"host"` // 为空时监听所有地址
	Port int    `mapstructure:"port" json:"port" yaml:"port" toml:"port"`
	H2C  bool   `mapstructure:"h2c" json:"h2c" yaml:"h2c" toml:"h2c"` // 同时接受明文 HTTP/2
}

func setServerConfigDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "")
	v.SetDefault("server.port", DefaultPort)
	v.SetDefault("server.h2c", false)
}
