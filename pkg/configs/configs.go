// Package configs 提供应用程序配置管理功能
package configs

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix 环境变量前缀, 例如 HELLOSRV_SERVER_PORT
const EnvPrefix = "HELLOSRV"

// Config 应用配置结构
type Config struct {
	Server   ServerConfig   `mapstructure:"server" json:"server" yaml:"server" toml:"server"`
	Manifest ManifestConfig `mapstructure:"manifest" json:"manifest" yaml:"manifest" toml:"manifest"`
	Log      LogConfig      `mapstructure:"log" json:"log" yaml:"log" toml:"log"`
	App      AppConfig      `mapstructure:"app" json:"app" yaml:"app" toml:"app"`
}

// SetDefaults 在指定的 viper 实例上设置所有默认配置值
func SetDefaults(v *viper.Viper) {
	setServerConfigDefaults(v)
	setManifestConfigDefaults(v)
	setLogConfigDefaults(v)
	setAppConfigDefaults(v)
}

// searchPaths 返回配置文件搜索路径
func searchPaths() []string {
	paths := []string{
		".",
		"./configs",
		"$HOME",
		"$HOME/.config",
		"$HOME/.config/hellosrv",
	}

	// Windows 特殊路径
	if runtime.GOOS == "windows" {
		paths = append(paths,
			"$USERPROFILE",
			"$APPDATA/hellosrv",
		)
	} else {
		paths = append(paths, "/etc/hellosrv")
	}
	return paths
}

// findConfigFile 尝试查找不同格式的配置文件, 未找到时返回空字符串
func findConfigFile() string {
	configNames := []string{".hellosrv", "hellosrv"}
	extensions := []string{"yaml", "yml", "json", "toml"}

	for _, path := range searchPaths() {
		for _, name := range configNames {
			for _, ext := range extensions {
				configFile := filepath.Join(path, name+"."+ext)

				// 展开环境变量
				if strings.Contains(configFile, "$") {
					configFile = os.ExpandEnv(configFile)
				}

				if _, err := os.Stat(configFile); err == nil {
					return configFile
				}
			}
		}
	}

	return ""
}

// LoadConfig 加载配置文件到 v 并解析为 Config
//
// configPath 为空时按搜索路径查找; 找不到配置文件不是错误, 此时使用默认值和环境变量.
// 指定的配置文件不存在或格式错误时返回错误.
func LoadConfig(v *viper.Viper, configPath string) (*Config, error) {
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else if found := findConfigFile(); found != "" {
		v.SetConfigFile(found)
	}

	// 设置环境变量前缀
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	SetDefaults(v)

	// 只有找到或指定了配置文件时才读取, 否则完全依赖默认值和环境变量
	if v.ConfigFileUsed() != "" {
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("读取配置文件失败: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("解析配置文件失败: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	// 确保日志目录存在
	if config.Log.Mode == "file" || config.Log.Mode == "both" {
		logDir := filepath.Dir(config.Log.FilePath)
		if err := os.MkdirAll(logDir, 0755); err != nil {
			return nil, fmt.Errorf("创建日志目录失败: %w", err)
		}
	}

	return &config, nil
}
