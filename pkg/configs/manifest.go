package configs

import "github.com/spf13/viper"

// ManifestConfig 版本清单配置
type ManifestConfig struct {
	Path         string `mapstructure:"path" json:"path" yaml:"path" toml:"path"`                                     // 清单文件路径, 默认 package.json
	StrictSemver bool   `mapstructure:"strict_semver" json:"strict_semver" yaml:"strict_semver" toml:"strict_semver"` // 版本号不是 semver 时拒绝启动
	Watch        bool   `mapstructure:"watch" json:"watch" yaml:"watch" toml:"watch"`                                 // 监视清单文件并提示版本漂移
	Debounce     int    `mapstructure:"debounce" json:"debounce" yaml:"debounce" toml:"debounce"`                     // 防抖时间，毫秒
}

func setManifestConfigDefaults(v *viper.Viper) {
	v.SetDefault("manifest.path", "package.json")
	v.SetDefault("manifest.strict_semver", false)
	v.SetDefault("manifest.watch", true)
	v.SetDefault("manifest.debounce", 300) // 毫秒
}
