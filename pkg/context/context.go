// Package context 保存一次进程运行所需的配置、日志记录器与 viper 实例
package context

import (
	"context"

	"github.com/spf13/viper"
	"github.com/yeisme/hellosrv/pkg/configs"
	log2 "github.com/yeisme/hellosrv/pkg/utils/log"
)

// GlobalFlags 全局命令行标志
type GlobalFlags struct {
	ConfigPath string
	Debug      bool
	Verbose    bool
	Quiet      bool
}

// AppContext 应用上下文
type AppContext struct {
	context.Context
	Config *configs.Config // 应用配置
	Logger log2.Logger     // 日志记录器
	Viper  *viper.Viper    // 配置来源, 供 config 子命令使用
}

// InitAppContext 加载配置并初始化日志记录器
//
// 命令行标志只能打开 debug/verbose/quiet, 不会关闭配置文件中已开启的选项.
func InitAppContext(ctx context.Context, flags GlobalFlags) (*AppContext, error) {
	v := viper.New()
	config, err := configs.LoadConfig(v, flags.ConfigPath)
	if err != nil {
		return nil, err
	}

	config.App.Debug = config.App.Debug || flags.Debug
	config.App.Verbose = config.App.Verbose || flags.Verbose
	config.App.Quiet = config.App.Quiet || flags.Quiet

	logger := log2.InitLogger(ctx, &config.Log, &config.App)

	return &AppContext{
		Context: ctx,
		Config:  config,
		Logger:  logger,
		Viper:   v,
	}, nil
}
