// Package log 提供全局日志记录器的初始化和获取功能
// 使用 zerolog 作为日志库，支持多种输出模式（控制台、文件、两者）
package log

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/yeisme/hellosrv/pkg/configs"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Logger 定义全局日志记录器类型
type Logger = *zerolog.Logger

var (
	globalLogger Logger
	globalMu     sync.RWMutex
)

// InitLogger 初始化日志记录器并设置为全局日志记录器
//
// 优先级：quiet > debug > verbose > config.Level
func InitLogger(ctx context.Context, config *configs.LogConfig, appConfig *configs.AppConfig) Logger {
	if appConfig.Quiet {
		zerolog.SetGlobalLevel(zerolog.PanicLevel)
		logger := zerolog.New(io.Discard)
		setGlobal(&logger)
		return &logger
	}

	switch {
	case appConfig.Debug:
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case appConfig.Verbose:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	default:
		zerolog.SetGlobalLevel(parseLogLevel(config.Level))
	}

	logger := New(ctx, buildOutput(config), appConfig)
	setGlobal(logger)
	return logger
}

// New 基于给定的输出创建日志记录器, 不修改全局状态
func New(ctx context.Context, output io.Writer, appConfig *configs.AppConfig) Logger {
	var logger zerolog.Logger
	switch {
	case appConfig.Debug:
		logger = zerolog.New(output).With().Caller().
			Str("app", appConfig.Name).
			Ctx(ctx).Timestamp().Logger()
	case appConfig.Verbose:
		logger = zerolog.New(output).With().
			Str("app", appConfig.Name).
			Ctx(ctx).Timestamp().Logger()
	default:
		logger = zerolog.New(output).With().Timestamp().Logger()
	}
	return &logger
}

// buildOutput 根据模式配置输出目标
func buildOutput(config *configs.LogConfig) io.Writer {
	var writers []io.Writer

	switch strings.ToLower(config.Mode) {
	case "file":
		writers = append(writers, createFileWriter(config))
	case "both":
		writers = append(writers, createConsoleWriter(config.JSON))
		writers = append(writers, createFileWriter(config))
	default:
		writers = append(writers, createConsoleWriter(config.JSON))
	}

	if len(writers) == 1 {
		return writers[0]
	}
	return io.MultiWriter(writers...)
}

// createConsoleWriter 创建控制台输出写入器
func createConsoleWriter(useJSON bool) io.Writer {
	if useJSON {
		return os.Stderr
	}
	return zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: "2006-01-02 15:04:05",
	}
}

// createFileWriter 创建文件输出写入器
func createFileWriter(config *configs.LogConfig) io.Writer {
	// 确保日志目录存在
	logDir := filepath.Dir(config.FilePath)
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return os.Stderr
	}

	// 使用 lumberjack 进行日志轮转
	return &lumberjack.Logger{
		Filename:   config.FilePath,
		MaxSize:    config.MaxSize,    // megabytes
		MaxBackups: config.MaxBackups, // 保留备份数量
		MaxAge:     config.MaxAge,     // days
		Compress:   true,              // 压缩旧日志文件
	}
}

func setGlobal(logger Logger) {
	globalMu.Lock()
	defer globalMu.Unlock()
	globalLogger = logger
	log.Logger = *logger
}

// GetLogger 获取全局日志记录器, 未初始化时返回 zerolog 的默认记录器
func GetLogger() Logger {
	globalMu.RLock()
	defer globalMu.RUnlock()
	if globalLogger == nil {
		return &log.Logger
	}
	return globalLogger
}

// parseLogLevel 解析日志级别
func parseLogLevel(level string) zerolog.Level {
	switch strings.ToLower(level) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "fatal":
		return zerolog.FatalLevel
	case "panic":
		return zerolog.PanicLevel
	default:
		return zerolog.InfoLevel
	}
}
