package configs

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

var (
	validLogModes  = []string{"console", "file", "both"}
	validLogLevels = []string{"trace", "debug", "info", "warn", "warning", "error", "fatal", "panic"}
)

// Validate 验证配置的有效性, 返回所有问题合并后的错误
func (c *Config) Validate() error {
	var errs []error

	if c.Server.Port < 1 || c.Server.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port %d is out of range 1-65535", c.Server.Port))
	}
	if strings.TrimSpace(c.Manifest.Path) == "" {
		errs = append(errs, errors.New("manifest.path is empty"))
	}
	if c.Manifest.Debounce < 0 {
		errs = append(errs, fmt.Errorf("manifest.debounce %d must not be negative", c.Manifest.Debounce))
	}
	if mode := strings.ToLower(c.Log.Mode); mode != "" && !slices.Contains(validLogModes, mode) {
		errs = append(errs, fmt.Errorf("log.mode %q is not one of %s", c.Log.Mode, strings.Join(validLogModes, ", ")))
	}
	if level := strings.ToLower(c.Log.Level); level != "" && !slices.Contains(validLogLevels, level) {
		errs = append(errs, fmt.Errorf("log.level %q is unknown", c.Log.Level))
	}
	if c.App.Quiet && c.App.Verbose {
		errs = append(errs, errors.New("app.quiet and app.verbose cannot both be set"))
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid configuration: %w", errors.Join(errs...))
	}
	return nil
}
