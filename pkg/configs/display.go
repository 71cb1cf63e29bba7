package configs

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/yeisme/hellosrv/pkg/style"
	"gopkg.in/yaml.v3"
)

// OutputFormat 输出格式类型
type OutputFormat string

const (
	// FormatYAML represents the YAML output format.
	FormatYAML OutputFormat = "yaml"
	// FormatJSON represents the JSON output format.
	FormatJSON OutputFormat = "json"
	// FormatTOML represents the TOML output format.
	FormatTOML OutputFormat = "toml"
	// FormatText represents the plain text output format.
	FormatText OutputFormat = "text"
)

// ValidFormats 返回所有有效的输出格式
func ValidFormats() []string {
	return []string{string(FormatYAML), string(FormatJSON), string(FormatTOML), string(FormatText)}
}

// ParseOutputFormat 解析输出格式字符串
func ParseOutputFormat(format string) (OutputFormat, error) {
	switch strings.ToLower(format) {
	case "yaml", "yml":
		return FormatYAML, nil
	case "json":
		return FormatJSON, nil
	case "toml":
		return FormatTOML, nil
	case "text", "txt":
		return FormatText, nil
	default:
		return "", fmt.Errorf("unsupported format '%s', supported formats: %s", format, strings.Join(ValidFormats(), ", "))
	}
}

// GetOutputFormatFromFlags 从命令行标志获取输出格式
func GetOutputFormatFromFlags(cmd *cobra.Command) OutputFormat {
	// 首先检查 --format 标志
	if formatFlag, _ := cmd.Flags().GetString("format"); formatFlag != "" {
		if format, err := ParseOutputFormat(formatFlag); err == nil {
			return format
		}
	}

	// 检查具体的格式标志
	if yaml, _ := cmd.Flags().GetBool("yaml"); yaml {
		return FormatYAML
	}
	if jsonFlag, _ := cmd.Flags().GetBool("json"); jsonFlag {
		return FormatJSON
	}
	if toml, _ := cmd.Flags().GetBool("toml"); toml {
		return FormatTOML
	}
	if text, _ := cmd.Flags().GetBool("text"); text {
		return FormatText
	}

	// 默认格式
	return FormatYAML
}

// OutputData 根据指定格式输出数据到 out
// color 仅对 JSON 生效, 使用 style 包进行高亮
func OutputData(data any, format OutputFormat, out io.Writer, color bool) error {
	b, err := Marshal(data, format)
	if err != nil {
		return err
	}
	if format == FormatJSON && color {
		return style.PrintJSON(out, b)
	}
	_, err = out.Write(b)
	return err
}

// Marshal 将数据编码为指定格式
func Marshal(data any, format OutputFormat) ([]byte, error) {
	switch format {
	case FormatYAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(data); err != nil {
			return nil, fmt.Errorf("failed to marshal to YAML: %w", err)
		}
		if err := enc.Close(); err != nil {
			return nil, fmt.Errorf("failed to close YAML encoder: %w", err)
		}
		return buf.Bytes(), nil

	case FormatJSON:
		jsonData, err := json.MarshalIndent(data, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("failed to marshal to JSON: %w", err)
		}
		return append(jsonData, '\n'), nil

	case FormatTOML:
		tomlData, err := toml.Marshal(data)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal to TOML: %w", err)
		}
		return tomlData, nil

	case FormatText:
		// 简单的文本格式输出
		return fmt.Appendf(nil, "%+v\n", data), nil

	default:
		return nil, fmt.Errorf("unsupported output format: %s", format)
	}
}

// CreateDefaultConfig 以指定格式在 path 写入一份默认配置, 文件已存在时返回错误
func CreateDefaultConfig(path string, format OutputFormat) error {
	if format == FormatText {
		return fmt.Errorf("text format is not supported for config files")
	}
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file %s already exists", path)
	}

	v := viper.New()
	SetDefaults(v)
	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return fmt.Errorf("failed to unmarshal defaults: %w", err)
	}

	data, err := Marshal(config, format)
	if err != nil {
		return err
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("创建配置目录失败: %w", err)
		}
	}
	return os.WriteFile(path, data, 0644)
}

// GetConfigSection 从 viper 实例获取指定配置段
func GetConfigSection(v *viper.Viper, section string, showAll bool) (any, error) {
	if showAll {
		// 返回完整的配置结构体（包含默认值）
		var config Config
		if err := v.Unmarshal(&config); err != nil {
			return nil, fmt.Errorf("failed to unmarshal config: %w", err)
		}

		if section == "" {
			return config, nil
		}

		// 使用反射动态查找配置段
		val := reflect.ValueOf(config)
		typ := val.Type()
		lowerSection := strings.ToLower(section)

		for i := 0; i < val.NumField(); i++ {
			field := typ.Field(i)
			tag := field.Tag.Get("mapstructure")
			if strings.ToLower(tag) == lowerSection {
				return val.Field(i).Interface(), nil
			}
		}

		return nil, fmt.Errorf("unknown configuration section: %s", section)
	}

	// 返回 viper 的原始数据
	lowerSection := strings.ToLower(section)

	if lowerSection == "" {
		// 显示所有配置
		return v.AllSettings(), nil
	}

	// 检查 section 是否是 viper 中的一个顶级键或已设置的键
	if v.IsSet(lowerSection) {
		return v.Get(lowerSection), nil
	}

	return nil, fmt.Errorf("unknown or unset configuration section %s", section)
}
