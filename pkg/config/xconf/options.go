package xconf

// options 内部可选配置。
type options struct {
	delim string
	tag   string
}

// Option 定义配置加载的可选配置函数类型。
type Option func(*options)

// defaultOptions 返回默认配置选项。
func defaultOptions() options {
	return options{
		delim: ".",
		tag:   "koanf",
	}
}

// WithDelim 设置配置键分隔符，默认为 "."（例如 "report.entries"）。
func WithDelim(delim string) Option {
	return func(o *options) {
		if delim != "" {
			o.delim = delim
		}
	}
}

// WithTag 设置 Unmarshal 字段映射用的结构体标签名，默认为 "koanf"。
func WithTag(tag string) Option {
	return func(o *options) {
		if tag != "" {
			o.tag = tag
		}
	}
}
