package singleton

import "github.com/go-logr/logr"

// defaultName 是未通过 WithName 指定名称时使用的默认名称。
const defaultName = "singleton"

// Option 用于配置 Holder 及其参数适配器。
type Option func(*options)

type options struct {
	name   string      // name 出现在日志和错误信息中
	logger logr.Logger // logger 只在构造（慢速路径）时使用
}

func newOptions(opts []Option) options {
	o := options{
		name:   defaultName,
		logger: logr.Discard(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

// WithName 设置单例名称，用于区分日志和错误信息中的不同 Holder。
//
// 空字符串会被忽略。
func WithName(name string) Option {
	return func(o *options) {
		if name != "" {
			o.name = name
		}
	}
}

// WithLogger 设置构造过程使用的日志记录器。
//
// 构造开始和完成在 V(1) 级别记录，构造失败通过 Error 记录。
// 已构造后的快速路径不会产生任何日志。
func WithLogger(logger logr.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}
