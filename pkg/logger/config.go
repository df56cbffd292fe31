package logger

import "log/slog"

type Backend string

const (
	BackendStd Backend = "std" // slog text handler
	BackendZap Backend = "zap" // zap core behind a slog handler
)

type Config struct {
	// logger metadata attached to every record
	Service    string
	Version    string
	InstanceID string

	// output control
	Level   slog.Level
	Env     Env
	Backend Backend // default: zap for stage/prod, std for dev
	Debug   bool

	// zap sampling
	SampleInitial    int
	SampleThereafter int

	AddSource bool
}
