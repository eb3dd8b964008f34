// package dvcmd implements the dynvar command line tool.
package dvcmd

import (
	"context"

	"go.brendoncarroll.net/star"
	"go.brendoncarroll.net/stdctx/logctx"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func Root() star.Command {
	return root
}

var root = star.NewDir(star.Metadata{
	Short: "Dynamically typed variables",
}, map[star.Symbol]star.Command{
	"demo":  demo,
	"kinds": kinds,
})

var LogLevelParam = star.Param[zapcore.Level]{
	Name:    "log-level",
	Default: star.Ptr("info"),
	Parse:   zapcore.ParseLevel,
}

// newContext returns the command's context with a logger attached.
// Logs go to stderr, so they never mix with the command's output.
func newContext(c star.Context) (context.Context, error) {
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(LogLevelParam.Load(c))
	l, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	return logctx.NewContext(c.Context, l), nil
}
