package debug

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/signadot/confconv/ir"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	logOnce sync.Once
	logger  *zap.SugaredLogger
)

func log() *zap.SugaredLogger {
	logOnce.Do(func() {
		encCfg := zap.NewDevelopmentEncoderConfig()
		encCfg.TimeKey = ""
		core := zapcore.NewCore(
			zapcore.NewConsoleEncoder(encCfg),
			zapcore.Lock(os.Stderr),
			zapcore.DebugLevel,
		)
		logger = zap.New(core).Named("confconv").Sugar()
	})
	return logger
}

// Logf logs a debug message to stderr. *ir.Node, map and slice arguments
// are rendered as JSON.
func Logf(msg string, args ...any) {
	for i := range args {
		a := args[i]
		switch x := a.(type) {
		case map[string]any, []any, json.Number:
			d, err := json.MarshalIndent(a, "   |", "  ")
			if err != nil {
				args[i] = fmt.Sprintf("%v", a)
				continue
			}
			args[i] = string(d)
		case *ir.Node:
			d, err := json.Marshal(ir.ToAny(x))
			if err != nil {
				args[i] = fmt.Sprintf("[raw *ir.Node] %v", x)
				continue
			}
			args[i] = string(d)
		}
	}
	log().Debugf(msg, args...)
}
