package logger

import (
	"testing"

	"github.com/pkg/errors"
)

// 未初始化时打日志不应崩溃
func TestLogBeforeInit(t *testing.T) {
	Debugf("debug %v", 1)
	Infof("info %v", 2)
	Warnf("warn %v", 3)
	Errorf("error %v", 4)
	ErrorWithStack(errors.New("boom"))
}
