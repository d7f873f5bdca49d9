package logger

import (
	"os"

	"github.com/sirupsen/logrus"
)

// Log 全局日志实例
var Log = logrus.New()

// Init 初始化日志级别与格式，release 模式输出 JSON
func Init(mode string) {
	if mode == "release" {
		Log.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: "2006-01-02 15:04:05",
		})
		Log.SetLevel(logrus.InfoLevel)
	} else {
		Log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: "2006-01-02 15:04:05",
		})
		Log.SetLevel(logrus.DebugLevel)
	}
	Log.SetOutput(os.Stdout)
}
