// Package autoload initializes the global logger from LOG_* environment
// config as an import side effect:
//
//	import _ "github.com/talentforge/recruiting-agent/pkg/logger/autoload"
package autoload

import (
	configx "github.com/talentforge/recruiting-agent/pkg/config"
	logx "github.com/talentforge/recruiting-agent/pkg/logger"
)

func init() {
	logx.Init(*configx.MustNew[logx.Config]("LOG"))
}
