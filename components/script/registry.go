package script

import (
	"github.com/scriptflow/scriptflow/components/base"
)

// Registry 本包组件注册器
var Registry = new(base.Registry)
