package bridge

import (
	"path/filepath"

	"github.com/philipp01105/logsink/core"
)

func callerInfo(file string, line int, function string) core.CallerInfo {
	if file == "" {
		return core.CallerInfo{}
	}
	return core.CallerInfo{
		File:      file,
		ShortFile: filepath.Base(file),
		Line:      line,
		Function:  function,
		Defined:   true,
	}
}
