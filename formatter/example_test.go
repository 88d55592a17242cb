package formatter_test

import (
	"fmt"
	"time"

	"github.com/philipp01105/logsink/core"
	"github.com/philipp01105/logsink/formatter"
)

func ExampleLineFormatter() {
	f := formatter.NewLineFormatter(formatter.Config{Location: time.UTC})

	rec := &core.Record{
		Time:    time.Date(2026, 1, 2, 9, 30, 0, 250_000_000, time.UTC),
		Level:   core.WarningLevel,
		Message: "disk almost full",
		Metadata: core.Metadata{
			"used":  core.StringValue("91%"),
			"mount": core.StringValue(`"/var"`),
		},
	}

	line, _ := f.Format(rec)
	fmt.Print(string(line))
	// Output: 09:30:00.250 [WARNI] disk almost full → mount=/var, used=91%
}
