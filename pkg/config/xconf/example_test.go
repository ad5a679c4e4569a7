package xconf_test

import (
	"fmt"

	"github.com/omeyang/xtee/pkg/config/xconf"
)

func ExampleNewFromBytes() {
	data := []byte(`
rotate: true
max_size: 1MB
files: [app.log]
`)
	cfg, err := xconf.NewFromBytes(data, xconf.FormatYAML)
	if err != nil {
		fmt.Println(err)
		return
	}

	var c struct {
		Rotate bool     `koanf:"rotate"`
		Files  []string `koanf:"files"`
	}
	if err := cfg.Unmarshal("", &c); err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(c.Rotate, c.Files, cfg.Exists("max_size"), cfg.Exists("append"))
	// Output:
	// true [app.log] true false
}
