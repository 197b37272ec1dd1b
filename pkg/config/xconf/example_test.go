package xconf_test

import (
	"fmt"

	"github.com/omeyang/xtpool/pkg/config/xconf"
)

func ExampleNewFromBytes() {
	data := []byte("pool:\n  workers: 4\npi:\n  terms: 1000\n")

	cfg, err := xconf.NewFromBytes(data, xconf.FormatYAML)
	if err != nil {
		fmt.Println(err)
		return
	}

	var settings struct {
		Workers int `koanf:"workers"`
	}
	xconf.MustUnmarshal(cfg, "pool", &settings)
	fmt.Println(settings.Workers, cfg.Client().Int("pi.terms"))
	// Output: 4 1000
}
