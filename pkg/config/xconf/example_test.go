package xconf_test

import (
	"fmt"

	"github.com/omeyang/ptrkit/pkg/config/xconf"
)

func ExampleNewFromBytes() {
	data := []byte(`
word: 64
entries:
  - name: node
    align: 8
`)
	cfg, err := xconf.NewFromBytes(data, xconf.FormatYAML)
	if err != nil {
		panic(err)
	}

	var report struct {
		Word    int `koanf:"word"`
		Entries []struct {
			Name  string `koanf:"name"`
			Align uint64 `koanf:"align"`
		} `koanf:"entries"`
	}
	if err := cfg.Unmarshal("", &report); err != nil {
		panic(err)
	}

	fmt.Println(report.Word)
	fmt.Println(report.Entries[0].Name, report.Entries[0].Align)

	// Output:
	// 64
	// node 8
}
