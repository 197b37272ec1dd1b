package xsys_test

import (
	"fmt"

	"github.com/omeyang/xtpool/pkg/util/xsys"
)

func ExampleHardwareConcurrency() {
	n := xsys.HardwareConcurrency()
	fmt.Println(n >= 1)
	// Output:
	// true
}

func ExampleGetFileLimit() {
	soft, hard, err := xsys.GetFileLimit()
	if err != nil {
		fmt.Println("查询文件限制失败:", err)
		return
	}
	fmt.Printf("soft=%d, hard=%d\n", soft, hard)
}
