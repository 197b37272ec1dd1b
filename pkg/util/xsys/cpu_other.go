//go:build !linux

package xsys

func affinityCPUs() (int, bool) {
	return 0, false
}
