// Package kconfig builds Kconfig fragments such as Zephyr's prj.conf.
//
// A Builder collects comments, blank lines and CONFIG_ assignments in the
// order they are added and renders them one per line. Values are written
// as given; callers pass the literal the build system expects, for example
// y, n, 42 or "quoted".
package kconfig
