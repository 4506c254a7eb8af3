// go-enum is a tool designed to be called by go:generate for generating named
// accessors of enum declarations built on package [enum].
//
// See [README] for more documentation
//
// [enum]: https://pkg.go.dev/github.com/a-jentleman/go-enum/enum
// [README]: https://pkg.go.dev/github.com/a-jentleman/go-enum
package main

import (
	"github.com/a-jentleman/go-enum/internal/cmd"
)

func main() {
	cmd.Execute()
}
