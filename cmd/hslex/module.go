package main

import (
	"github.com/reusee/dscope"
	"github.com/reusee/hslex/debugs"
	"github.com/reusee/hslex/layout"
)

type Module struct {
	dscope.Module
	Layout layout.Module
	Debugs debugs.Module
}
