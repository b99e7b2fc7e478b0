package main

import (
	"github.com/reusee/dscope"
	"github.com/reusee/duet/debugs"
	"github.com/reusee/duet/duetconfigs"
)

type Module struct {
	dscope.Module
	Configs duetconfigs.Module
	Debugs  debugs.Module
}
