package main

import (
	"fmt"

	"github.com/lox/twentyone/internal/display"
)

type RulesCmd struct{}

func (c *RulesCmd) Run(g *Globals) error {
	cfg, err := g.loadConfig()
	if err != nil {
		return err
	}
	fmt.Println(display.Rules(cfg.Rules))
	return nil
}
