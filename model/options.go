// SPDX-License-Identifier: MIT
package model

import "github.com/katalvlaran/netsim/simulation"

// StrategyGillespieDirect is the direct-method strategy and the default.
const StrategyGillespieDirect = "gillespie_direct"

// Option customizes Build.
type Option func(*config)

type config struct {
	strategy   string
	engineOpts []simulation.Option
}

func defaultConfig() config {
	return config{strategy: StrategyGillespieDirect}
}

// WithStrategy selects the engine by name. The name is checked by Build.
func WithStrategy(name string) Option {
	return func(c *config) {
		c.strategy = name
	}
}

// WithEngineOptions forwards options to the engine constructor.
func WithEngineOptions(opts ...simulation.Option) Option {
	return func(c *config) {
		c.engineOpts = append(c.engineOpts, opts...)
	}
}
