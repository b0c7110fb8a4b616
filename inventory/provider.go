package inventory

import (
	"github.com/ggasam0/shopmall/config"
	"github.com/ggasam0/shopmall/pkg/log"
	"github.com/ggasam0/shopmall/tenant"
)

// NewStrategy 按配置选定一种库存策略，未配置时使用演示策略
func NewStrategy(conf *config.Config, dir *tenant.Directory, source Source, durable DurableCache) Strategy {
	name := StrategyPseudo
	if conf.Inventory != nil && conf.Inventory.Strategy != "" {
		name = conf.Inventory.Strategy
	}

	switch name {
	case StrategyCached:
		return NewCachedStrategy(source, durable)
	case StrategyRoster:
		codes := dir.Codes()
		if conf.Inventory != nil && len(conf.Inventory.Roster) > 0 {
			codes = conf.Inventory.Roster
		}
		return NewRosterStrategy(codes)
	case StrategyPseudo:
		return NewPseudoStrategy()
	default:
		log.L.Warn("unknown inventory strategy, using pseudo: " + name)
		return NewPseudoStrategy()
	}
}
