// Package modules lists the selfcare feature modules.
package modules

import (
	module "github.com/haqatak/telcoco/internal/services/selfcare/module"
	"github.com/haqatak/telcoco/internal/services/selfcare/modules/account"
	"github.com/haqatak/telcoco/internal/services/selfcare/modules/billing"
	"github.com/haqatak/telcoco/internal/services/selfcare/modules/dashboard"
	"github.com/haqatak/telcoco/internal/services/selfcare/modules/login"
	"github.com/haqatak/telcoco/internal/services/selfcare/modules/profile"
	"github.com/haqatak/telcoco/internal/services/selfcare/modules/shell"
	"github.com/haqatak/telcoco/internal/services/selfcare/modules/shop"
	"github.com/haqatak/telcoco/internal/services/selfcare/modules/subscriber"
)

// DefaultPublicModules returns the modules reachable without a session.
func DefaultPublicModules() []module.Module {
	return []module.Module{
		login.New(),
		account.New(),
	}
}

// DefaultProtectedModules returns the modules that require a signed-in user.
func DefaultProtectedModules() []module.Module {
	return []module.Module{
		dashboard.New(),
		subscriber.New(),
		billing.New(),
		shop.New(),
		profile.New(),
		shell.New(),
	}
}
