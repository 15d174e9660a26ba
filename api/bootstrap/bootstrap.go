package bootstrap

import (
	"fmt"
	"sync"

	"github.com/nexuscopier/payments-api/api/config"
	checkoutapp "github.com/nexuscopier/payments-api/api/services/checkout/app"
	stripegw "github.com/nexuscopier/payments-api/api/services/checkout/gateway/stripe"
	"github.com/nexuscopier/payments-api/api/services/checkout/registration"
)

var checkoutService checkoutapp.Service
var initOnce sync.Once
var initErr error

// Init initializes config and third-party clients, and wires services.
func Init() error {
	// If a service has already been injected (e.g., tests), do not override or init heavy deps.
	if checkoutService != nil {
		return nil
	}
	var err error
	if config.AppConfig == nil {
		config.AppConfig, err = config.LoadConfig()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
	}

	stripegw.SetKey(config.AppConfig.StripeSecretKey)

	registrar := registration.New(config.AppConfig.GoogleScriptURL, config.AppConfig.GoogleScriptToken)
	checkoutService = checkoutapp.NewService(
		stripegw.New(config.AppConfig.StripeWebhookSecret),
		registrar,
		config.AppConfig,
	)
	return nil
}

func GetCheckoutService() checkoutapp.Service { return checkoutService }

// SetCheckoutService allows tests to inject a stub implementation.
func SetCheckoutService(s checkoutapp.Service) { checkoutService = s }

// Ensure runs Init() once per process and returns any initialization error.
func Ensure() error {
	initOnce.Do(func() {
		initErr = Init()
	})
	return initErr
}
