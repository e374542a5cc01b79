package app

import (
	authDomain "github.com/allisson/signup/internal/auth/domain"
	authService "github.com/allisson/signup/internal/auth/service"
	tokenService "github.com/allisson/signup/internal/token/service"
	tokenUsecase "github.com/allisson/signup/internal/token/usecase"
)

// TokenUseCase returns the token use case, instrumented with business metrics.
func (c *Container) TokenUseCase() (tokenUsecase.TokenUseCase, error) {
	c.tokenUseCaseInit.Do(func() {
		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			c.storeInitError("tokenUseCase", err)
			return
		}
		useCase := tokenUsecase.NewTokenUseCase(tokenService.NewGenerator(), tokenService.NewValidator())
		c.tokenUseCase = tokenUsecase.NewTokenUseCaseWithMetrics(useCase, businessMetrics)
	})
	if err := c.initError("tokenUseCase"); err != nil {
		return nil, err
	}
	return c.tokenUseCase, nil
}

// Guard returns the access guard built from SIMPLE_ACCESS_TOKEN and ALLOWED_IPS.
func (c *Container) Guard() authService.Guard {
	c.guardInit.Do(func() {
		policy := authDomain.NewAccessPolicy(c.config.SimpleAccessToken, c.config.AllowedIPs)
		c.guard = authService.NewGuard(policy)

		logger := c.Logger()
		if !policy.TokenRequired() {
			logger.Warn("SIMPLE_ACCESS_TOKEN is not set, guarded routes accept requests without a bearer token")
		}
		if !policy.IPFilteringEnabled() {
			logger.Info("ALLOWED_IPS is not set, guarded routes accept any client address")
		}
	})
	return c.guard
}
