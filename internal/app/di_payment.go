package app

import (
	paymentDomain "github.com/allisson/signup/internal/payment/domain"
	paymentService "github.com/allisson/signup/internal/payment/service"
	paymentUsecase "github.com/allisson/signup/internal/payment/usecase"
)

// PaymentDetails returns the configured bank details.
func (c *Container) PaymentDetails() paymentDomain.Details {
	return paymentDomain.Details{
		BankName:      c.config.BankName,
		AccountName:   c.config.AccountName,
		AccountNumber: c.config.AccountNumber,
		SortCode:      c.config.SortCode,
	}
}

// PaymentUseCase returns the payment use case rendering QR codes with go-qrcode.
func (c *Container) PaymentUseCase() (paymentUsecase.PaymentUseCase, error) {
	c.paymentUseCaseInit.Do(func() {
		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			c.storeInitError("paymentUseCase", err)
			return
		}
		useCase := paymentUsecase.NewPaymentUseCase(
			c.PaymentDetails(),
			c.config.PaymentReference,
			paymentService.NewQRCodeRenderer(),
		)
		c.paymentUseCase = paymentUsecase.NewPaymentUseCaseWithMetrics(useCase, businessMetrics)
	})
	if err := c.initError("paymentUseCase"); err != nil {
		return nil, err
	}
	return c.paymentUseCase, nil
}
