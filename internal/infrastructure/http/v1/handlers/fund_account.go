package handlers

import (
	"traso/internal/domain/catalogs/fundaccount"
	"traso/internal/infrastructure/http/v1/dto"
)

// FundAccountHandler handles allocation account endpoints.
type FundAccountHandler = CatalogHandler[*fundaccount.Account, dto.CreateFundAccountRequest, dto.UpdateFundAccountRequest]

// NewFundAccountHandler creates a fund account handler.
func NewFundAccountHandler(service *fundaccount.Service) *FundAccountHandler {
	return NewCatalogHandler(CatalogHandlerConfig[*fundaccount.Account, dto.CreateFundAccountRequest, dto.UpdateFundAccountRequest]{
		Service:    service.CatalogService,
		EntityName: "fund account",
		MapCreate:  func(req dto.CreateFundAccountRequest) *fundaccount.Account { return req.ToEntity() },
		MapUpdate:  func(req dto.UpdateFundAccountRequest, a *fundaccount.Account) { req.ApplyTo(a) },
		MapResponse: func(a *fundaccount.Account) any {
			return dto.FromFundAccount(a)
		},
	})
}
