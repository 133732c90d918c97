package components

import (
	"hotel-reservation/internal/domain/availability"
	"hotel-reservation/internal/domain/inventory"
	"hotel-reservation/internal/domain/reservation"
	"hotel-reservation/internal/pkg/clock"
	"hotel-reservation/internal/pkg/config"
	"hotel-reservation/internal/pkg/errs"
	"hotel-reservation/internal/usecase"
	"hotel-reservation/internal/usecase/commands"
	"hotel-reservation/internal/usecase/queries"
	"hotel-reservation/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	availability.NewCalculator,
	reservation.NewFactory,
	NewPriceCalculator,
	NewCountPolicy,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewCatalogCommands,
		NewReservationCommands,
		NewPaymentCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewUserQueries,
		queries.NewReservationQueries,
		queries.NewCatalogQueries,
		NewAvailabilityQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)

func NewPriceCalculator(cfg config.Config) (reservation.PriceCalculator, error) {
	calc, err := reservation.NewPriceCalculator(cfg.Pricing.Policy, cfg.Pricing.TaxBasisPoints, cfg.Pricing.WeekendNights)
	if err != nil {
		return nil, errs.Wrapf(err, "invalid pricing config %q", cfg.Pricing.Policy)
	}
	return calc, nil
}

func NewCountPolicy(cfg config.Config) (inventory.CountPolicy, error) {
	policy, err := inventory.ParseCountPolicy(cfg.Inventory.CountPolicy)
	if err != nil {
		return "", errs.Wrapf(err, "invalid INVENTORY_COUNT_POLICY %q", cfg.Inventory.CountPolicy)
	}
	return policy, nil
}

func NewReservationCommands(
	uow shared.UnitOfWork,
	factory *reservation.Factory,
	calculator *availability.Calculator,
	reservationQueries queries.ReservationQueries,
	metrics shared.Metrics,
	clk clock.Clock,
	countPolicy inventory.CountPolicy,
	cfg config.Config,
) commands.ReservationCommands {
	return commands.NewReservationCommands(uow, factory, calculator, reservationQueries, metrics, clk, commands.ReservationPolicy{
		CountPolicy:          countPolicy,
		Currency:             cfg.Pricing.Currency,
		EnforceCheckInWindow: cfg.Reservation.EnforceCheckInWindow,
		IdempotencyTTL:       cfg.Reservation.IdempotencyTTL,
		MaxNights:            cfg.Reservation.MaxNights,
	})
}

func NewPaymentCommands(
	uow shared.UnitOfWork,
	gateway shared.PaymentGateway,
	locker shared.Locker,
	reservationQueries queries.ReservationQueries,
	metrics shared.Metrics,
	clk clock.Clock,
	cfg config.Config,
) commands.PaymentCommands {
	return commands.NewPaymentCommands(uow, gateway, locker, reservationQueries, metrics, clk, cfg.Redis.LockTTL)
}

func NewAvailabilityQueries(
	uow shared.UnitOfWork,
	store queries.CatalogReadStore,
	calculator *availability.Calculator,
	pricing reservation.PriceCalculator,
	countPolicy inventory.CountPolicy,
	cfg config.Config,
) queries.AvailabilityQueries {
	return queries.NewAvailabilityQueries(uow, store, calculator, pricing, countPolicy, cfg.Pricing.Currency)
}
