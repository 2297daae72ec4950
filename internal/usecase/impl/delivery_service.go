package impl

import (
	"log/slog"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/state"
	"storefront/internal/store"
	"storefront/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// deliveryService implements the DeliveryUsecase interface.
type deliveryService struct {
	appStore *store.Store
	validate *validator.Validate
	logger   *slog.Logger
}

// NewDeliveryService is the constructor for deliveryService.
func NewDeliveryService(
	appStore *store.Store,
	logger *slog.Logger,
) usecase.DeliveryUsecase {
	return &deliveryService{
		appStore: appStore,
		validate: validator.New(),
		logger:   logger,
	}
}

// Context returns where and when the order should arrive.
func (srv *deliveryService) Context() entity.DeliveryContext {
	return srv.appStore.Snapshot().Delivery
}

// Save stores the edited context and resolves the contextual return: the
// location screen opened from checkout hands back to checkout, any other
// origin lands on home.
func (srv *deliveryService) Save(input *usecase.SaveDeliveryInput) error {
	if err := srv.validate.Struct(input); err != nil {
		return errors.Wrap(domainerrors.ErrValidationFailed, err.Error())
	}

	srv.appStore.Apply("delivery.save", func(s *state.State) {
		s.Delivery = entity.DeliveryContext{
			Location: input.Location,
			Type:     entity.DeliveryType(input.Type),
			Time:     input.Time,
		}

		target := entity.ScreenHome
		if s.Nav.Previous == entity.ScreenCheckout {
			target = entity.ScreenCheckout
		}
		s.Nav.Previous = s.Nav.Active
		s.Nav.Active = target
		s.Nav.SelectedProductID = ""
	})
	srv.logger.Info("delivery context saved", "type", input.Type, "time", input.Time)

	return nil
}

// SetType flips between courier delivery and pickup without navigating.
func (srv *deliveryService) SetType(deliveryType entity.DeliveryType) error {
	if !deliveryType.IsValid() {
		return errors.Wrap(domainerrors.ErrValidationFailed, deliveryType.String())
	}

	srv.appStore.Apply("delivery.set-type", func(s *state.State) {
		s.Delivery.Type = deliveryType
	})

	return nil
}
